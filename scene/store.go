package scene

import (
	"fmt"
	"image"
)

// DefaultPlacement is where newly added sprites appear.
var DefaultPlacement = Fields{X: 100, Y: 100, Width: 50, Height: 50}

// Store is the ordered collection of sprite objects. It is not safe for
// concurrent use; the editor mutates it from the game loop only.
type Store struct {
	objects   []SpriteObject
	placement Fields
}

// NewStore returns an empty store that places new sprites at placement.
// An invalid placement falls back to DefaultPlacement.
func NewStore(placement Fields) *Store {
	if placement.Validate() != nil {
		placement = DefaultPlacement
	}
	return &Store{placement: placement}
}

// Add decodes the image at path and appends a new object for it.
func (s *Store) Add(path string) (int, error) {
	img, err := LoadImage(path)
	if err != nil {
		return -1, err
	}
	return s.AddImage(path, img), nil
}

// AddImage appends an object for an already decoded image.
func (s *Store) AddImage(path string, img image.Image) int {
	s.objects = append(s.objects, SpriteObject{
		X:      s.placement.X,
		Y:      s.placement.Y,
		Width:  s.placement.Width,
		Height: s.placement.Height,
		Image:  img,
		Path:   path,
		Name:   displayName(path),
	})
	return len(s.objects) - 1
}

// Remove deletes the object at i. Later objects shift down by one.
func (s *Store) Remove(i int) error {
	if err := s.check(i); err != nil {
		return err
	}
	s.objects = append(s.objects[:i], s.objects[i+1:]...)
	return nil
}

// Get returns a copy of the object at i.
func (s *Store) Get(i int) (SpriteObject, error) {
	if err := s.check(i); err != nil {
		return SpriteObject{}, err
	}
	return s.objects[i], nil
}

// Update applies f to the object at i. Nothing changes if f is invalid.
func (s *Store) Update(i int, f Fields) error {
	if err := s.check(i); err != nil {
		return err
	}
	if err := f.Validate(); err != nil {
		return err
	}
	o := &s.objects[i]
	o.X, o.Y, o.Width, o.Height = f.X, f.Y, f.Width, f.Height
	return nil
}

// List returns the objects in insertion order.
func (s *Store) List() []SpriteObject {
	out := make([]SpriteObject, len(s.objects))
	copy(out, s.objects)
	return out
}

func (s *Store) Len() int { return len(s.objects) }

// Reload re-decodes the image for every object sourced from path and returns
// how many objects were touched. On failure those objects keep their slot but
// lose their image, so the canvas shows a placeholder for them.
func (s *Store) Reload(path string) (int, error) {
	n := 0
	for i := range s.objects {
		if s.objects[i].Path == path {
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	img, err := LoadImage(path)
	for i := range s.objects {
		if s.objects[i].Path == path {
			s.objects[i].Image = img
		}
	}
	return n, err
}

func (s *Store) check(i int) error {
	if i < 0 || i >= len(s.objects) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(s.objects))
	}
	return nil
}
