package scene

import (
	"image"
	"math"
	"path/filepath"
	"strconv"
)

// SpriteObject is a positioned, sized, image-backed rectangle on the canvas.
type SpriteObject struct {
	X      int
	Y      int
	Width  int
	Height int

	// Image is nil when the source could not be (re)decoded.
	Image image.Image
	Path  string
	Name  string
}

// Fields are the editable properties of a SpriteObject.
type Fields struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Bounds returns the object's axis-aligned bounding box.
func (o SpriteObject) Bounds() image.Rectangle {
	return image.Rect(o.X, o.Y, o.X+o.Width, o.Y+o.Height)
}

// Contains reports whether (px, py) lies inside the bounding box. The right
// and bottom edges are exclusive.
func (o SpriteObject) Contains(px, py int) bool {
	return image.Pt(px, py).In(o.Bounds())
}

// Fields returns the editable properties of o.
func (o SpriteObject) Fields() Fields {
	return Fields{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

// Validate checks the size invariant and that the far edges fit in an int.
func (f Fields) Validate() error {
	if f.Width <= 0 {
		return &ValidationError{Field: "width", Value: strconv.Itoa(f.Width), Reason: "must be positive"}
	}
	if f.Height <= 0 {
		return &ValidationError{Field: "height", Value: strconv.Itoa(f.Height), Reason: "must be positive"}
	}
	if f.X > math.MaxInt-f.Width {
		return &ValidationError{Field: "x", Value: strconv.Itoa(f.X), Reason: "x plus width overflows"}
	}
	if f.Y > math.MaxInt-f.Height {
		return &ValidationError{Field: "y", Value: strconv.Itoa(f.Y), Reason: "y plus height overflows"}
	}
	return nil
}

func displayName(path string) string {
	return filepath.Base(path)
}
