package stage

import "github.com/milk9111/spritestage/scene"

// NoSelection is the Selected value when nothing is selected.
const NoSelection = -1

// EditorState is all mutable editor state: the object store and the index of
// the selected object. Selected is either NoSelection or a valid index into
// Store.
type EditorState struct {
	Store    *scene.Store
	Selected int
}

func NewEditorState(store *scene.Store) *EditorState {
	if store == nil {
		store = scene.NewStore(scene.DefaultPlacement)
	}
	return &EditorState{Store: store, Selected: NoSelection}
}

func (s *EditorState) HasSelection() bool {
	return s.Selected != NoSelection
}

// Selection returns the selected object, if any.
func (s *EditorState) Selection() (scene.SpriteObject, bool) {
	if !s.HasSelection() {
		return scene.SpriteObject{}, false
	}
	o, err := s.Store.Get(s.Selected)
	if err != nil {
		return scene.SpriteObject{}, false
	}
	return o, true
}

// HitTest returns the index of the top-most object containing (px, py), or
// NoSelection. Later objects are drawn above earlier ones, so they win.
func (s *EditorState) HitTest(px, py int) int {
	objs := s.Store.List()
	for i := len(objs) - 1; i >= 0; i-- {
		if objs[i].Contains(px, py) {
			return i
		}
	}
	return NoSelection
}
