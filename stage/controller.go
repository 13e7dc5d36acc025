package stage

import (
	"github.com/milk9111/spritestage/scene"
)

// Controller applies user actions to an EditorState and keeps the property
// form and canvas in step with it. All methods must be called from the
// thread that runs the event loop.
type Controller struct {
	State *EditorState
	Form  *PropertyForm

	surface Surface

	onSelection func(idx int)
	onObjects   func(objs []scene.SpriteObject)
}

func NewController(state *EditorState) *Controller {
	if state == nil {
		state = NewEditorState(nil)
	}
	return &Controller{State: state, Form: &PropertyForm{}}
}

// OnSelectionChanged registers fn to run after every selection change. The
// form is already populated when fn runs.
func (c *Controller) OnSelectionChanged(fn func(idx int)) { c.onSelection = fn }

// OnObjectsChanged registers fn to run after objects are added or removed.
func (c *Controller) OnObjectsChanged(fn func(objs []scene.SpriteObject)) { c.onObjects = fn }

// Bind attaches the canvas surface and re-renders it on every tick.
func (c *Controller) Bind(ticks TickSource, surface Surface) {
	c.surface = surface
	if ticks != nil {
		ticks.Subscribe(c.Render)
	}
}

// Render redraws the bound surface from the current state.
func (c *Controller) Render() {
	if c.surface == nil {
		return
	}
	Redraw(c.State, c.surface)
}

// AddSprite loads the image at path, appends it and selects it.
func (c *Controller) AddSprite(path string) (int, error) {
	idx, err := c.State.Store.Add(path)
	if err != nil {
		return NoSelection, err
	}
	c.objectsChanged()
	c.setSelection(idx)
	return idx, nil
}

// Click selects the top-most object under (px, py) in canvas coordinates,
// or clears the selection when there is none.
func (c *Controller) Click(px, py int) int {
	idx := c.State.HitTest(px, py)
	c.setSelection(idx)
	return idx
}

// Select selects the object at idx.
func (c *Controller) Select(idx int) error {
	if _, err := c.State.Store.Get(idx); err != nil {
		return err
	}
	c.setSelection(idx)
	return nil
}

func (c *Controller) ClearSelection() {
	c.setSelection(NoSelection)
}

// DeleteSelected removes the selected object. It reports false when nothing
// was selected.
func (c *Controller) DeleteSelected() (bool, error) {
	if !c.State.HasSelection() {
		return false, nil
	}
	if err := c.Remove(c.State.Selected); err != nil {
		return false, err
	}
	return true, nil
}

// Remove deletes the object at idx. A selection of idx is cleared before the
// store changes; a selection after idx moves down with its object.
func (c *Controller) Remove(idx int) error {
	if _, err := c.State.Store.Get(idx); err != nil {
		return err
	}
	sel := c.State.Selected
	switch {
	case sel == idx:
		c.setSelection(NoSelection)
	case sel > idx:
		c.State.Selected = sel - 1
	}
	if err := c.State.Store.Remove(idx); err != nil {
		return err
	}
	c.objectsChanged()
	c.Render()
	return nil
}

// Commit applies the property form to the selected object. On error the
// object is unchanged. Committing with nothing selected does nothing.
func (c *Controller) Commit() error {
	if !c.State.HasSelection() {
		return nil
	}
	fields, err := c.Form.Parse()
	if err != nil {
		return err
	}
	if err := c.State.Store.Update(c.State.Selected, fields); err != nil {
		return err
	}
	c.Render()
	return nil
}

// Reload re-decodes the image behind path for every object using it.
func (c *Controller) Reload(path string) (int, error) {
	n, err := c.State.Store.Reload(path)
	if n > 0 {
		c.Render()
	}
	return n, err
}

func (c *Controller) setSelection(idx int) {
	c.State.Selected = idx
	if o, ok := c.State.Selection(); ok {
		c.Form.Populate(o)
	} else {
		c.State.Selected = NoSelection
		c.Form.Clear()
	}
	if c.onSelection != nil {
		c.onSelection(c.State.Selected)
	}
	c.Render()
}

func (c *Controller) objectsChanged() {
	if c.onObjects != nil {
		c.onObjects(c.State.Store.List())
	}
}
