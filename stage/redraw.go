package stage

import (
	"errors"
	"fmt"
	"image"

	"github.com/milk9111/spritestage/scene"
)

// PlaceholderLabel is drawn over objects whose image cannot be rendered.
const PlaceholderLabel = "Image Error"

var errNoImage = errors.New("stage: no image")

// Surface is what Redraw paints onto.
type Surface interface {
	// Begin starts a new frame and discards the previous one.
	Begin()
	// DrawSprite draws img scaled to fill bounds.
	DrawSprite(img image.Image, bounds image.Rectangle) error
	// DrawPlaceholder fills bounds with a neutral color and a centered label.
	DrawPlaceholder(bounds image.Rectangle, label string)
	// DrawOutline strokes the selection outline around bounds.
	DrawOutline(bounds image.Rectangle)
}

// Redraw paints every object in insertion order and outlines the selected
// one. An object that fails to draw gets a placeholder; the rest are still
// drawn. It returns the number of placeholders.
func Redraw(state *EditorState, s Surface) int {
	s.Begin()
	failed := 0
	for i, o := range state.Store.List() {
		if err := drawSprite(s, o); err != nil {
			s.DrawPlaceholder(o.Bounds(), PlaceholderLabel)
			failed++
		}
		if i == state.Selected {
			s.DrawOutline(o.Bounds())
		}
	}
	return failed
}

func drawSprite(s Surface, o scene.SpriteObject) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("stage: draw %s: %v", o.Name, r)
		}
	}()
	if o.Image == nil || o.Image.Bounds().Empty() {
		return errNoImage
	}
	return s.DrawSprite(o.Image, o.Bounds())
}
