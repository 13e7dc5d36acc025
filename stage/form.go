package stage

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/milk9111/spritestage/scene"
)

// PropertyForm is the text model behind the property panel. The UI writes
// the raw text of each input into it and reads it back after a selection
// change.
type PropertyForm struct {
	X      string
	Y      string
	Width  string
	Height string
	// Image is the base name of the selected sprite's source file. Read-only.
	Image string

	Enabled bool
}

// Populate fills the form from o and enables it.
func (f *PropertyForm) Populate(o scene.SpriteObject) {
	f.X = strconv.Itoa(o.X)
	f.Y = strconv.Itoa(o.Y)
	f.Width = strconv.Itoa(o.Width)
	f.Height = strconv.Itoa(o.Height)
	f.Image = filepath.Base(o.Path)
	f.Enabled = true
}

// Clear empties and disables the form.
func (f *PropertyForm) Clear() {
	*f = PropertyForm{}
}

// Set stores raw input text for the named field ("x", "y", "width" or "height").
func (f *PropertyForm) Set(field, text string) {
	switch field {
	case "x":
		f.X = text
	case "y":
		f.Y = text
	case "width":
		f.Width = text
	case "height":
		f.Height = text
	}
}

// Parse converts the form text to validated fields.
func (f *PropertyForm) Parse() (scene.Fields, error) {
	var out scene.Fields
	inputs := []struct {
		name string
		text string
		dst  *int
	}{
		{"x", f.X, &out.X},
		{"y", f.Y, &out.Y},
		{"width", f.Width, &out.Width},
		{"height", f.Height, &out.Height},
	}
	for _, in := range inputs {
		v, err := strconv.Atoi(strings.TrimSpace(in.text))
		if err != nil {
			return scene.Fields{}, &scene.ValidationError{Field: in.name, Value: in.text, Reason: "not an integer"}
		}
		*in.dst = v
	}
	if err := out.Validate(); err != nil {
		return scene.Fields{}, err
	}
	return out, nil
}
