package main

import (
	"path/filepath"
	"strings"
)

// filePicker chooses files for the editor. fn runs on the update goroutine,
// possibly on a later frame, and only when the user picked a path.
type filePicker interface {
	// OpenImage asks for a sprite image (png, jpg, jpeg or bmp).
	OpenImage(fn func(path string)) error
	// SaveScript asks where to write a generated Python script.
	SaveScript(title string, fn func(path string)) error
}

// withPyExt appends ".py" unless path already ends in it.
func withPyExt(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".py") {
		return path
	}
	return path + ".py"
}
