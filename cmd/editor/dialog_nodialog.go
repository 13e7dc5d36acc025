//go:build !dialog
// +build !dialog

package main

import (
	"fmt"
	"path/filepath"
)

// promptPicker asks for paths with the in-window prompt. Used when the
// native dialog build tag isn't set.
type promptPicker struct {
	dir    string
	prompt *pathPrompt
}

func newFilePicker(dir string, prompt *pathPrompt) filePicker {
	return &promptPicker{dir: dir, prompt: prompt}
}

func (p *promptPicker) OpenImage(fn func(path string)) error {
	p.prompt.Open("Image path (png, jpg, jpeg, bmp)", p.dir+string(filepath.Separator), func(path string) {
		path = p.resolve(path)
		p.dir = filepath.Dir(path)
		fn(path)
	})
	return nil
}

func (p *promptPicker) SaveScript(title string, fn func(path string)) error {
	initial := filepath.Join(p.dir, "game.py")
	p.prompt.Open(fmt.Sprintf("%s: script path", title), initial, func(path string) {
		path = withPyExt(p.resolve(path))
		p.dir = filepath.Dir(path)
		fn(path)
	})
	return nil
}

// resolve makes relative answers relative to the prompt's start directory.
func (p *promptPicker) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.dir, path)
}
