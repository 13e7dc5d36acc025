//go:build dialog
// +build dialog

package main

import (
	"errors"
	"path/filepath"

	"github.com/milk9111/spritestage/scene"
	"github.com/sqweek/dialog"
)

// nativePicker uses the platform file dialogs. They block the update loop
// until closed.
type nativePicker struct {
	dir string
}

func newFilePicker(dir string, _ *pathPrompt) filePicker {
	return &nativePicker{dir: dir}
}

func (p *nativePicker) OpenImage(fn func(path string)) error {
	path, err := dialog.File().
		Filter("Image files", scene.ImageExtensions...).
		SetStartDir(p.dir).
		Title("Select sprite image").
		Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}
	p.dir = filepath.Dir(path)
	fn(path)
	return nil
}

func (p *nativePicker) SaveScript(title string, fn func(path string)) error {
	path, err := dialog.File().
		Filter("Python files", "py").
		SetStartDir(p.dir).
		SetStartFile("game.py").
		Title(title).
		Save()
	if errors.Is(err, dialog.ErrCancelled) {
		return nil
	}
	if err != nil {
		return err
	}
	p.dir = filepath.Dir(path)
	fn(withPyExt(path))
	return nil
}
