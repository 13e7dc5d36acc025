// Package export turns a sprite arrangement into a standalone pygame script
// and, on macOS, the scaffolding to package it as an app bundle.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/milk9111/spritestage/scene"
)

// ScriptOptions shape the generated program.
type ScriptOptions struct {
	WindowWidth  int
	WindowHeight int
	Caption      string
	FPS          int
	// Background is the RGB fill color; nil means white.
	Background *[3]int
}

// DefaultScriptOptions is a 600x400 white window titled "My Game" at 60 FPS.
var DefaultScriptOptions = ScriptOptions{
	WindowWidth:  600,
	WindowHeight: 400,
	Caption:      "My Game",
	FPS:          60,
}

var defaultBackground = [3]int{255, 255, 255}

// Result lists what ExportScript wrote.
type Result struct {
	ScriptPath string
	// Images are the destination paths of copied images; sources already in
	// place are not listed.
	Images []string
	// Files are the names the script loads, one per object in order.
	Files []string
}

type scriptObject struct {
	Index  int
	File   string
	X      int
	Y      int
	Width  int
	Height int
}

type scriptData struct {
	ScriptOptions
	Background string
	Objects    []scriptObject
}

// ExportScript writes a runnable pygame script for objects to dest and
// copies every referenced image next to it. Images are referenced by base
// name, numbered when two sources share one (see fileNames). Nothing is
// written when a name is rejected; on a later error, files written so far
// are left in place.
func ExportScript(objects []scene.SpriteObject, dest string, opts ScriptOptions) (*Result, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyExport
	}
	opts = opts.withDefaults()

	dir := filepath.Dir(dest)
	names, err := fileNames(objects, dir)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := renderScript(&buf, objects, names, opts); err != nil {
		return nil, err
	}
	if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("export: write %s: %w", dest, err)
	}

	res := &Result{ScriptPath: dest, Files: names}
	copied := make(map[string]bool)
	for i, o := range objects {
		to := filepath.Join(dir, names[i])
		if copied[to] {
			continue
		}
		copied[to] = true
		if samePath(o.Path, to) {
			continue
		}
		if err := copyFile(o.Path, to); err != nil {
			return res, fmt.Errorf("export: copy %s: %w", o.Path, err)
		}
		res.Images = append(res.Images, to)
	}
	return res, nil
}

// RenderScript writes the script for objects to w.
func RenderScript(w io.Writer, objects []scene.SpriteObject, opts ScriptOptions) error {
	names, err := fileNames(objects, "")
	if err != nil {
		return err
	}
	return renderScript(w, objects, names, opts.withDefaults())
}

func renderScript(w io.Writer, objects []scene.SpriteObject, names []string, opts ScriptOptions) error {
	bg := defaultBackground
	if opts.Background != nil {
		bg = *opts.Background
	}
	data := scriptData{
		ScriptOptions: opts,
		Background:    fmt.Sprintf("%d, %d, %d", bg[0], bg[1], bg[2]),
		Objects:       make([]scriptObject, len(objects)),
	}
	for i, o := range objects {
		data.Objects[i] = scriptObject{
			Index:  i,
			File:   names[i],
			X:      o.X,
			Y:      o.Y,
			Width:  o.Width,
			Height: o.Height,
		}
	}
	if err := templates.ExecuteTemplate(w, "script.py.tmpl", data); err != nil {
		return fmt.Errorf("export: render script: %w", err)
	}
	return nil
}

func (o ScriptOptions) withDefaults() ScriptOptions {
	d := DefaultScriptOptions
	if o == (ScriptOptions{}) {
		return d
	}
	if o.WindowWidth <= 0 || o.WindowHeight <= 0 {
		o.WindowWidth, o.WindowHeight = d.WindowWidth, d.WindowHeight
	}
	if o.Caption == "" {
		o.Caption = d.Caption
	}
	if o.FPS <= 0 {
		o.FPS = d.FPS
	}
	return o
}

func samePath(a, b string) bool {
	aa, err := filepath.Abs(a)
	if err != nil {
		return false
	}
	bb, err := filepath.Abs(b)
	if err != nil {
		return false
	}
	return aa == bb
}

// copyFile copies src to dst, keeping the mode and modification time.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}
