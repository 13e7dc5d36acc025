package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/milk9111/spritestage/scene"
)

// BundleOptions configure the py2app manifest and DMG build script.
type BundleOptions struct {
	Script ScriptOptions

	// Host is the running OS; empty means runtime.GOOS.
	Host string
	// RequiredHost is the only OS that can build the bundle; empty means darwin.
	RequiredHost string

	Name       string
	Identifier string
	Version    string
	Packages   []string
	Excludes   []string
}

// BundleResult lists what ExportBundle wrote.
type BundleResult struct {
	Script          *Result
	SetupPath       string
	BuildScriptPath string
	DMGPath         string
	// BuildCommand is the shell command that builds the DMG.
	BuildCommand string
}

type setupData struct {
	Entry      string
	DataFiles  []string
	Name       string
	Identifier string
	Version    string
	Packages   []string
	Excludes   []string
}

type buildData struct {
	Dir  string
	Name string
	DMG  string
}

// ExportBundle exports the script to dest and writes setup.py and
// build_dmg.sh next to it. The host check and the empty check run before
// anything is written.
func ExportBundle(objects []scene.SpriteObject, dest string, opts BundleOptions) (*BundleResult, error) {
	opts = opts.withDefaults()
	if err := CheckBundle(objects, opts); err != nil {
		return nil, err
	}
	if entry := filepath.Base(dest); !utf8.ValidString(entry) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFileName, dest)
	}

	script, err := ExportScript(objects, dest, opts.Script)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dest)
	res := &BundleResult{
		Script:          script,
		SetupPath:       filepath.Join(dir, "setup.py"),
		BuildScriptPath: filepath.Join(dir, "build_dmg.sh"),
		DMGPath:         strings.TrimSuffix(dest, filepath.Ext(dest)) + ".dmg",
	}
	res.BuildCommand = fmt.Sprintf("cd %s && ./build_dmg.sh", shellQuote(dir))

	setup := setupData{
		Entry:      filepath.Base(dest),
		DataFiles:  distinct(script.Files),
		Name:       opts.Name,
		Identifier: opts.Identifier,
		Version:    opts.Version,
		Packages:   opts.Packages,
		Excludes:   opts.Excludes,
	}
	if err := writeTemplate(res.SetupPath, "setup.py.tmpl", setup, 0o644); err != nil {
		return res, err
	}

	build := buildData{Dir: dir, Name: opts.Name, DMG: res.DMGPath}
	if err := writeTemplate(res.BuildScriptPath, "build_dmg.sh.tmpl", build, 0o755); err != nil {
		return res, err
	}
	// WriteFile keeps the mode of an existing file.
	if err := os.Chmod(res.BuildScriptPath, 0o755); err != nil {
		return res, fmt.Errorf("export: chmod %s: %w", res.BuildScriptPath, err)
	}
	return res, nil
}

// CheckBundle reports whether a bundle export of objects could start: the
// host must match and there must be something to export.
func CheckBundle(objects []scene.SpriteObject, opts BundleOptions) error {
	opts = opts.withDefaults()
	if opts.Host != opts.RequiredHost {
		return &PlatformUnsupportedError{Host: opts.Host, Required: opts.RequiredHost}
	}
	if len(objects) == 0 {
		return ErrEmptyExport
	}
	return nil
}

func (o BundleOptions) withDefaults() BundleOptions {
	if o.Host == "" {
		o.Host = runtime.GOOS
	}
	if o.RequiredHost == "" {
		o.RequiredHost = "darwin"
	}
	if o.Name == "" {
		o.Name = "My Game"
	}
	if o.Identifier == "" {
		o.Identifier = "com.mygame.app"
	}
	if o.Version == "" {
		o.Version = "1.0.0"
	}
	if o.Packages == nil {
		o.Packages = []string{"pygame"}
	}
	return o
}

func writeTemplate(path, name string, data any, perm os.FileMode) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("export: render %s: %w", name, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), perm); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}
