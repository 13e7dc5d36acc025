package main

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/spritestage/config"
	"github.com/milk9111/spritestage/export"
	"github.com/milk9111/spritestage/scene"
	"github.com/milk9111/spritestage/stage"
)

var windowBackground = color.RGBA{60, 60, 60, 255}

// Editor is the Ebiten game for the sprite editor.
type Editor struct {
	cfg        *config.Config
	controller *stage.Controller
	ticker     *stage.FrameTicker
	canvas     *canvasSurface
	ui         *editorUI
	picker     filePicker
	watcher    *scene.Watcher

	debug bool
}

func NewEditor(cfg *config.Config, dir string) (*Editor, error) {
	face, err := loadFontFace(14)
	if err != nil {
		return nil, err
	}

	store := scene.NewStore(placementFromConfig(cfg))
	e := &Editor{
		cfg:        cfg,
		controller: stage.NewController(stage.NewEditorState(store)),
	}

	interval := cfg.Canvas.RefreshInterval()
	e.canvas = newCanvasSurface(cfg.Canvas.Width, cfg.Canvas.Height, face, float32(interval.Seconds()))
	e.ui = buildEditorUI(&face, e.controller.Form, uiCallbacks{
		toolbarActions: toolbarActions{
			AddSprite:      e.openSprite,
			ExportScript:   e.exportScript,
			ExportBundle:   e.exportBundle,
			DeleteSelected: e.deleteSelected,
		},
		Commit:      e.commit,
		SelectIndex: e.selectIndex,
	})
	e.picker = newFilePicker(dir, e.ui.Prompt)

	e.ticker = stage.NewFrameTicker(interval, ebiten.TPS())
	e.controller.OnSelectionChanged(e.selectionChanged)
	e.controller.OnObjectsChanged(e.objectsChanged)
	e.controller.Bind(e.ticker, e.canvas)

	if w, err := scene.NewWatcher(); err != nil {
		log.Printf("Live reload disabled: %v", err)
	} else {
		e.watcher = w
	}

	e.controller.Render()
	return e, nil
}

func (e *Editor) Close() {
	if e.watcher != nil {
		if err := e.watcher.Close(); err != nil {
			log.Printf("Failed to close watcher: %v", err)
		}
	}
}

func (e *Editor) Update() error {
	e.drainWatcher()
	e.ui.UI.Update()

	if e.ui.Modal() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			e.ui.Alert.Close()
			e.ui.Prompt.Close()
		}
	} else {
		if !e.ui.TypingFocused() {
			e.handleHotkeys()
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			mx, my := ebiten.CursorPosition()
			if x, y, ok := e.screenToCanvas(mx, my); ok {
				e.controller.Click(x, y)
			}
		}
	}

	e.ticker.Advance()
	return nil
}

func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(windowBackground)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(leftPanelWidth, 0)
	screen.DrawImage(e.canvas.Image(), op)
	if e.debug {
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("TPS: %0.1f  objects: %d  selected: %d", ebiten.ActualTPS(), e.controller.State.Store.Len(), e.controller.State.Selected),
			leftPanelWidth+4, 4)
	}
	e.ui.UI.Draw(screen)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	cw, ch := e.canvas.Size()
	return leftPanelWidth + cw, max(ch, minWindowHeight)
}

// screenToCanvas converts window coordinates to canvas-local ones. ok is
// false outside the canvas.
func (e *Editor) screenToCanvas(sx, sy int) (int, int, bool) {
	x, y := sx-leftPanelWidth, sy
	if !e.canvas.Contains(x, y) {
		return 0, 0, false
	}
	return x, y, true
}

func (e *Editor) handleHotkeys() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	if inpututil.IsKeyJustPressed(ebiten.KeyDelete) || inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		e.deleteSelected()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		e.controller.ClearSelection()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyO) {
		e.openSprite()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyE) {
		e.exportScript()
	}
}

// drainWatcher applies pending file changes without blocking.
func (e *Editor) drainWatcher() {
	if e.watcher == nil {
		return
	}
	for {
		select {
		case path := <-e.watcher.Events:
			n, err := e.controller.Reload(path)
			if err != nil {
				log.Printf("Reload %s: %v", path, err)
			} else if n > 0 {
				log.Printf("Reloaded %s (%d objects)", path, n)
			}
		case err := <-e.watcher.Errors:
			log.Printf("Watcher error: %v", err)
		default:
			return
		}
	}
}

func (e *Editor) openSprite() {
	if err := e.picker.OpenImage(e.addSprite); err != nil {
		e.showError("Could not open file dialog", err)
	}
}

func (e *Editor) addSprite(path string) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	idx, err := e.controller.AddSprite(path)
	if err != nil {
		e.showError("Could not load image", err)
		return
	}
	log.Printf("Added sprite %d from %s", idx, path)
	if e.watcher != nil {
		if err := e.watcher.WatchFile(path); err != nil {
			log.Printf("Failed to watch %s: %v", path, err)
		}
	}
}

func (e *Editor) deleteSelected() {
	removed, err := e.controller.DeleteSelected()
	if err != nil {
		e.showError("Could not delete object", err)
		return
	}
	if removed {
		log.Printf("Deleted object, %d left", e.controller.State.Store.Len())
	}
}

func (e *Editor) selectIndex(idx int) {
	if err := e.controller.Select(idx); err != nil {
		log.Printf("Ignoring stale list selection %d: %v", idx, err)
	}
}

func (e *Editor) commit() {
	if err := e.controller.Commit(); err != nil {
		e.showError("Invalid values", err)
		return
	}
	// Normalize what was typed (whitespace, leading zeros) to the stored values.
	if o, ok := e.controller.State.Selection(); ok {
		e.controller.Form.Populate(o)
		e.ui.Properties.Refresh()
	}
}

func (e *Editor) exportScript() {
	objects := e.controller.State.Store.List()
	if len(objects) == 0 {
		e.showError("Nothing to export", export.ErrEmptyExport)
		return
	}
	err := e.picker.SaveScript("Export Script", func(dest string) {
		res, err := export.ExportScript(e.controller.State.Store.List(), dest, scriptOptionsFromConfig(e.cfg))
		if err != nil {
			e.showError("Failed to export", err)
			return
		}
		log.Printf("Exported script to %s (%d images copied)", res.ScriptPath, len(res.Images))
		e.ui.Alert.Show("Success", fmt.Sprintf("Game exported to %s", res.ScriptPath))
	})
	if err != nil {
		e.showError("Could not open file dialog", err)
	}
}

func (e *Editor) exportBundle() {
	opts := bundleOptionsFromConfig(e.cfg)
	if err := export.CheckBundle(e.controller.State.Store.List(), opts); err != nil {
		e.showError("Bundle export unavailable", err)
		return
	}
	err := e.picker.SaveScript("Export Bundle", func(dest string) {
		res, err := export.ExportBundle(e.controller.State.Store.List(), dest, opts)
		if err != nil {
			e.showError("Failed to set up bundle export", err)
			return
		}
		log.Printf("Wrote bundle files %s and %s", res.SetupPath, res.BuildScriptPath)
		e.ui.Alert.Show("Bundle Export", bundleInstructions(res, copyToClipboard(res.BuildCommand)))
	})
	if err != nil {
		e.showError("Could not open file dialog", err)
	}
}

func bundleInstructions(res *export.BundleResult, copied bool) string {
	msg := fmt.Sprintf("Setup complete! To build the DMG run:\n\n%s\n\nThis will create: %s", res.BuildCommand, res.DMGPath)
	if copied {
		msg += "\n\nThe command has been copied to the clipboard."
	}
	return msg
}

func (e *Editor) selectionChanged(idx int) {
	e.ui.Properties.Refresh()
	e.ui.Objects.SetSelected(idx)
	e.ui.ToolBar.SetDeleteEnabled(idx != stage.NoSelection)
}

func (e *Editor) objectsChanged(objs []scene.SpriteObject) {
	e.ui.Objects.SetObjects(objs, e.controller.State.Selected)
}

// showError logs err and shows it in the alert dialog. Validation and load
// errors are shown as they are; anything else gets the title as context.
func (e *Editor) showError(title string, err error) {
	log.Printf("%s: %v", title, err)
	var ve *scene.ValidationError
	var le *scene.LoadError
	var pe *export.PlatformUnsupportedError
	switch {
	case errors.As(err, &ve), errors.As(err, &le), errors.As(err, &pe):
		e.ui.Alert.Show(title, err.Error())
	case errors.Is(err, export.ErrEmptyExport):
		e.ui.Alert.Show(title, "No objects to export")
	default:
		e.ui.Alert.Show("Error", fmt.Sprintf("%s: %v", title, err))
	}
}
