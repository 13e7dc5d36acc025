package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/spritestage/stage"
)

const (
	leftPanelWidth  = 240
	minWindowHeight = 720
)

// editorUI is the widget tree around the canvas: a left panel with the
// toolbox, property form and object list, plus the modal overlays.
type editorUI struct {
	UI         *ebitenui.UI
	ToolBar    *toolBar
	Properties *propertyPanel
	Objects    *objectPanel
	Alert      *alertDialog
	Prompt     *pathPrompt
}

type uiCallbacks struct {
	toolbarActions
	Commit      func()
	SelectIndex func(idx int)
}

func buildEditorUI(fontFace *text.Face, form *stage.PropertyForm, cb uiCallbacks) *editorUI {
	ui := &ebitenui.UI{}
	ui.PrimaryTheme = newEditorTheme(fontFace)
	theme := ui.PrimaryTheme

	e := &editorUI{UI: ui}
	e.ToolBar = buildToolBar(theme, fontFace, cb.toolbarActions)
	e.Properties = buildPropertyPanel(theme, fontFace, form, cb.Commit)
	e.Objects = buildObjectPanel(fontFace, cb.SelectIndex)
	e.Alert = newAlertDialog(theme, fontFace)
	e.Prompt = newPathPrompt(theme, fontFace)

	leftPanel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(leftPanelWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelBackground)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(12),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 20, Right: 20}),
			),
		),
	)
	leftPanel.AddChild(e.ToolBar.Container)
	leftPanel.AddChild(e.Properties.Container)
	leftPanel.AddChild(e.Objects.Container)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	leftPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		StretchVertical:    true,
	}
	root.AddChild(leftPanel)
	// Overlays go last so they draw above the panel.
	root.AddChild(e.Prompt.Overlay)
	root.AddChild(e.Alert.Overlay)

	ui.Container = root
	return e
}

// Modal reports whether an overlay is blocking the editor.
func (e *editorUI) Modal() bool {
	return e.Alert.IsOpen() || e.Prompt.IsOpen()
}

// TypingFocused reports whether a text input has keyboard focus, in which
// case the editor's hotkeys are suppressed.
func (e *editorUI) TypingFocused() bool {
	if fw := e.UI.GetFocusedWidget(); fw != nil {
		if _, ok := fw.(*widget.TextInput); ok {
			return true
		}
	}
	return false
}
