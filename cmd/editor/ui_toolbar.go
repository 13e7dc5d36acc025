package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// toolbarActions are the toolbox callbacks, one per button.
type toolbarActions struct {
	AddSprite      func()
	ExportScript   func()
	ExportBundle   func()
	DeleteSelected func()
}

type toolBar struct {
	Container *widget.Container
	deleteBtn *widget.Button
}

// SetDeleteEnabled greys out the delete button when nothing is selected.
func (tb *toolBar) SetDeleteEnabled(enabled bool) {
	if tb == nil || tb.deleteBtn == nil {
		return
	}
	tb.deleteBtn.GetWidget().Disabled = !enabled
}

func buildToolBar(theme *widget.Theme, fontFace *text.Face, actions toolbarActions) *toolBar {
	buttonTextColor := &widget.ButtonTextColor{
		Idle:     color.Black,
		Hover:    color.Black,
		Pressed:  color.RGBA{0, 0, 200, 255},
		Disabled: color.Gray{Y: 128},
	}

	toolbar := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
			),
		),
	)

	toolbar.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Toolbox", fontFace, labelColor),
	))

	newButton := func(label string, onClick func()) *widget.Button {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(label, fontFace, buttonTextColor),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(200, 30),
			),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				if onClick != nil {
					onClick()
				}
			}),
		)
		toolbar.AddChild(btn)
		return btn
	}

	newButton("Add Sprite", actions.AddSprite)
	newButton("Export Script", actions.ExportScript)
	newButton("Export Bundle", actions.ExportBundle)
	deleteBtn := newButton("Delete Selected", actions.DeleteSelected)
	deleteBtn.GetWidget().Disabled = true

	return &toolBar{Container: toolbar, deleteBtn: deleteBtn}
}
