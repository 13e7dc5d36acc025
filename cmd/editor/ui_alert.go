package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// alertDialog is a blocking message box. While it is shown the rest of the
// editor ignores input.
type alertDialog struct {
	Overlay *widget.Container
	title   *widget.Text
	message *widget.Text
}

func newAlertDialog(theme *widget.Theme, fontFace *text.Face) *alertDialog {
	a := &alertDialog{}

	a.Overlay = newModalOverlay()

	dialog := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(360, 140),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 220, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(10),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 14, Bottom: 14, Left: 18, Right: 18}),
			),
		),
	)
	dialog.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}

	a.title = widget.NewText(
		widget.TextOpts.Text("", fontFace, color.Black),
	)
	a.message = widget.NewText(
		widget.TextOpts.Text("", fontFace, color.RGBA{40, 40, 40, 255}),
		widget.TextOpts.MaxWidth(420),
	)
	okBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("OK", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(80, 28),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionEnd}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			a.Close()
		}),
	)

	dialog.AddChild(a.title)
	dialog.AddChild(a.message)
	dialog.AddChild(okBtn)
	a.Overlay.AddChild(dialog)
	return a
}

func (a *alertDialog) Show(title, message string) {
	a.title.Label = title
	a.message.Label = message
	a.Overlay.GetWidget().Visibility = widget.Visibility_Show
}

func (a *alertDialog) Close() {
	a.Overlay.GetWidget().Visibility = widget.Visibility_Hide
}

func (a *alertDialog) IsOpen() bool {
	return a.Overlay.GetWidget().Visibility == widget.Visibility_Show
}

// newModalOverlay returns a hidden, dimmed container that covers the root
// and centers its child.
func newModalOverlay() *widget.Container {
	overlay := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
				StretchHorizontal:  true,
				StretchVertical:    true,
			}),
			widget.WidgetOpts.MinSize(1, 1),
		),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{0, 0, 0, 160})),
	)
	overlay.GetWidget().Visibility = widget.Visibility_Hide
	return overlay
}
