package main

import (
	"image/color"
	"strings"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// pathPrompt asks for a file path inside the editor window. It stands in for
// the native dialogs in builds without the dialog tag.
type pathPrompt struct {
	Overlay  *widget.Container
	title    *widget.Label
	input    *widget.TextInput
	onSubmit func(path string)
}

func newPathPrompt(theme *widget.Theme, fontFace *text.Face) *pathPrompt {
	p := &pathPrompt{}
	p.Overlay = newModalOverlay()

	dialog := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(420, 140),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 220, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 14, Bottom: 14, Left: 18, Right: 18}),
			),
		),
	)
	dialog.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
	}

	p.title = widget.NewLabel(
		widget.LabelOpts.Text("", fontFace, dialogLabel),
	)
	p.input = newTextInput(fontFace,
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(380, 28),
		),
		widget.TextInputOpts.SubmitOnEnter(true),
		widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
			p.submit(args.InputText)
		}),
	)

	buttonsRow := widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
			),
		),
	)
	okBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("OK", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.submit(p.input.GetText())
		}),
	)
	cancelBtn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Cancel", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			p.Close()
		}),
	)
	buttonsRow.AddChild(okBtn)
	buttonsRow.AddChild(cancelBtn)

	dialog.AddChild(p.title)
	dialog.AddChild(p.input)
	dialog.AddChild(buttonsRow)
	p.Overlay.AddChild(dialog)
	return p
}

// Open shows the prompt prefilled with initial. onSubmit runs with the
// trimmed path; an empty path counts as a cancel.
func (p *pathPrompt) Open(title, initial string, onSubmit func(path string)) {
	p.title.Label = title
	p.onSubmit = onSubmit
	p.input.SetText(initial)
	p.input.Focus(true)
	p.Overlay.GetWidget().Visibility = widget.Visibility_Show
}

func (p *pathPrompt) Close() {
	p.input.Focus(false)
	p.onSubmit = nil
	p.Overlay.GetWidget().Visibility = widget.Visibility_Hide
}

func (p *pathPrompt) IsOpen() bool {
	return p.Overlay.GetWidget().Visibility == widget.Visibility_Show
}

func (p *pathPrompt) submit(text string) {
	fn := p.onSubmit
	p.Close()
	path := strings.TrimSpace(text)
	if fn != nil && path != "" {
		fn(path)
	}
}
