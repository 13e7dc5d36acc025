package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/spritestage/stage"
)

// propertyPanel mirrors a stage.PropertyForm. Edits are written into the
// form as they are typed; Enter or the Update button commits them.
type propertyPanel struct {
	Container *widget.Container
	form      *stage.PropertyForm

	inputs    map[string]*widget.TextInput
	image     *widget.TextInput
	updateBtn *widget.Button
}

var propertyFields = []struct {
	key   string
	label string
}{
	{"x", "X"},
	{"y", "Y"},
	{"width", "Width"},
	{"height", "Height"},
}

func buildPropertyPanel(theme *widget.Theme, fontFace *text.Face, form *stage.PropertyForm, onCommit func()) *propertyPanel {
	p := &propertyPanel{form: form, inputs: make(map[string]*widget.TextInput)}

	p.Container = widget.NewContainer(
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(4),
			),
		),
	)
	p.Container.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Properties", fontFace, labelColor),
	))

	commit := func() {
		if onCommit != nil {
			onCommit()
		}
	}

	for _, f := range propertyFields {
		key := f.key
		p.Container.AddChild(widget.NewLabel(
			widget.LabelOpts.Text(f.label, fontFace, labelColor),
		))
		input := newTextInput(fontFace,
			widget.TextInputOpts.SubmitOnEnter(true),
			widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
				p.form.Set(key, args.InputText)
			}),
			widget.TextInputOpts.SubmitHandler(func(args *widget.TextInputChangedEventArgs) {
				p.form.Set(key, args.InputText)
				commit()
			}),
		)
		p.inputs[key] = input
		p.Container.AddChild(input)
	}

	p.Container.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Image", fontFace, labelColor),
	))
	p.image = newTextInput(fontFace)
	p.image.GetWidget().Disabled = true
	p.Container.AddChild(p.image)

	p.updateBtn = widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Update", fontFace, theme.ButtonTheme.TextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 30),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			commit()
		}),
	)
	p.Container.AddChild(p.updateBtn)

	p.Refresh()
	return p
}

// Refresh copies the form into the inputs. The image field is never
// editable; the rest follow form.Enabled.
func (p *propertyPanel) Refresh() {
	values := map[string]string{
		"x":      p.form.X,
		"y":      p.form.Y,
		"width":  p.form.Width,
		"height": p.form.Height,
	}
	for key, input := range p.inputs {
		input.SetText(values[key])
		input.GetWidget().Disabled = !p.form.Enabled
		if !p.form.Enabled {
			input.Focus(false)
		}
	}
	p.image.SetText(p.form.Image)
	p.updateBtn.GetWidget().Disabled = !p.form.Enabled
}
