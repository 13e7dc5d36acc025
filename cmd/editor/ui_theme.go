package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	panelBackground = color.RGBA{40, 40, 40, 255}
	labelColor      = &widget.LabelColor{Idle: color.White, Disabled: color.Gray{Y: 140}}
	dialogLabel     = &widget.LabelColor{Idle: color.Black, Disabled: color.Gray{Y: 140}}
)

// solidNineSlice returns a solid color *image.NineSlice for widget backgrounds.
func solidNineSlice(c color.Color) *image.NineSlice {
	return image.NewNineSliceColor(c)
}

func loadFontFace(size float64) (text.Face, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &text.GoTextFace{Source: s, Size: size}, nil
}

func newEditorTheme(fontFace *text.Face) *widget.Theme {
	return &widget.Theme{
		ListTheme: &widget.ListParams{
			EntryFace: fontFace,
			EntryColor: &widget.ListEntryColor{
				Unselected:          color.Black,
				Selected:            color.RGBA{0, 0, 128, 255},
				DisabledUnselected:  color.Gray{Y: 128},
				DisabledSelected:    color.Gray{Y: 64},
				SelectingBackground: color.RGBA{200, 220, 255, 255},
				SelectedBackground:  color.RGBA{180, 200, 255, 255},
			},
			ScrollContainerImage: &widget.ScrollContainerImage{
				Idle: solidNineSlice(color.RGBA{220, 220, 220, 255}),
				Mask: solidNineSlice(color.RGBA{220, 220, 220, 255}),
			},
		},
		PanelTheme: &widget.PanelParams{
			BackgroundImage: solidNineSlice(panelBackground),
		},
		ButtonTheme: &widget.ButtonParams{
			Image: &widget.ButtonImage{
				Idle:     solidNineSlice(color.RGBA{180, 180, 180, 255}),
				Hover:    solidNineSlice(color.RGBA{200, 200, 200, 255}),
				Pressed:  solidNineSlice(color.RGBA{160, 160, 160, 255}),
				Disabled: solidNineSlice(color.RGBA{110, 110, 110, 255}),
			},
			TextFace: fontFace,
			TextColor: &widget.ButtonTextColor{
				Idle:     color.Black,
				Disabled: color.Gray{Y: 160},
			},
		},
	}
}

func newTextInput(fontFace *text.Face, opts ...widget.TextInputOpt) *widget.TextInput {
	base := []widget.TextInputOpt{
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(200, 26),
		),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     solidNineSlice(color.RGBA{245, 245, 245, 255}),
			Disabled: solidNineSlice(color.RGBA{120, 120, 120, 255}),
		}),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:     color.Black,
			Disabled: color.Gray{Y: 200},
			Caret:    color.Black,
		}),
		widget.TextInputOpts.Face(fontFace),
	}
	return widget.NewTextInput(append(base, opts...)...)
}
