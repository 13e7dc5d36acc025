package main

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var (
	canvasBackground = color.RGBA{255, 255, 255, 255}
	placeholderFill  = color.RGBA{160, 160, 160, 255}
	placeholderText  = color.RGBA{40, 40, 40, 255}
	outlineColor     = color.RGBA{220, 30, 30, 255}
)

const (
	outlineWidth  = 2
	pulseLow      = 0.35
	pulseDuration = 0.6
)

var errEmptyBounds = errors.New("canvas: empty sprite bounds")

// canvasSurface renders the stage into an offscreen image that the editor
// blits next to the left panel. Scaled sprites live for one redraw tick.
type canvasSurface struct {
	img    *ebiten.Image
	face   text.Face
	scaled []*ebiten.Image

	// tickSeconds advances the outline pulse once per redraw.
	tickSeconds float32
	pulse       *gween.Tween
	pulseUp     bool
	alpha       float32
}

func newCanvasSurface(w, h int, face text.Face, tickSeconds float32) *canvasSurface {
	c := &canvasSurface{
		img:         ebiten.NewImage(w, h),
		face:        face,
		tickSeconds: tickSeconds,
		alpha:       1,
	}
	c.img.Fill(canvasBackground)
	c.pulse = gween.New(1, pulseLow, pulseDuration, ease.InOutSine)
	return c
}

func (c *canvasSurface) Image() *ebiten.Image { return c.img }

func (c *canvasSurface) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Contains reports whether a canvas-local point lies on the canvas.
func (c *canvasSurface) Contains(x, y int) bool {
	return image.Pt(x, y).In(c.img.Bounds())
}

func (c *canvasSurface) Begin() {
	for _, img := range c.scaled {
		img.Deallocate()
	}
	c.scaled = c.scaled[:0]
	c.img.Fill(canvasBackground)
	c.advancePulse()
}

func (c *canvasSurface) DrawSprite(src image.Image, bounds image.Rectangle) error {
	if bounds.Empty() {
		return errEmptyBounds
	}
	img := scaleImageToCanvas(src, bounds.Dx(), bounds.Dy())
	if img == nil {
		return errEmptyBounds
	}
	c.scaled = append(c.scaled, img)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(bounds.Min.X), float64(bounds.Min.Y))
	c.img.DrawImage(img, op)
	return nil
}

func (c *canvasSurface) DrawPlaceholder(bounds image.Rectangle, label string) {
	x, y := float32(bounds.Min.X), float32(bounds.Min.Y)
	w, h := float32(bounds.Dx()), float32(bounds.Dy())
	vector.FillRect(c.img, x, y, w, h, placeholderFill, false)
	if c.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Translate(float64(x+w/2), float64(y+h/2))
	op.ColorScale.ScaleWithColor(placeholderText)
	text.Draw(c.img, label, c.face, op)
}

func (c *canvasSurface) DrawOutline(bounds image.Rectangle) {
	clr := outlineColor
	clr.A = uint8(255 * c.alpha)
	vector.StrokeRect(c.img,
		float32(bounds.Min.X), float32(bounds.Min.Y),
		float32(bounds.Dx()), float32(bounds.Dy()),
		outlineWidth, clr, false)
}

// advancePulse steps the outline alpha between 1 and pulseLow, reversing
// direction each time the tween finishes.
func (c *canvasSurface) advancePulse() {
	alpha, done := c.pulse.Update(c.tickSeconds)
	c.alpha = alpha
	if !done {
		return
	}
	c.pulseUp = !c.pulseUp
	if c.pulseUp {
		c.pulse = gween.New(pulseLow, 1, pulseDuration, ease.InOutSine)
	} else {
		c.pulse = gween.New(1, pulseLow, pulseDuration, ease.InOutSine)
	}
}

// scaleImageToCanvas converts img to an ebiten image of exactly targetW x
// targetH. The unscaled upload is released once drawn.
func scaleImageToCanvas(img image.Image, targetW, targetH int) *ebiten.Image {
	if img == nil || targetW <= 0 || targetH <= 0 {
		return nil
	}
	src := ebiten.NewImageFromImage(img)
	sw := src.Bounds().Dx()
	sh := src.Bounds().Dy()
	if sw == targetW && sh == targetH {
		return src
	}
	dst := ebiten.NewImage(targetW, targetH)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(targetW)/float64(sw), float64(targetH)/float64(sh))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	src.Deallocate()
	return dst
}
