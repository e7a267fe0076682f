package ui

import (
	"image"
	"image/color"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"

	"github.com/OpenTraceLab/MeanderTrace/pkg/geom"
)

// gioCanvas draws preview primitives into the current Gio frame. It assumes
// the caller has already clipped and offset the ops to the viewport area, so
// all coordinates are viewport-local pixels.
type gioCanvas struct {
	gtx    layout.Context
	shaper *text.Shaper
	size   image.Point

	strokeColor color.NRGBA
	strokeWidth float64
}

func newGioCanvas(gtx layout.Context, shaper *text.Shaper, size image.Point) *gioCanvas {
	return &gioCanvas{gtx: gtx, shaper: shaper, size: size, strokeWidth: 1}
}

func (c *gioCanvas) Clear(bg color.NRGBA) {
	paint.FillShape(c.gtx.Ops, bg, clip.Rect{Max: c.size}.Op())
}

func (c *gioCanvas) SetStroke(col color.NRGBA, width float64) {
	c.strokeColor = col
	c.strokeWidth = width
}

func (c *gioCanvas) DrawLine(from, to geom.Position) {
	var path clip.Path
	path.Begin(c.gtx.Ops)
	path.MoveTo(f32.Pt(float32(from.X), float32(from.Y)))
	path.LineTo(f32.Pt(float32(to.X), float32(to.Y)))

	stroke := clip.Stroke{
		Path:  path.End(),
		Width: float32(c.strokeWidth),
	}.Op()

	paint.FillShape(c.gtx.Ops, c.strokeColor, stroke)
}

func (c *gioCanvas) DrawText(s string, at geom.Position) {
	// Record into a macro so the label's own clip state stays isolated.
	macro := op.Record(c.gtx.Ops)

	stack := op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(at.X), float32(at.Y)))).Push(c.gtx.Ops)
	paint.ColorOp{Color: c.strokeColor}.Add(c.gtx.Ops)

	label := widget.Label{
		Alignment: text.Start,
		MaxLines:  1,
	}
	label.Layout(c.gtx, c.shaper, font.Font{}, unit.Sp(14), s, op.CallOp{})

	stack.Pop()
	call := macro.Stop()
	call.Add(c.gtx.Ops)
}
