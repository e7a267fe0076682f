package preview

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/OpenTraceLab/MeanderTrace/pkg/geom"
)

// ImageCanvas implements Canvas on an in-memory RGBA image. It backs the
// headless `meander render` command and renderer tests; output quality is
// schematic grade, not production plotting.
type ImageCanvas struct {
	img   *image.RGBA
	col   color.NRGBA
	width float64
}

// NewImageCanvas creates a canvas of the given pixel size.
func NewImageCanvas(width, height int) *ImageCanvas {
	return &ImageCanvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		col:   color.NRGBA{A: 255},
		width: 1,
	}
}

// Image returns the backing image.
func (c *ImageCanvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole image with a background color.
func (c *ImageCanvas) Clear(bg color.NRGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

// SetStroke sets the color and width used by subsequent DrawLine calls.
func (c *ImageCanvas) SetStroke(col color.NRGBA, width float64) {
	c.col = col
	c.width = width
}

// DrawLine strokes the line as a filled quad rasterized by x/image/vector.
func (c *ImageCanvas) DrawLine(from, to geom.Position) {
	dx := to.X - from.X
	dy := to.Y - from.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	// Half-width offset along the line normal.
	nx := -dy / length * c.width / 2
	ny := dx / length * c.width / 2

	bounds := c.img.Bounds()
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.MoveTo(float32(from.X+nx), float32(from.Y+ny))
	z.LineTo(float32(to.X+nx), float32(to.Y+ny))
	z.LineTo(float32(to.X-nx), float32(to.Y-ny))
	z.LineTo(float32(from.X-nx), float32(from.Y-ny))
	z.ClosePath()
	z.Draw(c.img, bounds, image.NewUniform(c.col), image.Point{})
}

// DrawText renders the string with the fixed 7x13 bitmap face, top-left
// anchored at the given position.
func (c *ImageCanvas) DrawText(s string, at geom.Position) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(c.col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(at.X), int(at.Y)+basicfont.Face7x13.Ascent),
	}
	d.DrawString(s)
}
