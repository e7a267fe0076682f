package preview

import (
	"image/color"
	"testing"

	"github.com/OpenTraceLab/MeanderTrace/pkg/geom"
)

func TestImageCanvasClear(t *testing.T) {
	c := NewImageCanvas(20, 10)
	bg := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	c.Clear(bg)

	img := c.Image()
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Fatalf("image bounds = %v", img.Bounds())
	}
	got := img.RGBAAt(5, 5)
	if got.R != 10 || got.G != 20 || got.B != 30 {
		t.Errorf("pixel after clear = %v, want %v", got, bg)
	}
}

func TestImageCanvasDrawLine(t *testing.T) {
	c := NewImageCanvas(40, 40)
	c.Clear(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	c.SetStroke(color.NRGBA{R: 200, G: 0, B: 0, A: 255}, 3)
	c.DrawLine(geom.Position{X: 5, Y: 20}, geom.Position{X: 35, Y: 20})

	// A pixel on the line midpoint must be dominated by the stroke color.
	got := c.Image().RGBAAt(20, 20)
	if got.R < 150 || got.G > 100 {
		t.Errorf("midpoint pixel = %v, line not drawn", got)
	}

	// A pixel well off the line stays background.
	if got := c.Image().RGBAAt(20, 5); got.R != 255 || got.G != 255 {
		t.Errorf("off-line pixel = %v, want background", got)
	}
}

func TestImageCanvasZeroLengthLine(t *testing.T) {
	c := NewImageCanvas(10, 10)
	c.Clear(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	c.SetStroke(color.NRGBA{A: 255}, 2)
	// Must not panic or divide by zero.
	c.DrawLine(geom.Position{X: 5, Y: 5}, geom.Position{X: 5, Y: 5})
}

func TestImageCanvasDrawText(t *testing.T) {
	c := NewImageCanvas(200, 40)
	c.Clear(color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	c.SetStroke(color.NRGBA{A: 255}, 1)
	c.DrawText("Preview unavailable", geom.Position{X: 10, Y: 10})

	// At least one pixel in the text band darkened.
	found := false
	for x := 10; x < 150 && !found; x++ {
		for y := 10; y < 26 && !found; y++ {
			px := c.Image().RGBAAt(x, y)
			if px.R < 200 {
				found = true
			}
		}
	}
	if !found {
		t.Error("no text pixels rendered")
	}
}
