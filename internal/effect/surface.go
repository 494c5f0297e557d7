package effect

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Point is a position in canvas pixels.
type Point struct {
	X, Y float64
}

// Surface is the drawing target. Coordinates are absolute canvas pixels.
type Surface interface {
	FillPolygon(pts []Point, paint Paint)
	StrokePolygon(pts []Point, width float64, c color.Color)
	StrokeRect(x, y, w, h, width float64, c color.Color)
	// Text draws s with its top-left corner at (x, y).
	Text(s string, x, y float64, c color.Color)
}

// Paint gives the fill colour at a canvas position.
type Paint interface {
	At(x, y float64) colorful.Color
}

// Solid paints every point the same colour.
type Solid colorful.Color

func (s Solid) At(x, y float64) colorful.Color { return colorful.Color(s) }

// LinearGradient blends From into To along the segment (X0,Y0)-(X1,Y1).
// Points beyond either end take the end colour.
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	From, To       colorful.Color
}

func (g LinearGradient) At(x, y float64) colorful.Color {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return g.From
	}
	t := ((x-g.X0)*dx + (y-g.Y0)*dy) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return g.From.BlendRgb(g.To, t)
}
