package effect

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Shape is a star polygon drifting over the field. Radius, inset and side
// count are fixed at creation; position, angle and hue change every frame.
type Shape struct {
	X, Y           float64
	SpeedX, SpeedY float64
	Angle          float64
	Rotation       float64 // bias applied during the last update
	Hue            int

	radius float64
	inset  float64
	sides  int
}

// NewShape creates a shape at rest orientation with hue 0.
func NewShape(x, y, radius, inset float64, sides int, speedX, speedY float64) *Shape {
	return &Shape{
		X:      x,
		Y:      y,
		SpeedX: speedX,
		SpeedY: speedY,
		radius: radius,
		inset:  inset,
		sides:  sides,
	}
}

func (s *Shape) Radius() float64 { return s.radius }
func (s *Shape) Inset() float64 { return s.inset }
func (s *Shape) Sides() int { return s.sides }

// Vertices returns the 2*sides corners of the polygon, alternating between
// the outer radius and the inset radius. The first corner points straight up
// before rotation; angles grow clockwise on screen.
func (s *Shape) Vertices() []Point {
	n := 2 * s.sides
	pts := make([]Point, n)
	step := math.Pi / float64(s.sides)
	for k := range pts {
		d := s.radius
		if k%2 == 1 {
			d *= s.inset
		}
		sin, cos := math.Sincos(s.Angle + float64(k)*step)
		pts[k] = Point{X: s.X + d*sin, Y: s.Y - d*cos}
	}
	return pts
}

// Color is the current hue at full saturation and half lightness.
func (s *Shape) Color() colorful.Color {
	h := math.Mod(float64(s.Hue), 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsl(h, 1, 0.5)
}

// Draw fills the polygon with fill and outlines it with outline.
func (s *Shape) Draw(dst Surface, fill Paint, outline color.Color) {
	pts := s.Vertices()
	dst.FillPolygon(pts, fill)
	dst.StrokePolygon(pts, 1, outline)
}

// Update advances the shape one frame and picks up the bias of the cell it
// lands in. Outside the grid the angle is left alone.
func (s *Shape) Update(f *Field) {
	s.Hue++
	s.Rotation = 0
	s.X += s.SpeedX
	s.Y += s.SpeedY
	col, row, ok := f.CellAt(s.X, s.Y)
	if !ok {
		return
	}
	s.Rotation, _ = f.Bias(col, row)
	s.Angle += s.Rotation
}
