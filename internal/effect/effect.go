// Package effect animates star-shaped polygons drifting over a grid of
// rotation biases.
//
// Each frame the Effect draws every shape where it currently is, then moves
// it, lets the grid cell under it add to its rotation, and keeps it on the
// canvas with the variant's edge policy.
package effect

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
)

// ErrCanvasSize is returned for a canvas without a positive, finite size.
var ErrCanvasSize = errors.New("canvas size must be positive")

// Effect owns the grid field and the shape set.
type Effect struct {
	Width, Height float64
	Field         *Field
	Shapes        []*Shape
	Edges         EdgePolicy

	// Debug hides the grid overlay when true. The name is kept from the
	// original effect even though it reads backwards; see OverlayVisible.
	Debug bool
	// Paused shapes are still drawn but not advanced.
	Paused bool

	variant  Variant
	controls Controls
	rng      *rand.Rand
	gradient Paint
}

// New validates v, builds the field once and fills the shape set from
// controls.
func New(width, height float64, v Variant, controls Controls, rng *rand.Rand) (*Effect, error) {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 1) || math.IsInf(height, 1) {
		return nil, fmt.Errorf("%w: %vx%v", ErrCanvasSize, width, height)
	}
	if err := v.Validate(); err != nil {
		return nil, err
	}
	edges, _ := ParseEdgePolicy(v.Edges)
	field, err := NewField(width, height, v.CellSize, v.biasSource(rng))
	if err != nil {
		return nil, err
	}
	e := &Effect{
		Width:    width,
		Height:   height,
		Field:    field,
		Edges:    edges,
		Debug:    true,
		variant:  v,
		controls: controls,
		rng:      rng,
	}
	if v.Gradient {
		from, to, _ := v.gradientColors()
		e.gradient = LinearGradient{X1: width, Y1: height, From: from, To: to}
	}
	if v.LogGrid {
		log.Printf("%s field: %s", v.Name, field)
	}
	e.InitShapes()
	return e, nil
}

// Variant returns the configuration the effect was built from.
func (e *Effect) Variant() Variant { return e.variant }

// InitShapes throws the current shapes away and creates a fresh set from the
// controls.
func (e *Effect) InitShapes() {
	n := e.controls.ShapeCount()
	if n < 0 {
		n = 0
	}
	shapes := make([]*Shape, n)
	for i := range shapes {
		radius := e.controls.Radius()
		x := e.rng.Float64()*(e.Width-radius-radius) + radius
		y := e.rng.Float64()*(e.Height-radius-radius) + radius
		speedX := e.rng.Float64() - 0.5
		speedY := e.rng.Float64() - 0.5
		shapes[i] = NewShape(x, y, radius, e.controls.Inset(), e.controls.Sides(), speedX, speedY)
	}
	e.Shapes = shapes
}

// Regrid resamples the field biases from the variant's bias source.
func (e *Effect) Regrid() {
	e.Field.Randomize(e.variant.biasSource(e.rng))
}

// ToggleDebug flips overlay visibility.
func (e *Effect) ToggleDebug() { e.Debug = !e.Debug }

// OverlayVisible reports whether Render draws the grid.
func (e *Effect) OverlayVisible() bool { return !e.Debug }

// Render draws one frame and advances every shape by one step. Shapes are
// drawn before they move, so the picture shows the state the frame started
// with.
func (e *Effect) Render(dst Surface) {
	if e.OverlayVisible() {
		e.drawGrid(dst)
	}
	for _, s := range e.Shapes {
		fill, outline := e.paints(s)
		s.Draw(dst, fill, outline)
		if e.Paused {
			continue
		}
		s.Update(e.Field)
		e.Edges.Apply(s, e.Width, e.Height)
	}
}

func (e *Effect) paints(s *Shape) (Paint, color.Color) {
	c := s.Color()
	if e.gradient != nil {
		return e.gradient, c
	}
	return Solid(c), color.White
}

func (e *Effect) drawGrid(dst Surface) {
	f := e.Field
	for i := 0; i < f.Cols; i++ {
		for j := 0; j < f.Rows; j++ {
			x, y := float64(i)*f.CellSize, float64(j)*f.CellSize
			dst.StrokeRect(x, y, f.CellSize, f.CellSize, 1, color.White)
			b, _ := f.Bias(i, j)
			dst.Text(fmt.Sprintf("%.2f", b), x, y, color.White)
		}
	}
}
