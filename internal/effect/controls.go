package effect

import "math"

// Controls supplies the shape parameters read each time the shape set is
// rebuilt.
type Controls interface {
	ShapeCount() int
	Radius() float64
	Inset() float64
	Sides() int
}

// Slider is a bounded value moved in fixed steps.
type Slider struct {
	Value, Min, Max, Step float64
}

// Nudge moves the value by steps*Step, clamped to [Min, Max], and reports
// whether it changed.
func (s *Slider) Nudge(steps int) bool {
	v := s.Value + float64(steps)*s.Step
	// keep decimal steps from drifting (0.1+0.2 and friends)
	v = math.Round(v*1e6) / 1e6
	v = math.Max(s.Min, math.Min(s.Max, v))
	if v == s.Value {
		return false
	}
	s.Value = v
	return true
}

// Sliders is the on-screen control panel.
type Sliders struct {
	Count  Slider
	Size   Slider
	Notch  Slider
	Points Slider
}

// NewSliders starts the panel at the variant's defaults.
func NewSliders(v Variant) *Sliders {
	return &Sliders{
		Count:  Slider{Value: float64(v.ShapeCount), Min: 1, Max: 200, Step: 1},
		Size:   Slider{Value: v.Radius, Min: 5, Max: 150, Step: 5},
		Notch:  Slider{Value: v.Inset, Min: 0.05, Max: 0.95, Step: 0.05},
		Points: Slider{Value: float64(v.Sides), Min: 3, Max: 20, Step: 1},
	}
}

func (s *Sliders) ShapeCount() int { return int(s.Count.Value) }
func (s *Sliders) Radius() float64 { return s.Size.Value }
func (s *Sliders) Inset() float64 { return s.Notch.Value }
func (s *Sliders) Sides() int { return int(s.Points.Value) }
