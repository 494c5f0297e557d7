package effect

import "fmt"

// EdgePolicy keeps a shape inside a width x height canvas.
type EdgePolicy interface {
	Apply(s *Shape, width, height float64)
	String() string
}

// Bounce reverses a velocity component once the shape's rim crosses an edge.
type Bounce struct{}

func (Bounce) Apply(s *Shape, width, height float64) {
	if s.X < s.radius || s.X > width-s.radius {
		s.SpeedX = -s.SpeedX
	}
	if s.Y < s.radius || s.Y > height-s.radius {
		s.SpeedY = -s.SpeedY
	}
}

func (Bounce) String() string { return "bounce" }

// Wrap moves a shape whose centre left the canvas to the opposite edge.
type Wrap struct{}

func (Wrap) Apply(s *Shape, width, height float64) {
	if s.X < 0 {
		s.X = width
	} else if s.X > width {
		s.X = 0
	}
	if s.Y < 0 {
		s.Y = height
	} else if s.Y > height {
		s.Y = 0
	}
}

func (Wrap) String() string { return "wrap" }

// ParseEdgePolicy maps "bounce" or "wrap" to its policy.
func ParseEdgePolicy(name string) (EdgePolicy, error) {
	switch name {
	case "bounce":
		return Bounce{}, nil
	case "wrap":
		return Wrap{}, nil
	}
	return nil, fmt.Errorf("unknown edge policy %q", name)
}
