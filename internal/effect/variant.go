package effect

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidVariant wraps every variant validation failure.
var ErrInvalidVariant = errors.New("invalid variant")

// Variant holds the tunables of one flavour of the effect.
type Variant struct {
	Name       string  `json:"name"`
	ShapeCount int     `json:"shapeCount"`
	Radius     float64 `json:"radius"`
	Inset      float64 `json:"inset"`
	Sides      int     `json:"sides"`

	CellSize   float64 `json:"cellSize"`
	BiasMin    float64 `json:"biasMin"`
	BiasMax    float64 `json:"biasMax"`
	BiasSource string  `json:"biasSource"` // "uniform" or "noise"
	NoiseScale float64 `json:"noiseScale"`

	Edges string `json:"edges"` // "bounce" or "wrap"

	Gradient     bool   `json:"gradient"`
	GradientFrom string `json:"gradientFrom"`
	GradientTo   string `json:"gradientTo"`

	// LogGrid dumps the field to the log once after construction.
	LogGrid bool `json:"logGrid"`
}

// Variants are the built-in presets, keyed by name.
var Variants = map[string]Variant{
	"drift": {
		Name:       "drift",
		ShapeCount: 20,
		Radius:     40,
		Inset:      0.5,
		Sides:      5,
		CellSize:   100,
		BiasMin:    -0.05,
		BiasMax:    0,
		BiasSource: "uniform",
		Edges:      "bounce",
	},
	"swirl": {
		Name:       "swirl",
		ShapeCount: 60,
		Radius:     20,
		Inset:      0.4,
		Sides:      6,
		CellSize:   50,
		BiasMin:    -0.25,
		BiasMax:    0.25,
		BiasSource: "noise",
		NoiseScale: 0.15,
		Edges:      "wrap",
		LogGrid:    true,
	},
	"prism": {
		Name:         "prism",
		ShapeCount:   30,
		Radius:       30,
		Inset:        0.6,
		Sides:        8,
		CellSize:     75,
		BiasMin:      -0.025,
		BiasMax:      0.075,
		BiasSource:   "uniform",
		Edges:        "bounce",
		Gradient:     true,
		GradientFrom: "#ff2a6d",
		GradientTo:   "#05d9e8",
	},
}

// VariantNames lists the presets in a stable order.
func VariantNames() []string {
	names := make([]string, 0, len(Variants))
	for name := range Variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadVariant reads a JSON file on top of base; fields missing from the file
// keep the base values.
func LoadVariant(path string, base Variant) (Variant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	v := base
	if err := json.Unmarshal(data, &v); err != nil {
		return base, fmt.Errorf("decode %s: %w", path, err)
	}
	return v, nil
}

// Validate checks that the variant describes a usable effect.
func (v Variant) Validate() error {
	switch {
	case !(v.CellSize > 0) || math.IsInf(v.CellSize, 1):
		return fmt.Errorf("%w: %w: %v", ErrInvalidVariant, ErrCellSize, v.CellSize)
	case v.ShapeCount < 1:
		return fmt.Errorf("%w: shape count %d < 1", ErrInvalidVariant, v.ShapeCount)
	case !(v.Radius > 0):
		return fmt.Errorf("%w: radius %v must be positive", ErrInvalidVariant, v.Radius)
	case !(v.Inset > 0 && v.Inset < 1):
		return fmt.Errorf("%w: inset %v outside (0,1)", ErrInvalidVariant, v.Inset)
	case v.Sides < 3:
		return fmt.Errorf("%w: sides %d < 3", ErrInvalidVariant, v.Sides)
	case !(v.BiasMin < v.BiasMax):
		return fmt.Errorf("%w: bias range [%v,%v) is empty", ErrInvalidVariant, v.BiasMin, v.BiasMax)
	}
	if _, err := ParseEdgePolicy(v.Edges); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidVariant, err)
	}
	switch v.BiasSource {
	case "", "uniform":
	case "noise":
		if !(v.NoiseScale > 0) {
			return fmt.Errorf("%w: noise scale %v must be positive", ErrInvalidVariant, v.NoiseScale)
		}
	default:
		return fmt.Errorf("%w: unknown bias source %q", ErrInvalidVariant, v.BiasSource)
	}
	if v.Gradient {
		if _, _, err := v.gradientColors(); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidVariant, err)
		}
	}
	return nil
}

func (v Variant) gradientColors() (from, to colorful.Color, err error) {
	if from, err = colorful.Hex(v.GradientFrom); err != nil {
		return from, to, fmt.Errorf("gradient from %q: %w", v.GradientFrom, err)
	}
	if to, err = colorful.Hex(v.GradientTo); err != nil {
		return from, to, fmt.Errorf("gradient to %q: %w", v.GradientTo, err)
	}
	return from, to, nil
}

func (v Variant) biasSource(rng *rand.Rand) BiasSource {
	if v.BiasSource == "noise" {
		return NewNoiseBias(v.BiasMin, v.BiasMax, v.NoiseScale, rng.Int63())
	}
	return UniformBias{Min: v.BiasMin, Max: v.BiasMax, Rand: rng}
}
