package effect

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/aquilax/go-perlin"
)

// ErrCellSize is returned when a field is built with a non-positive cell size.
var ErrCellSize = errors.New("cell size must be positive")

// BiasSource produces the initial rotation bias of a grid cell.
type BiasSource interface {
	Sample(col, row int) float64
}

// UniformBias samples every cell independently from [Min, Max).
type UniformBias struct {
	Min, Max float64
	Rand     *rand.Rand
}

func (u UniformBias) Sample(col, row int) float64 {
	return u.Rand.Float64()*(u.Max-u.Min) + u.Min
}

// NoiseBias samples a Perlin noise field so that neighbouring cells get
// similar biases. Scale is the noise frequency per cell.
type NoiseBias struct {
	Min, Max float64
	Scale    float64
	noise    *perlin.Perlin
}

func NewNoiseBias(min, max, scale float64, seed int64) NoiseBias {
	return NoiseBias{
		Min:   min,
		Max:   max,
		Scale: scale,
		noise: perlin.NewPerlin(2, 2, 3, seed),
	}
}

func (n NoiseBias) Sample(col, row int) float64 {
	// Noise2D stays roughly within [-1, 1]; map it onto [0, 1) and clamp.
	v := (n.noise.Noise2D(float64(col)*n.Scale, float64(row)*n.Scale) + 1) / 2
	v = math.Max(0, math.Min(v, math.Nextafter(1, 0)))
	return v*(n.Max-n.Min) + n.Min
}

// Field is a grid of rotation biases laid over the canvas. Only whole cells
// are covered: pixels past the last full column or row have no cell.
type Field struct {
	CellSize   float64
	Cols, Rows int
	biases     [][]float64 // [col][row]
}

// NewField builds a cols x rows field and samples every cell from src.
func NewField(width, height, cellSize float64, src BiasSource) (*Field, error) {
	if !(cellSize > 0) || math.IsInf(cellSize, 1) {
		return nil, fmt.Errorf("%w: %v", ErrCellSize, cellSize)
	}
	f := &Field{
		CellSize: cellSize,
		Cols:     int(width / cellSize),
		Rows:     int(height / cellSize),
	}
	f.biases = make([][]float64, f.Cols)
	for i := range f.biases {
		f.biases[i] = make([]float64, f.Rows)
	}
	f.Randomize(src)
	return f, nil
}

// Randomize resamples every cell from src.
func (f *Field) Randomize(src BiasSource) {
	for i := range f.biases {
		for j := range f.biases[i] {
			f.biases[i][j] = src.Sample(i, j)
		}
	}
}

// Bias returns the bias of a cell, or false when the cell is outside the grid.
func (f *Field) Bias(col, row int) (float64, bool) {
	if col < 0 || col >= f.Cols || row < 0 || row >= f.Rows {
		return 0, false
	}
	return f.biases[col][row], true
}

// Set overwrites a cell. Out of range cells are ignored.
func (f *Field) Set(col, row int, v float64) {
	if col < 0 || col >= f.Cols || row < 0 || row >= f.Rows {
		return
	}
	f.biases[col][row] = v
}

// CellAt returns the cell containing (x, y).
func (f *Field) CellAt(x, y float64) (col, row int, ok bool) {
	col = int(math.Floor(x / f.CellSize))
	row = int(math.Floor(y / f.CellSize))
	_, ok = f.Bias(col, row)
	return col, row, ok
}

// String renders the grid row by row, mostly for logging.
func (f *Field) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%dx%d cells of %g", f.Cols, f.Rows, f.CellSize)
	for j := 0; j < f.Rows; j++ {
		b.WriteString("\n")
		for i := 0; i < f.Cols; i++ {
			if i > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "%6.3f", f.biases[i][j])
		}
	}
	return b.String()
}
