package effect

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"
)

func TestNewFieldDimensions(t *testing.T) {
	tests := []struct {
		w, h, cell float64
		cols, rows int
	}{
		{600, 600, 100, 6, 6},
		{650, 599, 100, 6, 5},
		{800, 600, 75, 10, 8},
		{40, 40, 100, 0, 0},
	}
	for _, tt := range tests {
		f, err := NewField(tt.w, tt.h, tt.cell, constBias(0))
		if err != nil {
			t.Fatalf("NewField(%v,%v,%v): %v", tt.w, tt.h, tt.cell, err)
		}
		if f.Cols != tt.cols || f.Rows != tt.rows {
			t.Errorf("NewField(%v,%v,%v) = %dx%d, want %dx%d", tt.w, tt.h, tt.cell, f.Cols, f.Rows, tt.cols, tt.rows)
		}
	}
}

func TestNewFieldRejectsBadCellSize(t *testing.T) {
	for _, cell := range []float64{0, -10, math.NaN(), math.Inf(1)} {
		if _, err := NewField(600, 600, cell, constBias(0)); !errors.Is(err, ErrCellSize) {
			t.Errorf("cell %v: err = %v, want ErrCellSize", cell, err)
		}
	}
}

func TestCellAt(t *testing.T) {
	f := testField(t, 600, 600, 100)
	tests := []struct {
		x, y     float64
		col, row int
		ok       bool
	}{
		{0, 0, 0, 0, true},
		{205, 305, 2, 3, true},
		{599.9, 599.9, 5, 5, true},
		{600, 10, 6, 0, false},
		{-0.1, 10, -1, 0, false},
		{10, -250, 0, -3, false},
	}
	for _, tt := range tests {
		col, row, ok := f.CellAt(tt.x, tt.y)
		if col != tt.col || row != tt.row || ok != tt.ok {
			t.Errorf("CellAt(%v,%v) = %d,%d,%v, want %d,%d,%v", tt.x, tt.y, col, row, ok, tt.col, tt.row, tt.ok)
		}
	}
}

func TestSetIgnoresOutOfRange(t *testing.T) {
	f := testField(t, 200, 200, 100)
	f.Set(-1, 0, 1)
	f.Set(2, 0, 1)
	f.Set(0, 2, 1)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if b, _ := f.Bias(i, j); b != 0 {
				t.Errorf("bias(%d,%d) = %v", i, j, b)
			}
		}
	}
}

func TestUniformBiasRange(t *testing.T) {
	src := UniformBias{Min: -0.025, Max: 0.075, Rand: rand.New(rand.NewSource(3))}
	f, err := NewField(1000, 1000, 10, src)
	if err != nil {
		t.Fatal(err)
	}
	var neg, pos bool
	for i := 0; i < f.Cols; i++ {
		for j := 0; j < f.Rows; j++ {
			b, _ := f.Bias(i, j)
			if b < -0.025 || b >= 0.075 {
				t.Fatalf("bias(%d,%d) = %v outside [-0.025,0.075)", i, j, b)
			}
			neg = neg || b < 0
			pos = pos || b > 0
		}
	}
	if !neg || !pos {
		t.Error("10000 samples never crossed zero")
	}
}

func TestNoiseBiasRangeAndSmoothness(t *testing.T) {
	src := NewNoiseBias(-0.25, 0.25, 0.1, 42)
	f, err := NewField(600, 600, 20, src)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < f.Cols; i++ {
		for j := 0; j < f.Rows; j++ {
			b, _ := f.Bias(i, j)
			if b < -0.25 || b >= 0.25 {
				t.Fatalf("bias(%d,%d) = %v outside [-0.25,0.25)", i, j, b)
			}
			if i > 0 {
				prev, _ := f.Bias(i-1, j)
				if math.Abs(b-prev) > 0.25 {
					t.Errorf("neighbours (%d,%d) and (%d,%d) differ by %v", i-1, j, i, j, b-prev)
				}
			}
		}
	}
	if again := NewNoiseBias(-0.25, 0.25, 0.1, 42).Sample(3, 4); again != src.Sample(3, 4) {
		t.Error("same seed produced a different field")
	}
}

func TestFieldString(t *testing.T) {
	f := testField(t, 200, 100, 100)
	f.Set(1, 0, -0.125)
	got := f.String()
	if !strings.HasPrefix(got, "2x1 cells of 100") || !strings.Contains(got, "-0.125") {
		t.Errorf("String() = %q", got)
	}
}
