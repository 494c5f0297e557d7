package effect

import (
	"errors"
	"math/rand"
	"path/filepath"
	"testing"
)

func TestSaveLoadField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.json")
	src := UniformBias{Min: -0.05, Max: 0, Rand: rand.New(rand.NewSource(9))}
	saved, err := NewField(600, 400, 100, src)
	if err != nil {
		t.Fatal(err)
	}
	if err := SaveField(path, saved); err != nil {
		t.Fatalf("SaveField: %v", err)
	}

	loaded := testField(t, 600, 400, 100)
	if err := LoadField(path, loaded); err != nil {
		t.Fatalf("LoadField: %v", err)
	}
	for i := 0; i < saved.Cols; i++ {
		for j := 0; j < saved.Rows; j++ {
			want, _ := saved.Bias(i, j)
			if got, _ := loaded.Bias(i, j); got != want {
				t.Errorf("bias(%d,%d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestLoadFieldShapeMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "grid.json")
	if err := SaveField(path, testField(t, 600, 600, 100)); err != nil {
		t.Fatal(err)
	}
	for _, f := range []*Field{
		testField(t, 600, 600, 50),
		testField(t, 700, 600, 100),
		testField(t, 600, 500, 100),
	} {
		f.Randomize(constBias(0.5))
		if err := LoadField(path, f); !errors.Is(err, ErrFieldShape) {
			t.Errorf("%dx%d/%v: err = %v, want ErrFieldShape", f.Cols, f.Rows, f.CellSize, err)
		}
		if b, _ := f.Bias(0, 0); b != 0.5 {
			t.Error("failed load modified the field")
		}
	}
}
