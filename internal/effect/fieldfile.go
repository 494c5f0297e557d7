package effect

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrFieldShape is returned when a saved grid does not match the field.
var ErrFieldShape = errors.New("saved grid does not match field dimensions")

type fieldFile struct {
	CellSize float64     `json:"cellSize"`
	Biases   [][]float64 `json:"biases"` // [col][row]
}

// SaveField writes the biases of f to path as JSON.
func SaveField(path string, f *Field) error {
	data, err := json.Marshal(fieldFile{CellSize: f.CellSize, Biases: f.biases})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadField replaces the biases of f with the ones stored at path. The saved
// grid must have the same cell size and dimensions; f is left untouched
// otherwise.
func LoadField(path string, f *Field) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var ff fieldFile
	if err := json.Unmarshal(data, &ff); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if ff.CellSize != f.CellSize || len(ff.Biases) != f.Cols {
		return fmt.Errorf("%w: %s", ErrFieldShape, path)
	}
	for _, col := range ff.Biases {
		if len(col) != f.Rows {
			return fmt.Errorf("%w: %s", ErrFieldShape, path)
		}
	}
	f.biases = ff.Biases
	return nil
}
