package xcorr2d

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-xcorr/dsp/core"
)

// Grid is a real 2D sample grid stored in row-major order.
type Grid struct {
	Rows int
	Cols int
	Data []float64
}

// NewGrid returns a zero-filled rows×cols grid.
func NewGrid(rows, cols int) Grid {
	if rows < 0 || cols < 0 {
		rows, cols = 0, 0
	}
	return Grid{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// GridFromRows copies a rectangular [][]float64 into a Grid.
// Returns ErrInvalidDimension for empty or ragged input.
func GridFromRows(rows [][]float64) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, fmt.Errorf("%w: empty grid", ErrInvalidDimension)
	}

	g := NewGrid(len(rows), len(rows[0]))
	for i, row := range rows {
		if len(row) != g.Cols {
			return Grid{}, fmt.Errorf("%w: row %d has %d columns, want %d", ErrInvalidDimension, i, len(row), g.Cols)
		}
		core.CopyInto(g.Row(i), row)
	}
	return g, nil
}

// GridFromMatrix copies any gonum matrix into a Grid.
func GridFromMatrix(m mat.Matrix) Grid {
	r, c := m.Dims()
	g := NewGrid(r, c)
	for i := 0; i < r; i++ {
		row := g.Row(i)
		for j := range row {
			row[j] = m.At(i, j)
		}
	}
	return g
}

// Dense returns a gonum copy of the grid.
func (g Grid) Dense() *mat.Dense {
	data := make([]float64, len(g.Data))
	copy(data, g.Data)
	return mat.NewDense(g.Rows, g.Cols, data)
}

// At returns the sample at row r, column c.
func (g Grid) At(r, c int) float64 {
	return g.Data[r*g.Cols+c]
}

// Set stores v at row r, column c.
func (g Grid) Set(r, c int, v float64) {
	g.Data[r*g.Cols+c] = v
}

// Row returns row r as a slice sharing the grid's storage.
func (g Grid) Row(r int) []float64 {
	return g.Data[r*g.Cols : (r+1)*g.Cols : (r+1)*g.Cols]
}

// ToRows returns a [][]float64 copy of the grid.
func (g Grid) ToRows() [][]float64 {
	out := make([][]float64, g.Rows)
	for i := range out {
		out[i] = make([]float64, g.Cols)
		copy(out[i], g.Row(i))
	}
	return out
}

// Peak returns the position and value of the largest sample.
// Useful for locating the best template match in a correlation surface.
// Returns (-1, -1, 0) for an empty grid.
func (g Grid) Peak() (row, col int, value float64) {
	if len(g.Data) == 0 || g.Cols == 0 {
		return -1, -1, 0
	}

	index := 0
	value = g.Data[0]
	for i, v := range g.Data {
		if v > value {
			index = i
			value = v
		}
	}

	return index / g.Cols, index % g.Cols, value
}

// validate checks that g is non-empty and its storage matches its shape.
func (g Grid) validate(name string) error {
	if g.Rows <= 0 || g.Cols <= 0 {
		return fmt.Errorf("%w: %s is %dx%d", ErrInvalidDimension, name, g.Rows, g.Cols)
	}
	if n, ok := core.CheckedMul(g.Rows, g.Cols); !ok || n != len(g.Data) {
		return fmt.Errorf("%w: %s is %dx%d but holds %d samples", ErrInvalidDimension, name, g.Rows, g.Cols, len(g.Data))
	}
	return nil
}
