package xcorr2d

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func indexGrid(rows, cols int) Grid {
	g := NewGrid(rows, cols)
	for i := range g.Data {
		g.Data[i] = float64(i)
	}
	return g
}

func packedGrid(g Grid) *Spectrum {
	n := g.Rows * g.Cols / 2
	s := newSpectrum(g.Rows, g.Cols, make([]float64, n), make([]float64, n))
	s.load(g)
	return s
}

func TestFlipsReverseIndices(t *testing.T) {
	sizes := []struct{ rows, cols int }{
		{2, 2}, {4, 4}, {8, 8}, {2, 8}, {8, 2}, {4, 16}, {16, 4},
	}
	for _, sz := range sizes {
		t.Run(fmt.Sprintf("%dx%d", sz.rows, sz.cols), func(t *testing.T) {
			g := indexGrid(sz.rows, sz.cols)

			v := packedGrid(g)
			flipVertical(v)
			vg := v.unpack(sz.rows, sz.cols)

			hz := packedGrid(g)
			flipHorizontal(hz)
			hg := hz.unpack(sz.rows, sz.cols)

			for r := 0; r < sz.rows; r++ {
				for c := 0; c < sz.cols; c++ {
					require.Equal(t, g.At((sz.rows-r)%sz.rows, c), vg.At(r, c), "vertical (%d, %d)", r, c)
					require.Equal(t, g.At(r, (sz.cols-c)%sz.cols), hg.At(r, c), "horizontal (%d, %d)", r, c)
				}
			}
		})
	}
}

func TestFlipsAreInvolutions(t *testing.T) {
	g := indexGrid(8, 16)
	s := packedGrid(g)

	flipVertical(s)
	flipHorizontal(s)
	flipHorizontal(s)
	flipVertical(s)

	require.Equal(t, g, s.unpack(8, 16))
}

func TestReassembleCrops(t *testing.T) {
	g := indexGrid(8, 8)

	for _, sz := range []struct{ rows, cols int }{{1, 1}, {3, 5}, {8, 7}, {2, 8}} {
		t.Run(fmt.Sprintf("%dx%d", sz.rows, sz.cols), func(t *testing.T) {
			out := reassemble(packedGrid(g), sz.rows, sz.cols)
			require.Equal(t, sz.rows, out.Rows)
			require.Equal(t, sz.cols, out.Cols)
			for r := 0; r < sz.rows; r++ {
				for c := 0; c < sz.cols; c++ {
					require.Equal(t, g.At((8-r)%8, (8-c)%8), out.At(r, c), "(%d, %d)", r, c)
				}
			}
		})
	}
}
