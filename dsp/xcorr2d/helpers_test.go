package xcorr2d

import (
	"math/cmplx"
	"testing"

	godsp "github.com/mjibson/go-dsp/fft"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-xcorr/internal/testutil"
)

var (
	magicImage = [][]float64{
		{17, 24, 1, 8, 15},
		{23, 5, 7, 14, 16},
		{4, 6, 13, 20, 22},
		{10, 12, 19, 21, 3},
		{11, 18, 25, 2, 9},
	}
	magicKernel = [][]float64{
		{8, 1, 6},
		{3, 5, 7},
		{4, 9, 2},
	}
	magicCorrelation = [][]float64{
		{405, 570, 585},
		{550, 615, 730},
		{595, 760, 575},
	}
)

func mustGrid(t testing.TB, rows [][]float64) Grid {
	t.Helper()
	g, err := GridFromRows(rows)
	require.NoError(t, err)
	return g
}

func noiseGrid(t testing.TB, seed int64, rows, cols int) Grid {
	t.Helper()
	return mustGrid(t, testutil.DeterministicMatrix(seed, rows, cols, 1))
}

func mustWeights(t testing.TB, maxOrder int) *Weights {
	t.Helper()
	w, err := NewWeights(maxOrder)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })
	return w
}

// fullDFT returns the unnormalized 2D DFT of g zero-padded to rows×cols.
func fullDFT(g Grid, rows, cols int) [][]complex128 {
	x := make([][]float64, rows)
	for i := range x {
		x[i] = make([]float64, cols)
		if i < g.Rows {
			copy(x[i], g.Row(i))
		}
	}
	return godsp.FFT2Real(x)
}

// packFull stores the conjugate-symmetric 2D spectrum X in the packed layout.
func packFull(X [][]complex128) *Spectrum {
	rows, cols := len(X), len(X[0])
	h := cols / 2
	s := newSpectrum(rows, cols, make([]float64, rows*h), make([]float64, rows*h))

	for r := 0; r < rows; r++ {
		for j := 1; j < h; j++ {
			s.Re[r*h+j] = real(X[r][j])
			s.Im[r*h+j] = imag(X[r][j])
		}
	}

	for _, col := range []struct {
		stream []float64
		c      int
	}{{s.Re, 0}, {s.Im, h}} {
		col.stream[0] = real(X[0][col.c])
		col.stream[h] = real(X[rows/2][col.c])
		for m := 1; m < rows/2; m++ {
			col.stream[2*m*h] = real(X[m][col.c])
			col.stream[(2*m+1)*h] = imag(X[m][col.c])
		}
	}
	return s
}

// conjMul returns conj(a)·b elementwise.
func conjMul(a, b [][]complex128) [][]complex128 {
	out := make([][]complex128, len(a))
	for i := range a {
		out[i] = make([]complex128, len(a[i]))
		for j := range a[i] {
			out[i][j] = cmplx.Conj(a[i][j]) * b[i][j]
		}
	}
	return out
}

func requireSpectrumNear(t *testing.T, got, want *Spectrum, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows, got.Rows, "rows")
	require.Equal(t, want.Cols, got.Cols, "cols")
	testutil.RequireSliceRelNearlyEqual(t, got.Re, want.Re, tol)
	testutil.RequireSliceRelNearlyEqual(t, got.Im, want.Im, tol)
}

func requireGridNear(t *testing.T, got, want Grid, tol float64) {
	t.Helper()
	require.Equal(t, want.Rows, got.Rows, "rows")
	require.Equal(t, want.Cols, got.Cols, "cols")
	testutil.RequireSliceRelNearlyEqual(t, got.Data, want.Data, tol)
}
