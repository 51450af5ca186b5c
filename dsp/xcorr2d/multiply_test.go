package xcorr2d

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-xcorr/dsp/core"
)

func TestCorrelateSpectraHandComputed(t *testing.T) {
	img := newSpectrum(4, 4,
		[]float64{1, 2, 3, 4, 5, 6, 7, 8},
		[]float64{-1, 0.5, 2, -3, 1.5, -2, 0.25, 4})
	ker := newSpectrum(4, 4,
		[]float64{2, -1, 0.5, 3, -2, 1, 4, -0.5},
		[]float64{1, 2, -1, 0.5, 3, -1.5, 2, 1})

	tempRe := make([]float64, 4)
	tempIm := make([]float64, 4)
	correlateSpectra(img, ker, tempRe, tempIm)

	require.Equal(t, []float64{2, -1, 1.5, 10.5, 18, 9, 34, 0}, img.Re)
	require.Equal(t, []float64{-1, 4.5, -2, 11, 5, -7, 2.25, 10}, img.Im)
}

func TestCorrelateSpectraMatchesFullProduct(t *testing.T) {
	sizes := []struct{ rows, cols int }{
		{2, 2}, {4, 4}, {8, 8}, {4, 8}, {8, 4}, {2, 16}, {16, 2},
	}
	for _, sz := range sizes {
		t.Run(fmt.Sprintf("%dx%d", sz.rows, sz.cols), func(t *testing.T) {
			image := noiseGrid(t, int64(sz.rows+sz.cols), sz.rows, sz.cols)
			kernel := noiseGrid(t, int64(sz.rows*sz.cols), sz.rows, sz.cols)

			A := fullDFT(image, sz.rows, sz.cols)
			B := fullDFT(kernel, sz.rows, sz.cols)

			img, ker := packFull(A), packFull(B)
			correlateSpectra(img, ker, make([]float64, sz.rows), make([]float64, sz.rows))

			requireSpectrumNear(t, img, packFull(conjMul(A, B)), 1e-9)
		})
	}
}

func TestBulkProductIsWrongInDegenerateColumn(t *testing.T) {
	image := noiseGrid(t, 21, 8, 8)
	kernel := noiseGrid(t, 22, 8, 8)
	A := fullDFT(image, 8, 8)
	B := fullDFT(kernel, 8, 8)
	want := packFull(conjMul(A, B))

	naive := packFull(A)
	ker := packFull(B)
	conjProduct(naive.Re, naive.Im, ker.Re, ker.Im)

	h := naive.half()
	for r := 0; r < naive.Rows; r++ {
		for j := 1; j < h; j++ {
			require.InDelta(t, want.Re[r*h+j], naive.Re[r*h+j], 1e-9)
			require.InDelta(t, want.Im[r*h+j], naive.Im[r*h+j], 1e-9)
		}
	}

	// Packed column 0 holds two real columns, not complex values.
	differs := false
	for r := 0; r < naive.Rows; r++ {
		if !core.NearlyEqual(want.Re[r*h], naive.Re[r*h], 1e-9) || !core.NearlyEqual(want.Im[r*h], naive.Im[r*h], 1e-9) {
			differs = true
		}
	}
	require.True(t, differs)
}

func TestConjProduct(t *testing.T) {
	aRe := []float64{1, 0, 3}
	aIm := []float64{2, 1, -1}
	conjProduct(aRe, aIm, []float64{3, 0, 2}, []float64{4, 1, 0.5})

	// (1-2i)(3+4i) = 11-2i, (-i)(i) = 1, (3+i)(2+0.5i) = 5.5+3.5i
	require.Equal(t, []float64{11, 1, 5.5}, aRe)
	require.Equal(t, []float64{-2, 0, 3.5}, aIm)
}
