package xcorr2d

import (
	"fmt"
	"math/cmplx"

	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-xcorr/dsp/core"
)

// Spectrum is the packed split-complex representation of a real Rows×Cols
// signal. Row r occupies Re[r*Cols/2:(r+1)*Cols/2] and the same range of Im.
//
// In the spatial domain the row holds even samples in Re and odd samples in Im.
// In the frequency domain packed column j in [1, Cols/2) holds X(r, j) as
// Re+iIm. Packed column 0 is degenerate: Re carries the real DC column
// X(·, 0) and Im the real Nyquist column X(·, Cols/2), each packed along the
// rows the same way a row is packed: row 0 holds frequency 0, row 1 holds
// frequency Rows/2, and rows 2m, 2m+1 hold the real and imaginary parts of
// frequency m for m in [1, Rows/2).
type Spectrum struct {
	Rows int
	Cols int
	Re   []float64
	Im   []float64
}

// newSpectrum wraps re and im, which must each hold rows*cols/2 samples.
func newSpectrum(rows, cols int, re, im []float64) *Spectrum {
	return &Spectrum{Rows: rows, Cols: cols, Re: re, Im: im}
}

// half returns the number of packed slots per row.
func (s *Spectrum) half() int {
	return s.Cols / 2
}

// At decodes X(r, c) for r in [0, Rows) and c in [0, Cols/2].
// Bins with c > Cols/2 follow from X(r, c) = conj(X((Rows-r)%Rows, Cols-c)).
func (s *Spectrum) At(r, c int) complex128 {
	h := s.half()
	if r < 0 || r >= s.Rows || c < 0 || c > h {
		panic(fmt.Sprintf("xcorr2d: spectrum bin (%d, %d) outside %dx%d half plane", r, c, s.Rows, h+1))
	}

	if c > 0 && c < h {
		return complex(s.Re[r*h+c], s.Im[r*h+c])
	}

	stream := s.Re
	if c == h {
		stream = s.Im
	}

	mid := s.Rows / 2
	switch {
	case r == 0:
		return complex(stream[0], 0)
	case r == mid:
		return complex(stream[h], 0)
	case r < mid:
		return complex(stream[2*r*h], stream[(2*r+1)*h])
	default:
		m := s.Rows - r
		return cmplx.Conj(complex(stream[2*m*h], stream[(2*m+1)*h]))
	}
}

// load zeroes the spectrum and packs g into its top-left corner. Even
// columns go to Re, odd columns to Im; an odd trailing column has no partner
// and lands in Re right after the row's pairs.
func (s *Spectrum) load(g Grid) {
	core.Zero(s.Re)
	core.Zero(s.Im)

	h := s.half()
	for i := 0; i < g.Rows; i++ {
		row := g.Row(i)
		re := s.Re[i*h : i*h+h]
		pairs := core.Deinterleave(re, s.Im[i*h:i*h+h], row)
		if g.Cols%2 == 1 {
			re[pairs] = row[g.Cols-1]
		}
	}
}

// unpack reverses load for the top-left rows×cols window.
func (s *Spectrum) unpack(rows, cols int) Grid {
	g := NewGrid(rows, cols)

	h := s.half()
	for i := 0; i < rows; i++ {
		row := g.Row(i)
		re := s.Re[i*h : i*h+h]
		pairs := core.Interleave(row, re, s.Im[i*h:i*h+h])
		if cols%2 == 1 {
			row[cols-1] = re[pairs]
		}
	}
	return g
}

// scale multiplies every packed value by f.
func (s *Spectrum) scale(f float64) {
	vecmath.ScaleBlockInPlace(s.Re, f)
	vecmath.ScaleBlockInPlace(s.Im, f)
}
