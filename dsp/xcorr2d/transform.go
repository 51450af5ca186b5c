package xcorr2d

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-xcorr/dsp/core"
)

// Forward raw transforms carry a factor of two on every packed value.
const forwardScale = 0.5

// transformer runs the packed real 2D FFT for one rows×cols size.
// It is call-scoped: it owns its plans and complex scratch.
type transformer struct {
	tables *weightTables
	rows   int
	cols   int

	rowOrder  int // length cols/2: row pass
	colOrder  int // length rows: complex column pass
	halfOrder int // length rows/2: degenerate column pass

	rowPlan  *algofft.Plan[complex128]
	colPlan  *algofft.Plan[complex128]
	halfPlan *algofft.Plan[complex128]

	rowStride  int
	halfStride int

	scratch []complex128
}

// newTransformer borrows the plans for a rows×cols transform. Both sizes
// must be powers of two >= 2 within the tables' order. Call close when done.
func (t *weightTables) newTransformer(rows, cols int) (*transformer, error) {
	rowOrder, colOrder := core.Log2(rows), core.Log2(cols)
	if rowOrder < 1 || colOrder < 1 {
		return nil, fmt.Errorf("%w: transform %dx%d is not a power-of-two size >= 2", ErrInvalidDimension, rows, cols)
	}
	if rowOrder > t.maxOrder || colOrder > t.maxOrder {
		return nil, fmt.Errorf("%w: transform %dx%d needs order %d, weights support %d",
			ErrUnsupportedSize, rows, cols, max(rowOrder, colOrder), t.maxOrder)
	}

	tr := &transformer{
		tables:     t,
		rows:       rows,
		cols:       cols,
		rowOrder:   colOrder - 1,
		colOrder:   rowOrder,
		halfOrder:  rowOrder - 1,
		rowStride:  t.twiddleStride(cols),
		halfStride: t.twiddleStride(rows),
	}

	var err error
	if tr.rowPlan, err = t.acquire(tr.rowOrder); err != nil {
		tr.close()
		return nil, err
	}
	if tr.colPlan, err = t.acquire(tr.colOrder); err != nil {
		tr.close()
		return nil, err
	}
	if tr.halfPlan, err = t.acquire(tr.halfOrder); err != nil {
		tr.close()
		return nil, err
	}

	tr.scratch = make([]complex128, max(rows, cols/2))
	return tr, nil
}

// close returns the borrowed plans.
func (tr *transformer) close() {
	tr.tables.release(tr.rowOrder, tr.rowPlan)
	tr.tables.release(tr.colOrder, tr.colPlan)
	tr.tables.release(tr.halfOrder, tr.halfPlan)
	tr.rowPlan, tr.colPlan, tr.halfPlan = nil, nil, nil
}

// forward transforms the packed spatial data in s into its packed spectrum
// and normalizes the result.
func (tr *transformer) forward(s *Spectrum) error {
	if err := tr.forwardRaw(s); err != nil {
		return err
	}
	s.scale(forwardScale)
	return nil
}

// forwardRaw is the unnormalized forward transform: rows, then the complex
// columns, then the two degenerate real columns.
func (tr *transformer) forwardRaw(s *Spectrum) error {
	h := s.half()
	tw := tr.tables.twiddle

	row := tr.scratch[:h]
	for r := 0; r < tr.rows; r++ {
		re := s.Re[r*h : r*h+h]
		im := s.Im[r*h : r*h+h]
		for j := range row {
			row[j] = complex(re[j], im[j])
		}
		if err := fft(tr.rowPlan, row); err != nil {
			return fmt.Errorf("xcorr2d: forward row transform: %w", err)
		}
		packReal(row, tw, tr.rowStride, 1)
		for j, v := range row {
			re[j], im[j] = real(v), imag(v)
		}
	}

	col := tr.scratch[:tr.rows]
	for j := 1; j < h; j++ {
		for r := range col {
			col[r] = complex(s.Re[r*h+j], s.Im[r*h+j])
		}
		if err := fft(tr.colPlan, col); err != nil {
			return fmt.Errorf("xcorr2d: forward column transform: %w", err)
		}
		for r, v := range col {
			s.Re[r*h+j], s.Im[r*h+j] = real(v), imag(v)
		}
	}

	half := tr.scratch[:tr.rows/2]
	for _, stream := range [2][]float64{s.Re, s.Im} {
		for m := range half {
			half[m] = complex(stream[2*m*h], stream[(2*m+1)*h])
		}
		if err := fft(tr.halfPlan, half); err != nil {
			return fmt.Errorf("xcorr2d: forward degenerate column transform: %w", err)
		}
		// The row pass already doubled these values; keep the factor at two.
		packReal(half, tw, tr.halfStride, 0.5)
		for m, v := range half {
			stream[2*m*h], stream[(2*m+1)*h] = real(v), imag(v)
		}
	}

	return nil
}

// inverse transforms a packed spectrum back to packed spatial data and
// divides by rows·cols.
func (tr *transformer) inverse(s *Spectrum) error {
	if err := tr.inverseRaw(s); err != nil {
		return err
	}
	s.scale(1 / float64(tr.rows*tr.cols))
	return nil
}

// inverseRaw mirrors forwardRaw with unnormalized inverse passes: the
// degenerate columns, then the complex columns, then the rows.
func (tr *transformer) inverseRaw(s *Spectrum) error {
	h := s.half()
	tw := tr.tables.twiddle

	half := tr.scratch[:tr.rows/2]
	for _, stream := range [2][]float64{s.Re, s.Im} {
		for m := range half {
			half[m] = complex(stream[2*m*h], stream[(2*m+1)*h])
		}
		unpackReal(half, tw, tr.halfStride)
		if err := ifft(tr.halfPlan, half); err != nil {
			return fmt.Errorf("xcorr2d: inverse degenerate column transform: %w", err)
		}
		for m, v := range half {
			stream[2*m*h], stream[(2*m+1)*h] = real(v), imag(v)
		}
	}

	col := tr.scratch[:tr.rows]
	for j := 1; j < h; j++ {
		for r := range col {
			col[r] = complex(s.Re[r*h+j], s.Im[r*h+j])
		}
		if err := ifft(tr.colPlan, col); err != nil {
			return fmt.Errorf("xcorr2d: inverse column transform: %w", err)
		}
		for r, v := range col {
			s.Re[r*h+j], s.Im[r*h+j] = real(v), imag(v)
		}
	}

	row := tr.scratch[:h]
	for r := 0; r < tr.rows; r++ {
		re := s.Re[r*h : r*h+h]
		im := s.Im[r*h : r*h+h]
		for j := range row {
			row[j] = complex(re[j], im[j])
		}
		unpackReal(row, tw, tr.rowStride)
		if err := ifft(tr.rowPlan, row); err != nil {
			return fmt.Errorf("xcorr2d: inverse row transform: %w", err)
		}
		for j, v := range row {
			re[j], im[j] = real(v), imag(v)
		}
	}

	return nil
}

// Transform returns the normalized packed spectrum of g zero-padded to the
// transform size (the next power of two >= each dimension, at least 2).
func (w *Weights) Transform(g Grid) (*Spectrum, error) {
	if err := g.validate("grid"); err != nil {
		return nil, err
	}
	tables, err := w.snapshot()
	if err != nil {
		return nil, err
	}

	rows, _ := core.TransformLen(g.Rows)
	cols, _ := core.TransformLen(g.Cols)
	tr, err := tables.newTransformer(rows, cols)
	if err != nil {
		return nil, err
	}
	defer tr.close()

	n := rows * cols / 2
	s := newSpectrum(rows, cols, make([]float64, n), make([]float64, n))
	s.load(g)
	if err := tr.forward(s); err != nil {
		return nil, err
	}
	return s, nil
}

// InverseTransform returns the full Rows×Cols real signal whose normalized
// packed spectrum is s. s is not modified.
func (w *Weights) InverseTransform(s *Spectrum) (Grid, error) {
	if s == nil || s.Rows < 2 || s.Cols < 2 || len(s.Re) != s.Rows*s.Cols/2 || len(s.Im) != len(s.Re) {
		return Grid{}, fmt.Errorf("%w: malformed spectrum", ErrInvalidDimension)
	}
	tables, err := w.snapshot()
	if err != nil {
		return Grid{}, err
	}

	tr, err := tables.newTransformer(s.Rows, s.Cols)
	if err != nil {
		return Grid{}, err
	}
	defer tr.close()

	work := newSpectrum(s.Rows, s.Cols, append([]float64(nil), s.Re...), append([]float64(nil), s.Im...))
	if err := tr.inverse(work); err != nil {
		return Grid{}, err
	}
	return work.unpack(s.Rows, s.Cols), nil
}
