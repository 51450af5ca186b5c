package xcorr2d

import (
	"fmt"

	"github.com/cwbudde/algo-xcorr/dsp/core"
)

// Correlate computes the valid cross-correlation of image with kernel:
//
//	out(i, j) = Σ_a Σ_b image(i+a, j+b) · kernel(a, b)
//
// for 0 <= i <= R-Kr and 0 <= j <= C-Kc, in O(n log n) via the packed real
// 2D FFT. Both inputs are zero-padded to the next power of two >= the image
// size (at least 2 per axis), which must not exceed the Weights' order.
//
// Errors: ErrInvalidDimension, ErrUnsupportedSize, ErrAllocationFailure,
// ErrWeightsClosed. All checks happen before any transform work.
func (w *Weights) Correlate(image, kernel Grid, opts ...Option) (Grid, error) {
	if err := validateInputs(image, kernel); err != nil {
		return Grid{}, err
	}
	tables, err := w.snapshot()
	if err != nil {
		return Grid{}, err
	}
	cfg := applyOptions(opts...)

	rows, _ := core.TransformLen(image.Rows)
	cols, _ := core.TransformLen(image.Cols)

	tr, err := tables.newTransformer(rows, cols)
	if err != nil {
		return Grid{}, err
	}
	defer tr.close()

	a, err := newArena(rows, cols, cfg.pool)
	if err != nil {
		return Grid{}, err
	}
	defer a.release()

	a.kernel.load(kernel)
	a.image.load(image)

	if err := tr.forward(a.kernel); err != nil {
		return Grid{}, err
	}
	if err := tr.forward(a.image); err != nil {
		return Grid{}, err
	}

	correlateSpectra(a.image, a.kernel, a.tempRe, a.tempIm)

	if err := tr.inverse(a.image); err != nil {
		return Grid{}, err
	}

	return reassemble(a.image, image.Rows-kernel.Rows+1, image.Cols-kernel.Cols+1), nil
}

// validateInputs checks both grids and that kernel fits inside image.
func validateInputs(image, kernel Grid) error {
	if err := image.validate("image"); err != nil {
		return err
	}
	if err := kernel.validate("kernel"); err != nil {
		return err
	}
	if kernel.Rows > image.Rows || kernel.Cols > image.Cols {
		return fmt.Errorf("%w: kernel %dx%d exceeds image %dx%d",
			ErrInvalidDimension, kernel.Rows, kernel.Cols, image.Rows, image.Cols)
	}
	return nil
}
