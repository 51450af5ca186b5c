package xcorr2d

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-xcorr/dsp/buffer"
	"github.com/cwbudde/algo-xcorr/dsp/core"
)

// arena is the scratch of one correlation, carved from a single block of
// 2·rows·cols + 2·rows samples: kernel spectrum, image spectrum, then the
// two degenerate-column staging streams.
type arena struct {
	buf  *buffer.Buffer
	pool *buffer.Pool

	kernel *Spectrum
	image  *Spectrum
	tempRe []float64
	tempIm []float64
}

// arenaLen returns the block size for a rows×cols transform.
func arenaLen(rows, cols int) (int, bool) {
	n, ok := core.CheckedMul(rows, cols)
	if !ok || n > (math.MaxInt-2*rows)/2 {
		return 0, false
	}
	return 2*n + 2*rows, true
}

// newArena obtains a zeroed block, from pool when it is non-nil.
// Call release when the correlation is done.
func newArena(rows, cols int, pool *buffer.Pool) (*arena, error) {
	total, ok := arenaLen(rows, cols)
	if !ok {
		return nil, fmt.Errorf("%w: %dx%d transform does not fit in memory", ErrAllocationFailure, rows, cols)
	}

	a := &arena{pool: pool}
	var err error
	if pool != nil {
		a.buf, err = pool.TryGet(total)
	} else {
		a.buf = buffer.New(0)
		err = a.buf.TryResize(total)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailure, err)
	}

	n := rows * cols
	regions := [6][]float64{}
	bounds := [6][2]int{
		{0, n / 2},         // kernel re
		{n / 2, n / 2},     // kernel im
		{n, n / 2},         // image re
		{n + n/2, n / 2},   // image im
		{2 * n, rows},      // temp re
		{2*n + rows, rows}, // temp im
	}
	for i, b := range bounds {
		if regions[i], err = a.buf.Region(b[0], b[1]); err != nil {
			a.release()
			return nil, fmt.Errorf("%w: %w", ErrAllocationFailure, err)
		}
	}

	a.kernel = newSpectrum(rows, cols, regions[0], regions[1])
	a.image = newSpectrum(rows, cols, regions[2], regions[3])
	a.tempRe, a.tempIm = regions[4], regions[5]
	return a, nil
}

// release hands the block back to the pool, if any.
func (a *arena) release() {
	if a.pool != nil {
		a.pool.Put(a.buf)
	}
	a.buf = nil
}
