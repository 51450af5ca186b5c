package xcorr2d

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// MaxSupportedOrder is the largest transform order NewWeights accepts (2^20 samples per axis).
const MaxSupportedOrder = 20

// Weights holds the precomputed transform tables for every power-of-two
// length up to 2^maxOrder. Weights are immutable after creation and may be
// shared by any number of concurrent Correlate calls.
type Weights struct {
	maxOrder int
	tables   atomic.Pointer[weightTables]
}

// weightTables is the state a call captures at its start. Close drops the
// Weights' reference; calls already holding the tables finish unaffected.
type weightTables struct {
	maxOrder int

	// twiddle[k] = exp(-2πik/2^maxOrder) for k < 2^(maxOrder-1).
	// Length N uses twiddle[k*(2^maxOrder/N)].
	twiddle []complex128

	// plans[k] recycles plans of length 2^k. Index 0 is unused: a
	// length-1 transform is the identity.
	plans []*planPool
}

// planPool hands out algo-fft plans of a single length. Plans keep internal
// scratch, so each transform pass borrows its own.
type planPool struct {
	n    int
	pool sync.Pool
}

// NewWeights builds transform tables for lengths up to 2^maxOrder per axis.
// maxOrder must be in [1, MaxSupportedOrder].
func NewWeights(maxOrder int) (*Weights, error) {
	if maxOrder < 1 || maxOrder > MaxSupportedOrder {
		return nil, fmt.Errorf("%w: max order %d outside [1, %d]", ErrUnsupportedSize, maxOrder, MaxSupportedOrder)
	}

	maxLen := 1 << maxOrder
	t := &weightTables{
		maxOrder: maxOrder,
		twiddle:  make([]complex128, maxLen/2),
		plans:    make([]*planPool, maxOrder+1),
	}

	for k := range t.twiddle {
		s, c := math.Sincos(-2 * math.Pi * float64(k) / float64(maxLen))
		t.twiddle[k] = complex(c, s)
	}

	for order := 1; order <= maxOrder; order++ {
		t.plans[order] = &planPool{n: 1 << order}
	}

	w := &Weights{maxOrder: maxOrder}
	w.tables.Store(t)
	return w, nil
}

// MaxOrder returns the largest supported transform order.
func (w *Weights) MaxOrder() int {
	return w.maxOrder
}

// MaxLen returns the largest supported transform length per axis.
func (w *Weights) MaxLen() int {
	return 1 << w.maxOrder
}

// Close releases the transform tables. Calls that started before Close run
// to completion; later calls return ErrWeightsClosed. Close is idempotent.
func (w *Weights) Close() error {
	w.tables.Store(nil)
	return nil
}

func (w *Weights) snapshot() (*weightTables, error) {
	if w == nil {
		return nil, ErrWeightsClosed
	}
	t := w.tables.Load()
	if t == nil {
		return nil, ErrWeightsClosed
	}
	return t, nil
}

// twiddleStride returns the table stride that yields powers of exp(-2πi/n).
func (t *weightTables) twiddleStride(n int) int {
	return (1 << t.maxOrder) / n
}

// acquire borrows a plan of length 2^order. A nil plan means the identity.
func (t *weightTables) acquire(order int) (*algofft.Plan[complex128], error) {
	if order == 0 {
		return nil, nil
	}
	if order < 0 || order > t.maxOrder {
		return nil, fmt.Errorf("%w: order %d exceeds max order %d", ErrUnsupportedSize, order, t.maxOrder)
	}

	pp := t.plans[order]
	if p, ok := pp.pool.Get().(*algofft.Plan[complex128]); ok && p != nil {
		return p, nil
	}

	p, err := algofft.NewPlan64(pp.n)
	if err != nil {
		return nil, fmt.Errorf("%w: FFT plan of length %d: %w", ErrAllocationFailure, pp.n, err)
	}
	return p, nil
}

// release returns a plan borrowed with acquire.
func (t *weightTables) release(order int, p *algofft.Plan[complex128]) {
	if p == nil || order <= 0 || order > t.maxOrder {
		return
	}
	t.plans[order].pool.Put(p)
}
