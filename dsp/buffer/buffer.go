package buffer

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation is returned when backing storage cannot be obtained.
	ErrAllocation = errors.New("buffer: allocation failed")

	// ErrOutOfRange is returned when a region view does not fit the buffer.
	ErrOutOfRange = errors.New("buffer: region out of range")
)

// Buffer wraps a float64 slice with reuse-friendly semantics.
// Transform code works on raw []float64; use Samples() or Region() to bridge.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]float64, n)
		copy(s, b.samples)
		b.samples = s
	}
	// Zero any newly exposed elements that may have stale data from
	// previous use of the backing array.
	if n > oldLen {
		for i := oldLen; i < n; i++ {
			b.samples[i] = 0
		}
	}
}

// TryResize is Resize that reports an impossible length as ErrAllocation
// instead of panicking. The buffer is unchanged on error.
func (b *Buffer) TryResize(n int) (err error) {
	if n < 0 {
		return fmt.Errorf("%w: negative length %d", ErrAllocation, n)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %d samples: %v", ErrAllocation, n, r)
		}
	}()
	b.Resize(n)
	return nil
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	for i := range b.samples {
		b.samples[i] = 0
	}
}

// Region returns the view [offset, offset+n) of the buffer. The view's
// capacity is clipped to n so appends cannot spill into the next region.
func (b *Buffer) Region(offset, n int) ([]float64, error) {
	if offset < 0 || n < 0 || offset > len(b.samples)-n {
		return nil, fmt.Errorf("%w: [%d, %d+%d) of %d", ErrOutOfRange, offset, offset, n, len(b.samples))
	}
	return b.samples[offset : offset+n : offset+n], nil
}
