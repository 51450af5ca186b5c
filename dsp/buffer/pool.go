package buffer

import "sync"

// Pool provides sync.Pool-based Buffer reuse to reduce GC pressure
// when the same transform size is used repeatedly.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{
		pool: sync.Pool{
			New: func() any {
				return &Buffer{}
			},
		},
	}
}

// Get returns a Buffer with the requested length. The buffer is zeroed.
// Callers must return it via Put when done.
func (p *Pool) Get(length int) *Buffer {
	b := p.pool.Get().(*Buffer)
	b.Resize(length)
	b.Zero()
	return b
}

// TryGet is Get that reports an impossible length as ErrAllocation.
// Nothing needs to be returned to the pool on error.
func (p *Pool) TryGet(length int) (*Buffer, error) {
	b := p.pool.Get().(*Buffer)
	if err := b.TryResize(length); err != nil {
		p.pool.Put(b)
		return nil, err
	}
	b.Zero()
	return b, nil
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool) Put(b *Buffer) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
