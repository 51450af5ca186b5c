package xcorr2d

import "github.com/cwbudde/algo-xcorr/dsp/buffer"

// config holds per-call settings.
type config struct {
	pool *buffer.Pool
}

// Option mutates a per-call config.
type Option func(*config)

// WithScratchPool draws the call's scratch arena from p and returns it
// there when the call finishes. Without it each call allocates its own.
func WithScratchPool(p *buffer.Pool) Option {
	return func(cfg *config) {
		cfg.pool = p
	}
}

func applyOptions(opts ...Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
