package internal

import "go.uber.org/zap"

type Options struct {
	// Report degenerate input as an error instead of returning the fallback
	// result. Fewer than three distinct points becomes ErrInvalidInput, and
	// collinear input (or legalization giving up) becomes ErrDegenerateGeometry.
	Strict bool
	Logger *zap.Logger

	// Legalizing one insertion may flip at most flipFactor*(triangles+1) edges.
	flipFactor int
}

const defaultFlipFactor = 8

type Option func(*Options)

func Strict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func withFlipFactor(factor int) Option {
	return func(o *Options) {
		o.flipFactor = factor
	}
}

func NewOptions(opts ...Option) Options {
	o := Options{flipFactor: defaultFlipFactor}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}
