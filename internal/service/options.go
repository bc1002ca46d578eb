package service

import (
	"time"

	"github.com/phrazzld/catalog-api/internal/domain"
)

// Option customizes a service at construction time.
type Option func(*options)

type options struct {
	newID func() string
	now   func() time.Time
}

func defaultOptions() options {
	return options{
		newID: domain.NewID,
		now:   time.Now,
	}
}

// WithIDGenerator replaces the identifier generator. Tests use it to make
// identifiers deterministic.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// WithClock replaces the time source used for timestamps.
func WithClock(fn func() time.Time) Option {
	return func(o *options) {
		if fn != nil {
			o.now = fn
		}
	}
}

func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
