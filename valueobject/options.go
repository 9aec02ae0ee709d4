package valueobject

import "time"

// DefaultVariant is the variant of a date built without one.
const DefaultVariant = "default"

type options struct {
	Location       *time.Location
	DefaultVariant string
}

func (o *options) apply(opts ...DateOption) *options {
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) correct() *options {
	if o.DefaultVariant == "" {
		o.DefaultVariant = DefaultVariant
	}
	return o
}

func newOptions(opts ...DateOption) *options {
	return new(options).apply(opts...).correct()
}

type DateOption func(o *options)

// WithLocation sets the time zone timestamps and times are converted to
// before being split into day, month and year. Timestamps default to
// time.Local, times keep their own location.
func WithLocation(loc *time.Location) DateOption {
	return func(o *options) {
		o.Location = loc
	}
}

// WithDefaultVariant sets the variant used when none is given.
func WithDefaultVariant(variant string) DateOption {
	return func(o *options) {
		o.DefaultVariant = variant
	}
}
