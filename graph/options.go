package graph

import "github.com/gogpu/uistyle/color"

// Allocation defaults.
const (
	// DefaultRowAlignment is the byte multiple each row is padded to.
	DefaultRowAlignment = 4

	// DefaultMaxBytes caps the storage of a single graph (1 GiB).
	DefaultMaxBytes = 1 << 30
)

// Option configures a Graph during allocation.
//
// Example:
//
//	g, err := graph.New(16, 16, color.TypeIndex8,
//		graph.WithPalette(color.GrayPalette()),
//		graph.WithRowAlignment(8))
type Option func(*options)

// options holds optional configuration for allocation.
type options struct {
	rowAlignment int
	palette      *color.Palette
	opacity      float32
	maxBytes     int
}

// defaultOptions returns the default allocation options.
func defaultOptions() options {
	return options{
		rowAlignment: DefaultRowAlignment,
		opacity:      1,
		maxBytes:     DefaultMaxBytes,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.rowAlignment < 1 {
		o.rowAlignment = 1
	}
	return o
}

// WithRowAlignment pads every row to a multiple of n bytes.
// Values below 1 mean no padding.
func WithRowAlignment(n int) Option {
	return func(o *options) {
		o.rowAlignment = n
	}
}

// WithPalette sets the palette of an indexed graph.
// It is ignored for direct-color types.
func WithPalette(p *color.Palette) Option {
	return func(o *options) {
		o.palette = p
	}
}

// WithOpacity sets the initial global opacity, clamped to [0, 1].
func WithOpacity(f float32) Option {
	return func(o *options) {
		o.opacity = clampOpacity(f)
	}
}

// WithMaxBytes limits the storage a single allocation may request.
// Requests above the limit fail with ErrAllocationFailure.
func WithMaxBytes(n int) Option {
	return func(o *options) {
		o.maxBytes = n
	}
}

func clampOpacity(f float32) float32 {
	switch {
	case !(f >= 0):
		return 0
	case f > 1:
		return 1
	default:
		return f
	}
}
