package fft

// Options configures plan construction. Following the teacher's functional
// options idiom (poisson.Options / poisson.Option).
type Options struct {
	// Order selects whether complex-plan output is reordered to natural
	// index order (OrderNormal, default) or left internal (OrderInternal).
	Order Order

	// ProgressiveOptimized hints that the plan will mostly be driven via
	// ProgressiveStart/ProgressiveStep rather than a single Execute call.
	// Plan construction does not read it: no plan in this package fuses
	// stages, and the stage list is the same whether or not it is set.
	ProgressiveOptimized bool

	// PackFormat selects the real-plan packing convention (CCs or Perm).
	// Ignored by complex and multi-D-complex plans.
	PackFormat PackFormat

	// RealOutIsEnough, for multi-D real plans, makes Inverse run its
	// complex axis passes directly in the caller's src spectrum,
	// overwriting it, instead of on a freshly allocated copy. The caller's
	// real output buffer is not used as staging; Forward is unaffected.
	RealOutIsEnough bool

	// Normalization controls DCTPlan/DST1Plan output scaling.
	Normalization Normalization
}

// Normalization selects DCT/DST output scaling.
type Normalization int

const (
	// NormNone leaves outputs unnormalized (default); Forward then
	// Inverse scales the signal by NormalizationFactor().
	NormNone Normalization = iota
	// NormOrtho applies orthonormal scaling, making Forward and Inverse
	// each other's exact inverse.
	NormOrtho
)

// Option is a function that modifies Options.
type Option func(*Options)

// DefaultOptions returns the default plan construction options.
func DefaultOptions() Options {
	return Options{
		Order:                OrderNormal,
		ProgressiveOptimized: false,
		PackFormat:           CCs,
		RealOutIsEnough:      false,
	}
}

// WithOrder selects natural vs. internal output ordering.
func WithOrder(o Order) Option {
	return func(opts *Options) { opts.Order = o }
}

// WithProgressiveOptimized hints the plan will be driven progressively.
func WithProgressiveOptimized(v bool) Option {
	return func(opts *Options) { opts.ProgressiveOptimized = v }
}

// WithPackFormat selects the real-plan packing convention.
func WithPackFormat(p PackFormat) Option {
	return func(opts *Options) { opts.PackFormat = p }
}

// WithRealOutIsEnough toggles the multi-D real plan's scratch policy.
func WithRealOutIsEnough(v bool) Option {
	return func(opts *Options) { opts.RealOutIsEnough = v }
}

// WithNormalization sets the DCT/DST output normalization.
func WithNormalization(n Normalization) Option {
	return func(opts *Options) { opts.Normalization = n }
}

// applyOptions folds a slice of Option over the default Options.
func applyOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
