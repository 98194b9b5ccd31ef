package fft

import "math"

// DCTPlan is a pre-computed Discrete Cosine Transform (Type I) plan, built
// on top of a complex Plan of the even-extended size via the classic
// even-symmetric embedding. Adapted from the teacher's r2r.DCTPlan, driving
// this package's own complexPlan instead of an external algofft import.
//
// For input x[0..n-1]:
//
//	X[k] = x[0] + (-1)^k*x[n-1] + 2*sum_{j=1}^{n-2} x[j]*cos(pi*j*k/(n-1))
//
// DCT-I requires n >= 2 and is its own inverse up to normalization.
type DCTPlan struct {
	n         int
	opts      Options
	extendedN int
	inner     *complexPlan

	fftIn  []complex128
	fftOut []complex128
}

// NewDCTPlan creates a DCT-I plan for size n (n >= 2).
func NewDCTPlan(n int, opts ...Option) (*DCTPlan, error) {
	if n < 2 {
		return nil, ErrInvalidSize
	}
	extendedN := 2 * (n - 1)
	o := applyOptions(opts)
	inner, err := buildComplexPlan(extendedN, o)
	if err != nil {
		return nil, err
	}
	return &DCTPlan{
		n:         n,
		opts:      o,
		extendedN: extendedN,
		inner:     inner,
		fftIn:     make([]complex128, extendedN),
		fftOut:    make([]complex128, extendedN),
	}, nil
}

// Len returns the transform size.
func (p *DCTPlan) Len() int { return p.n }

// Forward computes the forward DCT-I transform. Output is unnormalized
// unless NormOrtho was requested at construction.
func (p *DCTPlan) Forward(dst, src []float64) error {
	if len(dst) != p.n || len(src) != p.n {
		return ErrSizeMismatch
	}
	for i := range p.fftIn {
		p.fftIn[i] = 0
	}
	for i := 0; i < p.n; i++ {
		p.fftIn[i] = complex(src[i], 0)
	}
	for i := 1; i < p.n-1; i++ {
		p.fftIn[p.extendedN-i] = complex(src[i], 0)
	}

	scratch := make([]complex128, p.inner.tempLen())
	p.inner.execute(Forward, p.fftOut, p.fftIn, scratch)

	scale := 1.0
	if p.opts.Normalization == NormOrtho {
		scale = 1.0 / math.Sqrt(2.0*float64(p.n-1))
	}
	for k := 0; k < p.n; k++ {
		dst[k] = real(p.fftOut[k]) * scale
	}
	return nil
}

// Inverse computes the inverse DCT-I transform. DCT-I is self-inverse up
// to NormalizationFactor.
func (p *DCTPlan) Inverse(dst, src []float64) error {
	if err := p.Forward(dst, src); err != nil {
		return err
	}
	scale := 1.0 / float64(p.extendedN)
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
func (p *DCTPlan) NormalizationFactor() float64 {
	if p.opts.Normalization == NormOrtho {
		return 1.0
	}
	return float64(p.extendedN)
}

// DCT2Plan is a pre-computed Discrete Cosine Transform (Type II) plan.
//
// For input x[0..n-1]:
//
//	X[k] = sum_{j=0}^{n-1} x[j]*cos(pi*(j+1/2)*k/n)
type DCT2Plan struct {
	n         int
	opts      Options
	extendedN int
	inner     *complexPlan
	phase     []complex128

	fftIn  []complex128
	fftOut []complex128
}

// NewDCT2Plan creates a DCT-II plan for size n (n >= 1).
func NewDCT2Plan(n int, opts ...Option) (*DCT2Plan, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	extendedN := 2 * n
	o := applyOptions(opts)
	inner, err := buildComplexPlan(extendedN, o)
	if err != nil {
		return nil, err
	}
	phase := make([]complex128, n)
	den := 2.0 * float64(n)
	for k := 0; k < n; k++ {
		angle := -math.Pi * float64(k) / den
		s, c := math.Sincos(angle)
		phase[k] = complex(c, s)
	}
	return &DCT2Plan{
		n:         n,
		opts:      o,
		extendedN: extendedN,
		inner:     inner,
		phase:     phase,
		fftIn:     make([]complex128, extendedN),
		fftOut:    make([]complex128, extendedN),
	}, nil
}

// Len returns the transform size.
func (p *DCT2Plan) Len() int { return p.n }

// Forward computes the forward DCT-II transform.
func (p *DCT2Plan) Forward(dst, src []float64) error {
	if len(dst) != p.n || len(src) != p.n {
		return ErrSizeMismatch
	}
	for i := 0; i < p.n; i++ {
		p.fftIn[i] = complex(src[i], 0)
		p.fftIn[p.extendedN-1-i] = complex(src[i], 0)
	}

	scratch := make([]complex128, p.inner.tempLen())
	p.inner.execute(Forward, p.fftOut, p.fftIn, scratch)

	for k := 0; k < p.n; k++ {
		shifted := p.fftOut[k] * p.phase[k]
		value := real(shifted) / 2.0
		if p.opts.Normalization == NormOrtho {
			scale := math.Sqrt(2.0 / float64(p.n))
			if k == 0 {
				scale = 1.0 / math.Sqrt(float64(p.n))
			}
			value *= scale
		}
		dst[k] = value
	}
	return nil
}

// Inverse computes the inverse DCT-II transform (a DCT-III), via the
// weighted transpose of the DCT-II kernel.
func (p *DCT2Plan) Inverse(dst, src []float64) error {
	if len(dst) != p.n || len(src) != p.n {
		return ErrSizeMismatch
	}
	srcData := src
	if len(src) > 0 && &src[0] == &dst[0] {
		srcData = make([]float64, p.n)
		copy(srcData, src)
	}

	for n := 0; n < p.n; n++ {
		sum := 0.0
		for k := 0; k < p.n; k++ {
			weight := 1.0
			if k == 0 {
				weight = 0.5
			}
			if p.opts.Normalization == NormOrtho {
				weight = math.Sqrt(2.0 / float64(p.n))
				if k == 0 {
					weight = 1.0 / math.Sqrt(float64(p.n))
				}
			}
			sum += srcData[k] * weight * dct2Coefficient(n, k, p.n)
		}
		dst[n] = sum
	}
	return nil
}

// NormalizationFactor returns the scale a Forward followed by an Inverse
// applies to the original signal. The bare (NormNone) DCT-III is the
// un-normalized DCT-II kernel's transpose, so a Forward/Inverse round trip
// scales the signal by N/2; DCT-II/III round-trip exactly under NormOrtho.
func (p *DCT2Plan) NormalizationFactor() float64 {
	if p.opts.Normalization == NormOrtho {
		return 1.0
	}
	return float64(p.n) / 2.0
}

// dct2Coefficient is the DCT-II basis function cos(pi*(n+1/2)*k/size).
func dct2Coefficient(n, k, size int) float64 {
	if size <= 0 {
		return 0
	}
	return math.Cos(math.Pi * (float64(n) + 0.5) * float64(k) / float64(size))
}
