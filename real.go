package fft

// PlanRealT executes real-input/real-output discrete Fourier transforms of
// a fixed even length n, by packing the real sequence into a length-n/2
// complex sequence and driving an ordinary complex plan (spec §4.1 "real
// repack stage", §6.3). T is the sample type, C its matching complex
// pair — the two type parameters are not statically tied to each other in
// Go (no associated-type mechanism), so NewPlanReal64/NewPlanReal32 pick
// the matching pair for callers; the corpus already expects this exact
// two-parameter shape (MeKo-Christian-pw_convoverb/dsp/convolution_stage.go's
// algofft.PlanRealT[float32, complex64]).
//
// Forward's packed spectrum holds only the n/2+1 (CCs) or n/2 (Perm)
// independent bins of a real signal's conjugate-symmetric spectrum.
// Inverse is unscaled by the internal half-length transform: dividing
// every reconstructed sample by Size()/2 recovers the original signal
// (see Plan.Inverse for the underlying unscaled complex contract).
type PlanRealT[T Float, C Complex] struct {
	n      int
	half   int
	inner  *complexPlan
	format PackFormat
}

// NewPlanReal64 constructs a float64/complex128 real plan for length n.
func NewPlanReal64(n int, opts ...Option) (*PlanRealT[float64, complex128], error) {
	return newPlanReal[float64, complex128](n, opts...)
}

// NewPlanReal32 constructs a float32/complex64 real plan for length n.
func NewPlanReal32(n int, opts ...Option) (*PlanRealT[float32, complex64], error) {
	return newPlanReal[float32, complex64](n, opts...)
}

func newPlanReal[T Float, C Complex](n int, opts ...Option) (*PlanRealT[T, C], error) {
	if n <= 0 {
		return nil, &ValidationError{Field: "size", Message: "must be positive"}
	}
	if n%2 != 0 {
		return nil, ErrOddRealSize
	}
	o := applyOptions(opts)
	half := n / 2
	inner, err := buildComplexPlan(half, o)
	if err != nil {
		return nil, err
	}
	return &PlanRealT[T, C]{n: n, half: half, inner: inner, format: o.PackFormat}, nil
}

// Size returns the real-domain length this plan was built for.
func (p *PlanRealT[T, C]) Size() int { return p.n }

// PackedLen returns the number of complex elements Forward writes / Inverse
// reads, for this plan's PackFormat.
func (p *PlanRealT[T, C]) PackedLen() int {
	if p.format == Perm {
		return p.half
	}
	return p.half + 1
}

// TempSize returns the scratch length, in elements of C, of the inner
// half-length complex plan. Forward and Inverse accept a scratch argument
// but neither check nor read it; they allocate their own working buffers.
func (p *PlanRealT[T, C]) TempSize() int { return p.inner.tempLen() }

// Forward computes the real DFT of src (length Size()) into dst (length
// PackedLen()).
func (p *PlanRealT[T, C]) Forward(dst []C, src []T, scratch []C) error {
	if len(src) != p.n {
		return &SizeError{Expected: p.n, Got: len(src), Context: "PlanRealT.Forward src"}
	}
	if len(dst) != p.PackedLen() {
		return &SizeError{Expected: p.PackedLen(), Got: len(dst), Context: "PlanRealT.Forward dst"}
	}
	half := p.half
	z := make([]complex128, half)
	for j := 0; j < half; j++ {
		z[j] = complex(toF64(src[2*j]), toF64(src[2*j+1]))
	}
	cscratch := make([]complex128, p.inner.tempLen())
	p.inner.execute(Forward, z, z, cscratch)

	x := make([]complex128, half+1)
	for k := 0; k <= half; k++ {
		zk := z[k%half]
		zc := conj(z[(half-k)%half])
		wk := twiddle(k, p.n)
		x[k] = 0.5*(zk+zc) - complex(0, 0.5)*wk*(zk-zc)
	}
	p.packInto(dst, x)
	return nil
}

// Inverse reconstructs the unscaled real signal from a packed spectrum.
func (p *PlanRealT[T, C]) Inverse(dst []T, src []C, scratch []C) error {
	if len(src) != p.PackedLen() {
		return &SizeError{Expected: p.PackedLen(), Got: len(src), Context: "PlanRealT.Inverse src"}
	}
	if len(dst) != p.n {
		return &SizeError{Expected: p.n, Got: len(dst), Context: "PlanRealT.Inverse dst"}
	}
	half := p.half
	x := make([]complex128, half+1)
	p.unpackFrom(x, src)

	z := make([]complex128, half)
	z[0] = complex((real(x[0])+real(x[half]))/2, (real(x[0])-real(x[half]))/2)
	for k := 1; k < half; k++ {
		xk := x[k]
		xhk := x[half-k]
		wk := twiddle(k, p.n)
		s := xk + conj(xhk)
		d := complex(0, 1) * conj(wk) * (xk - conj(xhk))
		z[k] = (s + d) / 2
	}

	cscratch := make([]complex128, p.inner.tempLen())
	p.inner.execute(Inverse, z, z, cscratch)

	for j := 0; j < half; j++ {
		dst[2*j] = fromF64[T](real(z[j]))
		dst[2*j+1] = fromF64[T](imag(z[j]))
	}
	return nil
}

func (p *PlanRealT[T, C]) packInto(dst []C, x []complex128) {
	half := p.half
	if p.format == Perm {
		dst[0] = fromC128[C](complex(real(x[0]), real(x[half])))
		for k := 1; k < half; k++ {
			dst[k] = fromC128[C](x[k])
		}
		return
	}
	for k := 0; k <= half; k++ {
		dst[k] = fromC128[C](x[k])
	}
}

func (p *PlanRealT[T, C]) unpackFrom(x []complex128, src []C) {
	half := p.half
	if p.format == Perm {
		v0 := toC128(src[0])
		x[0] = complex(real(v0), 0)
		x[half] = complex(imag(v0), 0)
		for k := 1; k < half; k++ {
			x[k] = toC128(src[k])
		}
		return
	}
	for k := 0; k <= half; k++ {
		x[k] = toC128(src[k])
	}
}
