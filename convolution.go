package fft

// Convolve computes the linear discrete convolution of x and y via a
// single zero-padded complex DFT of length len(x)+len(y)-1. Adapted from
// andewx-gofft's Convolve (same signature and zero-pad-then-multiply-
// then-inverse shape), but driven by this package's own arbitrary-size
// complex plan instead of a power-of-two-only FFT, so no next-power-of-two
// padding is needed beyond the convolution's own minimum length.
func Convolve(x, y []complex128) ([]complex128, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, ErrEmptyInput
	}
	n := len(x) + len(y) - 1
	plan, err := buildComplexPlan(n, DefaultOptions())
	if err != nil {
		return nil, err
	}

	xe := make([]complex128, n)
	copy(xe, x)
	ye := make([]complex128, n)
	copy(ye, y)
	scratch := make([]complex128, plan.tempLen())

	plan.execute(Forward, xe, xe, scratch)
	plan.execute(Forward, ye, ye, scratch)
	for i := range xe {
		xe[i] *= ye[i]
	}
	plan.execute(Inverse, xe, xe, scratch)

	invN := complex(1/float64(n), 0)
	for i := range xe {
		xe[i] *= invN
	}
	return xe, nil
}

// Correlate computes the cross-correlation of x and y,
// Correlate(x,y)[k] = sum_n x[n+lag] * conj(y[n]) with lag = k-(len(y)-1),
// so index len(y)-1 holds lag 0, via Convolve(x, reversed conjugate of y)
// — the standard reduction from correlation to convolution.
func Correlate(x, y []complex128) ([]complex128, error) {
	if len(x) == 0 || len(y) == 0 {
		return nil, ErrEmptyInput
	}
	yr := make([]complex128, len(y))
	for i, v := range y {
		yr[len(y)-1-i] = conj(v)
	}
	return Convolve(x, yr)
}

// Autocorrelate computes the autocorrelation of x, Correlate(x, x).
func Autocorrelate(x []complex128) ([]complex128, error) {
	return Correlate(x, x)
}
