package fft

import "math"

// convert.go's worth of helpers live here since they're twiddle-table
// adjacent: the plan computes everything internally in complex128/float64
// and narrows to the caller's element type only at the Forward/Inverse
// boundary. This mirrors the teacher's DCTPlan (r2r/dct.go), which always
// drives algo-fft's float64 plan and narrows its own float64 buffers.

func toC128[C Complex](v C) complex128 {
	switch x := any(v).(type) {
	case complex64:
		return complex128(x)
	case complex128:
		return x
	default:
		panic("fft: unsupported complex type")
	}
}

func fromC128[C Complex](v complex128) C {
	var zero C
	switch any(zero).(type) {
	case complex64:
		return any(complex64(v)).(C)
	case complex128:
		return any(v).(C)
	default:
		panic("fft: unsupported complex type")
	}
}

func toF64[T Float](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	default:
		panic("fft: unsupported float type")
	}
}

func fromF64[T Float](v float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(v)).(T)
	case float64:
		return any(v).(T)
	default:
		panic("fft: unsupported float type")
	}
}

// twiddle returns exp(-2*pi*i*k/n) as (cos, -sin), snapping the four
// cardinal angles (0, n/4, n/2, 3n/4) to exact +/-1/0 to avoid the drift
// that sin/cos produce near those points (spec §4.1).
func twiddle(k, n int) complex128 {
	if n <= 0 {
		return 1
	}
	k = ((k % n) + n) % n
	switch {
	case n%4 == 0:
		switch k {
		case 0:
			return complex(1, 0)
		case n / 4:
			return complex(0, -1)
		case n / 2:
			return complex(-1, 0)
		case 3 * n / 4:
			return complex(0, 1)
		}
	case k == 0:
		return complex(1, 0)
	case n%2 == 0 && k == n/2:
		return complex(-1, 0)
	}
	angle := -2 * math.Pi * float64(k) / float64(n)
	s, c := math.Sincos(angle)
	return complex(c, s)
}

// twiddleTable fills a table of n complex roots of unity,
// table[k] = exp(-2*pi*i*k/n), using the cardinal-snapping twiddle().
func twiddleTable(n int) []complex128 {
	t := make([]complex128, n)
	for k := range t {
		t[k] = twiddle(k, n)
	}
	return t
}

// conj returns the complex conjugate; a tiny helper to keep call sites
// reading like the math they express.
func conj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}
