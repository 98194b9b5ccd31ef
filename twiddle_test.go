package fft

import (
	"math/cmplx"
	"testing"
)

func TestTwiddleCardinalSnapping(t *testing.T) {
	cases := []struct {
		k, n int
		want complex128
	}{
		{0, 8, complex(1, 0)},
		{2, 8, complex(0, -1)},
		{4, 8, complex(-1, 0)},
		{6, 8, complex(0, 1)},
		{0, 16, complex(1, 0)},
		{8, 16, complex(-1, 0)},
	}
	for _, c := range cases {
		got := twiddle(c.k, c.n)
		if got != c.want {
			t.Errorf("twiddle(%d,%d) = %v, want exactly %v", c.k, c.n, got, c.want)
		}
	}
}

func TestTwiddleMagnitudeIsUnit(t *testing.T) {
	n := 13
	for k := 0; k < n; k++ {
		if d := cmplx.Abs(twiddle(k, n)) - 1; d > 1e-12 || d < -1e-12 {
			t.Errorf("twiddle(%d,%d) magnitude = %v, want 1", k, n, cmplx.Abs(twiddle(k, n)))
		}
	}
}

func TestTwiddleTable(t *testing.T) {
	n := 8
	table := twiddleTable(n)
	if len(table) != n {
		t.Fatalf("len(twiddleTable(%d)) = %d", n, len(table))
	}
	for k := range table {
		if table[k] != twiddle(k, n) {
			t.Errorf("table[%d] = %v, want %v", k, table[k], twiddle(k, n))
		}
	}
}

func TestConj(t *testing.T) {
	z := complex(3.0, 4.0)
	if got := conj(z); got != complex(3.0, -4.0) {
		t.Errorf("conj(%v) = %v, want %v", z, got, complex(3.0, -4.0))
	}
}

func TestPrecisionRoundTripHelpers(t *testing.T) {
	var c64 complex64 = complex64(complex(1.5, -2.5))
	if got := toC128(c64); got != complex128(c64) {
		t.Errorf("toC128(%v) = %v", c64, got)
	}
	back := fromC128[complex64](complex128(c64))
	if back != c64 {
		t.Errorf("fromC128 round trip = %v, want %v", back, c64)
	}

	var f32 float32 = 3.25
	if got := toF64(f32); got != float64(f32) {
		t.Errorf("toF64(%v) = %v", f32, got)
	}
	if got := fromF64[float32](float64(f32)); got != f32 {
		t.Errorf("fromF64 round trip = %v, want %v", got, f32)
	}
}
