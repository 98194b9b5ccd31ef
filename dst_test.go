package fft

import (
	"math"
	"testing"
)

func naiveDST1(x []float64) []float64 {
	n := len(x)
	y := make([]float64, n)
	for k := 0; k < n; k++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += x[j] * math.Sin(math.Pi*float64(j+1)*float64(k+1)/float64(n+1))
		}
		y[k] = sum
	}
	return y
}

func TestDST1MatchesNaive(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 15} {
		n := n
		t.Run("", func(t *testing.T) {
			p, err := NewDST1Plan(n)
			if err != nil {
				t.Fatal(err)
			}
			x := randReal(n)
			got := make([]float64, n)
			if err := p.Forward(got, x); err != nil {
				t.Fatal(err)
			}
			want := naiveDST1(x)
			if d := maxAbsDiffReal(want, got); d > 1e-6*float64(n) {
				t.Errorf("n=%d: DST-I max diff %v", n, d)
			}
		})
	}
}

func TestDST1RoundTrip(t *testing.T) {
	n := 9
	p, err := NewDST1Plan(n)
	if err != nil {
		t.Fatal(err)
	}
	x := randReal(n)
	spec := make([]float64, n)
	if err := p.Forward(spec, x); err != nil {
		t.Fatal(err)
	}
	back := make([]float64, n)
	if err := p.Inverse(back, spec); err != nil {
		t.Fatal(err)
	}
	if d := maxAbsDiffReal(x, back); d > 1e-6*float64(n) {
		t.Errorf("DST-I round trip max diff %v", d)
	}
}

func TestDST1OrthoRoundTrip(t *testing.T) {
	n := 6
	p, err := NewDST1Plan(n, WithNormalization(NormOrtho))
	if err != nil {
		t.Fatal(err)
	}
	x := randReal(n)
	spec := make([]float64, n)
	if err := p.Forward(spec, x); err != nil {
		t.Fatal(err)
	}
	back := make([]float64, n)
	if err := p.Inverse(back, spec); err != nil {
		t.Fatal(err)
	}
	if d := maxAbsDiffReal(x, back); d > 1e-6*float64(n) {
		t.Errorf("orthonormal DST-I round trip max diff %v", d)
	}
}

func TestDST1InvalidSize(t *testing.T) {
	if _, err := NewDST1Plan(0); err == nil {
		t.Error("expected error for size 0")
	}
}
