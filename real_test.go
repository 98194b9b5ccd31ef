package fft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

func randReal(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = rand.NormFloat64()
	}
	return x
}

func TestPlanRealRoundTrip(t *testing.T) {
	sizes := []int{2, 4, 8, 16, 30, 64, 100, 128}
	for _, n := range sizes {
		n := n
		t.Run("", func(t *testing.T) {
			p, err := NewPlanReal64(n)
			if err != nil {
				t.Fatalf("NewPlanReal64(%d): %v", n, err)
			}
			src := randReal(n)
			scratch := make([]complex128, p.TempSize())
			spec := make([]complex128, p.PackedLen())
			if err := p.Forward(spec, src, scratch); err != nil {
				t.Fatal(err)
			}
			back := make([]float64, n)
			if err := p.Inverse(back, spec, scratch); err != nil {
				t.Fatal(err)
			}
			half := float64(n / 2)
			for i := range back {
				back[i] /= half
			}
			maxd := 0.0
			for i := range src {
				if d := math.Abs(src[i] - back[i]); d > maxd {
					maxd = d
				}
			}
			if maxd > 1e-7*float64(n) {
				t.Errorf("n=%d: round trip max diff %v", n, maxd)
			}
		})
	}
}

func TestPlanRealMatchesComplexDFT(t *testing.T) {
	n := 16
	p, err := NewPlanReal64(n)
	if err != nil {
		t.Fatal(err)
	}
	cp, err := NewPlan64(n)
	if err != nil {
		t.Fatal(err)
	}

	src := randReal(n)
	complexSrc := make([]complex128, n)
	for i, v := range src {
		complexSrc[i] = complex(v, 0)
	}

	want := make([]complex128, n)
	cscratch := make([]complex128, cp.TempSize())
	if err := cp.Forward(want, complexSrc, cscratch); err != nil {
		t.Fatal(err)
	}

	spec := make([]complex128, p.PackedLen())
	scratch := make([]complex128, p.TempSize())
	if err := p.Forward(spec, src, scratch); err != nil {
		t.Fatal(err)
	}

	for k := 0; k <= n/2; k++ {
		if d := cmplx.Abs(want[k] - spec[k]); d > 1e-7 {
			t.Errorf("bin %d: want %v got %v", k, want[k], spec[k])
		}
	}
}

func TestPlanRealImpulseCCs(t *testing.T) {
	n := 8
	p, err := NewPlanReal64(n)
	if err != nil {
		t.Fatal(err)
	}
	src := make([]float64, n)
	src[0] = 1
	spec := make([]complex128, p.PackedLen())
	scratch := make([]complex128, p.TempSize())
	if err := p.Forward(spec, src, scratch); err != nil {
		t.Fatal(err)
	}
	for k, v := range spec {
		if d := cmplx.Abs(v - 1); d > 1e-9 {
			t.Errorf("impulse bin %d: got %v want 1", k, v)
		}
	}
}

func TestPlanRealPermPacking(t *testing.T) {
	n := 8
	p, err := NewPlanReal64(n, WithPackFormat(Perm))
	if err != nil {
		t.Fatal(err)
	}
	pc, err := NewPlanReal64(n, WithPackFormat(CCs))
	if err != nil {
		t.Fatal(err)
	}
	if p.PackedLen() != n/2 {
		t.Errorf("Perm PackedLen = %d, want %d", p.PackedLen(), n/2)
	}
	if pc.PackedLen() != n/2+1 {
		t.Errorf("CCs PackedLen = %d, want %d", pc.PackedLen(), n/2+1)
	}

	src := randReal(n)
	permSpec := make([]complex128, p.PackedLen())
	ccsSpec := make([]complex128, pc.PackedLen())
	scratch := make([]complex128, p.TempSize())
	if err := p.Forward(permSpec, src, scratch); err != nil {
		t.Fatal(err)
	}
	if err := pc.Forward(ccsSpec, src, scratch); err != nil {
		t.Fatal(err)
	}

	if real(permSpec[0]) != real(ccsSpec[0]) {
		t.Errorf("Perm bin0 real (DC) = %v, want %v", real(permSpec[0]), real(ccsSpec[0]))
	}
	if imag(permSpec[0]) != real(ccsSpec[n/2]) {
		t.Errorf("Perm bin0 imag (Nyquist) = %v, want %v", imag(permSpec[0]), real(ccsSpec[n/2]))
	}
	for k := 1; k < n/2; k++ {
		if cmplx.Abs(permSpec[k]-ccsSpec[k]) > 1e-12 {
			t.Errorf("bin %d mismatch: perm=%v ccs=%v", k, permSpec[k], ccsSpec[k])
		}
	}
}

func TestPlanRealOddSizeRejected(t *testing.T) {
	if _, err := NewPlanReal64(7); err == nil {
		t.Error("expected error for odd real plan size")
	}
}
