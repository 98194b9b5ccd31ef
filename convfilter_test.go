package fft

import (
	"math"
	"testing"
)

// directFIR is the reference causal FIR filter: y[n] = sum_k h[k]*x[n-k],
// x[i] = 0 for i < 0. This is what the partitioned overlap-save filter
// computes incrementally, regardless of how its input is chunked.
func directFIR(x, h []float64) []float64 {
	y := make([]float64, len(x))
	for n := range x {
		var sum float64
		for k := 0; k < len(h); k++ {
			if n-k >= 0 {
				sum += h[k] * x[n-k]
			}
		}
		y[n] = sum
	}
	return y
}

func maxDiff(a, b []float64) float64 {
	maxd := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > maxd {
			maxd = d
		}
	}
	return maxd
}

// applyInChunks feeds full through f.Apply in the given chunk lengths,
// cycling the chunk pattern until full is exhausted.
func applyInChunks(t *testing.T, f interface {
	Apply(out, in []float64) error
}, full []float64, chunks []int) []float64 {
	t.Helper()
	got := make([]float64, len(full))
	pos, ci := 0, 0
	for pos < len(full) {
		n := chunks[ci%len(chunks)]
		ci++
		if pos+n > len(full) {
			n = len(full) - pos
		}
		if n == 0 {
			break
		}
		if err := f.Apply(got[pos:pos+n], full[pos:pos+n]); err != nil {
			t.Fatal(err)
		}
		pos += n
	}
	return got
}

func TestConvolveFilterMatchesDirectFIR(t *testing.T) {
	kernel := []float64{0.25, 0.5, 0.25}
	blockSize := 4

	f, err := NewConvolveFilter64(kernel, blockSize)
	if err != nil {
		t.Fatal(err)
	}

	full := randReal(blockSize * 6)
	want := directFIR(full, kernel)
	got := applyInChunks(t, f, full, []int{blockSize})

	if d := maxDiff(want, got); d > 1e-9 {
		t.Errorf("streaming filter vs direct FIR: max diff %v", d)
	}
}

// TestConvolveFilterArbitraryChunkLengths is Testable Property #8:
// convolve_filter(h).apply(x) must equal the direct linear convolution of
// h and x regardless of how x is split across Apply calls, including
// chunks smaller than BlockSize() and chunks spanning several blocks.
func TestConvolveFilterArbitraryChunkLengths(t *testing.T) {
	kernel := []float64{0.1, -0.2, 0.3, 0.4, -0.5, 0.05}
	blockSize := 8 // rounds up to a power of two internally

	full := randReal(200)
	want := directFIR(full, kernel)

	patterns := [][]int{
		{1},
		{3},
		{blockSize},
		{blockSize - 1},
		{2 * blockSize},
		{1, 5, 17, blockSize + 3, 2},
		{200}, // entire signal in one call
	}

	for _, pattern := range patterns {
		f, err := NewConvolveFilter64(kernel, blockSize)
		if err != nil {
			t.Fatal(err)
		}
		got := applyInChunks(t, f, full, pattern)
		if d := maxDiff(want, got); d > 1e-9 {
			t.Errorf("chunk pattern %v: max diff %v", pattern, d)
		}
	}
}

func TestConvolveFilterLongImpulseMultipleSegments(t *testing.T) {
	blockSize := 8
	kernel := randReal(5*blockSize + 3) // K = ceil(L/B) > 1 segments

	full := randReal(blockSize * 30)
	want := directFIR(full, kernel)

	f, err := NewConvolveFilter64(kernel, blockSize)
	if err != nil {
		t.Fatal(err)
	}
	got := applyInChunks(t, f, full, []int{3, blockSize, 1, 2 * blockSize})

	if d := maxDiff(want, got); d > 1e-8 {
		t.Errorf("multi-segment streaming filter vs direct FIR: max diff %v", d)
	}
}

func TestConvolveFilterShortBlockHistory(t *testing.T) {
	kernel := []float64{1, 1, 1, 1, 1} // longer than blockSize, forces K>1
	blockSize := 2

	f, err := NewConvolveFilter64(kernel, blockSize)
	if err != nil {
		t.Fatal(err)
	}

	full := randReal(blockSize * 8)
	want := directFIR(full, kernel)
	got := applyInChunks(t, f, full, []int{blockSize})

	if d := maxDiff(want, got); d > 1e-9 {
		t.Errorf("short-block streaming filter vs direct FIR: max diff %v", d)
	}
}

func TestConvolveFilterReset(t *testing.T) {
	kernel := []float64{1, 0.5}
	f, err := NewConvolveFilter64(kernel, 4)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]float64, 4)
	if err := f.Apply(buf, []float64{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}
	f.Reset()
	for _, v := range f.savedInput {
		if v != 0 {
			t.Errorf("Reset left nonzero savedInput: %v", f.savedInput)
			break
		}
	}
	for _, v := range f.overlap {
		if v != 0 {
			t.Errorf("Reset left nonzero overlap: %v", f.overlap)
			break
		}
	}
	if f.inputPosition != 0 || f.position != 0 {
		t.Errorf("Reset left inputPosition=%d position=%d, want 0,0", f.inputPosition, f.position)
	}

	// After reset, feeding the same input again reproduces the same output
	// as a fresh filter would.
	fresh, err := NewConvolveFilter64(kernel, 4)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]float64, 4)
	if err := fresh.Apply(want, []float64{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}
	got := make([]float64, 4)
	if err := f.Apply(got, []float64{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}
	if d := maxDiff(want, got); d > 1e-12 {
		t.Errorf("post-reset output diverges from fresh filter: max diff %v", d)
	}
}

func TestConvolveFilterAccessors(t *testing.T) {
	kernel := []float64{1, 2, 3}
	f, err := NewConvolveFilter64(kernel, 10)
	if err != nil {
		t.Fatal(err)
	}
	if f.ImpulseLen() != 3 {
		t.Errorf("ImpulseLen() = %d, want 3", f.ImpulseLen())
	}
	if f.BlockSize() != 16 { // next_power_of_two(10)
		t.Errorf("BlockSize() = %d, want 16", f.BlockSize())
	}
	if f.FFTSize() != 32 {
		t.Errorf("FFTSize() = %d, want 32", f.FFTSize())
	}
}

func TestConvolveFilterEmptyKernel(t *testing.T) {
	if _, err := NewConvolveFilter64(nil, 4); err != ErrEmptyInput {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestConvolveFilterMismatchedLengths(t *testing.T) {
	f, err := NewConvolveFilter64([]float64{1, 2}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Apply(make([]float64, 3), make([]float64, 4)); err == nil {
		t.Error("expected error for mismatched in/out lengths")
	}
}
