package fft

// radixStage applies one pass of decimation-in-time Cooley-Tukey over a
// working buffer already in digit-reversed order. It generalizes the
// radix-2 butterfly every classic FFT tutorial starts from (see andewx's
// fft.go) to an arbitrary radix r by replacing the 2-point butterfly with a
// direct r-point DFT matrix multiply; this is exactly the "generic
// butterfly" role spec §6.1's kernel-library contract describes, applied
// uniformly rather than reserved for prime residuals (see DESIGN.md: no
// hand-tuned per-radix kernels, since those live in an external kernel
// library this module does not depend on).
type radixStage struct {
	r      int // radix
	inner  int // L: sub-transform size already combined below this stage
	blocks int // N / (r*inner)
	n      int // full stage size, r*inner*blocks

	// twiddles[j*(r-1)+(t-1)] = W_{r*inner}^{j*t}, for j in [0,inner),
	// t in [1,r).
	twiddles []complex128
}

func newRadixStage(r, inner, blocks int) *radixStage {
	return &radixStage{r: r, inner: inner, blocks: blocks, n: r * inner * blocks}
}

func (s *radixStage) radix() int      { return s.r }
func (s *radixStage) dataSize() int   { return s.inner * (s.r - 1) }
func (s *radixStage) tempSize() int   { return 2 * s.r }
func (s *radixStage) canInplace() bool { return true }
func (s *radixStage) needReorder() bool { return false }

func (s *radixStage) initialize(data []complex128) {
	l2 := s.r * s.inner
	for j := 0; j < s.inner; j++ {
		for t := 1; t < s.r; t++ {
			data[j*(s.r-1)+(t-1)] = twiddle(j*t, l2)
		}
	}
	s.twiddles = data
}

func (s *radixStage) execute(dir Direction, dst, src, scratch []complex128) {
	copyIfNeeded(dst, src)
	r, l, l2 := s.r, s.inner, s.r*s.inner
	v := scratch[:r]
	out := scratch[r : 2*r]
	for g := 0; g < s.blocks; g++ {
		base := g * l2
		for j := 0; j < l; j++ {
			for t := 0; t < r; t++ {
				v[t] = dst[base+j+t*l]
			}
			for t := 1; t < r; t++ {
				tw := s.twiddles[j*(r-1)+(t-1)]
				if dir == Inverse {
					tw = conj(tw)
				}
				v[t] *= tw
			}
			dftDirect(v, out, dir)
			for t := 0; t < r; t++ {
				dst[base+j+t*l] = out[t]
			}
		}
	}
}

// dftDirect computes an r-point DFT (forward) or unscaled IDFT (inverse) of
// v into the caller-owned out, via a direct O(r^2) matrix multiply. r is
// always small (the plan only builds radixStages for r in {2..10} plus at
// most one residual factor <= bluesteinThreshold; larger residuals go to
// Bluestein instead), so the quadratic cost is immaterial. v and out must
// not alias; dftDirect itself does not allocate.
func dftDirect(v, out []complex128, dir Direction) {
	r := len(v)
	if r == 1 {
		out[0] = v[0]
		return
	}
	for k := 0; k < r; k++ {
		var sum complex128
		for n := 0; n < r; n++ {
			w := twiddle(k*n, r)
			if dir == Inverse {
				w = conj(w)
			}
			sum += v[n] * w
		}
		out[k] = sum
	}
}
