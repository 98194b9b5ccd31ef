package fft

// reorderStage permutes a working buffer into digit-reversed order ahead
// of a chain of radixStages, generalizing the bit-reversal permutation
// every radix-2 FFT needs (andewx's permutationIndex/permute in fft.go) to
// an arbitrary sequence of radices. Index i, written in mixed radix using
// radices in stage-application order (least-significant digit corresponds
// to the first-applied, i.e. innermost, radix), maps to the index formed
// by the same digits read in reverse place-value order.
type reorderStage struct {
	perm []int // perm[i] = source index for output position i
}

func newReorderStage(radices []int) *reorderStage {
	n := 1
	for _, r := range radices {
		n *= r
	}
	perm := make([]int, n)
	for i := range perm {
		perm[i] = digitReverseIndex(i, radices)
	}
	return &reorderStage{perm: perm}
}

// digitReverseIndex decomposes i into mixed-radix digits using radices in
// the given order (digits[0] least significant), then recombines those
// same digits with their place value reversed.
func digitReverseIndex(i int, radices []int) int {
	k := len(radices)
	digits := make([]int, k)
	rem := i
	for s := 0; s < k; s++ {
		digits[s] = rem % radices[s]
		rem /= radices[s]
	}
	v := digits[0]
	for s := 1; s < k; s++ {
		v = v*radices[s] + digits[s]
	}
	return v
}

func (s *reorderStage) radix() int       { return 0 }
func (s *reorderStage) dataSize() int    { return 0 }
func (s *reorderStage) tempSize() int    { return 0 }
func (s *reorderStage) canInplace() bool { return false }
func (s *reorderStage) needReorder() bool { return true }

func (s *reorderStage) initialize(data []complex128) {}

func (s *reorderStage) execute(dir Direction, dst, src, scratch []complex128) {
	if &dst[0] == &src[0] {
		applyPermInPlace(dst, s.perm)
		return
	}
	for i, p := range s.perm {
		dst[i] = src[p]
	}
}

// applyPermInPlace applies perm (dst[i] = src[perm[i]]) to x in place by
// following each permutation cycle once.
func applyPermInPlace(x []complex128, perm []int) {
	visited := make([]bool, len(x))
	for start := range x {
		if visited[start] {
			continue
		}
		j := start
		saved := x[start]
		for {
			visited[j] = true
			next := perm[j]
			if next == start {
				x[j] = saved
				break
			}
			x[j] = x[next]
			j = next
		}
	}
}
