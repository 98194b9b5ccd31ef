package fft

// bluesteinThreshold resolves the spec's open question on when a residual
// factor (after stripping all small radices 2..10) is cheap enough to
// treat as one more generic-radix digit versus falling back to a full
// Bluestein transform. A residual this small still costs O(r^2) inside a
// single radixStage butterfly, which stays negligible next to the O(N log N)
// work of the rest of the plan; above it we prefer Bluestein's O(M log M)
// over an O(r^2) blowup. Documented in DESIGN.md as a resolved Open
// Question rather than the literal ">largest small radix" wording.
const bluesteinThreshold = 100

// smallRadices is the greedy try-order used to strip factors off n. Larger
// radices first keeps the stage count (and so the reorder/twiddle
// overhead) down; order mirrors gonum's fftpack factorization preference
// for {4,2,3,5} generalized to the full {2..10} set this engine supports.
var smallRadices = []int{10, 9, 8, 7, 6, 5, 4, 3, 2}

// factorSmallRadices greedily strips factors in smallRadices off n and
// returns the ordered radix list plus whatever residual factor remains
// (1 if n factored completely).
func factorSmallRadices(n int) ([]int, int) {
	var radices []int
	rem := n
	for _, r := range smallRadices {
		for rem%r == 0 {
			radices = append(radices, r)
			rem /= r
		}
	}
	return radices, rem
}

// buildComplexPlan constructs the internal stage list for a length-n
// complex DFT, per spec §4.1's stage-selection algorithm.
func buildComplexPlan(n int, opts Options) (*complexPlan, error) {
	if n <= 0 {
		return nil, &ValidationError{Field: "size", Message: "must be positive"}
	}
	if n > maxTransformSize {
		return nil, &ValidationError{Field: "size", Message: "exceeds maximum transform size"}
	}
	p := &complexPlan{n: n, order: opts.Order}
	if n == 1 {
		return p, nil
	}

	radices, residual := factorSmallRadices(n)
	var stages []stage
	if residual == 1 {
		stages = buildMixedRadixStages(n, radices)
	} else if residual <= bluesteinThreshold {
		radices = append(radices, residual)
		stages = buildMixedRadixStages(n, radices)
	} else {
		bs, err := newBluesteinStage(n)
		if err != nil {
			return nil, err
		}
		stages = []stage{bs}
	}

	total := 0
	for _, st := range stages {
		total += st.dataSize()
	}
	data := make([]complex128, total)
	off := 0
	for _, st := range stages {
		sz := st.dataSize()
		st.initialize(data[off : off+sz])
		off += sz
	}

	p.stages = stages
	p.data = data
	return p, nil
}

// buildMixedRadixStages assembles a reorder stage followed by one radix
// pass per entry in radices, in application order (radices[0] applied
// first, innermost).
func buildMixedRadixStages(n int, radices []int) []stage {
	stages := make([]stage, 0, len(radices)+1)
	stages = append(stages, newReorderStage(radices))
	inner := 1
	for _, r := range radices {
		blocks := n / (inner * r)
		stages = append(stages, newRadixStage(r, inner, blocks))
		inner *= r
	}
	return stages
}
