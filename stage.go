package fft

// stage is the internal execution contract every plan pass implements.
// Rather than a virtual-method hierarchy, each concrete stage type below is
// a small struct closing over its own twiddle data; the plan holds a slice
// of this interface, which plays the role of the "closed enum" described in
// spec §9 without requiring heap-boxed polymorphism beyond the interface
// value itself. Radix and Bluestein stages do not allocate at execute time;
// the reorder stage's in-place path allocates a visited-marker slice of
// length n on each call (see applyPermInPlace).
//
// Every stage operates on a contiguous complex128 working buffer whose
// length is the full transform size of the plan that owns it. Radix stages
// copy src into dst first when they differ, then transform dst in place;
// the reorder stage gathers from src (or permutes in place when dst==src),
// and the Bluestein stage reads src and writes dst through its own
// scratch. Every stage therefore works both in-place and out-of-place
// without a separate minimal-copy code path. The plan computes no
// disposition bitmask; it only publishes the stages' combined canInplace
// (see DESIGN.md).
type stage interface {
	// radix returns the kernel radix this stage applies (0 if not
	// applicable, e.g. reorder or repack stages).
	radix() int
	// dataSize returns the number of complex128 twiddle words this stage
	// owns in the plan's shared data blob.
	dataSize() int
	// tempSize returns the number of complex128 scratch words this stage
	// needs beyond its own data (0 for stages that work purely in place).
	tempSize() int
	// canInplace reports whether this stage tolerates dst == src.
	canInplace() bool
	// needReorder reports whether this stage expects bit/digit-reversed
	// input ordering.
	needReorder() bool
	// initialize populates this stage's twiddle region, given a view into
	// the plan's shared data blob sized dataSize().
	initialize(data []complex128)
	// execute runs the stage. dst and src have length equal to the
	// stage's total element count; scratch has length >= tempSize().
	execute(dir Direction, dst, src, scratch []complex128)
}

// copyIfNeeded is the shared src->dst staging every stage performs before
// transforming in place.
func copyIfNeeded(dst, src []complex128) {
	if &dst[0] != &src[0] {
		copy(dst, src)
	}
}
