package fft

import "fmt"

// complexPlan is the internal, precision-erased execution plan: every
// complex sample is carried as complex128 regardless of the public Plan's
// element type, narrowed only at the Forward/Inverse boundary (see
// twiddle.go). This mirrors the teacher's DCTPlan/FFTPlan split, where the
// algo-fft plan always runs in the library's native precision and the
// poisson package narrows at its own edges.
type complexPlan struct {
	n      int
	stages []stage
	data   []complex128
	order  Order
}

// tempLen returns the minimum scratch length, in complex128 elements, any
// execute call against this plan requires.
func (p *complexPlan) tempLen() int {
	max := 0
	for _, st := range p.stages {
		if t := st.tempSize(); t > max {
			max = t
		}
	}
	return max
}

// canInplace reports whether every stage in this plan tolerates dst==src.
func (p *complexPlan) canInplace() bool {
	for _, st := range p.stages {
		if !st.canInplace() {
			return false
		}
	}
	return true
}

// execute runs every stage in order. The first stage reads src and writes
// dst (handling dst==src itself); every following stage reads and writes
// dst in place, so every stage after the first must accept dst==src.
func (p *complexPlan) execute(dir Direction, dst, src, scratch []complex128) {
	if p.n == 0 {
		return
	}
	if p.n == 1 {
		dst[0] = src[0]
		return
	}
	for i, st := range p.stages {
		ts := st.tempSize()
		ss := scratch[:ts]
		if i == 0 {
			st.execute(dir, dst, src, ss)
		} else {
			st.execute(dir, dst, dst, ss)
		}
	}
	if dir == Forward && p.order == OrderInternal {
		// Internal order is whatever the stage chain naturally produces;
		// nothing further to do. OrderNormal is the chain's natural
		// output already, since reorder runs first (decimation in time),
		// so there is no trailing un-reorder pass to skip in this
		// implementation — see DESIGN.md.
		return
	}
}

// Plan executes forward and inverse discrete Fourier transforms of a fixed
// size over complex element type C. Construct one with NewPlan64 or
// NewPlan32. A *Plan is safe for concurrent use by multiple goroutines as
// long as each call supplies its own scratch buffer (see Forward/Inverse);
// the plan's stage data is read-only after construction.
type Plan[C Complex] struct {
	inner *complexPlan
}

// NewPlan64 constructs a complex128 Plan for a length-n transform.
func NewPlan64(n int, opts ...Option) (*Plan[complex128], error) {
	return newPlan[complex128](n, opts...)
}

// NewPlan32 constructs a complex64 Plan for a length-n transform.
func NewPlan32(n int, opts ...Option) (*Plan[complex64], error) {
	return newPlan[complex64](n, opts...)
}

func newPlan[C Complex](n int, opts ...Option) (*Plan[C], error) {
	o := applyOptions(opts)
	inner, err := buildComplexPlan(n, o)
	if err != nil {
		return nil, err
	}
	return &Plan[C]{inner: inner}, nil
}

// Size returns the transform length this plan was built for.
func (p *Plan[C]) Size() int { return p.inner.n }

// TempSize returns the minimum scratch length Forward/Inverse/Execute
// require, in elements of C.
func (p *Plan[C]) TempSize() int { return p.inner.tempLen() }

// CanInplace reports whether dst and src may alias in Forward/Inverse.
func (p *Plan[C]) CanInplace() bool { return p.inner.canInplace() }

// Execute runs the transform in the given direction. dst and src must each
// have length Size(); scratch must have length >= TempSize() unless
// TempSize() is 0. dst and src may alias only if CanInplace() is true.
// Execute checks scratch's length, then runs the stages on complex128
// working buffers it allocates on every call; the contents of scratch are
// not used.
func (p *Plan[C]) Execute(dir Direction, dst, src []C, scratch []C) error {
	n := p.inner.n
	if len(dst) != n || len(src) != n {
		return &SizeError{Expected: n, Got: len(src), Context: "Plan.Execute"}
	}
	need := p.inner.tempLen()
	if need > 0 && len(scratch) < need {
		return fmt.Errorf("fft: %w: need %d, got %d", ErrMissingScratch, need, len(scratch))
	}

	cdst := make([]complex128, n)
	csrc := make([]complex128, n)
	for i, v := range src {
		csrc[i] = toC128(v)
	}
	cscratch := make([]complex128, need)
	p.inner.execute(dir, cdst, csrc, cscratch)
	for i, v := range cdst {
		dst[i] = fromC128[C](v)
	}
	return nil
}

// Forward computes the DFT of src into dst.
func (p *Plan[C]) Forward(dst, src []C, scratch []C) error {
	return p.Execute(Forward, dst, src, scratch)
}

// Inverse computes the unscaled IDFT of src into dst. Callers wanting a
// normalized inverse divide every element by Size() themselves.
func (p *Plan[C]) Inverse(dst, src []C, scratch []C) error {
	return p.Execute(Inverse, dst, src, scratch)
}

// TransformStrided runs the transform over a strided view of dst/src, for
// callers driving one axis of a larger buffer (see multid.go). stride is
// the distance, in elements, between consecutive logical samples; offset
// is the index of the first sample.
func (p *Plan[C]) TransformStrided(dst, src []C, offset, stride int, dir Direction, scratch []C) error {
	n := p.inner.n
	need := p.inner.tempLen()
	if need > 0 && len(scratch) < need {
		return fmt.Errorf("fft: %w: need %d, got %d", ErrMissingScratch, need, len(scratch))
	}
	csrc := make([]complex128, n)
	for i := 0; i < n; i++ {
		csrc[i] = toC128(src[offset+i*stride])
	}
	cdst := make([]complex128, n)
	cscratch := make([]complex128, need)
	p.inner.execute(dir, cdst, csrc, cscratch)
	for i := 0; i < n; i++ {
		dst[offset+i*stride] = fromC128[C](cdst[i])
	}
	return nil
}

// ProgressiveState tracks a step-wise execution of a Plan across repeated
// ProgressiveStep calls, per spec §4.3.
type ProgressiveState[C Complex] struct {
	plan    *Plan[C]
	dir     Direction
	work    []complex128
	scratch []complex128
	stage   int
}

// ProgressiveStart begins a progressive transform of src into a private
// working buffer; call ProgressiveStep repeatedly until it returns
// ErrProgressiveDone, then copy the result into dst via Finish.
func (p *Plan[C]) ProgressiveStart(dir Direction, src []C) (*ProgressiveState[C], error) {
	n := p.inner.n
	if len(src) != n {
		return nil, &SizeError{Expected: n, Got: len(src), Context: "Plan.ProgressiveStart"}
	}
	work := make([]complex128, n)
	for i, v := range src {
		work[i] = toC128(v)
	}
	return &ProgressiveState[C]{
		plan:    p,
		dir:     dir,
		work:    work,
		scratch: make([]complex128, p.inner.tempLen()),
	}, nil
}

// ProgressiveStep executes exactly one remaining stage. It returns
// ErrProgressiveDone once every stage has run.
func (s *ProgressiveState[C]) ProgressiveStep() error {
	stages := s.plan.inner.stages
	if s.stage >= len(stages) {
		return ErrProgressiveDone
	}
	st := stages[s.stage]
	ts := st.tempSize()
	st.execute(s.dir, s.work, s.work, s.scratch[:ts])
	s.stage++
	return nil
}

// Done reports whether every stage has executed.
func (s *ProgressiveState[C]) Done() bool {
	return s.stage >= len(s.plan.inner.stages)
}

// TotalSteps returns the number of ProgressiveStep calls a full run takes.
func (s *ProgressiveState[C]) TotalSteps() int {
	return len(s.plan.inner.stages)
}

// Finish copies the progressive result into dst, which must have length
// equal to the plan's size.
func (s *ProgressiveState[C]) Finish(dst []C) error {
	n := s.plan.inner.n
	if len(dst) != n {
		return &SizeError{Expected: n, Got: len(dst), Context: "ProgressiveState.Finish"}
	}
	for i, v := range s.work {
		dst[i] = fromC128[C](v)
	}
	return nil
}
