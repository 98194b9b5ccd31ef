package fft

import "fmt"

// PlanMDRealT executes a separable N-dimensional real DFT: the last axis
// is packed via a PlanRealT (half-length complex trick, §4.1/§6.3), then
// every other axis runs a full complex transform over the packed buffer,
// the standard "real FFT along the contiguous axis, complex FFT along the
// rest" construction (spec §4.6). Grounded on the same
// poisson.FFTPlan/axis_transform gather-scatter-per-line shape as
// PlanMDT and PlanRealT, composed together.
type PlanMDRealT[T Float, C Complex] struct {
	realShape    Shape
	complexShape Shape
	realAxis     int
	realPlan     *PlanRealT[T, C]
	axisPlans    []*Plan[C] // indexed by axis; nil at realAxis

	lineR           []T
	lineC           []C
	scratchC        []C
	realOutIsEnough bool
}

// NewPlanMDReal64 constructs a float64/complex128 real multi-D plan for
// the given real-domain shape. The last axis is the one packed via the
// real-to-complex trick.
func NewPlanMDReal64(shape Shape, opts ...Option) (*PlanMDRealT[float64, complex128], error) {
	return newPlanMDReal[float64, complex128](shape, opts...)
}

// NewPlanMDReal32 constructs a float32/complex64 real multi-D plan.
func NewPlanMDReal32(shape Shape, opts ...Option) (*PlanMDRealT[float32, complex64], error) {
	return newPlanMDReal[float32, complex64](shape, opts...)
}

func newPlanMDReal[T Float, C Complex](shape Shape, opts ...Option) (*PlanMDRealT[T, C], error) {
	rank := shape.Rank()
	if rank == 0 || rank > maxRank {
		return nil, ErrRankUnsupported
	}
	realAxis := rank - 1
	o := applyOptions(opts)

	realPlan, err := newPlanReal[T, C](shape.N(realAxis), opts...)
	if err != nil {
		return nil, err
	}

	complexDims := make([]int, rank)
	copy(complexDims, shape)
	complexDims[realAxis] = realPlan.PackedLen()
	complexShape, err := NewShape(complexDims...)
	if err != nil {
		return nil, err
	}

	axisPlans := make([]*Plan[C], rank)
	maxTemp := realPlan.TempSize()
	for axis := 0; axis < rank; axis++ {
		if axis == realAxis {
			continue
		}
		p, err := newPlan[C](complexShape.N(axis), opts...)
		if err != nil {
			return nil, fmt.Errorf("fft: axis %d: %w", axis, err)
		}
		axisPlans[axis] = p
		if t := p.TempSize(); t > maxTemp {
			maxTemp = t
		}
	}

	return &PlanMDRealT[T, C]{
		realShape:       shape,
		complexShape:    complexShape,
		realAxis:        realAxis,
		realPlan:        realPlan,
		axisPlans:       axisPlans,
		lineR:           make([]T, shape.N(realAxis)),
		lineC:           make([]C, complexShape.N(realAxis)),
		scratchC:        make([]C, maxTemp),
		realOutIsEnough: o.RealOutIsEnough,
	}, nil
}

// RealShape returns the real-domain extents.
func (p *PlanMDRealT[T, C]) RealShape() Shape { return p.realShape }

// ComplexShape returns the packed-spectrum extents.
func (p *PlanMDRealT[T, C]) ComplexShape() Shape { return p.complexShape }

// Forward computes the real N-D DFT of src into dst (length
// ComplexShape().Size()).
func (p *PlanMDRealT[T, C]) Forward(dst []C, src []T) error {
	if len(src) != p.realShape.Size() {
		return &SizeError{Expected: p.realShape.Size(), Got: len(src), Context: "PlanMDRealT.Forward src"}
	}
	if len(dst) != p.complexShape.Size() {
		return &SizeError{Expected: p.complexShape.Size(), Got: len(dst), Context: "PlanMDRealT.Forward dst"}
	}

	itSrc := NewLineIterator(p.realShape, p.realAxis)
	itDst := NewLineIterator(p.complexShape, p.realAxis)
	srcStride := itSrc.LineStride()
	dstStride := itDst.LineStride()
	for {
		ss, ds := itSrc.StartIndex(), itDst.StartIndex()
		for i := range p.lineR {
			p.lineR[i] = src[ss+i*srcStride]
		}
		if err := p.realPlan.Forward(p.lineC, p.lineR, p.scratchC); err != nil {
			return err
		}
		for i := range p.lineC {
			dst[ds+i*dstStride] = p.lineC[i]
		}
		more := itSrc.Next()
		itDst.Next()
		if !more {
			break
		}
	}

	for axis := 0; axis < p.complexShape.Rank(); axis++ {
		if axis == p.realAxis {
			continue
		}
		plan := p.axisPlans[axis]
		it := NewLineIterator(p.complexShape, axis)
		stride := it.LineStride()
		for {
			start := it.StartIndex()
			if err := plan.TransformStrided(dst, dst, start, stride, Forward, p.scratchC); err != nil {
				return err
			}
			if !it.Next() {
				break
			}
		}
	}
	return nil
}

// Inverse reconstructs the unscaled real signal from a packed spectrum
// into dst (length RealShape().Size()). Normalize per-axis as with Plan
// and PlanRealT's Inverse conventions.
func (p *PlanMDRealT[T, C]) Inverse(dst []T, src []C) error {
	if len(src) != p.complexShape.Size() {
		return &SizeError{Expected: p.complexShape.Size(), Got: len(src), Context: "PlanMDRealT.Inverse src"}
	}
	if len(dst) != p.realShape.Size() {
		return &SizeError{Expected: p.realShape.Size(), Got: len(dst), Context: "PlanMDRealT.Inverse dst"}
	}

	work := src
	if !p.realOutIsEnough {
		work = make([]C, len(src))
		copy(work, src)
	}

	for axis := 0; axis < p.complexShape.Rank(); axis++ {
		if axis == p.realAxis {
			continue
		}
		plan := p.axisPlans[axis]
		it := NewLineIterator(p.complexShape, axis)
		stride := it.LineStride()
		for {
			start := it.StartIndex()
			if err := plan.TransformStrided(work, work, start, stride, Inverse, p.scratchC); err != nil {
				return err
			}
			if !it.Next() {
				break
			}
		}
	}

	itSrc := NewLineIterator(p.complexShape, p.realAxis)
	itDst := NewLineIterator(p.realShape, p.realAxis)
	srcStride := itSrc.LineStride()
	dstStride := itDst.LineStride()
	for {
		ss, ds := itSrc.StartIndex(), itDst.StartIndex()
		for i := range p.lineC {
			p.lineC[i] = work[ss+i*srcStride]
		}
		if err := p.realPlan.Inverse(p.lineR, p.lineC, p.scratchC); err != nil {
			return err
		}
		for i := range p.lineR {
			dst[ds+i*dstStride] = p.lineR[i]
		}
		more := itSrc.Next()
		itDst.Next()
		if !more {
			break
		}
	}
	return nil
}
