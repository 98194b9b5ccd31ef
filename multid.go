package fft

import "fmt"

// PlanMDT executes a separable N-dimensional complex DFT: a forward/inverse
// 1-D transform applied along every axis in turn, each axis driven through
// Plan.TransformStrided over every line parallel to it. Generalizes the
// teacher's poisson.FFTPlan.TransformLines (grid.LineIterator, one axis at
// a time, in place) from a fixed rank-3 grid to Shape's arbitrary rank.
type PlanMDT[C Complex] struct {
	shape     Shape
	axisPlans []*Plan[C]
	scratch   []C
}

// NewPlanMD64 constructs a complex128 multi-D plan for shape.
func NewPlanMD64(shape Shape, opts ...Option) (*PlanMDT[complex128], error) {
	return newPlanMD[complex128](shape, opts...)
}

// NewPlanMD32 constructs a complex64 multi-D plan for shape.
func NewPlanMD32(shape Shape, opts ...Option) (*PlanMDT[complex64], error) {
	return newPlanMD[complex64](shape, opts...)
}

func newPlanMD[C Complex](shape Shape, opts ...Option) (*PlanMDT[C], error) {
	if shape.Rank() == 0 || shape.Rank() > maxRank {
		return nil, ErrRankUnsupported
	}
	axisPlans := make([]*Plan[C], shape.Rank())
	maxTemp := 0
	for axis := 0; axis < shape.Rank(); axis++ {
		n := shape.N(axis)
		p, err := newPlan[C](n, opts...)
		if err != nil {
			return nil, fmt.Errorf("fft: axis %d: %w", axis, err)
		}
		axisPlans[axis] = p
		if t := p.TempSize(); t > maxTemp {
			maxTemp = t
		}
	}
	return &PlanMDT[C]{shape: shape, axisPlans: axisPlans, scratch: make([]C, maxTemp)}, nil
}

// Shape returns the plan's N-D extents.
func (p *PlanMDT[C]) Shape() Shape { return p.shape }

// Forward computes the N-D DFT of data in place, row-major, by applying a
// 1-D forward transform along every axis.
func (p *PlanMDT[C]) Forward(data []C) error {
	return p.execute(Forward, data)
}

// Inverse computes the unscaled N-D IDFT of data in place, by applying a
// 1-D inverse transform along every axis. Normalize by dividing every
// element by Shape().Size() for a round-trip.
func (p *PlanMDT[C]) Inverse(data []C) error {
	return p.execute(Inverse, data)
}

func (p *PlanMDT[C]) execute(dir Direction, data []C) error {
	if len(data) != p.shape.Size() {
		return &SizeError{Expected: p.shape.Size(), Got: len(data), Context: "PlanMDT"}
	}
	for axis := 0; axis < p.shape.Rank(); axis++ {
		plan := p.axisPlans[axis]
		it := NewLineIterator(p.shape, axis)
		stride := it.LineStride()
		for {
			start := it.StartIndex()
			if err := plan.TransformStrided(data, data, start, stride, dir, p.scratch); err != nil {
				return err
			}
			if !it.Next() {
				break
			}
		}
	}
	return nil
}
