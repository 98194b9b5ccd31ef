// Package fft provides a planner/executor Discrete Fourier Transform engine:
// complex and real 1-D transforms, separable N-D transforms, convolution via
// the convolution theorem, and a streaming overlap-save filter.
//
// # Architecture
//
// A Plan is built once for a given size and reused across many transforms:
//
//  1. NewPlan64/NewPlan32 (complex) or NewPlanReal64/NewPlanReal32 (real)
//     factor the size into a chain of stages — mixed-radix butterflies, a
//     digit-reversal reorder, or a Bluestein chirp-z pass for sizes with a
//     large prime factor.
//  2. Forward/Inverse execute the plan against caller-provided buffers; a
//     caller-supplied scratch buffer of at least Plan.TempSize elements is
//     required, though execution still allocates its own complex128
//     working buffers on every call.
//  3. ProgressiveStart/ProgressiveStep let a caller spread a transform's
//     stages across several calls instead of running it to completion in
//     one call.
//
// # Packages
//
//   - the root package: complex/real 1-D plans, N-D plans (multid.go,
//     multid_real.go), convolution (convolution.go), the streaming filter
//     (convfilter.go), the process-wide plan cache (cache.go), and
//     real-to-real cosine/sine transforms (dct.go, dst.go)
//
// # Example
//
//	plan, err := fft.NewPlan64(8)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	src := make([]complex128, 8)
//	for i := range src {
//	    src[i] = complex(float64(i), 0)
//	}
//	dst := make([]complex128, 8)
//	scratch := make([]complex128, plan.TempSize())
//	if err := plan.Forward(dst, src, scratch); err != nil {
//	    log.Fatal(err)
//	}
package fft
