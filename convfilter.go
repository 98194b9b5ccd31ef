package fft

import "fmt"

// ConvolveFilterT is a partitioned overlap-save streaming FIR filter: an
// impulse response of arbitrary length is split into K = ceil(L/B)
// block-sized segments, each kept in the frequency domain, so Apply can
// consume any number of input samples per call (not just multiples of the
// internal block size) while producing the exact linear-convolution output.
// The filter's own buffers are allocated once at construction; the inner
// PlanRealT transforms that Apply calls allocate working buffers on each
// call. Ported from kfr's convolve_filter /
// process_buffer (_examples/original_source/include/kfr/dft/convolution.hpp,
// spec §4.8), which keeps a ring of K frequency-domain segments/ir_segments,
// an input_position counter, and a "premul" accumulator recomputed once per
// completed block rather than once per sample.
type ConvolveFilterT[T Float, C Complex] struct {
	blockSize int // B, a power of two
	fftSize   int // 2B
	numSegs   int // K = ceil(len(h)/B)
	implen    int // original impulse response length L

	realPlan *PlanRealT[T, C]
	scratchC []C

	segments   [][]C // K ring slots, PackedLen() each, this call's forward spectra
	irSegments [][]C // K fixed impulse-response spectra, scaled by 1/B

	savedInput []T // length B, accumulates the not-yet-complete block
	overlap    []T // length B, carries scratch2[B:2B] into the next block
	timeBuf    []T // length 2B, zero-padded time-domain scratch

	premul   []C // length PackedLen(), sum of non-current segment products
	cscratch []C // length PackedLen(), premul + current segment product

	inputPosition int // 0..B-1, position within the not-yet-complete block
	position      int // which ring slot holds the newest segment
}

// NewConvolveFilter64 builds a partitioned overlap-save filter for the given
// real float64 impulse response and requested block size.
func NewConvolveFilter64(impulse []float64, blockSize int) (*ConvolveFilterT[float64, complex128], error) {
	return newConvolveFilter[float64, complex128](impulse, blockSize)
}

// NewConvolveFilter32 builds a partitioned overlap-save filter for the given
// real float32 impulse response and requested block size.
func NewConvolveFilter32(impulse []float32, blockSize int) (*ConvolveFilterT[float32, complex64], error) {
	return newConvolveFilter[float32, complex64](impulse, blockSize)
}

func newConvolveFilter[T Float, C Complex](impulse []T, requestedBlock int) (*ConvolveFilterT[T, C], error) {
	if len(impulse) == 0 {
		return nil, ErrEmptyInput
	}
	if requestedBlock <= 0 {
		return nil, &ValidationError{Field: "blockSize", Message: "must be positive"}
	}

	blockSize := nextPow2(requestedBlock)
	fftSize := 2 * blockSize
	numSegs := (len(impulse) + blockSize - 1) / blockSize

	realPlan, err := newPlanReal[T, C](fftSize, WithPackFormat(Perm))
	if err != nil {
		return nil, fmt.Errorf("fft: convolution filter real plan: %w", err)
	}

	packedLen := realPlan.PackedLen()
	f := &ConvolveFilterT[T, C]{
		blockSize:  blockSize,
		fftSize:    fftSize,
		numSegs:    numSegs,
		implen:     len(impulse),
		realPlan:   realPlan,
		scratchC:   make([]C, realPlan.TempSize()),
		segments:   make([][]C, numSegs),
		irSegments: make([][]C, numSegs),
		savedInput: make([]T, blockSize),
		overlap:    make([]T, blockSize),
		timeBuf:    make([]T, fftSize),
		premul:     make([]C, packedLen),
		cscratch:   make([]C, packedLen),
	}

	pad := make([]T, fftSize)
	for i := 0; i < numSegs; i++ {
		f.segments[i] = make([]C, packedLen)
		f.irSegments[i] = make([]C, packedLen)

		for j := range pad {
			pad[j] = 0
		}
		start := i * blockSize
		end := start + blockSize
		if end > len(impulse) {
			end = len(impulse)
		}
		if start < end {
			copy(pad[:blockSize], impulse[start:end])
		}

		if err := realPlan.Forward(f.irSegments[i], pad, f.scratchC); err != nil {
			return nil, fmt.Errorf("fft: convolution filter impulse spectrum: %w", err)
		}
		// Absorb Inverse's unscaled-by-half(=blockSize) contract here so
		// Apply needs no extra division (real.go's Inverse doc comment).
		scalePerm(f.irSegments[i], 1/float64(blockSize))
	}

	return f, nil
}

// BlockSize returns the internal block size B (a power of two, possibly
// larger than the block size requested at construction).
func (f *ConvolveFilterT[T, C]) BlockSize() int { return f.blockSize }

// ImpulseLen returns the impulse response length.
func (f *ConvolveFilterT[T, C]) ImpulseLen() int { return f.implen }

// FFTSize returns the internal transform size, 2*BlockSize().
func (f *ConvolveFilterT[T, C]) FFTSize() int { return f.fftSize }

// Apply filters in into out, consuming any number of input samples per
// call — including counts smaller or larger than BlockSize() — and writes
// the exact linear-convolution output, delayed by zero samples at the
// start, within the roundoff of two inner FFTs of length FFTSize() plus the
// pointwise products. in and out must have equal, non-aliasing length.
// Every internal block step runs one PlanRealT Forward and one Inverse,
// each of which allocates its own working buffers.
func (f *ConvolveFilterT[T, C]) Apply(out, in []T) error {
	if len(in) != len(out) {
		return &SizeError{Expected: len(out), Got: len(in), Context: "ConvolveFilterT.Apply"}
	}

	B := f.blockSize
	K := f.numSegs
	processed := 0
	for processed < len(in) {
		c := len(in) - processed
		if rem := B - f.inputPosition; rem < c {
			c = rem
		}
		copy(f.savedInput[f.inputPosition:f.inputPosition+c], in[processed:processed+c])

		for i := range f.timeBuf {
			f.timeBuf[i] = 0
		}
		copy(f.timeBuf[:B], f.savedInput)
		if err := f.realPlan.Forward(f.segments[f.position], f.timeBuf, f.scratchC); err != nil {
			return err
		}

		if f.inputPosition == 0 {
			for i := range f.premul {
				f.premul[i] = fromC128[C](0)
			}
			for i := 1; i < K; i++ {
				n := (f.position + i) % K
				permMulAdd(f.premul, f.irSegments[i], f.segments[n])
			}
		}
		copy(f.cscratch, f.premul)
		permMulAdd(f.cscratch, f.irSegments[0], f.segments[f.position])

		if err := f.realPlan.Inverse(f.timeBuf, f.cscratch, f.scratchC); err != nil {
			return err
		}

		for i := 0; i < c; i++ {
			out[processed+i] = f.timeBuf[f.inputPosition+i] + f.overlap[f.inputPosition+i]
		}

		f.inputPosition += c
		processed += c

		if f.inputPosition == B {
			f.inputPosition = 0
			for i := range f.savedInput {
				f.savedInput[i] = 0
			}
			copy(f.overlap, f.timeBuf[B:])
			f.position--
			if f.position < 0 {
				f.position = K - 1
			}
		}
	}
	return nil
}

// Reset clears all streaming state (segments, saved input, overlap) as if
// the filter had just been constructed; the impulse response spectra are
// unaffected.
func (f *ConvolveFilterT[T, C]) Reset() {
	zeroC := fromC128[C](0)
	for _, seg := range f.segments {
		for i := range seg {
			seg[i] = zeroC
		}
	}
	for i := range f.savedInput {
		f.savedInput[i] = 0
	}
	for i := range f.overlap {
		f.overlap[i] = 0
	}
	f.inputPosition = 0
	f.position = 0
}

// nextPow2 returns the smallest power of two >= n.
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// scalePerm multiplies every Perm-packed bin of spec by a real scalar,
// including the DC/Nyquist pair co-packed into bin 0.
func scalePerm[C Complex](spec []C, s float64) {
	for i, v := range spec {
		c := toC128(v) * complex(s, 0)
		spec[i] = fromC128[C](c)
	}
}

// permMulAdd accumulates the Perm-packed pointwise product a*b into dst.
// Bin 0 co-packs a real DC value and a real Nyquist value into one complex
// slot's real/imaginary parts, so that bin multiplies independently
// (re*re, im*im) rather than as an ordinary complex product; every other
// bin holds a genuine complex frequency value and multiplies normally.
func permMulAdd[C Complex](dst, a, b []C) {
	a0 := toC128(a[0])
	b0 := toC128(b[0])
	d0 := toC128(dst[0]) + complex(real(a0)*real(b0), imag(a0)*imag(b0))
	dst[0] = fromC128[C](d0)
	for k := 1; k < len(dst); k++ {
		d := toC128(dst[k]) + toC128(a[k])*toC128(b[k])
		dst[k] = fromC128[C](d)
	}
}
