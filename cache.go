package fft

import "sync"

// cache is a process-wide, mutex-guarded store of plans keyed by size,
// so repeated callers asking for the same transform length don't each pay
// construction cost. Grounded on kfr's dft cache (original_source
// include/kfr/dft/cache.hpp), which keeps a similar global keyed cache of
// constructed DFT plans; reimplemented here as four size-keyed maps (one
// per public plan type) rather than a single type-erased map, since Go
// generics give no ergonomic way to key a single map by a type parameter.
var (
	cacheMu     sync.Mutex
	cache64     = map[int]*Plan[complex128]{}
	cache32     = map[int]*Plan[complex64]{}
	cacheReal64 = map[int]*PlanRealT[float64, complex128]{}
	cacheReal32 = map[int]*PlanRealT[float32, complex64]{}
)

// CachedPlan64 returns a shared complex128 Plan for length n, building and
// caching one on first use. The returned plan is read-only after
// construction and safe for concurrent use given per-call scratch buffers
// (see Plan.Execute); callers must not mutate it.
func CachedPlan64(n int) (*Plan[complex128], error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if p, ok := cache64[n]; ok {
		return p, nil
	}
	p, err := NewPlan64(n)
	if err != nil {
		return nil, err
	}
	cache64[n] = p
	return p, nil
}

// CachedPlan32 returns a shared complex64 Plan for length n.
func CachedPlan32(n int) (*Plan[complex64], error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if p, ok := cache32[n]; ok {
		return p, nil
	}
	p, err := NewPlan32(n)
	if err != nil {
		return nil, err
	}
	cache32[n] = p
	return p, nil
}

// CachedPlanReal64 returns a shared float64/complex128 real plan for
// length n, in the default CCs packing.
func CachedPlanReal64(n int) (*PlanRealT[float64, complex128], error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if p, ok := cacheReal64[n]; ok {
		return p, nil
	}
	p, err := NewPlanReal64(n)
	if err != nil {
		return nil, err
	}
	cacheReal64[n] = p
	return p, nil
}

// CachedPlanReal32 returns a shared float32/complex64 real plan for
// length n, in the default CCs packing.
func CachedPlanReal32(n int) (*PlanRealT[float32, complex64], error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	if p, ok := cacheReal32[n]; ok {
		return p, nil
	}
	p, err := NewPlanReal32(n)
	if err != nil {
		return nil, err
	}
	cacheReal32[n] = p
	return p, nil
}

// ClearCache empties every cached plan. Intended for tests and for
// callers that want to bound memory after a burst of distinct sizes.
func ClearCache() {
	cacheMu.Lock()
	defer cacheMu.Unlock()
	cache64 = map[int]*Plan[complex128]{}
	cache32 = map[int]*Plan[complex64]{}
	cacheReal64 = map[int]*PlanRealT[float64, complex128]{}
	cacheReal32 = map[int]*PlanRealT[float32, complex64]{}
}
