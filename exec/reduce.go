package exec

import (
	"sync"

	"github.com/openfluke/ddc"
)

// Number is the constraint satisfied by the built-in reducers.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Reducer is an associative, commutative binary operator with an identity
// value (spec §4.6). The runtime may partition work arbitrarily across it.
type Reducer[R any] func(a, b R) R

// Sum is the provided sum reducer.
func Sum[R Number]() Reducer[R] {
	return func(a, b R) R { return a + b }
}

// Max is the provided max reducer.
func Max[R Number]() Reducer[R] {
	return func(a, b R) R {
		if a > b {
			return a
		}
		return b
	}
}

// Min is the provided min reducer.
func Min[R Number]() Reducer[R] {
	return func(a, b R) R {
		if a < b {
			return a
		}
		return b
	}
}

// TransformReduce folds kernel(e) over dom's elements with reducer,
// starting from identity, sequentially and in declared iteration order.
func TransformReduce[T ddc.TagSet, R any](dom ddc.Domain[T], identity R, reducer Reducer[R], kernel func(ddc.Elem[T]) R) R {
	acc := identity
	for e := range dom.All() {
		acc = reducer(acc, kernel(e))
	}
	return acc
}

// ParallelTransformReduce is the parallel counterpart of TransformReduce.
// The result is deterministic in value modulo floating-point reassociation;
// bit-level determinism is not promised (spec §4.6).
func ParallelTransformReduce[T ddc.TagSet, R any](space Space, dom ddc.Domain[T], identity R, reducer Reducer[R], kernel func(ddc.Elem[T]) R) R {
	elems := collectDomain(dom)
	return parallelReduce(space, elems, identity, reducer, kernel)
}

func parallelReduce[T ddc.TagSet, R any](space Space, elems []ddc.Elem[T], identity R, reducer Reducer[R], kernel func(ddc.Elem[T]) R) R {
	n := len(elems)
	if n == 0 {
		return identity
	}
	workers := space.Workers(int64(n))
	if workers <= 1 {
		acc := identity
		for _, e := range elems {
			acc = reducer(acc, kernel(e))
		}
		space.Fence()
		return acc
	}

	chunkSize := (n + workers - 1) / workers
	partials := make([]R, workers)
	var wg sync.WaitGroup
	used := 0
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			break
		}
		used++
		wg.Add(1)
		go func(slot, start, end int) {
			defer wg.Done()
			acc := identity
			for i := start; i < end; i++ {
				acc = reducer(acc, kernel(elems[i]))
			}
			partials[slot] = acc
		}(w, start, end)
	}
	wg.Wait()
	space.Fence()

	acc := identity
	for i := 0; i < used; i++ {
		acc = reducer(acc, partials[i])
	}
	return acc
}
