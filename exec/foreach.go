package exec

import (
	"sync"

	"github.com/openfluke/ddc"
)

// ForEach invokes kernel once per element of dom, sequentially, in the
// domain's declared iteration order.
func ForEach[T ddc.TagSet](dom ddc.Domain[T], kernel func(ddc.Elem[T])) {
	for e := range dom.All() {
		kernel(e)
	}
}

// ForEachStrided is the strided-domain counterpart of ForEach.
func ForEachStrided[T ddc.TagSet](dom ddc.StridedDomain[T], kernel func(ddc.Elem[T])) {
	for e := range dom.All() {
		kernel(e)
	}
}

// ParallelForEach invokes kernel exactly once per element of dom under the
// given execution space. There is no ordering guarantee between
// invocations; the kernel must be safe to run concurrently (spec §4.6).
// Grounded on the teacher's KMeansCluster assignment step
// (nn/clustering.go): the element set is partitioned into Workers(n)
// contiguous chunks, each run on its own goroutine, joined by a WaitGroup.
func ParallelForEach[T ddc.TagSet](space Space, dom ddc.Domain[T], kernel func(ddc.Elem[T])) {
	elems := collectDomain(dom)
	parallelRun(space, elems, kernel)
}

// ParallelForEachStrided is the strided-domain counterpart of ParallelForEach.
func ParallelForEachStrided[T ddc.TagSet](space Space, dom ddc.StridedDomain[T], kernel func(ddc.Elem[T])) {
	elems := collectStrided(dom)
	parallelRun(space, elems, kernel)
}

func parallelRun[T ddc.TagSet](space Space, elems []ddc.Elem[T], kernel func(ddc.Elem[T])) {
	n := len(elems)
	if n == 0 {
		return
	}
	workers := space.Workers(int64(n))
	if workers <= 1 {
		for _, e := range elems {
			kernel(e)
		}
		space.Fence()
		return
	}

	chunkSize := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				kernel(elems[i])
			}
		}(start, end)
	}
	wg.Wait()
	space.Fence()
}

func collectDomain[T ddc.TagSet](dom ddc.Domain[T]) []ddc.Elem[T] {
	out := make([]ddc.Elem[T], 0, dom.Size())
	for e := range dom.All() {
		out = append(out, e)
	}
	return out
}

func collectStrided[T ddc.TagSet](dom ddc.StridedDomain[T]) []ddc.Elem[T] {
	out := make([]ddc.Elem[T], 0, dom.Size())
	for e := range dom.All() {
		out = append(out, e)
	}
	return out
}
