// Package ddc provides discrete computation on Cartesian products of
// one-dimensional samplings of continuous physical axes.
//
// A user declares named continuous dimensions (Axis), chooses a sampling
// policy per discrete dimension (Dim) — uniform spacing, non-uniform
// breakpoints, or periodic wraparound — and then manipulates chunks:
// multidimensional arrays whose every index carries compile-time knowledge
// of which dimension it indexes. Algorithms written against this package
// (finite-difference schemes, domain reductions) stay dimension-generic
// and cannot mix up axes.
//
// Required call order:
//
//	guard := ddc.Acquire()
//	defer guard.Release()
//
//	ddc.InitDiscreteSpace[MeshX](ddc.NewUniformSampling(0, 1, 5))
//	dom := ddc.NewDomain(ddc.NewElem[Tags1[MeshX]](0), ddc.NewVect[Tags1[MeshX]](5))
//	c, _ := ddc.NewChunk[float64](dom, mem.Host())
//
//	exec.ParallelForEach(exec.Host(), dom, func(e ddc.Elem[Tags1[MeshX]]) {
//	    c.Set(e, ddc.Coordinate[Axes1[X]](e).Values()[0])
//	})
package ddc
