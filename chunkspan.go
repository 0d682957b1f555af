package ddc

// ChunkSpan is a non-owning view into a Chunk's storage (spec §3, §4.4).
// It carries the same tag discipline as Chunk but adds a per-axis element
// stride, letting a subdomain slice reuse the parent's storage directly —
// strided iteration matches strided storage without gather (spec §9 open
// question, resolved in SPEC_FULL.md §D.2).
//
// A ChunkSpan's lifetime is bounded by the Chunk it was taken from; using
// one after its source chunk is released is a programming error (spec §4.4).
type ChunkSpan[V any, T TagSet] struct {
	front   Elem[T]
	extents Vect[T]
	stride  []int64
	base    int64
	data    []V
}

// Domain returns the index set the span covers.
func (s ChunkSpan[V, T]) Domain() Domain[T] {
	return Domain[T]{front: s.front, extents: s.extents}
}

// At returns the element identified by e.
func (s ChunkSpan[V, T]) At(e Elem[T]) V {
	return s.data[s.offset(e)]
}

// Set stores v at the element identified by e.
func (s ChunkSpan[V, T]) Set(e Elem[T], v V) {
	s.data[s.offset(e)] = v
}

func (s ChunkSpan[V, T]) offset(e Elem[T]) int64 {
	if !s.contains(e) {
		fatalf("ChunkSpan: index %v out of bounds for span front=%v extents=%v", e.uids, s.front.uids, s.extents.comps)
	}
	off := s.base
	for i := range e.uids {
		off += int64(e.uids[i]-s.front.uids[i]) * s.stride[i]
	}
	return off
}

func (s ChunkSpan[V, T]) contains(e Elem[T]) bool {
	for i := range e.uids {
		ext := s.extents.comps[i]
		if ext <= 0 || e.uids[i] < s.front.uids[i] || e.uids[i] >= s.front.uids[i]+uint64(ext) {
			return false
		}
	}
	return true
}

// SliceAt drops dimension D from span by fixing it to uid, returning a span
// over the remaining tags U — T's dims minus D, in U's declared order
// (spec §4.4: "a slice by a single index on tag D yields a chunk-span with
// D dropped").
func SliceAt[D Dim, U TagSet, V any, T TagSet](span ChunkSpan[V, T], uid uint64) ChunkSpan[V, U] {
	srcDims := dimsOf[T]()
	var want D
	i := indexOfDim(srcDims, want)
	if i < 0 {
		fatalf("SliceAt: dim %q not present in tag set", want.DimName())
	}
	ext := span.extents.comps[i]
	if ext <= 0 || uid < span.front.uids[i] || uid >= span.front.uids[i]+uint64(ext) {
		fatalf("SliceAt: uid %d out of range along %q (front=%d, extent=%d)", uid, want.DimName(), span.front.uids[i], ext)
	}
	base := span.base + int64(uid-span.front.uids[i])*span.stride[i]

	dstDims := dimsOf[U]()
	front := make([]uint64, len(dstDims))
	extents := make([]int64, len(dstDims))
	stride := make([]int64, len(dstDims))
	for k, d := range dstDims {
		j := indexOfDim(srcDims, d)
		if j < 0 {
			fatalf("SliceAt: dim %q not present in source tag set", d.DimName())
		}
		front[k] = span.front.uids[j]
		extents[k] = span.extents.comps[j]
		stride[k] = span.stride[j]
	}
	return ChunkSpan[V, U]{
		front:   Elem[U]{uids: front},
		extents: Vect[U]{comps: extents},
		stride:  stride,
		base:    base,
		data:    span.data,
	}
}

// SliceSub restricts span to sub, a subdomain over the same tag set T. All
// tags are kept; the result's per-axis stride still matches the parent's
// storage (spec §4.4: "a slice by a subdomain keeps all tags and induces
// strides matching the sub-rectangle").
func SliceSub[V any, T TagSet](span ChunkSpan[V, T], sub Domain[T]) ChunkSpan[V, T] {
	dims := dimsOf[T]()
	base := span.base
	for i := range dims {
		subFront, subExt := sub.front.uids[i], sub.extents.comps[i]
		parentFront, parentExt := span.front.uids[i], span.extents.comps[i]
		if subExt < 0 || subFront < parentFront || int64(subFront-parentFront)+subExt > parentExt {
			fatalf("SliceSub: subdomain is not contained in parent span along %q", dims[i].DimName())
		}
		base += int64(subFront-parentFront) * span.stride[i]
	}
	return ChunkSpan[V, T]{
		front:   sub.front,
		extents: sub.extents,
		stride:  span.stride,
		base:    base,
		data:    span.data,
	}
}

// Deepcopy copies src into dst value-by-value (spec §4.4). The two domains
// must be congruent: same tag set (matched by name), same extents, any tag
// order. Elements are matched by their offset from each span's front, so
// the two spans need not share a front. The copy iterates in dst's order
// for contiguity.
func Deepcopy[V any, T1 TagSet, T2 TagSet](dst ChunkSpan[V, T1], src ChunkSpan[V, T2]) {
	dstDims, srcDims := dimsOf[T1](), dimsOf[T2]()
	requireCongruentExtents(dstDims, dst.extents.comps, srcDims, src.extents.comps)
	for e := range dst.Domain().All() {
		off := selectVect[T2](e.Diff(dst.front))
		dst.Set(e, src.At(src.front.Plus(off)))
	}
}

func requireCongruentExtents(dstDims []Dim, dstExt []int64, srcDims []Dim, srcExt []int64) {
	if len(dstDims) != len(srcDims) {
		fatalf("Deepcopy: tag-set arity mismatch: %d vs %d", len(dstDims), len(srcDims))
	}
	for i, d := range dstDims {
		j := indexOfDim(srcDims, d)
		if j < 0 {
			fatalf("Deepcopy: dim %q in destination not present in source", d.DimName())
		}
		if dstExt[i] != srcExt[j] {
			fatalf("Deepcopy: extent mismatch on dim %q: dst=%d src=%d", d.DimName(), dstExt[i], srcExt[j])
		}
	}
}
