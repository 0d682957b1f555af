package ddc

import "github.com/openfluke/ddc/mem"

// Chunk owns a contiguous memory region bound to a discrete domain (spec
// §3, §4.4). Layout defaults to row-major in T's declared tag order — the
// last tag varies fastest — matching Domain.All's iteration order so
// contiguous iteration touches contiguous memory.
//
// A chunk's backing storage always lives in ordinary Go memory: there is
// no way to run an arbitrary Go kernel on GPU lanes, so device-space
// chunks keep their values resident here too and treat the WebGPU buffer
// reserved through mem.Device() as a mirrored capability resource, synced
// explicitly (see SyncToDevice/SyncFromDevice in chunk_device.go) rather
// than as the chunk's primary store.
type Chunk[V any, T TagSet] struct {
	domain  Domain[T]
	strides []int64
	data    []V
	space   mem.Space
	token   mem.Token
}

// NewChunk allocates a chunk over dom in the given memory space.
// OutOfMemory propagates from space.Reserve; every other failure mode is a
// programming error (spec §7).
func NewChunk[V any, T TagSet](dom Domain[T], space mem.Space) (*Chunk[V, T], error) {
	tok, err := space.Reserve(dom.Size())
	if err != nil {
		return nil, err
	}
	return &Chunk[V, T]{
		domain:  dom,
		strides: rowMajorStrides(dom.extents.comps),
		data:    make([]V, dom.Size()),
		space:   space,
		token:   tok,
	}, nil
}

// Domain returns the domain the chunk is allocated over.
func (c *Chunk[V, T]) Domain() Domain[T] { return c.domain }

// Space returns the chunk's memory space.
func (c *Chunk[V, T]) Space() mem.Space { return c.space }

// Release returns the chunk's storage to its memory space. Using the chunk,
// or any span borrowed from it, afterwards is a programming error (spec
// §4.4, §7).
func (c *Chunk[V, T]) Release() {
	c.space.Release(c.token)
	c.data = nil
}

// At returns the element identified by e.
func (c *Chunk[V, T]) At(e Elem[T]) V {
	c.checkBounds(e)
	return c.data[c.domain.linearIndex(e)]
}

// Set stores v at the element identified by e.
func (c *Chunk[V, T]) Set(e Elem[T], v V) {
	c.checkBounds(e)
	c.data[c.domain.linearIndex(e)] = v
}

func (c *Chunk[V, T]) checkBounds(e Elem[T]) {
	if !c.domain.Contains(e) {
		fatalf("Chunk: index %v out of bounds for domain front=%v extents=%v", e.uids, c.domain.front.uids, c.domain.extents.comps)
	}
}

// Span returns a non-owning view over the chunk's entire domain.
func (c *Chunk[V, T]) Span() ChunkSpan[V, T] {
	return ChunkSpan[V, T]{
		front:   c.domain.front,
		extents: c.domain.extents,
		stride:  c.strides,
		data:    c.data,
	}
}

// Project reads the element of c identified by e, whose tag set U must be a
// superset of T — extra tags are projected out (spec §4.4's "chunk(e)...
// regardless of the positional order... tags, not positions, decide
// projection").
func Project[V any, T TagSet, U TagSet](c *Chunk[V, T], e Elem[U]) V {
	return c.At(Select[T](e))
}

// ProjectSet is the write counterpart of Project.
func ProjectSet[V any, T TagSet, U TagSet](c *Chunk[V, T], e Elem[U], v V) {
	c.Set(Select[T](e), v)
}

// DeepcopyChunk copies src into dst value-by-value (spec §4.4). The two
// domains must be congruent: same tag set (matched by name), same extents,
// any tag order. Layouts and tag order may differ — the copy iterates in
// dst's order for contiguity.
func DeepcopyChunk[V any, T1 TagSet, T2 TagSet](dst *Chunk[V, T1], src *Chunk[V, T2]) {
	Deepcopy(dst.Span(), src.Span())
}

// CreateMirror allocates a host-accessible chunk with the same domain as
// span (spec §4.4). It copies no data.
func CreateMirror[V any, T TagSet](span ChunkSpan[V, T]) (*Chunk[V, T], error) {
	return NewChunk[V](span.Domain(), mem.Host())
}

// rowMajorStrides returns the per-axis element stride for a row-major
// buffer with the given extents, in declared tag order (last axis fastest).
func rowMajorStrides(extents []int64) []int64 {
	n := len(extents)
	strides := make([]int64, n)
	acc := int64(1)
	for i := n - 1; i >= 0; i-- {
		strides[i] = acc
		if extents[i] > 0 {
			acc *= extents[i]
		}
	}
	return strides
}
