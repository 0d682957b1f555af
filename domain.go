package ddc

import "iter"

// Domain is a contiguous tagged index hyper-rectangle: the set
// { front + v : 0 <= v < extents componentwise }. front is fixed at
// construction; extents are non-negative. Size is the product of extents;
// the domain is empty iff any extent is zero.
type Domain[T TagSet] struct {
	front   Elem[T]
	extents Vect[T]
}

// NewDomain constructs the hyper-rectangle front + [0, extents). Rejects
// any negative extent.
func NewDomain[T TagSet](front Elem[T], extents Vect[T]) Domain[T] {
	for i, c := range extents.comps {
		if c < 0 {
			fatalf("NewDomain: negative extent %d at index %d", c, i)
		}
	}
	return Domain[T]{front: front, extents: extents}
}

// Front returns the domain's lower corner.
func (d Domain[T]) Front() Elem[T] { return d.front }

// Extents returns the domain's per-dimension extent.
func (d Domain[T]) Extents() Vect[T] { return d.extents }

// Back returns front + extents - 1, the domain's upper (inclusive) corner.
// Undefined (and a programming error) on an empty domain.
func (d Domain[T]) Back() Elem[T] {
	if d.Size() == 0 {
		fatalf("Domain.Back: empty domain has no back element")
	}
	ones := make([]int64, len(d.extents.comps))
	for i := range ones {
		ones[i] = d.extents.comps[i] - 1
	}
	return d.front.Plus(Vect[T]{comps: ones})
}

// Size returns the number of elements in the domain; zero iff any extent is
// zero.
func (d Domain[T]) Size() int64 {
	return d.extents.Product()
}

// Empty reports whether the domain contains no elements.
func (d Domain[T]) Empty() bool {
	return d.Size() == 0
}

// Contains reports whether e lies within the domain.
func (d Domain[T]) Contains(e Elem[T]) bool {
	for i := range e.uids {
		lo := d.front.uids[i]
		ext := d.extents.comps[i]
		if ext <= 0 {
			return false
		}
		if e.uids[i] < lo || e.uids[i] >= lo+uint64(ext) {
			return false
		}
	}
	return true
}

// All iterates the domain's elements in declared tag order: the outermost
// tag (index 0) iterates slowest, the innermost varies fastest. This matches
// the default chunk layout so contiguous iteration touches contiguous memory.
func (d Domain[T]) All() iter.Seq[Elem[T]] {
	return func(yield func(Elem[T]) bool) {
		n := len(d.extents.comps)
		if n == 0 || d.Empty() {
			return
		}
		cur := make([]uint64, n)
		copy(cur, d.front.uids)
		for {
			if !yield(Elem[T]{uids: append([]uint64(nil), cur...)}) {
				return
			}
			// increment innermost (last) axis first; carry leftward.
			i := n - 1
			for i >= 0 {
				cur[i]++
				if cur[i] < d.front.uids[i]+uint64(d.extents.comps[i]) {
					break
				}
				cur[i] = d.front.uids[i]
				i--
			}
			if i < 0 {
				return
			}
		}
	}
}

// linearIndex returns e's linear offset within the domain's iteration
// order (outer slowest, inner fastest) — the stable linearisation parallel
// iteration maps onto an integer range.
func (d Domain[T]) linearIndex(e Elem[T]) int64 {
	idx := int64(0)
	for i := range e.uids {
		idx = idx*d.extents.comps[i] + int64(e.uids[i]-d.front.uids[i])
	}
	return idx
}

// elemAt returns the element at linear position idx in the domain's
// iteration order, the inverse of linearIndex.
func (d Domain[T]) elemAt(idx int64) Elem[T] {
	n := len(d.extents.comps)
	uids := make([]uint64, n)
	for i := n - 1; i >= 0; i-- {
		ext := d.extents.comps[i]
		uids[i] = d.front.uids[i] + uint64(idx%ext)
		idx /= ext
	}
	return Elem[T]{uids: uids}
}

// TakeFirstAlong returns a domain keeping only the first n indices along D,
// all other axes unchanged.
func TakeFirstAlong[D Dim, T TagSet](d Domain[T], n int64) Domain[T] {
	return resizeAlong[D](d, n, 0, true)
}

// TakeLastAlong returns a domain keeping only the last n indices along D.
func TakeLastAlong[D Dim, T TagSet](d Domain[T], n int64) Domain[T] {
	return resizeAlong[D](d, n, 0, false)
}

// RemoveFirstAlong drops the first n indices along D.
func RemoveFirstAlong[D Dim, T TagSet](d Domain[T], n int64) Domain[T] {
	return RemoveAlong[D](d, n, 0)
}

// RemoveLastAlong drops the last n indices along D.
func RemoveLastAlong[D Dim, T TagSet](d Domain[T], n int64) Domain[T] {
	return RemoveAlong[D](d, 0, n)
}

// RemoveAlong returns a domain whose extent along D is reduced by
// nFront+nBack and whose front is advanced by nFront along D. Fails
// (programming error) if the reduction would produce a negative extent.
func RemoveAlong[D Dim, T TagSet](d Domain[T], nFront, nBack int64) Domain[T] {
	var want D
	i := indexOfDim(dimsOf[T](), want)
	if i < 0 {
		fatalf("RemoveAlong: dim %q not present in tag set", want.DimName())
	}
	newExt := d.extents.comps[i] - nFront - nBack
	if newExt < 0 {
		fatalf("RemoveAlong: removing %d+%d from extent %d along %q yields negative extent", nFront, nBack, d.extents.comps[i], want.DimName())
	}
	front := append([]uint64(nil), d.front.uids...)
	ext := append([]int64(nil), d.extents.comps...)
	front[i] += uint64(nFront)
	ext[i] = newExt
	return Domain[T]{front: Elem[T]{uids: front}, extents: Vect[T]{comps: ext}}
}

func resizeAlong[D Dim, T TagSet](d Domain[T], n, drop int64, fromFront bool) Domain[T] {
	var want D
	i := indexOfDim(dimsOf[T](), want)
	if i < 0 {
		fatalf("resizeAlong: dim %q not present in tag set", want.DimName())
	}
	cur := d.extents.comps[i]
	if n < 0 || n > cur {
		fatalf("resizeAlong: cannot take %d indices from extent %d along %q", n, cur, want.DimName())
	}
	front := append([]uint64(nil), d.front.uids...)
	ext := append([]int64(nil), d.extents.comps...)
	if !fromFront {
		front[i] += uint64(cur - n)
	}
	ext[i] = n
	return Domain[T]{front: Elem[T]{uids: front}, extents: Vect[T]{comps: ext}}
}

// SelectDomain projects (and/or reorders) dom onto the tag set U, which must
// be a subset of T's dims in any order.
func SelectDomain[U TagSet, T TagSet](dom Domain[T]) Domain[U] {
	return Domain[U]{
		front:   Select[U](dom.front),
		extents: selectVect[U](dom.extents),
	}
}

func selectVect[U TagSet, T TagSet](v Vect[T]) Vect[U] {
	srcDims := dimsOf[T]()
	dstDims := dimsOf[U]()
	comps := make([]int64, len(dstDims))
	for i, d := range dstDims {
		j := indexOfDim(srcDims, d)
		if j < 0 {
			fatalf("select: dim %q not present in source tag set", d.DimName())
		}
		comps[i] = v.comps[j]
	}
	return Vect[U]{comps: comps}
}

// ProductDomain composes two domains over disjoint tag sets into their tag
// union domain U, whose dims are ordered as declared by U.
func ProductDomain[U TagSet, T1 TagSet, T2 TagSet](d1 Domain[T1], d2 Domain[T2]) Domain[U] {
	dims1, dims2 := dimsOf[T1](), dimsOf[T2]()
	dstDims := dimsOf[U]()
	uids := make([]uint64, len(dstDims))
	ext := make([]int64, len(dstDims))
	for i, d := range dstDims {
		if j := indexOfDim(dims1, d); j >= 0 {
			uids[i] = d1.front.uids[j]
			ext[i] = d1.extents.comps[j]
			continue
		}
		if j := indexOfDim(dims2, d); j >= 0 {
			uids[i] = d2.front.uids[j]
			ext[i] = d2.extents.comps[j]
			continue
		}
		fatalf("ProductDomain: dim %q found in neither operand", d.DimName())
	}
	return Domain[U]{front: Elem[U]{uids: uids}, extents: Vect[U]{comps: ext}}
}
