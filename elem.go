package ddc

// Elem is an ordered tuple of non-negative integer indices, each labelled by
// a distinct Dim named in T. It is a point in the index grid of one or more
// discrete dimensions.
type Elem[T TagSet] struct {
	uids []uint64
}

// NewElem builds an element from uids given in T's declared dim order.
func NewElem[T TagSet](uids ...uint64) Elem[T] {
	dims := dimsOf[T]()
	if len(uids) != len(dims) {
		fatalf("NewElem: expected %d uids for dims %v, got %d", len(dims), dimNames(dims), len(uids))
	}
	out := make([]uint64, len(uids))
	copy(out, uids)
	return Elem[T]{uids: out}
}

// Uid projects e onto the single uid carried for D.
func Uid[D Dim, T TagSet](e Elem[T]) uint64 {
	var want D
	dims := dimsOf[T]()
	i := indexOfDim(dims, want)
	if i < 0 {
		fatalf("Elem.Uid: dim %q not present in tag set %v", want.DimName(), dimNames(dims))
	}
	return e.uids[i]
}

// Uids returns e's indices in T's declared dim order.
func (e Elem[T]) Uids() []uint64 {
	out := make([]uint64, len(e.uids))
	copy(out, e.uids)
	return out
}

// Select projects/reorders e onto the tag set U, which must be a subset of
// T's dims (in any order). Selection is idempotent: Select[U](Select[U](e))
// == Select[U](e).
func Select[U TagSet, T TagSet](e Elem[T]) Elem[U] {
	srcDims := dimsOf[T]()
	dstDims := dimsOf[U]()
	uids := make([]uint64, len(dstDims))
	for i, d := range dstDims {
		j := indexOfDim(srcDims, d)
		if j < 0 {
			fatalf("Select: dim %q not present in source tag set %v", d.DimName(), dimNames(srcDims))
		}
		uids[i] = e.uids[j]
	}
	return Elem[U]{uids: uids}
}

// Plus returns e + v, componentwise, over the same dim set. A negative
// offset whose magnitude exceeds the index is a programming error — the
// caller is expected to guard against it (typically via ghost cells).
func (e Elem[T]) Plus(v Vect[T]) Elem[T] {
	out := make([]uint64, len(e.uids))
	for i := range out {
		signed := int64(e.uids[i]) + v.comps[i]
		if signed < 0 {
			fatalf("Elem.Plus: resulting uid %d is negative at index %d", signed, i)
		}
		out[i] = uint64(signed)
	}
	return Elem[T]{uids: out}
}

// Minus returns e − v, componentwise, over the same dim set.
func (e Elem[T]) Minus(v Vect[T]) Elem[T] {
	return e.Plus(v.Scale(-1))
}

// Diff returns e − other as a Vect, the signed offset between two elements.
func (e Elem[T]) Diff(other Elem[T]) Vect[T] {
	out := make([]int64, len(e.uids))
	for i := range out {
		out[i] = int64(e.uids[i]) - int64(other.uids[i])
	}
	return Vect[T]{comps: out}
}

// Equal reports whether e and other carry the same uids.
func (e Elem[T]) Equal(other Elem[T]) bool {
	if len(e.uids) != len(other.uids) {
		return false
	}
	for i := range e.uids {
		if e.uids[i] != other.uids[i] {
			return false
		}
	}
	return true
}

// Less orders elements lexicographically in T's declared dim order (outer
// dim compared first), matching the package's default iteration order.
func (e Elem[T]) Less(other Elem[T]) bool {
	for i := range e.uids {
		if e.uids[i] != other.uids[i] {
			return e.uids[i] < other.uids[i]
		}
	}
	return false
}
