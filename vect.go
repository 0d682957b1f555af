package ddc

// Vect is a signed integer offset between discrete elements, tagged by the
// same dimension list T as Elem. Vect ± Vect stays a Vect; Elem ± Vect moves
// between the two (see elem.go).
type Vect[T TagSet] struct {
	comps []int64
}

// NewVect builds a vector from signed components given in T's dim order.
func NewVect[T TagSet](comps ...int64) Vect[T] {
	dims := dimsOf[T]()
	if len(comps) != len(dims) {
		fatalf("NewVect: expected %d components for dims %v, got %d", len(dims), dimNames(dims), len(comps))
	}
	out := make([]int64, len(comps))
	copy(out, comps)
	return Vect[T]{comps: out}
}

// Component returns the signed offset along D.
func Component[D Dim, T TagSet](v Vect[T]) int64 {
	var want D
	dims := dimsOf[T]()
	i := indexOfDim(dims, want)
	if i < 0 {
		fatalf("Vect.Component: dim %q not present in tag set %v", want.DimName(), dimNames(dims))
	}
	return v.comps[i]
}

// Components returns v's offsets in T's declared dim order.
func (v Vect[T]) Components() []int64 {
	out := make([]int64, len(v.comps))
	copy(out, v.comps)
	return out
}

// Add returns the componentwise sum of two vectors over the same dim set.
func (v Vect[T]) Add(other Vect[T]) Vect[T] {
	out := make([]int64, len(v.comps))
	for i := range out {
		out[i] = v.comps[i] + other.comps[i]
	}
	return Vect[T]{comps: out}
}

// Sub returns the componentwise difference of two vectors over the same dim set.
func (v Vect[T]) Sub(other Vect[T]) Vect[T] {
	out := make([]int64, len(v.comps))
	for i := range out {
		out[i] = v.comps[i] - other.comps[i]
	}
	return Vect[T]{comps: out}
}

// Scale multiplies every component by factor.
func (v Vect[T]) Scale(factor int64) Vect[T] {
	out := make([]int64, len(v.comps))
	for i := range out {
		out[i] = v.comps[i] * factor
	}
	return Vect[T]{comps: out}
}

// Product returns the product of all components, used by Domain for its
// size.
func (v Vect[T]) Product() int64 {
	p := int64(1)
	for _, c := range v.comps {
		p *= c
	}
	return p
}

func dimNames(dims []Dim) []string {
	names := make([]string, len(dims))
	for i, d := range dims {
		names[i] = d.DimName()
	}
	return names
}
