package ddc

// Axis is a nominal identifier for a continuous physical dimension (e.g. X,
// Y, T). It carries no runtime state beyond its name.
type Axis interface {
	AxisName() string
}

// Dim is a nominal identifier for a discrete dimension: a specific sampling
// of exactly one Axis. Multiple Dims may sample the same Axis.
type Dim interface {
	DimName() string
	Axis() Axis
}

// TagSet describes an ordered, fixed-arity list of Dims. Concrete instances
// are the zero-size Tags1..Tags4 types below; Elem, Vect, Domain and Chunk
// are all parameterized by a TagSet.
//
// Go generics have no variadic type parameters, so an arbitrary-arity
// Elem<D1,...,Dk> cannot be expressed as a single generic type. Tags1..Tags4
// cover every scenario this package's tests exercise (the widest is
// Dom<X,Y>); see SPEC_FULL.md open-question D.1 for the full rationale.
type TagSet interface {
	Dims() []Dim
}

// CoordTags is the Coord-side analogue of TagSet, over Axis instead of Dim.
type CoordTags interface {
	Axes() []Axis
}

// Tags1 is a one-dimensional tag set.
type Tags1[D1 Dim] struct{}

func (Tags1[D1]) Dims() []Dim {
	var d1 D1
	return []Dim{d1}
}

// Tags2 is a two-dimensional tag set, outer-to-inner in declaration order.
type Tags2[D1, D2 Dim] struct{}

func (Tags2[D1, D2]) Dims() []Dim {
	var d1 D1
	var d2 D2
	return []Dim{d1, d2}
}

// Tags3 is a three-dimensional tag set.
type Tags3[D1, D2, D3 Dim] struct{}

func (Tags3[D1, D2, D3]) Dims() []Dim {
	var d1 D1
	var d2 D2
	var d3 D3
	return []Dim{d1, d2, d3}
}

// Tags4 is a four-dimensional tag set.
type Tags4[D1, D2, D3, D4 Dim] struct{}

func (Tags4[D1, D2, D3, D4]) Dims() []Dim {
	var d1 D1
	var d2 D2
	var d3 D3
	var d4 D4
	return []Dim{d1, d2, d3, d4}
}

// Axes1 is a one-axis coordinate tag set.
type Axes1[C1 Axis] struct{}

func (Axes1[C1]) Axes() []Axis {
	var c1 C1
	return []Axis{c1}
}

// Axes2 is a two-axis coordinate tag set.
type Axes2[C1, C2 Axis] struct{}

func (Axes2[C1, C2]) Axes() []Axis {
	var c1 C1
	var c2 C2
	return []Axis{c1, c2}
}

func dimsOf[T TagSet]() []Dim {
	var t T
	return t.Dims()
}

func axesOf[T CoordTags]() []Axis {
	var t T
	return t.Axes()
}

// indexOfDim returns the position of d within dims, matching by name.
// Dim identity is nominal: two Dim values are the same tag iff their
// DimName() agree. Returns -1 if not found.
func indexOfDim(dims []Dim, d Dim) int {
	name := d.DimName()
	for i, want := range dims {
		if want.DimName() == name {
			return i
		}
	}
	return -1
}
