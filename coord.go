package ddc

// Coord is an ordered tuple of real numbers, each labelled by a distinct
// Axis named in T. It is an immutable value; arithmetic between coordinates
// requires matching axis sets.
type Coord[T CoordTags] struct {
	vals []float64
}

// NewCoord builds a coordinate from values given in T's axis order.
func NewCoord[T CoordTags](vals ...float64) Coord[T] {
	axes := axesOf[T]()
	if len(vals) != len(axes) {
		fatalf("NewCoord: expected %d values for axes %v, got %d", len(axes), axisNames(axes), len(vals))
	}
	out := make([]float64, len(vals))
	copy(out, vals)
	return Coord[T]{vals: out}
}

// At returns the component of c labelled by C.
func At[C Axis, T CoordTags](c Coord[T]) float64 {
	var want C
	axes := axesOf[T]()
	for i, a := range axes {
		if a.AxisName() == want.AxisName() {
			return c.vals[i]
		}
	}
	fatalf("Coord.At: axis %q not present in tag set %v", want.AxisName(), axisNames(axes))
	return 0
}

// Values returns the coordinate's components in T's declared axis order.
func (c Coord[T]) Values() []float64 {
	out := make([]float64, len(c.vals))
	copy(out, c.vals)
	return out
}

// Add returns the componentwise sum of two coordinates over the same axis set.
func (c Coord[T]) Add(other Coord[T]) Coord[T] {
	out := make([]float64, len(c.vals))
	for i := range out {
		out[i] = c.vals[i] + other.vals[i]
	}
	return Coord[T]{vals: out}
}

// Sub returns the componentwise difference of two coordinates over the same axis set.
func (c Coord[T]) Sub(other Coord[T]) Coord[T] {
	out := make([]float64, len(c.vals))
	for i := range out {
		out[i] = c.vals[i] - other.vals[i]
	}
	return Coord[T]{vals: out}
}

func axisNames(axes []Axis) []string {
	names := make([]string, len(axes))
	for i, a := range axes {
		names[i] = a.AxisName()
	}
	return names
}
