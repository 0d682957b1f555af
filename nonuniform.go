package ddc

import "sort"

// NonUniformSampling maps a discrete index to a coordinate through a sorted
// break table: coord(uid) = points[uid] (spec §3, §4.2).
type NonUniformSampling struct {
	points []float64
}

var _ Sampling = NonUniformSampling{}

// NewNonUniformSampling builds a non-uniform sampling from points, which
// must be strictly sorted and hold at least two entries. points is copied;
// the caller's slice may be reused afterwards.
func NewNonUniformSampling(points []float64) NonUniformSampling {
	if len(points) < 2 {
		fatalf("NewNonUniformSampling: need at least 2 points, got %d", len(points))
	}
	requireStrictlySorted(points)
	out := make([]float64, len(points))
	copy(out, points)
	return NonUniformSampling{points: out}
}

// NewNonUniformGhosted builds a non-uniform sampling by concatenating a
// pre-ghost, main and post-ghost break table, verifying monotonicity across
// the seams. This mirrors the ghosted constructor in the original DDC
// library's non-uniform point-set tests, where ghost coordinates for a
// non-periodic boundary must be supplied explicitly (there is no
// algorithmic extension rule for an arbitrary break table).
func NewNonUniformGhosted(pre, main, post []float64) NonUniformSampling {
	if len(main) < 2 {
		fatalf("NewNonUniformGhosted: main table needs at least 2 points, got %d", len(main))
	}
	all := make([]float64, 0, len(pre)+len(main)+len(post))
	all = append(all, pre...)
	all = append(all, main...)
	all = append(all, post...)
	requireStrictlySorted(all)
	return NonUniformSampling{points: all}
}

func requireStrictlySorted(points []float64) {
	if !sort.SliceIsSorted(points, func(i, j int) bool { return points[i] < points[j] }) {
		fatalf("non-uniform break table is not strictly sorted: %v", points)
	}
	for i := 1; i < len(points); i++ {
		if points[i] <= points[i-1] {
			fatalf("non-uniform break table has non-increasing step at index %d: %g <= %g", i, points[i], points[i-1])
		}
	}
}

func (s NonUniformSampling) Coord(uid uint64) float64 {
	s.checkRange(uid)
	return s.points[uid]
}

func (s NonUniformSampling) DistanceAtLeft(uid uint64) float64 {
	if uid == 0 {
		fatalf("NonUniformSampling.DistanceAtLeft: undefined at front index 0")
	}
	s.checkRange(uid)
	return s.points[uid] - s.points[uid-1]
}

func (s NonUniformSampling) DistanceAtRight(uid uint64) float64 {
	s.checkRange(uid)
	if int(uid) == len(s.points)-1 {
		fatalf("NonUniformSampling.DistanceAtRight: undefined at back index %d", uid)
	}
	return s.points[uid+1] - s.points[uid]
}

func (s NonUniformSampling) Front() uint64 { return 0 }

// Len reports the number of points in the break table (the uid range is
// [0, Len())).
func (s NonUniformSampling) Len() int { return len(s.points) }

// Points returns a copy of the sampling's break table.
func (s NonUniformSampling) Points() []float64 {
	out := make([]float64, len(s.points))
	copy(out, s.points)
	return out
}

func (s NonUniformSampling) checkRange(uid uint64) {
	if int(uid) >= len(s.points) {
		fatalf("NonUniformSampling: uid %d out of range [0, %d)", uid, len(s.points))
	}
}
