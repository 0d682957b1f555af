package ddc

import "testing"

// Property 2 (coordinate round-trip, non-uniform): coord(i) == p[i] exactly.
func TestNonUniformCoordRoundTrip(t *testing.T) {
	points := []float64{0.0, 0.1, 0.25, 0.6, 1.0}
	s := NewNonUniformSampling(points)
	for i, p := range points {
		if got := s.Coord(uint64(i)); got != p {
			t.Errorf("Coord(%d) = %g, want %g", i, got, p)
		}
	}
}

// Property 4 (neighbour distances, non-uniform): distance_at_left(i) +
// distance_at_right(i) == p[i+1] - p[i-1] exactly for interior i.
func TestNonUniformNeighbourDistances(t *testing.T) {
	points := []float64{0.0, 0.1, 0.25, 0.6, 1.0}
	s := NewNonUniformSampling(points)
	for i := 1; i < len(points)-1; i++ {
		left := s.DistanceAtLeft(uint64(i))
		right := s.DistanceAtRight(uint64(i))
		want := points[i+1] - points[i-1]
		if got := left + right; got != want {
			t.Errorf("i=%d: left+right = %g, want %g", i, got, want)
		}
	}
}

// S2: points [0.0, 0.1, 0.25, 0.6, 1.0]. distance_at_left(2) == 0.15,
// distance_at_right(2) == 0.35, exactly.
func TestScenarioNonUniformDistances(t *testing.T) {
	s := NewNonUniformSampling([]float64{0.0, 0.1, 0.25, 0.6, 1.0})
	if got := s.DistanceAtLeft(2); got != 0.15 {
		t.Errorf("DistanceAtLeft(2) = %g, want 0.15", got)
	}
	if got := s.DistanceAtRight(2); got != 0.35 {
		t.Errorf("DistanceAtRight(2) = %g, want 0.35", got)
	}
}

func TestNonUniformRejectsUnsortedOrShort(t *testing.T) {
	mustPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected a panic", name)
			}
		}()
		f()
	}
	mustPanic("too short", func() { NewNonUniformSampling([]float64{1.0}) })
	mustPanic("unsorted", func() { NewNonUniformSampling([]float64{0, 1, 0.5, 2}) })
	mustPanic("duplicate", func() { NewNonUniformSampling([]float64{0, 1, 1, 2}) })
}

func TestNonUniformGhostedConcatenatesAndChecksMonotone(t *testing.T) {
	pre := []float64{-0.2, -0.1}
	main := []float64{0.0, 0.1, 0.25, 0.6, 1.0}
	post := []float64{1.1, 1.2}
	s := NewNonUniformGhosted(pre, main, post)
	if s.Len() != 9 {
		t.Fatalf("Len() = %d, want 9", s.Len())
	}
	if s.Coord(0) != -0.2 || s.Coord(8) != 1.2 {
		t.Errorf("ghosted endpoints wrong: front=%g back=%g", s.Coord(0), s.Coord(8))
	}

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a non-monotone seam")
		}
	}()
	NewNonUniformGhosted([]float64{0.5}, main, post)
}

func TestNonUniformDistanceEdgesPanic(t *testing.T) {
	s := NewNonUniformSampling([]float64{0, 1, 2})
	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected a panic for DistanceAtLeft at front")
			}
		}()
		s.DistanceAtLeft(0)
	}()
	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected a panic for DistanceAtRight at back")
			}
		}()
		s.DistanceAtRight(2)
	}()
}
