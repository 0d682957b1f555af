package ddc

import (
	"sync"

	"github.com/openfluke/ddc/internal/tagid"
)

// registry is the process-wide mapping from discrete-dimension tag to its
// active sampling instance (spec §4.3). It is written only during
// InitDiscreteSpace calls, which are expected to happen before any
// parallel work starts; concurrent InitDiscreteSpace calls for the same
// tag are a programming error the library does not serialise (spec §5).
var registry = struct {
	mu      sync.RWMutex
	entries map[uint64]Sampling
	names   map[uint64]string
}{
	entries: make(map[uint64]Sampling),
	names:   make(map[uint64]string),
}

var scopeDepth int32
var scopeMu sync.Mutex

// ScopeGuard brackets the discrete-space registry's lifetime, per the
// library's required call order (spec §6): Acquire before any
// InitDiscreteSpace call, Release once all chunks and kernels are done.
type ScopeGuard struct {
	released bool
}

// Acquire obtains the library's scope guard. Nested acquisition is
// idempotent — the registry is only torn down when the outermost guard is
// released.
func Acquire() *ScopeGuard {
	scopeMu.Lock()
	scopeDepth++
	scopeMu.Unlock()
	return &ScopeGuard{}
}

// Release tears down the guard. When the outermost guard is released, the
// registry is cleared; any sampling reference obtained before Release
// becomes invalid to use afterwards (a programming error, per spec §4.3).
func (g *ScopeGuard) Release() {
	if g.released {
		fatalf("ScopeGuard.Release: already released")
	}
	g.released = true
	scopeMu.Lock()
	defer scopeMu.Unlock()
	scopeDepth--
	switch {
	case scopeDepth == 0:
		registry.mu.Lock()
		registry.entries = make(map[uint64]Sampling)
		registry.names = make(map[uint64]string)
		registry.mu.Unlock()
	case scopeDepth < 0:
		fatalf("ScopeGuard.Release: released more times than acquired")
	}
}

// InitDiscreteSpace registers sampling as the active sampling for discrete
// dimension D. Fails (programming error) if D was already initialised.
func InitDiscreteSpace[D Dim](sampling Sampling) {
	var d D
	id := tagid.ID(d.DimName())
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, ok := registry.entries[id]; ok {
		fatalf("InitDiscreteSpace: dim %q already initialised", d.DimName())
	}
	registry.entries[id] = sampling
	registry.names[id] = d.DimName()
}

// GetDiscreteSpace retrieves the active sampling for discrete dimension D.
// Fails (programming error) if D has not been initialised.
func GetDiscreteSpace[D Dim]() Sampling {
	var d D
	return lookupSampling(d)
}

func lookupSampling(d Dim) Sampling {
	id := tagid.ID(d.DimName())
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	s, ok := registry.entries[id]
	if !ok {
		fatalf("discrete dimension %q is not initialised — call InitDiscreteSpace before use", d.DimName())
	}
	return s
}

// Step returns the fixed spacing of D's sampling. Valid for uniform and
// periodic samplings; a programming error for non-uniform ones (which have
// no single step).
func Step[D Dim]() float64 {
	var d D
	s := lookupSampling(d)
	switch v := s.(type) {
	case UniformSampling:
		return v.Step()
	case PeriodicSampling:
		return v.Step()
	default:
		fatalf("Step: dim %q has a non-uniform sampling with no single step", d.DimName())
		return 0
	}
}

// Origin returns the origin coordinate of D's sampling. Valid for uniform
// and periodic samplings.
func Origin[D Dim]() float64 {
	var d D
	s := lookupSampling(d)
	switch v := s.(type) {
	case UniformSampling:
		return v.Origin()
	case PeriodicSampling:
		return v.Origin()
	default:
		fatalf("Origin: dim %q has a non-uniform sampling with no single origin", d.DimName())
		return 0
	}
}

// Coordinate dispatches through the discrete-space registry to compute the
// continuous coordinate of every axis named in U, returning a Coord over
// that axis set. Every axis in U must be sampled by exactly one dim in e's
// tag set T.
func Coordinate[U CoordTags, T TagSet](e Elem[T]) Coord[U] {
	dims := dimsOf[T]()
	axes := axesOf[U]()
	uids := e.Uids()
	vals := make([]float64, len(axes))
	for i, axis := range axes {
		j, dim := dimSamplingAxis(dims, axis)
		if j < 0 {
			fatalf("Coordinate: no dim in tag set samples axis %q", axis.AxisName())
		}
		vals[i] = lookupSampling(dim).Coord(uids[j])
	}
	return Coord[U]{vals: vals}
}

func dimSamplingAxis(dims []Dim, axis Axis) (int, Dim) {
	for i, d := range dims {
		if d.Axis().AxisName() == axis.AxisName() {
			return i, d
		}
	}
	return -1, nil
}

// DistanceAtLeft dispatches to the sampling of dim D and returns the
// distance between e's uid along D and uid-1.
func DistanceAtLeft[D Dim, T TagSet](e Elem[T]) float64 {
	var d D
	s := lookupSampling(d)
	return s.DistanceAtLeft(Uid[D](e))
}

// DistanceAtRight dispatches to the sampling of dim D and returns the
// distance between e's uid along D and uid+1.
func DistanceAtRight[D Dim, T TagSet](e Elem[T]) float64 {
	var d D
	s := lookupSampling(d)
	return s.DistanceAtRight(Uid[D](e))
}

// Rmin returns the coordinate of dom's front index along D.
func Rmin[D Dim, T TagSet](dom Domain[T]) float64 {
	var d D
	s := lookupSampling(d)
	return s.Coord(Uid[D](dom.Front()))
}

// Rmax returns the coordinate of dom's back index along D.
func Rmax[D Dim, T TagSet](dom Domain[T]) float64 {
	var d D
	s := lookupSampling(d)
	return s.Coord(Uid[D](dom.Back()))
}

// Rlength returns Rmax - Rmin along D.
func Rlength[D Dim, T TagSet](dom Domain[T]) float64 {
	return Rmax[D](dom) - Rmin[D](dom)
}
