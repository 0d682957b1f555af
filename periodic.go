package ddc

// PeriodicSampling is a uniform sampling with modular wrap-around: the
// coordinate is taken from the principal interval centred on origin (spec
// §3, §4.2), grounded on the original DDC library's periodic_sampling.hpp.
type PeriodicSampling struct {
	origin  float64
	step    float64
	nPeriod uint64
}

var _ Sampling = PeriodicSampling{}
var _ PeriodicSampler = PeriodicSampling{}

// NewPeriodicSampling builds a periodic sampling spanning n points over
// [a, b] (as NewUniformSampling does) with wrap-around period nPeriod.
// Requires n >= 2, a < b and nPeriod >= 2.
func NewPeriodicSampling(a, b float64, n int, nPeriod uint64) PeriodicSampling {
	if n < 2 {
		fatalf("NewPeriodicSampling: n=%d must be >= 2", n)
	}
	if !(a < b) {
		fatalf("NewPeriodicSampling: a=%g must be < b=%g", a, b)
	}
	if nPeriod < 2 {
		fatalf("NewPeriodicSampling: n_period=%d must be >= 2", nPeriod)
	}
	step := (b - a) / float64(n-1)
	return PeriodicSampling{origin: a, step: step, nPeriod: nPeriod}
}

// NewPeriodicSamplingStep builds a periodic sampling directly from an
// origin, positive step and wrap-around period.
func NewPeriodicSamplingStep(origin, step float64, nPeriod uint64) PeriodicSampling {
	if !(step > 0) {
		fatalf("NewPeriodicSamplingStep: step=%g must be > 0", step)
	}
	if nPeriod < 2 {
		fatalf("NewPeriodicSamplingStep: n_period=%d must be >= 2", nPeriod)
	}
	return PeriodicSampling{origin: origin, step: step, nPeriod: nPeriod}
}

// Coord returns the coordinate on the principal interval centred on origin:
// origin + (((uid + P/2) mod P) - P/2) * step, where P = n_period.
func (s PeriodicSampling) Coord(uid uint64) float64 {
	p := s.nPeriod
	half := p / 2
	wrapped := int64((uid+half)%p) - int64(half)
	return s.origin + float64(wrapped)*s.step
}

func (s PeriodicSampling) DistanceAtLeft(uint64) float64  { return s.step }
func (s PeriodicSampling) DistanceAtRight(uint64) float64 { return s.step }
func (s PeriodicSampling) Front() uint64                  { return 0 }
func (s PeriodicSampling) NPeriod() uint64                { return s.nPeriod }

// Origin returns the sampling's coordinate at the centre of the principal
// interval.
func (s PeriodicSampling) Origin() float64 { return s.origin }

// Step returns the sampling's fixed spacing.
func (s PeriodicSampling) Step() float64 { return s.step }
