package ddc

// UniformSampling maps a discrete index to a coordinate by a fixed origin
// and step: coord(uid) = origin + uid*step (spec §3, §4.2).
type UniformSampling struct {
	origin float64
	step   float64
}

var _ Sampling = UniformSampling{}

// NewUniformSampling builds a uniform sampling spanning n points over
// [a, b]: origin = a, step = (b-a)/(n-1). Requires n >= 2 and a < b.
//
// The source does not guarantee coord(n-1) == b exactly — floating-point
// rounding at the endpoint is left to chance (spec §4.2, §9 open question).
// Callers that need an exact endpoint should use a non-uniform sampling
// with the endpoint supplied explicitly.
func NewUniformSampling(a, b float64, n int) UniformSampling {
	if n < 2 {
		fatalf("NewUniformSampling: n=%d must be >= 2", n)
	}
	if !(a < b) {
		fatalf("NewUniformSampling: a=%g must be < b=%g", a, b)
	}
	step := (b - a) / float64(n-1)
	return UniformSampling{origin: a, step: step}
}

// NewUniformSamplingStep builds a uniform sampling directly from an origin
// and a positive step, with no implied point count.
func NewUniformSamplingStep(origin, step float64) UniformSampling {
	if !(step > 0) {
		fatalf("NewUniformSamplingStep: step=%g must be > 0", step)
	}
	return UniformSampling{origin: origin, step: step}
}

func (s UniformSampling) Coord(uid uint64) float64 {
	return s.origin + float64(uid)*s.step
}

func (s UniformSampling) DistanceAtLeft(uint64) float64  { return s.step }
func (s UniformSampling) DistanceAtRight(uint64) float64 { return s.step }
func (s UniformSampling) Front() uint64                  { return 0 }

// Origin returns the sampling's coordinate at uid=0.
func (s UniformSampling) Origin() float64 { return s.origin }

// Step returns the sampling's fixed spacing.
func (s UniformSampling) Step() float64 { return s.step }
