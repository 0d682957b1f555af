package exec_test

import (
	"math"
	"testing"

	"github.com/openfluke/ddc"
	"github.com/openfluke/ddc/exec"
)

type MeshY struct{}

func (MeshY) DimName() string { return "MeshY" }
func (MeshY) Axis() ddc.Axis  { return YAxis{} }

type YAxis struct{}

func (YAxis) AxisName() string { return "Y" }

// Property 10 (reduction correctness): transform_reduce(dom, 0, sum, f)
// equals the serial fold of f over dom for a pure f.
func TestTransformReduceMatchesSerialFold(t *testing.T) {
	dom := ddc.NewDomain(ddc.NewElem[ddc.Tags1[MeshX]](0), ddc.NewVect[ddc.Tags1[MeshX]](37))
	f := func(e ddc.Elem[ddc.Tags1[MeshX]]) int64 {
		u := ddc.Uid[MeshX](e)
		return int64(u) * int64(u)
	}

	var want int64
	for e := range dom.All() {
		want += f(e)
	}

	got := exec.TransformReduce(dom, int64(0), exec.Sum[int64](), f)
	if got != want {
		t.Errorf("TransformReduce = %d, want %d", got, want)
	}

	gotParallel := exec.ParallelTransformReduce(exec.Host(), dom, int64(0), exec.Sum[int64](), f)
	if gotParallel != want {
		t.Errorf("ParallelTransformReduce = %d, want %d", gotParallel, want)
	}
}

// S1: uniform 1-D mean. Sampling over [0,1] with n=5 (step 0.25); the sum
// of all coordinates is 2.5 and the mean is 0.5.
func TestScenarioUniformMeanViaParallelReduce(t *testing.T) {
	guard := ddc.Acquire()
	defer guard.Release()
	ddc.InitDiscreteSpace[MeshX](ddc.NewUniformSampling(0, 1, 5))

	dom := ddc.NewDomain(ddc.NewElem[ddc.Tags1[MeshX]](0), ddc.NewVect[ddc.Tags1[MeshX]](5))
	sum := exec.ParallelTransformReduce(exec.Host(), dom, 0.0, exec.Sum[float64](),
		func(e ddc.Elem[ddc.Tags1[MeshX]]) float64 {
			return ddc.Coordinate[ddc.Axes1[XAxis]](e).Values()[0]
		})

	if math.Abs(sum-2.5) > 1e-12 {
		t.Errorf("sum = %g, want 2.5", sum)
	}
	mean := sum / float64(dom.Size())
	if math.Abs(mean-0.5) > 1e-12 {
		t.Errorf("mean = %g, want 0.5", mean)
	}
}

// S6: CFL-style reduction. Non-uniform X of 10 points on [-1,1], non-uniform
// Y of 100 points on [-1,1]; invdx2_max = max_i 1/(dx_l(i)*dx_r(i)) over the
// interior of X, and the reduction is reproducible run-to-run.
func TestScenarioCFLReductionIsReproducible(t *testing.T) {
	guard := ddc.Acquire()
	defer guard.Release()

	xPoints := nonUniformPoints(-1, 1, 10)
	yPoints := nonUniformPoints(-1, 1, 100)
	ddc.InitDiscreteSpace[MeshX](ddc.NewNonUniformSampling(xPoints))
	ddc.InitDiscreteSpace[MeshY](ddc.NewNonUniformSampling(yPoints))

	interior := ddc.NewDomain(ddc.NewElem[ddc.Tags1[MeshX]](1), ddc.NewVect[ddc.Tags1[MeshX]](8))

	kernel := func(e ddc.Elem[ddc.Tags1[MeshX]]) float64 {
		dl := ddc.DistanceAtLeft[MeshX](e)
		dr := ddc.DistanceAtRight[MeshX](e)
		return 1.0 / (dl * dr)
	}

	first := exec.ParallelTransformReduce(exec.Host(), interior, 0.0, exec.Max[float64](), kernel)
	for i := 0; i < 5; i++ {
		got := exec.ParallelTransformReduce(exec.Host(), interior, 0.0, exec.Max[float64](), kernel)
		if got != first {
			t.Fatalf("run %d: invdx2_max = %g, want %g (reproducibility)", i, got, first)
		}
	}

	serial := exec.TransformReduce(interior, 0.0, exec.Max[float64](), kernel)
	if serial != first {
		t.Errorf("serial invdx2_max = %g, want %g (matches parallel)", serial, first)
	}
}

func nonUniformPoints(a, b float64, n int) []float64 {
	// A mildly irregular but strictly increasing break table: uniform
	// spacing perturbed by a small, deterministic per-index offset.
	step := (b - a) / float64(n-1)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = a + step*float64(i)
	}
	for i := 1; i < n-1; i++ {
		out[i] += step * 0.1 * float64(i%3-1)
	}
	return out
}
