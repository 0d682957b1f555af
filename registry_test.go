package ddc

import "testing"

func TestRegistryLifecycleAndLookup(t *testing.T) {
	guard := Acquire()
	InitDiscreteSpace[MeshX](NewUniformSampling(0, 1, 5))
	InitDiscreteSpace[MeshY](NewUniformSampling(0, 9, 10))

	if got := Step[MeshX](); got != 0.25 {
		t.Errorf("Step[MeshX] = %g, want 0.25", got)
	}
	if got := Origin[MeshX](); got != 0 {
		t.Errorf("Origin[MeshX] = %g, want 0", got)
	}

	e := NewElem[Tags2[MeshX, MeshY]](2, 3)
	c := Coordinate[Axes2[XAxis, YAxis]](e)
	vals := c.Values()
	if vals[0] != 0.5 {
		t.Errorf("coordinate along X = %g, want 0.5", vals[0])
	}
	if vals[1] != 3 {
		t.Errorf("coordinate along Y = %g, want 3", vals[1])
	}

	guard.Release()

	// after release, the registry is torn down: re-initialising the same
	// dims in a fresh scope must succeed again.
	guard2 := Acquire()
	InitDiscreteSpace[MeshX](NewUniformSampling(0, 1, 3))
	if got := Step[MeshX](); got != 0.5 {
		t.Errorf("after re-init, Step[MeshX] = %g, want 0.5", got)
	}
	guard2.Release()
}

func TestInitDiscreteSpaceDoubleInitPanics(t *testing.T) {
	guard := Acquire()
	defer guard.Release()
	InitDiscreteSpace[MeshX](NewUniformSampling(0, 1, 5))
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on double-initialisation")
		}
	}()
	InitDiscreteSpace[MeshX](NewUniformSampling(0, 1, 5))
}

func TestGetUninitialisedDimPanics(t *testing.T) {
	guard := Acquire()
	defer guard.Release()
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an unregistered dim")
		}
	}()
	GetDiscreteSpace[MeshY]()
}

func TestRminRmaxRlength(t *testing.T) {
	guard := Acquire()
	defer guard.Release()
	InitDiscreteSpace[MeshX](NewUniformSampling(-1, 1, 10))

	dom := NewDomain(NewElem[Tags1[MeshX]](0), NewVect[Tags1[MeshX]](10))
	if got := Rmin[MeshX](dom); got != -1 {
		t.Errorf("Rmin = %g, want -1", got)
	}
	want := Rmax[MeshX](dom) - Rmin[MeshX](dom)
	if got := Rlength[MeshX](dom); got != want {
		t.Errorf("Rlength = %g, want %g", got, want)
	}
}

func TestDistanceAtLeftRightDispatch(t *testing.T) {
	guard := Acquire()
	defer guard.Release()
	InitDiscreteSpace[MeshX](NewNonUniformSampling([]float64{0.0, 0.1, 0.25, 0.6, 1.0}))

	e := NewElem[Tags1[MeshX]](2)
	if got := DistanceAtLeft[MeshX](e); got != 0.15 {
		t.Errorf("DistanceAtLeft = %g, want 0.15", got)
	}
	if got := DistanceAtRight[MeshX](e); got != 0.35 {
		t.Errorf("DistanceAtRight = %g, want 0.35", got)
	}
}
