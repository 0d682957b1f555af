package ddc

import "testing"

func TestElemUidAndSelect(t *testing.T) {
	e := NewElem[Tags2[MeshX, MeshY]](3, 7)
	if got := Uid[MeshX](e); got != 3 {
		t.Errorf("Uid[MeshX] = %d, want 3", got)
	}
	if got := Uid[MeshY](e); got != 7 {
		t.Errorf("Uid[MeshY] = %d, want 7", got)
	}

	reordered := Select[Tags2[MeshY, MeshX]](e)
	if Uid[MeshX](reordered) != 3 || Uid[MeshY](reordered) != 7 {
		t.Errorf("reordered select should preserve per-tag values, got uids %v", reordered.Uids())
	}

	projected := Select[Tags1[MeshY]](e)
	if Uid[MeshY](projected) != 7 {
		t.Errorf("projected select should keep MeshY's value, got %d", Uid[MeshY](projected))
	}
}

// Property 6 (selection idempotence): select(select(e)) == select(e), and
// reordering is a bijection on the index set.
func TestSelectIdempotent(t *testing.T) {
	e := NewElem[Tags2[MeshX, MeshY]](2, 9)
	once := Select[Tags1[MeshX]](e)
	twice := Select[Tags1[MeshX]](once)
	if !once.Equal(twice) {
		t.Errorf("select(select(e)) != select(e): %v vs %v", once.Uids(), twice.Uids())
	}
}

func TestElemPlusMinusDiff(t *testing.T) {
	e := NewElem[Tags1[MeshX]](5)
	v := NewVect[Tags1[MeshX]](3)
	sum := e.Plus(v)
	if Uid[MeshX](sum) != 8 {
		t.Errorf("e+v = %d, want 8", Uid[MeshX](sum))
	}
	diff := sum.Minus(v)
	if !diff.Equal(e) {
		t.Errorf("(e+v)-v != e: got %v want %v", diff.Uids(), e.Uids())
	}
	asVect := sum.Diff(e)
	if Component[MeshX](asVect) != 3 {
		t.Errorf("sum.Diff(e) = %d, want 3", Component[MeshX](asVect))
	}
}

func TestElemPlusNegativeOverflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic when an offset drives a uid negative")
		}
	}()
	e := NewElem[Tags1[MeshX]](0)
	v := NewVect[Tags1[MeshX]](-1)
	e.Plus(v)
}

func TestElemLess(t *testing.T) {
	a := NewElem[Tags2[MeshX, MeshY]](1, 9)
	b := NewElem[Tags2[MeshX, MeshY]](1, 10)
	c := NewElem[Tags2[MeshX, MeshY]](2, 0)
	if !a.Less(b) {
		t.Error("expected (1,9) < (1,10)")
	}
	if !b.Less(c) {
		t.Error("expected (1,10) < (2,0)")
	}
	if c.Less(a) {
		t.Error("expected (2,0) to not be < (1,9)")
	}
}
