package ddc

import (
	"testing"

	"github.com/openfluke/ddc/mem"
)

// S4: periodic ghost mirror. Main domain [0..9] on X with one ghost cell
// each side, using periodic mirrors; after copying mirrors the ghost
// values equal the opposite-side interior values exactly.
func TestScenarioPeriodicGhostMirror(t *testing.T) {
	// Main domain holds indices [1..10] (the "[0..9] interior" of spec
	// scenario S4, shifted by one so a pre-ghost at index 0 is representable).
	main := NewDomain(NewElem[Tags1[MeshX]](1), NewVect[Tags1[MeshX]](10))
	g := BuildGhosted[MeshX](main, 1, 1)

	if got := g.Ghosted.Size(); got != 12 {
		t.Fatalf("ghosted size = %d, want 12", got)
	}
	if got := Uid[MeshX](g.Ghosted.Front()); got != 0 {
		t.Errorf("ghosted front = %d, want 0", got)
	}
	if got := g.Ghosted.Size(); got != 12 {
		t.Errorf("ghosted size = %d, want 12", got)
	}
	if got := Uid[MeshX](g.PreGhost.Front()); got != 0 {
		t.Errorf("pre-ghost front = %d, want 0", got)
	}
	if got := Uid[MeshX](g.PostGhost.Front()); got != 11 {
		t.Errorf("post-ghost front = %d, want 11", got)
	}
	if got := Uid[MeshX](g.PreMirror.Front()); got != 10 {
		t.Errorf("pre-mirror front = %d, want 10 (last interior index)", got)
	}
	if got := Uid[MeshX](g.PostMirror.Front()); got != 1 {
		t.Errorf("post-mirror front = %d, want 1 (first interior index)", got)
	}

	c, err := NewChunk[float64](g.Ghosted, mem.Host())
	if err != nil {
		t.Fatalf("NewChunk: %v", err)
	}
	for e := range g.Main.All() {
		c.Set(e, float64(Uid[MeshX](e)))
	}

	full := c.Span()
	mainSpan := SliceSub(full, g.Main)
	CopyPeriodicGhosts(full, mainSpan, g)

	preGhostVal := SliceSub(full, g.PreGhost).At(g.PreGhost.Front())
	wantPre := c.At(g.PreMirror.Front())
	if preGhostVal != wantPre {
		t.Errorf("pre-ghost value = %g, want %g (opposite-side interior)", preGhostVal, wantPre)
	}

	postGhostVal := SliceSub(full, g.PostGhost).At(g.PostGhost.Front())
	wantPost := c.At(g.PostMirror.Front())
	if postGhostVal != wantPost {
		t.Errorf("post-ghost value = %g, want %g (opposite-side interior)", postGhostVal, wantPost)
	}
}

func TestBuildGhostedRejectsExtensionBeforeZero(t *testing.T) {
	main := NewDomain(NewElem[Tags1[MeshX]](0), NewVect[Tags1[MeshX]](5))
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic when the pre-ghost would extend before index 0")
		}
	}()
	BuildGhosted[MeshX](main, 1, 0)
}

func TestBuildGhostedRejectsNegativeWidths(t *testing.T) {
	main := NewDomain(NewElem[Tags1[MeshX]](1), NewVect[Tags1[MeshX]](5))
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a negative ghost width")
		}
	}()
	BuildGhosted[MeshX](main, -1, 0)
}
