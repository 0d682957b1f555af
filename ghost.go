package ddc

// Ghosted bundles the domains a ghosted-domain helper builds around a main
// domain for one discrete dimension D (spec §4.7): a main domain flanked by
// pre/post ghost subdomains, plus the interior mirror subdomains periodic
// boundary conditions copy from.
type Ghosted[T TagSet] struct {
	Main       Domain[T]
	Ghosted    Domain[T]
	PreGhost   Domain[T]
	PostGhost  Domain[T]
	PreMirror  Domain[T]
	PostMirror Domain[T]
}

// BuildGhosted extends main by gwPre ghost cells before the front and
// gwPost after the back along dimension D (spec §4.7). The caller is
// responsible for ensuring the active sampling for D can represent indices
// outside main's range — either a non-uniform sampling built with
// NewNonUniformGhosted, or a periodic/uniform sampling, which extend
// algorithmically with no further checks here.
func BuildGhosted[D Dim, T TagSet](main Domain[T], gwPre, gwPost int64) Ghosted[T] {
	if gwPre < 0 || gwPost < 0 {
		fatalf("BuildGhosted: ghost widths must be non-negative, got pre=%d post=%d", gwPre, gwPost)
	}
	var want D
	if indexOfDim(dimsOf[T](), want) < 0 {
		fatalf("BuildGhosted: dim %q not present in tag set", want.DimName())
	}

	ghosted := extendAlong[D](main, gwPre, gwPost)
	return Ghosted[T]{
		Main:       main,
		Ghosted:    ghosted,
		PreGhost:   TakeFirstAlong[D](ghosted, gwPre),
		PostGhost:  TakeLastAlong[D](ghosted, gwPost),
		PreMirror:  TakeLastAlong[D](main, gwPre),
		PostMirror: TakeFirstAlong[D](main, gwPost),
	}
}

// extendAlong returns d with its extent along D grown by gwPre before the
// front and gwPost after the back.
func extendAlong[D Dim, T TagSet](d Domain[T], gwPre, gwPost int64) Domain[T] {
	var want D
	i := indexOfDim(dimsOf[T](), want)
	if i < 0 {
		fatalf("extendAlong: dim %q not present in tag set", want.DimName())
	}
	if int64(d.front.uids[i]) < gwPre {
		fatalf("extendAlong: cannot extend before index 0 along %q (front=%d, gw_pre=%d)", want.DimName(), d.front.uids[i], gwPre)
	}
	front := append([]uint64(nil), d.front.uids...)
	ext := append([]int64(nil), d.extents.comps...)
	front[i] -= uint64(gwPre)
	ext[i] += gwPre + gwPost
	return Domain[T]{front: Elem[T]{uids: front}, extents: Vect[T]{comps: ext}}
}

// CopyPeriodicGhosts implements the periodic boundary convention spec §4.7
// describes: ghosted[pre_ghost] <- main[pre_mirror], and symmetrically for
// the post side. ghostedSpan and mainSpan are expected to share the same
// backing chunk (mainSpan typically a SliceSub of a chunk allocated over
// g.Ghosted), so this just stages the two interior-to-edge copies.
func CopyPeriodicGhosts[V any, T TagSet](ghostedSpan, mainSpan ChunkSpan[V, T], g Ghosted[T]) {
	if !g.PreGhost.Empty() {
		Deepcopy(SliceSub(ghostedSpan, g.PreGhost), SliceSub(mainSpan, g.PreMirror))
	}
	if !g.PostGhost.Empty() {
		Deepcopy(SliceSub(ghostedSpan, g.PostGhost), SliceSub(mainSpan, g.PostMirror))
	}
}
