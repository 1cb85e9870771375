package mesh

// MarkVertices sets the used flag on every vertex referenced by a
// primitive, or on all vertices when keepUnused is set (the -unused
// switch, for output that never culls anything).
func MarkVertices(varray *VertexArray, groups []*Group, keepUnused bool) {
	if keepUnused {
		varray.SetAllUsed()
		return
	}
	for _, g := range groups {
		g.SetUsed(varray)
	}
}

// RedirectSides rewrites every primitive's vertex indices through
// redirect (as produced by VertexArray.FindDuplicates), so that
// duplicate vertices are referenced via their earlier, surviving index.
func RedirectSides(groups []*Group, redirect []int) {
	for _, g := range groups {
		for _, p := range g.Primitives {
			for i, v := range p.Sides {
				if v >= 0 && v < len(redirect) {
					p.Sides[i] = redirect[v]
				}
			}
		}
	}
}
