package mesh

// Group index constants, matching the original encoder's two buckets:
// primitives that survive simplification (Simple) and the rest
// (Complex).
const (
	GroupSimple = iota
	GroupComplex
	GroupCount
)

// Group is an ordered collection of primitives belonging to one of the
// two buckets above.
type Group struct {
	Primitives []*Primitive
}

// Add appends a new, empty primitive and returns it.
func (g *Group) Add() *Primitive {
	p := &Primitive{}
	g.Primitives = append(g.Primitives, p)
	return p
}

// Get returns the primitive at index i, or nil if out of range.
func (g *Group) Get(i int) *Primitive {
	if i < 0 || i >= len(g.Primitives) {
		return nil
	}
	return g.Primitives[i]
}

// Len returns the number of primitives in the group.
func (g *Group) Len() int {
	return len(g.Primitives)
}

// Clear empties the group for reuse by the next object.
func (g *Group) Clear() {
	g.Primitives = g.Primitives[:0]
}

// SetUsed marks every vertex referenced by every primitive in the group
// as used, in varray.
func (g *Group) SetUsed(varray *VertexArray) {
	for _, p := range g.Primitives {
		for _, v := range p.Sides {
			varray.SetUsed(v)
		}
	}
}
