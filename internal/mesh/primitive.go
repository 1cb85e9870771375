package mesh

// MaxNumPrimitives is the largest primitive count a single object may
// declare.
const MaxNumPrimitives = 255

// MinNumSides and MaxNumSides bound the number of vertex indices an
// ordinary (non-procedural) primitive may have.
const (
	MinNumSides = 2
	MaxNumSides = 8
)

// Primitive is a polyline, polygon or point: an ordered list of vertex
// indices into the object's VertexArray, a colour index, and an id scoped
// to its owning group (used to tag procedurally-expanded primitives with
// the id of the seed they replaced).
type Primitive struct {
	Sides  []int
	Colour uint8
	ID     int
}

// NumSides returns the number of vertex indices in the primitive.
func (p *Primitive) NumSides() int {
	return len(p.Sides)
}

// AddSide appends a vertex index, rejecting primitives that would exceed
// MaxNumSides.
func (p *Primitive) AddSide(v int) bool {
	if len(p.Sides) >= MaxNumSides {
		return false
	}
	p.Sides = append(p.Sides, v)
	return true
}

// DeleteAll clears the side list, keeping Colour and ID, for reuse as the
// first segment emitted by a procedural generator.
func (p *Primitive) DeleteAll() {
	p.Sides = p.Sides[:0]
}

// ReverseSides reverses the winding order in place.
func (p *Primitive) ReverseSides() {
	for i, j := 0, len(p.Sides)-1; i < j; i, j = i+1, j-1 {
		p.Sides[i], p.Sides[j] = p.Sides[j], p.Sides[i]
	}
}

// IsPoint, IsLine and IsPolygon classify the primitive by side count.
func (p *Primitive) IsPoint() bool   { return len(p.Sides) == 1 }
func (p *Primitive) IsLine() bool    { return len(p.Sides) == 2 }
func (p *Primitive) IsPolygon() bool { return len(p.Sides) >= 3 }

// SkewSide returns the index of the first side whose two endpoints, taken
// with the rest of the polygon, are not all coplanar, or -1 if the
// polygon (or line/point) is planar as expected. This never fires for
// triangles, which are trivially planar.
func (p *Primitive) SkewSide(varray *VertexArray) int {
	if len(p.Sides) < 4 {
		return -1
	}
	c0, ok0 := varray.Coords(p.Sides[0])
	c1, ok1 := varray.Coords(p.Sides[1])
	c2, ok2 := varray.Coords(p.Sides[2])
	if !ok0 || !ok1 || !ok2 {
		return -1
	}
	n := Cross(Sub(c1, c0), Sub(c2, c0))
	for i := 3; i < len(p.Sides); i++ {
		ci, ok := varray.Coords(p.Sides[i])
		if !ok {
			continue
		}
		if !CoordEqual(Dot(n, Sub(ci, c0)), 0) {
			return i
		}
	}
	return -1
}
