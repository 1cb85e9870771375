package mesh

// Plane names the pair of axes a polygon should be projected onto for 2D
// containment and coplanarity tests: whichever pair discards the axis
// the polygon's normal is most aligned with.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneYZ
	PlaneXZ
)

// FindPlane picks a 2D projection for a primitive with at least 3
// vertices by computing its normal (Newell's method) and dropping the
// axis with the largest normal component. It reports false for points and
// lines, which have no well-defined plane.
func FindPlane(p *Primitive, varray *VertexArray) (Plane, bool) {
	if len(p.Sides) < 3 {
		return 0, false
	}
	n, ok := newellNormal(p, varray)
	if !ok {
		return 0, false
	}
	ax, ay, az := abs(n[0]), abs(n[1]), abs(n[2])
	switch {
	case az >= ax && az >= ay:
		return PlaneXY, true
	case ay >= ax && ay >= az:
		return PlaneXZ, true
	default:
		return PlaneYZ, true
	}
}

func abs(c Coord) Coord {
	if c < 0 {
		return -c
	}
	return c
}

// newellNormal computes an (unnormalized) polygon normal using Newell's
// method, which tolerates mild non-planarity and degenerate ordering
// better than a single cross product.
func newellNormal(p *Primitive, varray *VertexArray) (Vec, bool) {
	var n Vec
	count := 0
	for i, v := range p.Sides {
		cur, ok := varray.Coords(v)
		if !ok {
			continue
		}
		next, ok := varray.Coords(p.Sides[(i+1)%len(p.Sides)])
		if !ok {
			continue
		}
		n[0] += (cur[1] - next[1]) * (cur[2] + next[2])
		n[1] += (cur[2] - next[2]) * (cur[0] + next[0])
		n[2] += (cur[0] - next[0]) * (cur[1] + next[1])
		count++
	}
	if count < 3 {
		return Vec{}, false
	}
	return n, true
}

func project(c Vec, plane Plane) (x, y Coord) {
	switch plane {
	case PlaneXY:
		return c[0], c[1]
	case PlaneYZ:
		return c[1], c[2]
	default: // PlaneXZ
		return c[0], c[2]
	}
}

// Coplanar reports whether every vertex of b lies in the plane containing
// a (a must have at least 3 vertices).
func Coplanar(a, b *Primitive, varray *VertexArray) bool {
	if len(a.Sides) < 3 {
		return false
	}
	c0, ok0 := varray.Coords(a.Sides[0])
	c1, ok1 := varray.Coords(a.Sides[1])
	c2, ok2 := varray.Coords(a.Sides[2])
	if !ok0 || !ok1 || !ok2 {
		return false
	}
	n := Cross(Sub(c1, c0), Sub(c2, c0))
	for _, v := range b.Sides {
		cv, ok := varray.Coords(v)
		if !ok {
			return false
		}
		if !CoordEqual(Dot(n, Sub(cv, c0)), 0) {
			return false
		}
	}
	return true
}

// Contains reports whether every vertex of front lies within (or on the
// boundary of) the 2D projection of back's polygon in the given plane, a
// simple even-odd point-in-polygon test per vertex.
func Contains(back, front *Primitive, varray *VertexArray, plane Plane) bool {
	for _, v := range front.Sides {
		c, ok := varray.Coords(v)
		if !ok {
			return false
		}
		x, y := project(c, plane)
		if !pointInPolygon(x, y, back, varray, plane) {
			return false
		}
	}
	return true
}

func pointInPolygon(px, py Coord, poly *Primitive, varray *VertexArray, plane Plane) bool {
	inside := false
	n := len(poly.Sides)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		ci, oki := varray.Coords(poly.Sides[i])
		cj, okj := varray.Coords(poly.Sides[j])
		if !oki || !okj {
			continue
		}
		xi, yi := project(ci, plane)
		xj, yj := project(cj, plane)

		if CoordEqual(xi, px) && CoordEqual(yi, py) {
			return true // vertex coincides with a polygon vertex
		}

		if (yi > py) != (yj > py) {
			xCross := xi + (py-yi)/(yj-yi)*(xj-xi)
			if px < xCross || CoordEqual(px, xCross) {
				inside = !inside
			}
		}
	}
	return inside
}

// FindContainerInGroup searches group's primitives backwards from index
// back, returning the first one that is coplanar with front and fully
// contains it.
func FindContainerInGroup(varray *VertexArray, front *Primitive, group *Group, back int) *Primitive {
	for ; back >= 0; back-- {
		candidate := group.Get(back)
		if candidate == nil {
			return nil
		}
		plane, ok := FindPlane(candidate, varray)
		if !ok {
			continue
		}
		if !Coplanar(candidate, front, varray) {
			continue
		}
		if Contains(candidate, front, varray, plane) {
			return candidate
		}
	}
	return nil
}

// FindContainer looks for a polygon containing the most recently added
// primitive of groups[group]: first backwards through the same group,
// then through every earlier group in ascending group order, each
// scanned backwards from its last primitive.
func FindContainer(varray *VertexArray, groups []*Group, group int) *Primitive {
	front := groups[group]
	n := front.Len()
	if n == 0 {
		return nil
	}
	frontp := front.Get(n - 1)
	if frontp == nil {
		return nil
	}

	if n > 1 {
		if c := FindContainerInGroup(varray, frontp, front, n-2); c != nil {
			return c
		}
	}

	for bg := 0; bg < group; bg++ {
		back := groups[bg]
		if c := FindContainerInGroup(varray, frontp, back, back.Len()-1); c != nil {
			return c
		}
	}
	return nil
}

// FindContainerNormal returns the plane normal of the polygon containing
// the most recent primitive of groups[group], if any.
func FindContainerNormal(varray *VertexArray, groups []*Group, group int) (Vec, bool) {
	container := FindContainer(varray, groups, group)
	if container == nil {
		return Vec{}, false
	}
	n, ok := newellNormal(container, varray)
	if !ok {
		return Vec{}, false
	}
	return n, true
}

// SetNormal orients p so that its own (Newell) normal points the same
// way as want; it reverses p's winding if they currently oppose, and
// reports whether a reversal happened.
func SetNormal(p *Primitive, varray *VertexArray, want Vec) bool {
	n, ok := newellNormal(p, varray)
	if !ok {
		return false
	}
	if Dot(n, want) < 0 {
		p.ReverseSides()
		return true
	}
	return false
}
