package mesh

// ClipOverlapping scans the given groups, in groupOrder, and whenever a
// later primitive is coplanar with and fully contained inside an earlier
// one, replaces the earlier polygon's sides with the remainder of its
// area outside the later (convex) polygon, so the two no longer overlap
// in the emitted OBJ. Primitives that are not polygons (points, lines)
// are left untouched.
func ClipOverlapping(varray *VertexArray, groups []*Group, groupOrder []int) bool {
	var seen []*Primitive
	for _, gi := range groupOrder {
		g := groups[gi]
		for _, p := range g.Primitives {
			if !p.IsPolygon() {
				seen = append(seen, p)
				continue
			}
			for _, earlier := range seen {
				if !earlier.IsPolygon() {
					continue
				}
				if !Coplanar(earlier, p, varray) {
					continue
				}
				plane, ok := FindPlane(earlier, varray)
				if !ok {
					continue
				}
				if Contains(earlier, p, varray, plane) {
					clipAgainst(varray, earlier, p, plane)
				}
			}
			seen = append(seen, p)
		}
	}
	return true
}

// clipPoint is a vertex of the polygon being clipped: v is its index if
// it is an original vertex of the victim polygon, or -1 if it was
// synthesized at the intersection of a victim edge and a cutter edge (in
// which case pos holds its 3D position, which must be added to varray
// before the side list can be rebuilt).
type clipPoint struct {
	v    int
	pos  Vec
	x, y Coord
}

// clipAgainst rewrites victim's side list to the part of its polygon
// lying outside cutter's 2D projection, via a Sutherland-Hodgman clip
// against each of cutter's edges in turn. cutter is assumed convex, which
// every procedurally-generated quad and every ordinary triangle is.
func clipAgainst(varray *VertexArray, victim, cutter *Primitive, plane Plane) {
	poly := make([]clipPoint, 0, len(victim.Sides))
	for _, v := range victim.Sides {
		c, ok := varray.Coords(v)
		if !ok {
			return
		}
		x, y := project(c, plane)
		poly = append(poly, clipPoint{v: v, pos: c, x: x, y: y})
	}

	n := len(cutter.Sides)
	for i := 0; i < n && len(poly) > 0; i++ {
		a, ok1 := varray.Coords(cutter.Sides[i])
		b, ok2 := varray.Coords(cutter.Sides[(i+1)%n])
		if !ok1 || !ok2 {
			continue
		}
		ax, ay := project(a, plane)
		bx, by := project(b, plane)
		edgeX, edgeY := bx-ax, by-ay

		// Outside-test: points to the right of the directed edge a->b
		// are kept (the region outside a CCW-wound cutter).
		side := func(p clipPoint) Coord {
			return edgeX*(p.y-ay) - edgeY*(p.x-ax)
		}

		var out []clipPoint
		for i2 := 0; i2 < len(poly); i2++ {
			cur := poly[i2]
			prev := poly[(i2-1+len(poly))%len(poly)]
			curSide := side(cur)
			prevSide := side(prev)
			curOutside := curSide <= 0
			prevOutside := prevSide <= 0

			if curOutside {
				if !prevOutside {
					out = append(out, lerpPoint(prev, cur, prevSide, curSide))
				}
				out = append(out, cur)
			} else if prevOutside {
				out = append(out, lerpPoint(prev, cur, prevSide, curSide))
			}
		}
		poly = out
	}

	if len(poly) < 3 {
		return
	}
	victim.Sides = victim.Sides[:0]
	for _, p := range poly {
		v := p.v
		if v < 0 {
			v = varray.Add(p.pos)
		}
		victim.Sides = append(victim.Sides, v)
	}
}

func lerpPoint(a, b clipPoint, sa, sb Coord) clipPoint {
	t := sa / (sa - sb)
	return clipPoint{
		v:   -1,
		pos: Add(a.pos, Mul(Sub(b.pos, a.pos), t)),
		x:   a.x + t*(b.x-a.x),
		y:   a.y + t*(b.y-a.y),
	}
}
