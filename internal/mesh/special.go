package mesh

// Colour constants for the hard-wired procedural primitives. These are
// the fixed palette indices the original format always uses for these
// shapes, independent of any colour byte found in the seed primitive.
const (
	WhiteColour     = 0xff
	OrangeColour    = 0x56
	BlackColour     = 0x00
	PeridotColour   = 0x74
	PeruColour      = 0x5c
	DarkGreyColour  = 0x03
)

// Special-token values found in the vertex-index byte right after a
// line's two sides (side 2, the third byte) or a triangle's three sides
// (side 3, the fourth byte), selecting a procedural generator instead of
// an ordinary primitive.
const (
	Special8DashThinWhiteLine   = 0xfd
	Special16DashThinWhiteLine  = 0xfe
	Special32DashThickWhiteLine = 0xff

	Special32OrangePoints      = 0xf8
	Special16DarkGreyQuads     = 0xf9
	Special64ThickPeruLines    = 0xfa
	Special16ThinBlackZigZags  = 0xfb
	Special8PeridotQuadsCheckZ = 0xfc
	Special16WhiteQuadsCheckZ  = 0xfd
	Special8PeridotQuads       = 0xfe
	Special16WhiteQuads        = 0xff
)

func getThickVec(normal, vecl Vec, thick Coord) (Vec, bool) {
	cross := Cross(normal, vecl)
	unit, ok := Normalize(cross)
	if !ok {
		return Vec{}, false
	}
	return Mul(unit, thick), true
}

func seedOf(group *Group) *Primitive {
	return group.Get(group.Len() - 1)
}

func nextSeg(varray *VertexArray, group *Group, first bool, seed *Primitive, id int) *Primitive {
	if first {
		return seed
	}
	seg := group.Add()
	seg.ID = id
	return seg
}

// MakeSpecialZigzags replaces a 3-vertex seed (wide, start, end) with n
// short zigzag line segments alternating between the start-end line and
// an offset parallel to it.
func MakeSpecialZigzags(varray *VertexArray, groups []*Group, group, n, colour int) bool {
	g := groups[group]
	seed := seedOf(g)
	if seed == nil || len(seed.Sides) != 3 {
		return false
	}
	vw, vs, ve := seed.Sides[0], seed.Sides[1], seed.Sides[2]
	id := seed.ID

	cw, ok1 := varray.Coords(vw)
	cs, ok2 := varray.Coords(vs)
	ce, ok3 := varray.Coords(ve)
	if !ok1 || !ok2 || !ok3 {
		return false
	}

	vecl := Sub(ce, cs)
	vecw := Sub(cw, cs)
	vlast := vs

	seed.DeleteAll()

	for d := 0; d < n; d++ {
		seg := nextSeg(varray, g, d == 0, seed, id)

		coords := Mul(vecl, Coord(d+1)/Coord(n))
		if d%2 == 0 {
			coords = Add(coords, vecw)
		}
		coords = Add(cs, coords)

		v := varray.Add(coords)
		seg.Colour = uint8(colour)
		if !seg.AddSide(vlast) || !seg.AddSide(v) {
			return false
		}
		vlast = v
	}
	return true
}

// MakeSpecialHatch replaces a 3-vertex seed with n hatched quads (or
// thin lines if thickening produces no usable perpendicular vector)
// running from the start vertex to the end vertex, each offset by vecw.
// The loop deliberately iterates d<n rather than d<=n: the original
// encoder has an off-by-one that leaves a visible gap in the pattern, and
// this reproduces that rather than "fixing" it.
func MakeSpecialHatch(varray *VertexArray, groups []*Group, group, n, colour int, thick Coord) bool {
	g := groups[group]
	seed := seedOf(g)
	if seed == nil || len(seed.Sides) != 3 {
		return false
	}
	vw, vs, ve := seed.Sides[0], seed.Sides[1], seed.Sides[2]
	id := seed.ID

	cw, ok1 := varray.Coords(vw)
	cs, ok2 := varray.Coords(vs)
	ce, ok3 := varray.Coords(ve)
	if !ok1 || !ok2 || !ok3 {
		return false
	}

	vecl := Sub(ce, cs)
	vecw := Sub(cw, cs)

	var thickvec, negthickvec, norm, negvecw Vec
	thicken := false
	reverse := false
	if thick != 0 {
		if n2, ok := FindContainerNormal(varray, groups, group); ok {
			norm = n2
			if tv, ok := getThickVec(norm, vecw, thick/2); ok {
				thickvec = tv
				thicken = true
				negthickvec = Mul(thickvec, -2)
				negvecw = Mul(vecw, -1)
			}
		}
	}

	seed.DeleteAll()

	for d := 0; d < n; d++ {
		seg := nextSeg(varray, g, d == 0, seed, id)

		var v [4]int
		numSides := 0
		coords := Mul(vecl, Coord(d)/Coord(n))
		coords = Add(cs, coords)

		if thicken {
			coords = Add(coords, thickvec)
			v[numSides] = varray.Add(coords)
			numSides++

			coords = Add(coords, vecw)
			v[numSides] = varray.Add(coords)
			numSides++

			coords = Add(coords, negthickvec)
			v[numSides] = varray.Add(coords)
			numSides++

			coords = Add(coords, negvecw)
			v[numSides] = varray.Add(coords)
			numSides++
		} else {
			if d == 0 {
				v[numSides] = vs
			} else {
				v[numSides] = varray.Add(coords)
			}
			numSides++

			coords = Add(coords, vecw)
			v[numSides] = varray.Add(coords)
			numSides++
		}

		for s := 0; s < numSides; s++ {
			t := s
			if reverse {
				t = numSides - 1 - s
			}
			if !seg.AddSide(v[t]) {
				return false
			}
		}

		if d == 0 && thicken {
			reverse = SetNormal(seg, varray, norm)
		}
		seg.Colour = uint8(colour)
	}
	return true
}

// MakeSpecialQuads replaces a 3-vertex seed with n parallelogram segments
// running from start to end, offset by vecw, oriented to match a
// containing polygon's normal when one is found; when no container is
// found, a matching back-facing quad is emitted for each one (the game
// itself never culls these, since they need not be coplanar with
// anything).
func MakeSpecialQuads(varray *VertexArray, groups []*Group, group, n, colour int) bool {
	g := groups[group]
	seed := seedOf(g)
	if seed == nil || len(seed.Sides) != 3 {
		return false
	}
	vs, ve, vw := seed.Sides[0], seed.Sides[1], seed.Sides[2]
	id := seed.ID

	cw, ok1 := varray.Coords(vw)
	cs, ok2 := varray.Coords(vs)
	ce, ok3 := varray.Coords(ve)
	if !ok1 || !ok2 || !ok3 {
		return false
	}

	vecl := Sub(ce, cs)
	vecw := Sub(cw, cs)

	var norm Vec
	reverse := false
	gotNormal := false
	if n2, found := FindContainerNormal(varray, groups, group); found {
		norm = n2
		gotNormal = true
	} else {
		// Try to find a container facing the opposite direction.
		seed.ReverseSides()
		if n2, found := FindContainerNormal(varray, groups, group); found {
			norm = n2
			gotNormal = true
		}
		seed.ReverseSides()
	}

	quadl := Mul(vecl, 1/(Coord(n)*2))

	seed.DeleteAll()

	for d := 0; d < n; d++ {
		var v [4]int
		numSides := 0
		quadStart := Mul(vecl, Coord(d)/Coord(n))
		quadStart = Add(cs, quadStart)

		var quad *Primitive
		first := d == 0
		if first {
			quad = seed
			v[numSides] = vs
			numSides++
		} else {
			quad = g.Add()
			quad.ID = id
			v[numSides] = varray.Add(quadStart)
			numSides++
		}

		quadEnd := Add(quadStart, quadl)
		v[numSides] = varray.Add(quadEnd)
		numSides++

		quadEnd = Add(quadEnd, vecw)
		v[numSides] = varray.Add(quadEnd)
		numSides++

		if first {
			v[numSides] = vw
			numSides++
		} else {
			quadStart = Add(quadStart, vecw)
			v[numSides] = varray.Add(quadStart)
			numSides++
		}

		for s := 0; s < numSides; s++ {
			t := s
			if reverse {
				t = numSides - 1 - s
			}
			if !quad.AddSide(v[t]) {
				return false
			}
		}

		if d == 0 && gotNormal {
			reverse = SetNormal(quad, varray, norm)
		}
		quad.Colour = uint8(colour)

		if gotNormal {
			continue
		}

		backQuad := g.Add()
		backQuad.ID = id
		backQuad.Colour = uint8(colour)
		for s := 0; s < numSides; s++ {
			t := numSides - 1 - s
			if !backQuad.AddSide(v[t]) {
				return false
			}
		}
	}
	return true
}

// MakeSpecialPoints replaces a 3-vertex seed (only the first two are
// used) with n evenly-spaced single-vertex point primitives between
// start and end.
func MakeSpecialPoints(varray *VertexArray, groups []*Group, group, n, colour int) bool {
	g := groups[group]
	seed := seedOf(g)
	if seed == nil || len(seed.Sides) != 3 {
		return false
	}
	vs, ve := seed.Sides[0], seed.Sides[1]
	id := seed.ID

	cs, ok1 := varray.Coords(vs)
	ce, ok2 := varray.Coords(ve)
	if !ok1 || !ok2 {
		return false
	}

	vec := Sub(ce, cs)
	twiceN := Coord(n * 2)

	seed.DeleteAll()

	for d := 0; d < n; d++ {
		coords := Mul(vec, Coord(d*2+1)/twiceN)
		coords = Add(cs, coords)

		point := nextSeg(varray, g, d == 0, seed, id)
		point.Colour = uint8(colour)

		v := varray.Add(coords)
		if !point.AddSide(v) {
			return false
		}
	}
	return true
}

// MakeSpecialDashed replaces a 2-vertex seed line with n dashes spanning
// the original line, optionally thickened into quads when a containing
// polygon's normal is available.
func MakeSpecialDashed(varray *VertexArray, groups []*Group, group, n, colour int, thick Coord) bool {
	g := groups[group]
	seed := seedOf(g)
	if seed == nil || len(seed.Sides) != 2 {
		return false
	}
	vs, ve := seed.Sides[0], seed.Sides[1]
	id := seed.ID

	cs, ok1 := varray.Coords(vs)
	ce, ok2 := varray.Coords(ve)
	if !ok1 || !ok2 {
		return false
	}

	vec := Sub(ce, cs)
	dashl := Mul(vec, 1/(Coord(n)*2))

	var thickvec, negthickvec, norm, negdashl Vec
	thicken := false
	reverse := false
	if thick != 0 {
		if n2, ok := FindContainerNormal(varray, groups, group); ok {
			norm = n2
			if tv, ok := getThickVec(norm, vec, thick/2); ok {
				thickvec = tv
				thicken = true
				negthickvec = Mul(thickvec, -2)
				negdashl = Mul(dashl, -1)
			}
		}
	}

	seed.DeleteAll()

	for d := 0; d < n; d++ {
		var v [4]int
		numSides := 0
		coords := Mul(vec, Coord(d)/Coord(n))
		coords = Add(cs, coords)

		dash := nextSeg(varray, g, d == 0, seed, id)

		if thicken {
			coords = Add(coords, thickvec)
			v[numSides] = varray.Add(coords)
			numSides++

			coords = Add(coords, dashl)
			v[numSides] = varray.Add(coords)
			numSides++

			coords = Add(coords, negthickvec)
			v[numSides] = varray.Add(coords)
			numSides++

			coords = Add(coords, negdashl)
			v[numSides] = varray.Add(coords)
			numSides++
		} else {
			if d == 0 {
				v[numSides] = vs
			} else {
				v[numSides] = varray.Add(coords)
			}
			numSides++

			coords = Add(coords, dashl)
			v[numSides] = varray.Add(coords)
			numSides++
		}

		for s := 0; s < numSides; s++ {
			t := s
			if reverse {
				t = numSides - 1 - s
			}
			if !dash.AddSide(v[t]) {
				return false
			}
		}

		if d == 0 && thicken {
			reverse = SetNormal(dash, varray, norm)
		}
		dash.Colour = uint8(colour)
	}
	return true
}

// ThickenLine replaces a 2-sided line primitive with a quad thick units
// wide, lying in its containing polygon's plane and extending
// perpendicular to the line, when a container is found; otherwise it
// leaves the line unchanged.
func ThickenLine(varray *VertexArray, groups []*Group, group int, thick Coord) bool {
	g := groups[group]
	seed := seedOf(g)
	if seed == nil || len(seed.Sides) != 2 {
		return false
	}
	vs, ve := seed.Sides[0], seed.Sides[1]

	cs, ok1 := varray.Coords(vs)
	ce, ok2 := varray.Coords(ve)
	if !ok1 || !ok2 {
		return false
	}

	vec := Sub(ce, cs)

	norm, ok := FindContainerNormal(varray, groups, group)
	if !ok {
		return true
	}
	thickvec, ok := getThickVec(norm, vec, thick/2)
	if !ok {
		return true
	}

	negthickvec := Mul(thickvec, -2)
	negvec := Mul(vec, -1)

	var v [4]int
	coords := Add(cs, thickvec)
	v[0] = varray.Add(coords)

	coords = Add(coords, vec)
	v[1] = varray.Add(coords)

	coords = Add(coords, negthickvec)
	v[2] = varray.Add(coords)

	coords = Add(coords, negvec)
	v[3] = varray.Add(coords)

	seed.DeleteAll()
	for _, vi := range v {
		if !seed.AddSide(vi) {
			return false
		}
	}
	SetNormal(seed, varray, norm)
	return true
}

// FlipBackfacing reorients every primitive in every group so that its
// normal points toward +Z, used for objects whose whole geometry was
// detected as lying in the z=0 plane (where the game disables backface
// culling, unlike everywhere else).
func FlipBackfacing(varray *VertexArray, groups []*Group) int {
	flipped := 0
	want := Vec{0, 0, 1}
	for _, g := range groups {
		for _, p := range g.Primitives {
			if SetNormal(p, varray, want) {
				flipped++
			}
		}
	}
	return flipped
}
