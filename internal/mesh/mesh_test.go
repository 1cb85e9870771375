package mesh

import "testing"

func TestVertexArrayAddAndRenumber(t *testing.T) {
	var va VertexArray
	v0 := va.Add(Vec{0, 0, 0})
	v1 := va.Add(Vec{1, 0, 0})
	va.Add(Vec{2, 0, 0}) // never used

	va.SetUsed(v0)
	va.SetUsed(v1)

	n := va.Renumber()
	if n != 2 {
		t.Fatalf("Renumber() = %d, want 2", n)
	}
	if va.RenumberOf(v0) != 0 || va.RenumberOf(v1) != 1 {
		t.Fatalf("unexpected renumbering: v0=%d v1=%d", va.RenumberOf(v0), va.RenumberOf(v1))
	}
}

func TestVertexArrayFindDuplicates(t *testing.T) {
	var va VertexArray
	a := va.Add(Vec{1, 1, 1})
	b := va.Add(Vec{2, 2, 2})
	c := va.Add(Vec{1, 1, 1}) // duplicate of a
	va.SetUsed(a)
	va.SetUsed(b)
	va.SetUsed(c)

	count, redirect := va.FindDuplicates()
	if count != 1 {
		t.Fatalf("FindDuplicates() count = %d, want 1", count)
	}
	if redirect[c] != a {
		t.Fatalf("redirect[%d] = %d, want %d", c, redirect[c], a)
	}
	if va.IsUsed(c) {
		t.Fatal("duplicate vertex should be unmarked as used")
	}
}

func TestClear(t *testing.T) {
	var va VertexArray
	va.Add(Vec{1, 2, 3})
	va.Clear()
	if va.Len() != 0 {
		t.Fatalf("Len() after Clear = %d, want 0", va.Len())
	}
}

func TestPrimitiveReverseSides(t *testing.T) {
	p := Primitive{Sides: []int{1, 2, 3}}
	p.ReverseSides()
	want := []int{3, 2, 1}
	for i, v := range want {
		if p.Sides[i] != v {
			t.Fatalf("ReverseSides() = %v, want %v", p.Sides, want)
		}
	}
}

func TestPrimitiveAddSideRejectsOverflow(t *testing.T) {
	var p Primitive
	for i := 0; i < MaxNumSides; i++ {
		if !p.AddSide(i) {
			t.Fatalf("AddSide(%d) failed within bound", i)
		}
	}
	if p.AddSide(99) {
		t.Fatal("AddSide should reject the 9th side")
	}
}

func squareVarray() (*VertexArray, *Primitive) {
	va := &VertexArray{}
	va.Add(Vec{0, 0, 0})
	va.Add(Vec{4, 0, 0})
	va.Add(Vec{4, 4, 0})
	va.Add(Vec{0, 4, 0})
	p := &Primitive{Sides: []int{0, 1, 2, 3}}
	return va, p
}

func TestFindPlaneXY(t *testing.T) {
	va, p := squareVarray()
	plane, ok := FindPlane(p, va)
	if !ok {
		t.Fatal("FindPlane failed on a valid quad")
	}
	if plane != PlaneXY {
		t.Fatalf("FindPlane() = %v, want PlaneXY", plane)
	}
}

func TestFindPlaneRejectsLines(t *testing.T) {
	va := &VertexArray{}
	va.Add(Vec{0, 0, 0})
	va.Add(Vec{1, 0, 0})
	line := &Primitive{Sides: []int{0, 1}}
	if _, ok := FindPlane(line, va); ok {
		t.Fatal("FindPlane should reject a 2-sided primitive")
	}
}

func TestContainsInnerTriangle(t *testing.T) {
	va, square := squareVarray()
	v1 := va.Add(Vec{1, 1, 0})
	v2 := va.Add(Vec{3, 1, 0})
	v3 := va.Add(Vec{2, 3, 0})
	tri := &Primitive{Sides: []int{v1, v2, v3}}

	if !Coplanar(square, tri, va) {
		t.Fatal("triangle at z=0 should be coplanar with the square")
	}
	if !Contains(square, tri, va, PlaneXY) {
		t.Fatal("square should contain the inner triangle")
	}
}

func TestContainsRejectsOutsideTriangle(t *testing.T) {
	va, square := squareVarray()
	v1 := va.Add(Vec{10, 10, 0})
	v2 := va.Add(Vec{12, 10, 0})
	v3 := va.Add(Vec{11, 12, 0})
	tri := &Primitive{Sides: []int{v1, v2, v3}}

	if Contains(square, tri, va, PlaneXY) {
		t.Fatal("square should not contain a triangle entirely outside it")
	}
}

func TestMakeSpecialPointsCount(t *testing.T) {
	va := &VertexArray{}
	v0 := va.Add(Vec{0, 0, 0})
	v1 := va.Add(Vec{100, 0, 0})
	v2 := va.Add(Vec{0, 0, 0}) // ignored third vertex
	seed := &Primitive{Sides: []int{v0, v1, v2}, ID: 7}
	g := &Group{Primitives: []*Primitive{seed}}
	groups := []*Group{g, {}}

	if !MakeSpecialPoints(va, groups, GroupSimple, 32, OrangeColour) {
		t.Fatal("MakeSpecialPoints failed")
	}
	if g.Len() != 32 {
		t.Fatalf("group has %d primitives, want 32", g.Len())
	}
	for _, p := range g.Primitives {
		if !p.IsPoint() {
			t.Fatalf("expected a single-vertex point primitive, got %d sides", p.NumSides())
		}
		if p.Colour != OrangeColour {
			t.Fatalf("Colour = %#x, want %#x", p.Colour, OrangeColour)
		}
		if p.ID != 7 {
			t.Fatalf("ID = %d, want 7 (inherited from seed)", p.ID)
		}
	}
}

func TestMakeSpecialDashedCount(t *testing.T) {
	va := &VertexArray{}
	v0 := va.Add(Vec{0, 0, 0})
	v1 := va.Add(Vec{160, 0, 0})
	seed := &Primitive{Sides: []int{v0, v1}}
	g := &Group{Primitives: []*Primitive{seed}}
	groups := []*Group{g, {}}

	if !MakeSpecialDashed(va, groups, GroupSimple, 8, WhiteColour, 0) {
		t.Fatal("MakeSpecialDashed failed")
	}
	if g.Len() != 8 {
		t.Fatalf("group has %d primitives, want 8", g.Len())
	}
	for _, p := range g.Primitives {
		if !p.IsLine() {
			t.Fatalf("expected a 2-sided dash, got %d sides", p.NumSides())
		}
	}
}

func TestMakeSpecialZigzagsCount(t *testing.T) {
	va := &VertexArray{}
	vw := va.Add(Vec{0, 10, 0})
	vs := va.Add(Vec{0, 0, 0})
	ve := va.Add(Vec{160, 0, 0})
	seed := &Primitive{Sides: []int{vw, vs, ve}}
	g := &Group{Primitives: []*Primitive{seed}}
	groups := []*Group{g, {}}

	if !MakeSpecialZigzags(va, groups, GroupSimple, 16, BlackColour) {
		t.Fatal("MakeSpecialZigzags failed")
	}
	if g.Len() != 16 {
		t.Fatalf("group has %d primitives, want 16", g.Len())
	}
}

func TestFlipBackfacingOrientsTowardPlusZ(t *testing.T) {
	va := &VertexArray{}
	v0 := va.Add(Vec{0, 0, 0})
	v1 := va.Add(Vec{1, 0, 0})
	v2 := va.Add(Vec{1, 1, 0})
	v3 := va.Add(Vec{0, 1, 0})
	// Wound so its Newell normal points toward -Z.
	p := &Primitive{Sides: []int{v0, v3, v2, v1}}
	g := &Group{Primitives: []*Primitive{p}}
	groups := []*Group{g, {}}

	flipped := FlipBackfacing(va, groups)
	if flipped != 1 {
		t.Fatalf("FlipBackfacing flipped %d primitives, want 1", flipped)
	}
	n, ok := newellNormal(p, va)
	if !ok || n[2] <= 0 {
		t.Fatalf("normal after flip = %v, want positive Z", n)
	}
}
