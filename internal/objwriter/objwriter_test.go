package objwriter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chocksaway/choctoobj/internal/mesh"
)

func TestGetMaterial(t *testing.T) {
	if got, want := GetMaterial(255), "riscos_255"; got != want {
		t.Errorf("GetMaterial(255) = %q, want %q", got, want)
	}
}

func TestGetHumanMaterial(t *testing.T) {
	got := GetHumanMaterial(3) // hue 0 ("black"), tint 3
	want := "black_3"
	if got != want {
		t.Errorf("GetHumanMaterial(3) = %q, want %q", got, want)
	}
}

func TestFalseColourSourceIsDeterministicAndIncreasing(t *testing.T) {
	var src FalseColourSource
	first := src.Next()
	second := src.Next()
	if first != 0 {
		t.Errorf("first false colour = %d, want 0", first)
	}
	if second != NTints {
		t.Errorf("second false colour = %d, want %d", second, NTints)
	}
}

func TestWriteVerticesRespectsRenumbering(t *testing.T) {
	va := &mesh.VertexArray{}
	v0 := va.Add(mesh.Vec{1, 2, 3})
	v1 := va.Add(mesh.Vec{4, 5, 6})
	va.Add(mesh.Vec{9, 9, 9}) // unused, culled

	va.SetUsed(v0)
	va.SetUsed(v1)
	n := va.Renumber()

	var buf bytes.Buffer
	ow := New(&buf)
	if err := ow.WriteVertices(va, n); err != nil {
		t.Fatalf("WriteVertices: %v", err)
	}
	if err := ow.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "v 1 2 3\n") || !strings.Contains(got, "v 4 5 6\n") {
		t.Fatalf("unexpected vertex output: %q", got)
	}
	if strings.Contains(got, "9 9 9") {
		t.Fatalf("culled vertex leaked into output: %q", got)
	}
}

func TestWritePrimitivesPositiveIndices(t *testing.T) {
	va := &mesh.VertexArray{}
	v0 := va.Add(mesh.Vec{0, 0, 0})
	v1 := va.Add(mesh.Vec{1, 0, 0})
	va.SetUsed(v0)
	va.SetUsed(v1)
	n := va.Renumber()

	line := &mesh.Primitive{Sides: []int{v0, v1}, Colour: 0xff}
	g := &mesh.Group{Primitives: []*mesh.Primitive{line}}

	var buf bytes.Buffer
	ow := New(&buf)
	if err := ow.WritePrimitives(va, []*mesh.Group{g}, nil, GetMaterial, n, VertexStylePositive, MeshStyleNoChange); err != nil {
		t.Fatalf("WritePrimitives: %v", err)
	}
	ow.Flush()

	got := buf.String()
	if !strings.Contains(got, "usemtl riscos_255\n") {
		t.Fatalf("missing usemtl line: %q", got)
	}
	if !strings.Contains(got, "l 1 2\n") {
		t.Fatalf("unexpected line record: %q", got)
	}
}

func TestWritePrimitivesNegativeIndices(t *testing.T) {
	va := &mesh.VertexArray{}
	v0 := va.Add(mesh.Vec{0, 0, 0})
	v1 := va.Add(mesh.Vec{1, 0, 0})
	va.SetUsed(v0)
	va.SetUsed(v1)
	n := va.Renumber()

	line := &mesh.Primitive{Sides: []int{v0, v1}, Colour: 0}
	g := &mesh.Group{Primitives: []*mesh.Primitive{line}}

	var buf bytes.Buffer
	ow := New(&buf)
	if err := ow.WritePrimitives(va, []*mesh.Group{g}, nil, GetMaterial, n, VertexStyleNegative, MeshStyleNoChange); err != nil {
		t.Fatalf("WritePrimitives: %v", err)
	}
	ow.Flush()

	if got := buf.String(); !strings.Contains(got, "l -2 -1\n") {
		t.Fatalf("unexpected negative-index record: %q", got)
	}
}

func TestWritePrimitivesTriangleFan(t *testing.T) {
	va := &mesh.VertexArray{}
	var sides []int
	for i := 0; i < 5; i++ {
		v := va.Add(mesh.Vec{float64(i), 0, 0})
		va.SetUsed(v)
		sides = append(sides, v)
	}
	n := va.Renumber()

	poly := &mesh.Primitive{Sides: sides}
	g := &mesh.Group{Primitives: []*mesh.Primitive{poly}}

	var buf bytes.Buffer
	ow := New(&buf)
	if err := ow.WritePrimitives(va, []*mesh.Group{g}, nil, GetMaterial, n, VertexStylePositive, MeshStyleTriangleFan); err != nil {
		t.Fatalf("WritePrimitives: %v", err)
	}
	ow.Flush()

	got := buf.String()
	faceLines := strings.Count(got, "f ")
	if faceLines != 3 {
		t.Fatalf("fan of 5 vertices should emit 3 faces, got %d in %q", faceLines, got)
	}
}
