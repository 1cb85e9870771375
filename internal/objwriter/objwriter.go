// Package objwriter renders a decoded mesh object as Wavefront OBJ text,
// with pluggable colour-to-material naming and mesh decomposition style.
package objwriter

import (
	"bufio"
	"fmt"
	"io"

	"github.com/chocksaway/choctoobj/internal/mesh"
)

// VertexStyle selects how face/line records reference vertices.
type VertexStyle int

const (
	VertexStylePositive VertexStyle = iota
	VertexStyleNegative
)

// MeshStyle selects how a polygon with more than 3 sides is emitted.
type MeshStyle int

const (
	MeshStyleNoChange MeshStyle = iota
	MeshStyleTriangleFan
	MeshStyleTriangleStrip
)

// MaterialFunc renders a colour index to a material name for a "usemtl"
// line; buf-size semantics of the original C callback are unneeded here,
// the function just returns the name.
type MaterialFunc func(colour int) string

// GetMaterial names a colour the plain way: "riscos_<n>".
func GetMaterial(colour int) string {
	return fmt.Sprintf("riscos_%d", colour)
}

// GetHumanMaterial names a colour by hue and tint: "<hue>_<tint>".
func GetHumanMaterial(colour int) string {
	return fmt.Sprintf("%s_%d", ColourName(colour/NTints), colour%NTints)
}

// FalseColourSource hands out false colours for visualization, one per
// primitive processed: the k-th call returns (k*NTints) % NColours, so the
// sequence increases for 64 primitives and then wraps; unlike the original's
// static counter inside get_false_colour, this state is an explicit
// value the caller owns and can reset between runs.
type FalseColourSource struct {
	next int
}

// Next returns the next false colour index and advances the source.
func (f *FalseColourSource) Next() int {
	c := (f.next * NTints) % NColours
	f.next++
	return c
}

// StyleToString names a primitive outline style for the object comment
// header.
func StyleToString(style int32) string {
	switch style {
	case 1:
		return "Black polygon outlines, thick lines"
	case 2:
		return "Blue polygon outlines, thick lines"
	default:
		return "No polygon outlines, thin lines"
	}
}

// Writer accumulates OBJ output across one run (potentially many
// objects), tracking the running vertex total needed to compute
// cross-object face indices.
type Writer struct {
	w      *bufio.Writer
	vtotal int
}

// New wraps w for OBJ emission.
func New(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Flush pushes any buffered output to the underlying writer.
func (ow *Writer) Flush() error {
	return ow.w.Flush()
}

// WritePrelude emits the file-level header and mtllib reference.
func (ow *Writer) WritePrelude(versionString, mtlFile string) error {
	_, err := fmt.Fprintf(ow.w, "# Chocks Away graphics\n# Converted by ChoctoObj %s\nmtllib %s\n",
		versionString, mtlFile)
	return err
}

// WriteObjectHeader emits the "o <name>" record and descriptive comments
// for one object.
func (ow *Writer) WriteObjectHeader(name string, simpleDist, clipDist int32, style int32) error {
	_, err := fmt.Fprintf(ow.w, "\no %s\n"+
		"# Simplification distance: %d\n"+
		"# Clip distance: %d\n"+
		"# Primitive style: %s\n",
		name, simpleDist, clipDist, StyleToString(style))
	return err
}

// WriteVertices emits one "v x y z" record per renumbered vertex, in
// output order, for a vertex array already culled to vobject vertices.
func (ow *Writer) WriteVertices(varray *mesh.VertexArray, vobject int) error {
	out := make([]mesh.Vec, vobject)
	for v := 0; v < varray.Len(); v++ {
		r := varray.RenumberOf(v)
		if r < 0 {
			continue
		}
		c, ok := varray.Coords(v)
		if !ok {
			continue
		}
		out[r] = c
	}
	for _, c := range out {
		if _, err := fmt.Fprintf(ow.w, "v %g %g %g\n", c[0], c[1], c[2]); err != nil {
			return err
		}
	}
	return nil
}

// WritePrimitives emits a face/line/point record per primitive across
// groups, in group order, grouping consecutive same-material primitives
// under one "usemtl" line. colourFn overrides each primitive's own
// colour with a synthetic one (false-colour mode) when non-nil.
func (ow *Writer) WritePrimitives(varray *mesh.VertexArray, groups []*mesh.Group,
	colourFn func(p *mesh.Primitive) int, materialFn MaterialFunc,
	vobject int, vstyle VertexStyle, mstyle MeshStyle) error {

	lastMaterial := ""
	for _, g := range groups {
		for _, p := range g.Primitives {
			colour := int(p.Colour)
			if colourFn != nil {
				colour = colourFn(p)
			}
			material := materialFn(colour)
			if material != lastMaterial {
				if _, err := fmt.Fprintf(ow.w, "usemtl %s\n", material); err != nil {
					return err
				}
				lastMaterial = material
			}

			if err := ow.writePrimitive(p, varray, vobject, vstyle, mstyle); err != nil {
				return err
			}
		}
	}
	ow.vtotal += vobject
	return nil
}

func (ow *Writer) index(renumbered, vobject int, vstyle VertexStyle) int {
	if vstyle == VertexStyleNegative {
		return -(vobject - renumbered)
	}
	return ow.vtotal + renumbered + 1
}

func (ow *Writer) writePrimitive(p *mesh.Primitive, varray *mesh.VertexArray, vobject int,
	vstyle VertexStyle, mstyle MeshStyle) error {

	idx := make([]int, 0, len(p.Sides))
	for _, v := range p.Sides {
		r := varray.RenumberOf(v)
		if r < 0 {
			continue
		}
		idx = append(idx, ow.index(r, vobject, vstyle))
	}

	switch {
	case len(idx) == 1:
		return ow.writeRecord("p", idx)
	case len(idx) == 2:
		return ow.writeRecord("l", idx)
	case len(idx) == 3 || mstyle == MeshStyleNoChange:
		return ow.writeRecord("f", idx)
	case mstyle == MeshStyleTriangleFan:
		for i := 1; i < len(idx)-1; i++ {
			if err := ow.writeRecord("f", []int{idx[0], idx[i], idx[i+1]}); err != nil {
				return err
			}
		}
		return nil
	case mstyle == MeshStyleTriangleStrip:
		for i := 0; i < len(idx)-2; i++ {
			tri := []int{idx[i], idx[i+1], idx[i+2]}
			if i%2 == 1 {
				tri[0], tri[1] = tri[1], tri[0]
			}
			if err := ow.writeRecord("f", tri); err != nil {
				return err
			}
		}
		return nil
	default:
		return ow.writeRecord("f", idx)
	}
}

func (ow *Writer) writeRecord(tag string, idx []int) error {
	if _, err := ow.w.WriteString(tag); err != nil {
		return err
	}
	for _, i := range idx {
		if _, err := fmt.Fprintf(ow.w, " %d", i); err != nil {
			return err
		}
	}
	_, err := ow.w.WriteString("\n")
	return err
}
