// Package parser walks an index/model file pair describing a bank of
// objects in the game's proprietary binary mesh format and decodes each
// selected object into package mesh's vertex/primitive/group model, for
// package objwriter to render as Wavefront OBJ.
package parser

import (
	"context"
	"fmt"
	"io"

	"github.com/chocksaway/choctoobj/internal/mesh"
	"github.com/chocksaway/choctoobj/internal/names"
	"github.com/chocksaway/choctoobj/internal/objwriter"
	"github.com/chocksaway/choctoobj/internal/streamio"
)

// Options configures one run of Convert, gathering the command-line
// switches that choose what gets decoded and how it is emitted.
type Options struct {
	Flags         Flags
	Thick         mesh.Coord
	MTLFile       string
	VersionString string

	// FirstIndex and LastIndex bound the selected object indices;
	// negative means unbounded.
	FirstIndex int
	LastIndex  int

	// Name, when non-empty, selects a single object by its resolved
	// name and stops iteration once it has been processed.
	Name string

	// DataStart is the address below which an index entry's offset is
	// treated as model-file padding rather than a real object (the
	// -offset switch).
	DataStart int64

	// Warn receives diagnostic-only messages (skew polygons etc); nil
	// discards them.
	Warn func(string)
}

func objName(index int, flags Flags) string {
	if flags.Has(FlagExtraMissions) {
		return names.ObjNameExtra(index)
	}
	return names.ObjName(index)
}

// Convert walks index, decoding each selected object out of models and
// writing Wavefront OBJ text to out. It returns the number of objects
// actually processed.
func Convert(ctx context.Context, index, models streamio.Reader, out io.Writer, opts Options) (int, error) {
	entries, err := WalkIndex(index)
	if err != nil {
		return 0, err
	}

	emit := !opts.Flags.Has(FlagList) && !opts.Flags.Has(FlagSummary)

	ow := objwriter.New(out)
	if emit {
		if err := ow.WritePrelude(opts.VersionString, opts.MTLFile); err != nil {
			return 0, newErr(KindIO, "", "prelude", err)
		}
	}

	varray := &mesh.VertexArray{}
	groups := make([]*mesh.Group, mesh.GroupCount)
	for i := range groups {
		groups[i] = &mesh.Group{}
	}
	var falseSrc objwriter.FalseColourSource

	// Summarizing without listing only needs to enumerate the whole
	// index, so every address counts regardless of -first/-last/-name/
	// -offset; those selection switches are meaningless without -list
	// actually decoding anything.
	summaryOnly := opts.Flags.Has(FlagSummary) && !opts.Flags.Has(FlagList)

	listHeaderWritten := false
	processed := 0
	for _, entry := range entries {
		select {
		case <-ctx.Done():
			return processed, ctx.Err()
		default:
		}

		if summaryOnly {
			processed++
			continue
		}

		if opts.FirstIndex >= 0 && entry.ObjectIndex < opts.FirstIndex {
			continue
		}
		if opts.LastIndex >= 0 && entry.ObjectIndex > opts.LastIndex {
			break
		}

		name := objName(entry.ObjectIndex, opts.Flags)
		selectedByName := opts.Name != "" && name == opts.Name
		if opts.Name != "" && !selectedByName {
			continue
		}

		if entry.Offset < opts.DataStart {
			if opts.Warn != nil {
				opts.Warn(fmt.Sprintf("object %d (%s) at offset %d precedes data start %d; skipped",
					entry.ObjectIndex, name, entry.Offset, opts.DataStart))
			}
			if selectedByName {
				break
			}
			continue
		}

		if err := models.Seek(entry.Offset-opts.DataStart, streamio.SeekSet); err != nil {
			return processed, newErr(KindIO, name, "seek", err)
		}
		b, ok := models.GetC()
		if !ok {
			break
		}
		models.UngetC(b)

		if err := processObject(models, varray, groups, &falseSrc, ow, out, &listHeaderWritten, name, entry.ObjectIndex, opts); err != nil {
			return processed, err
		}
		processed++

		if selectedByName {
			break
		}
	}

	if emit {
		if err := ow.Flush(); err != nil {
			return processed, newErr(KindIO, "", "flush", err)
		}
	}
	return processed, nil
}

// objectsWithEmptyPrimitiveTables lists the two objects in the stock
// object bank whose header declares a non-zero reduced primitive count
// while the primitive table itself is empty; parsePrimitives must be
// skipped for them entirely rather than treated as a truncated file.
var objectsWithEmptyPrimitiveTables = map[int]bool{37: true, 38: true}

// listHeader is the column banner printed once, before the first row, when
// -list is in effect.
const listHeader = "\nIndex  Name          Verts  Prims  SimpV  SimpP      Offset        Size\n"

func processObject(r streamio.Reader, varray *mesh.VertexArray, groups []*mesh.Group,
	falseSrc *objwriter.FalseColourSource, ow *objwriter.Writer, out io.Writer, listHeaderWritten *bool,
	name string, objectIndex int, opts Options) error {

	objStart := r.Tell()

	varray.Clear()
	for _, g := range groups {
		g.Clear()
	}

	hdr, err := decodeObjectHeader(r, name)
	if err != nil {
		return err
	}

	if err := parseVertices(r, varray, hdr, opts.Flags, name); err != nil {
		return err
	}

	skipPrimitives := objectsWithEmptyPrimitiveTables[objectIndex]

	allZ0 := opts.Flags.Has(FlagFlipBackfacing)
	if !skipPrimitives {
		allZ0, err = parsePrimitives(r, varray, groups, hdr, opts.Flags, opts.Thick, name, opts.Warn)
		if err != nil {
			return err
		}
	}

	if allZ0 {
		mesh.FlipBackfacing(varray, groups)
	}

	if opts.Flags.Has(FlagList) {
		if !*listHeaderWritten {
			if _, err := io.WriteString(out, listHeader); err != nil {
				return newErr(KindIO, name, "list header", err)
			}
			*listHeaderWritten = true
		}
		objSize := r.Tell() - objStart
		_, err := fmt.Fprintf(out, "%5d  %-12.12s  %5d  %5d  %5d  %5d  %10d  %10d\n",
			objectIndex, name, hdr.NVertices, hdr.NPrimitives, hdr.NSVertices, hdr.NSPrimitives,
			opts.DataStart+objStart, objSize)
		if err != nil {
			return newErr(KindIO, name, "list row", err)
		}
		return nil
	}

	if opts.Flags.Has(FlagClipPolygons) {
		mesh.ClipOverlapping(varray, groups, []int{mesh.GroupSimple, mesh.GroupComplex})
	}

	mesh.MarkVertices(varray, groups, opts.Flags.Has(FlagUnused))
	if opts.Warn != nil {
		for v := 0; v < varray.Len(); v++ {
			if !varray.IsUsed(v) {
				opts.Warn(fmt.Sprintf("vertex %d in %s is unused", v, name))
			}
		}
	}

	if !opts.Flags.Has(FlagDuplicate) {
		_, redirect := varray.FindDuplicates()
		mesh.RedirectSides(groups, redirect)
	}

	vobject := varray.Renumber()

	if err := ow.WriteObjectHeader(name, hdr.SimpleDist, hdr.ClipDist, hdr.PrimitiveStyle); err != nil {
		return newErr(KindIO, name, "object header", err)
	}
	if err := ow.WriteVertices(varray, vobject); err != nil {
		return newErr(KindIO, name, "vertices", err)
	}

	var colourFn func(p *mesh.Primitive) int
	if opts.Flags.Has(FlagFalseColour) {
		colourFn = func(p *mesh.Primitive) int { return falseSrc.Next() }
	}
	materialFn := objwriter.GetMaterial
	if opts.Flags.Has(FlagHumanReadable) {
		materialFn = objwriter.GetHumanMaterial
	}
	vstyle := objwriter.VertexStylePositive
	if opts.Flags.Has(FlagNegativeIndices) {
		vstyle = objwriter.VertexStyleNegative
	}
	mstyle := objwriter.MeshStyleNoChange
	switch {
	case opts.Flags.Has(FlagTriangleFans):
		mstyle = objwriter.MeshStyleTriangleFan
	case opts.Flags.Has(FlagTriangleStrips):
		mstyle = objwriter.MeshStyleTriangleStrip
	}

	if err := ow.WritePrimitives(varray, groups, colourFn, materialFn, vobject, vstyle, mstyle); err != nil {
		return newErr(KindIO, name, "primitives", err)
	}
	return nil
}
