package parser

import (
	"fmt"

	"github.com/chocksaway/choctoobj/internal/mesh"
	"github.com/chocksaway/choctoobj/internal/streamio"
)

const (
	bytesPerVertex            = 12
	bytesPerPrimitive         = 16
	paddingBeforeClipDist     = 4
	paddingBeforePrimSimpDist = 3
)

// objectHeader is the fixed-layout record at the start of every object,
// decoded field by field with the same range checks the original format
// relies on to keep the fixed-size vertex/primitive tables from
// overflowing.
type objectHeader struct {
	SimpleDist     int32
	NPrimitives    int
	NVertices      int
	NSPrimitives   int
	NSVertices     int
	ClipDist       int32
	PrimitiveStyle int32
}

func decodeObjectHeader(r streamio.Reader, name string) (*objectHeader, error) {
	readI32 := func(field string) (int32, error) {
		v, ok := streamio.ReadInt32LE(r)
		if !ok {
			return 0, newErr(KindIO, name, field, fmt.Errorf("unexpected end of stream"))
		}
		return v, nil
	}

	simpleDist, err := readI32("simple_dist")
	if err != nil {
		return nil, err
	}

	rawPrimitives, err := readI32("nprimitives")
	if err != nil {
		return nil, err
	}
	if rawPrimitives < 0 || int(rawPrimitives) >= mesh.MaxNumPrimitives {
		return nil, fmtErr(KindResource, name, "nprimitives", "count %d out of range [0,%d)", rawPrimitives, mesh.MaxNumPrimitives)
	}

	rawVertices, err := readI32("nvertices")
	if err != nil {
		return nil, err
	}
	if rawVertices < 0 || int(rawVertices) >= mesh.MaxNumVertices {
		return nil, fmtErr(KindResource, name, "nvertices", "count %d out of range [0,%d)", rawVertices, mesh.MaxNumVertices)
	}

	rawSPrimitives, err := readI32("nsprimitives")
	if err != nil {
		return nil, err
	}
	if rawSPrimitives < 0 || rawSPrimitives > rawPrimitives {
		return nil, fmtErr(KindFormat, name, "nsprimitives", "count %d not less than nprimitives %d", rawSPrimitives, rawPrimitives+1)
	}

	rawSVertices, err := readI32("nsvertices")
	if err != nil {
		return nil, err
	}
	if rawSVertices < 0 || rawSVertices > rawVertices {
		return nil, fmtErr(KindFormat, name, "nsvertices", "count %d not less than nvertices %d", rawSVertices, rawVertices+1)
	}

	if err := r.Seek(paddingBeforeClipDist, streamio.SeekCur); err != nil {
		return nil, newErr(KindIO, name, "clip_dist padding", err)
	}

	clipDist, err := readI32("clip_dist")
	if err != nil {
		return nil, err
	}
	if clipDist < 0 {
		return nil, fmtErr(KindFormat, name, "clip_dist", "negative distance %d", clipDist)
	}

	style, err := readI32("primitive_style")
	if err != nil {
		return nil, err
	}
	if style < 0 || style > 2 {
		return nil, fmtErr(KindFormat, name, "primitive_style", "unknown style %d", style)
	}

	return &objectHeader{
		SimpleDist:     simpleDist,
		NPrimitives:    int(rawPrimitives) + 1,
		NVertices:      int(rawVertices) + 1,
		NSPrimitives:   int(rawSPrimitives) + 1,
		NSVertices:     int(rawSVertices) + 1,
		ClipDist:       clipDist,
		PrimitiveStyle: style,
	}, nil
}

// parseVertices reads the object's vertex table, flipping the sign of Z
// (the source coordinate system is left-handed) and skipping whatever
// vertices the simplified count leaves unread. Under FlagList it reads
// none of the table, only skipping past it to position the reader for
// the object's size calculation.
func parseVertices(r streamio.Reader, varray *mesh.VertexArray, hdr *objectHeader, flags Flags, name string) error {
	n := hdr.NVertices
	switch {
	case flags.Has(FlagList):
		n = 0
	case flags.Has(FlagSimple):
		n = hdr.NSVertices
	}

	for i := 0; i < n; i++ {
		var coord [3]int32
		for a := 0; a < 3; a++ {
			v, ok := streamio.ReadInt32LE(r)
			if !ok {
				return fmtErr(KindIO, name, "vertex", "vertex %d truncated", i)
			}
			coord[a] = v
		}
		varray.Add(mesh.Vec{mesh.Coord(coord[0]), mesh.Coord(coord[1]), -mesh.Coord(coord[2])})
	}

	skip := int64(hdr.NVertices-n) * bytesPerVertex
	if skip > 0 {
		if err := r.Seek(skip, streamio.SeekCur); err != nil {
			return newErr(KindIO, name, "vertex skip", err)
		}
	}
	return nil
}

// parsePrimitives reads the object's primitive table into group, dispatching
// the fixed set of special side-encodings to their procedural generators in
// package mesh and validating every ordinary vertex reference against the
// vertices already read for this object. Under FlagList it reads none of
// the table, only skipping past it. When FlagFlipBackfacing is set it
// returns whether every ordinary vertex referenced lay in the z==0 plane,
// the heuristic used to decide whether the whole object needs
// FlipBackfacing; without that flag it always returns false.
func parsePrimitives(r streamio.Reader, varray *mesh.VertexArray, groups []*mesh.Group,
	hdr *objectHeader, flags Flags, thick mesh.Coord, name string, warn func(string)) (allZ0 bool, err error) {

	n := hdr.NPrimitives
	switch {
	case flags.Has(FlagList):
		n = 0
	case flags.Has(FlagSimple):
		n = hdr.NSPrimitives
	}

	// all_z_0 only accumulates toward a flip when -flip asked for it;
	// otherwise it stays false no matter what the ordinary vertices look
	// like.
	allZ0 = flags.Has(FlagFlipBackfacing)

	for i := 0; i < n; i++ {
		group := mesh.GroupComplex
		if i < hdr.NSPrimitives {
			group = mesh.GroupSimple
		}
		g := groups[group]
		primStart := r.Tell()

		var raw [mesh.MaxNumSides]byte
		nsides := 0
		for nsides < mesh.MaxNumSides {
			b, ok := r.GetC()
			if !ok {
				return allZ0, fmtErr(KindIO, name, "primitive", "primitive %d side bytes truncated", i)
			}
			if b == 0 {
				break
			}
			raw[nsides] = b
			nsides++
		}

		if err := r.Seek(primStart+mesh.MaxNumSides, streamio.SeekSet); err != nil {
			return allZ0, newErr(KindIO, name, "primitive colour seek", err)
		}
		colour, ok := r.GetC()
		if !ok {
			return allZ0, fmtErr(KindIO, name, "primitive", "primitive %d colour truncated", i)
		}
		if err := r.Seek(paddingBeforePrimSimpDist, streamio.SeekCur); err != nil {
			return allZ0, newErr(KindIO, name, "primitive padding", err)
		}
		primSimpleDist, ok := streamio.ReadInt32LE(r)
		if !ok {
			return allZ0, fmtErr(KindIO, name, "primitive", "primitive %d simple distance truncated", i)
		}

		if flags.Has(FlagSimple) && primSimpleDist <= hdr.SimpleDist && nsides > 2 {
			nsides = 2
		}

		p := g.Add()
		p.ID = g.Len()
		p.Colour = colour

		special := false
		for s := 0; s < nsides && !special; s++ {
			v := raw[s]

			var ok bool
			switch {
			case s == 2:
				switch v {
				case mesh.Special8DashThinWhiteLine:
					ok = mesh.MakeSpecialDashed(varray, groups, group, 8, mesh.WhiteColour, thick)
					special = true
				case mesh.Special16DashThinWhiteLine:
					ok = mesh.MakeSpecialDashed(varray, groups, group, 16, mesh.WhiteColour, thick)
					special = true
				case mesh.Special32DashThickWhiteLine:
					ok = mesh.MakeSpecialDashed(varray, groups, group, 32, mesh.WhiteColour, thick*2)
					special = true
				}
			case s == 3:
				switch v {
				case mesh.Special32OrangePoints:
					ok = mesh.MakeSpecialPoints(varray, groups, group, 32, mesh.OrangeColour)
					special = true
				case mesh.Special16DarkGreyQuads:
					ok = mesh.MakeSpecialQuads(varray, groups, group, 16, mesh.DarkGreyColour)
					special = true
				case mesh.Special64ThickPeruLines:
					ok = mesh.MakeSpecialHatch(varray, groups, group, 64, mesh.PeruColour, thick*2)
					special = true
				case mesh.Special16ThinBlackZigZags:
					ok = mesh.MakeSpecialZigzags(varray, groups, group, 16, mesh.BlackColour)
					special = true
				case mesh.Special8PeridotQuadsCheckZ:
					ok = mesh.MakeSpecialQuads(varray, groups, group, 8, mesh.PeridotColour)
					special = true
				case mesh.Special16WhiteQuadsCheckZ:
					ok = mesh.MakeSpecialQuads(varray, groups, group, 16, mesh.WhiteColour)
					special = true
				case mesh.Special8PeridotQuads:
					ok = mesh.MakeSpecialQuads(varray, groups, group, 8, mesh.PeridotColour)
					special = true
				case mesh.Special16WhiteQuads:
					ok = mesh.MakeSpecialQuads(varray, groups, group, 16, mesh.WhiteColour)
					special = true
				}
			}
			if special {
				if !ok {
					return allZ0, fmtErr(KindFormat, name, "primitive", "primitive %d special token %#x failed on malformed seed data", i, v)
				}
				break
			}

			idx := int(v) - 1
			if idx < 0 || idx >= varray.Len() {
				return allZ0, fmtErr(KindFormat, name, "primitive", "primitive %d references vertex %d out of range", i, idx+1)
			}
			if c, ok := varray.Coords(idx); ok && c[2] != 0 {
				allZ0 = false
			}
			p.AddSide(idx)
		}

		if !special {
			p.ReverseSides()
			if p.NumSides() < mesh.MinNumSides {
				return allZ0, fmtErr(KindFormat, name, "primitive", "primitive %d has too few sides (%d)", i, p.NumSides())
			}
			if warn != nil && p.SkewSide(varray) >= 0 {
				warn(fmt.Sprintf("primitive %d in %s is not planar", i, name))
			}
			if p.NumSides() == 2 && thick > 0 {
				if !mesh.ThickenLine(varray, groups, group, thick) {
					return allZ0, fmtErr(KindFormat, name, "primitive", "primitive %d thickening failed on malformed seed data", i)
				}
			}
		}
	}

	remaining := int64(hdr.NPrimitives-n) * bytesPerPrimitive
	if remaining > 0 {
		if err := r.Seek(remaining, streamio.SeekCur); err != nil {
			return allZ0, newErr(KindIO, name, "primitive skip", err)
		}
	}
	return allZ0, nil
}
