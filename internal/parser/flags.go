package parser

// Flags is a bitmask of the output/mode switches that vary how an object
// is decoded and emitted, mirroring the command-line switches of
// cmd/choctoobj.
type Flags uint32

const (
	FlagVerbose Flags = 1 << iota
	FlagList
	FlagSummary
	FlagSimple
	FlagUnused
	FlagDuplicate
	FlagNegativeIndices
	FlagClipPolygons
	FlagFlipBackfacing
	FlagTriangleFans
	FlagTriangleStrips
	FlagHumanReadable
	FlagFalseColour
	FlagExtraMissions
)

func (f Flags) Has(bit Flags) bool {
	return f&bit != 0
}
