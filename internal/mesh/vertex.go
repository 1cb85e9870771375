package mesh

// MaxNumVertices is the largest vertex count a single object may declare.
const MaxNumVertices = 200

// VertexArray holds the vertex positions decoded for the object currently
// being processed, plus the bookkeeping needed to cull and renumber them
// once every primitive referencing them has been decoded.
type VertexArray struct {
	coords   []Vec
	used     []bool
	renumber []int // -1 until assigned; index into the culled output array
}

// Clear empties the array for reuse by the next object, avoiding a fresh
// allocation per object the way the original reused one VertexArray for
// the whole run.
func (va *VertexArray) Clear() {
	va.coords = va.coords[:0]
	va.used = va.used[:0]
	va.renumber = va.renumber[:0]
}

// Add appends a new vertex and returns its index.
func (va *VertexArray) Add(c Vec) int {
	va.coords = append(va.coords, c)
	va.used = append(va.used, false)
	va.renumber = append(va.renumber, -1)
	return len(va.coords) - 1
}

// Len returns the number of vertices currently held.
func (va *VertexArray) Len() int {
	return len(va.coords)
}

// Coords returns the position of vertex v. The second return value is
// false if v is out of range.
func (va *VertexArray) Coords(v int) (Vec, bool) {
	if v < 0 || v >= len(va.coords) {
		return Vec{}, false
	}
	return va.coords[v], true
}

// SetUsed marks vertex v as referenced by some primitive.
func (va *VertexArray) SetUsed(v int) {
	if v >= 0 && v < len(va.used) {
		va.used[v] = true
	}
}

// IsUsed reports whether vertex v has been marked used.
func (va *VertexArray) IsUsed(v int) bool {
	return v >= 0 && v < len(va.used) && va.used[v]
}

// SetAllUsed marks every vertex used, for the -unused switch where nothing
// should be culled.
func (va *VertexArray) SetAllUsed() {
	for i := range va.used {
		va.used[i] = true
	}
}

// Renumber assigns a dense output slot to every used vertex, in ascending
// index order, and returns the new vertex count. Vertices whose renumber
// slot is still -1 after this call are culled from the output.
func (va *VertexArray) Renumber() int {
	next := 0
	for i := range va.coords {
		if va.used[i] {
			va.renumber[i] = next
			next++
		} else {
			va.renumber[i] = -1
		}
	}
	return next
}

// RenumberOf returns the output slot assigned to vertex v by the last
// call to Renumber.
func (va *VertexArray) RenumberOf(v int) int {
	if v < 0 || v >= len(va.renumber) {
		return -1
	}
	return va.renumber[v]
}

// FindDuplicates unmarks every used vertex whose position equals (within
// VecEqual's tolerance) that of an earlier-numbered used vertex. It
// returns the number of duplicates found and a redirect table mapping
// each vertex to the earlier vertex it duplicates (or to itself), for
// RedirectSides to apply to the primitives.
func (va *VertexArray) FindDuplicates() (int, []int) {
	redirect := make([]int, len(va.coords))
	for i := range redirect {
		redirect[i] = i
	}
	count := 0
	for i := range va.coords {
		if !va.used[i] || redirect[i] != i {
			continue
		}
		for j := i + 1; j < len(va.coords); j++ {
			if !va.used[j] || redirect[j] != j {
				continue
			}
			if VecEqual(va.coords[i], va.coords[j]) {
				redirect[j] = i
				va.used[j] = false
				count++
			}
		}
	}
	return count, redirect
}
