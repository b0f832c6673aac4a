package transvoxel

// reuseCache stores the vertex indices cells publish for their neighbours to reuse.
// Entries are keyed by the owning cell coordinate and a slot in 1..3.
//
// Cells are visited with x as the outermost loop, so a cell only ever reuses
// from its own x layer or the previous one. The cache is a rolling window of
// two layers of (length+1)^2 cells indexed by (x&1, y, z), which keeps memory
// proportional to chunk area. Coordinates start at -1 so cells on the low
// chunk faces can share vertices whose owning cell lies outside of the chunk.
// Each entry remembers the cell it was written for, so an entry left over
// from an older layer reads as a miss.
type reuseCache struct {
	side  int // length+1, the number of cells per axis including the -1 border.
	cells []reuseCell
}

type reuseCell struct {
	cell Vec
	// set has bit n set when verts[n] holds a valid index.
	set   uint8
	verts [4]uint32
}

// reset clears the cache and sizes it for a chunk of length^3 cells.
func (rc *reuseCache) reset(length int) {
	side := length + 1
	n := 2 * side * side
	if cap(rc.cells) < n {
		rc.cells = make([]reuseCell, n)
	}
	rc.cells = rc.cells[:n]
	clear(rc.cells)
	rc.side = side
}

// get returns the index stored in slot by the neighbour of cell in direction dir.
func (rc *reuseCache) get(cell Vec, dir, slot uint8) (uint32, bool) {
	owner := cell.Sub(dirOffset(dir))
	idx, ok := rc.index(owner)
	if !ok {
		return 0, false
	}
	entry := &rc.cells[idx]
	if entry.cell != owner || entry.set&(1<<slot) == 0 {
		return 0, false
	}
	return entry.verts[slot], true
}

// set stores a vertex index in slot of cell. Overwriting a slot is allowed.
func (rc *reuseCache) set(cell Vec, slot uint8, vertIdx uint32) {
	idx, ok := rc.index(cell)
	if !ok {
		return
	}
	entry := &rc.cells[idx]
	if entry.cell != cell {
		// Entry belonged to a cell two layers back.
		*entry = reuseCell{cell: cell}
	}
	entry.verts[slot] = vertIdx
	entry.set |= 1 << slot
}

func (rc *reuseCache) index(cell Vec) (int, bool) {
	y, z := cell.Y+1, cell.Z+1
	if cell.X < -1 || y < 0 || z < 0 || y >= rc.side || z >= rc.side || cell.X+1 >= rc.side {
		return 0, false
	}
	return (cell.X&1)*rc.side*rc.side + y*rc.side + z, true
}
