package transvoxel

// Regular cell lookup tables of the Transvoxel algorithm, laid out as published
// by Eric Lengyel (http://transvoxel.org/). Corner i of a cell has its sign
// stored in bit i of the case code.
//
// The tables assume corner i sits at table coordinates (i&1, (i>>1)&1, (i>>2)&1).
// The table's second axis is mapped to z and its third axis to y, so a cell
// corner offset is (i&1, (i>>2)&1, (i>>1)&1) in x, y, z. Reuse directions
// follow the same mapping: bit 0 is -x, bit 1 is -z and bit 2 is -y.

// cornerIndex are the lattice offsets of the 8 cell corners.
var cornerIndex = [8]Vec{
	{X: 0, Y: 0, Z: 0},
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 0, Z: 1},
	{X: 1, Y: 0, Z: 1},
	{X: 0, Y: 1, Z: 0},
	{X: 1, Y: 1, Z: 0},
	{X: 0, Y: 1, Z: 1},
	{X: 1, Y: 1, Z: 1},
}

// regularCell describes the triangulation shared by all case codes of one equivalence class.
type regularCell struct {
	// High nibble is vertex count, low nibble is triangle count.
	geometryCounts uint8
	// Groups of 3 indices into the case's vertex list, one group per triangle.
	vertexIndex [15]uint8
}

// VertexCount returns the number of vertices the cell class generates.
func (rc *regularCell) VertexCount() int { return int(rc.geometryCounts >> 4) }

// TriangleCount returns the number of triangles the cell class generates.
func (rc *regularCell) TriangleCount() int { return int(rc.geometryCounts & 0x0f) }

// Indices returns the local vertex indices of the class triangles.
func (rc *regularCell) Indices() []uint8 { return rc.vertexIndex[:3*rc.TriangleCount()] }

// vertexCode is a packed vertex descriptor of regularVertexData.
//
//	bits 15..12: reuse direction. Bit 3 (0x8) set means the vertex is owned by the cell.
//	bits 11..8:  reuse slot (1..3) in the owning cell.
//	bits  7..4:  first corner v0.
//	bits  3..0:  second corner v1, always greater than v0.
type vertexCode uint16

// corners returns the edge endpoints of the vertex.
func (vc vertexCode) corners() (v0, v1 uint8) {
	return uint8(vc>>4) & 0xf, uint8(vc) & 0xf
}

// reuseDir returns the direction to the owning cell. Bit 3 is the owner flag.
func (vc vertexCode) reuseDir() uint8 { return uint8(vc >> 12) }

// reuseSlot returns the slot the vertex is stored under in its owning cell.
func (vc vertexCode) reuseSlot() uint8 { return uint8(vc>>8) & 0xf }

// ownedByCell reports whether the vertex lies on one of the 3 edges meeting at corner 7.
func (vc vertexCode) ownedByCell() bool { return vc.reuseDir()&0x8 != 0 }

// dirOffset returns the lattice offset from a cell to the cell owning a vertex in
// direction dir. Only the 3 low direction bits are considered.
func dirOffset(dir uint8) Vec {
	return Vec{X: int(dir & 1), Y: int(dir>>2) & 1, Z: int(dir>>1) & 1}
}

// regularCellClass maps a case code to its equivalence class.
var regularCellClass = [256]uint8{
	0x00, 0x01, 0x01, 0x03, 0x01, 0x03, 0x02, 0x04, 0x01, 0x02, 0x03, 0x04, 0x03, 0x04, 0x04, 0x03,
	0x01, 0x03, 0x02, 0x04, 0x02, 0x04, 0x06, 0x0C, 0x02, 0x05, 0x05, 0x0B, 0x05, 0x0A, 0x07, 0x04,
	0x01, 0x02, 0x03, 0x04, 0x02, 0x05, 0x05, 0x0A, 0x02, 0x06, 0x04, 0x0C, 0x05, 0x07, 0x0B, 0x04,
	0x03, 0x04, 0x04, 0x03, 0x05, 0x0B, 0x07, 0x04, 0x05, 0x07, 0x0A, 0x04, 0x08, 0x0E, 0x0E, 0x03,
	0x01, 0x02, 0x02, 0x05, 0x03, 0x04, 0x05, 0x0B, 0x02, 0x06, 0x05, 0x07, 0x04, 0x0C, 0x0A, 0x04,
	0x03, 0x04, 0x05, 0x0A, 0x04, 0x03, 0x07, 0x04, 0x05, 0x07, 0x08, 0x0E, 0x0B, 0x04, 0x0E, 0x03,
	0x02, 0x06, 0x05, 0x07, 0x05, 0x07, 0x08, 0x0E, 0x06, 0x09, 0x07, 0x0F, 0x07, 0x0F, 0x0E, 0x0D,
	0x04, 0x0C, 0x0B, 0x04, 0x0A, 0x04, 0x0E, 0x03, 0x07, 0x0F, 0x0E, 0x0D, 0x0E, 0x0D, 0x02, 0x01,
	0x01, 0x02, 0x02, 0x05, 0x02, 0x05, 0x06, 0x07, 0x03, 0x05, 0x04, 0x0A, 0x04, 0x0B, 0x0C, 0x04,
	0x02, 0x05, 0x06, 0x07, 0x06, 0x07, 0x09, 0x0F, 0x05, 0x08, 0x07, 0x0E, 0x07, 0x0E, 0x0F, 0x0D,
	0x03, 0x05, 0x04, 0x0B, 0x05, 0x08, 0x07, 0x0E, 0x04, 0x07, 0x03, 0x04, 0x0A, 0x0E, 0x04, 0x03,
	0x04, 0x0A, 0x0C, 0x04, 0x07, 0x0E, 0x0F, 0x0D, 0x0B, 0x0E, 0x04, 0x03, 0x0E, 0x02, 0x0D, 0x01,
	0x03, 0x05, 0x05, 0x08, 0x04, 0x0A, 0x07, 0x0E, 0x04, 0x07, 0x0B, 0x0E, 0x03, 0x04, 0x04, 0x03,
	0x04, 0x0B, 0x07, 0x0E, 0x0C, 0x04, 0x0F, 0x0D, 0x0A, 0x0E, 0x0E, 0x02, 0x04, 0x03, 0x0D, 0x01,
	0x04, 0x07, 0x0A, 0x0E, 0x0B, 0x0E, 0x0E, 0x02, 0x0C, 0x0F, 0x04, 0x0D, 0x04, 0x0D, 0x03, 0x01,
	0x03, 0x04, 0x04, 0x03, 0x04, 0x03, 0x0D, 0x01, 0x04, 0x0D, 0x03, 0x01, 0x03, 0x01, 0x01, 0x00,
}

// regularCellData holds the triangulation of each equivalence class.
var regularCellData = [16]regularCell{
	{0x00, [15]uint8{}},
	{0x31, [15]uint8{0, 1, 2}},
	{0x62, [15]uint8{0, 1, 2, 3, 4, 5}},
	{0x42, [15]uint8{0, 1, 2, 0, 2, 3}},
	{0x53, [15]uint8{0, 1, 4, 1, 3, 4, 1, 2, 3}},
	{0x73, [15]uint8{0, 1, 2, 0, 2, 3, 4, 5, 6}},
	{0x93, [15]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8}},
	{0x84, [15]uint8{0, 1, 4, 1, 3, 4, 1, 2, 3, 5, 6, 7}},
	{0x84, [15]uint8{0, 1, 2, 0, 2, 3, 4, 5, 6, 4, 6, 7}},
	{0xC4, [15]uint8{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}},
	{0x64, [15]uint8{0, 4, 5, 0, 1, 4, 1, 3, 4, 1, 2, 3}},
	{0x64, [15]uint8{0, 5, 4, 0, 4, 1, 1, 4, 3, 1, 3, 2}},
	{0x64, [15]uint8{0, 4, 5, 0, 3, 4, 0, 1, 3, 1, 2, 3}},
	{0x64, [15]uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5}},
	{0x75, [15]uint8{0, 1, 2, 0, 2, 3, 0, 3, 4, 0, 4, 5, 0, 5, 6}},
	{0x95, [15]uint8{0, 4, 5, 0, 3, 4, 0, 1, 3, 1, 2, 3, 6, 7, 8}},
}

// regularVertexData lists the vertex descriptors of each case code, ordered to match
// the class triangulation in regularCellData.
var regularVertexData = [256][12]uint16{
	{},
	{0x6201, 0x5102, 0x3304},
	{0x6201, 0x2315, 0x4113},
	{0x5102, 0x3304, 0x2315, 0x4113},
	{0x5102, 0x4223, 0x1326},
	{0x3304, 0x6201, 0x4223, 0x1326},
	{0x6201, 0x2315, 0x4113, 0x5102, 0x4223, 0x1326},
	{0x4223, 0x1326, 0x3304, 0x2315, 0x4113},
	{0x4113, 0x8337, 0x4223},
	{0x6201, 0x5102, 0x3304, 0x4223, 0x4113, 0x8337},
	{0x6201, 0x2315, 0x8337, 0x4223},
	{0x5102, 0x3304, 0x2315, 0x8337, 0x4223},
	{0x5102, 0x4113, 0x8337, 0x1326},
	{0x4113, 0x8337, 0x1326, 0x3304, 0x6201},
	{0x6201, 0x2315, 0x8337, 0x1326, 0x5102},
	{0x3304, 0x2315, 0x8337, 0x1326},
	{0x3304, 0x1146, 0x2245},
	{0x6201, 0x5102, 0x1146, 0x2245},
	{0x6201, 0x2315, 0x4113, 0x3304, 0x1146, 0x2245},
	{0x2315, 0x4113, 0x5102, 0x1146, 0x2245},
	{0x5102, 0x4223, 0x1326, 0x3304, 0x1146, 0x2245},
	{0x1146, 0x2245, 0x6201, 0x4223, 0x1326},
	{0x3304, 0x1146, 0x2245, 0x6201, 0x2315, 0x4113, 0x5102, 0x4223, 0x1326},
	{0x4223, 0x1326, 0x1146, 0x2245, 0x2315, 0x4113},
	{0x4223, 0x4113, 0x8337, 0x3304, 0x1146, 0x2245},
	{0x6201, 0x5102, 0x1146, 0x2245, 0x4223, 0x4113, 0x8337},
	{0x4223, 0x6201, 0x2315, 0x8337, 0x3304, 0x1146, 0x2245},
	{0x4223, 0x8337, 0x2315, 0x2245, 0x1146, 0x5102},
	{0x5102, 0x4113, 0x8337, 0x1326, 0x3304, 0x1146, 0x2245},
	{0x4113, 0x8337, 0x1326, 0x1146, 0x2245, 0x6201},
	{0x6201, 0x2315, 0x8337, 0x1326, 0x5102, 0x3304, 0x1146, 0x2245},
	{0x2245, 0x2315, 0x8337, 0x1326, 0x1146},
	{0x2315, 0x2245, 0x8157},
	{0x6201, 0x5102, 0x3304, 0x2315, 0x2245, 0x8157},
	{0x4113, 0x6201, 0x2245, 0x8157},
	{0x2245, 0x8157, 0x4113, 0x5102, 0x3304},
	{0x5102, 0x4223, 0x1326, 0x2315, 0x2245, 0x8157},
	{0x6201, 0x4223, 0x1326, 0x3304, 0x2315, 0x2245, 0x8157},
	{0x6201, 0x2245, 0x8157, 0x4113, 0x5102, 0x4223, 0x1326},
	{0x4223, 0x1326, 0x3304, 0x2245, 0x8157, 0x4113},
	{0x4223, 0x4113, 0x8337, 0x2315, 0x2245, 0x8157},
	{0x6201, 0x5102, 0x3304, 0x4223, 0x4113, 0x8337, 0x2315, 0x2245, 0x8157},
	{0x8337, 0x4223, 0x6201, 0x2245, 0x8157},
	{0x5102, 0x3304, 0x2245, 0x8157, 0x8337, 0x4223},
	{0x5102, 0x4113, 0x8337, 0x1326, 0x2315, 0x2245, 0x8157},
	{0x4113, 0x8337, 0x1326, 0x3304, 0x6201, 0x2315, 0x2245, 0x8157},
	{0x5102, 0x1326, 0x8337, 0x8157, 0x2245, 0x6201},
	{0x8157, 0x8337, 0x1326, 0x3304, 0x2245},
	{0x2315, 0x3304, 0x1146, 0x8157},
	{0x6201, 0x5102, 0x1146, 0x8157, 0x2315},
	{0x3304, 0x1146, 0x8157, 0x4113, 0x6201},
	{0x4113, 0x5102, 0x1146, 0x8157},
	{0x2315, 0x3304, 0x1146, 0x8157, 0x5102, 0x4223, 0x1326},
	{0x1326, 0x4223, 0x6201, 0x2315, 0x8157, 0x1146},
	{0x3304, 0x1146, 0x8157, 0x4113, 0x6201, 0x5102, 0x4223, 0x1326},
	{0x1326, 0x1146, 0x8157, 0x4113, 0x4223},
	{0x2315, 0x3304, 0x1146, 0x8157, 0x4223, 0x4113, 0x8337},
	{0x6201, 0x5102, 0x1146, 0x8157, 0x2315, 0x4223, 0x4113, 0x8337},
	{0x3304, 0x1146, 0x8157, 0x8337, 0x4223, 0x6201},
	{0x4223, 0x5102, 0x1146, 0x8157, 0x8337},
	{0x2315, 0x3304, 0x1146, 0x8157, 0x5102, 0x4113, 0x8337, 0x1326},
	{0x6201, 0x4113, 0x8337, 0x1326, 0x1146, 0x8157, 0x2315},
	{0x6201, 0x3304, 0x1146, 0x8157, 0x8337, 0x1326, 0x5102},
	{0x1326, 0x1146, 0x8157, 0x8337},
	{0x1326, 0x8267, 0x1146},
	{0x6201, 0x5102, 0x3304, 0x1326, 0x8267, 0x1146},
	{0x6201, 0x2315, 0x4113, 0x1326, 0x8267, 0x1146},
	{0x5102, 0x3304, 0x2315, 0x4113, 0x1326, 0x8267, 0x1146},
	{0x5102, 0x4223, 0x8267, 0x1146},
	{0x6201, 0x4223, 0x8267, 0x1146, 0x3304},
	{0x5102, 0x4223, 0x8267, 0x1146, 0x6201, 0x2315, 0x4113},
	{0x3304, 0x1146, 0x8267, 0x4223, 0x4113, 0x2315},
	{0x4113, 0x8337, 0x4223, 0x1326, 0x8267, 0x1146},
	{0x6201, 0x5102, 0x3304, 0x4113, 0x8337, 0x4223, 0x1326, 0x8267, 0x1146},
	{0x6201, 0x2315, 0x8337, 0x4223, 0x1326, 0x8267, 0x1146},
	{0x5102, 0x3304, 0x2315, 0x8337, 0x4223, 0x1326, 0x8267, 0x1146},
	{0x5102, 0x4113, 0x8337, 0x8267, 0x1146},
	{0x6201, 0x4113, 0x8337, 0x8267, 0x1146, 0x3304},
	{0x6201, 0x2315, 0x8337, 0x8267, 0x1146, 0x5102},
	{0x3304, 0x2315, 0x8337, 0x8267, 0x1146},
	{0x3304, 0x1326, 0x8267, 0x2245},
	{0x6201, 0x5102, 0x1326, 0x8267, 0x2245},
	{0x3304, 0x1326, 0x8267, 0x2245, 0x6201, 0x2315, 0x4113},
	{0x5102, 0x1326, 0x8267, 0x2245, 0x2315, 0x4113},
	{0x5102, 0x4223, 0x8267, 0x2245, 0x3304},
	{0x6201, 0x4223, 0x8267, 0x2245},
	{0x5102, 0x4223, 0x8267, 0x2245, 0x3304, 0x6201, 0x2315, 0x4113},
	{0x4113, 0x4223, 0x8267, 0x2245, 0x2315},
	{0x3304, 0x1326, 0x8267, 0x2245, 0x4113, 0x8337, 0x4223},
	{0x6201, 0x5102, 0x1326, 0x8267, 0x2245, 0x4113, 0x8337, 0x4223},
	{0x6201, 0x2315, 0x8337, 0x4223, 0x3304, 0x1326, 0x8267, 0x2245},
	{0x5102, 0x1326, 0x8267, 0x2245, 0x2315, 0x8337, 0x4223},
	{0x5102, 0x3304, 0x2245, 0x8267, 0x8337, 0x4113},
	{0x6201, 0x4113, 0x8337, 0x8267, 0x2245},
	{0x5102, 0x6201, 0x2315, 0x8337, 0x8267, 0x2245, 0x3304},
	{0x2315, 0x8337, 0x8267, 0x2245},
	{0x2315, 0x2245, 0x8157, 0x1326, 0x8267, 0x1146},
	{0x6201, 0x5102, 0x3304, 0x2315, 0x2245, 0x8157, 0x1326, 0x8267, 0x1146},
	{0x6201, 0x2245, 0x8157, 0x4113, 0x1326, 0x8267, 0x1146},
	{0x5102, 0x3304, 0x2245, 0x8157, 0x4113, 0x1326, 0x8267, 0x1146},
	{0x5102, 0x4223, 0x8267, 0x1146, 0x2315, 0x2245, 0x8157},
	{0x6201, 0x4223, 0x8267, 0x1146, 0x3304, 0x2315, 0x2245, 0x8157},
	{0x6201, 0x2245, 0x8157, 0x4113, 0x5102, 0x4223, 0x8267, 0x1146},
	{0x3304, 0x2245, 0x8157, 0x4113, 0x4223, 0x8267, 0x1146},
	{0x4113, 0x8337, 0x4223, 0x2315, 0x2245, 0x8157, 0x1326, 0x8267, 0x1146},
	{0x6201, 0x5102, 0x3304, 0x4113, 0x8337, 0x4223, 0x2315, 0x2245, 0x8157, 0x1326, 0x8267, 0x1146},
	{0x6201, 0x2245, 0x8157, 0x8337, 0x4223, 0x1326, 0x8267, 0x1146},
	{0x5102, 0x3304, 0x2245, 0x8157, 0x8337, 0x4223, 0x1326, 0x8267, 0x1146},
	{0x5102, 0x4113, 0x8337, 0x8267, 0x1146, 0x2315, 0x2245, 0x8157},
	{0x6201, 0x4113, 0x8337, 0x8267, 0x1146, 0x3304, 0x2315, 0x2245, 0x8157},
	{0x6201, 0x2245, 0x8157, 0x8337, 0x8267, 0x1146, 0x5102},
	{0x3304, 0x2245, 0x8157, 0x8337, 0x8267, 0x1146},
	{0x3304, 0x1326, 0x8267, 0x8157, 0x2315},
	{0x6201, 0x5102, 0x1326, 0x8267, 0x8157, 0x2315},
	{0x6201, 0x4113, 0x8157, 0x8267, 0x1326, 0x3304},
	{0x5102, 0x1326, 0x8267, 0x8157, 0x4113},
	{0x5102, 0x4223, 0x8267, 0x8157, 0x2315, 0x3304},
	{0x6201, 0x4223, 0x8267, 0x8157, 0x2315},
	{0x3304, 0x5102, 0x4223, 0x8267, 0x8157, 0x4113, 0x6201},
	{0x4113, 0x4223, 0x8267, 0x8157},
	{0x3304, 0x1326, 0x8267, 0x8157, 0x2315, 0x4113, 0x8337, 0x4223},
	{0x6201, 0x5102, 0x1326, 0x8267, 0x8157, 0x2315, 0x4113, 0x8337, 0x4223},
	{0x6201, 0x3304, 0x1326, 0x8267, 0x8157, 0x8337, 0x4223},
	{0x5102, 0x1326, 0x8267, 0x8157, 0x8337, 0x4223},
	{0x5102, 0x4113, 0x8337, 0x8267, 0x8157, 0x2315, 0x3304},
	{0x6201, 0x4113, 0x8337, 0x8267, 0x8157, 0x2315},
	{0x6201, 0x3304, 0x5102, 0x8337, 0x8267, 0x8157},
	{0x8337, 0x8267, 0x8157},
	{0x8337, 0x8157, 0x8267},
	{0x6201, 0x5102, 0x3304, 0x8337, 0x8157, 0x8267},
	{0x6201, 0x2315, 0x4113, 0x8337, 0x8157, 0x8267},
	{0x5102, 0x3304, 0x2315, 0x4113, 0x8337, 0x8157, 0x8267},
	{0x5102, 0x4223, 0x1326, 0x8337, 0x8157, 0x8267},
	{0x6201, 0x4223, 0x1326, 0x3304, 0x8337, 0x8157, 0x8267},
	{0x6201, 0x2315, 0x4113, 0x5102, 0x4223, 0x1326, 0x8337, 0x8157, 0x8267},
	{0x3304, 0x2315, 0x4113, 0x4223, 0x1326, 0x8337, 0x8157, 0x8267},
	{0x4113, 0x8157, 0x8267, 0x4223},
	{0x4113, 0x8157, 0x8267, 0x4223, 0x6201, 0x5102, 0x3304},
	{0x6201, 0x2315, 0x8157, 0x8267, 0x4223},
	{0x5102, 0x3304, 0x2315, 0x8157, 0x8267, 0x4223},
	{0x5102, 0x4113, 0x8157, 0x8267, 0x1326},
	{0x6201, 0x3304, 0x1326, 0x8267, 0x8157, 0x4113},
	{0x6201, 0x2315, 0x8157, 0x8267, 0x1326, 0x5102},
	{0x3304, 0x2315, 0x8157, 0x8267, 0x1326},
	{0x3304, 0x1146, 0x2245, 0x8337, 0x8157, 0x8267},
	{0x6201, 0x5102, 0x1146, 0x2245, 0x8337, 0x8157, 0x8267},
	{0x6201, 0x2315, 0x4113, 0x3304, 0x1146, 0x2245, 0x8337, 0x8157, 0x8267},
	{0x5102, 0x1146, 0x2245, 0x2315, 0x4113, 0x8337, 0x8157, 0x8267},
	{0x5102, 0x4223, 0x1326, 0x3304, 0x1146, 0x2245, 0x8337, 0x8157, 0x8267},
	{0x6201, 0x4223, 0x1326, 0x1146, 0x2245, 0x8337, 0x8157, 0x8267},
	{0x6201, 0x2315, 0x4113, 0x5102, 0x4223, 0x1326, 0x3304, 0x1146, 0x2245, 0x8337, 0x8157, 0x8267},
	{0x4113, 0x4223, 0x1326, 0x1146, 0x2245, 0x2315, 0x8337, 0x8157, 0x8267},
	{0x4113, 0x8157, 0x8267, 0x4223, 0x3304, 0x1146, 0x2245},
	{0x6201, 0x5102, 0x1146, 0x2245, 0x4113, 0x8157, 0x8267, 0x4223},
	{0x6201, 0x2315, 0x8157, 0x8267, 0x4223, 0x3304, 0x1146, 0x2245},
	{0x5102, 0x1146, 0x2245, 0x2315, 0x8157, 0x8267, 0x4223},
	{0x5102, 0x4113, 0x8157, 0x8267, 0x1326, 0x3304, 0x1146, 0x2245},
	{0x6201, 0x4113, 0x8157, 0x8267, 0x1326, 0x1146, 0x2245},
	{0x6201, 0x2315, 0x8157, 0x8267, 0x1326, 0x5102, 0x3304, 0x1146, 0x2245},
	{0x2315, 0x8157, 0x8267, 0x1326, 0x1146, 0x2245},
	{0x2315, 0x2245, 0x8267, 0x8337},
	{0x2315, 0x2245, 0x8267, 0x8337, 0x6201, 0x5102, 0x3304},
	{0x6201, 0x2245, 0x8267, 0x8337, 0x4113},
	{0x5102, 0x4113, 0x8337, 0x8267, 0x2245, 0x3304},
	{0x2315, 0x2245, 0x8267, 0x8337, 0x5102, 0x4223, 0x1326},
	{0x6201, 0x4223, 0x1326, 0x3304, 0x2315, 0x2245, 0x8267, 0x8337},
	{0x6201, 0x2245, 0x8267, 0x8337, 0x4113, 0x5102, 0x4223, 0x1326},
	{0x3304, 0x2245, 0x8267, 0x8337, 0x4113, 0x4223, 0x1326},
	{0x4113, 0x2315, 0x2245, 0x8267, 0x4223},
	{0x4113, 0x2315, 0x2245, 0x8267, 0x4223, 0x6201, 0x5102, 0x3304},
	{0x6201, 0x2245, 0x8267, 0x4223},
	{0x5102, 0x3304, 0x2245, 0x8267, 0x4223},
	{0x5102, 0x4113, 0x2315, 0x2245, 0x8267, 0x1326},
	{0x4113, 0x2315, 0x2245, 0x8267, 0x1326, 0x3304, 0x6201},
	{0x6201, 0x2245, 0x8267, 0x1326, 0x5102},
	{0x3304, 0x2245, 0x8267, 0x1326},
	{0x3304, 0x1146, 0x8267, 0x8337, 0x2315},
	{0x6201, 0x5102, 0x1146, 0x8267, 0x8337, 0x2315},
	{0x6201, 0x3304, 0x1146, 0x8267, 0x8337, 0x4113},
	{0x5102, 0x1146, 0x8267, 0x8337, 0x4113},
	{0x3304, 0x1146, 0x8267, 0x8337, 0x2315, 0x5102, 0x4223, 0x1326},
	{0x6201, 0x4223, 0x1326, 0x1146, 0x8267, 0x8337, 0x2315},
	{0x6201, 0x3304, 0x1146, 0x8267, 0x8337, 0x4113, 0x5102, 0x4223, 0x1326},
	{0x4113, 0x4223, 0x1326, 0x1146, 0x8267, 0x8337},
	{0x3304, 0x2315, 0x4113, 0x4223, 0x8267, 0x1146},
	{0x2315, 0x6201, 0x5102, 0x1146, 0x8267, 0x4223, 0x4113},
	{0x6201, 0x3304, 0x1146, 0x8267, 0x4223},
	{0x5102, 0x1146, 0x8267, 0x4223},
	{0x4113, 0x2315, 0x3304, 0x1146, 0x8267, 0x1326, 0x5102},
	{0x6201, 0x4113, 0x2315, 0x1326, 0x1146, 0x8267},
	{0x6201, 0x3304, 0x1146, 0x8267, 0x1326, 0x5102},
	{0x1326, 0x1146, 0x8267},
	{0x1326, 0x8337, 0x8157, 0x1146},
	{0x1326, 0x8337, 0x8157, 0x1146, 0x6201, 0x5102, 0x3304},
	{0x1326, 0x8337, 0x8157, 0x1146, 0x6201, 0x2315, 0x4113},
	{0x5102, 0x3304, 0x2315, 0x4113, 0x1326, 0x8337, 0x8157, 0x1146},
	{0x5102, 0x4223, 0x8337, 0x8157, 0x1146},
	{0x6201, 0x4223, 0x8337, 0x8157, 0x1146, 0x3304},
	{0x5102, 0x4223, 0x8337, 0x8157, 0x1146, 0x6201, 0x2315, 0x4113},
	{0x3304, 0x2315, 0x4113, 0x4223, 0x8337, 0x8157, 0x1146},
	{0x4113, 0x8157, 0x1146, 0x1326, 0x4223},
	{0x4113, 0x8157, 0x1146, 0x1326, 0x4223, 0x6201, 0x5102, 0x3304},
	{0x6201, 0x4223, 0x1326, 0x1146, 0x8157, 0x2315},
	{0x2315, 0x8157, 0x1146, 0x1326, 0x4223, 0x5102, 0x3304},
	{0x5102, 0x4113, 0x8157, 0x1146},
	{0x6201, 0x4113, 0x8157, 0x1146, 0x3304},
	{0x6201, 0x2315, 0x8157, 0x1146, 0x5102},
	{0x3304, 0x2315, 0x8157, 0x1146},
	{0x3304, 0x1326, 0x8337, 0x8157, 0x2245},
	{0x6201, 0x2245, 0x8157, 0x8337, 0x1326, 0x5102},
	{0x3304, 0x1326, 0x8337, 0x8157, 0x2245, 0x6201, 0x2315, 0x4113},
	{0x5102, 0x1326, 0x8337, 0x8157, 0x2245, 0x2315, 0x4113},
	{0x5102, 0x4223, 0x8337, 0x8157, 0x2245, 0x3304},
	{0x6201, 0x4223, 0x8337, 0x8157, 0x2245},
	{0x5102, 0x4223, 0x8337, 0x8157, 0x2245, 0x3304, 0x6201, 0x2315, 0x4113},
	{0x4223, 0x8337, 0x8157, 0x2245, 0x2315, 0x4113},
	{0x3304, 0x1326, 0x4223, 0x4113, 0x8157, 0x2245},
	{0x1326, 0x4223, 0x4113, 0x8157, 0x2245, 0x6201, 0x5102},
	{0x4223, 0x6201, 0x2315, 0x8157, 0x2245, 0x3304, 0x1326},
	{0x5102, 0x1326, 0x4223, 0x2315, 0x8157, 0x2245},
	{0x5102, 0x4113, 0x8157, 0x2245, 0x3304},
	{0x6201, 0x4113, 0x8157, 0x2245},
	{0x5102, 0x6201, 0x2315, 0x8157, 0x2245, 0x3304},
	{0x2315, 0x8157, 0x2245},
	{0x2315, 0x2245, 0x1146, 0x1326, 0x8337},
	{0x2315, 0x2245, 0x1146, 0x1326, 0x8337, 0x6201, 0x5102, 0x3304},
	{0x6201, 0x2245, 0x1146, 0x1326, 0x8337, 0x4113},
	{0x4113, 0x5102, 0x3304, 0x2245, 0x1146, 0x1326, 0x8337},
	{0x5102, 0x1146, 0x2245, 0x2315, 0x8337, 0x4223},
	{0x4223, 0x8337, 0x2315, 0x2245, 0x1146, 0x3304, 0x6201},
	{0x2245, 0x1146, 0x5102, 0x4223, 0x8337, 0x4113, 0x6201},
	{0x3304, 0x2245, 0x1146, 0x4113, 0x4223, 0x8337},
	{0x4113, 0x2315, 0x2245, 0x1146, 0x1326, 0x4223},
	{0x4113, 0x2315, 0x2245, 0x1146, 0x1326, 0x4223, 0x6201, 0x5102, 0x3304},
	{0x6201, 0x2245, 0x1146, 0x1326, 0x4223},
	{0x4223, 0x5102, 0x3304, 0x2245, 0x1146, 0x1326},
	{0x5102, 0x4113, 0x2315, 0x2245, 0x1146},
	{0x4113, 0x2315, 0x2245, 0x1146, 0x3304, 0x6201},
	{0x6201, 0x2245, 0x1146, 0x5102},
	{0x3304, 0x2245, 0x1146},
	{0x3304, 0x1326, 0x8337, 0x2315},
	{0x6201, 0x5102, 0x1326, 0x8337, 0x2315},
	{0x6201, 0x3304, 0x1326, 0x8337, 0x4113},
	{0x5102, 0x1326, 0x8337, 0x4113},
	{0x5102, 0x4223, 0x8337, 0x2315, 0x3304},
	{0x6201, 0x4223, 0x8337, 0x2315},
	{0x3304, 0x5102, 0x4223, 0x8337, 0x4113, 0x6201},
	{0x4113, 0x4223, 0x8337},
	{0x3304, 0x1326, 0x4223, 0x4113, 0x2315},
	{0x2315, 0x6201, 0x5102, 0x1326, 0x4223, 0x4113},
	{0x6201, 0x3304, 0x1326, 0x4223},
	{0x5102, 0x1326, 0x4223},
	{0x5102, 0x4113, 0x2315, 0x3304},
	{0x6201, 0x4113, 0x2315},
	{0x6201, 0x3304, 0x5102},
	{},
}
