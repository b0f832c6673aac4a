package transvoxel

import "github.com/soypat/geometry/ms3"

// Mesh is an indexed triangle mesh. Vertices and Normals have the same length.
// Each consecutive triple of Indices is a triangle.
//
// Triangles are stored in lookup table winding: seen from the positive
// density side they wind clockwise. Use [Mesh.AppendTriangles] to get
// counter-clockwise triangles for formats such as STL.
type Mesh struct {
	Vertices []ms3.Vec
	Normals  []ms3.Vec
	Indices  []uint32
}

// AddVertex appends a vertex and returns its index. Indices increase monotonically from zero.
func (m *Mesh) AddVertex(pos, normal ms3.Vec) uint32 {
	m.Vertices = append(m.Vertices, pos)
	m.Normals = append(m.Normals, normal)
	return uint32(len(m.Vertices) - 1)
}

// AddIndex appends a single triangle index.
func (m *Mesh) AddIndex(i uint32) {
	m.Indices = append(m.Indices, i)
}

// LatestVertexIndex returns the index of the last added vertex or -1 if the mesh has no vertices.
func (m *Mesh) LatestVertexIndex() int {
	return len(m.Vertices) - 1
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Indices) / 3 }

// Reset discards mesh contents and keeps the allocated buffers.
func (m *Mesh) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Normals = m.Normals[:0]
	m.Indices = m.Indices[:0]
}

// AppendTriangles expands the indexed mesh into triangles and appends them to dst.
// Appended triangles are counter-clockwise when seen from the positive density side,
// which is the outside of solids whose interior is negative.
func (m *Mesh) AppendTriangles(dst []ms3.Triangle) []ms3.Triangle {
	v := m.Vertices
	for i := 0; i+2 < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		dst = append(dst, ms3.Triangle{v[a], v[c], v[b]})
	}
	return dst
}
