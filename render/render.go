// Package render streams extracted meshes as world space triangles and
// writes them to STL files.
package render

import (
	"errors"
	"io"
	"slices"

	"github.com/soypat/geometry/ms3"
	"github.com/soypat/transvoxel"
)

// Renderer produces triangles in batches. ReadTriangles returns io.EOF once
// all triangles have been read.
type Renderer interface {
	ReadTriangles(dst []ms3.Triangle, userData any) (n int, err error)
}

// RenderAll reads triangles from r until io.EOF and returns them. Renderers
// with a Len method reporting their remaining triangles are read into a
// single allocation.
func RenderAll(r Renderer, userData any) ([]ms3.Triangle, error) {
	size := 4096
	if l, ok := r.(interface{ Len() int }); ok {
		size = l.Len() + 1 // Room for the read that returns io.EOF.
	}
	result := make([]ms3.Triangle, 0, size)
	for {
		if len(result) == cap(result) {
			result = slices.Grow(result, len(result))
		}
		n, err := r.ReadTriangles(result[len(result):cap(result)], userData)
		result = result[:len(result)+n]
		if err == io.EOF {
			return result, nil
		} else if err != nil {
			return result, err
		}
	}
}

// MeshRenderer reads the triangles of lattice space meshes scaled to world space.
// Triangles wind counter-clockwise seen from outside of the surface.
type MeshRenderer struct {
	meshes     []*transvoxel.Mesh
	resolution float32
	mesh       int
	index      int
}

// NewMeshRenderer returns a renderer over meshes. resolution is the world space
// length of one lattice step.
func NewMeshRenderer(resolution float32, meshes ...*transvoxel.Mesh) (*MeshRenderer, error) {
	if resolution <= 0 {
		return nil, errors.New("resolution must be positive")
	}
	return &MeshRenderer{meshes: meshes, resolution: resolution}, nil
}

// ReadTriangles implements [Renderer].
func (mr *MeshRenderer) ReadTriangles(dst []ms3.Triangle, _ any) (n int, err error) {
	if len(dst) == 0 {
		return 0, io.ErrShortBuffer
	}
	for n < len(dst) && mr.mesh < len(mr.meshes) {
		m := mr.meshes[mr.mesh]
		if mr.index+2 >= len(m.Indices) {
			mr.mesh++
			mr.index = 0
			continue
		}
		a := m.Vertices[m.Indices[mr.index]]
		b := m.Vertices[m.Indices[mr.index+1]]
		c := m.Vertices[m.Indices[mr.index+2]]
		dst[n] = ms3.Triangle{
			ms3.Scale(mr.resolution, a),
			ms3.Scale(mr.resolution, c),
			ms3.Scale(mr.resolution, b),
		}
		n++
		mr.index += 3
	}
	if mr.mesh >= len(mr.meshes) {
		return n, io.EOF
	}
	return n, nil
}

// Len returns the number of triangles left to read.
func (mr *MeshRenderer) Len() (n int) {
	for i := mr.mesh; i < len(mr.meshes); i++ {
		n += mr.meshes[i].TriangleCount()
	}
	if mr.mesh < len(mr.meshes) {
		n -= min(mr.index/3, mr.meshes[mr.mesh].TriangleCount())
	}
	return n
}

// Reset rewinds the renderer so triangles can be read again.
func (mr *MeshRenderer) Reset() {
	mr.mesh = 0
	mr.index = 0
}
