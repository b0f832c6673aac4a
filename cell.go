package transvoxel

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
)

// edgeSpan is a lattice edge with a sign change between its endpoint densities.
type edgeSpan struct {
	p0, p1 Vec
	d0, d1 int8
}

// t returns the 8-bit fixed point interpolation parameter. t weighs p0, so t=0
// places the vertex at p1 and t=256 at p0. Equal densities return the midpoint.
func (s edgeSpan) t() int {
	d0, d1 := int(s.d0), int(s.d1)
	if d0 == d1 {
		return 128
	}
	return (d1 << 8) / (d1 - d0)
}

func (s edgeSpan) interpolate(t int) ms3.Vec {
	u := 256 - t
	return ms3.Vec{
		X: float32(s.p0.X*t+s.p1.X*u) / 256,
		Y: float32(s.p0.Y*t+s.p1.Y*u) / 256,
		Z: float32(s.p0.Z*t+s.p1.Z*u) / 256,
	}
}

// refine bisects the span on the lattice, keeping the half that contains the
// sign change, until the span is a single lattice step or cannot be halved
// exactly. The result depends only on the endpoints so neighbouring cells
// sharing the edge refine to the same span.
func (s edgeSpan) refine(sampler Sampler) edgeSpan {
	for {
		diff := s.p1.Sub(s.p0)
		n := abs(diff.X) + abs(diff.Y) + abs(diff.Z)
		if n <= 1 || n%2 != 0 {
			return s
		}
		pm := s.p0.Add(Vec{X: diff.X / 2, Y: diff.Y / 2, Z: diff.Z / 2})
		dm := sampler.Sample(pm)
		if (s.d0 < 0) != (dm < 0) {
			s.p1, s.d1 = pm, dm
		} else {
			s.p0, s.d0 = pm, dm
		}
	}
}

// gradientNormal estimates the surface normal at p by central differences
// at unit lattice step. The result points towards increasing density and is
// the zero vector where the gradient vanishes.
func gradientNormal(s Sampler, p Vec) ms3.Vec {
	n := ms3.Vec{
		X: 0.5 * (float32(s.Sample(Vec{X: p.X + 1, Y: p.Y, Z: p.Z})) - float32(s.Sample(Vec{X: p.X - 1, Y: p.Y, Z: p.Z}))),
		Y: 0.5 * (float32(s.Sample(Vec{X: p.X, Y: p.Y + 1, Z: p.Z})) - float32(s.Sample(Vec{X: p.X, Y: p.Y - 1, Z: p.Z}))),
		Z: 0.5 * (float32(s.Sample(Vec{X: p.X, Y: p.Y, Z: p.Z + 1})) - float32(s.Sample(Vec{X: p.X, Y: p.Y, Z: p.Z - 1}))),
	}
	norm := math32.Sqrt(n.X*n.X + n.Y*n.Y + n.Z*n.Z)
	if norm == 0 {
		return ms3.Vec{}
	}
	return ms3.Scale(1/norm, n)
}

// polygonizeCell triangulates a single regular cell. cell is the chunk-local
// cell coordinate and offset the lattice position of the chunk origin.
func (e *Extractor) polygonizeCell(offset, cell Vec, lod int) {
	e.stats.CellsVisited++
	base := offset.Add(cell.Scale(lod))

	var directionMask uint8
	if cell.X > 0 {
		directionMask |= 1
	}
	if cell.Z > 0 {
		directionMask |= 2
	}
	if cell.Y > 0 {
		directionMask |= 4
	}

	var (
		corners  [8]Vec
		density  [8]int8
		caseCode uint8
	)
	for i := range cornerIndex {
		corners[i] = base.Add(cornerIndex[i].Scale(lod))
		density[i] = e.s.Sample(corners[i])
		caseCode |= uint8(density[i]) >> 7 << i
	}
	if caseCode^uint8(density[7]>>7) == 0 {
		return // All corners on the same side, no surface crosses the cell.
	}
	e.stats.CellsPolygonized++

	// Corner normals are computed on first use.
	var (
		normals     [8]ms3.Vec
		haveNormals uint8
	)
	cornerNormal := func(i uint8) ms3.Vec {
		if haveNormals&(1<<i) == 0 {
			normals[i] = gradientNormal(e.s, corners[i])
			haveNormals |= 1 << i
		}
		return normals[i]
	}

	class := regularCellClass[caseCode]
	data := &regularCellData[class]
	vertexData := &regularVertexData[caseCode]
	vertCount := data.VertexCount()
	var mapped [12]uint32
	for i := 0; i < vertCount; i++ {
		code := vertexCode(vertexData[i])
		v0, v1 := code.corners()
		if v1 <= v0 {
			panic(fmt.Sprintf("transvoxel: corrupt vertex descriptor %#04x for case %d", uint16(code), caseCode))
		}
		dir, slot := code.reuseDir(), code.reuseSlot()

		idx, found := uint32(0), false
		owner, cacheable := cell, false
		inside := dir&directionMask == dir
		if e.UseCache && !code.ownedByCell() && (inside || !e.ChunkLocalReuse) {
			owner = cell.Sub(dirOffset(dir))
			cacheable = true
			idx, found = e.cache.get(cell, dir, slot)
			if found {
				e.stats.CacheHits++
			}
		}
		if !found {
			span := edgeSpan{p0: corners[v0], p1: corners[v1], d0: density[v0], d1: density[v1]}
			var n0, n1 ms3.Vec
			if e.refine && lod > 1 {
				span = span.refine(e.s)
				n0, n1 = gradientNormal(e.s, span.p0), gradientNormal(e.s, span.p1)
			} else {
				n0, n1 = cornerNormal(v0), cornerNormal(v1)
			}
			t := span.t()
			t0 := float32(t) / 256
			t1 := float32(256-t) / 256
			normal := ms3.Add(ms3.Scale(t0, n0), ms3.Scale(t1, n1))
			idx = e.mesh.AddVertex(span.interpolate(t), normal)
			e.stats.VerticesCreated++
			if cacheable && !inside {
				// Owner lies outside of the chunk. Publish the vertex under the
				// owner coordinate so the other cells sharing the edge find it.
				e.cache.set(owner, slot, idx)
			}
		}
		if e.UseCache && code.ownedByCell() {
			e.cache.set(cell, slot, idx)
		}
		mapped[i] = idx
	}

	for _, local := range data.Indices() {
		e.mesh.AddIndex(mapped[local])
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
