package tvaux

import (
	"github.com/fogleman/simplify"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/transvoxel"
)

// MergeMeshes concatenates meshes into a new mesh. Mesh positions must share a
// coordinate system, which is the case for chunks of a single extraction.
// With weld set, vertices at identical positions are merged so chunk borders
// of equal level of detail join without seams. Welded normals are summed
// and renormalized.
func MergeMeshes(meshes []*transvoxel.Mesh, weld bool) *transvoxel.Mesh {
	merged := new(transvoxel.Mesh)
	var welded map[ms3.Vec]uint32
	if weld {
		welded = make(map[ms3.Vec]uint32)
	}
	var remap []uint32
	for _, m := range meshes {
		if m == nil {
			continue
		}
		remap = remap[:0]
		for i, v := range m.Vertices {
			n := m.Normals[i]
			if weld {
				if idx, ok := welded[v]; ok {
					merged.Normals[idx] = ms3.Add(merged.Normals[idx], n)
					remap = append(remap, idx)
					continue
				}
			}
			idx := merged.AddVertex(v, n)
			if weld {
				welded[v] = idx
			}
			remap = append(remap, idx)
		}
		for _, idx := range m.Indices {
			merged.AddIndex(remap[idx])
		}
	}
	if weld {
		for i, n := range merged.Normals {
			if norm := ms3.Norm(n); norm > 0 {
				merged.Normals[i] = ms3.Scale(1/norm, n)
			}
		}
	}
	return merged
}

// SimplifyTriangles decimates a triangle soup down to roughly factor times
// its triangle count using quadric error metrics.
func SimplifyTriangles(triangles []ms3.Triangle, factor float64) []ms3.Triangle {
	tris := make([]*simplify.Triangle, len(triangles))
	for i, t := range triangles {
		tris[i] = simplify.NewTriangle(toSimplify(t[0]), toSimplify(t[1]), toSimplify(t[2]))
	}
	mesh := simplify.NewMesh(tris).Simplify(factor)
	out := make([]ms3.Triangle, 0, len(mesh.Triangles))
	for _, t := range mesh.Triangles {
		out = append(out, ms3.Triangle{fromSimplify(t.V1), fromSimplify(t.V2), fromSimplify(t.V3)})
	}
	return out
}

func toSimplify(v ms3.Vec) simplify.Vector {
	return simplify.Vector{X: float64(v.X), Y: float64(v.Y), Z: float64(v.Z)}
}

func fromSimplify(v simplify.Vector) ms3.Vec {
	return ms3.Vec{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}
