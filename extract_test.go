package transvoxel_test

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/transvoxel"
)

const tol = 1e-5

// sphereSampler quantizes the distance to a sphere. Zero densities are pushed
// to +1 so no vertex lands exactly on a lattice point.
func sphereSampler(center ms3.Vec, radius, scale float32) transvoxel.Sampler {
	return transvoxel.SamplerFunc(func(p transvoxel.Vec) int8 {
		d := (ms3.Norm(ms3.Sub(p.ToMS3(), center)) - radius) * scale
		d = math32.Floor(d + 0.5)
		switch {
		case d > 127:
			return 127
		case d < -127:
			return -127
		case d == 0:
			return 1
		}
		return int8(d)
	})
}

// cornerSampler places density sign bits of caseCode on the corners of the
// unit cell at the origin. Coordinates outside the cell are clamped to it.
func cornerSampler(caseCode uint8) transvoxel.Sampler {
	return transvoxel.SamplerFunc(func(p transvoxel.Vec) int8 {
		x, y, z := clamp01(p.X), clamp01(p.Y), clamp01(p.Z)
		corner := x | z<<1 | y<<2
		if caseCode&(1<<corner) != 0 {
			return -64
		}
		return 64
	})
}

func clamp01(a int) int {
	return max(0, min(1, a))
}

func TestExtractAllCases(t *testing.T) {
	// Triangle counts per class of the published tables.
	for c := 1; c < 255; c++ {
		ext := transvoxel.NewExtractor(cornerSampler(uint8(c)))
		mesh, err := ext.ExtractMesh(transvoxel.Vec{}, transvoxel.Settings{MeshLength: 1, LevelOfDetail: 1})
		if err != nil {
			t.Fatal(err)
		}
		if mesh.TriangleCount() == 0 || mesh.TriangleCount() > 5 {
			t.Errorf("case %d: got %d triangles", c, mesh.TriangleCount())
		}
		if len(mesh.Indices)%3 != 0 {
			t.Errorf("case %d: index count %d not multiple of 3", c, len(mesh.Indices))
		}
		for _, idx := range mesh.Indices {
			if int(idx) >= mesh.VertexCount() {
				t.Fatalf("case %d: index %d out of range", c, idx)
			}
		}
		stats := ext.Stats()
		if stats.CellsVisited != 1 || stats.CellsPolygonized != 1 || stats.VerticesCreated != mesh.VertexCount() {
			t.Errorf("case %d: unexpected stats %+v", c, stats)
		}
		// Every vertex lies on a cell edge midpoint since all densities are ±64.
		for _, v := range mesh.Vertices {
			halves := 0
			for _, comp := range []float32{v.X, v.Y, v.Z} {
				if comp == 0.5 {
					halves++
				} else if comp != 0 && comp != 1 {
					halves = -10
				}
			}
			if halves != 1 {
				t.Errorf("case %d: vertex %v not an edge midpoint", c, v)
			}
		}
	}
}

func TestExtractEmpty(t *testing.T) {
	for _, density := range []int8{-5, 0, 100} {
		s := transvoxel.SamplerFunc(func(transvoxel.Vec) int8 { return density })
		mesh, err := transvoxel.ExtractMesh(s, transvoxel.Vec{X: -3, Y: 7}, transvoxel.Settings{MeshLength: 2, LevelOfDetail: 1})
		if err != nil {
			t.Fatal(err)
		}
		if mesh.VertexCount() != 0 || mesh.TriangleCount() != 0 {
			t.Errorf("uniform density %d: got %d vertices and %d triangles", density, mesh.VertexCount(), mesh.TriangleCount())
		}
		if mesh.LatestVertexIndex() != -1 {
			t.Errorf("want latest vertex index -1, got %d", mesh.LatestVertexIndex())
		}
	}
}

func TestExtractMidpoint(t *testing.T) {
	s := transvoxel.SamplerFunc(func(p transvoxel.Vec) int8 {
		if p == (transvoxel.Vec{}) {
			return -100
		}
		return 100
	})
	mesh, err := transvoxel.ExtractMesh(s, transvoxel.Vec{}, transvoxel.Settings{MeshLength: 1, LevelOfDetail: 1})
	if err != nil {
		t.Fatal(err)
	}
	if mesh.VertexCount() != 3 || mesh.TriangleCount() != 1 {
		t.Fatalf("got %d vertices %d triangles, want 3 and 1", mesh.VertexCount(), mesh.TriangleCount())
	}
	want := []ms3.Vec{{X: 0.5}, {Z: 0.5}, {Y: 0.5}}
	for i := range want {
		if mesh.Vertices[i] != want[i] {
			t.Errorf("vertex %d: got %v, want %v", i, mesh.Vertices[i], want[i])
		}
	}
	// Corner 0 has a vanishing gradient so its normal is zero. The blended
	// normal keeps only half of the neighbour corner's unit normal.
	if !ms3.EqualElem(mesh.Normals[0], ms3.Vec{X: 0.5}, tol) {
		t.Errorf("got normal %v, want (0.5,0,0)", mesh.Normals[0])
	}
}

func TestExtractRampNormals(t *testing.T) {
	s := transvoxel.SamplerFunc(func(p transvoxel.Vec) int8 {
		return int8(max(-127, min(127, 2*p.X-3)))
	})
	mesh, err := transvoxel.ExtractMesh(s, transvoxel.Vec{X: 1}, transvoxel.Settings{MeshLength: 1, LevelOfDetail: 1})
	if err != nil {
		t.Fatal(err)
	}
	if mesh.VertexCount() != 4 || mesh.TriangleCount() != 2 {
		t.Fatalf("got %d vertices %d triangles, want 4 and 2", mesh.VertexCount(), mesh.TriangleCount())
	}
	for i, v := range mesh.Vertices {
		if v.X != 1.5 {
			t.Errorf("vertex %d: got x=%g, want 1.5", i, v.X)
		}
		if !ms3.EqualElem(mesh.Normals[i], ms3.Vec{X: 1}, tol) {
			t.Errorf("vertex %d: got normal %v, want (1,0,0)", i, mesh.Normals[i])
		}
	}
}

func TestExtractWatertight(t *testing.T) {
	s := sphereSampler(ms3.Vec{X: 8.3, Y: 7.6, Z: 8.1}, 5.4, 16)
	for _, test := range []struct {
		length, lod int
		refine      bool
	}{
		{length: 16, lod: 1},
		{length: 8, lod: 2},
		{length: 8, lod: 2, refine: true},
		{length: 4, lod: 4, refine: true},
	} {
		t.Run(fmt.Sprintf("L%d_lod%d_refine%v", test.length, test.lod, test.refine), func(t *testing.T) {
			mesh, err := transvoxel.ExtractMesh(s, transvoxel.Vec{}, transvoxel.Settings{
				MeshLength:    test.length,
				LevelOfDetail: test.lod,
				RefineLOD:     test.refine,
			})
			if err != nil {
				t.Fatal(err)
			}
			if mesh.TriangleCount() == 0 {
				t.Fatal("no triangles")
			}
			// No two vertices share a position when the cache is on.
			seen := make(map[ms3.Vec]int)
			for i, v := range mesh.Vertices {
				if j, ok := seen[v]; ok {
					t.Fatalf("vertices %d and %d share position %v", i, j, v)
				}
				seen[v] = i
			}
			// Closed and consistently oriented: every directed edge appears once
			// along with its reverse.
			edges := make(map[[2]uint32]int)
			for i := 0; i < len(mesh.Indices); i += 3 {
				a, b, c := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
				edges[[2]uint32{a, b}]++
				edges[[2]uint32{b, c}]++
				edges[[2]uint32{c, a}]++
			}
			for e, n := range edges {
				if n != 1 || edges[[2]uint32{e[1], e[0]}] != 1 {
					t.Fatalf("edge %v used %d times, reverse %d times", e, n, edges[[2]uint32{e[1], e[0]}])
				}
			}
			// Sphere topology: V - E + F = 2.
			euler := mesh.VertexCount() - len(edges)/2 + mesh.TriangleCount()
			if euler != 2 {
				t.Errorf("got Euler characteristic %d, want 2", euler)
			}
		})
	}
}

// TestExtractChunkFaces checks vertices are shared across the low chunk faces
// where the owning cell lies outside of the chunk.
func TestExtractChunkFaces(t *testing.T) {
	s := sphereSampler(ms3.Vec{X: 0.3, Y: 0.2, Z: 0.4}, 6, 16)
	for _, offset := range []transvoxel.Vec{{X: -4, Y: -3, Z: -5}, {}} {
		mesh, err := transvoxel.ExtractMesh(s, offset, transvoxel.Settings{MeshLength: 10, LevelOfDetail: 1})
		if err != nil {
			t.Fatal(err)
		}
		seen := make(map[ms3.Vec]bool)
		for _, v := range mesh.Vertices {
			if seen[v] {
				t.Fatalf("offset %v: duplicate vertex %v", offset, v)
			}
			seen[v] = true
		}
	}
}

func TestExtractDeterministic(t *testing.T) {
	s := sphereSampler(ms3.Vec{X: 5, Y: 6, Z: 4}, 4.5, 10)
	cfg := transvoxel.Settings{MeshLength: 12, LevelOfDetail: 1}
	ext := transvoxel.NewExtractor(s)
	m1, err := ext.ExtractMesh(transvoxel.Vec{}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	// Reused extractor and a fresh one must produce identical output.
	m2, _ := ext.ExtractMesh(transvoxel.Vec{}, cfg)
	m3, _ := transvoxel.ExtractMesh(s, transvoxel.Vec{}, cfg)
	if !reflect.DeepEqual(m1, m2) || !reflect.DeepEqual(m1, m3) {
		t.Error("extraction is not deterministic")
	}
}

func TestExtractCacheDisabled(t *testing.T) {
	s := sphereSampler(ms3.Vec{X: 6.2, Y: 5.9, Z: 6.4}, 4.1, 12)
	cfg := transvoxel.Settings{MeshLength: 12, LevelOfDetail: 1}
	cached := transvoxel.NewExtractor(s)
	uncached := transvoxel.NewExtractor(s)
	uncached.UseCache = false
	m1, err := cached.ExtractMesh(transvoxel.Vec{}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := uncached.ExtractMesh(transvoxel.Vec{}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if m2.VertexCount() < m1.VertexCount() {
		t.Errorf("uncached extraction has fewer vertices: %d < %d", m2.VertexCount(), m1.VertexCount())
	}
	if uncached.Stats().CacheHits != 0 {
		t.Error("uncached extraction reported cache hits")
	}
	if cached.Stats().CacheHits == 0 {
		t.Error("cached extraction reported no cache hits")
	}
	t1 := sortedTriangles(m1)
	t2 := sortedTriangles(m2)
	if !reflect.DeepEqual(t1, t2) {
		t.Error("cache changed the extracted triangles")
	}
}

func sortedTriangles(m *transvoxel.Mesh) []ms3.Triangle {
	tris := m.AppendTriangles(nil)
	less := func(a, b ms3.Vec) bool {
		if a.X != b.X {
			return a.X < b.X
		}
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.Z < b.Z
	}
	sort.Slice(tris, func(i, j int) bool {
		for k := 0; k < 3; k++ {
			if tris[i][k] != tris[j][k] {
				return less(tris[i][k], tris[j][k])
			}
		}
		return false
	})
	return tris
}

func TestAppendTrianglesOutward(t *testing.T) {
	center := ms3.Vec{X: 8.3, Y: 7.6, Z: 8.1}
	mesh, err := transvoxel.ExtractMesh(sphereSampler(center, 5.4, 16), transvoxel.Vec{}, transvoxel.Settings{MeshLength: 16, LevelOfDetail: 1})
	if err != nil {
		t.Fatal(err)
	}
	tris := mesh.AppendTriangles(nil)
	if len(tris) != mesh.TriangleCount() {
		t.Fatalf("got %d triangles, want %d", len(tris), mesh.TriangleCount())
	}
	for i, tri := range tris {
		n := ms3.Cross(ms3.Sub(tri[1], tri[0]), ms3.Sub(tri[2], tri[0]))
		centroid := ms3.Scale(1./3, ms3.Add(tri[0], ms3.Add(tri[1], tri[2])))
		if ms3.Dot(n, ms3.Sub(centroid, center)) <= 0 {
			t.Fatalf("triangle %d points inwards", i)
		}
	}
}

// TestRefineLOD checks bisecting coarse edges moves vertices closer to the
// surface a full resolution extraction finds.
func TestRefineLOD(t *testing.T) {
	// Density crosses zero at x=sqrt(20) with a curvature linear interpolation
	// over 4 lattice units cannot follow.
	s := transvoxel.SamplerFunc(func(p transvoxel.Vec) int8 {
		return int8(max(-127, min(127, p.X*p.X-20)))
	})
	root := math32.Sqrt(20)
	cfg := transvoxel.Settings{MeshLength: 2, LevelOfDetail: 4}
	coarse, err := transvoxel.ExtractMesh(s, transvoxel.Vec{}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	cfg.RefineLOD = true
	refined, err := transvoxel.ExtractMesh(s, transvoxel.Vec{}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if coarse.VertexCount() == 0 || coarse.VertexCount() != refined.VertexCount() {
		t.Fatalf("vertex count mismatch %d vs %d", coarse.VertexCount(), refined.VertexCount())
	}
	for i := range refined.Vertices {
		errCoarse := math32.Abs(coarse.Vertices[i].X - root)
		errRefined := math32.Abs(refined.Vertices[i].X - root)
		if errRefined >= errCoarse {
			t.Errorf("vertex %d: refined error %g not below coarse error %g", i, errRefined, errCoarse)
		}
	}
	// Refinement has no effect at full resolution.
	cfg.LevelOfDetail = 1
	cfg.MeshLength = 8
	a, _ := transvoxel.ExtractMesh(s, transvoxel.Vec{}, cfg)
	cfg.RefineLOD = false
	b, _ := transvoxel.ExtractMesh(s, transvoxel.Vec{}, cfg)
	if !reflect.DeepEqual(a, b) {
		t.Error("refinement changed a full resolution extraction")
	}
}

func TestExtractErrors(t *testing.T) {
	s := sphereSampler(ms3.Vec{}, 2, 10)
	for _, test := range []struct {
		s    transvoxel.Sampler
		cfg  transvoxel.Settings
		want error
	}{
		{s: s, cfg: transvoxel.Settings{MeshLength: 0, LevelOfDetail: 1}, want: transvoxel.ErrBadMeshLength},
		{s: s, cfg: transvoxel.Settings{MeshLength: 4, LevelOfDetail: 0}, want: transvoxel.ErrBadLevelOfDetail},
		{s: s, cfg: transvoxel.Settings{MeshLength: 4, LevelOfDetail: -2}, want: transvoxel.ErrBadLevelOfDetail},
		{s: nil, cfg: transvoxel.Settings{MeshLength: 4, LevelOfDetail: 1}, want: transvoxel.ErrNilSampler},
	} {
		mesh, err := transvoxel.ExtractMesh(test.s, transvoxel.Vec{}, test.cfg)
		if !errors.Is(err, test.want) {
			t.Errorf("%+v: got error %v, want %v", test.cfg, err, test.want)
		}
		if mesh != nil {
			t.Error("want nil mesh on error")
		}
	}
}

func BenchmarkExtractMesh(b *testing.B) {
	s := sphereSampler(ms3.Vec{X: 16, Y: 16, Z: 16}, 11, 8)
	ext := transvoxel.NewExtractor(s)
	cfg := transvoxel.Settings{MeshLength: 32, LevelOfDetail: 1}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := ext.ExtractMesh(transvoxel.Vec{}, cfg)
		if err != nil {
			b.Fatal(err)
		}
	}
}
