package volume_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/deadsy/sdfx/sdf"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/transvoxel"
	"github.com/soypat/transvoxel/volume"
)

func TestGrid(t *testing.T) {
	origin := transvoxel.Vec{X: -2, Y: 3, Z: 0}
	g, err := volume.NewGrid(origin, 4, 3, 2, 10)
	if err != nil {
		t.Fatal(err)
	}
	p := origin.Add(transvoxel.Vec{X: 3, Y: 2, Z: 1})
	g.Set(p, -7)
	if got := g.Sample(p); got != -7 {
		t.Errorf("got %d, want -7", got)
	}
	// Clamped reads past the far corner return the corner sample.
	if got := g.Sample(p.AddScalar(5)); got != -7 {
		t.Errorf("clamped read: got %d, want -7", got)
	}
	if got := g.Sample(origin.AddScalar(-3)); got != 10 {
		t.Errorf("clamped read: got %d, want 10", got)
	}
	g.Set(origin.AddScalar(-1), -100) // Ignored.
	if got := g.Sample(origin); got != 10 {
		t.Errorf("out of range Set modified grid: got %d", got)
	}
	nx, ny, nz := g.Size()
	if nx != 4 || ny != 3 || nz != 2 {
		t.Errorf("got size %d,%d,%d", nx, ny, nz)
	}
	_, err = volume.NewGrid(origin, 0, 1, 1, 0)
	if err == nil {
		t.Error("expected error for empty grid")
	}
}

func TestQuantize(t *testing.T) {
	for _, test := range []struct {
		d, scale float32
		want     int8
	}{
		{d: 0, scale: 1, want: 0},
		{d: 1.4, scale: 1, want: 1},
		{d: 1.6, scale: 1, want: 2},
		{d: -2.6, scale: 1, want: -3},
		{d: 10, scale: 100, want: 127},
		{d: -10, scale: 100, want: -127},
		{d: math32.NaN(), scale: 1, want: 0},
	} {
		got := volume.Quantize(test.d, test.scale)
		if got != test.want {
			t.Errorf("Quantize(%g, %g): got %d, want %d", test.d, test.scale, got, test.want)
		}
	}
}

func TestFromSDFX(t *testing.T) {
	sphere, err := sdf.Sphere3D(2)
	if err != nil {
		t.Fatal(err)
	}
	s := volume.FromSDFX(sphere)
	sc := volume.Scaling{Resolution: 0.25, Steepness: 16}
	min, max := sc.LatticeBounds(s.Bounds(), 1)
	// Sphere spans [-8,8] lattice steps plus padding.
	if min.X > -9 || min.Z > -9 || max.Y < 9 || min.X < -10 || max.X > 10 {
		t.Fatalf("got lattice bounds %v %v", min, max)
	}
	size := max.Sub(min).AddScalar(1)
	grid, err := volume.FromSDF(s, min, size.X, size.Y, size.Z, sc, nil)
	if err != nil {
		t.Fatal(err)
	}
	field, err := volume.NewField(s, sc)
	if err != nil {
		t.Fatal(err)
	}
	for x := min.X; x <= max.X; x++ {
		for y := min.Y; y <= max.Y; y++ {
			for z := min.Z; z <= max.Z; z++ {
				p := transvoxel.Vec{X: x, Y: y, Z: z}
				if g, f := grid.Sample(p), field.Sample(p); g != f {
					t.Fatalf("%v: grid %d != field %d", p, g, f)
				}
			}
		}
	}
	if field.Err() != nil {
		t.Fatal(field.Err())
	}
	if grid.Sample(transvoxel.Vec{}) >= 0 {
		t.Error("sphere center should be inside")
	}
	if grid.Sample(max) <= 0 {
		t.Error("bounding box corner should be outside")
	}

	mesh, err := transvoxel.ExtractMesh(grid, min, transvoxel.Settings{MeshLength: size.X - 1, LevelOfDetail: 1})
	if err != nil {
		t.Fatal(err)
	}
	if mesh.TriangleCount() == 0 {
		t.Fatal("no triangles extracted from sphere")
	}
	// Vertices lie within a lattice step of the sphere surface.
	for _, v := range mesh.Vertices {
		r := ms3.Norm(ms3.Scale(sc.Resolution, v))
		if math32.Abs(r-2) > sc.Resolution {
			t.Fatalf("vertex %v at radius %g", v, r)
		}
	}
}

func TestLatticeBounds(t *testing.T) {
	sc := volume.Scaling{Resolution: 0.5, Steepness: 8}
	for _, test := range []struct {
		bb       ms3.Box
		pad      int
		min, max transvoxel.Vec
	}{
		{
			bb:  ms3.Box{Min: ms3.Vec{X: -1.3, Y: 0.2, Z: -0.5}, Max: ms3.Vec{X: 1.3, Y: 1, Z: -0.2}},
			min: transvoxel.Vec{X: -3, Y: 0, Z: -1}, max: transvoxel.Vec{X: 3, Y: 2, Z: 0},
		},
		{
			bb:  ms3.Box{Min: ms3.Vec{X: -2, Y: -2, Z: -2}, Max: ms3.Vec{X: 2, Y: 2, Z: 2}},
			pad: 2,
			min: transvoxel.Vec{X: -6, Y: -6, Z: -6}, max: transvoxel.Vec{X: 6, Y: 6, Z: 6},
		},
	} {
		min, max := sc.LatticeBounds(test.bb, test.pad)
		if min != test.min || max != test.max {
			t.Errorf("%+v pad %d: got %v %v, want %v %v", test.bb, test.pad, min, max, test.min, test.max)
		}
	}
}

func TestFromSDFErrors(t *testing.T) {
	sphere, _ := sdf.Sphere3D(1)
	s := volume.FromSDFX(sphere)
	_, err := volume.FromSDF(s, transvoxel.Vec{}, 2, 2, 2, volume.Scaling{Resolution: 0, Steepness: 1}, nil)
	if err == nil {
		t.Error("expected error for zero resolution")
	}
	_, err = volume.FromSDF(nil, transvoxel.Vec{}, 2, 2, 2, volume.Scaling{Resolution: 1, Steepness: 1}, nil)
	if err == nil {
		t.Error("expected error for nil SDF")
	}
	err = s.Evaluate(make([]ms3.Vec, 2), make([]float32, 1), nil)
	if err == nil {
		t.Error("expected buffer length mismatch error")
	}
}

func TestCached(t *testing.T) {
	calls := 0
	base := transvoxel.SamplerFunc(func(p transvoxel.Vec) int8 {
		calls++
		return int8(p.X - p.Y)
	})
	var c volume.Cached
	c.Reset(base)
	for i := 0; i < 3; i++ {
		if got := c.Sample(transvoxel.Vec{X: 5, Y: 2}); got != 3 {
			t.Fatalf("got %d, want 3", got)
		}
	}
	if calls != 1 || c.CacheHits() != 2 || c.Evaluations() != 3 {
		t.Errorf("calls=%d hits=%d evals=%d", calls, c.CacheHits(), c.Evaluations())
	}
	c.Reset(base)
	c.Sample(transvoxel.Vec{X: 5, Y: 2})
	if calls != 2 || c.CacheHits() != 0 {
		t.Errorf("reset did not clear cache: calls=%d hits=%d", calls, c.CacheHits())
	}
}

func TestTerrain(t *testing.T) {
	terrain := &volume.Terrain{
		Seed:       42,
		BaseHeight: 16,
		Amplitude:  4,
		Wavelength: 16,
		Octaves:    3,
		Steepness:  8,
	}
	for x := -20; x < 20; x += 3 {
		for z := -20; z < 20; z += 5 {
			h := terrain.Height(float32(x), float32(z))
			if h < 16-8 || h > 16+8 {
				t.Fatalf("height %g out of amplitude range", h)
			}
			below := transvoxel.Vec{X: x, Y: int(h) - 2, Z: z}
			above := transvoxel.Vec{X: x, Y: int(h) + 2, Z: z}
			if terrain.Sample(below) >= 0 || terrain.Sample(above) <= 0 {
				t.Fatalf("(%d,%d): wrong sign around height %g", x, z, h)
			}
		}
	}
	other := *terrain
	if other.Height(3.5, 7.25) != terrain.Height(3.5, 7.25) {
		t.Error("terrain not deterministic")
	}
	other.Seed++
	if other.Height(3.5, 7.25) == terrain.Height(3.5, 7.25) {
		t.Error("seed has no effect")
	}

	terrain.Roughness = 3
	mesh, err := transvoxel.ExtractMesh(terrain, transvoxel.Vec{X: -8, Y: 4, Z: -8}, transvoxel.Settings{MeshLength: 16, LevelOfDetail: 2})
	if err != nil {
		t.Fatal(err)
	}
	if mesh.TriangleCount() == 0 {
		t.Error("no terrain surface extracted")
	}
}
