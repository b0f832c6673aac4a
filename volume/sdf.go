package volume

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/transvoxel"
)

// SDF3 is a 3D signed distance field evaluated in batches.
type SDF3 interface {
	// Evaluate evaluates the signed distance field over pos positions.
	// dist and pos must be of same length. Resulting distances are stored
	// in dist.
	Evaluate(pos []ms3.Vec, dist []float32, userData any) error
	// Bounds returns the SDF's bounding box such that all of the shape is contained within.
	Bounds() ms3.Box
}

var (
	errEmptyBuffers         = errors.New("empty buffers")
	errMismatchBufferLength = errors.New("position and distance buffer length mismatch")
)

// Scaling maps the integer lattice to world space and distances to densities.
type Scaling struct {
	// Resolution is the world space length of one lattice step.
	Resolution float32
	// Steepness is the density change per lattice step away from the surface.
	// Densities saturate 127/Steepness lattice steps from the surface.
	Steepness float32
}

// Validate returns a non-nil error if the scaling cannot map distances.
func (sc Scaling) Validate() error {
	if sc.Resolution <= 0 || sc.Steepness <= 0 {
		return errBadScale
	}
	return nil
}

// World returns the world space position of lattice point p.
func (sc Scaling) World(p transvoxel.Vec) ms3.Vec {
	return ms3.Scale(sc.Resolution, p.ToMS3())
}

// Density quantizes a world space distance.
func (sc Scaling) Density(dist float32) int8 {
	return Quantize(dist, sc.Steepness/sc.Resolution)
}

// LatticeBounds returns the smallest lattice box containing bb, padded by
// pad lattice steps on every side.
func (sc Scaling) LatticeBounds(bb ms3.Box, pad int) (min, max transvoxel.Vec) {
	lo := ms3.Scale(1/sc.Resolution, bb.Min)
	hi := ms3.Scale(1/sc.Resolution, bb.Max)
	min = transvoxel.Vec{X: int(math32.Floor(lo.X)), Y: int(math32.Floor(lo.Y)), Z: int(math32.Floor(lo.Z))}.AddScalar(-pad)
	max = transvoxel.Vec{X: int(math32.Ceil(hi.X)), Y: int(math32.Ceil(hi.Y)), Z: int(math32.Ceil(hi.Z))}.AddScalar(pad)
	return min, max
}

// FromSDF evaluates s on the nx*ny*nz lattice points starting at origin and
// returns the quantized densities as a [Grid]. Positions are evaluated in a
// single batch per x layer.
func FromSDF(s SDF3, origin transvoxel.Vec, nx, ny, nz int, sc Scaling, userData any) (*Grid, error) {
	if s == nil {
		return nil, errors.New("nil SDF3")
	}
	err := sc.Validate()
	if err != nil {
		return nil, err
	}
	g, err := NewGrid(origin, nx, ny, nz, 0)
	if err != nil {
		return nil, err
	}
	layer := ny * nz
	pos := make([]ms3.Vec, layer)
	dist := make([]float32, layer)
	for x := 0; x < nx; x++ {
		i := 0
		for y := 0; y < ny; y++ {
			for z := 0; z < nz; z++ {
				pos[i] = sc.World(origin.Add(transvoxel.Vec{X: x, Y: y, Z: z}))
				i++
			}
		}
		err = s.Evaluate(pos, dist, userData)
		if err != nil {
			return nil, fmt.Errorf("evaluating layer %d: %w", x, err)
		}
		for i, d := range dist {
			g.data[x*layer+i] = sc.Density(d)
		}
	}
	return g, nil
}

// Field samples an [SDF3] one lattice point at a time. It allocates nothing
// per sample but is not safe for concurrent use, use one Field per goroutine.
type Field struct {
	sdf     SDF3
	scaling Scaling
	pos     [1]ms3.Vec
	dist    [1]float32
	err     error
}

// NewField returns a sampler of s. The SDF's evaluation errors are reported by [Field.Err].
func NewField(s SDF3, sc Scaling) (*Field, error) {
	if s == nil {
		return nil, errors.New("nil SDF3")
	}
	err := sc.Validate()
	if err != nil {
		return nil, err
	}
	return &Field{sdf: s, scaling: sc}, nil
}

// Sample implements [transvoxel.Sampler]. Points that fail to evaluate sample as
// outside of the surface.
func (f *Field) Sample(p transvoxel.Vec) int8 {
	f.pos[0] = f.scaling.World(p)
	err := f.sdf.Evaluate(f.pos[:], f.dist[:], nil)
	if err != nil {
		if f.err == nil {
			f.err = err
		}
		return 127
	}
	return f.scaling.Density(f.dist[0])
}

// Err returns the first evaluation error encountered by Sample.
func (f *Field) Err() error { return f.err }

// Bounds returns the bounding box of the underlying SDF.
func (f *Field) Bounds() ms3.Box { return f.sdf.Bounds() }

// FromSDFX adapts a github.com/deadsy/sdfx distance field to [SDF3].
func FromSDFX(s sdf.SDF3) SDF3 {
	return sdfxSDF3{s: s}
}

type sdfxSDF3 struct {
	s sdf.SDF3
}

func (s sdfxSDF3) Evaluate(pos []ms3.Vec, dist []float32, _ any) error {
	if len(pos) != len(dist) {
		return errMismatchBufferLength
	} else if len(pos) == 0 {
		return errEmptyBuffers
	}
	for i, p := range pos {
		dist[i] = float32(s.s.Evaluate(v3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}))
	}
	return nil
}

func (s sdfxSDF3) Bounds() ms3.Box {
	bb := s.s.BoundingBox()
	return ms3.Box{
		Min: ms3.Vec{X: float32(bb.Min.X), Y: float32(bb.Min.Y), Z: float32(bb.Min.Z)},
		Max: ms3.Vec{X: float32(bb.Max.X), Y: float32(bb.Max.Y), Z: float32(bb.Max.Z)},
	}
}
