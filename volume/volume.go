// Package volume provides density sources for the transvoxel extractor:
// dense chunk grids, signed distance field adapters and procedural terrain.
package volume

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/soypat/transvoxel"
)

var (
	errBadGridSize = errors.New("grid size must be positive")
	errBadScale    = errors.New("density scale must be positive")
)

// Grid is a dense block of density samples with its first sample at Origin.
// Reads outside of the grid are clamped to the nearest border sample so
// gradient estimation at the grid faces stays well defined.
//
// Grid is safe for concurrent reads.
type Grid struct {
	Origin     transvoxel.Vec
	nx, ny, nz int
	data       []int8
}

// NewGrid returns a grid of nx*ny*nz samples filled with fill.
func NewGrid(origin transvoxel.Vec, nx, ny, nz int, fill int8) (*Grid, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, errBadGridSize
	}
	g := &Grid{
		Origin: origin,
		nx:     nx, ny: ny, nz: nz,
		data: make([]int8, nx*ny*nz),
	}
	g.Fill(fill)
	return g, nil
}

// Size returns the number of samples along each axis.
func (g *Grid) Size() (nx, ny, nz int) { return g.nx, g.ny, g.nz }

// Fill sets every sample of the grid to d.
func (g *Grid) Fill(d int8) {
	for i := range g.data {
		g.data[i] = d
	}
}

// Set stores density d at lattice position p. Positions outside of the grid are ignored.
func (g *Grid) Set(p transvoxel.Vec, d int8) {
	local := p.Sub(g.Origin)
	if local.X < 0 || local.Y < 0 || local.Z < 0 || local.X >= g.nx || local.Y >= g.ny || local.Z >= g.nz {
		return
	}
	g.data[g.index(local.X, local.Y, local.Z)] = d
}

// Sample implements [transvoxel.Sampler].
func (g *Grid) Sample(p transvoxel.Vec) int8 {
	local := p.Sub(g.Origin)
	x := clamp(local.X, 0, g.nx-1)
	y := clamp(local.Y, 0, g.ny-1)
	z := clamp(local.Z, 0, g.nz-1)
	return g.data[g.index(x, y, z)]
}

func (g *Grid) index(x, y, z int) int {
	return (x*g.ny+y)*g.nz + z
}

// Quantize converts a distance to a density sample, rounding to nearest.
// scale is the density change per unit distance. The result saturates
// at ±127. NaN distances quantize to 0.
func Quantize(d, scale float32) int8 {
	v := math32.Floor(d*scale + 0.5)
	switch {
	case math32.IsNaN(v):
		return 0
	case v > 127:
		return 127
	case v < -127:
		return -127
	}
	return int8(v)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	} else if v > hi {
		return hi
	}
	return v
}
