package volume

import (
	"github.com/chewxy/math32"
	"github.com/soypat/transvoxel"
)

// Terrain is a procedural heightfield density. Lattice points below the
// surface height are inside (negative). Y is up.
//
// Heights come from octaves of value noise over integer hashes so the field is
// deterministic for a given Seed and safe for concurrent reads.
type Terrain struct {
	Seed uint32
	// BaseHeight is the mean surface height in lattice units.
	BaseHeight float32
	// Amplitude of the first noise octave in lattice units.
	Amplitude float32
	// Wavelength of the first noise octave in lattice units.
	Wavelength float32
	// Octaves of noise. Each octave halves wavelength and amplitude.
	Octaves int
	// Roughness is the amplitude in lattice units of 3D noise added to the
	// heightfield. Non-zero values carve overhangs and floating islands.
	Roughness float32
	// Steepness is the density change per lattice step above or below the surface.
	Steepness float32
}

// Sample implements [transvoxel.Sampler].
func (t *Terrain) Sample(p transvoxel.Vec) int8 {
	x, y, z := float32(p.X), float32(p.Y), float32(p.Z)
	d := y - t.Height(x, z)
	if t.Roughness != 0 && t.Wavelength > 0 {
		wl := t.Wavelength / 2
		d += t.Roughness * (2*valueNoise3(^t.Seed, x/wl, y/wl, z/wl) - 1)
	}
	return Quantize(d, t.Steepness)
}

// Height returns the surface height at horizontal position (x, z).
func (t *Terrain) Height(x, z float32) float32 {
	h := t.BaseHeight
	amp := t.Amplitude
	wl := t.Wavelength
	for o := 0; o < max(t.Octaves, 1) && wl > 0; o++ {
		h += amp * (2*valueNoise2(t.Seed+uint32(o), x/wl, z/wl) - 1)
		amp /= 2
		wl /= 2
	}
	return h
}

// valueNoise2 returns smoothly interpolated lattice noise in [0,1].
func valueNoise2(seed uint32, x, z float32) float32 {
	x0, z0 := math32.Floor(x), math32.Floor(z)
	ix, iz := int32(x0), int32(z0)
	fx, fz := smoothstep(x-x0), smoothstep(z-z0)
	v00 := latticeValue2(seed, ix, iz)
	v10 := latticeValue2(seed, ix+1, iz)
	v01 := latticeValue2(seed, ix, iz+1)
	v11 := latticeValue2(seed, ix+1, iz+1)
	a := v00 + (v10-v00)*fx
	b := v01 + (v11-v01)*fx
	return a + (b-a)*fz
}

func smoothstep(t float32) float32 { return t * t * (3 - 2*t) }

// valueNoise3 returns trilinearly interpolated lattice noise in [0,1].
func valueNoise3(seed uint32, x, y, z float32) float32 {
	x0, y0, z0 := math32.Floor(x), math32.Floor(y), math32.Floor(z)
	ix, iy, iz := int32(x0), int32(y0), int32(z0)
	fx, fy, fz := smoothstep(x-x0), smoothstep(y-y0), smoothstep(z-z0)
	var c [2]float32
	for dy := int32(0); dy < 2; dy++ {
		v00 := latticeValue3(seed, ix, iy+dy, iz)
		v10 := latticeValue3(seed, ix+1, iy+dy, iz)
		v01 := latticeValue3(seed, ix, iy+dy, iz+1)
		v11 := latticeValue3(seed, ix+1, iy+dy, iz+1)
		a := v00 + (v10-v00)*fx
		b := v01 + (v11-v01)*fx
		c[dy] = a + (b-a)*fz
	}
	return c[0] + (c[1]-c[0])*fy
}
