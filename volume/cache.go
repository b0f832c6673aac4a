package volume

import "github.com/soypat/transvoxel"

// Cached memoizes the densities of an expensive [transvoxel.Sampler].
// The extractor samples most lattice points several times since neighbouring
// cells share corners and gradient estimates overlap.
//
// Cached is not safe for concurrent use.
type Cached struct {
	s     transvoxel.Sampler
	m     map[transvoxel.Vec]int8
	hits  uint64
	evals uint64
}

// Reset sets the sampler to cache and reuses the underlying map. It also resets
// statistics such as evaluations and cache hits.
func (c *Cached) Reset(s transvoxel.Sampler) {
	if c.m == nil {
		c.m = make(map[transvoxel.Vec]int8)
	} else {
		clear(c.m)
	}
	*c = Cached{s: s, m: c.m}
}

// Sample implements [transvoxel.Sampler] with cached evaluation.
func (c *Cached) Sample(p transvoxel.Vec) int8 {
	c.evals++
	d, cached := c.m[p]
	if cached {
		c.hits++
		return d
	}
	d = c.s.Sample(p)
	c.m[p] = d
	return d
}

// CacheHits returns total amount of cached samples since the last reset.
func (c *Cached) CacheHits() uint64 { return c.hits }

// Evaluations returns total samples requested since the last reset, including cached.
func (c *Cached) Evaluations() uint64 { return c.evals }
