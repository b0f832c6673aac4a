package transvoxel

// Sampler is a read-only signed density field over the integer lattice.
// Negative densities are inside the surface.
//
// Sample must be pure: the same coordinate always returns the same density.
// The extractor requests coordinates up to one lattice step outside of every
// cell corner for gradient estimation, so implementations must answer for them.
// Samplers shared between goroutines must be safe for concurrent reads.
type Sampler interface {
	Sample(p Vec) int8
}

// SamplerFunc adapts an ordinary function to the [Sampler] interface.
type SamplerFunc func(p Vec) int8

// Sample returns f(p).
func (f SamplerFunc) Sample(p Vec) int8 { return f(p) }
