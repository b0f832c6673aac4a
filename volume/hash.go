package volume

// Noise lattice values. Neighbouring chunks evaluate the same lattice points
// to identical values, so terrain surfaces line up across chunk borders.

// fmix32 is the murmur3 finalizer.
func fmix32(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// latticeValue2 returns a value in [0,1) for the lattice point (x, z).
func latticeValue2(seed uint32, x, z int32) float32 {
	h := fmix32(seed ^ uint32(x)*0x9e3779b1)
	h = fmix32(h ^ uint32(z)*0x27d4eb2f)
	return unitFloat(h)
}

// latticeValue3 returns a value in [0,1) for the lattice point (x, y, z).
func latticeValue3(seed uint32, x, y, z int32) float32 {
	h := fmix32(seed ^ uint32(x)*0x9e3779b1)
	h = fmix32(h ^ uint32(y)*0x27d4eb2f)
	h = fmix32(h ^ uint32(z)*0x165667b1)
	return unitFloat(h)
}

// unitFloat maps the top 24 bits of h to [0,1), exactly representable in float32.
func unitFloat(h uint32) float32 { return float32(h>>8) / (1 << 24) }
