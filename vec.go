/*

Integer lattice vectors

*/

package transvoxel

import "github.com/soypat/geometry/ms3"

// Vec is an integer 3D lattice coordinate.
type Vec struct {
	X, Y, Z int
}

// Add adds two vectors. Return v = a + b.
func (a Vec) Add(b Vec) Vec {
	return Vec{X: a.X + b.X, Y: a.Y + b.Y, Z: a.Z + b.Z}
}

// Sub subtracts two vectors. Return v = a - b.
func (a Vec) Sub(b Vec) Vec {
	return Vec{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}

// Scale multiplies each component of the vector by k.
func (a Vec) Scale(k int) Vec {
	return Vec{X: a.X * k, Y: a.Y * k, Z: a.Z * k}
}

// AddScalar adds a scalar to each component of the vector.
func (a Vec) AddScalar(k int) Vec {
	return Vec{X: a.X + k, Y: a.Y + k, Z: a.Z + k}
}

// ToMS3 converts the lattice coordinate to a float32 vector.
func (a Vec) ToMS3() ms3.Vec {
	return ms3.Vec{X: float32(a.X), Y: float32(a.Y), Z: float32(a.Z)}
}
