package render

import (
	"bytes"
	"errors"
	"io"

	"github.com/hschendel/stl"
	"github.com/soypat/geometry/ms3"
)

// WriteASCIISTL writes model triangles to w as an ASCII STL solid with the given name.
func WriteASCIISTL(w io.Writer, name string, model []ms3.Triangle) error {
	if len(model) == 0 {
		return errors.New("empty triangle slice")
	}
	solid := stl.Solid{
		Name:      name,
		IsAscii:   true,
		Triangles: make([]stl.Triangle, len(model)),
	}
	for i, t := range model {
		n := triangleNormal(t)
		solid.Triangles[i] = stl.Triangle{
			Normal:   stl.Vec3{n.X, n.Y, n.Z},
			Vertices: [3]stl.Vec3{toVec3(t[0]), toVec3(t[1]), toVec3(t[2])},
		}
	}
	return solid.WriteAll(w)
}

// ReadSTL reads an ASCII or binary STL stream. The stl package detects the
// format by seeking, so streams that are not an [io.ReadSeeker] are buffered.
func ReadSTL(r io.Reader) ([]ms3.Triangle, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		rs = bytes.NewReader(b)
	}
	solid, err := stl.ReadAll(rs)
	if err != nil {
		return nil, err
	}
	model := make([]ms3.Triangle, len(solid.Triangles))
	for i, t := range solid.Triangles {
		model[i] = ms3.Triangle{fromVec3(t.Vertices[0]), fromVec3(t.Vertices[1]), fromVec3(t.Vertices[2])}
	}
	return model, nil
}

func toVec3(v ms3.Vec) stl.Vec3 { return stl.Vec3{v.X, v.Y, v.Z} }

func fromVec3(v stl.Vec3) ms3.Vec { return ms3.Vec{X: v[0], Y: v[1], Z: v[2]} }
