// Package meshio stores extracted meshes as compressed blobs.
//
// A blob is a zstd stream holding a single line JSON [Header] followed by a
// gob encoded mesh body. The header can be inspected without decoding the body.
package meshio

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/soypat/geometry/ms3"
	"github.com/soypat/transvoxel"
)

// Version is the blob format version written by [Write].
const Version = 1

// Header describes the mesh stored in a blob.
type Header struct {
	Version       int            `json:"version"`
	Offset        transvoxel.Vec `json:"offset"`
	MeshLength    int            `json:"mesh_length"`
	LevelOfDetail int            `json:"level_of_detail"`
	Resolution    float32        `json:"resolution,omitempty"`
	Vertices      int            `json:"vertices"`
	Triangles     int            `json:"triangles"`
}

type body struct {
	Vertices []ms3.Vec
	Normals  []ms3.Vec
	Indices  []uint32
}

var errMeshMismatch = errors.New("vertex and normal count mismatch")

// Write compresses mesh to w. The vertex and triangle counts of hdr are set
// from mesh and Version is filled in when zero.
func Write(w io.Writer, hdr Header, mesh *transvoxel.Mesh) error {
	if mesh == nil {
		return errors.New("nil mesh")
	} else if len(mesh.Vertices) != len(mesh.Normals) {
		return errMeshMismatch
	}
	if hdr.Version == 0 {
		hdr.Version = Version
	}
	hdr.Vertices = mesh.VertexCount()
	hdr.Triangles = mesh.TriangleCount()

	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	bw := bufio.NewWriterSize(enc, 256*1024)

	hb, err := json.Marshal(hdr)
	if err != nil {
		enc.Close()
		return err
	}
	if _, err := bw.Write(hb); err != nil {
		enc.Close()
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		enc.Close()
		return err
	}
	b := body{Vertices: mesh.Vertices, Normals: mesh.Normals, Indices: mesh.Indices}
	if err := gob.NewEncoder(bw).Encode(&b); err != nil {
		enc.Close()
		return fmt.Errorf("gob encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Read decompresses a blob written by [Write].
func Read(r io.Reader) (Header, *transvoxel.Mesh, error) {
	var hdr Header
	dec, err := zstd.NewReader(r)
	if err != nil {
		return hdr, nil, err
	}
	defer dec.Close()
	br := bufio.NewReaderSize(dec, 256*1024)
	hdr, err = readHeader(br)
	if err != nil {
		return hdr, nil, err
	}
	var b body
	if err := gob.NewDecoder(br).Decode(&b); err != nil {
		return hdr, nil, fmt.Errorf("gob decode: %w", err)
	}
	mesh := &transvoxel.Mesh{Vertices: b.Vertices, Normals: b.Normals, Indices: b.Indices}
	if len(mesh.Vertices) != len(mesh.Normals) {
		return hdr, nil, errMeshMismatch
	} else if mesh.VertexCount() != hdr.Vertices || mesh.TriangleCount() != hdr.Triangles {
		return hdr, nil, fmt.Errorf("header counts %d/%d do not match body %d/%d",
			hdr.Vertices, hdr.Triangles, mesh.VertexCount(), mesh.TriangleCount())
	}
	for _, idx := range mesh.Indices {
		if int(idx) >= len(mesh.Vertices) {
			return hdr, nil, fmt.Errorf("index %d out of range of %d vertices", idx, len(mesh.Vertices))
		}
	}
	return hdr, mesh, nil
}

// ReadHeader decompresses only the header of a blob.
func ReadHeader(r io.Reader) (Header, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return Header{}, err
	}
	defer dec.Close()
	return readHeader(bufio.NewReader(dec))
}

func readHeader(br *bufio.Reader) (Header, error) {
	var hdr Header
	line, err := br.ReadBytes('\n')
	if err != nil {
		return hdr, fmt.Errorf("reading header: %w", err)
	}
	if err := json.Unmarshal(line, &hdr); err != nil {
		return hdr, fmt.Errorf("decoding header: %w", err)
	}
	if hdr.Version != Version {
		return hdr, fmt.Errorf("unsupported mesh blob version %d", hdr.Version)
	}
	return hdr, nil
}

// WriteFile writes a blob to path, creating parent directories as needed.
func WriteFile(path string, hdr Header, mesh *transvoxel.Mesh) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	err = Write(f, hdr, mesh)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile reads a blob from path.
func ReadFile(path string) (Header, *transvoxel.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, nil, err
	}
	defer f.Close()
	return Read(f)
}
