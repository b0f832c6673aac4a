package transvoxel

import "errors"

// Errors returned by [Extractor.ExtractMesh] before any sampling takes place.
var (
	ErrNilSampler       = errors.New("transvoxel: nil sampler")
	ErrBadMeshLength    = errors.New("transvoxel: mesh length must be at least 1")
	ErrBadLevelOfDetail = errors.New("transvoxel: level of detail must be at least 1")
)

// Settings configures the extraction of a single chunk.
type Settings struct {
	// MeshLength is the number of cells along each axis of the chunk.
	MeshLength int
	// LevelOfDetail is the lattice step between neighbouring cell corners.
	// A chunk spans MeshLength*LevelOfDetail lattice units per axis.
	LevelOfDetail int
	// RefineLOD bisects crossing edges of coarse cells on the full resolution
	// lattice before interpolating, so vertices of a coarse chunk lie closer
	// to the vertices a finer chunk would produce. No effect when LevelOfDetail is 1.
	RefineLOD bool
}

// Validate returns a non-nil error if the settings cannot be used for extraction.
func (s Settings) Validate() error {
	switch {
	case s.MeshLength < 1:
		return ErrBadMeshLength
	case s.LevelOfDetail < 1:
		return ErrBadLevelOfDetail
	}
	return nil
}

// Stats counts the work done by the last extraction.
type Stats struct {
	CellsVisited     int
	CellsPolygonized int
	CacheHits        int
	VerticesCreated  int
}

// Extractor converts chunks of a density field to triangle meshes using the
// regular cells of the Transvoxel algorithm.
//
// An Extractor keeps its reuse cache between calls to avoid allocations and is
// not safe for concurrent use. Use one Extractor per goroutine.
type Extractor struct {
	// UseCache enables sharing of vertices between neighbouring cells.
	// When disabled every cell creates its own vertices. Enabled by [NewExtractor].
	UseCache bool
	// ChunkLocalReuse restricts sharing to vertices owned by cells inside the
	// chunk. Cells on the low chunk faces then create their own copies of the
	// vertices on those faces, as the classic Transvoxel reuse scheme does.
	// The triangles and vertex positions are unchanged.
	ChunkLocalReuse bool

	s      Sampler
	cache  reuseCache
	mesh   *Mesh
	refine bool
	stats  Stats
}

// NewExtractor returns an Extractor that samples s, with vertex reuse enabled.
func NewExtractor(s Sampler) *Extractor {
	return &Extractor{s: s, UseCache: true}
}

// Stats returns counters of the last call to [Extractor.ExtractMesh].
func (e *Extractor) Stats() Stats { return e.stats }

// ExtractMesh polygonizes the MeshLength^3 cells of the chunk whose first
// corner lies at offset. The returned mesh is in lattice coordinates and
// owned by the caller.
func (e *Extractor) ExtractMesh(offset Vec, cfg Settings) (*Mesh, error) {
	if e.s == nil {
		return nil, ErrNilSampler
	}
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	e.stats = Stats{}
	e.refine = cfg.RefineLOD
	if e.UseCache {
		e.cache.reset(cfg.MeshLength)
	}
	mesh := new(Mesh)
	e.mesh = mesh
	defer func() { e.mesh = nil }()

	n := cfg.MeshLength
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				e.polygonizeCell(offset, Vec{X: x, Y: y, Z: z}, cfg.LevelOfDetail)
			}
		}
	}
	return mesh, nil
}

// ExtractMesh is a convenience wrapper that extracts a single chunk of s with a new Extractor.
func ExtractMesh(s Sampler, offset Vec, cfg Settings) (*Mesh, error) {
	return NewExtractor(s).ExtractMesh(offset, cfg)
}
