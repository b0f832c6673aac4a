// Package tvaux provides auxiliary functions to extract large regions of a
// density field chunk by chunk and write the result to disk. Applications with
// their own scheduling should drive [transvoxel.Extractor] directly.
package tvaux

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/chewxy/math32"
	"github.com/soypat/transvoxel"
	"github.com/soypat/transvoxel/meshio"
	"github.com/soypat/transvoxel/render"
	"github.com/soypat/transvoxel/volume"
)

// Chunk is the extraction result of one chunk. Mesh positions are in lattice units.
type Chunk struct {
	Offset transvoxel.Vec
	Mesh   *transvoxel.Mesh
	Stats  transvoxel.Stats
}

// Result summarizes a call to [Render].
type Result struct {
	Chunks []Chunk
	// Merged holds all chunk meshes in a single mesh, welded if configured.
	Merged    *transvoxel.Mesh
	Triangles int
	// CacheHits and Evaluations count sampler calls when caching is enabled.
	CacheHits   uint64
	Evaluations uint64
}

// Extract polygonizes every chunk of the configured region using cfg.Workers
// goroutines, each with its own [transvoxel.Extractor]. s must be safe for
// concurrent reads. Cancellation of ctx is observed between chunks. Chunks are
// returned in the order of [Config.ChunkOffsets].
func Extract(ctx context.Context, s transvoxel.Sampler, cfg Config) ([]Chunk, error) {
	if s == nil {
		return nil, transvoxel.ErrNilSampler
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	chunks, _, _, err := extract(ctx, s, cfg)
	return chunks, err
}

func extract(ctx context.Context, s transvoxel.Sampler, cfg Config) (chunks []Chunk, hits, evals uint64, err error) {
	offsets := cfg.ChunkOffsets()
	chunks = make([]Chunk, len(offsets))
	workers := min(max(cfg.Workers, 1), len(offsets))
	settings := cfg.Settings()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	jobs := make(chan int)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
			cancel()
		}
		mu.Unlock()
	}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			sampler := s
			var cache volume.Cached
			if cfg.EnableCaching {
				sampler = &cache
			}
			ext := transvoxel.NewExtractor(sampler)
			ext.UseCache = !cfg.DisableReuse
			for i := range jobs {
				if ctx.Err() != nil {
					continue // Drain.
				}
				if cfg.EnableCaching {
					cache.Reset(s)
				}
				mesh, err := ext.ExtractMesh(offsets[i], settings)
				if err != nil {
					fail(fmt.Errorf("chunk %v: %w", offsets[i], err))
					continue
				}
				chunks[i] = Chunk{Offset: offsets[i], Mesh: mesh, Stats: ext.Stats()}
				if cfg.EnableCaching {
					mu.Lock()
					hits += cache.CacheHits()
					evals += cache.Evaluations()
					mu.Unlock()
				}
			}
		}()
	}
SEND:
	for i := range offsets {
		select {
		case <-ctx.Done():
			break SEND
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()
	if firstErr != nil {
		return nil, hits, evals, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, hits, evals, err
	}
	return chunks, hits, evals, nil
}

// Render extracts the configured region and writes the configured outputs.
// The merged STL is written in world space, scaled by cfg.Resolution.
func Render(ctx context.Context, s transvoxel.Sampler, cfg Config) (Result, error) {
	var result Result
	if s == nil {
		return result, transvoxel.ErrNilSampler
	}
	if err := cfg.Validate(); err != nil {
		return result, err
	}
	log := func(args ...any) {
		if !cfg.Silent {
			fmt.Println(args...)
		}
	}
	watch := stopwatch()
	chunks, hits, evals, err := extract(ctx, s, cfg)
	if err != nil {
		return result, err
	}
	result.Chunks = chunks
	result.CacheHits, result.Evaluations = hits, evals
	var total transvoxel.Stats
	for _, c := range chunks {
		total.CellsVisited += c.Stats.CellsVisited
		total.CellsPolygonized += c.Stats.CellsPolygonized
		total.CacheHits += c.Stats.CacheHits
		total.VerticesCreated += c.Stats.VerticesCreated
	}
	log("extracted", len(chunks), "chunks in", watch(), "with", cfg.Workers, "workers:",
		total.CellsPolygonized, "of", total.CellsVisited, "cells polygonized,",
		percentInt(total.CacheHits, total.CacheHits+total.VerticesCreated), "percent vertices reused")
	if cfg.EnableCaching {
		log("sampler caching omitted", percentUint64(hits, evals), "percent of", evals, "samples")
	}

	meshes := make([]*transvoxel.Mesh, len(chunks))
	for i := range chunks {
		meshes[i] = chunks[i].Mesh
	}
	result.Merged = MergeMeshes(meshes, cfg.Weld)
	result.Triangles = result.Merged.TriangleCount()

	if cfg.MeshDir != "" {
		watch = stopwatch()
		written := 0
		for _, c := range chunks {
			if c.Mesh.TriangleCount() == 0 {
				continue
			}
			hdr := meshio.Header{
				Offset:        c.Offset,
				MeshLength:    cfg.ChunkLength,
				LevelOfDetail: cfg.LevelOfDetail,
				Resolution:    cfg.Resolution,
			}
			err = meshio.WriteFile(filepath.Join(cfg.MeshDir, ChunkFilename(c.Offset)), hdr, c.Mesh)
			if err != nil {
				return result, fmt.Errorf("writing chunk %v: %w", c.Offset, err)
			}
			written++
		}
		log("wrote", written, "mesh blobs to", cfg.MeshDir, "in", watch())
	}

	if cfg.STLPath != "" {
		if result.Triangles == 0 {
			return result, errors.New("no surface in region, refusing to write empty STL")
		}
		watch = stopwatch()
		renderer, err := render.NewMeshRenderer(cfg.Resolution, result.Merged)
		if err != nil {
			return result, err
		}
		triangles, err := render.RenderAll(renderer, nil)
		if err != nil {
			return result, fmt.Errorf("rendering triangles: %w", err)
		}
		if cfg.Simplify > 0 && cfg.Simplify < 1 {
			before := len(triangles)
			triangles = SimplifyTriangles(triangles, cfg.Simplify)
			log("simplified", before, "triangles to", len(triangles))
			result.Triangles = len(triangles)
		}
		fp, err := os.Create(cfg.STLPath)
		if err != nil {
			return result, err
		}
		if cfg.STLASCII {
			err = render.WriteASCIISTL(fp, "transvoxel", triangles)
		} else {
			_, err = render.WriteBinarySTL(fp, triangles)
		}
		if err != nil {
			fp.Close()
			return result, fmt.Errorf("writing STL file: %w", err)
		}
		if err = fp.Close(); err != nil {
			return result, err
		}
		log("wrote", fp.Name(), "with", len(triangles), "triangles in", watch())
	}
	return result, nil
}

// ChunkFilename returns the mesh blob filename of the chunk at offset.
func ChunkFilename(offset transvoxel.Vec) string {
	return fmt.Sprintf("chunk_%d_%d_%d.tvm", offset.X, offset.Y, offset.Z)
}

func stopwatch() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

func percentUint64(num, denom uint64) float32 {
	if denom == 0 {
		return 0
	}
	return math32.Trunc(10000*float32(num)/float32(denom)) / 100
}

func percentInt(num, denom int) float32 {
	return percentUint64(uint64(num), uint64(denom))
}
