package tvaux

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/soypat/transvoxel"
	"github.com/soypat/transvoxel/volume"
	"gopkg.in/yaml.v3"
)

// Config configures a multi chunk extraction. It is usually loaded from a
// YAML document with [LoadConfig].
type Config struct {
	// Min and Max are the lattice corners of the extracted region. Max is
	// rounded up to whole chunks.
	Min transvoxel.Vec `yaml:"min"`
	Max transvoxel.Vec `yaml:"max"`
	// ChunkLength is the number of cells along each chunk axis.
	ChunkLength int `yaml:"chunk_length"`
	// LevelOfDetail is the lattice step between cell corners.
	LevelOfDetail int  `yaml:"level_of_detail"`
	RefineLOD     bool `yaml:"refine_lod"`
	// DisableReuse turns off vertex sharing between cells. Useful to debug tables.
	DisableReuse bool `yaml:"disable_reuse"`
	// Resolution is the world space length of one lattice step.
	Resolution float32 `yaml:"resolution"`
	// Workers extracting chunks concurrently. Zero uses one worker.
	Workers int `yaml:"workers"`
	// EnableCaching wraps each worker's sampler with a [volume.Cached]. Can cut
	// down on times for expensive samplers.
	EnableCaching bool `yaml:"enable_caching"`
	// Weld merges coincident vertices of neighbouring chunks in the merged mesh.
	Weld bool `yaml:"weld"`
	// Simplify decimates the merged triangles to the given fraction before
	// writing STL output. Zero or one disables decimation.
	Simplify float64 `yaml:"simplify"`
	// STLPath is the output path of the merged STL. Empty disables STL output.
	STLPath string `yaml:"stl_path"`
	// STLASCII writes an ASCII STL instead of a binary one.
	STLASCII bool `yaml:"stl_ascii"`
	// MeshDir is a directory where each non-empty chunk is stored as a mesh
	// blob. Empty disables blob output.
	MeshDir string `yaml:"mesh_dir"`
	Silent  bool   `yaml:"silent"`

	// Terrain configures the procedural terrain sampler used by [Config.Sampler].
	Terrain *TerrainConfig `yaml:"terrain,omitempty"`
}

// TerrainConfig is the YAML form of [volume.Terrain].
type TerrainConfig struct {
	Seed       uint32  `yaml:"seed"`
	BaseHeight float32 `yaml:"base_height"`
	Amplitude  float32 `yaml:"amplitude"`
	Wavelength float32 `yaml:"wavelength"`
	Octaves    int     `yaml:"octaves"`
	Roughness  float32 `yaml:"roughness"`
	Steepness  float32 `yaml:"steepness"`
}

// DefaultConfig returns a configuration extracting a single 32 cell chunk at
// full resolution.
func DefaultConfig() Config {
	return Config{
		Max:           transvoxel.Vec{X: 32, Y: 32, Z: 32},
		ChunkLength:   32,
		LevelOfDetail: 1,
		Resolution:    1,
		Workers:       1,
	}
}

// LoadConfig reads a YAML configuration from path. Fields missing from the
// document keep their [DefaultConfig] values. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate returns a non-nil error if cfg cannot be used by [Render].
func (cfg Config) Validate() error {
	settings := transvoxel.Settings{MeshLength: cfg.ChunkLength, LevelOfDetail: cfg.LevelOfDetail}
	if err := settings.Validate(); err != nil {
		return err
	}
	switch {
	case cfg.Max.X <= cfg.Min.X || cfg.Max.Y <= cfg.Min.Y || cfg.Max.Z <= cfg.Min.Z:
		return errors.New("empty extraction region")
	case cfg.Resolution <= 0:
		return errors.New("resolution must be positive")
	case cfg.Workers < 0:
		return errors.New("negative worker count")
	case cfg.Simplify < 0 || cfg.Simplify > 1:
		return errors.New("simplify factor must be within [0,1]")
	}
	if cfg.Terrain != nil && cfg.Terrain.Steepness <= 0 {
		return errors.New("terrain steepness must be positive")
	}
	return nil
}

// Settings returns the per chunk extraction settings.
func (cfg Config) Settings() transvoxel.Settings {
	return transvoxel.Settings{
		MeshLength:    cfg.ChunkLength,
		LevelOfDetail: cfg.LevelOfDetail,
		RefineLOD:     cfg.RefineLOD,
	}
}

// ChunkSpan returns the lattice length covered by one chunk along each axis.
func (cfg Config) ChunkSpan() int { return cfg.ChunkLength * cfg.LevelOfDetail }

// ChunkOffsets returns the lattice origin of every chunk in the region in
// x, y, z order.
func (cfg Config) ChunkOffsets() []transvoxel.Vec {
	span := cfg.ChunkSpan()
	if span <= 0 {
		return nil
	}
	var offsets []transvoxel.Vec
	for x := cfg.Min.X; x < cfg.Max.X; x += span {
		for y := cfg.Min.Y; y < cfg.Max.Y; y += span {
			for z := cfg.Min.Z; z < cfg.Max.Z; z += span {
				offsets = append(offsets, transvoxel.Vec{X: x, Y: y, Z: z})
			}
		}
	}
	return offsets
}

// Sampler returns the terrain sampler described by the configuration.
func (cfg Config) Sampler() (transvoxel.Sampler, error) {
	if cfg.Terrain == nil {
		return nil, errors.New("no sampler configured")
	}
	tc := cfg.Terrain
	return &volume.Terrain{
		Seed:       tc.Seed,
		BaseHeight: tc.BaseHeight,
		Amplitude:  tc.Amplitude,
		Wavelength: tc.Wavelength,
		Octaves:    tc.Octaves,
		Roughness:  tc.Roughness,
		Steepness:  tc.Steepness,
	}, nil
}
