package batch

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
)

// Buffer is a packed float32 stream, either inline in the job file or in
// a little-endian .f32 file referenced by path.
type Buffer struct {
	Path string    `json:"path,omitempty"`
	Data []float32 `json:"data,omitempty"`
}

// Load returns the stream, reading the referenced file if needed.
// Relative paths resolve against baseDir.
func (b *Buffer) Load(baseDir string) ([]float32, error) {
	if b.Path == "" {
		return b.Data, nil
	}
	path := b.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	return ReadF32(path)
}

// ReadF32 reads a flat little-endian float32 file.
func ReadF32(path string) ([]float32, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read %s: %w", path, err)
	}
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("batch: %s is not a float32 stream (%d bytes)", path, len(raw))
	}
	out := make([]float32, len(raw)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return out, nil
}

// WriteF32 writes a flat little-endian float32 file.
func WriteF32(path string, data []float32) error {
	raw := make([]byte, len(data)*4)
	for i, v := range data {
		binary.LittleEndian.PutUint32(raw[i*4:], math.Float32bits(v))
	}
	return os.WriteFile(path, raw, 0644)
}

// JobSpec describes one bake: the packed UV geometry, the optional
// source textures, and the tuning knobs.
type JobSpec struct {
	Name   string `json:"name"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`

	// Three line layers, each the packed per-island stream
	// [count, maskBit, count × (x0 y0 x1 y1 thickness blur), ...].
	LineLayers [3]Buffer `json:"line_layers"`

	// Packed per-island triangulated UVs
	// [triangleCount, triangleCount × (x0 y0 x1 y1 x2 y2), ...].
	Triangles Buffer `json:"triangles"`

	// Flat [x0 y0 x1 y1 ...] seed edges for the distance field.
	UVLines Buffer `json:"uv_lines"`

	Diffuse string `json:"diffuse,omitempty"`
	AO      string `json:"ao,omitempty"`

	Multipliers   [3]float32 `json:"multipliers"`
	Target        int        `json:"target"`
	MultiplyCount int        `json:"multiply_count"`
}

// LoadJobs reads a JSON job list.
func LoadJobs(path string) ([]JobSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read %s: %w", path, err)
	}
	var jobs []JobSpec
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("batch: parse %s: %w", path, err)
	}
	for i := range jobs {
		if jobs[i].Name == "" {
			return nil, fmt.Errorf("batch: job %d has no name", i)
		}
	}
	return jobs, nil
}
