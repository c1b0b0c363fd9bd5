package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and bake settings.
type Config struct {
	// Paths
	JobFile    string `json:"job_file"`
	TextureDir string `json:"texture_dir"`
	OutputDir  string `json:"output_dir"`

	// Bake settings
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Supersample int    `json:"supersample"`
	Workers     int    `json:"workers"`
	SaveLayers  bool   `json:"save_layers"`
	Format      string `json:"format"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	JobFile    string
	TextureDir string
	OutputDir  string
	Size       int
	Workers    int
	SaveLayers bool
	Format     string
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.JobFile != "" {
		c.JobFile = flags.JobFile
	}
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Size > 0 {
		c.Width = flags.Size
		c.Height = flags.Size
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.SaveLayers {
		c.SaveLayers = true
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}

	if c.OutputDir == "" && c.JobFile != "" {
		c.OutputDir = filepath.Join(filepath.Dir(c.JobFile), "bakes")
	}

	if c.Width <= 0 {
		c.Width = 1024
	}
	if c.Height <= 0 {
		c.Height = 1024
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Format == "" {
		c.Format = "webp"
	}
}
