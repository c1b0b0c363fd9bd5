package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"uvbake/internal/batch"
	"uvbake/internal/config"
	"uvbake/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	jobFile := flag.String("jobs", "", "Path to bake job list (JSON)")
	textureDir := flag.String("textures", "", "Directory of source textures")
	outputDir := flag.String("output", "", "Output directory (default: <jobs dir>/bakes)")
	size := flag.Int("size", 0, "Bake resolution for jobs that don't set one (default: 1024)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	testN := flag.Int("test", 0, "Bake only first N jobs for testing")
	saveLayers := flag.Bool("layers", false, "Also save edge-highlight and distance-field layers")
	format := flag.String("format", "", "Output format: webp or png (default: webp)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		JobFile:    *jobFile,
		TextureDir: *textureDir,
		OutputDir:  *outputDir,
		Size:       *size,
		Workers:    *workers,
		SaveLayers: *saveLayers,
		Format:     *format,
	})

	if cfg.JobFile == "" {
		fmt.Fprintln(os.Stderr, "Error: no job file. Use -jobs flag or config.json.")
		os.Exit(1)
	}

	jobs, err := batch.LoadJobs(cfg.JobFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading jobs: %v\n", err)
		os.Exit(1)
	}

	if *testN > 0 && *testN < len(jobs) {
		jobs = jobs[:*testN]
	}

	if len(jobs) == 0 {
		fmt.Println("No jobs to bake.")
		os.Exit(0)
	}

	// Build texture index
	var resolver texture.Resolver
	if cfg.TextureDir != "" {
		texIndex := texture.BuildIndex(cfg.TextureDir)
		resolver = texture.NewCache(texIndex)
		fmt.Printf("Textures: %d indexed\n", texIndex.Len())
	}

	fmt.Printf("UV Bake → %s\n", cfg.Format)
	fmt.Printf("Jobs: %d, Workers: %d, Size: %dx%d\n", len(jobs), cfg.Workers, cfg.Width, cfg.Height)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batch.Config{
		JobDir:      filepath.Dir(cfg.JobFile),
		OutputDir:   cfg.OutputDir,
		TexResolver: resolver,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		SaveLayers:  cfg.SaveLayers,
		Format:      cfg.Format,
	}

	results := batch.Run(batchCfg, jobs)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	success, failed := 0, 0
	var errors []batch.Result
	for _, r := range results {
		if r.Success {
			success++
		} else {
			failed++
			errors = append(errors, r)
		}
	}

	fmt.Printf("Baked: %d/%d\n", success, len(jobs))

	if len(errors) > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		limit := 20
		if len(errors) < limit {
			limit = len(errors)
		}
		for _, e := range errors[:limit] {
			fmt.Printf("  %s: %s\n", e.Name, e.Error)
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	os.MkdirAll(cfg.OutputDir, 0755)
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
