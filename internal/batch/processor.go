package batch

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"uvbake/internal/compositor"
	"uvbake/internal/distfield"
	"uvbake/internal/highlight"
	"uvbake/internal/postprocess"
	"uvbake/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	JobDir      string // base for relative buffer paths
	OutputDir   string
	TexResolver texture.Resolver
	Width       int // default bake size for jobs that don't set one
	Height      int
	Supersample int
	Workers     int
	SaveLayers  bool
	Format      string // webp or png
}

// Result holds the outcome of processing one job.
type Result struct {
	Name     string
	Image    string
	AvgDepth float32
	Success  bool
	Error    string
}

// Run processes all jobs using a worker pool. Each worker bakes whole
// jobs serially; the bake core parallelizes internally as well, which
// the scheduler absorbs.
func Run(cfg Config, jobs []JobSpec) []Result {
	total := len(jobs)
	results := make([]Result, total)
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f bakes/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	jobChan := make(chan int, cfg.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < cfg.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobChan {
				results[idx] = processJob(cfg, jobs[idx])
				processed.Add(1)
			}
		}()
	}

	for i := range jobs {
		jobChan <- i
	}
	close(jobChan)

	wg.Wait()
	close(done)

	return results
}

func processJob(cfg Config, job JobSpec) Result {
	fail := func(err error) Result {
		return Result{Name: job.Name, Error: err.Error()}
	}

	w := job.Width
	if w <= 0 {
		w = cfg.Width
	}
	h := job.Height
	if h <= 0 {
		h = cfg.Height
	}
	ss := cfg.Supersample
	if ss < 1 {
		ss = 1
	}
	bw, bh := w*ss, h*ss

	var lineData [3][]float32
	for l := 0; l < 3; l++ {
		data, err := job.LineLayers[l].Load(cfg.JobDir)
		if err != nil {
			return fail(err)
		}
		lineData[l] = data
	}
	tuvData, err := job.Triangles.Load(cfg.JobDir)
	if err != nil {
		return fail(err)
	}
	uvData, err := job.UVLines.Load(cfg.JobDir)
	if err != nil {
		return fail(err)
	}

	edge := &texture.FloatImage{W: bw, H: bh,
		Pix: highlight.Generate(lineData, tuvData, job.Multipliers, bw, bh, cfg.Workers)}

	distPix, avgDepth := distfield.Generate(uvData, tuvData, bw, bh, job.Target, cfg.Workers)
	dist := texture.White(bw, bh)
	if distPix != nil {
		dist = &texture.FloatImage{W: bw, H: bh, Pix: distPix}
	}

	diffuse := resolveLayer(cfg, job.Diffuse, bw, bh)
	ao := resolveLayer(cfg, job.AO, bw, bh)

	comp := &texture.FloatImage{W: bw, H: bh,
		Pix: compositor.CompositeFinal(diffuse.Pix, ao.Pix, edge.Pix, dist.Pix, bw, bh, job.MultiplyCount, cfg.Workers)}

	outName := fmt.Sprintf("%s.%s", job.Name, cfg.Format)
	if err := saveScaled(cfg, outName, comp, w, h); err != nil {
		return fail(err)
	}
	if cfg.SaveLayers {
		if err := saveScaled(cfg, fmt.Sprintf("%s_edge.%s", job.Name, cfg.Format), edge, w, h); err != nil {
			return fail(err)
		}
		if err := saveScaled(cfg, fmt.Sprintf("%s_dist.%s", job.Name, cfg.Format), dist, w, h); err != nil {
			return fail(err)
		}
	}

	return Result{Name: job.Name, Image: outName, AvgDepth: avgDepth, Success: true}
}

// resolveLayer fetches a named source texture fitted to the bake size,
// or neutral white when absent.
func resolveLayer(cfg Config, name string, w, h int) *texture.FloatImage {
	if name == "" || cfg.TexResolver == nil {
		return texture.White(w, h)
	}
	img := cfg.TexResolver.Resolve(name)
	if img == nil {
		return texture.White(w, h)
	}
	return postprocess.Resize(img, w, h)
}

func saveScaled(cfg Config, name string, img *texture.FloatImage, w, h int) error {
	return texture.Save(filepath.Join(cfg.OutputDir, name), postprocess.Resize(img, w, h))
}
