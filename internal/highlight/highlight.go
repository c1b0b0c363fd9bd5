package highlight

import (
	"sync"

	"uvbake/internal/island"
)

const batchSize = 64

// Generate bakes the edge-highlight layer. lineData holds the three
// packed per-layer line streams, tuvData the packed triangulated-UV
// stream (one record per island, parallel to the line streams), and
// multipliers the per-layer intensity scales.
//
// Islands are processed in batches of 64. Per batch the island bitmap is
// generated once, then the batch's islands are distributed over workers;
// each worker draws whole lines serially on its own scratch plane and
// merges through the dilated mask, so the only shared mutation is the
// canvas max-blend. Batches are sequential: the next bitmap generation
// observes all previous merges.
//
// The result is a width×height RGBA float32 canvas with RGB=1 and the
// accumulated line intensity in alpha.
func Generate(lineData [3][]float32, tuvData []float32, multipliers [3]float32, width, height, workers int) []float32 {
	islands := island.ParseIslands(tuvData)
	var layers [3][]island.Lines
	for l := 0; l < 3; l++ {
		layers[l] = island.ParseLines(lineData[l])
	}

	if workers < 1 {
		workers = 1
	}

	canvas := newAlphaCanvas(width, height)
	bitmap := island.NewBitmap(width, height)

	scratches := make([]*Scratch, workers)
	for i := range scratches {
		scratches[i] = NewScratch(width, height)
	}

	for start := 0; start < len(islands); start += batchSize {
		end := min(start+batchSize, len(islands))
		bitmap.Generate(islands, start, end, workers)

		work := make(chan int, end-start)
		for k := start; k < end; k++ {
			work <- k
		}
		close(work)

		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(s *Scratch) {
				defer wg.Done()
				for k := range work {
					for l := 0; l < 3; l++ {
						if k >= len(layers[l]) {
							continue
						}
						drawIslandLines(canvas, bitmap, layers[l][k], s, multipliers[l])
					}
				}
			}(scratches[w])
		}
		wg.Wait()
	}

	// hard coded white, alpha carries the line intensity
	dst := make([]float32, width*height*4)
	for i := 0; i < width*height; i++ {
		dst[i*4] = 1
		dst[i*4+1] = 1
		dst[i*4+2] = 1
		dst[i*4+3] = canvas.at(i)
	}
	return dst
}
