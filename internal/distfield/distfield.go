package distfield

import (
	"uvbake/internal/parallel"
	"uvbake/internal/raster"
)

type cell struct {
	x, y int16
}

// Generate bakes the distance-field layer. uvData is a flat line stream
// [x0 y0 x1 y1 ...] of seed edges; tuvData a flat triangle stream
// [x0 y0 x1 y1 x2 y2 ...] whose rasterization masks which pixels the
// flood may reach. target is the floor intensity (0..255) at the
// farthest pixel.
//
// Returns a width×height RGBA float32 canvas (grayscale distance in RGB,
// alpha 1) and the average wavefront depth scaled by 4, a proxy for
// island thickness. Empty inputs or a zero-size canvas return (nil, 0).
func Generate(uvData, tuvData []float32, width, height, target, workers int) ([]float32, float32) {
	if len(uvData) == 0 || len(tuvData) == 0 || width == 0 || height == 0 {
		return nil, 0
	}

	mask := rasterizeMask(tuvData, width, height)
	seeds := rasterizeSeeds(uvData, width, height)

	mapping, maxDepth, distSum, distPixels := flood(mask, seeds, width, height)

	var pixelDiff float32
	if maxDepth > 0 {
		pixelDiff = float32(255-target) / 255 / float32(maxDepth)
	}
	dst := make([]float32, width*height*4)
	parallel.Rows(height, workers, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			for x := 0; x < width; x++ {
				val := 1 - pixelDiff*float32(mapping[y*width+x])
				idx := (y*width + x) * 4
				dst[idx] = val
				dst[idx+1] = val
				dst[idx+2] = val
				dst[idx+3] = 1
			}
		}
	})

	var retVal float32
	if distPixels > 0 {
		retVal = float32(distSum) / float32(distPixels) * 4
	}
	return dst, retVal
}

// rasterizeMask solid-fills every triangle into a byte mask and seals
// each triangle edge with a 3x3-plus stamp so the flood cannot leak
// through single-pixel cracks between adjacent triangles.
func rasterizeMask(tuvData []float32, width, height int) []uint8 {
	mask := make([]uint8, width*height)
	set := func(x, y int) {
		if x < 0 || x >= width || y < 0 || y >= height {
			return
		}
		mask[y*width+x] = 1
	}
	seal := raster.Plus3(width, height, set)

	for i := 0; i+6 <= len(tuvData); i += 6 {
		x0 := raster.PixelCoordRounded(tuvData[i], width)
		y0 := raster.PixelCoordRounded(tuvData[i+1], height)
		x1 := raster.PixelCoordRounded(tuvData[i+2], width)
		y1 := raster.PixelCoordRounded(tuvData[i+3], height)
		x2 := raster.PixelCoordRounded(tuvData[i+4], width)
		y2 := raster.PixelCoordRounded(tuvData[i+5], height)

		raster.FillTriangle(x0, y0, x1, y1, x2, y2, set)
		raster.DrawLine(x0, y0, x1, y1, seal)
		raster.DrawLine(x1, y1, x2, y2, seal)
		raster.DrawLine(x2, y2, x0, y0, seal)
	}
	return mask
}

// rasterizeSeeds draws the UV edge lines into a byte plane; set pixels
// are the distance-zero seeds.
func rasterizeSeeds(uvData []float32, width, height int) []uint8 {
	seeds := make([]uint8, width*height)
	set := func(x, y int) {
		if x < 0 || x >= width || y < 0 || y >= height {
			return
		}
		seeds[y*width+x] = 1
	}
	for i := 0; i+4 <= len(uvData); i += 4 {
		x0 := raster.PixelCoordCentered(uvData[i], width)
		y0 := raster.PixelCoordCentered(uvData[i+1], height)
		x1 := raster.PixelCoordCentered(uvData[i+2], width)
		y1 := raster.PixelCoordCentered(uvData[i+3], height)
		raster.DrawLine(x0, y0, x1, y1, set)
	}
	return seeds
}

// flood runs a wavefront BFS from the seed pixels across the mask using
// double-buffered open lists. Seeds carry depth 0; each expansion writes
// the neighbor's wavefront depth into mapping, restricted to unseen
// in-mask pixels (8-connected). The depth counter only advances after a
// step that actually added masked pixels, so a final empty step does not
// inflate it: on return depth equals the maximum recorded mapping value.
// distSum/distPixels count every flooded pixel once at its depth.
func flood(mask, seeds []uint8, width, height int) (mapping []int16, depth int16, distSum, distPixels int64) {
	mapping = make([]int16, width*height)
	seen := make([]uint8, width*height)

	open := make([]cell, 0, width*height)
	swap := make([]cell, 0, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if seeds[idx] != 0 {
				seen[idx] = 1
				open = append(open, cell{int16(x), int16(y)})
			}
		}
	}

	for len(open) > 0 {
		distSum += int64(depth) * int64(len(open))
		distPixels += int64(len(open))

		swap = swap[:0]
		for _, c := range open {
			for j := 0; j < 9; j++ {
				ox := int(c.x) + j%3 - 1
				oy := int(c.y) + j/3 - 1
				if ox < 0 || ox >= width || oy < 0 || oy >= height {
					continue
				}
				idx := oy*width + ox
				if seen[idx] != 0 || mask[idx] == 0 {
					continue
				}
				mapping[idx] = depth + 1
				seen[idx] = 1
				swap = append(swap, cell{int16(ox), int16(oy)})
			}
		}
		if len(swap) > 0 {
			depth++
		}
		open, swap = swap, open
	}
	return mapping, depth, distSum, distPixels
}
