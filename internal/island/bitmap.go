package island

import (
	"uvbake/internal/parallel"
	"uvbake/internal/raster"
)

// Bitmap is the per-pixel island membership of one batch of up to 64
// islands. Bit b of Mask[i] is set iff pixel i lies inside island b of
// the batch. Dilated grants a one-pixel bleed: for pixels outside every
// island it ORs the 3x3 neighborhood of Mask; for occupied pixels it
// equals Mask. A line's footprint may only merge into pixels whose
// Dilated word carries the owning island's bit.
type Bitmap struct {
	W, H    int
	Mask    []uint64
	Dilated []uint64
}

// NewBitmap allocates a zeroed bitmap pair for a w×h canvas.
func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{
		W:       w,
		H:       h,
		Mask:    make([]uint64, w*h),
		Dilated: make([]uint64, w*h),
	}
}

// Generate rasterizes islands [start, end) of the batch into the bitmap.
// Each island's triangles are solid-filled with its bit, then every
// triangle edge is stamped with a 3x3-plus seal so adjacent triangles of
// the same island cannot leave single-pixel cracks between their
// rasterized interiors. Dilation runs in parallel over rows.
func (b *Bitmap) Generate(islands []Island, start, end, workers int) {
	clear(b.Mask)
	clear(b.Dilated)

	w, h := b.W, b.H

	for i := start; i < end; i++ {
		val := uint64(1) << (i - start)
		or := func(x, y int) {
			if x < 0 || x >= w || y < 0 || y >= h {
				return
			}
			b.Mask[y*w+x] |= val
		}
		seal := raster.Plus3(w, h, or)

		tris := islands[i].Triangles
		for k := 0; k+6 <= len(tris); k += 6 {
			x0 := raster.PixelCoord(tris[k], w)
			y0 := raster.PixelCoord(tris[k+1], h)
			x1 := raster.PixelCoord(tris[k+2], w)
			y1 := raster.PixelCoord(tris[k+3], h)
			x2 := raster.PixelCoord(tris[k+4], w)
			y2 := raster.PixelCoord(tris[k+5], h)

			raster.FillTriangle(x0, y0, x1, y1, x2, y2, or)
			raster.DrawLine(x0, y0, x1, y1, seal)
			raster.DrawLine(x1, y1, x2, y2, seal)
			raster.DrawLine(x2, y2, x0, y0, seal)
		}
	}

	parallel.Rows(h, workers, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			for x := 0; x < w; x++ {
				idx := y*w + x
				if b.Mask[idx] != 0 {
					b.Dilated[idx] = b.Mask[idx]
					continue
				}
				var val uint64
				for j := 0; j < 9; j++ {
					ox := x + j%3 - 1
					oy := y + j/3 - 1
					if ox < 0 || ox >= w || oy < 0 || oy >= h {
						continue
					}
					val |= b.Mask[oy*w+ox]
				}
				b.Dilated[idx] = val
			}
		}
	})
}
