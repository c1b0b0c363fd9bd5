package highlight

import (
	"github.com/chewxy/math32"

	"uvbake/internal/island"
	"uvbake/internal/raster"
)

// edgeAware wraps plot so a Bresenham walk along an island boundary inks
// the staircase pixels a straight line misses, without crossing into a
// neighboring island. For each cardinal neighbor n of the visited pixel:
// n is skipped if it carries any foreign island bit; otherwise n is
// written as soon as one of n's own cardinal neighbors falls off-canvas
// or lacks the owning bit. Pixels whose 4-neighborhood is fully interior
// are never written, so the ink stays a thin band hugging the boundary.
func edgeAware(bm *island.Bitmap, maskBit uint64, plot raster.PixelFunc) raster.PixelFunc {
	offsetX := [4]int{0, -1, 1, 0}
	offsetY := [4]int{-1, 0, 0, 1}
	w, h := bm.W, bm.H

	return func(x, y int) {
		for j := 0; j < 4; j++ {
			lx := x + offsetX[j]
			ly := y + offsetY[j]
			if lx < 0 || lx >= w || ly < 0 || ly >= h {
				continue
			}
			if bm.Mask[ly*w+lx]&^maskBit != 0 {
				continue
			}

			for k := 0; k < 4; k++ {
				lx2 := lx + offsetX[k]
				ly2 := ly + offsetY[k]
				if lx2 < 0 || lx2 >= w || ly2 < 0 || ly2 >= h {
					plot(lx, ly)
					break
				}
				if bm.Mask[ly2*w+lx2]&maskBit == 0 {
					plot(lx, ly)
					break
				}
			}
		}
	}
}

// inkEdgeAware rasterizes the line into the scratch with the edge-aware
// writer and seeds the dirty rectangle with the line's bbox plus its
// two-pixel reach.
func inkEdgeAware(bm *island.Bitmap, maskBit uint64, line island.LineData, s *Scratch) {
	x0 := raster.PixelCoord(line.XStart, s.w)
	y0 := raster.PixelCoord(line.YStart, s.h)
	x1 := raster.PixelCoord(line.XEnd, s.w)
	y1 := raster.PixelCoord(line.YEnd, s.h)

	s.setRect(min(x0, x1), min(y0, y1), max(x0, x1), max(y0, y1))
	s.pad(2)

	ink := func(x, y int) {
		if x < 0 || x >= s.w || y < 0 || y >= s.h {
			return
		}
		s.buf[y*s.w+x] = 1
	}
	raster.DrawLine(x0, y0, x1, y1, edgeAware(bm, maskBit, ink))
}

// stampThickness walks the line at sub-pixel spacing, max-blending a
// lazily built brush stamp at each position.
func stampThickness(line island.LineData, s *Scratch) {
	x0 := line.XStart * float32(s.w)
	y0 := line.YStart * float32(s.h)
	x1 := line.XEnd * float32(s.w)
	y1 := line.YEnd * float32(s.h)

	brush := raster.NewBrush(line.Thickness)
	s.pad(int(math32.Ceil(line.Thickness + 1)))

	spacing := line.Thickness / 10
	if spacing < 0.01 {
		spacing = 0.01
	}
	raster.DrawLineFloat(x0, y0, x1, y1, spacing, func(x, y float32) {
		brush.Stamp(s.buf, s.w, s.h, x, y)
	})
}

// blurSegment runs a separable Gaussian over the dirty rectangle. The
// vertical pass samples the scratch with reflection against the full
// canvas height into a rectangle-sized temp plane; the horizontal pass
// samples the temp plane with reflection against the rectangle width and
// writes back. blur of zero is an identity.
func blurSegment(blur float32, s *Scratch) {
	if blur == 0 {
		return
	}

	s.pad(int(math32.Ceil(blur)))
	s.constrain()

	baseX := s.x0
	baseY := s.y0
	areaWidth := s.x1 - s.x0
	areaHeight := s.y1 - s.y0
	if areaWidth <= 0 || areaHeight <= 0 {
		return
	}

	kw := raster.KernelWidth(blur)
	kc := kw / 2
	kernel := raster.BuildKernel(kw, blur)

	temp := make([]float32, areaWidth*areaHeight)

	for y := 0; y < areaHeight; y++ {
		yReal := y + baseY
		for x := 0; x < areaWidth; x++ {
			xReal := x + baseX
			var sum float32
			for i := -kc; i <= kc; i++ {
				y1 := raster.Reflect(s.h, yReal+i)
				sum += kernel[i+kc] * s.buf[y1*s.w+xReal]
			}
			temp[y*areaWidth+x] = sum
		}
	}

	for y := 0; y < areaHeight; y++ {
		yReal := y + baseY
		for x := 0; x < areaWidth; x++ {
			xReal := x + baseX
			var sum float32
			for i := -kc; i <= kc; i++ {
				x1 := raster.Reflect(areaWidth, x+i)
				if x1 < 0 || x1 >= areaWidth {
					continue
				}
				sum += kernel[i+kc] * temp[y*areaWidth+x1]
			}
			s.buf[yReal*s.w+xReal] = sum
		}
	}
}

// drawLine runs the full per-line pipeline into the scratch: edge-aware
// ink, thickness stamp, blur.
func drawLine(bm *island.Bitmap, maskBit uint64, line island.LineData, s *Scratch) {
	inkEdgeAware(bm, maskBit, line, s)
	stampThickness(line, s)
	blurSegment(line.Blur, s)
}

// drawIslandLines draws one island's lines for one layer, merging and
// clearing the scratch after each line.
func drawIslandLines(dst *alphaCanvas, bm *island.Bitmap, lines island.Lines, s *Scratch, multiplier float32) {
	maskBit := uint64(1) << lines.MaskBit
	for _, line := range lines.Lines {
		drawLine(bm, maskBit, line, s)
		s.merge(dst, bm, maskBit, multiplier)
	}
}
