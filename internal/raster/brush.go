package raster

import "github.com/chewxy/math32"

// Brush is a pre-baked circular anti-aliased stamp: a square float grid
// where each cell holds clamp(thickness - dist(center), 0, 1), a solid
// disk with a one-pixel soft rim. Built lazily per line and discarded.
type Brush struct {
	data  []float32
	width int
}

// NewBrush bakes a stamp for the given radius. The grid carries one
// spare texel on each side so bilinear taps never leave it.
func NewBrush(thickness float32) *Brush {
	width := int(math32.Floor(thickness+1))*2 + 1
	data := make([]float32, width*width)

	cx := width / 2
	cy := width / 2

	for y := 0; y < width; y++ {
		for x := 0; x < width; x++ {
			tx := float32(x - cx)
			ty := float32(y - cy)
			dist := thickness - math32.Sqrt(ty*ty+tx*tx)
			data[y*width+x] = clamp01(dist)
		}
	}
	return &Brush{data: data, width: width}
}

// Width returns the side length of the stamp grid.
func (b *Brush) Width() int { return b.width }

// sample bilinearly reads the stamp at a fractional position, assumed in
// range.
func (b *Brush) sample(bx, by float32) float32 {
	ix := int(bx)
	iy := int(by)
	fx := bx - float32(ix)
	fy := by - float32(iy)

	idx1 := iy*b.width + ix
	idx2 := idx1 + b.width
	lerp1 := b.data[idx1]*(1-fx) + b.data[idx1+1]*fx
	lerp2 := b.data[idx2]*(1-fx) + b.data[idx2+1]*fx
	return lerp1*(1-fy) + lerp2*fy
}

// Stamp max-blends the brush into a single-channel w×h buffer at a
// floating-point position. The stamp is sampled in both the positive and
// negative fractional directions and the element-wise max taken, so a
// line drawn A→B matches the same line drawn B→A exactly.
func (b *Brush) Stamp(dst []float32, w, h int, x, y float32) {
	hw := b.width / 2
	hh := b.width / 2

	xStart := int(x) - hw
	yStart := int(y) - hh

	fx := x - float32(int(x))
	fy := y - float32(int(y))

	for y2 := yStart + 1; y2 < yStart+b.width-1; y2++ {
		for x2 := xStart + 1; x2 < xStart+b.width-1; x2++ {
			if x2 < 0 || x2 >= w || y2 < 0 || y2 >= h {
				continue
			}
			brushX := float32(x2 - xStart)
			brushY := float32(y2 - yStart)

			v1 := b.sample(brushX-fx, brushY-fy)
			v2 := b.sample(brushX+fx, brushY+fy)
			v := v1
			if v2 > v {
				v = v2
			}
			idx := y2*w + x2
			if v > dst[idx] {
				dst[idx] = v
			}
		}
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
