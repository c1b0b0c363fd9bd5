package raster

import "github.com/chewxy/math32"

// PixelFunc is invoked for every pixel a primitive visits. Writers own
// their bounds checks; out-of-range writes are silently dropped.
type PixelFunc func(x, y int)

// StampFunc is invoked at sub-pixel positions along a float line walk.
type StampFunc func(x, y float32)

// DrawLine walks the integer Bresenham line from (x0,y0) to (x1,y1)
// inclusive, invoking plot at every visited pixel. The same loop serves
// inking, bitmap ORing, and seam stamping through the plot callback.
func DrawLine(x0, y0, x1, y1 int, plot PixelFunc) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	sx := 1
	if x0 >= x1 {
		sx = -1
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	dy = -dy
	sy := 1
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawLineFloat walks from (x0,y0) to (x1,y1) in uniform sub-pixel steps
// of at most spacing, invoking stamp at each position. Both endpoints are
// stamped, so the walked position set for A→B mirrors the one for B→A.
func DrawLineFloat(x0, y0, x1, y1, spacing float32, stamp StampFunc) {
	dist := math32.Hypot(x1-x0, y1-y0)
	iterations := int(math32.Ceil(dist / spacing))
	if iterations < 1 {
		iterations = 1
	}
	dx := (x1 - x0) / float32(iterations)
	dy := (y1 - y0) / float32(iterations)

	cx := x0
	cy := y0
	for i := 0; i <= iterations; i++ {
		stamp(cx, cy)
		cx += dx
		cy += dy
	}
}

// Plus3 wraps plot in a 3x3-plus stamp: the visited pixel and its four
// cardinal neighbors. Used to seal single-pixel cracks along triangle
// seams so the distance-field flood cannot escape through them.
func Plus3(w, h int, plot PixelFunc) PixelFunc {
	offsetX := [5]int{0, 0, -1, 1, 0}
	offsetY := [5]int{0, -1, 0, 0, 1}
	return func(x, y int) {
		for j := 0; j < 5; j++ {
			ox := x + offsetX[j]
			oy := y + offsetY[j]
			if ox < 0 || ox >= w || oy < 0 || oy >= h {
				continue
			}
			plot(ox, oy)
		}
	}
}

// PixelCoord maps a normalized UV coordinate to a pixel index in [0, size).
func PixelCoord(u float32, size int) int {
	p := int(u * float32(size))
	if p < 0 {
		return 0
	}
	if p >= size {
		return size - 1
	}
	return p
}

// PixelCoordRounded maps a normalized UV coordinate to the nearest pixel.
func PixelCoordRounded(u float32, size int) int {
	p := int(math32.Round(u * float32(size)))
	if p < 0 {
		return 0
	}
	if p >= size {
		return size - 1
	}
	return p
}

// PixelCoordCentered maps a normalized UV coordinate to the pixel whose
// center it is closest to. Used for distance-field seed lines.
func PixelCoordCentered(u float32, size int) int {
	p := int(math32.Round(u*float32(size) - 0.5))
	if p < 0 {
		return 0
	}
	if p >= size {
		return size - 1
	}
	return p
}
