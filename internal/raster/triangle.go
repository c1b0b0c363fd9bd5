package raster

// FillTriangle scan-converts a solid triangle, invoking plot for every
// covered pixel. Vertices are sorted by Y and the triangle is split into
// flat-bottom and flat-top halves at the middle vertex; each half is
// filled with horizontal scanlines driven through DrawLine, so the plot
// callback is the only write path. Zero-height triangles are skipped.
func FillTriangle(x0, y0, x1, y1, x2, y2 int, plot PixelFunc) {
	if y0 == y1 && y1 == y2 {
		return
	}

	var x, y [3]int
	if y0 <= y1 && y0 <= y2 {
		if y1 <= y2 {
			y = [3]int{y0, y1, y2}
			x = [3]int{x0, x1, x2}
		} else {
			y = [3]int{y0, y2, y1}
			x = [3]int{x0, x2, x1}
		}
	} else if y1 <= y0 && y1 <= y2 {
		if y0 <= y2 {
			y = [3]int{y1, y0, y2}
			x = [3]int{x1, x0, x2}
		} else {
			y = [3]int{y1, y2, y0}
			x = [3]int{x1, x2, x0}
		}
	} else {
		if y0 <= y1 {
			y = [3]int{y2, y0, y1}
			x = [3]int{x2, x0, x1}
		} else {
			y = [3]int{y2, y1, y0}
			x = [3]int{x2, x1, x0}
		}
	}

	switch {
	case y[1] == y[2]:
		fillBottomFlat(x[0], y[0], x[1], y[1], x[2], y[2], plot)
	case y[0] == y[1]:
		fillTopFlat(x[0], y[0], x[1], y[1], x[2], y[2], plot)
	default:
		x3 := int(float32(x[0]) + float32(y[1]-y[0])/float32(y[2]-y[0])*float32(x[2]-x[0]))
		y3 := y[1]
		fillBottomFlat(x[0], y[0], x[1], y[1], x3, y3, plot)
		fillTopFlat(x[1], y[1], x3, y3, x[2], y[2], plot)
	}
}

func fillBottomFlat(x0, y0, x1, y1, x2, y2 int, plot PixelFunc) {
	invSlope1 := float32(x1-x0) / float32(y1-y0)
	invSlope2 := float32(x2-x0) / float32(y2-y0)

	cx1 := float32(x0)
	cx2 := float32(x0)

	for y := y0; y <= y2; y++ {
		DrawLine(int(cx1), y, int(cx2), y, plot)
		cx1 += invSlope1
		cx2 += invSlope2
	}
}

func fillTopFlat(x0, y0, x1, y1, x2, y2 int, plot PixelFunc) {
	invSlope1 := float32(x2-x0) / float32(y2-y0)
	invSlope2 := float32(x2-x1) / float32(y2-y1)

	cx1 := float32(x2)
	cx2 := float32(x2)

	for y := y2; y >= y0; y-- {
		DrawLine(int(cx1), y, int(cx2), y, plot)
		cx1 -= invSlope1
		cx2 -= invSlope2
	}
}
