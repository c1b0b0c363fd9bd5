package raster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collectLine(x0, y0, x1, y1 int) map[[2]int]bool {
	got := map[[2]int]bool{}
	DrawLine(x0, y0, x1, y1, func(x, y int) {
		got[[2]int{x, y}] = true
	})
	return got
}

func TestDrawLineEndpoints(t *testing.T) {
	got := collectLine(1, 1, 5, 3)
	assert.True(t, got[[2]int{1, 1}])
	assert.True(t, got[[2]int{5, 3}])

	// horizontal line visits every column exactly once
	got = collectLine(0, 2, 7, 2)
	assert.Len(t, got, 8)
	for x := 0; x <= 7; x++ {
		assert.True(t, got[[2]int{x, 2}])
	}
}

func TestDrawLineZeroLength(t *testing.T) {
	got := collectLine(3, 4, 3, 4)
	assert.Equal(t, map[[2]int]bool{{3, 4}: true}, got)
}

func TestDrawLineFloatZeroLength(t *testing.T) {
	positions := map[[2]float32]bool{}
	DrawLineFloat(2, 2, 2, 2, 0.01, func(x, y float32) {
		positions[[2]float32{x, y}] = true
	})
	assert.Equal(t, map[[2]float32]bool{{2, 2}: true}, positions)
}

func TestDrawLineFloatIncludesEndpoints(t *testing.T) {
	var first, last [2]float32
	n := 0
	DrawLineFloat(1, 1, 5, 1, 0.5, func(x, y float32) {
		if n == 0 {
			first = [2]float32{x, y}
		}
		last = [2]float32{x, y}
		n++
	})
	assert.Equal(t, [2]float32{1, 1}, first)
	assert.Equal(t, [2]float32{5, 1}, last)
	assert.Equal(t, 9, n)
}

func TestFillTriangleCoverage(t *testing.T) {
	got := map[[2]int]bool{}
	FillTriangle(0, 0, 7, 0, 0, 7, func(x, y int) {
		got[[2]int{x, y}] = true
	})

	// flat-top split: row y covers x in [0, 7-y]
	for y := 0; y <= 7; y++ {
		for x := 0; x <= 7; x++ {
			assert.Equal(t, x <= 7-y, got[[2]int{x, y}], "pixel (%d,%d)", x, y)
		}
	}
}

func TestFillTriangleDegenerate(t *testing.T) {
	count := 0
	FillTriangle(0, 3, 5, 3, 9, 3, func(x, y int) { count++ })
	assert.Zero(t, count)
}

func TestFillTriangleSplit(t *testing.T) {
	// a triangle needing the flat-bottom + flat-top split
	got := map[[2]int]bool{}
	FillTriangle(2, 0, 0, 4, 6, 8, func(x, y int) {
		got[[2]int{x, y}] = true
	})
	assert.True(t, got[[2]int{2, 0}])
	assert.True(t, got[[2]int{0, 4}])
	assert.True(t, got[[2]int{6, 8}])
	assert.False(t, got[[2]int{6, 0}])
}

func TestPlus3(t *testing.T) {
	got := map[[2]int]bool{}
	stamp := Plus3(8, 8, func(x, y int) { got[[2]int{x, y}] = true })
	stamp(0, 0)
	// corner: the two off-canvas arms are dropped
	assert.Equal(t, map[[2]int]bool{{0, 0}: true, {1, 0}: true, {0, 1}: true}, got)

	got = map[[2]int]bool{}
	stamp(3, 3)
	assert.Len(t, got, 5)
	assert.True(t, got[[2]int{3, 3}])
	assert.True(t, got[[2]int{2, 3}])
	assert.True(t, got[[2]int{4, 3}])
	assert.True(t, got[[2]int{3, 2}])
	assert.True(t, got[[2]int{3, 4}])
}

func TestKernelNormalized(t *testing.T) {
	for _, blur := range []float32{0.25, 0.5, 1, 2, 3.7, 5, 10, 25, 50} {
		kw := KernelWidth(blur)
		kernel := BuildKernel(kw, blur)
		require.Equal(t, kw, len(kernel))

		var sum float64
		for _, v := range kernel {
			sum += float64(v)
		}
		assert.InDelta(t, 1.0, sum, 1e-6, "blur=%v", blur)
	}
}

func TestReflect(t *testing.T) {
	assert.Equal(t, 0, Reflect(10, -1))
	assert.Equal(t, 2, Reflect(10, -3))
	assert.Equal(t, 9, Reflect(10, 10))
	assert.Equal(t, 7, Reflect(10, 12))
	assert.Equal(t, 5, Reflect(10, 5))
}

func TestPixelCoord(t *testing.T) {
	assert.Equal(t, 0, PixelCoord(0, 8))
	assert.Equal(t, 7, PixelCoord(1, 8))
	assert.Equal(t, 4, PixelCoord(0.5, 8))
	assert.Equal(t, 0, PixelCoord(-0.01, 8))

	assert.Equal(t, 16, PixelCoordCentered(0.5, 32))
	assert.Equal(t, 0, PixelCoordCentered(0, 32))
	assert.Equal(t, 31, PixelCoordCentered(1, 32))
}

// Stamping a line A→B and B→A must produce identical buffers: the brush
// samples in both fractional directions and takes the max, cancelling
// the half-pixel bias of linear sampling.
func TestBrushStampSymmetry(t *testing.T) {
	const w, h = 16, 16
	stampLine := func(x0, y0, x1, y1 float32) []float32 {
		buf := make([]float32, w*h)
		brush := NewBrush(3.5)
		DrawLineFloat(x0, y0, x1, y1, 0.5, func(x, y float32) {
			brush.Stamp(buf, w, h, x, y)
		})
		return buf
	}

	// dyadic endpoints and spacing: the walked positions are exact and
	// mirror each other, so the buffers match bit for bit
	fwd := stampLine(2, 4, 10, 4)
	rev := stampLine(10, 4, 2, 4)
	assert.Equal(t, fwd, rev)
}

func TestBrushCenterValue(t *testing.T) {
	b := NewBrush(1)
	assert.Equal(t, 5, b.Width())

	buf := make([]float32, 8*8)
	b.Stamp(buf, 8, 8, 4, 4)
	assert.Equal(t, float32(1), buf[4*8+4])
	assert.Equal(t, float32(0), buf[4*8+5])
	assert.Equal(t, float32(0), buf[3*8+4])
}
