package compositor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSRGBRoundTrip(t *testing.T) {
	for _, v := range []float32{0, 0.001, 0.0031308, 0.02, 0.04045, 0.18, 0.5, 0.73, 1} {
		assert.InDelta(t, v, ToSRGB(ToLinear(v)), 1e-5, "v=%v", v)
		assert.InDelta(t, v, ToLinear(ToSRGB(v)), 1e-5, "v=%v", v)
	}
}

func TestSRGBAnchors(t *testing.T) {
	assert.Zero(t, ToLinear(0))
	assert.InDelta(t, 1, ToLinear(1), 1e-6)
	// linear segment below the split
	assert.InDelta(t, 0.02/12.92, ToLinear(0.02), 1e-7)
}

func pixel(r, g, b, a float32) []float32 {
	return []float32{r, g, b, a}
}

func TestCompositeNeutral(t *testing.T) {
	// edge alpha 0 and multiplyCount 0 pass the diffuse through; alpha
	// carries the linearized distance field
	diffuse := pixel(0.25, 0.5, 0.75, 1)
	ao := pixel(0.5, 0.5, 0.5, 1)
	edge := pixel(1, 1, 1, 0)
	dist := pixel(0.5, 0.5, 0.5, 1)

	out := CompositeFinal(diffuse, ao, edge, dist, 1, 1, 0, 1)
	require.Len(t, out, 4)
	assert.InDelta(t, 0.25, out[0], 1e-6)
	assert.InDelta(t, 0.5, out[1], 1e-6)
	assert.InDelta(t, 0.75, out[2], 1e-6)
	assert.InDelta(t, ToLinear(0.5), out[3], 1e-6)
}

func TestCompositeSoftLight(t *testing.T) {
	// edge channel 0 at full alpha squares the diffuse channel
	diffuse := pixel(0.5, 0.5, 0.5, 1)
	ao := pixel(1, 1, 1, 1)
	edge := pixel(0, 0, 0, 1)
	dist := pixel(1, 1, 1, 1)

	out := CompositeFinal(diffuse, ao, edge, dist, 1, 1, 0, 1)
	assert.InDelta(t, 0.25, out[0], 1e-6)

	// edge channel 1 at full alpha: (1-2)·c² + 2c = 2c - c²
	edge = pixel(1, 1, 1, 1)
	out = CompositeFinal(diffuse, ao, edge, dist, 1, 1, 0, 1)
	assert.InDelta(t, 0.75, out[0], 1e-6)

	// half edge alpha blends halfway
	edge = pixel(0, 0, 0, 0.5)
	out = CompositeFinal(diffuse, ao, edge, dist, 1, 1, 0, 1)
	assert.InDelta(t, 0.375, out[0], 1e-6)
}

func TestCompositeMultiply(t *testing.T) {
	diffuse := pixel(1, 1, 1, 1)
	ao := pixel(0.5, 0.25, 1, 1)
	edge := pixel(1, 1, 1, 0)
	dist := pixel(1, 1, 1, 1)

	out := CompositeFinal(diffuse, ao, edge, dist, 1, 1, 2, 1)
	assert.InDelta(t, 0.25, out[0], 1e-6)
	assert.InDelta(t, 0.0625, out[1], 1e-6)
	assert.InDelta(t, 1, out[2], 1e-6)
}

func TestCompositeParallelMatchesSerial(t *testing.T) {
	const w, h = 17, 9
	n := w * h * 4
	diffuse := make([]float32, n)
	ao := make([]float32, n)
	edge := make([]float32, n)
	dist := make([]float32, n)
	for i := 0; i < n; i++ {
		diffuse[i] = float32(i%255) / 255
		ao[i] = float32((i*3)%255) / 255
		edge[i] = float32((i*7)%255) / 255
		dist[i] = float32((i*11)%255) / 255
	}

	a := CompositeFinal(diffuse, ao, edge, dist, w, h, 1, 1)
	b := CompositeFinal(diffuse, ao, edge, dist, w, h, 1, 4)
	assert.Equal(t, a, b)
}
