package raster

import "github.com/chewxy/math32"

const invSqrt2Pi = 0.3989423

func gaussian(x, fac float32) float32 {
	return invSqrt2Pi * math32.Exp(-2*x*x/(fac*fac))
}

// KernelWidth returns the 1D Gaussian kernel width for a blur radius.
func KernelWidth(blur float32) int {
	return int(blur+2)*2 + 1
}

// BuildKernel builds a centered 1D Gaussian kernel of width kw for the
// given blur radius, normalized so the taps sum to 1.
func BuildKernel(kw int, blur float32) []float32 {
	kernel := make([]float32, kw)
	kc := kw / 2

	var sum float32
	for x := 0; x < kw; x++ {
		d := gaussian(float32(kc-x), blur)
		sum += d
		kernel[x] = d
	}
	for x := 0; x < kw; x++ {
		kernel[x] /= sum
	}
	return kernel
}

// Reflect mirrors an out-of-range index back into [0, m) across the
// boundary pixel (same-pixel endpoint mirroring, not symmetric extension).
func Reflect(m, x int) int {
	if x < 0 {
		return -x - 1
	}
	if x >= m {
		return 2*m - x - 1
	}
	return x
}
