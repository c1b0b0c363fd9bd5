package texture

import "image"

// FloatImage is a width×height RGBA float32 canvas in [0, 1], the shared
// pixel format across decoding, baking, and compositing.
type FloatImage struct {
	W, H int
	Pix  []float32 // RGBA interleaved, len = W*H*4
}

// NewFloatImage allocates a zeroed canvas.
func NewFloatImage(w, h int) *FloatImage {
	return &FloatImage{W: w, H: h, Pix: make([]float32, w*h*4)}
}

// White returns a canvas filled with opaque white, the neutral input for
// compositing when a source layer is absent.
func White(w, h int) *FloatImage {
	f := NewFloatImage(w, h)
	for i := range f.Pix {
		f.Pix[i] = 1
	}
	return f
}

// FromNRGBA converts a decoded image to a float canvas.
func FromNRGBA(img *image.NRGBA) *FloatImage {
	b := img.Bounds()
	f := NewFloatImage(b.Dx(), b.Dy())
	for y := 0; y < f.H; y++ {
		si := img.PixOffset(b.Min.X, b.Min.Y+y)
		di := y * f.W * 4
		for x := 0; x < f.W*4; x++ {
			f.Pix[di+x] = float32(img.Pix[si+x]) / 255
		}
	}
	return f
}

// ToNRGBA quantizes the canvas to 8-bit with clamping.
func (f *FloatImage) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.W, f.H))
	for i, v := range f.Pix {
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		img.Pix[i] = uint8(v*255 + 0.5)
	}
	return img
}
