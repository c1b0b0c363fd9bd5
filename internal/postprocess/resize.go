package postprocess

import (
	"image"

	"golang.org/x/image/draw"

	"uvbake/internal/texture"
)

// Resize scales a float canvas to the target size with
// premultiplied-alpha-aware CatmullRom filtering. Premultiplying before
// the filter prevents dark halo artifacts at transparent edges; the
// 16-bit intermediate keeps the float data's precision through the
// filter. Used both for fitting source textures to the bake resolution
// and for downsampling supersampled bakes.
func Resize(img *texture.FloatImage, w, h int) *texture.FloatImage {
	if img.W == w && img.H == h {
		return img
	}

	// Premultiply into a 16-bit buffer
	premul := image.NewRGBA64(image.Rect(0, 0, img.W, img.H))
	for i := 0; i < img.W*img.H; i++ {
		si := i * 4
		di := i * 8
		a := clampF(img.Pix[si+3])
		putU16(premul.Pix[di:], clampF(img.Pix[si])*a)
		putU16(premul.Pix[di+2:], clampF(img.Pix[si+1])*a)
		putU16(premul.Pix[di+4:], clampF(img.Pix[si+2])*a)
		putU16(premul.Pix[di+6:], a)
	}

	dst := image.NewRGBA64(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	// Unpremultiply back into float
	out := texture.NewFloatImage(w, h)
	for i := 0; i < w*h; i++ {
		si := i * 8
		di := i * 4
		a := getU16(dst.Pix[si+6:])
		out.Pix[di+3] = a
		if a > 0 {
			inv := 1 / a
			out.Pix[di] = clampF(getU16(dst.Pix[si:]) * inv)
			out.Pix[di+1] = clampF(getU16(dst.Pix[si+2:]) * inv)
			out.Pix[di+2] = clampF(getU16(dst.Pix[si+4:]) * inv)
		}
	}
	return out
}

func putU16(p []byte, v float32) {
	u := uint32(v*65535 + 0.5)
	p[0] = byte(u >> 8)
	p[1] = byte(u)
}

func getU16(p []byte) float32 {
	return float32(uint32(p[0])<<8|uint32(p[1])) / 65535
}

func clampF(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
