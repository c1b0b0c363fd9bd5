package compositor

import (
	"github.com/chewxy/math32"

	"uvbake/internal/parallel"
)

// CompositeFinal blends the baked layers into the output texture:
// diffuse soft-lit by the edge highlight, multiplied by AO raised to
// multiplyCount, with the distance field's red channel (linearized)
// carried in alpha. All four inputs are width×height RGBA float32
// canvases; the result is a new canvas of the same shape.
func CompositeFinal(diffuse, ao, edgeHighlight, distanceField []float32, width, height, multiplyCount, workers int) []float32 {
	out := make([]float32, width*height*4)
	mc := float32(multiplyCount)

	parallel.Rows(width*height, workers, func(lo, hi int) {
		for p := lo; p < hi; p++ {
			idx := p * 4

			r := diffuse[idx]
			g := diffuse[idx+1]
			b := diffuse[idx+2]

			// distance field is grayscale, sample red
			a := ToLinear(distanceField[idx])

			er := edgeHighlight[idx]
			eg := edgeHighlight[idx+1]
			eb := edgeHighlight[idx+2]
			ea := edgeHighlight[idx+3]

			sr := (1-2*er)*r*r + 2*er*r
			sg := (1-2*eg)*g*g + 2*eg*g
			sb := (1-2*eb)*b*b + 2*eb*b

			r = sr*ea + r*(1-ea)
			g = sg*ea + g*(1-ea)
			b = sb*ea + b*(1-ea)

			r *= math32.Pow(ao[idx], mc)
			g *= math32.Pow(ao[idx+1], mc)
			b *= math32.Pow(ao[idx+2], mc)

			out[idx] = r
			out[idx+1] = g
			out[idx+2] = b
			out[idx+3] = a
		}
	})
	return out
}
