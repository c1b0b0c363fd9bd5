package compositor

import "github.com/chewxy/math32"

// ToLinear converts an sRGB-encoded channel to linear light using the
// standard piecewise curve.
func ToLinear(f float32) float32 {
	if f <= 0.04045 {
		return f / 12.92
	}
	return math32.Pow((f+0.055)/1.055, 2.4)
}

// ToSRGB converts a linear-light channel to sRGB encoding.
func ToSRGB(f float32) float32 {
	if f <= 0.0031308 {
		return f * 12.92
	}
	return 1.055*math32.Pow(f, 1/2.4) - 0.055
}
