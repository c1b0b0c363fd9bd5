package texdecode

// GPU texture format codes.
const (
	FormatRGBA8888 = 1
	FormatRGBX8888 = 2
	FormatBGRA8888 = 3
	FormatDXT1     = 4
	FormatDXT5     = 6
	FormatR8       = 13
)

// Decode converts a raw GPU texture payload into a width×height RGBA
// float32 canvas in [0, 1] with the source image Y-flipped. An unknown
// format code or a short payload returns nil.
func Decode(data []byte, width, height, format int) []float32 {
	if width <= 0 || height <= 0 {
		return nil
	}

	switch format {
	case FormatRGBA8888, FormatRGBX8888:
		return decode8888(data, width, height, 0, 1, 2)
	case FormatBGRA8888:
		return decode8888(data, width, height, 2, 1, 0)
	case FormatDXT1:
		return decodeDXT(data, width, height, false)
	case FormatDXT5:
		return decodeDXT(data, width, height, true)
	case FormatR8:
		return decodeR8(data, width, height)
	}
	return nil
}

// decode8888 handles the byte-per-channel formats; ri/gi/bi pick the
// source byte for each output channel. RGBX carries its fourth byte
// through unchanged, matching RGBA.
func decode8888(data []byte, width, height, ri, gi, bi int) []float32 {
	if len(data) < width*height*4 {
		return nil
	}
	dst := make([]float32, width*height*4)
	heightZero := height - 1
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			src := (x + y*width) * 4
			out := (x + (heightZero-y)*width) * 4
			dst[out] = float32(data[src+ri]) / 255
			dst[out+1] = float32(data[src+gi]) / 255
			dst[out+2] = float32(data[src+bi]) / 255
			dst[out+3] = float32(data[src+3]) / 255
		}
	}
	return dst
}

func decodeR8(data []byte, width, height int) []float32 {
	if len(data) < width*height {
		return nil
	}
	dst := make([]float32, width*height*4)
	heightZero := height - 1
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			out := (x + (heightZero-y)*width) * 4
			dst[out] = float32(data[x+y*width]) / 255
			dst[out+3] = 1
		}
	}
	return dst
}
