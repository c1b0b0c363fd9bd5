package texture

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/ftrvxmtrx/tga"

	"uvbake/internal/texdecode"
)

// rawHeaderSize is the prefix of a .tex payload: uint32 format code,
// uint16 width, uint16 height, all little-endian, followed by the GPU
// texel data.
const rawHeaderSize = 8

// Load reads a source texture into a float canvas. TGA, PNG and JPEG go
// through image.Decode; .tex files carry a raw GPU payload decoded by
// texdecode (RGBA8888, RGBX8888, BGRA8888, DXT1, DXT5, R8).
func Load(path string) (*FloatImage, error) {
	if strings.EqualFold(filepath.Ext(path), ".tex") {
		return LoadRaw(path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return FromNRGBA(toNRGBA(img)), nil
}

// LoadRaw reads a raw GPU texture file and decodes it via texdecode.
func LoadRaw(path string) (*FloatImage, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	if len(raw) < rawHeaderSize {
		return nil, fmt.Errorf("texture: raw header too short: %s", path)
	}
	format := int(binary.LittleEndian.Uint32(raw[0:4]))
	w := int(binary.LittleEndian.Uint16(raw[4:6]))
	h := int(binary.LittleEndian.Uint16(raw[6:8]))

	pix := texdecode.Decode(raw[rawHeaderSize:], w, h, format)
	if pix == nil {
		return nil, fmt.Errorf("texture: cannot decode %s (format %d, %dx%d)", path, format, w, h)
	}
	return &FloatImage{W: w, H: h, Pix: pix}, nil
}

// toNRGBA converts any decoded image to NRGBA format.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := src.At(x, y).RGBA()
			i := dst.PixOffset(x-b.Min.X, y-b.Min.Y)
			if a == 0 {
				continue
			}
			// un-premultiply from the 16-bit RGBA view
			dst.Pix[i] = uint8((r*255 + a/2) / a)
			dst.Pix[i+1] = uint8((g*255 + a/2) / a)
			dst.Pix[i+2] = uint8((bl*255 + a/2) / a)
			dst.Pix[i+3] = uint8(a >> 8)
		}
	}
	return dst
}
