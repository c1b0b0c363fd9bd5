package texture

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// Save quantizes the canvas and writes it to path; the encoder is picked
// by extension (.webp or .png).
func Save(path string, img *FloatImage) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("texture: mkdir %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("texture: create %s: %w", path, err)
	}
	defer f.Close()

	out := img.ToNRGBA()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".webp":
		if err := nativewebp.Encode(f, out, nil); err != nil {
			return fmt.Errorf("texture: webp encode %s: %w", path, err)
		}
	case ".png":
		if err := png.Encode(f, out); err != nil {
			return fmt.Errorf("texture: png encode %s: %w", path, err)
		}
	default:
		return fmt.Errorf("texture: unknown output extension: %s", path)
	}
	return nil
}
