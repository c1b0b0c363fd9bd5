package texture

import (
	"encoding/binary"
	"image"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uvbake/internal/texdecode"
)

func TestFloatImageRoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for i := range img.Pix {
		img.Pix[i] = byte(i * 11)
	}

	f := FromNRGBA(img)
	assert.Equal(t, 3, f.W)
	assert.Equal(t, 2, f.H)

	back := f.ToNRGBA()
	assert.Equal(t, img.Pix, back.Pix)
}

func TestFloatImageClampOnQuantize(t *testing.T) {
	f := NewFloatImage(1, 1)
	f.Pix[0] = 1.5
	f.Pix[1] = -0.25
	f.Pix[2] = 0.5
	f.Pix[3] = 1

	img := f.ToNRGBA()
	assert.Equal(t, uint8(255), img.Pix[0])
	assert.Equal(t, uint8(0), img.Pix[1])
	assert.Equal(t, uint8(128), img.Pix[2])
}

func TestWhite(t *testing.T) {
	f := White(2, 2)
	for _, v := range f.Pix {
		assert.Equal(t, float32(1), v)
	}
}

func writeRawTex(t *testing.T, path string, format int, w, h int, payload []byte) {
	t.Helper()
	raw := make([]byte, 8+len(payload))
	binary.LittleEndian.PutUint32(raw[0:4], uint32(format))
	binary.LittleEndian.PutUint16(raw[4:6], uint16(w))
	binary.LittleEndian.PutUint16(raw[6:8], uint16(h))
	copy(raw[8:], payload)
	require.NoError(t, os.WriteFile(path, raw, 0644))
}

func TestLoadRaw(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stone.tex")

	payload := []byte{255, 128, 0, 255, 0, 255, 64, 255, 1, 2, 3, 4, 5, 6, 7, 8}
	writeRawTex(t, path, texdecode.FormatRGBA8888, 2, 2, payload)

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, f.W)
	assert.Equal(t, 2, f.H)
	// Y flip: payload row 0 lands on canvas row 1
	assert.InDelta(t, 1.0, f.Pix[(1*2+0)*4], 1e-6)
	assert.InDelta(t, 128.0/255, f.Pix[(1*2+0)*4+1], 1e-6)
}

func TestLoadRawBadFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.tex")
	writeRawTex(t, path, 99, 1, 1, []byte{1, 2, 3, 4})

	_, err := Load(path)
	assert.Error(t, err)
}

func TestIndexPriority(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Rock.jpg"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rock.tga"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "moss.png"), []byte("x"), 0644))

	idx := BuildIndex(dir)
	assert.Equal(t, 2, idx.Len())

	path, ok := idx.ResolvePath("ROCK")
	require.True(t, ok)
	assert.Equal(t, ".tga", filepath.Ext(path))

	path, ok = idx.ResolvePath(`stuff\textures\moss.png`)
	require.True(t, ok)
	assert.Equal(t, "moss.png", filepath.Base(path))

	_, ok = idx.ResolvePath("missing")
	assert.False(t, ok)
}

func TestCacheResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flat.tex")
	writeRawTex(t, path, texdecode.FormatR8, 2, 1, []byte{51, 102})

	cache := NewCache(BuildIndex(dir))
	a := cache.Resolve("flat")
	require.NotNil(t, a)
	b := cache.Resolve("flat")
	assert.Same(t, a, b)

	assert.Nil(t, cache.Resolve("missing"))
}

// Concurrent workers asking for the same texture share one decode: every
// caller gets the identical canvas.
func TestCacheResolveConcurrent(t *testing.T) {
	dir := t.TempDir()
	writeRawTex(t, filepath.Join(dir, "shared.tex"), texdecode.FormatR8, 2, 1, []byte{51, 102})

	cache := NewCache(BuildIndex(dir))

	const n = 8
	got := make([]*FloatImage, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = cache.Resolve("shared")
		}(i)
	}
	wg.Wait()

	require.NotNil(t, got[0])
	for i := 1; i < n; i++ {
		assert.Same(t, got[0], got[i])
	}
}

func TestSavePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "bake.png")

	f := White(4, 4)
	require.NoError(t, Save(path, f))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, loaded.W)
	assert.Equal(t, float32(1), loaded.Pix[0])
}

func TestSaveUnknownExtension(t *testing.T) {
	assert.Error(t, Save(filepath.Join(t.TempDir(), "bake.gif"), White(1, 1)))
}
