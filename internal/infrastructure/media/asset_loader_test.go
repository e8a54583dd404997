package media

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, rel string, data []byte) {
	t.Helper()
	full := filepath.Join(dir, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(t, os.WriteFile(full, data, 0644))
}

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := imaging.New(w, h, color.NRGBA{R: 200, G: 10, B: 10, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func TestReadAsset_Verbatim(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "uploads/cat.png", []byte("not really a png"))

	loader := NewAssetLoader(dir, 0, nil)
	data, err := loader.ReadAsset(context.Background(), "/uploads/cat.png?v=2")
	require.NoError(t, err)
	assert.Equal(t, []byte("not really a png"), data)
}

func TestReadAsset_Missing(t *testing.T) {
	loader := NewAssetLoader(t.TempDir(), 0, nil)
	_, err := loader.ReadAsset(context.Background(), "/uploads/none.png")
	assert.Error(t, err)
}

func TestReadAsset_RejectsTraversal(t *testing.T) {
	root := t.TempDir()
	public := filepath.Join(root, "public")
	writeFile(t, root, "secret.txt", []byte("x"))
	require.NoError(t, os.MkdirAll(public, 0755))

	loader := NewAssetLoader(public, 0, nil)
	for _, src := range []string{"/../secret.txt", "/a/../../secret.txt", "/"} {
		_, err := loader.ReadAsset(context.Background(), src)
		assert.Error(t, err, src)
	}
	_, err := loader.ReadAsset(context.Background(), "/../secret.txt")
	assert.ErrorIs(t, err, ErrOutsidePublicDir)

	_, err = loader.ReadAsset(context.Background(), "relative.png")
	assert.Error(t, err)
}

func TestReadAsset_Downscales(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "img/wide.png", pngBytes(t, 400, 200))
	writeFile(t, dir, "img/small.png", pngBytes(t, 50, 50))

	loader := NewAssetLoader(dir, 100, nil)

	data, err := loader.ReadAsset(context.Background(), "/img/wide.png")
	require.NoError(t, err)
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 50, cfg.Height)

	small := pngBytes(t, 50, 50)
	data, err = loader.ReadAsset(context.Background(), "/img/small.png")
	require.NoError(t, err)
	assert.Equal(t, small, data, "images within the limit are untouched")
}

func TestReadAsset_UndecodableImageFallsBack(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "img/broken.jpg", []byte("garbage"))

	data, err := NewAssetLoader(dir, 100, nil).ReadAsset(context.Background(), "/img/broken.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("garbage"), data)
}

func TestReadAsset_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewAssetLoader(t.TempDir(), 0, nil).ReadAsset(ctx, "/a.png")
	assert.ErrorIs(t, err, context.Canceled)
}
