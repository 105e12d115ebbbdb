package fileparse_test

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradeos/internal/domain"
	"tradeos/internal/fileparse"
)

// buildPNG renders a w×h image and returns its PNG encoding.
func buildPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 50 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func decodeResult(t *testing.T, encoded string) image.Image {
	t.Helper()
	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	img, err := jpeg.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestRecompressImage_ScalesLongerEdge(t *testing.T) {
	encoded, err := fileparse.RecompressImage(buildPNG(t, 3000, 1200))

	require.NoError(t, err)
	img := decodeResult(t, encoded)
	assert.Equal(t, 1500, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())
}

func TestRecompressImage_PortraitAspect(t *testing.T) {
	encoded, err := fileparse.RecompressImage(buildPNG(t, 600, 3000))

	require.NoError(t, err)
	img := decodeResult(t, encoded)
	assert.Equal(t, 300, img.Bounds().Dx())
	assert.Equal(t, 1500, img.Bounds().Dy())
}

func TestRecompressImage_SmallImageNotUpscaled(t *testing.T) {
	encoded, err := fileparse.RecompressImage(buildPNG(t, 400, 300))

	require.NoError(t, err)
	img := decodeResult(t, encoded)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestRecompressImage_InvalidData(t *testing.T) {
	_, err := fileparse.RecompressImage([]byte("not an image"))
	assert.ErrorIs(t, err, domain.ErrParseFailure)
}
