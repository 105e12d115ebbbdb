package fileparse

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"

	_ "image/gif"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"tradeos/internal/domain"
)

const (
	// maxImageEdge bounds the longer edge of a recompressed image.
	maxImageEdge = 1500
	jpegQuality  = 70
)

// RecompressImage is an optional pre-processing step before attaching an
// image to an extraction request: decode, scale the longer edge down to
// maxImageEdge preserving aspect ratio, re-encode as JPEG, and return the
// stripped base64 payload.
func RecompressImage(data []byte) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: decoding image: %v", domain.ErrParseFailure, err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if longer := max(w, h); longer > maxImageEdge {
		scale := float64(maxImageEdge) / float64(longer)
		w = int(float64(w) * scale)
		h = int(float64(h) * scale)
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("%w: encoding jpeg: %v", domain.ErrParseFailure, err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
