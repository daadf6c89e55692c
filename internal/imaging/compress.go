// Package imaging pre-compresses food photos before they are sent to
// the classifier: the longer dimension is capped and the image is
// re-encoded as JPEG. The transform is local and synchronous; once
// started it has no cancellation path.
package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	xdraw "golang.org/x/image/draw"

	"github.com/arkadyvolkov/nutrition-helper/internal/apperrors"
)

const (
	// MaxDimension is the cap on the longer image side, px.
	MaxDimension = 1024
	// JPEGQuality is the re-encode quality.
	JPEGQuality = 80
	// MaxInputBytes rejects oversized uploads before decoding.
	MaxInputBytes = 10 << 20
)

// CompressJPEG decodes a JPEG or PNG image, scales it down so the
// longer side does not exceed maxDim (aspect ratio preserved, never
// upscaled) and re-encodes it as JPEG.
func CompressJPEG(data []byte, maxDim int) ([]byte, error) {
	if len(data) > MaxInputBytes {
		return nil, apperrors.NewValidation("Image size cannot exceed 10MB.")
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	targetW, targetH := fitWithin(width, height, maxDim)

	if targetW != width || targetH != height {
		scaled := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
		xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, bounds, xdraw.Over, nil)
		img = scaled
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeBase64 returns the standard base64 encoding of the JPEG bytes,
// without a data-URI prefix.
func EncodeBase64(jpegBytes []byte) string {
	return base64.StdEncoding.EncodeToString(jpegBytes)
}

func fitWithin(width, height, maxDim int) (int, int) {
	if width <= maxDim && height <= maxDim {
		return width, height
	}
	if width > height {
		return maxDim, int(float64(height) * float64(maxDim) / float64(width))
	}
	return int(float64(width) * float64(maxDim) / float64(height)), maxDim
}
