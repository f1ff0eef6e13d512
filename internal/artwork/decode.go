package artwork

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder for store artwork
	"image/png"

	"github.com/nfnt/resize"
)

// Decode decodes JPEG or PNG data and scales it to fit within maxW×maxH
// pixels, preserving aspect ratio.
func Decode(data []byte, maxW, maxH int) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if maxW <= 0 || maxH <= 0 {
		return img, nil
	}
	return resize.Thumbnail(uint(maxW), uint(maxH), img, resize.Lanczos3), nil //nolint:gosec // dimensions are small
}

// Thumbnail decodes data, scales it like Decode and re-encodes it as PNG.
// Results are cached per url and size when cache is non-nil.
func Thumbnail(cache *Cache, url string, data []byte, maxW, maxH int) ([]byte, error) {
	if cached := cache.Get(url, Variant{maxW, maxH}); cached != nil {
		return cached, nil
	}

	img, err := Decode(data, maxW, maxH)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}

	_ = cache.Put(url, Variant{maxW, maxH}, buf.Bytes()) //nolint:errcheck // best-effort
	return buf.Bytes(), nil
}
