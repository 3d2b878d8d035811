package imagecodec

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // registers the webp decoder
)

var (
	ErrEmpty    = errors.New("empty image data")
	ErrTooLarge = errors.New("image dimensions exceed the pixel limit")
)

type decodeSettings struct {
	maxPixels int
}

type DecodeOption func(*decodeSettings)

// MaxPixels rejects images whose declared width*height exceeds n before any
// pixel buffer is allocated. n <= 0 disables the check.
func MaxPixels(n int) DecodeOption {
	return func(s *decodeSettings) {
		s.maxPixels = n
	}
}

// Decode decodes any registered raster format (jpeg, png, gif, bmp, tiff, webp),
// applying the EXIF orientation.
func Decode(data []byte, opts ...DecodeOption) (image.Image, error) {
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	s := &decodeSettings{}
	for _, opt := range opts {
		opt(s)
	}

	if s.maxPixels > 0 {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("imagecodec - Decode - image.DecodeConfig: %w", err)
		}

		if int64(cfg.Width)*int64(cfg.Height) > int64(s.maxPixels) {
			return nil, fmt.Errorf("imagecodec - Decode: %dx%d: %w", cfg.Width, cfg.Height, ErrTooLarge)
		}
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("imagecodec - Decode - imaging.Decode: %w", err)
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, ErrEmpty
	}

	return img, nil
}

// EncodePNG encodes img losslessly, keeping the alpha channel.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer

	err := imaging.Encode(&buf, imaging.Clone(img), imaging.PNG)
	if err != nil {
		return nil, fmt.Errorf("imagecodec - EncodePNG - imaging.Encode: %w", err)
	}

	return buf.Bytes(), nil
}
