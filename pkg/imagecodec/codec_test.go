package imagecodec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0x80
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode: %v", err)
	}

	return buf.Bytes()
}

// withDimensions rewrites the IHDR chunk so the header claims w x h.
func withDimensions(data []byte, w, h uint32) []byte {
	out := bytes.Clone(data)

	binary.BigEndian.PutUint32(out[16:20], w)
	binary.BigEndian.PutUint32(out[20:24], h)
	binary.BigEndian.PutUint32(out[29:33], crc32.ChecksumIEEE(out[12:29]))

	return out
}

func TestDecode_RejectsDeclaredDimensionsOverLimit(t *testing.T) {
	data := withDimensions(encodePNG(t, 1, 1), 24000, 24000)

	if len(data) > 1024 {
		t.Fatalf("Expected a tiny upload, got %d bytes", len(data))
	}

	_, err := Decode(data, MaxPixels(40_000_000))
	if !errors.Is(err, ErrTooLarge) {
		t.Errorf("Expected ErrTooLarge, got: %v", err)
	}
}

func TestDecode_AcceptsImagesAtLimit(t *testing.T) {
	img, err := Decode(encodePNG(t, 20, 10), MaxPixels(200))
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if b := img.Bounds(); b.Dx() != 20 || b.Dy() != 10 {
		t.Errorf("Unexpected bounds %v", b)
	}

	if _, err = Decode(encodePNG(t, 20, 10), MaxPixels(199)); !errors.Is(err, ErrTooLarge) {
		t.Errorf("Expected ErrTooLarge one pixel over, got: %v", err)
	}
}

func TestDecode_WithoutLimit(t *testing.T) {
	if _, err := Decode(encodePNG(t, 3, 3)); err != nil {
		t.Errorf("Expected no error, got: %v", err)
	}

	if _, err := Decode(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("Expected ErrEmpty, got: %v", err)
	}

	if _, err := Decode([]byte("not an image"), MaxPixels(10)); err == nil {
		t.Errorf("Expected an error for unknown formats")
	}
}

func TestEncodePNG_KeepsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 0xff, A: 0xff})
	src.SetNRGBA(1, 0, color.NRGBA{})

	data, err := EncodePNG(src)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	img, err := Decode(data)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if _, _, _, a := img.At(1, 0).RGBA(); a != 0 {
		t.Errorf("Expected transparent pixel, got alpha %d", a)
	}
}
