package generation_test

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/lumenlab/vista/internal/generation"
)

func encodedImage(t *testing.T, width, height int) string {
	t.Helper()

	img := imaging.New(width, height, color.NRGBA{R: 200, G: 90, B: 40, A: 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatalf("encode image: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestPreviewDownscales(t *testing.T) {
	data := encodedImage(t, 1024, 1792)

	preview, err := generation.Preview(data, 512)
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(preview)
	if err != nil {
		t.Fatalf("preview is not valid base64: %v", err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("preview is not a decodable image: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > 512 || bounds.Dy() > 512 {
		t.Errorf("preview = %dx%d, want both sides <= 512", bounds.Dx(), bounds.Dy())
	}

	// Aspect ratio preserved: 1024x1792 scales to 292x512.
	if bounds.Dy() != 512 {
		t.Errorf("preview height = %d, want 512", bounds.Dy())
	}
}

func TestPreviewSmallImageKeepsSize(t *testing.T) {
	data := encodedImage(t, 64, 128)

	preview, err := generation.Preview(data, 512)
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}

	raw, _ := base64.StdEncoding.DecodeString(preview)
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode preview: %v", err)
	}
	if img.Bounds().Dx() != 64 || img.Bounds().Dy() != 128 {
		t.Errorf("preview = %dx%d, want original 64x128", img.Bounds().Dx(), img.Bounds().Dy())
	}
}

func TestPreviewInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not base64", "!!!not-base64!!!"},
		{"not an image", base64.StdEncoding.EncodeToString([]byte("plain text"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := generation.Preview(tt.data, 512); err == nil {
				t.Error("Preview() error = nil, want error")
			}
		})
	}
}
