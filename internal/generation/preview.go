package generation

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/disintegration/imaging"
)

// Preview downscales a base64-encoded image into a thumbnail no larger
// than maxSide on either dimension and returns it as base64 JPEG. The
// aspect ratio is preserved.
func Preview(data string, maxSide int) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("decode image data: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	thumb := imaging.Fit(img, maxSide, maxSide, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, thumb, imaging.JPEG, imaging.JPEGQuality(80)); err != nil {
		return "", fmt.Errorf("encode preview: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
