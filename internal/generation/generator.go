// Package generation produces wallpaper images through an image model
// backend and prepares them for storage.
package generation

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the image generator cannot serve requests,
// either because it was never configured or because the backend is
// failing. Callers translate it into a service-unavailable response.
var ErrUnavailable = errors.New(
	"image generation service is not available. This may be due to missing " +
		"API configuration or service limitations.",
)

// Request describes one image generation.
type Request struct {
	Prompt      string
	AspectRatio string
	Megapixels  string
}

// Image is a generated image. URL is set when the backend returns a hosted
// location; Data carries the base64-encoded image bytes.
type Image struct {
	URL  string
	Data string
}

// Generator produces an image for a request.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Image, error)
}
