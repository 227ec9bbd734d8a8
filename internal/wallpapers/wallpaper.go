// Package wallpapers implements the wallpaper generation pipeline: prompt
// enhancement, image generation, preview derivation, and Postgres-backed
// persistence of results.
package wallpapers

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Wallpaper is a persisted generation result.
type Wallpaper struct {
	ID          uuid.UUID `json:"id"`
	Prompt      string    `json:"prompt"`
	AspectRatio string    `json:"aspect_ratio"`
	ImageURL    string    `json:"image_url"`
	ImageData   string    `json:"image_data"`
	PreviewData string    `json:"preview_data"`
	CreatedAt   time.Time `json:"created_at"`
}

// WallpaperResponse is the client-facing wallpaper shape. Image and
// preview surface as URLs; when the backend returned only raw bytes they
// are carried as data URIs.
type WallpaperResponse struct {
	Success    bool      `json:"success"`
	ID         uuid.UUID `json:"id"`
	Prompt     string    `json:"prompt"`
	ImageURL   string    `json:"image_url,omitempty"`
	PreviewURL string    `json:"preview_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Response maps the stored record into the client-facing shape.
func (w *Wallpaper) Response() WallpaperResponse {
	imageURL := w.ImageURL
	if imageURL == "" && w.ImageData != "" {
		imageURL = "data:image/png;base64," + w.ImageData
	}

	previewURL := imageURL
	if w.PreviewData != "" {
		previewURL = "data:image/jpeg;base64," + w.PreviewData
	}

	return WallpaperResponse{
		Success:    true,
		ID:         w.ID,
		Prompt:     w.Prompt,
		ImageURL:   imageURL,
		PreviewURL: previewURL,
		CreatedAt:  w.CreatedAt,
	}
}

// GenerateCommand describes one wallpaper generation request.
type GenerateCommand struct {
	Prompt      string  `json:"prompt"`
	AspectRatio string  `json:"aspect_ratio"`
	Megapixels  string  `json:"megapixels"`
	Style       *string `json:"style,omitempty"`
}

// Validate checks caller-supplied fields and applies generation defaults.
func (c *GenerateCommand) Validate() error {
	if strings.TrimSpace(c.Prompt) == "" {
		return ErrInvalidPrompt
	}
	if c.AspectRatio == "" {
		c.AspectRatio = "9:16"
	}
	if c.Megapixels == "" {
		c.Megapixels = "1"
	}
	return nil
}

// EnhancedPrompt expands the caller prompt into the full instruction sent
// to the image model.
func (c *GenerateCommand) EnhancedPrompt() string {
	prompt := c.Prompt
	if c.Style != nil && *c.Style != "" {
		prompt = fmt.Sprintf("%s, %s style", prompt, *c.Style)
	}
	return fmt.Sprintf(
		"Phone wallpaper, %s, high resolution, vibrant colors, mobile-optimized, stunning visual",
		prompt,
	)
}
