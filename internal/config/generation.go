package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/docker/go-units"
)

const (
	// EnvGenerationModel overrides the image generation model.
	EnvGenerationModel = "GENERATION_MODEL"

	// EnvGenerationMaxImageSize overrides the maximum accepted image payload size.
	EnvGenerationMaxImageSize = "GENERATION_MAX_IMAGE_SIZE"

	// EnvGenerationPreviewMaxSide overrides the preview thumbnail bound in pixels.
	EnvGenerationPreviewMaxSide = "GENERATION_PREVIEW_MAX_SIDE"
)

// GenerationConfig contains image generation configuration.
type GenerationConfig struct {
	Model           string `toml:"model"`
	MaxImageSize    string `toml:"max_image_size"`
	PreviewMaxSide  int    `toml:"preview_max_side"`
	maxImageSizeVal int64
}

// MaxImageSizeBytes returns the parsed maximum image payload size.
func (c *GenerationConfig) MaxImageSizeBytes() int64 {
	return c.maxImageSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the
// generation configuration.
func (c *GenerationConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *GenerationConfig) Merge(overlay *GenerationConfig) {
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.MaxImageSize != "" {
		c.MaxImageSize = overlay.MaxImageSize
	}
	if overlay.PreviewMaxSide != 0 {
		c.PreviewMaxSide = overlay.PreviewMaxSide
	}
}

func (c *GenerationConfig) loadDefaults() {
	if c.Model == "" {
		c.Model = "dall-e-3"
	}
	if c.MaxImageSize == "" {
		c.MaxImageSize = "8MB"
	}
	if c.PreviewMaxSide == 0 {
		c.PreviewMaxSide = 512
	}
}

func (c *GenerationConfig) loadEnv() {
	if v := os.Getenv(EnvGenerationModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvGenerationMaxImageSize); v != "" {
		c.MaxImageSize = v
	}
	if v := os.Getenv(EnvGenerationPreviewMaxSide); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.PreviewMaxSide = n
		}
	}
}

func (c *GenerationConfig) validate() error {
	size, err := units.FromHumanSize(c.MaxImageSize)
	if err != nil {
		return fmt.Errorf("invalid max_image_size: %w", err)
	}
	c.maxImageSizeVal = size

	if c.PreviewMaxSide < 16 {
		return fmt.Errorf("preview_max_side must be at least 16")
	}
	return nil
}
