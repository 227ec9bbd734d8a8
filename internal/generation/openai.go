package generation

import (
	"context"
	"fmt"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/lumenlab/vista/internal/config"
)

// imageCreator is the slice of the OpenAI client the generator needs.
type imageCreator interface {
	CreateImage(ctx context.Context, req openai.ImageRequest) (openai.ImageResponse, error)
}

// OpenAIGenerator produces images through the OpenAI image API. A missing
// API key leaves the generator constructed but unavailable.
type OpenAIGenerator struct {
	client imageCreator
	model  string
	logger *slog.Logger
}

// NewOpenAIGenerator builds an image generator from configuration.
func NewOpenAIGenerator(agentsCfg *config.AgentsConfig, genCfg *config.GenerationConfig, logger *slog.Logger) *OpenAIGenerator {
	var client imageCreator
	if agentsCfg.APIKey != "" {
		clientCfg := openai.DefaultConfig(agentsCfg.APIKey)
		if agentsCfg.BaseURL != "" {
			clientCfg.BaseURL = agentsCfg.BaseURL
		}
		client = openai.NewClientWithConfig(clientCfg)
	}

	return &OpenAIGenerator{
		client: client,
		model:  genCfg.Model,
		logger: logger.With("system", "generation"),
	}
}

// Generate calls the image API and returns the base64-encoded result. Both
// a missing configuration and a backend failure surface as ErrUnavailable.
func (g *OpenAIGenerator) Generate(ctx context.Context, req Request) (*Image, error) {
	if g.client == nil {
		return nil, fmt.Errorf("%w: missing API key", ErrUnavailable)
	}

	resp, err := g.client.CreateImage(ctx, openai.ImageRequest{
		Model:          g.model,
		Prompt:         req.Prompt,
		Size:           sizeForAspectRatio(req.AspectRatio),
		N:              1,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		g.logger.Error("image generation failed", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("%w: backend returned no images", ErrUnavailable)
	}

	return &Image{
		URL:  resp.Data[0].URL,
		Data: resp.Data[0].B64JSON,
	}, nil
}

// sizeForAspectRatio maps requested aspect ratios onto the sizes the image
// API supports. Portrait is the wallpaper default.
func sizeForAspectRatio(ratio string) string {
	switch ratio {
	case "16:9":
		return openai.CreateImageSize1792x1024
	case "1:1":
		return openai.CreateImageSize1024x1024
	default:
		return openai.CreateImageSize1024x1792
	}
}
