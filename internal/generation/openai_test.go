package generation

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"

	"github.com/lumenlab/vista/internal/config"
	"github.com/lumenlab/vista/pkg/logging"
)

type fakeImageCreator struct {
	resp openai.ImageResponse
	err  error

	gotRequest openai.ImageRequest
}

func (f *fakeImageCreator) CreateImage(ctx context.Context, req openai.ImageRequest) (openai.ImageResponse, error) {
	f.gotRequest = req
	if f.err != nil {
		return openai.ImageResponse{}, f.err
	}
	return f.resp, nil
}

func testGenerator(client imageCreator) *OpenAIGenerator {
	return &OpenAIGenerator{
		client: client,
		model:  "dall-e-3",
		logger: logging.New(&logging.Config{Level: logging.LevelError, Format: logging.FormatText}),
	}
}

func TestGenerateUnconfigured(t *testing.T) {
	agentsCfg := &config.AgentsConfig{}
	genCfg := &config.GenerationConfig{Model: "dall-e-3"}
	logger := logging.New(&logging.Config{Level: logging.LevelError, Format: logging.FormatText})

	generator := NewOpenAIGenerator(agentsCfg, genCfg, logger)

	_, err := generator.Generate(context.Background(), Request{Prompt: "dunes"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Generate() error = %v, want ErrUnavailable", err)
	}
}

func TestGenerateBackendFailure(t *testing.T) {
	generator := testGenerator(&fakeImageCreator{err: errors.New("quota exceeded")})

	_, err := generator.Generate(context.Background(), Request{Prompt: "dunes"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Generate() error = %v, want ErrUnavailable", err)
	}
}

func TestGenerateEmptyResponse(t *testing.T) {
	generator := testGenerator(&fakeImageCreator{resp: openai.ImageResponse{}})

	_, err := generator.Generate(context.Background(), Request{Prompt: "dunes"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("Generate() error = %v, want ErrUnavailable", err)
	}
}

func TestGenerateSuccess(t *testing.T) {
	client := &fakeImageCreator{
		resp: openai.ImageResponse{
			Data: []openai.ImageResponseDataInner{{B64JSON: "aW1hZ2U=", URL: "https://img.example/1"}},
		},
	}
	generator := testGenerator(client)

	image, err := generator.Generate(context.Background(), Request{Prompt: "dunes", AspectRatio: "9:16"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if image.Data != "aW1hZ2U=" || image.URL != "https://img.example/1" {
		t.Errorf("image = %+v", image)
	}
	if client.gotRequest.ResponseFormat != openai.CreateImageResponseFormatB64JSON {
		t.Errorf("ResponseFormat = %q, want b64_json", client.gotRequest.ResponseFormat)
	}
}

func TestSizeForAspectRatio(t *testing.T) {
	tests := []struct {
		name     string
		ratio    string
		wantSize string
	}{
		{"portrait default", "9:16", openai.CreateImageSize1024x1792},
		{"empty defaults to portrait", "", openai.CreateImageSize1024x1792},
		{"landscape", "16:9", openai.CreateImageSize1792x1024},
		{"square", "1:1", openai.CreateImageSize1024x1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sizeForAspectRatio(tt.ratio); got != tt.wantSize {
				t.Errorf("sizeForAspectRatio(%q) = %q, want %q", tt.ratio, got, tt.wantSize)
			}
		})
	}
}
