package agents

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/lumenlab/vista/internal/config"
)

const chatSystemPrompt = "You are a helpful AI assistant. Provide clear, accurate, and concise responses."

var chatCapabilities = []string{"conversation", "general_knowledge", "context_awareness"}

// completer is the slice of the OpenAI client the chat agent needs.
// Narrowed for test substitution.
type completer interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ChatAgent answers conversational requests through a chat completion
// model. Construction is cheap; no network access happens until Execute.
type ChatAgent struct {
	client completer
	model  string
	apiKey string
}

// NewChatAgent builds a chat agent from the shared agent configuration.
func NewChatAgent(cfg *config.AgentsConfig) *ChatAgent {
	var client completer
	if cfg.APIKey != "" {
		clientCfg := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientCfg.BaseURL = cfg.BaseURL
		}
		client = openai.NewClientWithConfig(clientCfg)
	}

	return &ChatAgent{
		client: client,
		model:  cfg.ChatModel,
		apiKey: cfg.APIKey,
	}
}

// Capabilities reports the static capability set.
func (a *ChatAgent) Capabilities() []string {
	result := make([]string, len(chatCapabilities))
	copy(result, chatCapabilities)
	return result
}

// Execute runs a single-turn completion. Caller context is appended to the
// system prompt when present.
func (a *ChatAgent) Execute(ctx context.Context, input string, opts ExecuteOptions) (*Outcome, error) {
	if a.client == nil {
		return &Outcome{
			Success: false,
			Error:   "chat agent is not configured: missing API key",
		}, nil
	}

	system := chatSystemPrompt
	if len(opts.Context) > 0 {
		system = fmt.Sprintf("%s\n\nAdditional context: %v", system, opts.Context)
	}

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: input},
		},
	})
	if err != nil {
		return &Outcome{
			Success: false,
			Error:   fmt.Sprintf("chat completion failed: %v", err),
		}, nil
	}

	if len(resp.Choices) == 0 {
		return &Outcome{
			Success: false,
			Error:   "chat completion returned no choices",
		}, nil
	}

	return &Outcome{
		Success: true,
		Content: resp.Choices[0].Message.Content,
		Metadata: map[string]any{
			"model":         resp.Model,
			"finish_reason": string(resp.Choices[0].FinishReason),
		},
	}, nil
}
