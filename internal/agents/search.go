package agents

import (
	"context"
	"encoding/json"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/lumenlab/vista/internal/config"
)

const searchSystemPrompt = "You are a research assistant. Use the web_search tool to find current " +
	"information, then synthesize what you found into a clear summary with key findings."

var searchCapabilities = []string{"web_search", "summarization", "tool_use"}

var webSearchTool = openai.Tool{
	Type: openai.ToolTypeFunction,
	Function: &openai.FunctionDefinition{
		Name:        "web_search",
		Description: "Search the web for current information on a topic.",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"query": map[string]any{
					"type":        "string",
					"description": "The search query.",
				},
			},
			"required": []string{"query"},
		},
	},
}

// SearchAgent answers research requests by driving a tool-calling loop:
// the model may request web searches, whose results are fed back until it
// produces a final summary or the round cap is reached.
type SearchAgent struct {
	client    completer
	search    SearchFunc
	model     string
	maxRounds int
}

// NewSearchAgent builds a search agent from the shared agent configuration.
func NewSearchAgent(cfg *config.AgentsConfig) *SearchAgent {
	var client completer
	if cfg.APIKey != "" {
		clientCfg := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientCfg.BaseURL = cfg.BaseURL
		}
		client = openai.NewClientWithConfig(clientCfg)
	}

	maxRounds := cfg.MaxToolRounds
	if maxRounds <= 0 {
		maxRounds = 3
	}

	return &SearchAgent{
		client:    client,
		search:    newBraveSearch(cfg.SearchAPIKey).Search,
		model:     cfg.SearchModel,
		maxRounds: maxRounds,
	}
}

// Capabilities reports the static capability set.
func (a *SearchAgent) Capabilities() []string {
	result := make([]string, len(searchCapabilities))
	copy(result, searchCapabilities)
	return result
}

// Execute runs the tool-calling loop. ToolsUsed counts the search calls
// actually performed, which callers surface as the sources count.
func (a *SearchAgent) Execute(ctx context.Context, input string, opts ExecuteOptions) (*Outcome, error) {
	if a.client == nil {
		return &Outcome{
			Success: false,
			Error:   "search agent is not configured: missing API key",
		}, nil
	}

	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: searchSystemPrompt},
		{Role: openai.ChatMessageRoleUser, Content: input},
	}

	var tools []openai.Tool
	if opts.UseTools {
		tools = []openai.Tool{webSearchTool}
	}

	toolsUsed := 0
	var collected []any

	for round := 0; round <= a.maxRounds; round++ {
		resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    a.model,
			Messages: messages,
			Tools:    tools,
		})
		if err != nil {
			return &Outcome{
				Success: false,
				Error:   fmt.Sprintf("search completion failed: %v", err),
			}, nil
		}
		if len(resp.Choices) == 0 {
			return &Outcome{
				Success: false,
				Error:   "search completion returned no choices",
			}, nil
		}

		choice := resp.Choices[0]
		if len(choice.Message.ToolCalls) == 0 || round == a.maxRounds {
			return &Outcome{
				Success:   true,
				Content:   choice.Message.Content,
				ToolsUsed: toolsUsed,
				Metadata: map[string]any{
					"model":          resp.Model,
					"search_results": collected,
				},
			}, nil
		}

		messages = append(messages, choice.Message)
		for _, call := range choice.Message.ToolCalls {
			result, hits := a.runTool(ctx, call, opts.MaxResults)
			toolsUsed++
			for _, hit := range hits {
				collected = append(collected, hit)
			}
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				ToolCallID: call.ID,
				Content:    result,
			})
		}
	}

	return &Outcome{
		Success: false,
		Error:   "search exceeded tool round limit",
	}, nil
}

func (a *SearchAgent) runTool(ctx context.Context, call openai.ToolCall, maxResults int) (string, []SearchResult) {
	if call.Function.Name != "web_search" {
		return fmt.Sprintf("unknown tool: %s", call.Function.Name), nil
	}

	var args struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(call.Function.Arguments), &args); err != nil {
		return fmt.Sprintf("invalid tool arguments: %v", err), nil
	}

	hits, err := a.search(ctx, args.Query, maxResults)
	if err != nil {
		return fmt.Sprintf("search failed: %v", err), nil
	}

	encoded, err := json.Marshal(hits)
	if err != nil {
		return fmt.Sprintf("encode results: %v", err), nil
	}
	return string(encoded), hits
}
