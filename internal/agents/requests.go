package agents

import "strings"

// ChatRequest is the inbound chat dispatch payload.
type ChatRequest struct {
	Message   string         `json:"message"`
	AgentType string         `json:"agent_type"`
	Context   map[string]any `json:"context,omitempty"`
}

// Validate checks caller-supplied fields and resolves the agent kind.
func (r *ChatRequest) Validate() (Kind, error) {
	if strings.TrimSpace(r.Message) == "" {
		return "", ErrEmptyMessage
	}
	return ParseKind(r.AgentType)
}

// SearchRequest is the inbound search dispatch payload.
type SearchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results,omitempty"`
}

// Validate checks caller-supplied fields and applies the default result cap.
func (r *SearchRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return ErrEmptyQuery
	}
	if r.MaxResults <= 0 {
		r.MaxResults = 5
	}
	return nil
}
