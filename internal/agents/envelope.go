package agents

// Envelope is the normalized chat response shape. Exactly one of Response
// or Error carries content depending on Success.
type Envelope struct {
	Success      bool           `json:"success"`
	Response     string         `json:"response"`
	AgentType    string         `json:"agent_type"`
	Capabilities []string       `json:"capabilities"`
	Metadata     map[string]any `json:"metadata"`
	Error        string         `json:"error,omitempty"`
}

// SearchEnvelope is the normalized search response shape.
type SearchEnvelope struct {
	Success       bool     `json:"success"`
	Query         string   `json:"query"`
	Summary       string   `json:"summary"`
	SearchResults []any    `json:"search_results,omitempty"`
	SourcesCount  int      `json:"sources_count"`
	Error         string   `json:"error,omitempty"`
}

// SuccessEnvelope builds a successful chat envelope from an agent outcome.
func SuccessEnvelope(kind Kind, agent Agent, outcome *Outcome) Envelope {
	metadata := outcome.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	return Envelope{
		Success:      true,
		Response:     outcome.Content,
		AgentType:    string(kind),
		Capabilities: agent.Capabilities(),
		Metadata:     metadata,
	}
}

// FailureEnvelope builds a failed chat envelope. Capabilities and metadata
// are present but empty so the shape stays uniform for clients.
func FailureEnvelope(kind Kind, message string) Envelope {
	return Envelope{
		Success:      false,
		Response:     "",
		AgentType:    string(kind),
		Capabilities: []string{},
		Metadata:     map[string]any{},
		Error:        message,
	}
}

// SuccessSearchEnvelope builds a successful search envelope from an agent
// outcome. Tools-used count from the outcome becomes the sources count.
func SuccessSearchEnvelope(query string, outcome *Outcome) SearchEnvelope {
	var results []any
	if raw, ok := outcome.Metadata["search_results"].([]any); ok {
		results = raw
	}

	return SearchEnvelope{
		Success:       true,
		Query:         query,
		Summary:       outcome.Content,
		SearchResults: results,
		SourcesCount:  outcome.ToolsUsed,
	}
}

// FailureSearchEnvelope builds a failed search envelope.
func FailureSearchEnvelope(query string, message string) SearchEnvelope {
	return SearchEnvelope{
		Success:      false,
		Query:        query,
		Summary:      "",
		SourcesCount: 0,
		Error:        message,
	}
}
