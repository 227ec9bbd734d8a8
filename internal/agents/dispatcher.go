package agents

import (
	"context"
	"fmt"
	"log/slog"
)

// System dispatches chat and search requests to registered agents and
// normalizes their outcomes into response envelopes.
type System interface {
	Chat(ctx context.Context, req *ChatRequest) (Envelope, error)
	Search(ctx context.Context, req *SearchRequest) (SearchEnvelope, error)
	Capabilities() (map[string][]string, error)
}

type dispatcher struct {
	registry *Registry
	logger   *slog.Logger
}

// NewSystem builds the agent dispatch system on top of a registry.
func NewSystem(registry *Registry, logger *slog.Logger) System {
	return &dispatcher{
		registry: registry,
		logger:   logger.With("system", "agents"),
	}
}

// Chat validates the request, resolves the target agent, and executes it.
// Validation failures surface as errors; resolution and execution faults
// fold into a failure envelope so clients always receive the normalized
// shape.
func (d *dispatcher) Chat(ctx context.Context, req *ChatRequest) (Envelope, error) {
	kind, err := req.Validate()
	if err != nil {
		return Envelope{}, err
	}

	agent, err := d.registry.GetOrCreate(kind)
	if err != nil {
		d.logger.Error("agent resolution failed", "kind", kind, "error", err)
		return FailureEnvelope(kind, err.Error()), nil
	}

	outcome, err := agent.Execute(ctx, req.Message, ExecuteOptions{Context: req.Context})
	if err != nil {
		d.logger.Error("chat execution failed", "kind", kind, "error", err)
		return FailureEnvelope(kind, fmt.Sprintf("agent execution failed: %v", err)), nil
	}

	if !outcome.Success {
		return FailureEnvelope(kind, outcome.Error), nil
	}

	d.logger.Debug("chat dispatched", "kind", kind, "tools_used", outcome.ToolsUsed)
	return SuccessEnvelope(kind, agent, outcome), nil
}

// Search validates the request and executes the search agent with tool use
// enabled. The query text is embedded in an instruction so the agent
// summarizes its findings.
func (d *dispatcher) Search(ctx context.Context, req *SearchRequest) (SearchEnvelope, error) {
	if err := req.Validate(); err != nil {
		return SearchEnvelope{}, err
	}

	agent, err := d.registry.GetOrCreate(KindSearch)
	if err != nil {
		d.logger.Error("agent resolution failed", "kind", KindSearch, "error", err)
		return FailureSearchEnvelope(req.Query, err.Error()), nil
	}

	instruction := fmt.Sprintf(
		"Search for information about: %s. Provide a comprehensive summary with key findings.",
		req.Query,
	)

	outcome, err := agent.Execute(ctx, instruction, ExecuteOptions{
		UseTools:   true,
		MaxResults: req.MaxResults,
	})
	if err != nil {
		d.logger.Error("search execution failed", "error", err)
		return FailureSearchEnvelope(req.Query, fmt.Sprintf("search failed: %v", err)), nil
	}

	if !outcome.Success {
		return FailureSearchEnvelope(req.Query, outcome.Error), nil
	}

	d.logger.Debug("search dispatched", "sources", outcome.ToolsUsed)
	return SuccessSearchEnvelope(req.Query, outcome), nil
}

// Capabilities reports the static capability sets of every agent kind,
// keyed by the public agent name.
func (d *dispatcher) Capabilities() (map[string][]string, error) {
	result := make(map[string][]string, len(Kinds))
	for _, kind := range Kinds {
		capabilities, err := d.registry.CapabilitiesOf(kind)
		if err != nil {
			return nil, err
		}
		result[string(kind)+"_agent"] = capabilities
	}
	return result, nil
}
