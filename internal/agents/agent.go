// Package agents provides the dispatch layer that routes requests to the
// conversational and search agent backends and normalizes their
// heterogeneous outcomes into uniform response envelopes.
package agents

import (
	"context"
	"fmt"
)

// Kind identifies an agent backend. The set is closed: requests select a
// kind by name and unknown names are caller errors.
type Kind string

// Agent kind constants.
const (
	KindChat   Kind = "chat"
	KindSearch Kind = "search"
)

// Kinds enumerates every registered agent kind, in introspection order.
var Kinds = []Kind{KindChat, KindSearch}

// ParseKind resolves an agent kind name. An empty name defaults to chat.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "", string(KindChat):
		return KindChat, nil
	case string(KindSearch):
		return KindSearch, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKind, name)
	}
}

// ExecuteOptions carries per-execution parameters to an agent.
type ExecuteOptions struct {
	// UseTools enables tool-augmented execution for agents that support it.
	UseTools bool

	// MaxResults is an advisory hint for tool-augmented agents; the
	// dispatcher never enforces it.
	MaxResults int

	// Context is auxiliary caller data passed through to the agent.
	Context map[string]any
}

// Outcome is what an agent execution reports. It is never exposed to
// callers directly; the dispatcher maps it into an envelope.
type Outcome struct {
	Success   bool
	Content   string
	Metadata  map[string]any
	ToolsUsed int
	Error     string
}

// Agent is the contract every backend implements: execute an input and
// report the static capability set. Implementations must be safe for
// concurrent invocation once constructed.
type Agent interface {
	Execute(ctx context.Context, input string, opts ExecuteOptions) (*Outcome, error)
	Capabilities() []string
}
