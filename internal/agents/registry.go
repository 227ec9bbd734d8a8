package agents

import (
	"sync"

	"github.com/lumenlab/vista/internal/config"
)

// Factory constructs an agent for a kind from the shared configuration.
// Injectable so tests can substitute fake agents.
type Factory func(kind Kind, cfg *config.AgentsConfig) (Agent, error)

// DefaultFactory builds the production agent implementations.
func DefaultFactory(kind Kind, cfg *config.AgentsConfig) (Agent, error) {
	switch kind {
	case KindSearch:
		return NewSearchAgent(cfg), nil
	case KindChat:
		return NewChatAgent(cfg), nil
	default:
		return nil, ErrUnknownKind
	}
}

// Registry holds at most one lazily-constructed agent per kind. First-use
// construction is serialized so a kind is never constructed twice, even
// under concurrent first calls.
type Registry struct {
	cfg     *config.AgentsConfig
	factory Factory

	mu        sync.Mutex
	instances map[Kind]Agent
}

// NewRegistry creates a Registry using the provided factory.
func NewRegistry(cfg *config.AgentsConfig, factory Factory) *Registry {
	return &Registry{
		cfg:       cfg,
		factory:   factory,
		instances: make(map[Kind]Agent),
	}
}

// GetOrCreate returns the live agent for a kind, constructing it on first
// use. Subsequent calls return the same instance.
func (r *Registry) GetOrCreate(kind Kind) (Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if agent, ok := r.instances[kind]; ok {
		return agent, nil
	}

	agent, err := r.factory(kind, r.cfg)
	if err != nil {
		return nil, err
	}

	r.instances[kind] = agent
	return agent, nil
}

// CapabilitiesOf reports the static capability set of a kind without
// registering an instance. The throwaway construction performs no network
// access.
func (r *Registry) CapabilitiesOf(kind Kind) ([]string, error) {
	if agent, ok := r.peek(kind); ok {
		return agent.Capabilities(), nil
	}

	agent, err := r.factory(kind, r.cfg)
	if err != nil {
		return nil, err
	}
	return agent.Capabilities(), nil
}

func (r *Registry) peek(kind Kind) (Agent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	agent, ok := r.instances[kind]
	return agent, ok
}
