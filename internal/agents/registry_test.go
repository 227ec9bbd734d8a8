package agents_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lumenlab/vista/internal/agents"
	"github.com/lumenlab/vista/internal/config"
)

type fakeAgent struct {
	capabilities []string
	execute      func(ctx context.Context, input string, opts agents.ExecuteOptions) (*agents.Outcome, error)
}

func (a *fakeAgent) Capabilities() []string {
	return a.capabilities
}

func (a *fakeAgent) Execute(ctx context.Context, input string, opts agents.ExecuteOptions) (*agents.Outcome, error) {
	if a.execute != nil {
		return a.execute(ctx, input, opts)
	}
	return &agents.Outcome{Success: true, Content: "ok"}, nil
}

func countingFactory(counter *atomic.Int64) agents.Factory {
	return func(kind agents.Kind, cfg *config.AgentsConfig) (agents.Agent, error) {
		counter.Add(1)
		return &fakeAgent{capabilities: []string{string(kind)}}, nil
	}
}

func TestRegistryGetOrCreate(t *testing.T) {
	var constructions atomic.Int64
	registry := agents.NewRegistry(&config.AgentsConfig{}, countingFactory(&constructions))

	first, err := registry.GetOrCreate(agents.KindChat)
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}

	second, err := registry.GetOrCreate(agents.KindChat)
	if err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}

	if first != second {
		t.Error("GetOrCreate() returned different instances for the same kind")
	}
	if got := constructions.Load(); got != 1 {
		t.Errorf("constructions = %d, want 1", got)
	}
}

func TestRegistryGetOrCreateConcurrent(t *testing.T) {
	var constructions atomic.Int64
	registry := agents.NewRegistry(&config.AgentsConfig{}, countingFactory(&constructions))

	const callers = 32

	var wg sync.WaitGroup
	instances := make([]agents.Agent, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			agent, err := registry.GetOrCreate(agents.KindSearch)
			if err != nil {
				t.Errorf("GetOrCreate() error = %v", err)
				return
			}
			instances[n] = agent
		}(i)
	}
	wg.Wait()

	if got := constructions.Load(); got != 1 {
		t.Errorf("constructions = %d, want 1", got)
	}
	for i := 1; i < callers; i++ {
		if instances[i] != instances[0] {
			t.Fatal("concurrent GetOrCreate() returned different instances")
		}
	}
}

func TestRegistryCapabilitiesOfDoesNotRegister(t *testing.T) {
	var constructions atomic.Int64
	registry := agents.NewRegistry(&config.AgentsConfig{}, countingFactory(&constructions))

	capabilities, err := registry.CapabilitiesOf(agents.KindChat)
	if err != nil {
		t.Fatalf("CapabilitiesOf() error = %v", err)
	}
	if len(capabilities) != 1 || capabilities[0] != "chat" {
		t.Errorf("CapabilitiesOf() = %v, want [chat]", capabilities)
	}

	// The throwaway construction must not satisfy a later GetOrCreate.
	if _, err := registry.GetOrCreate(agents.KindChat); err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if got := constructions.Load(); got != 2 {
		t.Errorf("constructions = %d, want 2", got)
	}
}

func TestRegistryCapabilitiesOfUsesLiveInstance(t *testing.T) {
	var constructions atomic.Int64
	registry := agents.NewRegistry(&config.AgentsConfig{}, countingFactory(&constructions))

	if _, err := registry.GetOrCreate(agents.KindSearch); err != nil {
		t.Fatalf("GetOrCreate() error = %v", err)
	}
	if _, err := registry.CapabilitiesOf(agents.KindSearch); err != nil {
		t.Fatalf("CapabilitiesOf() error = %v", err)
	}

	if got := constructions.Load(); got != 1 {
		t.Errorf("constructions = %d, want 1", got)
	}
}
