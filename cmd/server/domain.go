package main

import (
	"github.com/lumenlab/vista/internal/agents"
	"github.com/lumenlab/vista/internal/config"
	"github.com/lumenlab/vista/internal/generation"
	"github.com/lumenlab/vista/internal/infrastructure"
	"github.com/lumenlab/vista/internal/wallpapers"
)

// Domain holds the initialized domain systems.
type Domain struct {
	Agents     agents.System
	Wallpapers wallpapers.System
}

// newDomain wires the domain systems onto the shared infrastructure.
func newDomain(cfg *config.Config, infra *infrastructure.Infrastructure) *Domain {
	registry := agents.NewRegistry(&cfg.Agents, agents.DefaultFactory)
	generator := generation.NewOpenAIGenerator(&cfg.Agents, &cfg.Generation, infra.Logger)

	return &Domain{
		Agents: agents.NewSystem(registry, infra.Logger),
		Wallpapers: wallpapers.New(
			infra.Database.Connection(),
			generator,
			infra.Logger,
			cfg.Pagination,
			cfg.Generation,
		),
	}
}
