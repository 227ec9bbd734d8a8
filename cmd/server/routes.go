package main

import (
	"net/http"

	"github.com/lumenlab/vista/internal/agents"
	"github.com/lumenlab/vista/internal/config"
	"github.com/lumenlab/vista/internal/infrastructure"
	"github.com/lumenlab/vista/internal/routes"
	"github.com/lumenlab/vista/internal/wallpapers"
)

// registerRoutes configures all HTTP routes for the service.
func registerRoutes(r routes.System, cfg *config.Config, infra *infrastructure.Infrastructure, domain *Domain) {
	agentHandler := agents.NewHandler(domain.Agents, infra.Logger)
	wallpaperHandler := wallpapers.NewHandler(domain.Wallpapers, infra.Logger, cfg.Pagination)

	r.RegisterGroup(agentHandler.Routes())
	r.RegisterGroup(wallpaperHandler.Routes())

	r.RegisterRoute(routes.Route{
		Method:  http.MethodGet,
		Pattern: "/healthz",
		Handler: handleHealthCheck,
	})

	r.RegisterRoute(routes.Route{
		Method:  http.MethodGet,
		Pattern: "/readyz",
		Handler: handleReadyCheck(infra),
	})
}

// handleHealthCheck responds with OK status for health monitoring.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// handleReadyCheck reports readiness once startup has completed.
func handleReadyCheck(infra *infrastructure.Infrastructure) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("starting"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ready"))
	}
}
