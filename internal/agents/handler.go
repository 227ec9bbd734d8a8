package agents

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/lumenlab/vista/internal/routes"
	"github.com/lumenlab/vista/pkg/handlers"
)

// Handler exposes the agent dispatch operations over HTTP.
type Handler struct {
	system System
	logger *slog.Logger
}

// NewHandler creates an agent HTTP handler.
func NewHandler(system System, logger *slog.Logger) *Handler {
	return &Handler{
		system: system,
		logger: logger.With("handler", "agents"),
	}
}

// Routes returns the agent route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api",
		Description: "agent dispatch",
		Routes: []routes.Route{
			{Method: http.MethodPost, Pattern: "/chat", Handler: h.Chat},
			{Method: http.MethodPost, Pattern: "/search", Handler: h.Search},
			{Method: http.MethodGet, Pattern: "/agents/capabilities", Handler: h.Capabilities},
		},
	}
}

// Chat dispatches a chat request and writes the normalized envelope.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	envelope, err := h.system.Chat(r.Context(), &req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, envelope)
}

// Search dispatches a search request and writes the normalized envelope.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	envelope, err := h.system.Search(r.Context(), &req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, envelope)
}

// Capabilities reports the capability sets of every agent kind.
func (h *Handler) Capabilities(w http.ResponseWriter, r *http.Request) {
	capabilities, err := h.system.Capabilities()
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"capabilities": capabilities,
	})
}
