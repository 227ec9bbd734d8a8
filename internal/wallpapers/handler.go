package wallpapers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/lumenlab/vista/internal/routes"
	"github.com/lumenlab/vista/pkg/handlers"
	"github.com/lumenlab/vista/pkg/pagination"
)

// Handler exposes wallpaper operations over HTTP.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a wallpaper HTTP handler.
func NewHandler(sys System, logger *slog.Logger, pageCfg pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "wallpapers"),
		pagination: pageCfg,
	}
}

// Routes returns the wallpaper route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/api/wallpapers",
		Description: "wallpaper generation and retrieval",
		Routes: []routes.Route{
			{Method: http.MethodPost, Pattern: "/generate", Handler: h.Generate},
			{Method: http.MethodGet, Pattern: "", Handler: h.List},
			{Method: http.MethodGet, Pattern: "/{id}", Handler: h.Find},
		},
	}
}

// Generate runs the generation pipeline and returns the stored wallpaper.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var cmd GenerateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	result, err := h.sys.Generate(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result.Response())
}

// List returns stored wallpapers, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), page)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	responses := make([]WallpaperResponse, len(result.Data))
	for i := range result.Data {
		responses[i] = result.Data[i].Response()
	}

	handlers.RespondJSON(w, http.StatusOK, pagination.PageResult[WallpaperResponse]{
		Data:       responses,
		Total:      result.Total,
		Page:       result.Page,
		PageSize:   result.PageSize,
		TotalPages: result.TotalPages,
	})
}

// Find returns a single wallpaper by id.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result.Response())
}
