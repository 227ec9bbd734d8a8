package wallpapers

import (
	"errors"
	"net/http"

	"github.com/lumenlab/vista/internal/generation"
)

// Domain errors for wallpaper operations.
var (
	ErrInvalidPrompt = errors.New("prompt is required")
	ErrNotFound      = errors.New("wallpaper not found")
	ErrDuplicate     = errors.New("wallpaper already exists")
	ErrImageTooLarge = errors.New("generated image exceeds the maximum accepted size")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidPrompt):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrImageTooLarge):
		return http.StatusUnprocessableEntity
	case errors.Is(err, generation.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
