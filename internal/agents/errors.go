package agents

import (
	"errors"
	"net/http"
)

// Domain errors for agent dispatch.
var (
	ErrUnknownKind  = errors.New("unknown agent type")
	ErrEmptyMessage = errors.New("message is required")
	ErrEmptyQuery   = errors.New("query is required")
)

// MapHTTPStatus maps domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnknownKind):
		return http.StatusBadRequest
	case errors.Is(err, ErrEmptyMessage):
		return http.StatusBadRequest
	case errors.Is(err, ErrEmptyQuery):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
