package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lumenlab/vista/internal/routes"
	"github.com/lumenlab/vista/pkg/logging"
)

func echo(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}

func newSystem() routes.System {
	logger := logging.New(&logging.Config{Level: logging.LevelError, Format: logging.FormatText})
	return routes.New(logger)
}

func TestBuildStandaloneRoute(t *testing.T) {
	sys := newSystem()
	sys.RegisterRoute(routes.Route{Method: "GET", Pattern: "/healthz", Handler: echo("ok")})

	handler := sys.Build()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))
	if rec.Body.String() != "ok" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestBuildGroupPrefixes(t *testing.T) {
	sys := newSystem()
	sys.RegisterGroup(routes.Group{
		Prefix: "/api",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/chat", Handler: echo("chat")},
		},
		Children: []routes.Group{
			{
				Prefix: "/wallpapers",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: echo("list")},
					{Method: "GET", Pattern: "/{id}", Handler: echo("find")},
				},
			},
		},
	})

	handler := sys.Build()

	tests := []struct {
		method   string
		path     string
		wantBody string
	}{
		{"POST", "/api/chat", "chat"},
		{"GET", "/api/wallpapers", "list"},
		{"GET", "/api/wallpapers/123", "find"},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
		if rec.Body.String() != tt.wantBody {
			t.Errorf("%s %s body = %q, want %q", tt.method, tt.path, rec.Body.String(), tt.wantBody)
		}
	}
}

func TestBuildMethodMismatch(t *testing.T) {
	sys := newSystem()
	sys.RegisterRoute(routes.Route{Method: "POST", Pattern: "/api/chat", Handler: echo("chat")})

	handler := sys.Build()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/chat", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
