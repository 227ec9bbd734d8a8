package main

import (
	"github.com/lumenlab/vista/internal/config"
	"github.com/lumenlab/vista/internal/infrastructure"
	"github.com/lumenlab/vista/internal/middleware"
)

// buildMiddleware creates the middleware stack with logging and CORS.
func buildMiddleware(cfg *config.Config, infra *infrastructure.Infrastructure) middleware.System {
	middlewareSys := middleware.New()
	middlewareSys.Use(middleware.Logger(infra.Logger))
	middlewareSys.Use(middleware.CORS(&cfg.CORS))
	return middlewareSys
}
