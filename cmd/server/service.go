package main

import (
	"fmt"
	"time"

	"github.com/lumenlab/vista/internal/config"
	"github.com/lumenlab/vista/internal/infrastructure"
	"github.com/lumenlab/vista/internal/routes"
	"github.com/lumenlab/vista/internal/server"
)

// Service coordinates the lifecycle of all subsystems.
type Service struct {
	infra  *infrastructure.Infrastructure
	server server.System
}

// NewService creates and initializes the service with all subsystems.
func NewService(cfg *config.Config) (*Service, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("infrastructure init failed: %w", err)
	}

	domain := newDomain(cfg, infra)

	routeSys := routes.New(infra.Logger)
	registerRoutes(routeSys, cfg, infra, domain)

	middlewareSys := buildMiddleware(cfg, infra)
	handler := middlewareSys.Apply(routeSys.Build())

	serverSys := server.New(&cfg.Server, handler, infra.Logger)

	return &Service{
		infra:  infra,
		server: serverSys,
	}, nil
}

// Start begins all subsystems and returns when they are ready.
func (s *Service) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}

	if err := s.server.Start(s.infra.Lifecycle); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	s.infra.Lifecycle.WaitForStartup()
	s.infra.Logger.Info("service started")
	return nil
}

// Shutdown gracefully stops all subsystems within the timeout.
func (s *Service) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
