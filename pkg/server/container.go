package server

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"real-api/internal/config"
	"real-api/internal/handlers"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *logrus.Logger
	Dispatcher *handlers.Dispatcher
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("failed to create container: configuration is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create container: %w", err)
	}

	logger := config.NewLogger(cfg)
	logger.WithFields(logrus.Fields{
		"api_name":        cfg.API.Name,
		"environment":     cfg.Environment,
		"deployment_mode": config.GetDeploymentMode(),
	}).Debug("Container initialized")

	return &Container{
		Config:     cfg,
		Logger:     logger,
		Dispatcher: handlers.NewDispatcher(cfg, logger),
	}, nil
}
