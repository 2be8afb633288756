package app

import (
	"log/slog"

	"github.com/richezza/rmv/internal/storage"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	medium storage.Medium
	logger *slog.Logger
}

// WithMedium uses m instead of opening the configured driver. The quota from
// the config is still applied on top of it.
func WithMedium(m storage.Medium) Option {
	return func(cfg *appConfig) {
		cfg.medium = m
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}
