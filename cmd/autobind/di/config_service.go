package di

import (
	"fmt"

	"github.com/samber/do/v2"

	"github.com/omarluq/autobind/internal/config"
)

// ConfigService wraps the loaded configuration.
type ConfigService struct {
	Config *config.Config
}

// NewConfig loads and validates the configuration from the container's
// config path. An empty path yields the built-in defaults.
func NewConfig(i do.Injector) (*ConfigService, error) {
	path := do.MustInvokeNamed[string](i, ConfigPathKey)

	if path == "" {
		return &ConfigService{Config: config.Default()}, nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &ConfigService{Config: cfg}, nil
}
