package ports

import "go.skein.dev/skein/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration for the project rooted at dir and returns
	// the resolved project settings.
	Load(dir string) (*domain.Project, error)
}
