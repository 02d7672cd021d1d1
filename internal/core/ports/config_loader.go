package ports

import "go.trai.ch/warm/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load discovers warm.yaml from the given working directory and returns the resolved configuration.
	Load(cwd string) (*domain.Config, error)

	// DiscoverRoot walks up from cwd to find the directory containing warm.yaml.
	DiscoverRoot(cwd string) (string, error)
}
