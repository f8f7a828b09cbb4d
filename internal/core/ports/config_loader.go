package ports

import "github.com/modb-dev/modb/internal/core/domain"

// ConfigLoader defines the interface for loading the workspace configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file named filename from the given working
	// directory. An empty filename selects the implementation's default.
	Load(cwd, filename string) (*domain.Workspace, error)
}
