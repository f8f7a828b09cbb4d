// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/modb-dev/modb/internal/adapters/config"
	_ "github.com/modb-dev/modb/internal/adapters/fs"
	_ "github.com/modb-dev/modb/internal/adapters/logger"
	// Register app and engine nodes.
	_ "github.com/modb-dev/modb/internal/app"
	_ "github.com/modb-dev/modb/internal/engine/loader"
)
