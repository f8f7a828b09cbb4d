package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/modb-dev/modb/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/modb-dev/modb/internal/adapters/fs"     //nolint:depguard // Wired in app layer
	"github.com/modb-dev/modb/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"github.com/modb-dev/modb/internal/core/ports"
	"github.com/modb-dev/modb/internal/engine/loader"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			loader.NodeID,
			fs.WriterNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			l, err := graft.Dep[*loader.Loader](ctx)
			if err != nil {
				return nil, err
			}

			writer, err := graft.Dep[ports.ManifestWriter](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(l, writer, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    application,
				Config: configLoader,
				Logger: log,
			}, nil
		},
	})
}
