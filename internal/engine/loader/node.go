package loader

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/modb-dev/modb/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"github.com/modb-dev/modb/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"github.com/modb-dev/modb/internal/core/ports"
)

// NodeID is the unique identifier for the loader Graft node.
const NodeID graft.ID = "engine.loader"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ReaderNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Loader, error) {
			reader, err := graft.Dep[ports.DescriptorReader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(reader, log), nil
		},
	})
}
