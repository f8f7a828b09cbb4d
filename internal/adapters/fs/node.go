package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/modb-dev/modb/internal/core/ports"
)

const (
	// ReaderNodeID is the unique identifier for the descriptor reader Graft node.
	ReaderNodeID graft.ID = "adapter.fs.reader"
	// WriterNodeID is the unique identifier for the manifest writer Graft node.
	WriterNodeID graft.ID = "adapter.fs.writer"
)

func init() {
	graft.Register(graft.Node[ports.DescriptorReader]{
		ID:        ReaderNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.DescriptorReader, error) {
			return NewReader(), nil
		},
	})

	graft.Register(graft.Node[ports.ManifestWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ManifestWriter, error) {
			return NewWriter(), nil
		},
	})
}
