package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mrjar/internal/core/ports"
)

// NodeID is the unique identifier for the archive writer Graft node.
const NodeID graft.ID = "adapter.archive"

func init() {
	graft.Register(graft.Node[ports.ArchiveWriter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ArchiveWriter, error) {
			return NewWriter(), nil
		},
	})
}
