package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mrjar/internal/adapters/logger"
	"go.trai.ch/mrjar/internal/core/ports"
)

// NodeID is the unique identifier for the capability detector Graft node.
const NodeID graft.ID = "adapter.detector"

func init() {
	graft.Register(graft.Node[ports.CapabilityDetector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CapabilityDetector, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
