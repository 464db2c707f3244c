package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mrjar/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mrjar/internal/adapters/javac"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mrjar/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mrjar/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/mrjar/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			javac.NodeID,
			fs.StagerNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			compiler, err := graft.Dep[ports.Compiler](ctx)
			if err != nil {
				return nil, err
			}

			stager, err := graft.Dep[ports.Stager](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(compiler, stager, telemetry, log), nil
		},
	})
}
