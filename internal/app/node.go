package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mrjar/internal/adapters/archive"            //nolint:depguard // Wired in app layer
	"go.trai.ch/mrjar/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/mrjar/internal/adapters/detector"           //nolint:depguard // Wired in app layer
	"go.trai.ch/mrjar/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/mrjar/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/mrjar/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/mrjar/internal/core/ports"
	"go.trai.ch/mrjar/internal/engine/assembler"
	"go.trai.ch/mrjar/internal/engine/orchestrator"
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
			config.NodeID,
			detector.NodeID,
			orchestrator.NodeID,
			assembler.NodeID,
			archive.NodeID,
			fs.StagerNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	det, err := graft.Dep[ports.CapabilityDetector](ctx)
	if err != nil {
		return nil, err
	}

	orch, err := graft.Dep[*orchestrator.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}

	asm, err := graft.Dep[*assembler.Assembler](ctx)
	if err != nil {
		return nil, err
	}

	archiver, err := graft.Dep[ports.ArchiveWriter](ctx)
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

	return New(loader, det, orch, asm, archiver, stager, telemetry, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       app,
		Logger:    log,
		Telemetry: telemetry,
	}, nil
}
