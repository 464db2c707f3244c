// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mrjar/internal/adapters/archive"
	_ "go.trai.ch/mrjar/internal/adapters/cas"
	_ "go.trai.ch/mrjar/internal/adapters/config"
	_ "go.trai.ch/mrjar/internal/adapters/detector"
	_ "go.trai.ch/mrjar/internal/adapters/fs"
	_ "go.trai.ch/mrjar/internal/adapters/javac"
	_ "go.trai.ch/mrjar/internal/adapters/logger"
	_ "go.trai.ch/mrjar/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/mrjar/internal/app"
	_ "go.trai.ch/mrjar/internal/engine/assembler"
	_ "go.trai.ch/mrjar/internal/engine/orchestrator"
)
