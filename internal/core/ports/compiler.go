// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/mrjar/internal/core/domain"
)

// Compiler compiles the source units selected by a request into its output root.
//
// Implementations own the staleness policy: a request whose units are all up to date
// may return a result with UpToDate set instead of invoking the underlying tool.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Compile runs one compilation pass.
	// It returns an error if the compiler reports errors or cannot be started.
	Compile(ctx context.Context, req domain.CompileRequest) (domain.CompileResult, error)
}
