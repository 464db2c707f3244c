package ports

import (
	"context"

	"go.trai.ch/mrjar/internal/core/domain"
)

// ArchiveWriter packages a staged directory tree into an archive file.
//
//go:generate go run go.uber.org/mock/mockgen -source=archiver.go -destination=mocks/mock_archiver.go -package=mocks
type ArchiveWriter interface {
	// Write archives every file below root into dest, writing manifest first.
	Write(ctx context.Context, root string, manifest *domain.Manifest, dest string) error
}
