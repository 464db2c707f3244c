package ports

import "go.trai.ch/mrjar/internal/core/domain"

// SourceScanner selects source units below a set of roots.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type SourceScanner interface {
	// Scan returns the files below roots that match filter, in root order then path order.
	Scan(roots []string, filter domain.SourceFilter) ([]domain.SourceFile, error)
	// Stale narrows files to the ones whose compiled counterpart in outputRoot is
	// missing or older than the source by more than the filter's tolerance.
	Stale(files []domain.SourceFile, outputRoot, outputSuffix string, filter domain.SourceFilter) ([]domain.SourceFile, error)
}
