package ports

import "context"

// CapabilityDetector reports whether the active toolchain can build multi-release archives.
//
//go:generate go run go.uber.org/mock/mockgen -source=detector.go -destination=mocks/mock_detector.go -package=mocks
type CapabilityDetector interface {
	// MultiReleaseSupported inspects the compiler executable and reports support.
	MultiReleaseSupported(ctx context.Context, executable string) bool
}
