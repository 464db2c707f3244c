package ports

// Hasher defines the interface for computing fingerprints.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash computes the hash of a file's content.
	ComputeFileHash(path string) (uint64, error)
	// ComputeArgsHash computes a stable fingerprint of an argument list.
	ComputeArgsHash(args []string) string
}
