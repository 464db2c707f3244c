package ports

// Stager performs the filesystem operations used to stage sources and archive trees.
//
//go:generate go run go.uber.org/mock/mockgen -source=stager.go -destination=mocks/mock_stager.go -package=mocks
type Stager interface {
	// CopyTree recursively copies src into dst, creating dst as needed.
	CopyTree(src, dst string) error
	// MoveFile moves a single file, creating the destination's parent directory.
	MoveFile(src, dst string) error
	// RemoveAll removes path and everything below it. A missing path is not an error.
	RemoveAll(path string) error
	// MkdirAll creates path and any missing parents.
	MkdirAll(path string) error
	// Exists reports whether path exists.
	Exists(path string) bool
	// IsEmptyDir reports whether path is missing or a directory with no entries.
	IsEmptyDir(path string) (bool, error)
	// ListDirs returns the names of the direct subdirectories of path, sorted by name.
	ListDirs(path string) ([]string, error)
}
