// Package cas implements build info storage for compiler fingerprints.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/mrjar/internal/core/domain"
	"go.trai.ch/mrjar/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildInfoStore = (*Store)(nil)

// Store implements ports.BuildInfoStore using a file-per-output-root strategy.
// Entries live in the state directory next to the output root they describe.
type Store struct{}

// NewStore creates a new BuildInfoStore.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the build info for a given output root.
func (s *Store) Get(outputRoot string) (*domain.BuildInfo, error) {
	filename := s.getFilename(outputRoot)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrStoreReadFailed, err), "path", filename)
	}

	var info domain.BuildInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreReadFailed, err), "path", filename)
	}

	return &info, nil
}

// Put stores the build info.
func (s *Store) Put(info domain.BuildInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrStoreWriteFailed, err)
	}

	filename := s.getFilename(info.OutputRoot)
	if err := os.MkdirAll(filepath.Dir(filename), domain.DirPerm); err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", filepath.Dir(filename))
	}

	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	if err := os.WriteFile(filename, data, domain.FilePerm); err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", filename)
	}

	return nil
}

func (s *Store) getFilename(outputRoot string) string {
	clean := filepath.Clean(outputRoot)
	hash := sha256.Sum256([]byte(clean))
	return filepath.Join(domain.StateDirFor(clean), hex.EncodeToString(hash[:])+".json")
}
