package fs

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/mrjar/internal/core/domain"
	"go.trai.ch/mrjar/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Stager = (*Stager)(nil)

// Stager implements ports.Stager on the local filesystem.
type Stager struct{}

// NewStager creates a new Stager.
func NewStager() *Stager {
	return &Stager{}
}

// CopyTree recursively copies src into dst. File modes are preserved and
// modification times are carried over so staleness checks stay meaningful.
func (s *Stager) CopyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat copy source"), "path", src)
	}
	if !info.IsDir() {
		return s.copyFile(src, dst, info)
	}

	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to walk copy source"), "path", path)
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve relative path"), "path", path)
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", target)
			}
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
		}
		return s.copyFile(path, target, fi)
	})
}

func (s *Stager) copyFile(src, dst string, info fs.FileInfo) error {
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(dst))
	}

	in, err := os.Open(src) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // Best effort close in defer

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm()) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create file"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.With(zerr.Wrap(err, "failed to copy file"), "source", src), "destination", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close file"), "path", dst)
	}

	if err := os.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to preserve modification time"), "path", dst)
	}
	return nil
}

// MoveFile moves a single file, falling back to copy-and-delete across devices.
func (s *Stager) MoveFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", filepath.Dir(dst))
	}

	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat move source"), "path", src)
	}
	if err := s.copyFile(src, dst, info); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove move source"), "path", src)
	}
	return nil
}

// RemoveAll removes path and everything below it.
func (s *Stager) RemoveAll(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove path"), "path", path)
	}
	return nil
}

// MkdirAll creates path and any missing parents.
func (s *Stager) MkdirAll(path string) error {
	if err := os.MkdirAll(path, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", path)
	}
	return nil
}

// Exists reports whether path exists.
func (s *Stager) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsEmptyDir reports whether path is missing or has no entries.
func (s *Stager) IsEmptyDir(path string) (bool, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if isNotExist(err) {
			return true, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to open directory"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := f.Readdirnames(1); err != nil {
		if errors.Is(err, io.EOF) {
			return true, nil
		}
		return false, zerr.With(zerr.Wrap(err, "failed to read directory"), "path", path)
	}
	return false, nil
}

// ListDirs returns the sorted names of the direct subdirectories of path.
func (s *Stager) ListDirs(path string) ([]string, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list directory"), "path", path)
	}

	dirs := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	slices.Sort(dirs)
	return dirs, nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
