// Package fs provides file system adapters for staging, scanning and hashing files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/mrjar/internal/core/domain"
)

// vcsDirs are never descended into.
var vcsDirs = map[string]bool{
	".git": true,
	".jj":  true,
	".hg":  true,
	".svn": true,
}

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields every regular file below root in lexical order, skipping VCS
// metadata directories. A missing root yields nothing.
func (w *Walker) WalkFiles(root string) iter.Seq2[domain.SourceFile, error] {
	return func(yield func(domain.SourceFile, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if path == root && isNotExist(err) {
					return filepath.SkipAll
				}
				return err
			}

			if d.IsDir() {
				if path != root && vcsDirs[d.Name()] {
					return filepath.SkipDir
				}
				return nil
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}

			file := domain.SourceFile{Root: root, Path: path, Rel: filepath.ToSlash(rel)}
			if !yield(file, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield(domain.SourceFile{}, err)
		}
	}
}
