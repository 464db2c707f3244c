// Package archive writes staged class trees into jar archives.
package archive

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"go.trai.ch/mrjar/internal/core/domain"
	"go.trai.ch/mrjar/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxLineBytes is the manifest line length limit, excluding the line break.
const maxLineBytes = 72

var _ ports.ArchiveWriter = (*Writer)(nil)

// Writer implements ports.ArchiveWriter with zip archives.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write archives root into dest. The manifest is always the first entry and any
// manifest file present in root is ignored. The archive is written to a temporary
// file and renamed into place on success.
func (w *Writer) Write(ctx context.Context, root string, manifest *domain.Manifest, dest string) (err error) {
	if err := os.MkdirAll(filepath.Dir(dest), domain.DirPerm); err != nil {
		return zerr.With(errors.Join(domain.ErrArchiveWriteFailed, err), "path", dest)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dest), "."+filepath.Base(dest)+".*")
	if err != nil {
		return zerr.With(errors.Join(domain.ErrArchiveWriteFailed, err), "path", dest)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	buf := bufio.NewWriter(tmp)
	zw := zip.NewWriter(buf)

	if err := writeManifest(zw, manifest); err != nil {
		return zerr.With(errors.Join(domain.ErrArchiveWriteFailed, err), "path", dest)
	}
	if err := writeTree(ctx, zw, root); err != nil {
		return zerr.With(errors.Join(domain.ErrArchiveWriteFailed, err), "path", dest)
	}

	if err := zw.Close(); err != nil {
		return zerr.With(errors.Join(domain.ErrArchiveWriteFailed, err), "path", dest)
	}
	if err := buf.Flush(); err != nil {
		return zerr.With(errors.Join(domain.ErrArchiveWriteFailed, err), "path", dest)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(errors.Join(domain.ErrArchiveWriteFailed, err), "path", dest)
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.With(errors.Join(domain.ErrArchiveWriteFailed, err), "path", dest)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		return zerr.With(errors.Join(domain.ErrArchiveWriteFailed, err), "path", dest)
	}
	return nil
}

func writeManifest(zw *zip.Writer, manifest *domain.Manifest) error {
	if manifest == nil {
		manifest = domain.NewManifest()
	}

	if _, err := zw.Create("META-INF/"); err != nil {
		return zerr.Wrap(err, "failed to create META-INF entry")
	}
	f, err := zw.Create(domain.ManifestPath)
	if err != nil {
		return zerr.Wrap(err, "failed to create manifest entry")
	}
	if _, err := io.WriteString(f, RenderManifest(manifest)); err != nil {
		return zerr.Wrap(err, "failed to write manifest")
	}
	return nil
}

func writeTree(ctx context.Context, zw *zip.Writer, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to walk archive root"), "path", path)
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to resolve relative path"), "path", path)
		}
		name := filepath.ToSlash(rel)

		// Written up front.
		if name == "META-INF" || name == domain.ManifestPath {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to stat file"), "path", path)
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to build entry header"), "path", path)
		}
		header.Name = name
		if d.IsDir() {
			header.Name += "/"
			header.Method = zip.Store
			if _, err := zw.CreateHeader(header); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to create directory entry"), "name", name)
			}
			return nil
		}
		header.Method = zip.Deflate

		entry, err := zw.CreateHeader(header)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create entry"), "name", name)
		}
		return copyFile(entry, path)
	})
}

func copyFile(dst io.Writer, path string) error {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(dst, f); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write entry"), "path", path)
	}
	return nil
}

// RenderManifest renders the main section of a manifest, wrapping long lines
// with single-space continuation lines.
func RenderManifest(m *domain.Manifest) string {
	var sb strings.Builder
	m.Each(func(name, value string) {
		line := name + ": " + value
		width := maxLineBytes
		for len(line) > width {
			sb.WriteString(line[:width])
			sb.WriteString("\r\n ")
			line = line[width:]
			// Continuation lines lose one byte to the leading space.
			width = maxLineBytes - 1
		}
		sb.WriteString(line)
		sb.WriteString("\r\n")
	})
	sb.WriteString("\r\n")
	return sb.String()
}
