// Package assembler lays out the staged tree of a multi-release archive.
package assembler

import (
	"context"
	"errors"
	"path/filepath"

	"go.trai.ch/mrjar/internal/core/domain"
	"go.trai.ch/mrjar/internal/core/ports"
	"go.trai.ch/zerr"
)

// Assembler merges the default output and the per-release outputs into one
// staging root, ready to be archived.
type Assembler struct {
	stager ports.Stager
	logger ports.Logger
}

// New creates a new Assembler.
func New(stager ports.Stager, logger ports.Logger) *Assembler {
	return &Assembler{
		stager: stager,
		logger: logger,
	}
}

// Assemble recreates req.StagingRoot from the compiled outputs.
//
// The default output becomes the archive root. The main release's compiled
// descriptor, when present, is copied to the archive root; the descriptor output
// is left intact so assembly can be repeated. Every release with a
// non-empty output is copied below META-INF/versions/<token>, and if at least one
// was copied the manifest is flagged as multi-release.
func (a *Assembler) Assemble(ctx context.Context, req domain.AssembleRequest) (domain.ArchiveLayout, error) {
	root := req.StagingRoot
	layout := domain.ArchiveLayout{
		BaseClassesRoot: root,
		PerReleaseRoots: make(map[domain.ReleaseToken]string),
	}

	if err := a.stager.RemoveAll(root); err != nil {
		return layout, stagingError(err, root, "")
	}
	if err := a.stager.MkdirAll(root); err != nil {
		return layout, stagingError(err, "", root)
	}
	if a.stager.Exists(req.DefaultOutputDir) {
		if err := a.stager.CopyTree(req.DefaultOutputDir, root); err != nil {
			return layout, stagingError(err, req.DefaultOutputDir, root)
		}
	}

	if req.MainRelease != "" {
		descriptor := filepath.Join(domain.DescriptorOutputDirFor(req.DefaultOutputDir, req.MainRelease), req.DescriptorClass)
		if a.stager.Exists(descriptor) {
			dest := filepath.Join(root, req.DescriptorClass)
			if err := a.stager.CopyTree(descriptor, dest); err != nil {
				return layout, stagingError(err, descriptor, dest)
			}
			layout.DescriptorClassPath = dest
		} else {
			a.logger.Warn("no module descriptor found for main release " + req.MainRelease.String() + " at " + descriptor)
		}
	}

	for _, token := range req.Releases {
		if err := ctx.Err(); err != nil {
			return layout, err
		}

		src := domain.OutputDirFor(req.DefaultOutputDir, token)
		empty, err := a.stager.IsEmptyDir(src)
		if err != nil {
			return layout, stagingError(err, src, "")
		}
		if empty {
			continue
		}

		dest := filepath.Join(root, domain.VersionedPath(token))
		if err := a.stager.CopyTree(src, dest); err != nil {
			return layout, stagingError(err, src, dest)
		}
		layout.PerReleaseRoots[token] = dest
	}

	if len(layout.PerReleaseRoots) > 0 {
		if err := req.Manifest.Set(domain.MultiReleaseAttribute, "true"); err != nil {
			return layout, errors.Join(domain.ErrManifestUpdateFailed, err)
		}
		layout.MultiRelease = true
	}

	return layout, nil
}

func stagingError(err error, src, dst string) error {
	wrapped := errors.Join(domain.ErrStagingFailed, err)
	if src != "" {
		wrapped = zerr.With(wrapped, "source", src)
	}
	if dst != "" {
		wrapped = zerr.With(wrapped, "destination", dst)
	}
	return wrapped
}
