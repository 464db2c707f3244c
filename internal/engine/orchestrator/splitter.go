package orchestrator

import (
	"errors"
	"path/filepath"

	"go.trai.ch/mrjar/internal/core/domain"
	"go.trai.ch/mrjar/internal/core/ports"
	"go.trai.ch/zerr"
)

// Splitter stages a release source tree and isolates its module descriptor.
type Splitter struct {
	stager ports.Stager
}

// NewSplitter creates a new Splitter.
func NewSplitter(stager ports.Stager) *Splitter {
	return &Splitter{stager: stager}
}

// Split copies req.ReleaseSourceRoot into "<staging>/sources" and moves the
// descriptor unit from there into "<staging>/descriptor". Any previous staging
// tree is removed first so a working copy is never reused. Partial staging is
// left in place on failure.
func (s *Splitter) Split(req domain.SplitRequest, descriptorFile string) (domain.SplitRoots, error) {
	roots := domain.SplitRootsFor(req.StagingRoot)

	if err := s.stager.RemoveAll(req.StagingRoot); err != nil {
		return domain.SplitRoots{}, stagingError(err, req.StagingRoot, "")
	}
	if err := s.stager.CopyTree(req.ReleaseSourceRoot, roots.SourcesRoot); err != nil {
		return domain.SplitRoots{}, stagingError(err, req.ReleaseSourceRoot, roots.SourcesRoot)
	}

	src := filepath.Join(roots.SourcesRoot, descriptorFile)
	dst := filepath.Join(roots.DescriptorRoot, descriptorFile)
	if err := s.stager.MoveFile(src, dst); err != nil {
		return domain.SplitRoots{}, stagingError(err, src, dst)
	}

	return roots, nil
}

func stagingError(err error, src, dst string) error {
	wrapped := zerr.With(errors.Join(domain.ErrStagingFailed, err), "source", src)
	if dst != "" {
		wrapped = zerr.With(wrapped, "destination", dst)
	}
	return wrapped
}
