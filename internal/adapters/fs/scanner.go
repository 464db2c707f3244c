package fs

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/mrjar/internal/core/domain"
	"go.trai.ch/mrjar/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceScanner = (*Scanner)(nil)

// Scanner implements ports.SourceScanner with Ant-style include and exclude patterns.
type Scanner struct {
	walker *Walker
}

// NewScanner creates a new Scanner.
func NewScanner(walker *Walker) *Scanner {
	return &Scanner{walker: walker}
}

// Scan returns the files below roots that carry the filter's suffix, match at
// least one include and no exclude. A file reachable from several roots is
// reported once, under the first root.
func (s *Scanner) Scan(roots []string, filter domain.SourceFilter) ([]domain.SourceFile, error) {
	if err := validatePatterns(filter); err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var files []domain.SourceFile

	for _, root := range roots {
		for file, err := range s.walker.WalkFiles(root) {
			if err != nil {
				return nil, zerr.With(errors.Join(domain.ErrSourceScanFailed, err), "root", root)
			}
			if seen[file.Rel] || !selected(file.Rel, filter) {
				continue
			}
			seen[file.Rel] = true
			files = append(files, file)
		}
	}

	return files, nil
}

// Stale keeps the files whose compiled counterpart is missing or older than the
// source by more than StaleMillis.
func (s *Scanner) Stale(
	files []domain.SourceFile,
	outputRoot, outputSuffix string,
	filter domain.SourceFilter,
) ([]domain.SourceFile, error) {
	if !filter.Stale {
		return files, nil
	}

	tolerance := time.Duration(filter.StaleMillis) * time.Millisecond
	var stale []domain.SourceFile

	for _, file := range files {
		src, err := os.Stat(file.Path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to stat source"), "path", file.Path)
		}

		target := filepath.Join(outputRoot, filepath.FromSlash(targetName(file.Rel, filter.Suffix, outputSuffix)))
		out, err := os.Stat(target)
		if err != nil {
			if isNotExist(err) {
				stale = append(stale, file)
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to stat compiled output"), "path", target)
		}

		if src.ModTime().After(out.ModTime().Add(tolerance)) {
			stale = append(stale, file)
		}
	}

	return stale, nil
}

func selected(rel string, filter domain.SourceFilter) bool {
	if filter.Suffix != "" && !strings.HasSuffix(rel, filter.Suffix) {
		return false
	}
	if !matchAny(filter.Includes, rel) {
		return false
	}
	return !matchAny(filter.Excludes, rel)
}

func matchAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(normalizePattern(p), rel); ok {
			return true
		}
	}
	return false
}

// normalizePattern applies the Ant convention that a trailing slash means "everything below".
func normalizePattern(p string) string {
	p = filepath.ToSlash(p)
	if strings.HasSuffix(p, "/") {
		p += "**"
	}
	return p
}

func validatePatterns(filter domain.SourceFilter) error {
	for _, p := range append(append([]string{}, filter.Includes...), filter.Excludes...) {
		if !doublestar.ValidatePattern(normalizePattern(p)) {
			return zerr.With(zerr.Wrap(domain.ErrInvalidPattern, "rejected pattern"), "pattern", p)
		}
	}
	return nil
}

func targetName(rel, sourceSuffix, outputSuffix string) string {
	return strings.TrimSuffix(rel, sourceSuffix) + domain.NormalizeSuffix(outputSuffix)
}
