package domain

import "strings"

// AllFilesPattern matches every file below a source root.
const AllFilesPattern = "**/*"

// SourceFilter selects source units below a set of source roots.
//
// Patterns are Ant-style globs relative to a source root. Suffix restricts the
// candidates to files carrying the compiler's source suffix.
type SourceFilter struct {
	Includes []string
	Excludes []string
	Suffix   string
	// Stale enables recompilation-staleness filtering against the output root.
	Stale bool
	// StaleMillis is the tolerance, in milliseconds, applied when Stale is set.
	StaleMillis int
}

// NormalizeSuffix returns the suffix with a leading dot.
func NormalizeSuffix(suffix string) string {
	if suffix == "" || strings.HasPrefix(suffix, ".") {
		return suffix
	}
	return "." + suffix
}

// DefaultIncludePattern returns the wildcard pattern for a source suffix.
func DefaultIncludePattern(suffix string) string {
	return "**/*" + NormalizeSuffix(suffix)
}

// NewStaleFilter builds the staleness-aware filter used to decide what to recompile.
//
// With no includes and no excludes it matches everything and relies on staleness only.
// With excludes but no includes, includes default to the suffix wildcard.
func NewStaleFilter(includes, excludes []string, suffix string, staleMillis int) SourceFilter {
	f := SourceFilter{
		Suffix:      NormalizeSuffix(suffix),
		Stale:       true,
		StaleMillis: staleMillis,
	}

	if len(includes) == 0 && len(excludes) == 0 {
		f.Includes = []string{AllFilesPattern}
		f.Excludes = []string{}
		return f
	}

	f.Includes = cloneSet(includes)
	f.Excludes = cloneSet(excludes)
	if len(f.Includes) == 0 {
		f.Includes = []string{DefaultIncludePattern(suffix)}
	}
	if f.Excludes == nil {
		f.Excludes = []string{}
	}
	return f
}

// NewSuffixFilter builds the plain pattern filter used to find candidate sources.
//
// Includes default to the suffix wildcard whenever they are empty.
func NewSuffixFilter(includes, excludes []string, suffix string) SourceFilter {
	f := SourceFilter{
		Suffix:   NormalizeSuffix(suffix),
		Includes: cloneSet(includes),
		Excludes: cloneSet(excludes),
	}

	if len(f.Includes) == 0 {
		f.Includes = []string{DefaultIncludePattern(suffix)}
	}
	if f.Excludes == nil {
		f.Excludes = []string{}
	}
	return f
}
