package domain

import (
	"fmt"
	"path/filepath"
)

// PassKind distinguishes the compilation passes of a build.
type PassKind string

const (
	// PassDefault compiles the base sources into the ambient output directory.
	PassDefault PassKind = "default"
	// PassSources compiles a release's sources into its release output directory.
	PassSources PassKind = "sources"
	// PassDescriptor compiles a release's module descriptor on its own.
	PassDescriptor PassKind = "descriptor"
)

// ReleaseSource is a discovered per-release source tree.
type ReleaseSource struct {
	Token         ReleaseToken
	Root          string
	HasDescriptor bool
}

// SplitRequest asks for a release tree to be staged and split before a pass runs.
type SplitRequest struct {
	ReleaseSourceRoot string
	StagingRoot       string
}

// SplitRoots are the two disjoint working trees produced by a split.
type SplitRoots struct {
	DescriptorRoot string
	SourcesRoot    string
}

// SplitRootsFor returns the roots a split of stagingRoot produces.
func SplitRootsFor(stagingRoot string) SplitRoots {
	return SplitRoots{
		DescriptorRoot: filepath.Join(stagingRoot, StagingDescriptorDir),
		SourcesRoot:    filepath.Join(stagingRoot, StagingSourcesDir),
	}
}

// CompilationPass is an immutable description of one compiler invocation.
type CompilationPass struct {
	Kind                 PassKind
	Release              ReleaseToken
	SourceRoot           string
	OutputRoot           string
	AuxiliarySourceRoots []string
	Config               ReleaseConfiguration
	Options              CompilerOptions
	Split                *SplitRequest
}

// IsDescriptorPass reports whether the pass compiles a module descriptor.
func (p CompilationPass) IsDescriptorPass() bool {
	return p.Kind == PassDescriptor
}

// Name returns a human-readable identifier for the pass.
func (p CompilationPass) Name() string {
	if p.Kind == PassDefault {
		return "compile default"
	}
	return fmt.Sprintf("compile %s (%s)", p.Release, p.Kind)
}

// SourceFile is a source unit selected for compilation.
type SourceFile struct {
	// Root is the source root the file was found under.
	Root string
	// Path is the absolute path of the file.
	Path string
	// Rel is the slash-separated path relative to Root.
	Rel string
}

// CompileRequest is everything a compiler needs for one pass.
type CompileRequest struct {
	Pass        string
	SourceRoots []string
	OutputRoot  string
	Classpath   []string
	// OutputSuffix is the suffix of compiled units, used for staleness checks.
	OutputSuffix string
	// Sources selects the candidate source units.
	Sources SourceFilter
	// Stale selects which candidates need recompilation.
	Stale   SourceFilter
	Options CompilerOptions
}

// CompileResult summarizes a compiler invocation.
type CompileResult struct {
	Compiled []string
	UpToDate bool
	NoSource bool
}

// PassResult records the outcome of one executed pass. Err is set when the
// pass failed, in which case Result is empty.
type PassResult struct {
	Pass   CompilationPass
	Result CompileResult
	Err    error
}

// Status returns the status of the pass, failed when Err is set.
func (r PassResult) Status() PassStatus {
	if r.Err != nil {
		return PassStatusFailed
	}
	return r.Result.Status()
}

// RunReport is returned by an orchestration run.
type RunReport struct {
	MultiRelease bool
	Releases     []ReleaseSource
	Passes       []PassResult
}

// Tokens returns the release tokens in discovery order.
func (r RunReport) Tokens() []ReleaseToken {
	tokens := make([]ReleaseToken, 0, len(r.Releases))
	for _, rel := range r.Releases {
		tokens = append(tokens, rel.Token)
	}
	return tokens
}
