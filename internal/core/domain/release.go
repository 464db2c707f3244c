package domain

import (
	"maps"
	"slices"
)

// ReleaseToken identifies a target platform release, e.g. "11" or "17".
// It is used both as a directory-name segment and as the compiler's release level.
type ReleaseToken string

// String returns the token as a plain string.
func (t ReleaseToken) String() string {
	return string(t)
}

// CompilerOptions is the fully resolved set of options handed to a compiler for one pass.
// Unlike ReleaseConfiguration, every field here carries a concrete value.
type CompilerOptions struct {
	Includes                  []string
	Excludes                  []string
	Source                    string
	Target                    string
	Release                   string
	Encoding                  string
	CompilerArgs              []string
	CompilerArgument          string
	CompilerArguments         map[string]string
	GeneratedSourcesDirectory string
	StaleMillis               int
	Debug                     bool
	DebugLevel                string
	Verbose                   bool
	ShowWarnings              bool
	ShowDeprecation           bool
	FailOnWarning             bool
	Executable                string
}

// Clone returns a deep copy of the options.
func (o CompilerOptions) Clone() CompilerOptions {
	c := o
	c.Includes = slices.Clone(o.Includes)
	c.Excludes = slices.Clone(o.Excludes)
	c.CompilerArgs = slices.Clone(o.CompilerArgs)
	c.CompilerArguments = maps.Clone(o.CompilerArguments)
	return c
}

// ReleaseConfiguration holds the per-release overrides for a compilation pass.
// A nil field means "inherit the ambient default". An empty, non-nil slice is a set value.
type ReleaseConfiguration struct {
	Token                     ReleaseToken
	Includes                  []string
	Excludes                  []string
	Source                    *string
	Target                    *string
	Release                   *string
	Encoding                  *string
	CompilerArgs              []string
	CompilerArgument          *string
	CompilerArguments         map[string]string
	GeneratedSourcesDirectory *string
	StaleMillis               *int
	Debug                     *bool
	DebugLevel                *string
	Verbose                   *bool
	ShowWarnings              *bool
	ShowDeprecation           *bool
	FailOnWarning             *bool
	Executable                *string
}

// EmptyForRelease returns a configuration for token with every option unset.
func EmptyForRelease(token ReleaseToken) ReleaseConfiguration {
	return ReleaseConfiguration{Token: token}
}

// Clone returns a deep copy of the configuration.
func (c ReleaseConfiguration) Clone() ReleaseConfiguration {
	out := c
	out.Includes = cloneSet(c.Includes)
	out.Excludes = cloneSet(c.Excludes)
	out.CompilerArgs = cloneSet(c.CompilerArgs)
	if c.CompilerArguments != nil {
		out.CompilerArguments = maps.Clone(c.CompilerArguments)
	}
	out.Source = clonePtr(c.Source)
	out.Target = clonePtr(c.Target)
	out.Release = clonePtr(c.Release)
	out.Encoding = clonePtr(c.Encoding)
	out.CompilerArgument = clonePtr(c.CompilerArgument)
	out.GeneratedSourcesDirectory = clonePtr(c.GeneratedSourcesDirectory)
	out.StaleMillis = clonePtr(c.StaleMillis)
	out.Debug = clonePtr(c.Debug)
	out.DebugLevel = clonePtr(c.DebugLevel)
	out.Verbose = clonePtr(c.Verbose)
	out.ShowWarnings = clonePtr(c.ShowWarnings)
	out.ShowDeprecation = clonePtr(c.ShowDeprecation)
	out.FailOnWarning = clonePtr(c.FailOnWarning)
	out.Executable = clonePtr(c.Executable)
	return out
}

// ForDescriptor returns a copy of the configuration that only includes the module
// descriptor unit. The receiver keeps its configured includes and excludes.
func (c ReleaseConfiguration) ForDescriptor(unitFile string) ReleaseConfiguration {
	out := c.Clone()
	out.Includes = []string{unitFile}
	out.Excludes = []string{}
	return out
}

// Effective merges the configuration over the ambient options, field by field.
func (c ReleaseConfiguration) Effective(ambient CompilerOptions) CompilerOptions {
	eff := ambient.Clone()

	if c.Includes != nil {
		eff.Includes = slices.Clone(c.Includes)
	}
	if c.Excludes != nil {
		eff.Excludes = slices.Clone(c.Excludes)
	}
	if c.CompilerArgs != nil {
		eff.CompilerArgs = slices.Clone(c.CompilerArgs)
	}
	if c.CompilerArguments != nil {
		eff.CompilerArguments = maps.Clone(c.CompilerArguments)
	}

	eff.Source = valueOr(c.Source, eff.Source)
	eff.Target = valueOr(c.Target, eff.Target)
	eff.Release = valueOr(c.Release, eff.Release)
	eff.Encoding = valueOr(c.Encoding, eff.Encoding)
	eff.CompilerArgument = valueOr(c.CompilerArgument, eff.CompilerArgument)
	eff.GeneratedSourcesDirectory = valueOr(c.GeneratedSourcesDirectory, eff.GeneratedSourcesDirectory)
	eff.StaleMillis = valueOr(c.StaleMillis, eff.StaleMillis)
	eff.Debug = valueOr(c.Debug, eff.Debug)
	eff.DebugLevel = valueOr(c.DebugLevel, eff.DebugLevel)
	eff.Verbose = valueOr(c.Verbose, eff.Verbose)
	eff.ShowWarnings = valueOr(c.ShowWarnings, eff.ShowWarnings)
	eff.ShowDeprecation = valueOr(c.ShowDeprecation, eff.ShowDeprecation)
	eff.FailOnWarning = valueOr(c.FailOnWarning, eff.FailOnWarning)
	eff.Executable = valueOr(c.Executable, eff.Executable)

	return eff
}

// Ptr returns a pointer to v. It is a convenience for building configurations.
func Ptr[T any](v T) *T {
	return &v
}

func valueOr[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// cloneSet copies a slice while keeping the nil/empty distinction.
func cloneSet(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
