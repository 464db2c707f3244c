package domain

import "slices"

// Project is the ambient build state shared by every compilation pass.
//
// OutputDirectory is redirected for each pass and restored afterwards;
// DefaultOutputDirectory never changes.
type Project struct {
	BaseDir                     string
	BuildDirectory              string
	DefaultOutputDirectory      string
	OutputDirectory             string
	SourceDirectory             string
	CompileSourceRoots          []string
	MultiReleaseSourceDirectory string
	ArchiveStagingDirectory     string
	ArchiveFile                 string
	Classpath                   []string
	MainRelease                 ReleaseToken
	DescriptorName              string
	SourceSuffix                string
	OutputSuffix                string
	MultiReleaseMode            MultiReleaseMode
	MultiReleaseSupported       bool
	Options                     CompilerOptions
	Releases                    []ReleaseConfiguration
	ManifestEntries             map[string]string
}

// CompilerExecutable returns the compiler binary used by the default pass.
func (p *Project) CompilerExecutable() string {
	if p.Options.Executable != "" {
		return p.Options.Executable
	}
	return DefaultCompiler
}

// DescriptorSourceFile returns the file name of the module descriptor source unit.
func (p *Project) DescriptorSourceFile() string {
	return p.DescriptorName + NormalizeSuffix(p.SourceSuffix)
}

// DescriptorClassFile returns the file name of the compiled module descriptor.
func (p *Project) DescriptorClassFile() string {
	return p.DescriptorName + NormalizeSuffix(p.OutputSuffix)
}

// ClasspathElements returns the compile classpath as the compiler sees it:
// the current output directory first, then the configured entries.
func (p *Project) ClasspathElements() []string {
	elems := make([]string, 0, len(p.Classpath)+1)
	elems = append(elems, p.OutputDirectory)
	elems = append(elems, p.Classpath...)
	return elems
}

// SourceRoots returns a copy of the configured compile source roots.
func (p *Project) SourceRoots() []string {
	return slices.Clone(p.CompileSourceRoots)
}
