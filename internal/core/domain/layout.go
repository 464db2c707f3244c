package domain

import "path/filepath"

const (
	// VersionsDir is the reserved archive namespace that holds per-release overrides.
	VersionsDir = "META-INF/versions"

	// ManifestPath is the location of the manifest inside the archive.
	ManifestPath = "META-INF/MANIFEST.MF"

	// MultiReleaseAttribute is the manifest attribute that flags a multi-release archive.
	MultiReleaseAttribute = "Multi-Release"

	// DescriptorSuffix is appended to the release output directory of the descriptor pass.
	DescriptorSuffix = "descriptor"

	// StagingPrefix prefixes the per-release staging directory for the descriptor split.
	StagingPrefix = "sources-"

	// StagingSourcesDir holds the release sources without the descriptor.
	StagingSourcesDir = "sources"

	// StagingDescriptorDir holds the descriptor unit alone.
	StagingDescriptorDir = "descriptor"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "mrjar.yaml"

	// DefaultCompiler is the compiler binary used when none is configured.
	DefaultCompiler = "javac"

	// StateDirName is the name of the tool's metadata directory, kept beside the output roots.
	StateDirName = ".mrjar"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// OutputDirFor returns the output directory of the sources pass for token:
// a sibling of defaultOutputDir named "<name>-<token>".
func OutputDirFor(defaultOutputDir string, token ReleaseToken) string {
	return sibling(defaultOutputDir, "-"+token.String())
}

// DescriptorOutputDirFor returns the output directory of the descriptor pass for token:
// a sibling of defaultOutputDir named "<name>-<token>-descriptor".
func DescriptorOutputDirFor(defaultOutputDir string, token ReleaseToken) string {
	return sibling(defaultOutputDir, "-"+token.String()+"-"+DescriptorSuffix)
}

// StagingRootFor returns the working directory used to split the descriptor from
// the release sources: "<parent-of-default-output>/sources-<token>".
func StagingRootFor(defaultOutputDir string, token ReleaseToken) string {
	return filepath.Join(filepath.Dir(filepath.Clean(defaultOutputDir)), StagingPrefix+token.String())
}

// VersionedPath returns the archive-relative directory for token's overrides.
func VersionedPath(token ReleaseToken) string {
	return filepath.Join(filepath.FromSlash(VersionsDir), token.String())
}

// StateDirFor returns the fingerprint directory kept next to an output root.
func StateDirFor(outputRoot string) string {
	return filepath.Join(filepath.Dir(filepath.Clean(outputRoot)), StateDirName)
}

func sibling(dir, suffix string) string {
	dir = filepath.Clean(dir)
	return filepath.Join(filepath.Dir(dir), filepath.Base(dir)+suffix)
}
