package domain

import "go.trai.ch/zerr"

var (
	// ErrCompilationFailed is returned when the compiler reports errors for a pass.
	ErrCompilationFailed = zerr.New("compilation failed")

	// ErrStagingFailed is returned when copying or moving files during staging or assembly fails.
	ErrStagingFailed = zerr.New("failed to stage files")

	// ErrManifestUpdateFailed is returned when the archive manifest cannot be modified.
	ErrManifestUpdateFailed = zerr.New("could not modify the archive configuration")

	// ErrArchiveWriteFailed is returned when the archive file cannot be written.
	ErrArchiveWriteFailed = zerr.New("failed to write archive")

	// ErrReleaseDiscoveryFailed is returned when the per-release source directory cannot be listed.
	ErrReleaseDiscoveryFailed = zerr.New("failed to discover release source directories")

	// ErrSourceScanFailed is returned when the source roots cannot be scanned.
	ErrSourceScanFailed = zerr.New("failed to scan source roots")

	// ErrInvalidPattern is returned when an include or exclude pattern is malformed.
	ErrInvalidPattern = zerr.New("invalid source pattern")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file can be found.
	ErrConfigNotFound = zerr.New("could not find mrjar.yaml")

	// ErrConfigVersionUnsupported is returned when the config file declares an unknown schema version.
	ErrConfigVersionUnsupported = zerr.New("unsupported config file version")

	// ErrInvalidMultiReleaseMode is returned for an unknown multi-release mode.
	ErrInvalidMultiReleaseMode = zerr.New("invalid multi-release mode, expected 'auto', 'always' or 'never'")

	// ErrEmptyReleaseToken is returned when a release override has no release token.
	ErrEmptyReleaseToken = zerr.New("release override is missing its release token")

	// ErrStoreReadFailed is returned when the build info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info")

	// ErrStoreWriteFailed is returned when the build info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info")

	// ErrBuildExecutionFailed is returned when the build execution fails.
	ErrBuildExecutionFailed = zerr.New("build execution failed")
)
