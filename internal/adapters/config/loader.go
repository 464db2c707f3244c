// Package config provides the configuration loader for mrjar.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/mrjar/internal/core/domain"
	"go.trai.ch/mrjar/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Default locations, relative to the project base directory.
const (
	DefaultSourceDirectory             = "src/main/java"
	DefaultMultiReleaseSourceDirectory = "src/main/java-mr"
	DefaultBuildDirectory              = "target"
	DefaultOutputDirectory             = "target/classes"
	DefaultStagingDirectory            = "target/multi-release-jar"
	DefaultSourceSuffix                = ".java"
	DefaultOutputSuffix                = ".class"
	DefaultDescriptor                  = "module-info"

	// SchemaVersion is the configuration schema this loader understands.
	// An empty version is read as this one.
	SchemaVersion = "1"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration and returns the project it describes.
// cwd is either a configuration file or a directory to start searching upwards from.
func (l *Loader) Load(cwd string) (*domain.Project, error) {
	configPath, err := l.findConfiguration(cwd)
	if err != nil {
		return nil, err
	}

	var file Mrjarfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return l.toProject(configPath, &file)
}

func (l *Loader) findConfiguration(cwd string) (string, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve working directory"), "cwd", cwd)
	}

	if info, err := os.Stat(abs); err == nil && !info.IsDir() {
		return abs, nil
	}

	currentDir := abs
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "search exhausted"), "cwd", cwd)
}

func (l *Loader) toProject(configPath string, file *Mrjarfile) (*domain.Project, error) {
	if file.Version != "" && file.Version != SchemaVersion {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigVersionUnsupported, "unknown schema version"), "version", file.Version)
	}

	base := resolveRoot(configPath, file.Root)
	resolve := func(p, fallback string) string {
		if p == "" {
			p = fallback
		}
		return resolvePath(base, p)
	}

	mode, err := domain.ParseMultiReleaseMode(file.MultiRelease)
	if err != nil {
		return nil, err
	}

	sourceDir := resolve(file.SourceDirectory, DefaultSourceDirectory)
	buildDir := resolve(file.BuildDirectory, DefaultBuildDirectory)
	outputDir := resolve(file.OutputDirectory, DefaultOutputDirectory)

	roots := []string{sourceDir}
	for _, r := range file.SourceRoots {
		roots = append(roots, resolvePath(base, r))
	}

	classpath := make([]string, 0, len(file.Classpath))
	for _, c := range file.Classpath {
		classpath = append(classpath, resolvePath(base, c))
	}

	archive := file.Archive
	if archive == "" {
		archive = filepath.Join(buildDir, filepath.Base(base)+".jar")
	}

	releases, err := l.toReleases(base, file.Releases)
	if err != nil {
		return nil, err
	}

	options := toOptions(base, file.Compiler)

	return &domain.Project{
		BaseDir:                     base,
		BuildDirectory:              buildDir,
		DefaultOutputDirectory:      outputDir,
		OutputDirectory:             outputDir,
		SourceDirectory:             sourceDir,
		CompileSourceRoots:          roots,
		MultiReleaseSourceDirectory: resolve(file.MultiReleaseSourceDirectory, DefaultMultiReleaseSourceDirectory),
		ArchiveStagingDirectory:     resolve(file.StagingDirectory, DefaultStagingDirectory),
		ArchiveFile:                 resolvePath(base, archive),
		Classpath:                   classpath,
		MainRelease:                 domain.ReleaseToken(file.MainRelease),
		DescriptorName:              valueOr(file.Descriptor, DefaultDescriptor),
		SourceSuffix:                domain.NormalizeSuffix(valueOr(file.SourceSuffix, DefaultSourceSuffix)),
		OutputSuffix:                domain.NormalizeSuffix(valueOr(file.OutputSuffix, DefaultOutputSuffix)),
		MultiReleaseMode:            mode,
		Options:                     options,
		Releases:                    releases,
		ManifestEntries:             file.Manifest,
	}, nil
}

func (l *Loader) toReleases(base string, dtos []ReleaseDTO) ([]domain.ReleaseConfiguration, error) {
	seen := make(map[string]bool, len(dtos))
	releases := make([]domain.ReleaseConfiguration, 0, len(dtos))

	for i, dto := range dtos {
		if dto.Release == "" {
			return nil, zerr.With(zerr.Wrap(domain.ErrEmptyReleaseToken, "invalid release override"), "index", i)
		}
		if seen[dto.Release] {
			l.Logger.Warn(fmt.Sprintf("release %s is configured more than once, the last entry wins", dto.Release))
		}
		seen[dto.Release] = true

		releases = append(releases, toReleaseConfiguration(base, dto))
	}
	return releases, nil
}

func toReleaseConfiguration(base string, dto ReleaseDTO) domain.ReleaseConfiguration {
	o := dto.Configuration
	cfg := domain.ReleaseConfiguration{
		Token:             domain.ReleaseToken(dto.Release),
		Includes:          o.Includes,
		Excludes:          o.Excludes,
		Source:            o.Source,
		Target:            o.Target,
		Release:           o.Release,
		Encoding:          o.Encoding,
		CompilerArgs:      o.CompilerArgs,
		CompilerArgument:  o.CompilerArgument,
		CompilerArguments: o.CompilerArguments,
		StaleMillis:       o.StaleMillis,
		Debug:             o.Debug,
		DebugLevel:        o.DebugLevel,
		Verbose:           o.Verbose,
		ShowWarnings:      o.ShowWarnings,
		ShowDeprecation:   o.ShowDeprecation,
		FailOnWarning:     o.FailOnWarning,
		Executable:        o.Executable,
	}
	if o.GeneratedSourcesDirectory != nil {
		cfg.GeneratedSourcesDirectory = domain.Ptr(resolvePath(base, *o.GeneratedSourcesDirectory))
	}
	return cfg
}

// toOptions builds the ambient compiler options. Debug information is on by default.
func toOptions(base string, o OptionsDTO) domain.CompilerOptions {
	opts := domain.CompilerOptions{
		Includes:          o.Includes,
		Excludes:          o.Excludes,
		Source:            valueOrPtr(o.Source, ""),
		Target:            valueOrPtr(o.Target, ""),
		Release:           valueOrPtr(o.Release, ""),
		Encoding:          valueOrPtr(o.Encoding, ""),
		CompilerArgs:      o.CompilerArgs,
		CompilerArgument:  valueOrPtr(o.CompilerArgument, ""),
		CompilerArguments: o.CompilerArguments,
		StaleMillis:       valueOrPtr(o.StaleMillis, 0),
		Debug:             valueOrPtr(o.Debug, true),
		DebugLevel:        valueOrPtr(o.DebugLevel, ""),
		Verbose:           valueOrPtr(o.Verbose, false),
		ShowWarnings:      valueOrPtr(o.ShowWarnings, false),
		ShowDeprecation:   valueOrPtr(o.ShowDeprecation, false),
		FailOnWarning:     valueOrPtr(o.FailOnWarning, false),
		Executable:        valueOrPtr(o.Executable, ""),
	}
	if o.GeneratedSourcesDirectory != nil {
		opts.GeneratedSourcesDirectory = resolvePath(base, *o.GeneratedSourcesDirectory)
	}
	return opts
}

func resolveRoot(configPath, configuredRoot string) string {
	configDir := filepath.Dir(configPath)
	if configuredRoot == "" {
		return filepath.Clean(configDir)
	}
	return resolvePath(configDir, configuredRoot)
}

func resolvePath(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(base, filepath.FromSlash(p)))
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func valueOrPtr[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is validated by caller
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return errors.Join(domain.ErrConfigReadFailed, err)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return errors.Join(domain.ErrConfigParseFailed, parseErr)
	}

	return nil
}
