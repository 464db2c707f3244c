// Package app implements the application layer for mrjar.
package app

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"

	"go.trai.ch/mrjar/internal/core/domain"
	"go.trai.ch/mrjar/internal/core/ports"
	"go.trai.ch/mrjar/internal/engine/assembler"
	"go.trai.ch/mrjar/internal/engine/orchestrator"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	detector     ports.CapabilityDetector
	orchestrator *orchestrator.Orchestrator
	assembler    *assembler.Assembler
	archiver     ports.ArchiveWriter
	stager       ports.Stager
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	detector ports.CapabilityDetector,
	orch *orchestrator.Orchestrator,
	asm *assembler.Assembler,
	archiver ports.ArchiveWriter,
	stager ports.Stager,
	telemetry ports.Telemetry,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		detector:     detector,
		orchestrator: orch,
		assembler:    asm,
		archiver:     archiver,
		stager:       stager,
		telemetry:    telemetry,
		logger:       log,
	}
}

// Options are the settings shared by every command.
type Options struct {
	// ConfigPath is the configuration file, or the directory to start the search from.
	ConfigPath string
	// MultiRelease overrides the configured multi-release mode when set.
	MultiRelease string
}

// Compile runs the default pass and every per-release pass.
func (a *App) Compile(ctx context.Context, opts Options) (domain.RunReport, error) {
	project, err := a.load(ctx, opts)
	if err != nil {
		return domain.RunReport{}, err
	}
	return a.compile(ctx, project)
}

// Package assembles the compiled outputs and writes the archive.
// It does not compile.
func (a *App) Package(ctx context.Context, opts Options) (domain.ArchiveLayout, error) {
	project, err := a.load(ctx, opts)
	if err != nil {
		return domain.ArchiveLayout{}, err
	}
	return a.pack(ctx, project)
}

// Build compiles and then packages.
func (a *App) Build(ctx context.Context, opts Options) (domain.ArchiveLayout, error) {
	project, err := a.load(ctx, opts)
	if err != nil {
		return domain.ArchiveLayout{}, err
	}
	if _, err := a.compile(ctx, project); err != nil {
		return domain.ArchiveLayout{}, err
	}
	return a.pack(ctx, project)
}

// Plan returns the passes a compile would execute, without running them.
func (a *App) Plan(ctx context.Context, opts Options) ([]domain.CompilationPass, error) {
	project, err := a.load(ctx, opts)
	if err != nil {
		return nil, err
	}
	return a.orchestrator.Plan(project)
}

// Clean removes every directory a build writes to.
func (a *App) Clean(ctx context.Context, opts Options) error {
	project, err := a.configLoader.Load(configPath(opts))
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	targets, err := a.cleanTargets(project)
	if err != nil {
		return err
	}

	g, _ := errgroup.WithContext(ctx)
	for _, path := range targets {
		if !a.stager.Exists(path) {
			continue
		}
		a.logger.Info(fmt.Sprintf("removing %s", path))
		g.Go(func() error {
			if err := a.stager.RemoveAll(path); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to remove directory"), "path", path)
			}
			return nil
		})
	}
	return g.Wait()
}

func (a *App) load(ctx context.Context, opts Options) (*domain.Project, error) {
	project, err := a.configLoader.Load(configPath(opts))
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.MultiRelease != "" {
		mode, err := domain.ParseMultiReleaseMode(opts.MultiRelease)
		if err != nil {
			return nil, err
		}
		project.MultiReleaseMode = mode
	}

	switch project.MultiReleaseMode {
	case domain.ModeAlways:
		project.MultiReleaseSupported = true
	case domain.ModeNever:
		project.MultiReleaseSupported = false
	default:
		project.MultiReleaseSupported = a.detector.MultiReleaseSupported(ctx, project.CompilerExecutable())
	}

	return project, nil
}

func (a *App) compile(ctx context.Context, project *domain.Project) (domain.RunReport, error) {
	report, err := a.orchestrator.Run(ctx, project)
	if err != nil {
		return report, errors.Join(domain.ErrBuildExecutionFailed, err)
	}
	return report, nil
}

func (a *App) pack(ctx context.Context, project *domain.Project) (layout domain.ArchiveLayout, err error) {
	ctx, vertex := a.telemetry.Record(ctx, "package "+filepath.Base(project.ArchiveFile))
	defer func() {
		vertex.Complete(err)
	}()

	manifest, err := newManifest(project.ManifestEntries)
	if err != nil {
		return layout, err
	}

	releases, multiRelease, err := a.orchestrator.Discover(project)
	if err != nil {
		return layout, err
	}

	root := project.DefaultOutputDirectory
	if multiRelease {
		layout, err = a.assembler.Assemble(ctx, domain.AssembleRequest{
			DefaultOutputDir: project.DefaultOutputDirectory,
			StagingRoot:      project.ArchiveStagingDirectory,
			Releases:         tokens(releases),
			MainRelease:      project.MainRelease,
			DescriptorClass:  project.DescriptorClassFile(),
			Manifest:         manifest,
		})
		if err != nil {
			return layout, err
		}
		root = layout.BaseClassesRoot
	} else {
		layout = domain.ArchiveLayout{BaseClassesRoot: root}
	}

	if err := a.archiver.Write(ctx, root, manifest, project.ArchiveFile); err != nil {
		return layout, err
	}

	msg := "wrote " + project.ArchiveFile
	if layout.MultiRelease {
		msg += fmt.Sprintf(" (multi-release: %v)", layout.Releases())
	}
	vertex.Log(domain.LogLevelInfo, msg)
	a.logger.Info(msg)
	return layout, nil
}

func (a *App) cleanTargets(project *domain.Project) ([]string, error) {
	defaultOut := project.DefaultOutputDirectory
	targets := []string{
		defaultOut,
		project.ArchiveStagingDirectory,
		domain.StateDirFor(defaultOut),
	}

	dir := project.MultiReleaseSourceDirectory
	if !a.stager.Exists(dir) {
		return targets, nil
	}
	names, err := a.stager.ListDirs(dir)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrReleaseDiscoveryFailed, err), "path", dir)
	}
	for _, name := range names {
		token := domain.ReleaseToken(name)
		targets = append(targets,
			domain.OutputDirFor(defaultOut, token),
			domain.DescriptorOutputDirFor(defaultOut, token),
			domain.StagingRootFor(defaultOut, token),
		)
	}
	return targets, nil
}

func newManifest(entries map[string]string) (*domain.Manifest, error) {
	m := domain.NewManifest()
	for _, name := range slices.Sorted(maps.Keys(entries)) {
		if err := m.Set(name, entries[name]); err != nil {
			return nil, errors.Join(domain.ErrManifestUpdateFailed, err)
		}
	}
	return m, nil
}

func tokens(releases []domain.ReleaseSource) []domain.ReleaseToken {
	out := make([]domain.ReleaseToken, 0, len(releases))
	for _, r := range releases {
		out = append(out, r.Token)
	}
	return out
}

func configPath(opts Options) string {
	if opts.ConfigPath == "" {
		return "."
	}
	return opts.ConfigPath
}
