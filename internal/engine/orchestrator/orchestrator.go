// Package orchestrator drives the sequence of compilation passes of a multi-release build.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.trai.ch/mrjar/internal/core/domain"
	"go.trai.ch/mrjar/internal/core/ports"
	"go.trai.ch/zerr"
)

// Orchestrator runs the default pass and the per-release passes one at a time.
type Orchestrator struct {
	compiler  ports.Compiler
	stager    ports.Stager
	splitter  *Splitter
	telemetry ports.Telemetry
	logger    ports.Logger
}

// New creates a new Orchestrator.
func New(
	compiler ports.Compiler,
	stager ports.Stager,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		compiler:  compiler,
		stager:    stager,
		splitter:  NewSplitter(stager),
		telemetry: telemetry,
		logger:    logger,
	}
}

// Discover lists the per-release source trees of project in name order. It
// returns false when multi-release compilation is unsupported or the per-release
// source directory does not exist.
func (o *Orchestrator) Discover(project *domain.Project) ([]domain.ReleaseSource, bool, error) {
	if !project.MultiReleaseSupported {
		o.logger.Info("multi-release compilation disabled: not supported by the compiler")
		return nil, false, nil
	}
	dir := project.MultiReleaseSourceDirectory
	if !o.stager.Exists(dir) {
		o.logger.Info("multi-release compilation disabled: " + dir + " does not exist")
		return nil, false, nil
	}

	names, err := o.stager.ListDirs(dir)
	if err != nil {
		return nil, false, zerr.With(errors.Join(domain.ErrReleaseDiscoveryFailed, err), "path", dir)
	}

	releases := make([]domain.ReleaseSource, 0, len(names))
	for _, name := range names {
		root := filepath.Join(dir, name)
		releases = append(releases, domain.ReleaseSource{
			Token:         domain.ReleaseToken(name),
			Root:          root,
			HasDescriptor: o.stager.Exists(filepath.Join(root, project.DescriptorSourceFile())),
		})
	}
	return releases, true, nil
}

// Plan discovers the releases of project and returns the passes a run would execute.
func (o *Orchestrator) Plan(project *domain.Project) ([]domain.CompilationPass, error) {
	releases, _, err := o.Discover(project)
	if err != nil {
		return nil, err
	}
	return Plan(project, releases), nil
}

// Run compiles project. The first failing pass aborts the sequence; it is the
// last entry of the returned report.
// project.OutputDirectory is redirected for each pass and always restored to its
// value on entry before Run returns.
func (o *Orchestrator) Run(ctx context.Context, project *domain.Project) (domain.RunReport, error) {
	original := project.OutputDirectory
	defer func() {
		project.OutputDirectory = original
	}()

	releases, multiRelease, err := o.Discover(project)
	if err != nil {
		return domain.RunReport{}, err
	}

	report := domain.RunReport{MultiRelease: multiRelease, Releases: releases}
	for _, pass := range Plan(project, releases) {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res, err := o.runPass(ctx, project, pass)
		if err != nil {
			report.Passes = append(report.Passes, domain.PassResult{Pass: pass, Err: err})
			return report, err
		}
		report.Passes = append(report.Passes, domain.PassResult{Pass: pass, Result: res})
	}

	return report, nil
}

func (o *Orchestrator) runPass(
	ctx context.Context,
	project *domain.Project,
	pass domain.CompilationPass,
) (res domain.CompileResult, err error) {
	ctx, vertex := o.telemetry.Record(ctx, pass.Name())
	defer func() {
		vertex.Complete(err)
	}()

	if pass.Split != nil {
		if _, err := o.splitter.Split(*pass.Split, project.DescriptorSourceFile()); err != nil {
			return domain.CompileResult{}, err
		}
	}

	project.OutputDirectory = pass.OutputRoot
	o.logger.Info(fmt.Sprintf("%s: %s", pass.Name(), domain.PassStatusRunning))

	sources, stale := FiltersFor(project, pass)
	req := domain.CompileRequest{
		Pass:         pass.Name(),
		SourceRoots:  SourceRootsFor(project, pass),
		OutputRoot:   pass.OutputRoot,
		Classpath:    ClasspathFor(project),
		OutputSuffix: project.OutputSuffix,
		Sources:      sources,
		Stale:        stale,
		Options:      pass.Options,
	}

	res, err = o.compiler.Compile(ctx, req)
	if err != nil {
		err = zerr.With(errors.Join(domain.ErrCompilationFailed, err), "pass", string(pass.Kind))
		err = zerr.With(err, "release", pass.Release.String())
		return domain.CompileResult{}, zerr.With(err, "source_root", pass.SourceRoot)
	}

	status := res.Status()
	if status != domain.PassStatusCompleted {
		vertex.Cached()
	}
	vertex.Log(domain.LogLevelInfo, string(status))
	o.logger.Info(fmt.Sprintf("%s: %s", pass.Name(), status))

	return res, nil
}
