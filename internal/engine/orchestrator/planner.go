package orchestrator

import (
	"go.trai.ch/mrjar/internal/core/domain"
)

// Plan returns the compilation passes for project and the discovered releases, in
// execution order: the default pass first, then for every release either its
// sources pass alone or its descriptor pass followed by its sources pass.
//
// Plan does not touch the filesystem and does not modify project.
func Plan(project *domain.Project, releases []domain.ReleaseSource) []domain.CompilationPass {
	registry := domain.NewReleaseConfigRegistry(project.Releases)
	defaultOut := project.DefaultOutputDirectory

	passes := make([]domain.CompilationPass, 0, 1+2*len(releases))
	passes = append(passes, domain.CompilationPass{
		Kind:       domain.PassDefault,
		SourceRoot: project.SourceDirectory,
		OutputRoot: defaultOut,
		Options:    project.Options.Clone(),
	})

	for _, rel := range releases {
		config := registry.Resolve(rel.Token)
		sourceRoot := rel.Root

		if rel.HasDescriptor {
			split := &domain.SplitRequest{
				ReleaseSourceRoot: rel.Root,
				StagingRoot:       domain.StagingRootFor(defaultOut, rel.Token),
			}
			roots := domain.SplitRootsFor(split.StagingRoot)
			descriptorConfig := config.ForDescriptor(project.DescriptorSourceFile())

			passes = append(passes, domain.CompilationPass{
				Kind:                 domain.PassDescriptor,
				Release:              rel.Token,
				SourceRoot:           roots.DescriptorRoot,
				OutputRoot:           domain.DescriptorOutputDirFor(defaultOut, rel.Token),
				AuxiliarySourceRoots: []string{project.SourceDirectory},
				Config:               descriptorConfig,
				Options:              descriptorConfig.Effective(project.Options),
				Split:                split,
			})
			sourceRoot = roots.SourcesRoot
		}

		passes = append(passes, domain.CompilationPass{
			Kind:       domain.PassSources,
			Release:    rel.Token,
			SourceRoot: sourceRoot,
			OutputRoot: domain.OutputDirFor(defaultOut, rel.Token),
			Config:     config,
			Options:    config.Effective(project.Options),
		})
	}

	return passes
}

// SourceRootsFor returns the source roots the compiler sees for pass: the
// project's roots with the default source root replaced by the pass root and its
// auxiliary roots. When the default root is not among the project's roots the
// pass roots are placed first.
func SourceRootsFor(project *domain.Project, pass domain.CompilationPass) []string {
	replacement := make([]string, 0, 1+len(pass.AuxiliarySourceRoots))
	replacement = append(replacement, pass.SourceRoot)
	replacement = append(replacement, pass.AuxiliarySourceRoots...)

	configured := project.SourceRoots()
	roots := make([]string, 0, len(configured)+len(replacement))
	substituted := false
	for _, r := range configured {
		if r == project.SourceDirectory && !substituted {
			roots = append(roots, replacement...)
			substituted = true
			continue
		}
		roots = append(roots, r)
	}
	if !substituted {
		roots = append(replacement, roots...)
	}
	return dedupe(roots)
}

// ClasspathFor returns the project classpath with the currently active output
// directory replaced by the default output directory.
func ClasspathFor(project *domain.Project) []string {
	elems := project.ClasspathElements()
	for i, e := range elems {
		if e == project.OutputDirectory {
			elems[i] = project.DefaultOutputDirectory
		}
	}
	return dedupe(elems)
}

// FiltersFor builds the candidate and staleness filters for pass.
func FiltersFor(project *domain.Project, pass domain.CompilationPass) (domain.SourceFilter, domain.SourceFilter) {
	opts := pass.Options
	sources := domain.NewSuffixFilter(opts.Includes, opts.Excludes, project.SourceSuffix)
	stale := domain.NewStaleFilter(opts.Includes, opts.Excludes, project.SourceSuffix, opts.StaleMillis)
	return sources, stale
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
