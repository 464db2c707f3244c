package orchestrator_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mrjar/internal/adapters/fs"
	"go.trai.ch/mrjar/internal/adapters/telemetry"
	"go.trai.ch/mrjar/internal/core/domain"
	"go.trai.ch/mrjar/internal/core/ports"
	"go.trai.ch/mrjar/internal/core/ports/mocks"
	"go.trai.ch/mrjar/internal/engine/orchestrator"
	"go.uber.org/mock/gomock"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("unit"), 0o600))
}

func newProject(root string) *domain.Project {
	src := filepath.Join(root, "src", "main", "java")
	out := filepath.Join(root, "target", "classes")
	return &domain.Project{
		BaseDir:                     root,
		BuildDirectory:              filepath.Join(root, "target"),
		DefaultOutputDirectory:      out,
		OutputDirectory:             out,
		SourceDirectory:             src,
		CompileSourceRoots:          []string{src},
		MultiReleaseSourceDirectory: filepath.Join(root, "src", "main", "java-mr"),
		Classpath:                   []string{filepath.Join(root, "lib", "dep.jar")},
		DescriptorName:              "module-info",
		SourceSuffix:                ".java",
		OutputSuffix:                ".class",
		MultiReleaseSupported:       true,
	}
}

func newOrchestrator(t *testing.T, compiler *mocks.MockCompiler) *orchestrator.Orchestrator {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	return orchestrator.New(compiler, fs.NewStager(), telemetry.NewNoOp(), mockLogger)
}

func TestRun_NoReleaseDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)

	root := t.TempDir()
	project := newProject(root)

	compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.CompileRequest) (domain.CompileResult, error) {
			assert.Equal(t, project.DefaultOutputDirectory, req.OutputRoot)
			assert.Equal(t, []string{project.SourceDirectory}, req.SourceRoots)
			return domain.CompileResult{Compiled: []string{"A.java"}}, nil
		}).Times(1)

	report, err := newOrchestrator(t, compiler).Run(context.Background(), project)
	require.NoError(t, err)
	assert.False(t, report.MultiRelease)
	require.Len(t, report.Passes, 1)
	assert.Equal(t, domain.PassDefault, report.Passes[0].Pass.Kind)
}

func TestRun_Unsupported(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)

	root := t.TempDir()
	project := newProject(root)
	project.MultiReleaseSupported = false
	writeFile(t, filepath.Join(project.MultiReleaseSourceDirectory, "11", "A.java"))

	compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(domain.CompileResult{}, nil).Times(1)

	report, err := newOrchestrator(t, compiler).Run(context.Background(), project)
	require.NoError(t, err)
	assert.False(t, report.MultiRelease)
	assert.Len(t, report.Passes, 1)
}

func TestRun_ReleaseWithoutDescriptor(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)

	root := t.TempDir()
	project := newProject(root)
	releaseRoot := filepath.Join(project.MultiReleaseSourceDirectory, "11")
	writeFile(t, filepath.Join(releaseRoot, "pkg", "A.java"))

	var requests []domain.CompileRequest
	compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.CompileRequest) (domain.CompileResult, error) {
			requests = append(requests, req)
			return domain.CompileResult{Compiled: []string{"x"}}, nil
		}).Times(2)

	report, err := newOrchestrator(t, compiler).Run(context.Background(), project)
	require.NoError(t, err)
	assert.True(t, report.MultiRelease)
	assert.Equal(t, []domain.ReleaseToken{"11"}, report.Tokens())

	require.Len(t, requests, 2)
	rel := requests[1]
	assert.Equal(t, filepath.Join(root, "target", "classes-11"), rel.OutputRoot)
	assert.Equal(t, []string{releaseRoot}, rel.SourceRoots)
	assert.Equal(t, "11", rel.Options.Release)
	// Classpath points at the default output, never at the active one.
	assert.Equal(t, []string{project.DefaultOutputDirectory, filepath.Join(root, "lib", "dep.jar")}, rel.Classpath)
	assert.Equal(t, project.DefaultOutputDirectory, project.OutputDirectory)
}

func TestRun_ReleaseWithDescriptor(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)

	root := t.TempDir()
	project := newProject(root)
	project.Releases = []domain.ReleaseConfiguration{{
		Token:    "17",
		Includes: []string{"pkg/**"},
		Excludes: []string{"**/Skip.java"},
	}}
	releaseRoot := filepath.Join(project.MultiReleaseSourceDirectory, "17")
	writeFile(t, filepath.Join(releaseRoot, "module-info.java"))
	writeFile(t, filepath.Join(releaseRoot, "pkg", "A.java"))

	staging := filepath.Join(root, "target", "sources-17")
	var requests []domain.CompileRequest
	compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req domain.CompileRequest) (domain.CompileResult, error) {
			requests = append(requests, req)
			return domain.CompileResult{Compiled: []string{"x"}}, nil
		}).Times(3)

	report, err := newOrchestrator(t, compiler).Run(context.Background(), project)
	require.NoError(t, err)
	require.Len(t, report.Passes, 3)
	assert.Equal(t, domain.PassDescriptor, report.Passes[1].Pass.Kind)
	assert.Equal(t, domain.PassSources, report.Passes[2].Pass.Kind)

	descriptor := requests[1]
	assert.Equal(t, filepath.Join(root, "target", "classes-17-descriptor"), descriptor.OutputRoot)
	assert.Subset(t, descriptor.SourceRoots, []string{filepath.Join(staging, "descriptor"), project.SourceDirectory})
	assert.Equal(t, []string{"module-info.java"}, descriptor.Sources.Includes)
	assert.Empty(t, descriptor.Sources.Excludes)

	sources := requests[2]
	assert.Equal(t, filepath.Join(root, "target", "classes-17"), sources.OutputRoot)
	assert.Equal(t, []string{filepath.Join(staging, "sources")}, sources.SourceRoots)
	assert.Equal(t, []string{"pkg/**"}, sources.Sources.Includes, "configured includes are restored")
	assert.Equal(t, []string{"**/Skip.java"}, sources.Sources.Excludes)

	// The split isolates the descriptor from the remaining sources.
	assert.FileExists(t, filepath.Join(staging, "descriptor", "module-info.java"))
	assert.NoFileExists(t, filepath.Join(staging, "sources", "module-info.java"))
	assert.FileExists(t, filepath.Join(staging, "sources", "pkg", "A.java"))
	assert.FileExists(t, filepath.Join(releaseRoot, "module-info.java"), "release sources are untouched")
}

func TestRun_FailureRestoresOutputDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)

	root := t.TempDir()
	project := newProject(root)
	writeFile(t, filepath.Join(project.MultiReleaseSourceDirectory, "11", "A.java"))
	writeFile(t, filepath.Join(project.MultiReleaseSourceDirectory, "17", "B.java"))

	boom := errors.New("cannot find symbol")
	gomock.InOrder(
		compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(domain.CompileResult{}, nil),
		compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req domain.CompileRequest) (domain.CompileResult, error) {
				// The ambient output is redirected while the pass runs.
				assert.Equal(t, req.OutputRoot, project.OutputDirectory)
				return domain.CompileResult{}, boom
			}),
	)

	report, err := newOrchestrator(t, compiler).Run(context.Background(), project)
	require.ErrorIs(t, err, domain.ErrCompilationFailed)
	require.ErrorIs(t, err, boom)
	require.Len(t, report.Passes, 2, "release 17 never runs")
	assert.Equal(t, domain.PassStatusCompleted, report.Passes[0].Status())
	assert.Equal(t, domain.ReleaseToken("11"), report.Passes[1].Pass.Release)
	assert.Equal(t, domain.PassStatusFailed, report.Passes[1].Status())
	assert.ErrorIs(t, report.Passes[1].Err, boom)
	assert.Equal(t, project.DefaultOutputDirectory, project.OutputDirectory)
}

func TestRun_StagingFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)
	stager := mocks.NewMockStager(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	root := t.TempDir()
	project := newProject(root)
	mr := project.MultiReleaseSourceDirectory

	stager.EXPECT().Exists(mr).Return(true)
	stager.EXPECT().ListDirs(mr).Return([]string{"9"}, nil)
	stager.EXPECT().Exists(filepath.Join(mr, "9", "module-info.java")).Return(true)
	stager.EXPECT().RemoveAll(gomock.Any()).Return(nil)
	stager.EXPECT().CopyTree(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(domain.CompileResult{}, nil).Times(1)

	o := orchestrator.New(compiler, stager, telemetry.NewNoOp(), mockLogger)
	_, err := o.Run(context.Background(), project)
	require.ErrorIs(t, err, domain.ErrStagingFailed)
	assert.Equal(t, project.DefaultOutputDirectory, project.OutputDirectory)
}

func TestRun_DiscoveryOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)
	compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(domain.CompileResult{NoSource: true}, nil).AnyTimes()

	root := t.TempDir()
	project := newProject(root)
	for _, token := range []string{"9", "11", "17"} {
		writeFile(t, filepath.Join(project.MultiReleaseSourceDirectory, token, "A.java"))
	}
	// Files beside the release directories are ignored.
	writeFile(t, filepath.Join(project.MultiReleaseSourceDirectory, "README"))

	report, err := newOrchestrator(t, compiler).Run(context.Background(), project)
	require.NoError(t, err)
	assert.Equal(t, []domain.ReleaseToken{"11", "17", "9"}, report.Tokens())
}

func TestRun_Canceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	project := newProject(t.TempDir())
	_, err := newOrchestrator(t, compiler).Run(ctx, project)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_RecordsTelemetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	compiler := mocks.NewMockCompiler(ctrl)
	tel := mocks.NewMockTelemetry(ctrl)
	vertex := mocks.NewMockVertex(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info("compile default: running").Times(1)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	project := newProject(t.TempDir())

	tel.EXPECT().Record(gomock.Any(), "compile default").DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ctx, vertex
		})
	compiler.EXPECT().Compile(gomock.Any(), gomock.Any()).Return(domain.CompileResult{UpToDate: true}, nil)
	vertex.EXPECT().Cached()
	vertex.EXPECT().Log(domain.LogLevelInfo, string(domain.PassStatusUpToDate))
	vertex.EXPECT().Complete(nil)

	o := orchestrator.New(compiler, fs.NewStager(), tel, mockLogger)
	_, err := o.Run(context.Background(), project)
	require.NoError(t, err)
}
