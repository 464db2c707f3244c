package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mrjar/internal/adapters/config"
	"go.trai.ch/mrjar/internal/core/domain"
	"go.trai.ch/mrjar/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	root := filepath.Join(t.TempDir(), "app")
	writeConfig(t, root, "version: \"1\"\n")

	project, err := config.NewLoader(mockLogger).Load(root)
	require.NoError(t, err)

	assert.Equal(t, root, project.BaseDir)
	assert.Equal(t, filepath.Join(root, "src", "main", "java"), project.SourceDirectory)
	assert.Equal(t, []string{filepath.Join(root, "src", "main", "java")}, project.CompileSourceRoots)
	assert.Equal(t, filepath.Join(root, "src", "main", "java-mr"), project.MultiReleaseSourceDirectory)
	assert.Equal(t, filepath.Join(root, "target"), project.BuildDirectory)
	assert.Equal(t, filepath.Join(root, "target", "classes"), project.DefaultOutputDirectory)
	assert.Equal(t, project.DefaultOutputDirectory, project.OutputDirectory)
	assert.Equal(t, filepath.Join(root, "target", "multi-release-jar"), project.ArchiveStagingDirectory)
	assert.Equal(t, filepath.Join(root, "target", "app.jar"), project.ArchiveFile)
	assert.Equal(t, ".java", project.SourceSuffix)
	assert.Equal(t, ".class", project.OutputSuffix)
	assert.Equal(t, "module-info", project.DescriptorName)
	assert.Equal(t, domain.ModeAuto, project.MultiReleaseMode)
	assert.True(t, project.Options.Debug)
	assert.Empty(t, project.Releases)
}

func TestLoader_FullConfiguration(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	writeConfig(t, root, `
version: "1"
sourceRoots: [target/generated-sources]
classpath: [lib/api.jar]
archive: dist/lib.jar
multiRelease: always
mainRelease: "11"
sourceSuffix: java
manifest:
  Automatic-Module-Name: com.example.lib
compiler:
  release: "8"
  encoding: UTF-8
  debug: false
  generatedSourcesDirectory: target/gen
releases:
  - release: "9"
  - release: "11"
    configuration:
      excludes: []
      compilerArgs: ["--add-modules", "java.sql"]
      showWarnings: true
      generatedSourcesDirectory: target/gen-11
`)

	project, err := config.NewLoader(mockLogger).Load(root)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "src", "main", "java"),
		filepath.Join(root, "target", "generated-sources"),
	}, project.CompileSourceRoots)
	assert.Equal(t, []string{filepath.Join(root, "lib", "api.jar")}, project.Classpath)
	assert.Equal(t, filepath.Join(root, "dist", "lib.jar"), project.ArchiveFile)
	assert.Equal(t, domain.ModeAlways, project.MultiReleaseMode)
	assert.Equal(t, domain.ReleaseToken("11"), project.MainRelease)
	assert.Equal(t, ".java", project.SourceSuffix)
	assert.Equal(t, map[string]string{"Automatic-Module-Name": "com.example.lib"}, project.ManifestEntries)

	assert.Equal(t, "8", project.Options.Release)
	assert.Equal(t, "UTF-8", project.Options.Encoding)
	assert.False(t, project.Options.Debug)
	assert.Equal(t, filepath.Join(root, "target", "gen"), project.Options.GeneratedSourcesDirectory)

	require.Len(t, project.Releases, 2)
	nine := project.Releases[0]
	assert.Equal(t, domain.ReleaseToken("9"), nine.Token)
	assert.Nil(t, nine.Excludes)
	assert.Nil(t, nine.Release)

	eleven := project.Releases[1]
	assert.NotNil(t, eleven.Excludes, "explicit empty excludes stay set")
	assert.Empty(t, eleven.Excludes)
	assert.Equal(t, []string{"--add-modules", "java.sql"}, eleven.CompilerArgs)
	require.NotNil(t, eleven.ShowWarnings)
	assert.True(t, *eleven.ShowWarnings)
	require.NotNil(t, eleven.GeneratedSourcesDirectory)
	assert.Equal(t, filepath.Join(root, "target", "gen-11"), *eleven.GeneratedSourcesDirectory)
}

func TestLoader_Discovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	writeConfig(t, root, "root: project\n")
	nested := filepath.Join(root, "project", "src", "main", "java")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	project, err := config.NewLoader(mockLogger).Load(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "project"), project.BaseDir)
}

func TestLoader_ExplicitFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	path := filepath.Join(root, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mainRelease: \"9\"\n"), 0o600))

	project, err := config.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)
	assert.Equal(t, root, project.BaseDir)
	assert.Equal(t, domain.ReleaseToken("9"), project.MainRelease)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr error
	}{
		{name: "invalid yaml", content: "releases: [", expectedErr: domain.ErrConfigParseFailed},
		{name: "invalid mode", content: "multiRelease: sometimes", expectedErr: domain.ErrInvalidMultiReleaseMode},
		{name: "unsupported version", content: "version: \"2\"", expectedErr: domain.ErrConfigVersionUnsupported},
		{name: "missing release token", content: "releases:\n  - configuration: {}\n", expectedErr: domain.ErrEmptyReleaseToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLogger := mocks.NewMockLogger(ctrl)

			root := t.TempDir()
			writeConfig(t, root, tt.content)

			_, err := config.NewLoader(mockLogger).Load(root)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestLoader_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	_, err := config.NewLoader(mockLogger).Load(t.TempDir())
	require.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestLoader_DuplicateRelease(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("release 9 is configured more than once, the last entry wins").Times(1)

	root := t.TempDir()
	writeConfig(t, root, "releases:\n  - release: \"9\"\n  - release: \"9\"\n")

	project, err := config.NewLoader(mockLogger).Load(root)
	require.NoError(t, err)
	assert.Len(t, project.Releases, 2)
}
