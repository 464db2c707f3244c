package archive_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mrjar/internal/adapters/archive"
	"go.trai.ch/mrjar/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func readEntry(t *testing.T, f *zip.File) string {
	t.Helper()
	rc, err := f.Open()
	require.NoError(t, err)
	defer rc.Close() //nolint:errcheck // test
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(data)
}

func TestWriter_Write(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "module-info.class"), "descriptor")
	writeFile(t, filepath.Join(root, "pkg", "Foo.class"), "base")
	writeFile(t, filepath.Join(root, "META-INF", "versions", "9", "pkg", "Foo.class"), "nine")
	writeFile(t, filepath.Join(root, "META-INF", "MANIFEST.MF"), "stale manifest")

	manifest := domain.NewManifest()
	require.NoError(t, manifest.Set(domain.MultiReleaseAttribute, "true"))

	dest := filepath.Join(t.TempDir(), "out", "app.jar")
	require.NoError(t, archive.NewWriter().Write(context.Background(), root, manifest, dest))

	zr, err := zip.OpenReader(dest)
	require.NoError(t, err)
	defer zr.Close() //nolint:errcheck // test

	entries := make(map[string]*zip.File)
	for _, f := range zr.File {
		entries[f.Name] = f
	}

	require.GreaterOrEqual(t, len(zr.File), 2)
	assert.Equal(t, "META-INF/", zr.File[0].Name)
	assert.Equal(t, domain.ManifestPath, zr.File[1].Name, "manifest must be the first file entry")

	mf := readEntry(t, zr.File[1])
	assert.Equal(t, "Manifest-Version: 1.0\r\nMulti-Release: true\r\n\r\n", mf)

	assert.Equal(t, "descriptor", readEntry(t, entries["module-info.class"]))
	assert.Equal(t, "base", readEntry(t, entries["pkg/Foo.class"]))
	assert.Equal(t, "nine", readEntry(t, entries["META-INF/versions/9/pkg/Foo.class"]))
	assert.Contains(t, entries, "pkg/")

	count := 0
	for _, f := range zr.File {
		if f.Name == domain.ManifestPath {
			count++
		}
	}
	assert.Equal(t, 1, count, "staged manifest must not be archived twice")

	// No temporary files are left behind.
	siblings, err := os.ReadDir(filepath.Dir(dest))
	require.NoError(t, err)
	assert.Len(t, siblings, 1)
}

func TestWriter_Write_MissingRoot(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "app.jar")
	err := archive.NewWriter().Write(context.Background(), filepath.Join(t.TempDir(), "missing"), nil, dest)
	require.ErrorIs(t, err, domain.ErrArchiveWriteFailed)
	assert.NoFileExists(t, dest)
}

func TestWriter_Write_Canceled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "A.class"), "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dest := filepath.Join(t.TempDir(), "app.jar")
	err := archive.NewWriter().Write(ctx, root, nil, dest)
	require.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, dest)
}

func TestRenderManifest_Wrapping(t *testing.T) {
	m := domain.NewManifest()
	long := strings.Repeat("x", 150)
	require.NoError(t, m.Set("Class-Path", long))

	out := archive.RenderManifest(m)
	lines := strings.Split(strings.TrimSuffix(out, "\r\n\r\n"), "\r\n")

	require.Len(t, lines, 4)
	assert.Equal(t, "Manifest-Version: 1.0", lines[0])
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), 72)
	}

	var rebuilt strings.Builder
	rebuilt.WriteString(lines[1])
	for _, l := range lines[2:] {
		require.True(t, strings.HasPrefix(l, " "))
		rebuilt.WriteString(l[1:])
	}
	assert.Equal(t, "Class-Path: "+long, rebuilt.String())
}
