package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mrjar/internal/adapters/fs"
)

func TestStager_CopyTree(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "copy")

	writeFile(t, filepath.Join(src, "module-info.java"), "module m {}")
	writeFile(t, filepath.Join(src, "pkg", "Foo.java"), "class Foo {}")

	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(filepath.Join(src, "pkg", "Foo.java"), past, past))

	s := fs.NewStager()
	require.NoError(t, s.CopyTree(src, dst))

	data, err := os.ReadFile(filepath.Join(dst, "pkg", "Foo.java"))
	require.NoError(t, err)
	assert.Equal(t, "class Foo {}", string(data))
	assert.FileExists(t, filepath.Join(dst, "module-info.java"))

	info, err := os.Stat(filepath.Join(dst, "pkg", "Foo.java"))
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past), "modification time should be preserved")

	// Source is untouched.
	assert.FileExists(t, filepath.Join(src, "pkg", "Foo.java"))
}

func TestStager_CopyTree_MissingSource(t *testing.T) {
	s := fs.NewStager()
	err := s.CopyTree(filepath.Join(t.TempDir(), "missing"), t.TempDir())
	require.Error(t, err)
}

func TestStager_MoveFile(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "sources", "module-info.java")
	dst := filepath.Join(root, "descriptor", "module-info.java")
	writeFile(t, src, "module m {}")

	s := fs.NewStager()
	require.NoError(t, s.MoveFile(src, dst))

	assert.NoFileExists(t, src)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "module m {}", string(data))
}

func TestStager_MoveFile_MissingSource(t *testing.T) {
	root := t.TempDir()
	s := fs.NewStager()
	err := s.MoveFile(filepath.Join(root, "missing"), filepath.Join(root, "out", "missing"))
	require.Error(t, err)
}

func TestStager_IsEmptyDir(t *testing.T) {
	root := t.TempDir()
	s := fs.NewStager()

	empty, err := s.IsEmptyDir(root)
	require.NoError(t, err)
	assert.True(t, empty)

	empty, err = s.IsEmptyDir(filepath.Join(root, "missing"))
	require.NoError(t, err)
	assert.True(t, empty, "missing directory counts as empty")

	writeFile(t, filepath.Join(root, "A.class"), "")
	empty, err = s.IsEmptyDir(root)
	require.NoError(t, err)
	assert.False(t, empty)
}

func TestStager_ListDirs(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "9"), 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "11"), 0o750))
	writeFile(t, filepath.Join(root, "README"), "not a release")

	s := fs.NewStager()
	dirs, err := s.ListDirs(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"11", "9"}, dirs)

	_, err = s.ListDirs(filepath.Join(root, "missing"))
	require.Error(t, err)
}

func TestStager_RemoveAllAndExists(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "sources-9")
	s := fs.NewStager()

	require.NoError(t, s.MkdirAll(filepath.Join(dir, "descriptor")))
	assert.True(t, s.Exists(dir))

	require.NoError(t, s.RemoveAll(dir))
	assert.False(t, s.Exists(dir))

	// Removing a missing path is not an error.
	require.NoError(t, s.RemoveAll(dir))
}
