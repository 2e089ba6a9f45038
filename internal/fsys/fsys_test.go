package fsys

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListEntriesSorted(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	entries, err := NewOS().ListEntries(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, Entry{Name: "a.txt", IsDir: false}, entries[0])
	assert.Equal(t, Entry{Name: "b.txt", IsDir: false}, entries[1])
	assert.Equal(t, Entry{Name: "sub", IsDir: true}, entries[2])
}

func TestListEntriesMissingDir(t *testing.T) {
	_, err := NewOS().ListEntries(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestModTime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	want := time.Date(2024, 4, 5, 6, 7, 8, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, want, want))

	got, err := NewOS().ModTime(path)
	require.NoError(t, err)
	assert.True(t, got.Equal(want))

	_, err = NewOS().ModTime(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, NewOS().Exists(dir))
	assert.False(t, NewOS().Exists(filepath.Join(dir, "missing")))
}

func TestWriteTextCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deeply", "nested", "out.txt")

	require.NoError(t, NewOS().WriteText(path, "hello"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))
}

func TestWriteTextOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	osfs := NewOS()
	require.NoError(t, osfs.WriteText(path, "first"))
	require.NoError(t, osfs.WriteText(path, "second"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(content))
}
