package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemStorage_Write(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	storage, err := NewFilesystemStorage(dir)
	require.NoError(t, err)

	err = storage.Write(ctx, "docs/README_backup1.md", []byte("test-data"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "docs", "README_backup1.md"))
	require.NoError(t, err)
	assert.Equal(t, []byte("test-data"), data)
}

func TestFilesystemStorage_Write_Overwrite(t *testing.T) {
	ctx := context.Background()
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	err = storage.Write(ctx, "test-key", []byte("original"))
	require.NoError(t, err)

	err = storage.Write(ctx, "test-key", []byte("updated"))
	require.NoError(t, err)

	data, err := storage.Read(ctx, "test-key")
	require.NoError(t, err)
	assert.Equal(t, []byte("updated"), data)
}

func TestFilesystemStorage_Write_DirectoryFailure(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "docs"), []byte("file"), 0644))
	storage, err := NewFilesystemStorage(dir)
	require.NoError(t, err)

	err = storage.Write(ctx, "docs/README_backup1.md", []byte("test-data"))
	require.Error(t, err)
}

func TestFilesystemStorage_Read_NotFound(t *testing.T) {
	ctx := context.Background()
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.Read(ctx, "nonexistent-key")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestFilesystemStorage_List(t *testing.T) {
	ctx := context.Background()
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"docs/a", "docs/b", "docs/c", "docs/nested/d", "other"} {
		require.NoError(t, storage.Write(ctx, key, []byte(key)))
	}

	names, err := storage.List(ctx, "docs")
	require.NoError(t, err)
	// Should be sorted descending, directories skipped
	assert.Equal(t, []string{"c", "b", "a"}, names)

	names, err = storage.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"other"}, names)
}

func TestFilesystemStorage_List_NotFound(t *testing.T) {
	ctx := context.Background()
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	_, err = storage.List(ctx, "nonexistent")
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestFilesystemStorage_Location(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewFilesystemStorage(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "docs", "README_backup1.md"), storage.Location("docs/README_backup1.md"))
}

func TestFilesystemStorage_RelativeRoot(t *testing.T) {
	storage, err := NewFilesystemStorage(".readmeqBackups")
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, ".readmeqBackups", "README_backup1.md"), storage.Location("README_backup1.md"))
}

func TestFilesystemStorage_Close(t *testing.T) {
	storage, err := NewFilesystemStorage(t.TempDir())
	require.NoError(t, err)

	err = storage.Close()
	require.NoError(t, err)
}

func TestOpenStorage(t *testing.T) {
	ctx := context.Background()

	s, err := OpenStorage(ctx, t.TempDir())
	require.NoError(t, err)
	assert.IsType(t, &FilesystemStorage{}, s)
	require.NoError(t, s.Close())

	s, err = OpenStorage(ctx, "mem://")
	require.NoError(t, err)
	assert.IsType(t, &BlobStorage{}, s)
	require.NoError(t, s.Close())
}
