package press

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanDirOrderAndTotals(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	writeTree(t, src, map[string]string{
		"c.txt":     "ccc",
		"a.txt":     "aaaaa",
		"b/x.txt":   "xx",
		"b/a/y.txt": "yyyy",
	})

	scan, err := ScanDir(context.Background(), src)
	require.NoError(t, err)

	var paths []string
	for _, e := range scan.Entries {
		paths = append(paths, e.Path)
	}
	// Depth-first, lexically sorted within each directory.
	assert.Equal(t, []string{"a.txt", "b", "b/a", "b/a/y.txt", "b/x.txt", "c.txt"}, paths)

	assert.Equal(t, 4, scan.Files)
	assert.Equal(t, 2, scan.Dirs)
	assert.Equal(t, 0, scan.Symlinks)
	assert.Equal(t, uint64(14), scan.TotalBytes)
	assert.Empty(t, scan.Warnings)
}

func TestScanDirEntryMetadata(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	full := filepath.Join(src, "data.bin")
	require.NoError(t, os.WriteFile(full, []byte("12345"), 0o600))

	scan, err := ScanDir(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, scan.Entries, 1)

	e := scan.Entries[0]
	assert.Equal(t, "data.bin", e.Path)
	assert.Equal(t, KindFile, e.Kind)
	assert.Equal(t, uint64(5), e.Size)
	assert.Equal(t, fs.FileMode(0o600), e.Mode.Perm())
	assert.False(t, e.ModTime.IsZero())
}

func TestScanDirMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := ScanDir(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestScanDirEmptyRoot(t *testing.T) {
	t.Parallel()

	scan, err := ScanDir(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, scan.Entries)
	assert.Zero(t, scan.TotalBytes)
}

func TestScanDirFileRoot(t *testing.T) {
	t.Parallel()

	src := filepath.Join(t.TempDir(), "single.txt")
	require.NoError(t, os.WriteFile(src, []byte("content"), 0o644))

	scan, err := ScanDir(context.Background(), src)
	require.NoError(t, err)
	require.Len(t, scan.Entries, 1)
	assert.Equal(t, "single.txt", scan.Entries[0].Path)
	assert.Equal(t, KindFile, scan.Entries[0].Kind)
	assert.Equal(t, uint64(7), scan.TotalBytes)
}

func TestScanDirRecordsSymlinks(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("symlinks not reliable on windows")
	}

	src := t.TempDir()
	writeTree(t, src, map[string]string{"target.txt": "data"})
	require.NoError(t, os.Symlink("target.txt", filepath.Join(src, "link")))

	scan, err := ScanDir(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 1, scan.Symlinks)

	var link *Entry
	for i := range scan.Entries {
		if scan.Entries[i].Kind == KindSymlink {
			link = &scan.Entries[i]
		}
	}
	require.NotNil(t, link)
	assert.Equal(t, "link", link.Path)
	assert.Equal(t, "target.txt", link.LinkTarget)
	assert.Zero(t, link.Size)
}

func TestScanDirSymlinkNotFollowed(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("symlinks not reliable on windows")
	}

	src := t.TempDir()
	writeTree(t, src, map[string]string{"sub/a.txt": "aaa"})
	// A cycle back to the root must not recurse.
	require.NoError(t, os.Symlink(src, filepath.Join(src, "sub", "loop")))

	scan, err := ScanDir(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, 1, scan.Files)
	assert.Equal(t, 1, scan.Symlinks)
}

func TestScanDirCanceled(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	writeTree(t, src, map[string]string{"a.txt": "a"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ScanDir(ctx, src)
	require.ErrorIs(t, err, context.Canceled)
}
