package scanner

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puremeth/puremeth-go/internal/domain"
)

// writeFiles creates empty files under dir, making parent directories as
// needed
func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("dummy content"), 0644))
	}
}

func TestScan_MatchesExtensionRecursively(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir,
		"run1/sample1.fast5",
		"run1/nested/sample2.fast5",
		"run2/sample3.fast5",
		"run1/readme.txt",
	)

	paths, err := Scan(context.Background(), tmpDir, ".fast5", Options{})
	require.NoError(t, err)
	require.Len(t, paths, 3)

	root, err := filepath.Abs(tmpDir)
	require.NoError(t, err)
	for _, p := range paths {
		assert.True(t, filepath.IsAbs(p))
		assert.True(t, strings.HasPrefix(p, root), "path %s should be under %s", p, root)
		assert.True(t, strings.HasSuffix(p, ".fast5"))
	}
}

func TestScan_SortedOutput(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "b.fast5", "a.fast5", "c/a.fast5")

	paths, err := Scan(context.Background(), tmpDir, ".fast5", Options{})
	require.NoError(t, err)
	require.Len(t, paths, 3)
	assert.IsIncreasing(t, paths)
}

func TestScan_ExtensionWithoutDot(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "sample1.bed", "sample2.txt")

	paths, err := Scan(context.Background(), tmpDir, "bed", Options{})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.True(t, strings.HasSuffix(paths[0], "sample1.bed"))
}

func TestScan_CaseSensitive(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "upper.FAST5", "lower.fast5")

	paths, err := Scan(context.Background(), tmpDir, ".fast5", Options{})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.True(t, strings.HasSuffix(paths[0], "lower.fast5"))
}

func TestScan_EmptyDirectory(t *testing.T) {
	paths, err := Scan(context.Background(), t.TempDir(), ".fast5", Options{})
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestScan_DirectoryNotFound(t *testing.T) {
	_, err := Scan(context.Background(), "/nonexistent/path", ".fast5", Options{})
	assert.ErrorIs(t, err, domain.ErrDirectoryNotFound)
}

func TestScan_NotADirectory(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "plain.fast5")

	_, err := Scan(context.Background(), filepath.Join(tmpDir, "plain.fast5"), ".fast5", Options{})
	assert.ErrorIs(t, err, domain.ErrNotADirectory)
}

func TestScan_EmptyExtension(t *testing.T) {
	_, err := Scan(context.Background(), t.TempDir(), "", Options{})
	assert.ErrorIs(t, err, domain.ErrEmptyExtension)
}

func TestScan_CancelledContext(t *testing.T) {
	tmpDir := t.TempDir()
	writeFiles(t, tmpDir, "sample1.fast5")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Scan(ctx, tmpDir, ".fast5", Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScan_DoesNotFollowDirectorySymlinks(t *testing.T) {
	tmpDir := t.TempDir()
	outside := t.TempDir()
	writeFiles(t, outside, "linked.fast5")

	if err := os.Symlink(outside, filepath.Join(tmpDir, "link")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	writeFiles(t, tmpDir, "direct.fast5")

	paths, err := Scan(context.Background(), tmpDir, ".fast5", Options{})
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.True(t, strings.HasSuffix(paths[0], "direct.fast5"))
}
