package output

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puremeth/puremeth-go/internal/domain"
)

func TestNewWriter(t *testing.T) {
	tests := []struct {
		name  string
		opts  WriterOptions
		check func(t *testing.T, w *Writer)
	}{
		{
			name: "with all options",
			opts: WriterOptions{BaseDir: "./test-output", Force: true, DryRun: true},
			check: func(t *testing.T, w *Writer) {
				assert.Equal(t, "./test-output", w.baseDir)
				assert.True(t, w.force)
				assert.True(t, w.dryRun)
			},
		},
		{
			name: "with empty base dir uses cwd",
			opts: WriterOptions{},
			check: func(t *testing.T, w *Writer) {
				assert.Equal(t, ".", w.baseDir)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(tt.opts)
			if tt.check != nil {
				tt.check(t, w)
			}
		})
	}
}

func TestWriter_Write(t *testing.T) {
	t.Run("writes file under base dir", func(t *testing.T) {
		tmpDir := t.TempDir()
		w := NewWriter(WriterOptions{BaseDir: tmpDir})

		path, err := w.Write(context.Background(), "samples.yaml", []byte("samples: {}\n"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tmpDir, "samples.yaml"), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "samples: {}\n", string(data))
	})

	t.Run("refuses to overwrite without force", func(t *testing.T) {
		tmpDir := t.TempDir()
		w := NewWriter(WriterOptions{BaseDir: tmpDir})

		_, err := w.Write(context.Background(), "samples.yaml", []byte("first"))
		require.NoError(t, err)

		_, err = w.Write(context.Background(), "samples.yaml", []byte("second"))
		assert.ErrorIs(t, err, domain.ErrOutputExists)

		data, err := os.ReadFile(filepath.Join(tmpDir, "samples.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "first", string(data))
	})

	t.Run("overwrites with force", func(t *testing.T) {
		tmpDir := t.TempDir()
		w := NewWriter(WriterOptions{BaseDir: tmpDir, Force: true})

		_, err := w.Write(context.Background(), "samples.yaml", []byte("first"))
		require.NoError(t, err)
		_, err = w.Write(context.Background(), "samples.yaml", []byte("second"))
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(tmpDir, "samples.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "second", string(data))
	})

	t.Run("dry run resolves path without writing", func(t *testing.T) {
		tmpDir := t.TempDir()
		w := NewWriter(WriterOptions{BaseDir: tmpDir, DryRun: true})

		path, err := w.Write(context.Background(), "samples.yaml", []byte("data"))
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tmpDir, "samples.yaml"), path)

		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("creates parent directories", func(t *testing.T) {
		tmpDir := t.TempDir()
		w := NewWriter(WriterOptions{BaseDir: tmpDir})

		path, err := w.Write(context.Background(), filepath.Join("nested", "samples.yaml"), []byte("data"))
		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("cancelled context", func(t *testing.T) {
		w := NewWriter(WriterOptions{BaseDir: t.TempDir()})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := w.Write(ctx, "samples.yaml", []byte("data"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestWriter_Path(t *testing.T) {
	w := NewWriter(WriterOptions{BaseDir: "/out"})

	assert.Equal(t, filepath.Join("/out", "samples.yaml"), w.Path("samples.yaml"))
	assert.Equal(t, "/elsewhere/samples.yaml", w.Path("/elsewhere/samples.yaml"))
}

func TestWriter_Exists(t *testing.T) {
	tmpDir := t.TempDir()
	w := NewWriter(WriterOptions{BaseDir: tmpDir})

	assert.False(t, w.Exists("samples.yaml"))

	_, err := w.Write(context.Background(), "samples.yaml", []byte("data"))
	require.NoError(t, err)
	assert.True(t, w.Exists("samples.yaml"))
}
