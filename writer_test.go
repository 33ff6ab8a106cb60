package maintpage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWriter_Write(t *testing.T) {
	t.Parallel()

	for _, atomic := range []bool{false, true} {
		name := "direct"
		if atomic {
			name = "atomic"
		}
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "dist", "nested", "maintenance.html")
			w := &FileWriter{Atomic: atomic}

			require.NoError(t, w.Write(context.Background(), path, "<p>first</p>"))
			require.NoError(t, w.Write(context.Background(), path, "<p>second</p>"))

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, "<p>second</p>", string(got))

			entries, err := os.ReadDir(filepath.Dir(path))
			require.NoError(t, err)
			assert.Len(t, entries, 1, "no temporary files may be left behind")
		})
	}
}

func TestFileWriter_Errors(t *testing.T) {
	t.Parallel()

	t.Run("parent is a file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		blocker := writeTestFile(t, dir, "dist", "not a directory")

		err := (&FileWriter{}).Write(context.Background(), filepath.Join(blocker, "maintenance.html"), "x")
		assert.ErrorIs(t, err, ErrWriteOutput)
	})

	t.Run("target is a directory", func(t *testing.T) {
		t.Parallel()

		err := (&FileWriter{}).Write(context.Background(), t.TempDir(), "x")
		assert.ErrorIs(t, err, ErrWriteOutput)
	})

	t.Run("canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "out.html")
		err := (&FileWriter{}).Write(ctx, path, "x")
		assert.ErrorIs(t, err, context.Canceled)
		assert.NoFileExists(t, path)
	})
}
