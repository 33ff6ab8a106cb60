package maintpage

import (
	"context"
	"fmt"

	"github.com/alnah/go-maintpage/internal/fileutil"
)

// OutputWriter persists the rendered document.
type OutputWriter interface {
	Write(ctx context.Context, path, content string) error
}

// FileWriter creates the parent directory recursively and writes the file,
// overwriting any existing one. With Atomic set, content goes to a
// temporary file in the same directory that is then renamed over path.
type FileWriter struct {
	Atomic bool
}

// Compile-time interface check.
var _ OutputWriter = (*FileWriter)(nil)

// Write stores content at path. Failures wrap ErrWriteOutput.
func (w *FileWriter) Write(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	write := fileutil.WriteFile
	if w.Atomic {
		write = fileutil.WriteFileAtomic
	}
	if err := write(path, content); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	return nil
}
