package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Workspace is a scratch directory holding one request's transient files.
// Each request gets its own directory so concurrent uploads never race on
// shared paths; Cleanup must run on every exit path.
type Workspace struct {
	dir string
}

// NewWorkspace creates a uniquely named scratch directory under the system
// temp dir.
func NewWorkspace() (*Workspace, error) {
	dir := filepath.Join(os.TempDir(), "botanalis-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("failed to create workspace: %w", err)
	}
	return &Workspace{dir: dir}, nil
}

// Path returns the absolute path for a file name inside the workspace.
func (w *Workspace) Path(name string) string {
	return filepath.Join(w.dir, name)
}

// WriteFile stores data under name inside the workspace.
func (w *Workspace) WriteFile(name string, data []byte) (string, error) {
	path := w.Path(name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}
	return path, nil
}

// Cleanup removes the workspace and everything in it.
func (w *Workspace) Cleanup() {
	os.RemoveAll(w.dir)
}
