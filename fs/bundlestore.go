package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/topiclab/topicviz"
)

// Ensure BundleStore implements topicviz.BundleStore at compile time.
var _ topicviz.BundleStore = (*BundleStore)(nil)

// BundleStore implements topicviz.BundleStore with atomic update semantics.
// Files are staged under baseDir/name.tmp and moved to baseDir/name on Commit.
type BundleStore struct {
	baseDir string
	name    string
}

// NewBundleStore creates a new BundleStore.
// baseDir is the parent directory, name is the bundle directory name.
func NewBundleStore(baseDir, name string) *BundleStore {
	return &BundleStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *BundleStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *BundleStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Dir returns the final bundle directory.
func (s *BundleStore) Dir() string {
	return s.finalDir()
}

// WriteFile stages a file at the given bundle-relative path.
func (s *BundleStore) WriteFile(ctx context.Context, relPath string, data []byte) error {
	fullPath := filepath.Join(s.tempDir(), filepath.FromSlash(relPath))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, data, 0644)
}

// CopyFile stages a byte-for-byte copy of srcPath at the given
// bundle-relative path.
func (s *BundleStore) CopyFile(ctx context.Context, relPath, srcPath string) error {
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}
	return s.WriteFile(ctx, relPath, data)
}

// Commit atomically replaces the final bundle directory with the staged one.
func (s *BundleStore) Commit() error {
	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

// Abort discards staged files.
func (s *BundleStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
