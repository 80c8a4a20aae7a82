package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/topiclab/topicviz"
)

// Ensure Scanner implements topicviz.SourceScanner at compile time.
var _ topicviz.SourceScanner = (*Scanner)(nil)

// Scanner discovers source folders under a root directory.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns descriptors for every direct subdirectory of root whose name
// matches the naming convention, in name order. Entries that do not match
// are skipped rather than reported.
func (s *Scanner) Scan(ctx context.Context, root string) ([]*topicviz.Source, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading source root: %w", err)
	}

	var sources []*topicviz.Source
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		src, err := topicviz.ParseSourceName(entry.Name())
		if err != nil {
			continue
		}
		src.Path = filepath.Join(root, entry.Name())
		sources = append(sources, src)
	}

	return sources, nil
}
