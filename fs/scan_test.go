package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/topiclab/topicviz/fs"
)

func TestScanner_ScanOrdering(t *testing.T) {
	t.Parallel()

	t.Run("returns matching folders in name order", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		for _, name := range []string{
			"heart_failure_with_pagerank_nmtf_bpe_34",
			"diabetes_with_pagerank_pnmf_bpe_20",
			"notes",
			"heart_failure_nmtf_34",
		} {
			require.NoError(t, os.Mkdir(filepath.Join(root, name), 0755))
		}
		// A matching name that is a file, not a directory, is skipped.
		require.NoError(t, os.WriteFile(filepath.Join(root, "asthma_with_pagerank_nmtf_bpe_10"), []byte("x"), 0644))

		scanner := fs.NewScanner()
		sources, err := scanner.Scan(context.Background(), root)
		require.NoError(t, err)
		require.Len(t, sources, 2)

		assert.Equal(t, "diabetes", sources[0].Dataset)
		assert.Equal(t, filepath.Join(root, "diabetes_with_pagerank_pnmf_bpe_20"), sources[0].Path)
		assert.Equal(t, "heart_failure", sources[1].Dataset)
		assert.Equal(t, 34, sources[1].TopicCount)
	})

	t.Run("empty root yields no sources", func(t *testing.T) {
		t.Parallel()

		scanner := fs.NewScanner()
		sources, err := scanner.Scan(context.Background(), t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, sources)
	})

	t.Run("missing root returns error", func(t *testing.T) {
		t.Parallel()

		scanner := fs.NewScanner()
		_, err := scanner.Scan(context.Background(), filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})
}
