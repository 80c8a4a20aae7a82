package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	main "github.com/topiclab/topicviz/cmd/topicviz"
)

// testContext returns a background context for tests.
func testContext() context.Context {
	return context.Background()
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("generate, list, delete round trip", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "topicviz.db")
		out := filepath.Join(t.TempDir(), "apps")

		// One valid source folder with a coherence score document.
		root := t.TempDir()
		name := "heart_failure_with_pagerank_nmtf_bpe_34"
		dir := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(dir, 0755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+"_coherence_scores.json"),
			[]byte(`{"gensim": {"c_v_per_topic": {"1": 0.5, "2": 0.6, "3": 0.7}, "c_v_average": 0.6}}`), 0644))

		run := func(args ...string) (string, string, error) {
			m := main.NewMain()
			m.DBPath = dbPath
			stdout := &bytes.Buffer{}
			stderr := &bytes.Buffer{}
			err := m.Run(testContext(), args, stdout, stderr)
			return stdout.String(), stderr.String(), err
		}

		stdout, _, err := run("generate", root, "-o", out)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Generated 1 of 1 bundles")

		bundleDir := filepath.Join(out, "heart-failure-nmtf-3")
		_, err = os.Stat(filepath.Join(bundleDir, "index.html"))
		require.NoError(t, err)

		stdout, _, err = run("list")
		require.NoError(t, err)
		assert.Contains(t, stdout, "heart-failure-nmtf-3")

		stdout, _, err = run("delete", "heart-failure-nmtf-3", "--force", "--purge")
		require.NoError(t, err)
		assert.Contains(t, stdout, "Deleted app")

		_, err = os.Stat(bundleDir)
		assert.True(t, os.IsNotExist(err))

		stdout, _, err = run("list")
		require.NoError(t, err)
		assert.Contains(t, stdout, "No apps")
	})

	t.Run("no command shows help and errors", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "topicviz.db")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), nil, stdout, stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("help does not require a database", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = "/nonexistent/dir/topicviz.db"
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(testContext(), []string{"--help"}, stdout, stderr)
		require.NoError(t, err)
	})
}
