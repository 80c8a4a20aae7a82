package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/topiclab/topicviz"
	"github.com/topiclab/topicviz/mock"
	vizslog "github.com/topiclab/topicviz/slog"
)

func TestLoggingBundleService_Generate(t *testing.T) {
	t.Parallel()

	t.Run("logs generation with file count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.BundleService{
			GenerateFn: func(ctx context.Context, src *topicviz.Source) (*topicviz.Result, error) {
				return &topicviz.Result{Source: src, Files: 19, Bytes: 4096}, nil
			},
		}

		src, err := topicviz.ParseSourceName("heart_failure_with_pagerank_nmtf_bpe_34")
		require.NoError(t, err)

		svc := vizslog.NewLoggingBundleService(inner, logger)
		result, err := svc.Generate(context.Background(), src)

		require.NoError(t, err)
		assert.Equal(t, 19, result.Files)
		output := buf.String()
		assert.Contains(t, output, "bundle generation")
		assert.Contains(t, output, "source=heart_failure_with_pagerank_nmtf_bpe_34")
		assert.Contains(t, output, "files=19")
		assert.Contains(t, output, "bytes=4096")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.BundleService{
			GenerateFn: func(ctx context.Context, src *topicviz.Source) (*topicviz.Result, error) {
				return nil, errors.New("no score document")
			},
		}

		src, err := topicviz.ParseSourceName("heart_failure_with_pagerank_nmtf_bpe_34")
		require.NoError(t, err)

		svc := vizslog.NewLoggingBundleService(inner, logger)
		_, err = svc.Generate(context.Background(), src)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "bundle generation")
		assert.Contains(t, output, "err=\"no score document\"")
	})
}
