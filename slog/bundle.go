// Package slog provides logging decorators for the topicviz services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/topiclab/topicviz"
)

// Ensure LoggingBundleService implements topicviz.BundleService.
var _ topicviz.BundleService = (*LoggingBundleService)(nil)

// LoggingBundleService wraps a BundleService with per-bundle logging.
type LoggingBundleService struct {
	next   topicviz.BundleService
	logger *slog.Logger
}

// NewLoggingBundleService creates a new LoggingBundleService.
func NewLoggingBundleService(next topicviz.BundleService, logger *slog.Logger) *LoggingBundleService {
	return &LoggingBundleService{next: next, logger: logger}
}

// Generate delegates to the wrapped service and logs the operation.
func (s *LoggingBundleService) Generate(ctx context.Context, src *topicviz.Source) (result *topicviz.Result, err error) {
	defer func(begin time.Time) {
		files, bytes := 0, int64(0)
		if result != nil {
			files, bytes = result.Files, result.Bytes
		}
		s.logger.Info("bundle generation",
			"source", src.Name,
			"files", files,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Generate(ctx, src)
}
