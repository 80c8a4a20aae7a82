package slog

import (
	"log/slog"
	"time"

	"github.com/topiclab/topicviz"
)

// Ensure LoggingDetector implements topicviz.PlotDetector.
var _ topicviz.PlotDetector = (*LoggingDetector)(nil)

// LoggingDetector wraps a PlotDetector with debug logging for plot probes.
type LoggingDetector struct {
	next   topicviz.PlotDetector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next topicviz.PlotDetector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// Detect delegates to the wrapped detector and logs the probe result.
func (d *LoggingDetector) Detect(html string) topicviz.PlotProbe {
	begin := time.Now()
	probe := d.next.Detect(html)
	title := probe.Title
	if title == "" {
		title = "(untitled)"
	}
	d.logger.Debug("plot detection",
		"interactive", probe.Interactive,
		"title", title,
		"duration", time.Since(begin),
	)
	return probe
}
