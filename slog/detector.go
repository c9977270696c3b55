package slog

import (
	"log/slog"
	"time"

	"github.com/pageforge/pageforge"
)

// Ensure LoggingDetector implements pageforge.CategoryDetector.
var _ pageforge.CategoryDetector = (*LoggingDetector)(nil)

// LoggingDetector wraps a CategoryDetector with debug logging for category detection.
type LoggingDetector struct {
	next   pageforge.CategoryDetector
	logger *slog.Logger
}

// NewLoggingDetector creates a new LoggingDetector.
func NewLoggingDetector(next pageforge.CategoryDetector, logger *slog.Logger) *LoggingDetector {
	return &LoggingDetector{next: next, logger: logger}
}

// Detect detects the category, logs it, and returns the result.
func (d *LoggingDetector) Detect(html string, selected pageforge.PageCategory) pageforge.PageCategory {
	begin := time.Now()
	category := d.next.Detect(html, selected)
	d.logger.Info("category detection",
		"category", category,
		"selected", selected != "",
		"duration", time.Since(begin),
	)
	return category
}
