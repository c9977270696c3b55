package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pageforge/pageforge"
)

// Ensure LoggingGenerator implements pageforge.ContentGenerator.
var _ pageforge.ContentGenerator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a ContentGenerator with structured logging.
type LoggingGenerator struct {
	next   pageforge.ContentGenerator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next pageforge.ContentGenerator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates and logs the outcome, including whether the model
// produced anything usable.
func (g *LoggingGenerator) Generate(ctx context.Context, data *pageforge.TemplateData) (*pageforge.GeneratedContent, error) {
	begin := time.Now()
	name := ""
	if data != nil {
		name = data.BusinessName
	}

	content, err := g.next.Generate(ctx, data)
	if err != nil {
		g.logger.Error("generate content", "business", name, "err", err)
		return nil, err
	}
	g.logger.Info("generate content",
		"business", name,
		"empty", content.Empty(),
		"duration", time.Since(begin),
	)
	return content, nil
}
