package ratelimit

import (
	"context"

	"github.com/pageforge/pageforge"
)

var _ pageforge.ContentGenerator = (*Generator)(nil)

// Generator wraps a ContentGenerator with a per-business rate limit.
// Generation calls are billable; the limiter keeps a single business from
// regenerating its page in a tight loop.
type Generator struct {
	next    pageforge.ContentGenerator
	limiter pageforge.Limiter
}

// NewGenerator creates a rate-limited ContentGenerator.
func NewGenerator(next pageforge.ContentGenerator, limiter pageforge.Limiter) *Generator {
	return &Generator{next: next, limiter: limiter}
}

// Generate waits for the business's budget, then delegates.
func (g *Generator) Generate(ctx context.Context, data *pageforge.TemplateData) (*pageforge.GeneratedContent, error) {
	key := ""
	if data != nil {
		key = data.BusinessName
	}
	if err := g.limiter.Wait(ctx, key); err != nil {
		return nil, err
	}
	return g.next.Generate(ctx, data)
}
