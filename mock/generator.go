package mock

import (
	"context"

	"github.com/pageforge/pageforge"
)

var _ pageforge.ContentGenerator = (*ContentGenerator)(nil)

// ContentGenerator is a mock implementation of pageforge.ContentGenerator.
type ContentGenerator struct {
	GenerateFn func(ctx context.Context, data *pageforge.TemplateData) (*pageforge.GeneratedContent, error)
}

func (g *ContentGenerator) Generate(ctx context.Context, data *pageforge.TemplateData) (*pageforge.GeneratedContent, error) {
	return g.GenerateFn(ctx, data)
}

var _ pageforge.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of pageforge.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}

var _ pageforge.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of pageforge.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context, key string) error
}

func (l *Limiter) Wait(ctx context.Context, key string) error {
	return l.WaitFn(ctx, key)
}
