package pageforge

import "context"

// Limiter applies a per-key rate limit. Keys identify independent budgets,
// typically one per page owner.
type Limiter interface {
	// Wait blocks until the key's budget allows another operation. Returns
	// an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, key string) error
}
