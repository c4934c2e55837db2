package mock

import (
	"context"

	"github.com/khartman/linkprune"
)

var _ linkprune.ProbeLimiter = (*ProbeLimiter)(nil)

// ProbeLimiter is a mock implementation of linkprune.ProbeLimiter.
type ProbeLimiter struct {
	AcquireFn func(ctx context.Context, rawURL string) error
}

func (l *ProbeLimiter) Acquire(ctx context.Context, rawURL string) error {
	return l.AcquireFn(ctx, rawURL)
}
