package linkprune

import "context"

// ProbeLimiter throttles outbound probes so repeated attempts against the
// same site stay polite.
type ProbeLimiter interface {
	// Acquire blocks until the target URL's rate limit admits one probe.
	// Implementations decide how to key the limit (typically by host).
	// Returns an error only when the context is canceled while waiting.
	Acquire(ctx context.Context, rawURL string) error
}
