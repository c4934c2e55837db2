package check

import (
	"context"
	"time"

	"github.com/khartman/linkprune"
)

// Retry defaults. A received status code is always definitive; the attempt
// budget only covers transport failures.
const (
	DefaultAttempts = 5
	DefaultDelay    = 1 * time.Second
)

// Resolver wraps a Prober with the retry policy that turns raw probe
// outcomes into a final verdict for one URL.
type Resolver struct {
	Prober linkprune.Prober
	Policy *linkprune.Policy

	// Limiter, when set, gates every counted attempt. The TLS bonus
	// re-probe rides on its attempt's slot.
	Limiter linkprune.ProbeLimiter

	// Attempts is the transport-failure retry budget. Defaults to
	// DefaultAttempts when zero.
	Attempts int

	// Delay is the pause between attempts. Defaults to DefaultDelay when
	// zero; tests set it low to avoid real waiting.
	Delay time.Duration
}

// Resolve runs the per-URL retry state machine:
//
//   - trusted URLs short-circuit to (url, 200, valid) with no probe;
//   - any received status code ends the run immediately, even a "bad" one
//     like 404 — the server answered, so retrying cannot change the verdict;
//   - a TLS-class failure earns exactly one immediate re-probe that does not
//     count against the attempt budget, after which the outcome is handled
//     like any other;
//   - remaining transport failures sleep Delay and consume the next attempt;
//     exhausting the budget yields (url, 0, invalid).
//
// When a Limiter is set, each counted attempt first acquires a slot for the
// URL's host, so retry storms against one site stay polite.
//
// The only returned error is ctx.Err() when the context is canceled
// mid-resolution; the caller abandons such results.
func (r *Resolver) Resolve(ctx context.Context, url string) (linkprune.Result, error) {
	policy := r.Policy
	if policy == nil {
		policy = linkprune.DefaultPolicy()
	}

	if policy.IsTrusted(url) {
		return linkprune.Result{URL: url, StatusCode: 200, Valid: true}, nil
	}

	attempts := r.Attempts
	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	delay := r.Delay
	if delay == 0 {
		delay = DefaultDelay
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		if r.Limiter != nil {
			if err := r.Limiter.Acquire(ctx, url); err != nil {
				return linkprune.Result{}, err
			}
		}

		outcome := r.Prober.Probe(ctx, url)

		if outcome.Failure == linkprune.FailureTLS {
			// One bonus re-probe, ignoring the TLS condition. Whatever it
			// returns is handled below as if it were the original outcome.
			outcome = r.Prober.Probe(ctx, url)
		}

		if outcome.Responded() {
			return linkprune.Result{
				URL:        url,
				StatusCode: outcome.StatusCode,
				Valid:      policy.Classify(outcome),
			}, nil
		}

		if attempt == attempts {
			break
		}

		select {
		case <-ctx.Done():
			return linkprune.Result{}, ctx.Err()
		case <-time.After(delay):
		}
	}

	return linkprune.Result{URL: url, StatusCode: 0, Valid: false}, nil
}
