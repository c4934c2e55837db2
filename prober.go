package linkprune

import "context"

// Prober performs one network attempt against a URL.
// Implementations enforce their own per-attempt timeout and must not retry;
// retry policy belongs to the caller.
type Prober interface {
	// Probe issues a single GET and reports what happened. Transport
	// failures are folded into the Outcome rather than returned as errors,
	// so a Prober never fails from the caller's point of view.
	Probe(ctx context.Context, url string) Outcome
}
