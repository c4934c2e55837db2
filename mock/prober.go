// Package mock provides hand-written mock implementations of the linkprune
// interfaces for use in tests.
package mock

import (
	"context"
	"sync/atomic"

	"github.com/khartman/linkprune"
)

var _ linkprune.Prober = (*Prober)(nil)

// Prober is a mock implementation of linkprune.Prober.
// It counts invocations so tests can assert exact probe counts.
type Prober struct {
	ProbeFn func(ctx context.Context, url string) linkprune.Outcome

	calls atomic.Int64
}

func (p *Prober) Probe(ctx context.Context, url string) linkprune.Outcome {
	p.calls.Add(1)
	return p.ProbeFn(ctx, url)
}

// Calls returns the number of times Probe has been invoked.
func (p *Prober) Calls() int {
	return int(p.calls.Load())
}
