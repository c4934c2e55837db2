package check

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/khartman/linkprune"
	"golang.org/x/time/rate"
)

var _ linkprune.ProbeLimiter = (*HostLimiter)(nil)

// HostLimiter throttles probes per target host. Each host (including its
// port, so a dev server on :8080 and one on :9090 count separately) gets
// its own token bucket; different hosts never wait on each other.
type HostLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	rps     float64
	burst   int
}

// NewHostLimiter creates a HostLimiter admitting rps probes per second per
// host, with up to burst probes allowed to fire back to back. A burst below
// 1 is raised to 1.
func NewHostLimiter(rps float64, burst int) *HostLimiter {
	if burst < 1 {
		burst = 1
	}
	return &HostLimiter{
		buckets: make(map[string]*rate.Limiter),
		rps:     rps,
		burst:   burst,
	}
}

// Acquire blocks until the URL's host may be probed again. URLs without a
// usable host are admitted immediately: there is nothing to key the limit
// on, and the probe itself will surface the problem.
func (l *HostLimiter) Acquire(ctx context.Context, rawURL string) error {
	target, err := url.Parse(rawURL)
	if err != nil || target.Host == "" {
		return nil
	}
	host := strings.ToLower(target.Host)

	l.mu.Lock()
	bucket, ok := l.buckets[host]
	if !ok {
		bucket = rate.NewLimiter(rate.Limit(l.rps), l.burst)
		l.buckets[host] = bucket
	}
	l.mu.Unlock()

	return bucket.Wait(ctx)
}
