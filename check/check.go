// Package check provides concurrent link validation orchestration.
// It fans a list of URLs out across a bounded worker pool, resolves each
// through the retry controller, and aggregates verdicts into a report.
package check

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/khartman/linkprune"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of in-flight resolutions when the caller
// does not set one.
const DefaultConcurrency = 10

// Checker orchestrates validation of a set of links.
type Checker struct {
	Prober linkprune.Prober
	Policy *linkprune.Policy

	// Limiter, when set, throttles probe attempts per target.
	Limiter linkprune.ProbeLimiter

	// Concurrency caps in-flight resolutions. Each resolution may issue
	// several network attempts internally. Defaults to DefaultConcurrency.
	Concurrency int

	// Attempts and Delay configure the retry controller; zero values use
	// the retry defaults.
	Attempts int
	Delay    time.Duration
}

// ProgressEvent reports progress during a validation run. RunID ties every
// event to the report it is building, so interleaved log output from
// concurrent runs can be told apart.
type ProgressEvent struct {
	RunID     string
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Result    linkprune.Result
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressChecked
	ProgressFinished
)

// ProgressFunc is a callback for reporting validation progress. Events
// arrive in completion order, which carries no relation to submission
// order. The callback runs on the collector goroutine; it must not block
// for long but cannot affect the report's correctness.
type ProgressFunc func(event ProgressEvent)

// CheckLinks validates every URL and partitions them into valid and invalid
// sets. URLs matching the policy's skip list are dropped before dispatch and
// appear in neither set. Duplicate occurrences are each resolved
// independently; the report keeps the first verdict per URL.
//
// Cancellation is cooperative: when ctx is canceled the pool stops
// dispatching, in-flight resolutions are abandoned, and the partial report
// is returned with a nil error. Cancellation is a normal outcome here, not
// a failure.
func (c *Checker) CheckLinks(ctx context.Context, urls []string, progress ProgressFunc) (*linkprune.Report, error) {
	policy := c.Policy
	if policy == nil {
		policy = linkprune.DefaultPolicy()
	}

	// Pre-dispatch skip filter. Skipped URLs are not counted toward the
	// total and never produce a result.
	dispatched := make([]string, 0, len(urls))
	for _, u := range urls {
		if policy.IsSkipped(u) {
			continue
		}
		dispatched = append(dispatched, u)
	}

	report := linkprune.NewReport(uuid.NewString())
	total := len(dispatched)

	if progress != nil {
		progress(ProgressEvent{RunID: report.RunID, Type: ProgressStarted, Total: total})
	}

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resolver := &Resolver{
		Prober:   c.Prober,
		Policy:   policy,
		Limiter:  c.Limiter,
		Attempts: c.Attempts,
		Delay:    c.Delay,
	}

	resultCh := make(chan linkprune.Result, concurrency)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, u := range dispatched {
			if gctx.Err() != nil {
				break
			}
			u := u
			g.Go(func() error {
				result, err := resolver.Resolve(gctx, u)
				if err != nil {
					// Canceled mid-resolution; abandon without a result.
					return nil
				}
				select {
				case resultCh <- result:
				case <-gctx.Done():
				}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Single collector goroutine: the report is mutated here and nowhere
	// else, so concurrent completions cannot race on it.
	completed := 0
	for result := range resultCh {
		completed++
		report.Add(result)
		if progress != nil {
			progress(ProgressEvent{
				RunID:     report.RunID,
				Type:      ProgressChecked,
				Completed: completed,
				Total:     total,
				URL:       result.URL,
				Result:    result,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{RunID: report.RunID, Type: ProgressFinished, Completed: completed, Total: total})
	}

	return report, nil
}
