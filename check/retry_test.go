package check_test

import (
	"context"
	"testing"
	"time"

	"github.com/khartman/linkprune"
	"github.com/khartman/linkprune/check"
	"github.com/khartman/linkprune/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("trusted URL resolves without probing", func(t *testing.T) {
		t.Parallel()

		prober := &mock.Prober{ProbeFn: func(_ context.Context, _ string) linkprune.Outcome {
			t.Error("prober must not be invoked for trusted URLs")
			return linkprune.Outcome{}
		}}
		r := &check.Resolver{Prober: prober, Delay: time.Millisecond}

		result, err := r.Resolve(context.Background(), "https://github.com/khartman/linkprune")

		require.NoError(t, err)
		assert.Equal(t, linkprune.Result{URL: "https://github.com/khartman/linkprune", StatusCode: 200, Valid: true}, result)
		assert.Zero(t, prober.Calls())
	})

	t.Run("status on first attempt resolves with one probe", func(t *testing.T) {
		t.Parallel()

		prober := &mock.Prober{ProbeFn: func(_ context.Context, _ string) linkprune.Outcome {
			return linkprune.Outcome{StatusCode: 200}
		}}
		r := &check.Resolver{Prober: prober, Delay: time.Millisecond}

		result, err := r.Resolve(context.Background(), "https://example.com/")

		require.NoError(t, err)
		assert.Equal(t, linkprune.Result{URL: "https://example.com/", StatusCode: 200, Valid: true}, result)
		assert.Equal(t, 1, prober.Calls())
	})

	t.Run("definitive bad status is not retried", func(t *testing.T) {
		t.Parallel()

		prober := &mock.Prober{ProbeFn: func(_ context.Context, _ string) linkprune.Outcome {
			return linkprune.Outcome{StatusCode: 404}
		}}
		r := &check.Resolver{Prober: prober, Delay: time.Millisecond}

		result, err := r.Resolve(context.Background(), "https://example.com/gone")

		require.NoError(t, err)
		assert.Equal(t, linkprune.Result{URL: "https://example.com/gone", StatusCode: 404, Valid: false}, result)
		assert.Equal(t, 1, prober.Calls())
	})

	t.Run("403 resolves valid", func(t *testing.T) {
		t.Parallel()

		prober := &mock.Prober{ProbeFn: func(_ context.Context, _ string) linkprune.Outcome {
			return linkprune.Outcome{StatusCode: 403}
		}}
		r := &check.Resolver{Prober: prober, Delay: time.Millisecond}

		result, err := r.Resolve(context.Background(), "https://example.com/private")

		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, 403, result.StatusCode)
	})

	t.Run("persistent connection failure exhausts the attempt budget", func(t *testing.T) {
		t.Parallel()

		prober := &mock.Prober{ProbeFn: func(_ context.Context, _ string) linkprune.Outcome {
			return linkprune.Outcome{Failure: linkprune.FailureConnection}
		}}
		r := &check.Resolver{Prober: prober, Delay: 20 * time.Millisecond}

		start := time.Now()
		result, err := r.Resolve(context.Background(), "https://down.example/")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.Equal(t, linkprune.Result{URL: "https://down.example/", StatusCode: 0, Valid: false}, result)
		assert.Equal(t, check.DefaultAttempts, prober.Calls())
		// Four inter-attempt delays of 20ms each.
		assert.GreaterOrEqual(t, elapsed, 70*time.Millisecond, "should pause between attempts")
	})

	t.Run("recovery after transient failures", func(t *testing.T) {
		t.Parallel()

		prober := &mock.Prober{}
		prober.ProbeFn = func(_ context.Context, _ string) linkprune.Outcome {
			if prober.Calls() <= 2 {
				return linkprune.Outcome{Failure: linkprune.FailureTimeout}
			}
			return linkprune.Outcome{StatusCode: 200}
		}
		r := &check.Resolver{Prober: prober, Delay: time.Millisecond}

		result, err := r.Resolve(context.Background(), "https://flaky.example/")

		require.NoError(t, err)
		assert.Equal(t, linkprune.Result{URL: "https://flaky.example/", StatusCode: 200, Valid: true}, result)
		assert.Equal(t, 3, prober.Calls())
	})

	t.Run("TLS failure earns one bonus re-probe outside the budget", func(t *testing.T) {
		t.Parallel()

		prober := &mock.Prober{}
		prober.ProbeFn = func(_ context.Context, _ string) linkprune.Outcome {
			if prober.Calls() == 1 {
				return linkprune.Outcome{Failure: linkprune.FailureTLS}
			}
			return linkprune.Outcome{StatusCode: 200}
		}
		r := &check.Resolver{Prober: prober, Attempts: 1, Delay: time.Millisecond}

		result, err := r.Resolve(context.Background(), "https://selfsigned.example/")

		require.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, 200, result.StatusCode)
		// Two probes on a single-attempt budget: the re-probe is free.
		assert.Equal(t, 2, prober.Calls())
	})

	t.Run("failed bonus re-probe folds into transport handling", func(t *testing.T) {
		t.Parallel()

		prober := &mock.Prober{ProbeFn: func(_ context.Context, _ string) linkprune.Outcome {
			return linkprune.Outcome{Failure: linkprune.FailureTLS}
		}}
		r := &check.Resolver{Prober: prober, Attempts: 2, Delay: time.Millisecond}

		result, err := r.Resolve(context.Background(), "https://selfsigned.example/")

		require.NoError(t, err)
		assert.Equal(t, linkprune.Result{URL: "https://selfsigned.example/", StatusCode: 0, Valid: false}, result)
		// Each of the two attempts issues the probe plus its bonus re-probe.
		assert.Equal(t, 4, prober.Calls())
	})

	t.Run("cancellation during the inter-attempt delay", func(t *testing.T) {
		t.Parallel()

		prober := &mock.Prober{ProbeFn: func(_ context.Context, _ string) linkprune.Outcome {
			return linkprune.Outcome{Failure: linkprune.FailureConnection}
		}}
		r := &check.Resolver{Prober: prober, Delay: time.Hour}

		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			time.Sleep(20 * time.Millisecond)
			cancel()
		}()

		_, err := r.Resolve(ctx, "https://down.example/")

		require.ErrorIs(t, err, context.Canceled)
	})
}
