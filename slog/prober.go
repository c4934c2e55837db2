// Package slog provides logging decorators for linkprune interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/khartman/linkprune"
)

// Ensure LoggingProber implements linkprune.Prober.
var _ linkprune.Prober = (*LoggingProber)(nil)

// LoggingProber wraps a Prober with debug logging for every network attempt.
type LoggingProber struct {
	next   linkprune.Prober
	logger *slog.Logger
}

// NewLoggingProber creates a new LoggingProber.
func NewLoggingProber(next linkprune.Prober, logger *slog.Logger) *LoggingProber {
	return &LoggingProber{next: next, logger: logger}
}

// Probe delegates to the wrapped prober and logs the outcome.
func (p *LoggingProber) Probe(ctx context.Context, url string) linkprune.Outcome {
	begin := time.Now()
	outcome := p.next.Probe(ctx, url)
	if outcome.Responded() {
		p.logger.Debug("probe",
			"url", url,
			"status", outcome.StatusCode,
			"duration", time.Since(begin),
		)
	} else {
		p.logger.Debug("probe failed",
			"url", url,
			"failure", outcome.Failure.String(),
			"duration", time.Since(begin),
		)
	}
	return outcome
}
