// Package http provides a net/http-based implementation of linkprune.Prober.
package http

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/khartman/linkprune"
)

// DefaultProbeTimeout is the deadline for a single probe attempt.
const DefaultProbeTimeout = 10 * time.Second

// Ensure Prober implements linkprune.Prober at compile time.
var _ linkprune.Prober = (*Prober)(nil)

// Prober issues one GET per invocation and reports the outcome. Certificate
// verification is disabled: bookmark collections routinely reference
// self-signed or misconfigured hosts, and reachability matters more here
// than certificate trust. Redirects are followed; the reported status code
// is the final one.
type Prober struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Prober.
type Option func(*Prober)

// WithTimeout sets the per-attempt deadline.
// Defaults to DefaultProbeTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(p *Prober) {
		p.timeout = d
	}
}

// WithClient replaces the HTTP client entirely. The caller owns the
// client's transport and timeout configuration.
func WithClient(client *http.Client) Option {
	return func(p *Prober) {
		p.client = client
	}
}

// NewProber creates a new HTTP-based Prober.
func NewProber(opts ...Option) *Prober {
	p := &Prober{
		timeout: DefaultProbeTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.client == nil {
		p.client = &http.Client{
			Timeout: p.timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true}, //nolint:gosec // reachability over trust, see type doc
			},
		}
	}

	return p
}

// Probe issues a single GET against the URL. Transport failures become a
// tagged Outcome; Probe itself never fails.
func (p *Prober) Probe(ctx context.Context, url string) linkprune.Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return linkprune.Outcome{Failure: linkprune.FailureOther}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return linkprune.Outcome{Failure: classifyError(err)}
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	return linkprune.Outcome{StatusCode: resp.StatusCode}
}

// classifyError maps a transport error onto a FailureKind. TLS problems are
// kept distinct because the retry controller grants them a bonus re-probe.
func classifyError(err error) linkprune.FailureKind {
	var recordErr tls.RecordHeaderError
	var certErr *tls.CertificateVerificationError
	var authorityErr x509.UnknownAuthorityError
	var hostErr x509.HostnameError
	var invalidErr x509.CertificateInvalidError
	if errors.As(err, &recordErr) ||
		errors.As(err, &certErr) ||
		errors.As(err, &authorityErr) ||
		errors.As(err, &hostErr) ||
		errors.As(err, &invalidErr) {
		return linkprune.FailureTLS
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return linkprune.FailureTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return linkprune.FailureTimeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return linkprune.FailureConnection
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return linkprune.FailureConnection
	}

	return linkprune.FailureOther
}
