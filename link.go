package linkprune

// FailureKind classifies a transport-level probe failure. Transport failures
// produce no status code; the kind decides how the retry controller reacts.
type FailureKind int

// Transport failure kinds.
const (
	// FailureNone means the probe received an HTTP response.
	FailureNone FailureKind = iota

	// FailureTLS covers certificate and handshake errors. These earn a
	// single bonus re-probe before being treated like any other transport
	// failure.
	FailureTLS

	// FailureConnection covers refused, reset, and unresolvable hosts.
	FailureConnection

	// FailureTimeout covers attempts that exceeded the probe deadline.
	FailureTimeout

	// FailureOther covers transport failures of no recognized kind.
	FailureOther
)

// String returns a short label for logging.
func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureTLS:
		return "tls"
	case FailureConnection:
		return "connection"
	case FailureTimeout:
		return "timeout"
	default:
		return "other"
	}
}

// Outcome is the raw result of one network attempt against a URL. Exactly
// one of StatusCode and Failure is meaningful: a received response sets
// StatusCode (and Failure is FailureNone), a transport failure sets Failure
// (and StatusCode is 0).
type Outcome struct {
	StatusCode int
	Failure    FailureKind
}

// Responded reports whether the attempt received an HTTP response.
func (o Outcome) Responded() bool {
	return o.Failure == FailureNone && o.StatusCode > 0
}

// Result is the final, retry-resolved verdict for one link. StatusCode is 0
// when no response was ever received (every attempt failed at the transport
// level).
type Result struct {
	URL        string
	StatusCode int
	Valid      bool
}
