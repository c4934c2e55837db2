package linkprune

import "strings"

// Policy holds the keyword heuristics that steer validation. Both lists are
// substring matches against the raw URL, mirroring how bookmark collections
// are curated in practice: a handful of hosts are trusted outright, and a
// marker substring flags entries that should not be judged at all.
type Policy struct {
	// Trusted substrings mark URLs assumed reachable. Matching URLs are
	// reported valid with status 200 and are never probed.
	Trusted []string

	// Skip substrings mark URLs excluded from validation entirely. Matching
	// URLs are dropped before dispatch and appear in neither result set.
	Skip []string
}

// DefaultPolicy returns the stock heuristics: well-known code-hosting,
// search, model-hub, and container-registry domains plus loopback hosts are
// trusted; URLs carrying the "2025" marker are skipped.
func DefaultPolicy() *Policy {
	return &Policy{
		Trusted: []string{"github", "google", "huggingface", "docker", "127.0.0.1", "localhost"},
		Skip:    []string{"2025"},
	}
}

// IsTrusted reports whether the URL contains any trusted substring.
func (p *Policy) IsTrusted(url string) bool {
	return containsAny(url, p.Trusted)
}

// IsSkipped reports whether the URL contains any skip substring.
func (p *Policy) IsSkipped(url string) bool {
	return containsAny(url, p.Skip)
}

// Classify maps a probe outcome to a validity verdict. Codes in [200,400)
// are valid. 403 is valid as well: the resource exists but access is
// restricted, which is not the same as broken. Everything else, including
// outcomes with no response at all, is invalid.
func (p *Policy) Classify(outcome Outcome) bool {
	if !outcome.Responded() {
		return false
	}
	code := outcome.StatusCode
	if code >= 200 && code < 400 {
		return true
	}
	return code == 403
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if kw != "" && strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
