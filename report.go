package linkprune

// Report is the aggregate partition of resolved URLs into valid and invalid
// sets. It is built incrementally by the validation engine's collector and
// must only be mutated from a single goroutine; the engine serializes all
// writes.
type Report struct {
	// RunID identifies the validation run that produced this report.
	RunID string

	Valid   map[string]struct{}
	Invalid map[string]struct{}
}

// NewReport returns an empty report for the given run.
func NewReport(runID string) *Report {
	return &Report{
		RunID:   runID,
		Valid:   make(map[string]struct{}),
		Invalid: make(map[string]struct{}),
	}
}

// Add records a result in the appropriate set. A URL appears in at most one
// set: when the same URL occurs multiple times in the source document each
// occurrence is probed independently, and the first verdict to complete
// wins. Add reports whether the result was recorded.
func (r *Report) Add(result Result) bool {
	if _, ok := r.Valid[result.URL]; ok {
		return false
	}
	if _, ok := r.Invalid[result.URL]; ok {
		return false
	}
	if result.Valid {
		r.Valid[result.URL] = struct{}{}
	} else {
		r.Invalid[result.URL] = struct{}{}
	}
	return true
}

// Total returns the number of distinct URLs recorded.
func (r *Report) Total() int {
	return len(r.Valid) + len(r.Invalid)
}
