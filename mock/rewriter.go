package mock

import (
	"io"

	"github.com/khartman/linkprune"
)

var _ linkprune.Rewriter = (*Rewriter)(nil)

// Rewriter is a mock implementation of linkprune.Rewriter.
type Rewriter struct {
	PruneFn func(r io.Reader, invalid map[string]struct{}) ([]byte, int, error)
}

func (w *Rewriter) Prune(r io.Reader, invalid map[string]struct{}) ([]byte, int, error) {
	return w.PruneFn(r, invalid)
}
