package mock

import (
	"io"

	"github.com/khartman/linkprune"
)

var _ linkprune.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of linkprune.Extractor.
type Extractor struct {
	ExtractLinksFn func(r io.Reader) ([]string, error)
}

func (e *Extractor) ExtractLinks(r io.Reader) ([]string, error) {
	return e.ExtractLinksFn(r)
}
