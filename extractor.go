package linkprune

import "io"

// Extractor pulls link targets out of a bookmark document.
type Extractor interface {
	// ExtractLinks parses the document and returns every anchor href in
	// document traversal order. Duplicates are preserved: each occurrence
	// is validated independently.
	ExtractLinks(r io.Reader) ([]string, error)
}
