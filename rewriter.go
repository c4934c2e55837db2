package linkprune

import "io"

// Rewriter produces a pruned copy of a bookmark document.
type Rewriter interface {
	// Prune removes every link node whose href is in the invalid set and
	// serializes the result. It returns the serialized document and the
	// number of nodes removed. Prune never writes files; file I/O belongs
	// to the caller.
	Prune(r io.Reader, invalid map[string]struct{}) (out []byte, removed int, err error)
}
