package goquery

import (
	"bytes"
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/khartman/linkprune"
	"golang.org/x/net/html"
)

// Ensure Rewriter implements linkprune.Rewriter at compile time.
var _ linkprune.Rewriter = (*Rewriter)(nil)

// Rewriter produces a pruned copy of a bookmark document.
type Rewriter struct{}

// NewRewriter creates a new Rewriter.
func NewRewriter() *Rewriter {
	return &Rewriter{}
}

// Prune removes every anchor whose href is in the invalid set and
// serializes the document. The serialized form is the parser's normalized
// tree, not the original bytes.
func (w *Rewriter) Prune(r io.Reader, invalid map[string]struct{}) ([]byte, int, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, 0, linkprune.Errorf(linkprune.EINVALID, "cannot parse bookmark document: %v", err)
	}

	removed := 0
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists {
			return
		}
		if _, bad := invalid[href]; bad {
			sel.Remove()
			removed++
		}
	})

	var buf bytes.Buffer
	if err := html.Render(&buf, doc.Get(0)); err != nil {
		return nil, 0, linkprune.Errorf(linkprune.EINTERNAL, "cannot serialize bookmark document: %v", err)
	}

	return buf.Bytes(), removed, nil
}
