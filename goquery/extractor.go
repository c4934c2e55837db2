// Package goquery implements bookmark document parsing and rewriting using
// PuerkitoBio/goquery. Bookmark exports use the loose Netscape bookmark
// format; the underlying x/net/html parser normalizes it the same way a
// browser would, and byte-for-byte markup fidelity is not a goal.
package goquery

import (
	"io"

	"github.com/PuerkitoBio/goquery"
	"github.com/khartman/linkprune"
)

// Ensure Extractor implements linkprune.Extractor at compile time.
var _ linkprune.Extractor = (*Extractor)(nil)

// Extractor pulls anchor targets out of a bookmark document.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractLinks returns every a[href] value in document order. Duplicates
// are preserved: each occurrence is validated independently downstream.
func (e *Extractor) ExtractLinks(r io.Reader) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, linkprune.Errorf(linkprune.EINVALID, "cannot parse bookmark document: %v", err)
	}

	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		if href, exists := sel.Attr("href"); exists {
			links = append(links, href)
		}
	})

	return links, nil
}
