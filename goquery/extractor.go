// Package goquery provides a CSS-selector-based implementation of
// skim.Extractor.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/skim"
)

// candidateSelectors are evaluated in order; the first candidate producing
// non-empty text wins. Semantically scoped content is preferred to avoid
// navigation and ad boilerplate, degrading to all paragraph text on pages
// lacking semantic markup.
var candidateSelectors = []string{
	"article p, article h1, article h2, article h3, article li",
	"main p, main h1, main h2, main h3, main li",
	"p",
}

// Ensure Extractor implements skim.Extractor at compile time.
var _ skim.Extractor = (*Extractor)(nil)

// Extractor extracts readable body text from HTML using a prioritized
// fallback chain over the document structure.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns a single text blob. The text
// content of matched nodes is concatenated with line breaks. Returns
// EUNPROCESSABLE when no candidate yields non-empty text.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", skim.Errorf(skim.EUNPROCESSABLE, "no extractable content")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", skim.Errorf(skim.EINVALID, "failed to parse HTML: %v", err)
	}

	for _, selector := range candidateSelectors {
		var parts []string
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			parts = append(parts, sel.Text())
		})

		text := strings.TrimSpace(strings.Join(parts, "\n"))
		if text != "" {
			return text, nil
		}
	}

	return "", skim.Errorf(skim.EUNPROCESSABLE, "no extractable content")
}
