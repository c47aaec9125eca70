// Package readability provides a heuristic implementation of skim.Extractor
// built on go-readability, for pages where the selector chain picks up too
// much boilerplate.
package readability

import (
	"strings"

	"github.com/fwojciec/skim"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements skim.Extractor at compile time.
var _ skim.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract readable body text from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as text.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", skim.Errorf(skim.EUNPROCESSABLE, "no extractable content")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return "", skim.Errorf(skim.EUNPROCESSABLE, "readability extraction failed: %v", err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return "", skim.Errorf(skim.EUNPROCESSABLE, "no extractable content")
	}

	return text, nil
}
