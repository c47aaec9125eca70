package skim

// Extractor extracts readable body text from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns a single text blob.
	// Returns EUNPROCESSABLE if the document contains no extractable text.
	Extract(html string) (string, error)
}
