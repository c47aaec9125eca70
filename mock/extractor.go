package mock

import "github.com/fwojciec/skim"

var _ skim.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of skim.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
