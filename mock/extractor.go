package mock

import (
	"context"

	"github.com/fwojciec/pagemeta"
)

var _ pagemeta.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagemeta.Extractor.
type Extractor struct {
	ExtractAllFn func(html string, baseURL string) (*pagemeta.ExtractionResult, error)
}

func (e *Extractor) ExtractAll(html string, baseURL string) (*pagemeta.ExtractionResult, error) {
	return e.ExtractAllFn(html, baseURL)
}

var _ pagemeta.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of pagemeta.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}
