package main

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pagemeta"
)

// FetchResult is the per-URL output envelope of the fetch command.
// SourceHash fingerprints the fetched HTML so callers can detect
// content changes between runs without storing the body.
type FetchResult struct {
	URL        string                     `json:"url"`
	SourceHash string                     `json:"sourceHash,omitempty"`
	Error      string                     `json:"error,omitempty"`
	Result     *pagemeta.ExtractionResult `json:"result,omitempty"`
}

// Run executes the fetch command: retrieve each URL (rate limited),
// extract all formats, and print one JSON envelope per URL.
func (c *FetchCmd) Run(deps *Dependencies) error {
	fetcher := deps.NewFetcher(c.Rate)

	for _, url := range c.URLs {
		out := FetchResult{URL: url}

		html, err := fetcher.Fetch(deps.Ctx, url)
		if err != nil {
			out.Error = err.Error()
			if werr := writeJSON(deps.Stdout, out, c.Pretty); werr != nil {
				return werr
			}
			continue
		}

		out.SourceHash = fmt.Sprintf("%016x", xxhash.Sum64String(html))

		res, err := deps.Extractor.ExtractAll(html, url)
		if err != nil {
			out.Error = err.Error()
		} else {
			out.Result = res
		}

		if err := writeJSON(deps.Stdout, out, c.Pretty); err != nil {
			return err
		}
	}

	return nil
}
