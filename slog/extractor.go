// Package slog provides log/slog-based logging decorators for
// pagemeta interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagemeta"
)

// Ensure LoggingExtractor implements pagemeta.Extractor.
var _ pagemeta.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging: call
// duration, input size, and which sections were found.
type LoggingExtractor struct {
	next   pagemeta.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagemeta.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractAll delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) ExtractAll(html string, baseURL string) (*pagemeta.ExtractionResult, error) {
	begin := time.Now()
	res, err := e.next.ExtractAll(html, baseURL)
	if err != nil {
		e.logger.Error("extraction failed",
			"error", err,
			"code", pagemeta.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}

	e.logger.Info("extraction complete",
		"htmlBytes", len(html),
		"sections", sectionNames(res),
		"duration", time.Since(begin),
	)
	return res, nil
}

func sectionNames(res *pagemeta.ExtractionResult) []string {
	var names []string
	add := func(name string, present bool) {
		if present {
			names = append(names, name)
		}
	}
	add("meta", res.Meta != nil)
	add("openGraph", res.OpenGraph != nil)
	add("twitter", res.Twitter != nil)
	add("jsonLd", len(res.JSONLD) > 0)
	add("microdata", len(res.Microdata) > 0)
	add("microformats", len(res.Microformats) > 0)
	add("rdfa", len(res.RDFa) > 0)
	add("dublinCore", res.DublinCore != nil)
	add("manifest", res.Manifest != nil)
	add("oembed", res.OEmbed != nil)
	add("relLinks", len(res.RelLinks) > 0)
	add("images", res.Images != nil)
	return names
}
