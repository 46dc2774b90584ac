package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// jsonLDFromDoc extracts every application/ld+json script block. Each
// block parses independently; a malformed one is counted as skipped
// and never aborts the siblings. A block whose top level is an array
// is flattened into one entry per element (the JSON-LD convention for
// multiple top-level objects), while @graph wrappers pass through
// untouched — interpreting graph semantics is the caller's job.
func jsonLDFromDoc(doc *goquery.Document) (blocks []any, skipped int) {
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		raw := stripCDATA(sel.Text())
		if strings.TrimSpace(raw) == "" {
			return
		}

		dec := json.NewDecoder(strings.NewReader(raw))
		dec.UseNumber()
		var v any
		if err := dec.Decode(&v); err != nil {
			skipped++
			return
		}

		if arr, ok := v.([]any); ok {
			blocks = append(blocks, arr...)
			return
		}
		blocks = append(blocks, v)
	})
	return blocks, skipped
}

// stripCDATA removes a CDATA wrapper some generators still emit
// around script payloads.
func stripCDATA(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "<![CDATA[") && strings.HasSuffix(s, "]]>") {
		return strings.TrimSuffix(strings.TrimPrefix(s, "<![CDATA["), "]]>")
	}
	return s
}
