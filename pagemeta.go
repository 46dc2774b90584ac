// Package pagemeta extracts structured metadata from HTML documents:
// standard meta tags, Open Graph, Twitter Cards, JSON-LD, microdata,
// microformats2, RDFa, Dublin Core, Web App Manifest and oEmbed
// discovery, and rel-* link relationships.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// http/). The extraction engine is pure: it performs no network I/O
// and never mutates the parsed document, so all extractors are safe
// for concurrent use.
package pagemeta

// Extractor extracts metadata from an HTML document.
type Extractor interface {
	// ExtractAll parses html once and runs every format extractor
	// against the same document tree. A section is present in the
	// result only when at least one relevant signal was found; a
	// format that finds nothing is nil, never an empty placeholder.
	// baseURL, when non-empty and absolute, is used to resolve
	// relative URLs found in the document.
	//
	// Returns EINVALID only when the input is entirely unusable
	// (not valid UTF-8). All other failures degrade to absent
	// sections.
	ExtractAll(html string, baseURL string) (*ExtractionResult, error)
}
