package pagemeta

// ExtractionResult aggregates every metadata format extracted from a
// single parse of one HTML document. Each slot is nil (and omitted
// from JSON) when the document carried no signal for that format;
// absence means "not found", never "failed". The JSON field names are
// the wire contract shared by every consumer of the library.
type ExtractionResult struct {
	Meta         *Meta                          `json:"meta,omitempty"`
	OpenGraph    *OpenGraph                     `json:"openGraph,omitempty"`
	Twitter      *Twitter                       `json:"twitter,omitempty"`
	JSONLD       []any                          `json:"jsonLd,omitempty"`
	Microdata    []*MicrodataItem               `json:"microdata,omitempty"`
	Microformats map[string][]*MicroformatItem  `json:"microformats,omitempty"`
	RDFa         []*RDFaItem                    `json:"rdfa,omitempty"`
	DublinCore   *DublinCore                    `json:"dublinCore,omitempty"`
	Manifest     *ManifestLink                  `json:"manifest,omitempty"`
	OEmbed       *OEmbedLink                    `json:"oembed,omitempty"`
	RelLinks     map[string][]RelLink           `json:"relLinks,omitempty"`
	Images       *Images                        `json:"images,omitempty"`
}
