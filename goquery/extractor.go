package goquery

import (
	"github.com/fwojciec/pagemeta"
	"golang.org/x/sync/errgroup"
)

// Ensure Extractor implements pagemeta.Extractor at compile time.
var _ pagemeta.Extractor = (*Extractor)(nil)

// Extractor extracts every supported metadata format from HTML. The
// zero value is ready to use; the type is stateless and safe for
// concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractAll parses rawHTML once and runs all format extractors
// against the shared document tree. The extractors are pure readers,
// so they fan out concurrently; each one owns exactly one slot of the
// result. Per-format problems (a malformed JSON-LD block, an
// unresolvable URL) degrade to absence inside the extractor and never
// abort the call — only input that cannot be parsed at all returns an
// error.
func (e *Extractor) ExtractAll(rawHTML string, baseURL string) (*pagemeta.ExtractionResult, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	res := &pagemeta.ExtractionResult{}
	var g errgroup.Group

	g.Go(func() error { res.Meta = metaFromDoc(doc, baseURL); return nil })
	g.Go(func() error { res.OpenGraph = openGraphFromDoc(doc, baseURL); return nil })
	g.Go(func() error { res.Twitter = twitterFromDoc(doc, baseURL); return nil })
	g.Go(func() error { res.JSONLD, _ = jsonLDFromDoc(doc); return nil })
	g.Go(func() error { res.Microdata = microdataFromDoc(doc, baseURL); return nil })
	g.Go(func() error { res.Microformats = microformatsFromDoc(doc, baseURL); return nil })
	g.Go(func() error { res.RDFa = rdfaFromDoc(doc, baseURL); return nil })
	g.Go(func() error { res.DublinCore = dublinCoreFromDoc(doc); return nil })
	g.Go(func() error { res.Manifest = manifestFromDoc(doc, baseURL); return nil })
	g.Go(func() error { res.OEmbed = oembedFromDoc(doc, baseURL); return nil })
	g.Go(func() error { res.RelLinks = relLinksFromDoc(doc, baseURL); return nil })
	g.Go(func() error { res.Images = imagesFromDoc(doc, baseURL); return nil })

	// The workers never return errors; Wait is just the join point.
	_ = g.Wait()

	return res, nil
}

// ExtractMeta extracts standard HTML meta tags.
func (e *Extractor) ExtractMeta(rawHTML string, baseURL string) (*pagemeta.Meta, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}
	return metaFromDoc(doc, baseURL), nil
}

// ExtractOpenGraph extracts Open Graph metadata.
func (e *Extractor) ExtractOpenGraph(rawHTML string, baseURL string) (*pagemeta.OpenGraph, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}
	return openGraphFromDoc(doc, baseURL), nil
}

// ExtractTwitter extracts Twitter Card metadata.
func (e *Extractor) ExtractTwitter(rawHTML string, baseURL string) (*pagemeta.Twitter, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}
	return twitterFromDoc(doc, baseURL), nil
}

// ExtractTwitterWithFallback extracts Twitter Card metadata, filling
// missing title, description and image from Open Graph tags the way
// Twitter's own crawler does.
func (e *Extractor) ExtractTwitterWithFallback(rawHTML string, baseURL string) (*pagemeta.Twitter, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}
	t := twitterFromDoc(doc, baseURL)
	og := openGraphFromDoc(doc, baseURL)
	if t == nil {
		if og == nil {
			return nil, nil
		}
		t = &pagemeta.Twitter{}
	}
	t.FillFromOpenGraph(og)
	if t.IsZero() {
		return nil, nil
	}
	return t, nil
}

// ExtractJSONLD extracts every application/ld+json script block.
// Malformed blocks are skipped; top-level arrays are flattened into
// individual blocks.
func (e *Extractor) ExtractJSONLD(rawHTML string) ([]any, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}
	blocks, _ := jsonLDFromDoc(doc)
	return blocks, nil
}

// ExtractMicrodata extracts top-level microdata items.
func (e *Extractor) ExtractMicrodata(rawHTML string, baseURL string) ([]*pagemeta.MicrodataItem, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}
	return microdataFromDoc(doc, baseURL), nil
}

// ExtractMicroformats extracts all microformats2 items keyed by root
// type (e.g. "h-card").
func (e *Extractor) ExtractMicroformats(rawHTML string, baseURL string) (map[string][]*pagemeta.MicroformatItem, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}
	return microformatsFromDoc(doc, baseURL), nil
}

// ExtractMicroformatsOfType extracts only microformat items of the
// given root type (e.g. "h-card", "h-entry").
func (e *Extractor) ExtractMicroformatsOfType(rawHTML string, baseURL string, rootType string) ([]*pagemeta.MicroformatItem, error) {
	all, err := e.ExtractMicroformats(rawHTML, baseURL)
	if err != nil {
		return nil, err
	}
	return all[rootType], nil
}

// ExtractRDFa extracts RDFa items.
func (e *Extractor) ExtractRDFa(rawHTML string, baseURL string) ([]*pagemeta.RDFaItem, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}
	return rdfaFromDoc(doc, baseURL), nil
}

// ExtractDublinCore extracts Dublin Core metadata.
func (e *Extractor) ExtractDublinCore(rawHTML string) (*pagemeta.DublinCore, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}
	return dublinCoreFromDoc(doc), nil
}

// ExtractManifest discovers the Web App Manifest link.
func (e *Extractor) ExtractManifest(rawHTML string, baseURL string) (*pagemeta.ManifestLink, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}
	return manifestFromDoc(doc, baseURL), nil
}

// ExtractOEmbed discovers the oEmbed endpoint link.
func (e *Extractor) ExtractOEmbed(rawHTML string, baseURL string) (*pagemeta.OEmbedLink, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}
	return oembedFromDoc(doc, baseURL), nil
}

// ExtractRelLinks extracts link elements grouped by rel token.
func (e *Extractor) ExtractRelLinks(rawHTML string, baseURL string) (map[string][]pagemeta.RelLink, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}
	return relLinksFromDoc(doc, baseURL), nil
}

// ExtractImages extracts the page image summary.
func (e *Extractor) ExtractImages(rawHTML string, baseURL string) (*pagemeta.Images, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}
	return imagesFromDoc(doc, baseURL), nil
}
