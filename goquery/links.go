package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
)

// relLinksFromDoc extracts every <link> grouped by rel token. A
// multi-token rel attribute contributes the link under each of its
// tokens. Links without an href are skipped.
func relLinksFromDoc(doc *goquery.Document, baseURL string) map[string][]pagemeta.RelLink {
	out := make(map[string][]pagemeta.RelLink)

	doc.Find("link[rel]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" {
			return
		}
		link := pagemeta.RelLink{
			Href:     pagemeta.ResolveURL(baseURL, href),
			Type:     strings.TrimSpace(sel.AttrOr("type", "")),
			Title:    strings.TrimSpace(sel.AttrOr("title", "")),
			Hreflang: strings.TrimSpace(sel.AttrOr("hreflang", "")),
			Media:    strings.TrimSpace(sel.AttrOr("media", "")),
		}
		for _, rel := range strings.Fields(strings.ToLower(sel.AttrOr("rel", ""))) {
			out[rel] = append(out[rel], link)
		}
	})

	if len(out) == 0 {
		return nil
	}
	return out
}

// manifestFromDoc discovers the Web App Manifest link. The manifest
// body itself is never fetched here; see pagemeta.ParseManifest.
func manifestFromDoc(doc *goquery.Document, baseURL string) *pagemeta.ManifestLink {
	href, ok := doc.Find(`link[rel="manifest"]`).First().Attr("href")
	if !ok || strings.TrimSpace(href) == "" {
		return nil
	}
	return &pagemeta.ManifestLink{Href: pagemeta.ResolveURL(baseURL, strings.TrimSpace(href))}
}

// oembedFromDoc discovers the page's oEmbed endpoint. JSON endpoints
// are preferred over XML when both are advertised.
func oembedFromDoc(doc *goquery.Document, baseURL string) *pagemeta.OEmbedLink {
	var jsonLink, xmlLink *pagemeta.OEmbedLink

	doc.Find(`link[rel="alternate"], link[rel="alternative"]`).Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" {
			return
		}
		link := &pagemeta.OEmbedLink{
			Href:  pagemeta.ResolveURL(baseURL, href),
			Title: strings.TrimSpace(sel.AttrOr("title", "")),
		}
		switch strings.ToLower(strings.TrimSpace(sel.AttrOr("type", ""))) {
		case "application/json+oembed":
			link.Type = "json"
			if jsonLink == nil {
				jsonLink = link
			}
		case "text/xml+oembed", "application/xml+oembed":
			link.Type = "xml"
			if xmlLink == nil {
				xmlLink = link
			}
		}
	})

	if jsonLink != nil {
		return jsonLink
	}
	return xmlLink
}
