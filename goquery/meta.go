package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
)

// metaFromDoc extracts standard HTML meta tags. Returns nil when the
// document carries no meta signal at all.
func metaFromDoc(doc *goquery.Document, baseURL string) *pagemeta.Meta {
	m := &pagemeta.Meta{}

	if title := strings.Join(strings.Fields(doc.Find("title").First().Text()), " "); title != "" {
		m.Title = title
	}

	doc.Find("meta[name]").Each(func(_ int, sel *goquery.Selection) {
		name, _ := sel.Attr("name")
		content := strings.TrimSpace(sel.AttrOr("content", ""))
		if content == "" {
			// Whitespace-only content is treated as absent.
			return
		}
		switch strings.ToLower(name) {
		case "description":
			m.Description = content
		case "keywords":
			if m.Keywords == nil {
				m.Keywords = splitKeywords(content)
			}
		case "author":
			m.Author = content
		case "generator":
			m.Generator = content
		case "robots":
			m.Robots = content
		case "viewport":
			m.Viewport = content
		case "theme-color":
			m.ThemeColor = content
		case "google-site-verification":
			m.GoogleSiteVerification = content
		case "facebook-domain-verification":
			m.FacebookDomainVerification = content
		}
	})

	if charset, ok := doc.Find("meta[charset]").First().Attr("charset"); ok {
		m.Charset = strings.TrimSpace(charset)
	} else if ct, ok := doc.Find(`meta[http-equiv]`).FilterFunction(func(_ int, sel *goquery.Selection) bool {
		return strings.EqualFold(sel.AttrOr("http-equiv", ""), "content-type")
	}).First().Attr("content"); ok {
		if _, after, found := strings.Cut(strings.ToLower(ct), "charset="); found {
			m.Charset = strings.TrimSpace(after)
		}
	}

	if lang, ok := doc.Find("html").First().Attr("lang"); ok {
		m.Language = strings.TrimSpace(lang)
	}

	if href, ok := doc.Find(`link[rel="canonical"]`).First().Attr("href"); ok && strings.TrimSpace(href) != "" {
		m.Canonical = pagemeta.ResolveURL(baseURL, strings.TrimSpace(href))
	}

	if favicon := faviconFromDoc(doc, baseURL); favicon != "" {
		m.Favicon = favicon
	}

	if m.IsZero() {
		return nil
	}
	return m
}

// splitKeywords splits a keywords content value on commas, dropping
// empty entries.
func splitKeywords(content string) []string {
	var out []string
	for _, kw := range strings.Split(content, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

// faviconFromDoc returns the first icon link, preferring the
// conventional rel values in order.
func faviconFromDoc(doc *goquery.Document, baseURL string) string {
	for _, rel := range []string{"icon", "shortcut icon"} {
		sel := doc.Find("link[rel]").FilterFunction(func(_ int, s *goquery.Selection) bool {
			return strings.EqualFold(strings.TrimSpace(s.AttrOr("rel", "")), rel)
		}).First()
		if href, ok := sel.Attr("href"); ok && strings.TrimSpace(href) != "" {
			return pagemeta.ResolveURL(baseURL, strings.TrimSpace(href))
		}
	}
	return ""
}
