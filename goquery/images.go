package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
)

// maxPageImages bounds the in-body <img> collection so image-heavy
// pages produce a bounded result.
const maxPageImages = 32

// imagesFromDoc summarizes the page's imagery. The primary image
// follows the usual preview priority: og:image, twitter:image,
// link rel="image_src", then the first in-body <img>.
func imagesFromDoc(doc *goquery.Document, baseURL string) *pagemeta.Images {
	im := &pagemeta.Images{}

	doc.Find("img[src]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		src := strings.TrimSpace(sel.AttrOr("src", ""))
		if src == "" || strings.HasPrefix(src, "data:") {
			return true
		}
		im.All = append(im.All, pagemeta.PageImage{
			Src: pagemeta.ResolveURL(baseURL, src),
			Alt: strings.TrimSpace(sel.AttrOr("alt", "")),
		})
		return len(im.All) < maxPageImages
	})

	im.Primary = primaryImage(doc, baseURL, im.All)
	im.Favicon = faviconFromDoc(doc, baseURL)

	if href, ok := doc.Find(`link[rel="apple-touch-icon"]`).First().Attr("href"); ok && strings.TrimSpace(href) != "" {
		im.AppleTouchIcon = pagemeta.ResolveURL(baseURL, strings.TrimSpace(href))
	}

	if im.IsZero() {
		return nil
	}
	return im
}

func primaryImage(doc *goquery.Document, baseURL string, all []pagemeta.PageImage) string {
	if c, ok := doc.Find(`meta[property="og:image"]`).First().Attr("content"); ok && strings.TrimSpace(c) != "" {
		return pagemeta.ResolveURL(baseURL, strings.TrimSpace(c))
	}
	if c, ok := doc.Find(`meta[name="twitter:image"]`).First().Attr("content"); ok && strings.TrimSpace(c) != "" {
		return pagemeta.ResolveURL(baseURL, strings.TrimSpace(c))
	}
	if href, ok := doc.Find(`link[rel="image_src"]`).First().Attr("href"); ok && strings.TrimSpace(href) != "" {
		return pagemeta.ResolveURL(baseURL, strings.TrimSpace(href))
	}
	if len(all) > 0 {
		return all[0].Src
	}
	return ""
}
