package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
)

// twitterFromDoc extracts twitter:* card metadata. The spec calls for
// name attributes, but enough pages use property instead that both
// are read.
func twitterFromDoc(doc *goquery.Document, baseURL string) *pagemeta.Twitter {
	t := &pagemeta.Twitter{}

	doc.Find(`meta[name^="twitter:"], meta[property^="twitter:"]`).Each(func(_ int, sel *goquery.Selection) {
		key := sel.AttrOr("name", "")
		if key == "" {
			key = sel.AttrOr("property", "")
		}
		key = strings.TrimPrefix(key, "twitter:")
		content := strings.TrimSpace(sel.AttrOr("content", ""))
		if content == "" {
			return
		}

		switch key {
		case "card":
			t.Card = content
		case "site":
			t.Site = content
		case "site:id":
			t.SiteID = content
		case "creator":
			t.Creator = content
		case "creator:id":
			t.CreatorID = content
		case "title":
			t.Title = content
		case "description":
			t.Description = content
		case "image", "image:src":
			t.Image = pagemeta.ResolveURL(baseURL, content)
		case "image:alt":
			t.ImageAlt = content
		case "player":
			t.Player = pagemeta.ResolveURL(baseURL, content)
		case "player:width":
			t.PlayerWidth = content
		case "player:height":
			t.PlayerHeight = content
		case "player:stream":
			t.PlayerStream = pagemeta.ResolveURL(baseURL, content)
		}
	})

	if t.IsZero() {
		return nil
	}
	return t
}
