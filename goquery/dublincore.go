package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
)

// dublinCoreFromDoc extracts Dublin Core elements from meta tags named
// with the DC., dc. or DCTERMS. prefix, case-insensitively.
func dublinCoreFromDoc(doc *goquery.Document) *pagemeta.DublinCore {
	dc := &pagemeta.DublinCore{}

	doc.Find("meta[name]").Each(func(_ int, sel *goquery.Selection) {
		element, ok := dublinCoreElement(sel.AttrOr("name", ""))
		if !ok {
			return
		}
		content := strings.TrimSpace(sel.AttrOr("content", ""))
		if content == "" {
			return
		}

		switch element {
		case "title":
			dc.Title = content
		case "creator":
			dc.Creator = append(dc.Creator, content)
		case "subject":
			dc.Subject = append(dc.Subject, content)
		case "description":
			dc.Description = content
		case "publisher":
			dc.Publisher = content
		case "contributor":
			dc.Contributor = content
		case "date":
			dc.Date = content
		case "type":
			dc.Type = content
		case "format":
			dc.Format = content
		case "identifier":
			dc.Identifier = content
		case "source":
			dc.Source = content
		case "language":
			dc.Language = content
		case "relation":
			dc.Relation = content
		case "coverage":
			dc.Coverage = content
		case "rights":
			dc.Rights = content
		}
	})

	if dc.IsZero() {
		return nil
	}
	return dc
}

// dublinCoreElement strips a recognized Dublin Core name prefix and
// returns the lowercased element name.
func dublinCoreElement(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, prefix := range []string{"dc.", "dcterms."} {
		if strings.HasPrefix(lower, prefix) {
			return lower[len(prefix):], true
		}
	}
	return "", false
}
