package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
	"golang.org/x/net/html"
)

// microdataFromDoc extracts top-level microdata items. An itemscope
// element that also carries itemprop is normally a property of some
// other item; one that no item ever claims is promoted to the top
// level instead of being dropped.
//
// itemref lets an item claim properties from elements anywhere in the
// document, which turns the property graph into a DAG — or a cycle,
// on malformed input. Every traversal therefore carries a visited set
// keyed on node identity and silently skips anything it has already
// consumed, so self-referential documents terminate with a finite
// result.
func microdataFromDoc(doc *goquery.Document, baseURL string) []*pagemeta.MicrodataItem {
	if len(doc.Nodes) == 0 {
		return nil
	}

	// itemref targets are looked up by id across the whole document.
	ids := make(map[string]*html.Node)
	eachElement(doc.Nodes[0], func(n *html.Node) bool {
		if id := attr(n, "id"); id != "" {
			if _, ok := ids[id]; !ok {
				ids[id] = n
			}
		}
		return true
	})

	var tops, scoped []*html.Node
	doc.Find("[itemscope]").Each(func(_ int, sel *goquery.Selection) {
		n := sel.Get(0)
		if hasAttr(n, "itemprop") {
			scoped = append(scoped, n)
			return
		}
		tops = append(tops, n)
	})

	claimed := make(map[*html.Node]bool)
	var items []*pagemeta.MicrodataItem
	for _, n := range tops {
		visited := make(map[*html.Node]bool)
		if item := parseMicrodataItem(n, baseURL, ids, visited, claimed); item != nil {
			items = append(items, item)
		}
	}

	// A property-scoped item no other item consumed (not nested in one,
	// not itemref-reachable from one) still surfaces at the top level
	// rather than vanishing.
	for _, n := range scoped {
		if claimed[n] {
			continue
		}
		visited := make(map[*html.Node]bool)
		if item := parseMicrodataItem(n, baseURL, ids, visited, claimed); item != nil {
			items = append(items, item)
		}
	}
	return items
}

// parseMicrodataItem builds the item rooted at n, gathering
// properties from its subtree and from every element its itemref
// attribute names, in listed order. claimed records every scoped
// element some item consumed, shared across the whole extraction.
func parseMicrodataItem(n *html.Node, baseURL string, ids map[string]*html.Node, visited, claimed map[*html.Node]bool) *pagemeta.MicrodataItem {
	if visited[n] {
		return nil
	}
	visited[n] = true

	item := &pagemeta.MicrodataItem{
		ID:         strings.TrimSpace(attr(n, "itemid")),
		Properties: make(map[string][]pagemeta.MicrodataValue),
	}
	for _, t := range strings.Fields(attr(n, "itemtype")) {
		item.Types = append(item.Types, pagemeta.ResolveURL(baseURL, t))
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			collectMicrodataProps(c, item, baseURL, ids, visited, claimed)
		}
	}

	for _, id := range strings.Fields(attr(n, "itemref")) {
		if ref, ok := ids[id]; ok {
			collectMicrodataProps(ref, item, baseURL, ids, visited, claimed)
		}
	}

	return item
}

// collectMicrodataProps processes one candidate property source
// element and, unless it opens a nested itemscope, its subtree.
func collectMicrodataProps(n *html.Node, item *pagemeta.MicrodataItem, baseURL string, ids map[string]*html.Node, visited, claimed map[*html.Node]bool) {
	if visited[n] {
		return
	}

	names := strings.Fields(attr(n, "itemprop"))

	if hasAttr(n, "itemscope") {
		claimed[n] = true
		// A nested item contributes itself as the value; its subtree
		// belongs to it, not to the enclosing item.
		if len(names) == 0 {
			visited[n] = true
			return
		}
		child := parseMicrodataItem(n, baseURL, ids, visited, claimed)
		if child == nil {
			return
		}
		for _, name := range names {
			item.Properties[name] = append(item.Properties[name], pagemeta.MicrodataChild(child))
		}
		return
	}

	visited[n] = true

	if len(names) > 0 {
		val := microdataValue(n, baseURL)
		// A multi-named itemprop contributes the same value under
		// each name.
		for _, name := range names {
			item.Properties[name] = append(item.Properties[name], val)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			collectMicrodataProps(c, item, baseURL, ids, visited, claimed)
		}
	}
}

// microdataValue extracts a property value from a non-itemscope
// element using the HTML microdata tag table.
func microdataValue(n *html.Node, baseURL string) pagemeta.MicrodataValue {
	switch n.Data {
	case "meta":
		return pagemeta.MicrodataText(strings.TrimSpace(attr(n, "content")))
	case "audio", "embed", "iframe", "img", "source", "track", "video":
		return pagemeta.MicrodataURL(pagemeta.ResolveURL(baseURL, strings.TrimSpace(attr(n, "src"))))
	case "a", "area", "link":
		return pagemeta.MicrodataURL(pagemeta.ResolveURL(baseURL, strings.TrimSpace(attr(n, "href"))))
	case "object":
		return pagemeta.MicrodataURL(pagemeta.ResolveURL(baseURL, strings.TrimSpace(attr(n, "data"))))
	case "data", "meter":
		return pagemeta.MicrodataText(strings.TrimSpace(attr(n, "value")))
	case "time":
		if dt := strings.TrimSpace(attr(n, "datetime")); dt != "" {
			return pagemeta.MicrodataText(dt)
		}
		return pagemeta.MicrodataText(nodeText(n))
	default:
		return pagemeta.MicrodataText(nodeText(n))
	}
}
