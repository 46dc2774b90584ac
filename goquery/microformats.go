package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
	"golang.org/x/net/html"
)

var (
	mfRootRe = regexp.MustCompile(`^h-[a-z0-9]+(-[a-z0-9]+)*$`)
	mfPropRe = regexp.MustCompile(`^(p|u|dt|e)-([a-z0-9]+(-[a-z0-9]+)*)$`)
)

// microformatsFromDoc extracts microformats2 items keyed by root type.
// Roots nested inside another root become child items (or property
// values when they also carry a property class) and are not repeated
// at the top level.
func microformatsFromDoc(doc *goquery.Document, baseURL string) map[string][]*pagemeta.MicroformatItem {
	if len(doc.Nodes) == 0 {
		return nil
	}

	out := make(map[string][]*pagemeta.MicroformatItem)
	eachElement(doc.Nodes[0], func(n *html.Node) bool {
		types := mfRootTypes(n)
		if len(types) == 0 {
			return true
		}
		item := parseMicroformatItem(n, types, baseURL)
		for _, t := range types {
			out[t] = append(out[t], item)
		}
		return false
	})

	if len(out) == 0 {
		return nil
	}
	return out
}

// mfRootTypes returns the microformat root types declared on n,
// translating legacy microformats1 class names.
func mfRootTypes(n *html.Node) []string {
	var types []string
	seen := make(map[string]bool)
	add := func(t string) {
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}
	for _, cls := range classList(n) {
		if mfRootRe.MatchString(cls) {
			add(cls)
		} else if t, ok := pagemeta.LegacyMicroformatClasses[cls]; ok {
			add(t)
		}
	}
	return types
}

// mfProperty is one parsed p-/u-/dt-/e- class token.
type mfProperty struct {
	kind string // "p", "u", "dt" or "e"
	name string
}

func mfProperties(n *html.Node) []mfProperty {
	var props []mfProperty
	for _, cls := range classList(n) {
		if m := mfPropRe.FindStringSubmatch(cls); m != nil {
			props = append(props, mfProperty{kind: m[1], name: m[2]})
		}
	}
	return props
}

// parseMicroformatItem builds the item rooted at n. lastDates tracks
// the most recent date component seen per dt property name so a
// later, time-only sibling can inherit it (the microformats2 date
// completion rule).
func parseMicroformatItem(n *html.Node, types []string, baseURL string) *pagemeta.MicroformatItem {
	item := &pagemeta.MicroformatItem{
		Types:      types,
		Properties: make(map[string][]pagemeta.MicroformatValue),
	}
	lastDates := make(map[string]string)

	var walk func(*html.Node)
	walk = func(parent *html.Node) {
		for c := parent.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}

			props := mfProperties(c)

			if childTypes := mfRootTypes(c); len(childTypes) > 0 {
				child := parseMicroformatItem(c, childTypes, baseURL)
				if len(props) == 0 {
					item.Children = append(item.Children, child)
				}
				for _, p := range props {
					item.Properties[p.name] = append(item.Properties[p.name], pagemeta.MicroformatChild(child))
				}
				continue
			}

			for _, p := range props {
				var v pagemeta.MicroformatValue
				switch p.kind {
				case "p":
					v = pagemeta.MicroformatText(mfPlainValue(c))
				case "u":
					v = pagemeta.MicroformatURL(pagemeta.ResolveURL(baseURL, mfURLValue(c)))
				case "dt":
					v = pagemeta.MicroformatText(mfDatetimeValue(c, p.name, lastDates))
				case "e":
					v = pagemeta.MicroformatText(innerHTML(c))
				}
				item.Properties[p.name] = append(item.Properties[p.name], v)
			}

			walk(c)
		}
	}
	walk(n)

	implyMicroformatProperties(n, item, baseURL)

	return item
}

// implyMicroformatProperties derives name, url and photo when the
// markup declared no explicit property of that name.
func implyMicroformatProperties(n *html.Node, item *pagemeta.MicroformatItem, baseURL string) {
	if len(item.Properties["name"]) == 0 {
		name := ""
		if n.Data == "img" || n.Data == "area" {
			name = strings.TrimSpace(attr(n, "alt"))
		}
		if name == "" {
			if img := firstChildElement(n, "img"); img != nil {
				name = strings.TrimSpace(attr(img, "alt"))
			}
		}
		if name == "" {
			name = nodeText(n)
		}
		if name != "" {
			item.Properties["name"] = []pagemeta.MicroformatValue{pagemeta.MicroformatText(name)}
		}
	}

	if len(item.Properties["url"]) == 0 {
		href := ""
		if n.Data == "a" || n.Data == "area" {
			href = strings.TrimSpace(attr(n, "href"))
		}
		if href == "" {
			if a := firstDescendantWithAttr(n, "a", "href"); a != nil {
				href = strings.TrimSpace(attr(a, "href"))
			}
		}
		if href != "" {
			item.Properties["url"] = []pagemeta.MicroformatValue{
				pagemeta.MicroformatURL(pagemeta.ResolveURL(baseURL, href)),
			}
		}
	}

	if len(item.Properties["photo"]) == 0 {
		src := ""
		if n.Data == "img" {
			src = strings.TrimSpace(attr(n, "src"))
		}
		if src == "" {
			if img := firstDescendantWithAttr(n, "img", "src"); img != nil {
				src = strings.TrimSpace(attr(img, "src"))
			}
		}
		if src == "" {
			if obj := firstDescendantWithAttr(n, "object", "data"); obj != nil {
				src = strings.TrimSpace(attr(obj, "data"))
			}
		}
		if src != "" {
			item.Properties["photo"] = []pagemeta.MicroformatValue{
				pagemeta.MicroformatURL(pagemeta.ResolveURL(baseURL, src)),
			}
		}
	}
}

// firstChildElement returns the first direct child element of n with
// the given tag.
func firstChildElement(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
	}
	return nil
}

// firstDescendantWithAttr returns the first descendant with the given
// tag carrying a non-empty attribute, without crossing into nested
// microformat roots.
func firstDescendantWithAttr(n *html.Node, tag, attrName string) *html.Node {
	var found *html.Node
	eachElement(n, func(c *html.Node) bool {
		if found != nil || len(mfRootTypes(c)) > 0 {
			return false
		}
		if c.Data == tag && strings.TrimSpace(attr(c, attrName)) != "" {
			found = c
			return false
		}
		return true
	})
	return found
}

// mfValueClass returns the value-class-pattern value of n, if any
// descendant is classed value or value-title.
func mfValueClass(n *html.Node) (string, bool) {
	var parts []string
	eachElement(n, func(c *html.Node) bool {
		for _, cls := range classList(c) {
			if cls == "value-title" {
				parts = append(parts, strings.TrimSpace(attr(c, "title")))
				return false
			}
			if cls == "value" {
				parts = append(parts, nodeText(c))
				return false
			}
		}
		return true
	})
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ""), true
}

// mfPlainValue extracts a p-* property value.
func mfPlainValue(n *html.Node) string {
	if v, ok := mfValueClass(n); ok {
		return v
	}
	switch n.Data {
	case "abbr":
		if title := strings.TrimSpace(attr(n, "title")); title != "" {
			return title
		}
	case "data", "input":
		if v := strings.TrimSpace(attr(n, "value")); v != "" {
			return v
		}
	case "img", "area":
		if alt := strings.TrimSpace(attr(n, "alt")); alt != "" {
			return alt
		}
		if src := strings.TrimSpace(attr(n, "src")); src != "" {
			return src
		}
	}
	return nodeText(n)
}

// mfURLValue extracts a u-* property value, unresolved.
func mfURLValue(n *html.Node) string {
	switch n.Data {
	case "a", "area", "link":
		if href := strings.TrimSpace(attr(n, "href")); href != "" {
			return href
		}
	case "img", "audio", "video", "source":
		if src := strings.TrimSpace(attr(n, "src")); src != "" {
			return src
		}
		if alt := strings.TrimSpace(attr(n, "alt")); alt != "" {
			return alt
		}
	case "object":
		if data := strings.TrimSpace(attr(n, "data")); data != "" {
			return data
		}
	}
	if v, ok := mfValueClass(n); ok {
		return v
	}
	return nodeText(n)
}

// mfDatetimeValue extracts a dt-* property value and applies date
// completion: a time-only value inherits the date of the previous
// dt property with the same name.
func mfDatetimeValue(n *html.Node, name string, lastDates map[string]string) string {
	raw := ""
	if v, ok := mfValueClass(n); ok {
		raw = v
	} else {
		switch n.Data {
		case "time", "ins", "del":
			raw = strings.TrimSpace(attr(n, "datetime"))
		case "abbr":
			raw = strings.TrimSpace(attr(n, "title"))
		case "data", "input":
			raw = strings.TrimSpace(attr(n, "value"))
		}
		if raw == "" {
			raw = nodeText(n)
		}
	}

	if pagemeta.IsTimeOnly(raw) {
		if date, ok := lastDates[name]; ok {
			return pagemeta.CombineDateTime(date, raw)
		}
		return raw
	}

	v := pagemeta.NormalizeDatetime(raw)
	if len(v) >= 10 && pagemeta.IsDateOnly(v[:10]) {
		lastDates[name] = v[:10]
	}
	return v
}
