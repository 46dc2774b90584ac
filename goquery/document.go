// Package goquery implements the pagemeta extraction engine on top of
// github.com/PuerkitoBio/goquery, which provides CSS selection over
// the lenient HTML5 parser in golang.org/x/net/html. The document is
// parsed once and shared read-only by every format extractor; the
// structured-data walkers (microdata, microformats2, RDFa) traverse
// the underlying *html.Node tree directly.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
	"golang.org/x/net/html"
)

// parse builds the shared document tree for one extraction call.
// The HTML5 parser recovers from essentially any markup, so the only
// input rejected outright is a byte sequence that is not UTF-8.
func parse(rawHTML string) (*goquery.Document, error) {
	if !utf8.ValidString(rawHTML) {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "input is not valid UTF-8")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagemeta.Errorf(pagemeta.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// attr returns the value of the named attribute on n, or "".
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// hasAttr reports whether n carries the named attribute, even empty.
// Boolean attributes like itemscope are typically valueless.
func hasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

// classList returns the class tokens of n.
func classList(n *html.Node) []string {
	return strings.Fields(attr(n, "class"))
}

// nodeText returns the text content of n's subtree with whitespace
// collapsed, skipping script and style elements.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}

// innerHTML renders the children of n as an HTML fragment.
func innerHTML(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&sb, c); err != nil {
			return ""
		}
	}
	return strings.TrimSpace(sb.String())
}

// eachElement visits every element in n's subtree in document order,
// excluding n itself. Returning false from fn prunes the subtree
// below the visited element.
func eachElement(n *html.Node, fn func(*html.Node) bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if fn(c) {
			eachElement(c, fn)
		}
	}
}
