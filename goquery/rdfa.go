package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
	"golang.org/x/net/html"
)

// rdfaContext is the inherited RDFa state: the default vocabulary and
// the declared CURIE prefix table. It is threaded by value down the
// traversal; an element declaring prefix or vocab forks a child
// context, so overrides never leak back up or across siblings.
type rdfaContext struct {
	vocab    string
	prefixes map[string]string
}

// fork returns the context for n's subtree, merging any prefix
// declarations and vocab override on n.
func (ctx rdfaContext) fork(n *html.Node) rdfaContext {
	if vocab := strings.TrimSpace(attr(n, "vocab")); vocab != "" {
		ctx.vocab = vocab
	}

	decl := strings.Fields(attr(n, "prefix"))
	if len(decl) < 2 {
		return ctx
	}
	merged := make(map[string]string, len(ctx.prefixes)+len(decl)/2)
	for k, v := range ctx.prefixes {
		merged[k] = v
	}
	for i := 0; i+1 < len(decl); i += 2 {
		prefix, ok := strings.CutSuffix(decl[i], ":")
		if !ok || prefix == "" {
			continue
		}
		merged[prefix] = decl[i+1]
	}
	ctx.prefixes = merged
	return ctx
}

// resolveCURIE expands a CURIE or term against the context. Full IRIs
// pass through; an unprefixed term resolves against the default
// vocabulary; a token with an undeclared prefix is returned verbatim
// rather than dropped.
func (ctx rdfaContext) resolveCURIE(token string) string {
	if token == "" || strings.Contains(token, "://") {
		return token
	}
	if prefix, local, found := strings.Cut(token, ":"); found {
		if uri, ok := ctx.prefixes[prefix]; ok {
			return uri + local
		}
		return token
	}
	if ctx.vocab != "" {
		return ctx.vocab + token
	}
	return token
}

// resolveIRI resolves a subject or resource reference: CURIEs expand
// against the prefix table, everything else resolves as a URL
// reference against the base.
func (ctx rdfaContext) resolveIRI(token, baseURL string) string {
	if prefix, local, found := strings.Cut(token, ":"); found && !strings.Contains(token, "://") {
		if uri, ok := ctx.prefixes[prefix]; ok {
			return uri + local
		}
	}
	return pagemeta.ResolveURL(baseURL, token)
}

// rdfaFromDoc extracts RDFa items. Every typeof element starts an
// item; one that also carries property becomes a nested value of the
// enclosing item, otherwise it is reported at the top level.
func rdfaFromDoc(doc *goquery.Document, baseURL string) []*pagemeta.RDFaItem {
	if len(doc.Nodes) == 0 {
		return nil
	}
	var items []*pagemeta.RDFaItem
	walkRDFa(doc.Nodes[0], rdfaContext{}, nil, &items, baseURL)
	if len(items) == 0 {
		return nil
	}
	return items
}

func walkRDFa(n *html.Node, ctx rdfaContext, current *pagemeta.RDFaItem, items *[]*pagemeta.RDFaItem, baseURL string) {
	if n.Type == html.ElementNode {
		ctx = ctx.fork(n)

		if hasAttr(n, "typeof") {
			item := &pagemeta.RDFaItem{
				Vocab:      ctx.vocab,
				Properties: make(map[string][]pagemeta.RDFaValue),
			}
			for _, tok := range strings.Fields(attr(n, "typeof")) {
				item.TypeOf = append(item.TypeOf, ctx.resolveCURIE(tok))
			}
			if about := strings.TrimSpace(attr(n, "about")); about != "" {
				item.About = ctx.resolveIRI(about, baseURL)
			}

			names := strings.Fields(attr(n, "property"))
			switch {
			case current != nil && len(names) > 0 && hasRDFaValueAttr(n):
				// content, datatype and resource attributes outrank the
				// nested item in the value priority; the typed subject
				// still surfaces at the top level.
				val := rdfaValue(n, ctx, baseURL)
				for _, p := range names {
					name := ctx.resolveCURIE(p)
					current.Properties[name] = append(current.Properties[name], val)
				}
				*items = append(*items, item)
			case current != nil && len(names) > 0:
				for _, p := range names {
					name := ctx.resolveCURIE(p)
					current.Properties[name] = append(current.Properties[name], pagemeta.RDFaChild(item))
				}
			default:
				*items = append(*items, item)
			}

			for c := n.FirstChild; c != nil; c = c.NextSibling {
				walkRDFa(c, ctx, item, items, baseURL)
			}
			return
		}

		if current != nil && hasAttr(n, "property") {
			val := rdfaValue(n, ctx, baseURL)
			for _, p := range strings.Fields(attr(n, "property")) {
				name := ctx.resolveCURIE(p)
				current.Properties[name] = append(current.Properties[name], val)
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkRDFa(c, ctx, current, items, baseURL)
	}
}

// hasRDFaValueAttr reports whether n carries an attribute that ranks
// above a nested typeof item in the property value priority.
func hasRDFaValueAttr(n *html.Node) bool {
	return hasAttr(n, "content") ||
		strings.TrimSpace(attr(n, "datatype")) != "" ||
		strings.TrimSpace(attr(n, "resource")) != "" ||
		strings.TrimSpace(attr(n, "href")) != "" ||
		strings.TrimSpace(attr(n, "src")) != ""
}

// rdfaValue extracts a property value by priority: content attribute,
// datatype-typed literal, resource/href/src IRI, then element text.
func rdfaValue(n *html.Node, ctx rdfaContext, baseURL string) pagemeta.RDFaValue {
	datatype := strings.TrimSpace(attr(n, "datatype"))

	if hasAttr(n, "content") {
		content := attr(n, "content")
		if datatype != "" {
			return pagemeta.RDFaTypedLiteral(content, ctx.resolveCURIE(datatype))
		}
		return pagemeta.RDFaLiteral(content)
	}
	if datatype != "" {
		return pagemeta.RDFaTypedLiteral(nodeText(n), ctx.resolveCURIE(datatype))
	}
	if res := strings.TrimSpace(attr(n, "resource")); res != "" {
		return pagemeta.RDFaResource(ctx.resolveIRI(res, baseURL))
	}
	if href := strings.TrimSpace(attr(n, "href")); href != "" {
		return pagemeta.RDFaResource(pagemeta.ResolveURL(baseURL, href))
	}
	if src := strings.TrimSpace(attr(n, "src")); src != "" {
		return pagemeta.RDFaResource(pagemeta.ResolveURL(baseURL, src))
	}
	return pagemeta.RDFaLiteral(nodeText(n))
}
