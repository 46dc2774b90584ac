package pagemeta

import "encoding/json"

// MicrodataItem is one itemscope element with its extracted
// properties. Types preserves the order of the itemtype attribute;
// property values preserve document order. Items referenced through
// itemref can be shared between parents, so the extractor flattens
// that graph into a tree, skipping elements already visited within
// the current top-level item.
type MicrodataItem struct {
	Types      []string                    `json:"types,omitempty"`
	ID         string                      `json:"id,omitempty"`
	Properties map[string][]MicrodataValue `json:"properties,omitempty"`
}

// MicrodataValue is one microdata property value: plain text, a
// resolved URL, or a nested item. Exactly one field is set. Text and
// URL values serialize as bare JSON strings; nested items serialize
// as objects.
type MicrodataValue struct {
	Text string
	URL  string
	Item *MicrodataItem
}

// MicrodataText returns a plain-text value.
func MicrodataText(s string) MicrodataValue { return MicrodataValue{Text: s} }

// MicrodataURL returns a URL value.
func MicrodataURL(u string) MicrodataValue { return MicrodataValue{URL: u} }

// MicrodataChild returns a nested-item value.
func MicrodataChild(item *MicrodataItem) MicrodataValue { return MicrodataValue{Item: item} }

// String returns the value as a plain string; nested items return "".
func (v MicrodataValue) String() string {
	if v.URL != "" {
		return v.URL
	}
	return v.Text
}

// MarshalJSON implements json.Marshaler.
func (v MicrodataValue) MarshalJSON() ([]byte, error) {
	if v.Item != nil {
		return json.Marshal(v.Item)
	}
	return json.Marshal(v.String())
}
