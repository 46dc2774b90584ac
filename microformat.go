package pagemeta

import "encoding/json"

// MicroformatItem is one microformats2 root (h-card, h-entry, ...)
// with its parsed properties. Property names carry no p-/u-/dt-/e-
// prefix. Children holds nested roots that are not themselves marked
// as a property of this item (an h-entry inside an h-feed, for
// example).
type MicroformatItem struct {
	Types      []string                      `json:"types"`
	Properties map[string][]MicroformatValue `json:"properties"`
	Children   []*MicroformatItem            `json:"children,omitempty"`
}

// Property returns the first value recorded under name as a plain
// string, or "" when the property is absent.
func (item *MicroformatItem) Property(name string) string {
	vals := item.Properties[name]
	if len(vals) == 0 {
		return ""
	}
	return vals[0].String()
}

// MicroformatValue is one property value: plain text, a resolved URL,
// or a nested item. Exactly one field is set. Text and URL values
// serialize as bare JSON strings; nested items serialize as objects.
type MicroformatValue struct {
	Text string
	URL  string
	Item *MicroformatItem
}

// MicroformatText returns a plain-text value.
func MicroformatText(s string) MicroformatValue { return MicroformatValue{Text: s} }

// MicroformatURL returns a URL value.
func MicroformatURL(u string) MicroformatValue { return MicroformatValue{URL: u} }

// MicroformatChild returns a nested-item value.
func MicroformatChild(item *MicroformatItem) MicroformatValue {
	return MicroformatValue{Item: item}
}

// String returns the value as a plain string; nested items return "".
func (v MicroformatValue) String() string {
	if v.URL != "" {
		return v.URL
	}
	return v.Text
}

// MarshalJSON implements json.Marshaler.
func (v MicroformatValue) MarshalJSON() ([]byte, error) {
	if v.Item != nil {
		return json.Marshal(v.Item)
	}
	return json.Marshal(v.String())
}

// LegacyMicroformatClasses maps microformats1 root class names to
// their microformats2 equivalents. Pages still marked up with the old
// vocabulary are parsed as if they used the new one.
var LegacyMicroformatClasses = map[string]string{
	"vcard":    "h-card",
	"hentry":   "h-entry",
	"vevent":   "h-event",
	"hreview":  "h-review",
	"hrecipe":  "h-recipe",
	"hproduct": "h-product",
	"adr":      "h-adr",
	"geo":      "h-geo",
}
