package pagemeta

import "encoding/json"

// RDFaItem is one typeof-scoped RDFa subject with its accumulated
// properties. TypeOf and property names are CURIE-expanded against
// the prefix table and default vocabulary in scope at the element; a
// token with an undeclared prefix is passed through unexpanded rather
// than dropped.
type RDFaItem struct {
	TypeOf     []string               `json:"typeOf,omitempty"`
	About      string                 `json:"about,omitempty"`
	Vocab      string                 `json:"vocab,omitempty"`
	Properties map[string][]RDFaValue `json:"properties,omitempty"`
}

// RDFaValue is one RDFa property value. Exactly one form is set:
//
//   - a plain literal (Literal set, Datatype empty), serialized as a
//     bare JSON string;
//   - a typed literal (Literal and Datatype set), serialized as
//     {"@value": ..., "@type": ...};
//   - a resource IRI (Resource set), serialized as {"@id": ...};
//   - a nested item (Item set), serialized as the item object.
type RDFaValue struct {
	Literal  string
	Datatype string
	Resource string
	Item     *RDFaItem
}

// RDFaLiteral returns a plain literal value.
func RDFaLiteral(s string) RDFaValue { return RDFaValue{Literal: s} }

// RDFaTypedLiteral returns a typed literal value.
func RDFaTypedLiteral(value, datatype string) RDFaValue {
	return RDFaValue{Literal: value, Datatype: datatype}
}

// RDFaResource returns a resource IRI value.
func RDFaResource(iri string) RDFaValue { return RDFaValue{Resource: iri} }

// RDFaChild returns a nested-item value.
func RDFaChild(item *RDFaItem) RDFaValue { return RDFaValue{Item: item} }

// String returns the value as a plain string; nested items return "".
func (v RDFaValue) String() string {
	if v.Resource != "" {
		return v.Resource
	}
	return v.Literal
}

// MarshalJSON implements json.Marshaler.
func (v RDFaValue) MarshalJSON() ([]byte, error) {
	switch {
	case v.Item != nil:
		return json.Marshal(v.Item)
	case v.Resource != "":
		return json.Marshal(map[string]string{"@id": v.Resource})
	case v.Datatype != "":
		return json.Marshal(map[string]string{"@value": v.Literal, "@type": v.Datatype})
	default:
		return json.Marshal(v.Literal)
	}
}
