package pagemeta

// DublinCore holds the fifteen Dublin Core metadata elements read from
// <meta name="DC.*"> tags. The DC., dc. and DCTERMS. name prefixes are
// all recognized, case-insensitively. Creator and Subject accumulate
// in document order since multiple authors and topics are common;
// every other element follows last-wins semantics.
type DublinCore struct {
	Title       string   `json:"title,omitempty"`
	Creator     []string `json:"creator,omitempty"`
	Subject     []string `json:"subject,omitempty"`
	Description string   `json:"description,omitempty"`
	Publisher   string   `json:"publisher,omitempty"`
	Contributor string   `json:"contributor,omitempty"`
	Date        string   `json:"date,omitempty"`
	Type        string   `json:"type,omitempty"`
	Format      string   `json:"format,omitempty"`
	Identifier  string   `json:"identifier,omitempty"`
	Source      string   `json:"source,omitempty"`
	Language    string   `json:"language,omitempty"`
	Relation    string   `json:"relation,omitempty"`
	Coverage    string   `json:"coverage,omitempty"`
	Rights      string   `json:"rights,omitempty"`
}

// IsZero reports whether no Dublin Core signal was found.
func (dc *DublinCore) IsZero() bool {
	return dc.Title == "" && len(dc.Creator) == 0 && len(dc.Subject) == 0 &&
		dc.Description == "" && dc.Publisher == "" && dc.Contributor == "" &&
		dc.Date == "" && dc.Type == "" && dc.Format == "" &&
		dc.Identifier == "" && dc.Source == "" && dc.Language == "" &&
		dc.Relation == "" && dc.Coverage == "" && dc.Rights == ""
}
