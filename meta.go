package pagemeta

// Meta holds standard HTML metadata: the document title, description
// and keyword meta tags, the canonical link, and a handful of
// well-known page-level tags. Whitespace-only content values are
// treated as absent. When the same tag appears more than once the
// last occurrence wins, except Keywords which is the comma-split
// content of the first keywords tag.
type Meta struct {
	Title                      string   `json:"title,omitempty"`
	Description                string   `json:"description,omitempty"`
	Keywords                   []string `json:"keywords,omitempty"`
	Canonical                  string   `json:"canonical,omitempty"`
	Author                     string   `json:"author,omitempty"`
	Generator                  string   `json:"generator,omitempty"`
	Robots                     string   `json:"robots,omitempty"`
	Viewport                   string   `json:"viewport,omitempty"`
	Charset                    string   `json:"charset,omitempty"`
	Language                   string   `json:"language,omitempty"`
	ThemeColor                 string   `json:"themeColor,omitempty"`
	Favicon                    string   `json:"favicon,omitempty"`
	GoogleSiteVerification     string   `json:"googleSiteVerification,omitempty"`
	FacebookDomainVerification string   `json:"facebookDomainVerification,omitempty"`
}

// IsZero reports whether no meta signal was found at all.
func (m *Meta) IsZero() bool {
	return m.Title == "" && m.Description == "" && len(m.Keywords) == 0 &&
		m.Canonical == "" && m.Author == "" && m.Generator == "" &&
		m.Robots == "" && m.Viewport == "" && m.Charset == "" &&
		m.Language == "" && m.ThemeColor == "" && m.Favicon == "" &&
		m.GoogleSiteVerification == "" && m.FacebookDomainVerification == ""
}
