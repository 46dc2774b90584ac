package pagemeta

// OpenGraph holds og:* metadata with the "og:" prefix stripped from
// every key. Scalar fields follow last-wins semantics; images, videos
// and audio accumulate in document order, with structured
// sub-properties (og:image:width etc.) attached to the most recently
// opened root tag, per the Open Graph protocol.
type OpenGraph struct {
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	URL         string     `json:"url,omitempty"`
	Type        string     `json:"type,omitempty"`
	SiteName    string     `json:"siteName,omitempty"`
	Locale      string     `json:"locale,omitempty"`
	Determiner  string     `json:"determiner,omitempty"`
	Images      []*OGImage `json:"images,omitempty"`
	Videos      []*OGVideo `json:"videos,omitempty"`
	Audio       []*OGAudio `json:"audio,omitempty"`
}

// OGImage is one og:image structure.
type OGImage struct {
	URL       string `json:"url,omitempty"`
	SecureURL string `json:"secureUrl,omitempty"`
	Type      string `json:"type,omitempty"`
	Width     string `json:"width,omitempty"`
	Height    string `json:"height,omitempty"`
	Alt       string `json:"alt,omitempty"`
}

// OGVideo is one og:video structure.
type OGVideo struct {
	URL       string `json:"url,omitempty"`
	SecureURL string `json:"secureUrl,omitempty"`
	Type      string `json:"type,omitempty"`
	Width     string `json:"width,omitempty"`
	Height    string `json:"height,omitempty"`
}

// OGAudio is one og:audio structure.
type OGAudio struct {
	URL       string `json:"url,omitempty"`
	SecureURL string `json:"secureUrl,omitempty"`
	Type      string `json:"type,omitempty"`
}

// IsZero reports whether no Open Graph signal was found.
func (og *OpenGraph) IsZero() bool {
	return og.Title == "" && og.Description == "" && og.URL == "" &&
		og.Type == "" && og.SiteName == "" && og.Locale == "" &&
		og.Determiner == "" && len(og.Images) == 0 &&
		len(og.Videos) == 0 && len(og.Audio) == 0
}
