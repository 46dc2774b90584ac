package pagemeta

import "encoding/json"

// RelLink is one <link> element grouped under a rel token. A link
// whose rel attribute carries several tokens appears once under each
// token. Hrefs are resolved against the base URL when one is given.
type RelLink struct {
	Href     string `json:"href"`
	Type     string `json:"type,omitempty"`
	Title    string `json:"title,omitempty"`
	Hreflang string `json:"hreflang,omitempty"`
	Media    string `json:"media,omitempty"`
}

// ManifestLink is the discovered <link rel="manifest"> reference. The
// engine never fetches the manifest; callers that retrieve the body
// themselves can attach the parsed result via ParseManifest.
type ManifestLink struct {
	Href     string    `json:"href"`
	Manifest *Manifest `json:"manifest,omitempty"`
}

// Manifest is a parsed Web App Manifest document.
type Manifest struct {
	Name            string         `json:"name,omitempty"`
	ShortName       string         `json:"short_name,omitempty"`
	Description     string         `json:"description,omitempty"`
	StartURL        string         `json:"start_url,omitempty"`
	Display         string         `json:"display,omitempty"`
	ThemeColor      string         `json:"theme_color,omitempty"`
	BackgroundColor string         `json:"background_color,omitempty"`
	Icons           []ManifestIcon `json:"icons,omitempty"`
}

// ManifestIcon is one icon entry in a Web App Manifest.
type ManifestIcon struct {
	Src   string `json:"src,omitempty"`
	Sizes string `json:"sizes,omitempty"`
	Type  string `json:"type,omitempty"`
}

// ParseManifest parses a Web App Manifest body fetched by the caller.
// Returns EUNPROCESSABLE when the body is not valid JSON.
func ParseManifest(body []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(body, &m); err != nil {
		return nil, Errorf(EUNPROCESSABLE, "invalid manifest JSON: %v", err)
	}
	return &m, nil
}

// OEmbedLink is the discovered oEmbed endpoint for the page. When a
// page advertises both JSON and XML endpoints the JSON one is
// preferred.
type OEmbedLink struct {
	Href  string `json:"href"`
	Type  string `json:"type,omitempty"` // "json" or "xml"
	Title string `json:"title,omitempty"`
}
