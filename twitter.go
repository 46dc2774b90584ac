package pagemeta

// Twitter holds twitter:* card metadata with the "twitter:" prefix
// stripped. Both <meta name="twitter:..."> and the property attribute
// variant used by some sites are recognized. Last occurrence wins per
// field.
type Twitter struct {
	Card         string `json:"card,omitempty"`
	Site         string `json:"site,omitempty"`
	SiteID       string `json:"siteId,omitempty"`
	Creator      string `json:"creator,omitempty"`
	CreatorID    string `json:"creatorId,omitempty"`
	Title        string `json:"title,omitempty"`
	Description  string `json:"description,omitempty"`
	Image        string `json:"image,omitempty"`
	ImageAlt     string `json:"imageAlt,omitempty"`
	Player       string `json:"player,omitempty"`
	PlayerWidth  string `json:"playerWidth,omitempty"`
	PlayerHeight string `json:"playerHeight,omitempty"`
	PlayerStream string `json:"playerStream,omitempty"`
}

// IsZero reports whether no Twitter Card signal was found.
func (t *Twitter) IsZero() bool {
	return *t == Twitter{}
}

// FillFromOpenGraph fills missing title, description and image from
// Open Graph metadata. Twitter's own crawler falls back to og:* tags
// the same way, so pages that only publish Open Graph still render
// cards.
func (t *Twitter) FillFromOpenGraph(og *OpenGraph) {
	if og == nil {
		return
	}
	if t.Title == "" {
		t.Title = og.Title
	}
	if t.Description == "" {
		t.Description = og.Description
	}
	if t.Image == "" && len(og.Images) > 0 {
		t.Image = og.Images[0].URL
	}
}
