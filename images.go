package pagemeta

// Images summarizes the page's representative imagery for SEO and
// preview rendering. Primary is chosen by priority: og:image, then
// twitter:image, then link rel="image_src", then the first <img> with
// a src. All collects in-document <img> elements in order, capped so
// image-heavy pages stay bounded.
type Images struct {
	Primary        string      `json:"primary,omitempty"`
	Favicon        string      `json:"favicon,omitempty"`
	AppleTouchIcon string      `json:"appleTouchIcon,omitempty"`
	All            []PageImage `json:"all,omitempty"`
}

// PageImage is one <img> found in the document body.
type PageImage struct {
	Src string `json:"src"`
	Alt string `json:"alt,omitempty"`
}

// IsZero reports whether no image signal was found.
func (im *Images) IsZero() bool {
	return im.Primary == "" && im.Favicon == "" &&
		im.AppleTouchIcon == "" && len(im.All) == 0
}
