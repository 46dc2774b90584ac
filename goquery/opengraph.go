package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagemeta"
)

// openGraphFromDoc extracts og:* metadata in document order. A bare
// og:image/og:video/og:audio tag opens a new structure; the
// sub-property tags that follow (og:image:width and friends) attach
// to the most recently opened one, per the Open Graph protocol.
func openGraphFromDoc(doc *goquery.Document, baseURL string) *pagemeta.OpenGraph {
	og := &pagemeta.OpenGraph{}

	doc.Find(`meta[property^="og:"]`).Each(func(_ int, sel *goquery.Selection) {
		prop := strings.TrimPrefix(sel.AttrOr("property", ""), "og:")
		content := strings.TrimSpace(sel.AttrOr("content", ""))
		if prop == "" || content == "" {
			return
		}

		switch prop {
		case "title":
			og.Title = content
		case "description":
			og.Description = content
		case "url":
			og.URL = pagemeta.ResolveURL(baseURL, content)
		case "type":
			og.Type = content
		case "site_name":
			og.SiteName = content
		case "locale":
			og.Locale = content
		case "determiner":
			og.Determiner = content

		case "image", "image:url":
			og.Images = append(og.Images, &pagemeta.OGImage{URL: pagemeta.ResolveURL(baseURL, content)})
		case "image:secure_url":
			if img := lastImage(og); img != nil {
				img.SecureURL = pagemeta.ResolveURL(baseURL, content)
			}
		case "image:type":
			if img := lastImage(og); img != nil {
				img.Type = content
			}
		case "image:width":
			if img := lastImage(og); img != nil {
				img.Width = content
			}
		case "image:height":
			if img := lastImage(og); img != nil {
				img.Height = content
			}
		case "image:alt":
			if img := lastImage(og); img != nil {
				img.Alt = content
			}

		case "video", "video:url":
			og.Videos = append(og.Videos, &pagemeta.OGVideo{URL: pagemeta.ResolveURL(baseURL, content)})
		case "video:secure_url":
			if v := lastVideo(og); v != nil {
				v.SecureURL = pagemeta.ResolveURL(baseURL, content)
			}
		case "video:type":
			if v := lastVideo(og); v != nil {
				v.Type = content
			}
		case "video:width":
			if v := lastVideo(og); v != nil {
				v.Width = content
			}
		case "video:height":
			if v := lastVideo(og); v != nil {
				v.Height = content
			}

		case "audio", "audio:url":
			og.Audio = append(og.Audio, &pagemeta.OGAudio{URL: pagemeta.ResolveURL(baseURL, content)})
		case "audio:secure_url":
			if a := lastAudio(og); a != nil {
				a.SecureURL = pagemeta.ResolveURL(baseURL, content)
			}
		case "audio:type":
			if a := lastAudio(og); a != nil {
				a.Type = content
			}
		}
	})

	if og.IsZero() {
		return nil
	}
	return og
}

func lastImage(og *pagemeta.OpenGraph) *pagemeta.OGImage {
	if len(og.Images) == 0 {
		return nil
	}
	return og.Images[len(og.Images)-1]
}

func lastVideo(og *pagemeta.OpenGraph) *pagemeta.OGVideo {
	if len(og.Videos) == 0 {
		return nil
	}
	return og.Videos[len(og.Videos)-1]
}

func lastAudio(og *pagemeta.OpenGraph) *pagemeta.OGAudio {
	if len(og.Audio) == 0 {
		return nil
	}
	return og.Audio[len(og.Audio)-1]
}
