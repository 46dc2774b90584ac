package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagemeta/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractOpenGraph(t *testing.T) {
	t.Parallel()

	t.Run("extracts basic properties with prefix stripped", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
	<meta property="og:title" content="Article Title">
	<meta property="og:description" content="Article description">
	<meta property="og:url" content="https://example.com/article">
	<meta property="og:type" content="article">
	<meta property="og:site_name" content="Example Site">
	<meta property="og:locale" content="en_US">
</head></html>`

		og, err := goquery.NewExtractor().ExtractOpenGraph(html, "")

		require.NoError(t, err)
		require.NotNil(t, og)
		assert.Equal(t, "Article Title", og.Title)
		assert.Equal(t, "Article description", og.Description)
		assert.Equal(t, "https://example.com/article", og.URL)
		assert.Equal(t, "article", og.Type)
		assert.Equal(t, "Example Site", og.SiteName)
		assert.Equal(t, "en_US", og.Locale)
	})

	t.Run("attaches image sub-properties to the preceding image", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
	<meta property="og:image" content="https://example.com/a.jpg">
	<meta property="og:image:width" content="1200">
	<meta property="og:image:height" content="630">
	<meta property="og:image" content="https://example.com/b.jpg">
	<meta property="og:image:alt" content="second image">
</head></html>`

		og, err := goquery.NewExtractor().ExtractOpenGraph(html, "")

		require.NoError(t, err)
		require.NotNil(t, og)
		require.Len(t, og.Images, 2)
		assert.Equal(t, "https://example.com/a.jpg", og.Images[0].URL)
		assert.Equal(t, "1200", og.Images[0].Width)
		assert.Equal(t, "630", og.Images[0].Height)
		assert.Equal(t, "https://example.com/b.jpg", og.Images[1].URL)
		assert.Equal(t, "second image", og.Images[1].Alt)
	})

	t.Run("sub-property before any image is ignored", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="og:image:width" content="1200"></head></html>`

		og, err := goquery.NewExtractor().ExtractOpenGraph(html, "")

		require.NoError(t, err)
		assert.Nil(t, og)
	})

	t.Run("resolves relative image URLs against base", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="og:image" content="/img/cover.png"></head></html>`

		og, err := goquery.NewExtractor().ExtractOpenGraph(html, "https://example.com")

		require.NoError(t, err)
		require.NotNil(t, og)
		require.Len(t, og.Images, 1)
		assert.Equal(t, "https://example.com/img/cover.png", og.Images[0].URL)
	})

	t.Run("no og tags returns nil", func(t *testing.T) {
		t.Parallel()

		og, err := goquery.NewExtractor().ExtractOpenGraph("<html><head><title>x</title></head></html>", "")

		require.NoError(t, err)
		assert.Nil(t, og)
	})
}
