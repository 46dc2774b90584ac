package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagemeta/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMeta(t *testing.T) {
	t.Parallel()

	t.Run("extracts basic meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<html lang="en">
<head>
	<title>Test Page</title>
	<meta name="description" content="Test description">
	<meta name="keywords" content="test, example">
	<meta name="author" content="Jane Smith">
</head>
</html>`

		m, err := goquery.NewExtractor().ExtractMeta(html, "")

		require.NoError(t, err)
		require.NotNil(t, m)
		assert.Equal(t, "Test Page", m.Title)
		assert.Equal(t, "Test description", m.Description)
		assert.Equal(t, []string{"test", "example"}, m.Keywords)
		assert.Equal(t, "Jane Smith", m.Author)
		assert.Equal(t, "en", m.Language)
	})

	t.Run("resolves canonical against base URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><link rel="canonical" href="/page"></head></html>`

		m, err := goquery.NewExtractor().ExtractMeta(html, "https://example.com")

		require.NoError(t, err)
		require.NotNil(t, m)
		assert.Equal(t, "https://example.com/page", m.Canonical)
	})

	t.Run("extracts verification tags", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
	<meta name="google-site-verification" content="abc123">
	<meta name="facebook-domain-verification" content="fb789">
</head></html>`

		m, err := goquery.NewExtractor().ExtractMeta(html, "")

		require.NoError(t, err)
		require.NotNil(t, m)
		assert.Equal(t, "abc123", m.GoogleSiteVerification)
		assert.Equal(t, "fb789", m.FacebookDomainVerification)
	})

	t.Run("extracts charset from meta charset attribute", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta charset="UTF-8"><title>x</title></head></html>`

		m, err := goquery.NewExtractor().ExtractMeta(html, "")

		require.NoError(t, err)
		require.NotNil(t, m)
		assert.Equal(t, "UTF-8", m.Charset)
	})

	t.Run("missing description is absent, not empty", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>No Description</title></head></html>`

		m, err := goquery.NewExtractor().ExtractMeta(html, "")

		require.NoError(t, err)
		require.NotNil(t, m)
		assert.Empty(t, m.Description)
	})

	t.Run("whitespace-only content is treated as absent", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta name="description" content="   "></head></html>`

		m, err := goquery.NewExtractor().ExtractMeta(html, "")

		require.NoError(t, err)
		assert.Nil(t, m)
	})

	t.Run("no meta signal returns nil", func(t *testing.T) {
		t.Parallel()

		m, err := goquery.NewExtractor().ExtractMeta("<html><head></head><body></body></html>", "")

		require.NoError(t, err)
		assert.Nil(t, m)
	})
}
