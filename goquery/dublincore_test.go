package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagemeta/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDublinCore(t *testing.T) {
	t.Parallel()

	t.Run("extracts DC elements", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
	<meta name="DC.title" content="Resource Title">
	<meta name="DC.creator" content="Jane Smith">
	<meta name="DC.date" content="2024-01-15">
	<meta name="DC.language" content="en">
	<meta name="DC.rights" content="CC BY 4.0">
</head></html>`

		dc, err := goquery.NewExtractor().ExtractDublinCore(html)

		require.NoError(t, err)
		require.NotNil(t, dc)
		assert.Equal(t, "Resource Title", dc.Title)
		assert.Equal(t, []string{"Jane Smith"}, dc.Creator)
		assert.Equal(t, "2024-01-15", dc.Date)
		assert.Equal(t, "en", dc.Language)
		assert.Equal(t, "CC BY 4.0", dc.Rights)
	})

	t.Run("prefix matching is case-insensitive and accepts dcterms", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
	<meta name="dc.title" content="Lowercase">
	<meta name="DCTERMS.publisher" content="Example Press">
</head></html>`

		dc, err := goquery.NewExtractor().ExtractDublinCore(html)

		require.NoError(t, err)
		require.NotNil(t, dc)
		assert.Equal(t, "Lowercase", dc.Title)
		assert.Equal(t, "Example Press", dc.Publisher)
	})

	t.Run("repeated creator and subject accumulate in order", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
	<meta name="DC.creator" content="First Author">
	<meta name="DC.creator" content="Second Author">
	<meta name="DC.subject" content="metadata">
	<meta name="DC.subject" content="html">
</head></html>`

		dc, err := goquery.NewExtractor().ExtractDublinCore(html)

		require.NoError(t, err)
		require.NotNil(t, dc)
		assert.Equal(t, []string{"First Author", "Second Author"}, dc.Creator)
		assert.Equal(t, []string{"metadata", "html"}, dc.Subject)
	})

	t.Run("non-DC meta tags are ignored", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
	<meta name="description" content="not dublin core">
	<meta name="dcterm" content="close but wrong">
</head></html>`

		dc, err := goquery.NewExtractor().ExtractDublinCore(html)

		require.NoError(t, err)
		assert.Nil(t, dc)
	})
}
