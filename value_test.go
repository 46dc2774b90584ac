package pagemeta_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMicroformatValue_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("text serializes as a bare string", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(pagemeta.MicroformatText("Jane Doe"))

		require.NoError(t, err)
		assert.JSONEq(t, `"Jane Doe"`, string(b))
	})

	t.Run("url serializes as a bare string", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(pagemeta.MicroformatURL("https://example.com/jane"))

		require.NoError(t, err)
		assert.JSONEq(t, `"https://example.com/jane"`, string(b))
	})

	t.Run("nested item serializes as an object", func(t *testing.T) {
		t.Parallel()

		item := &pagemeta.MicroformatItem{
			Types: []string{"h-card"},
			Properties: map[string][]pagemeta.MicroformatValue{
				"name": {pagemeta.MicroformatText("Jane")},
			},
		}

		b, err := json.Marshal(pagemeta.MicroformatChild(item))

		require.NoError(t, err)
		assert.JSONEq(t, `{"types":["h-card"],"properties":{"name":["Jane"]}}`, string(b))
	})
}

func TestMicrodataValue_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("text serializes as a bare string", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(pagemeta.MicrodataText("John"))

		require.NoError(t, err)
		assert.JSONEq(t, `"John"`, string(b))
	})

	t.Run("nested item serializes as an object", func(t *testing.T) {
		t.Parallel()

		item := &pagemeta.MicrodataItem{
			Types: []string{"https://schema.org/Person"},
			Properties: map[string][]pagemeta.MicrodataValue{
				"name": {pagemeta.MicrodataText("John")},
			},
		}

		b, err := json.Marshal(pagemeta.MicrodataChild(item))

		require.NoError(t, err)
		assert.JSONEq(t, `{"types":["https://schema.org/Person"],"properties":{"name":["John"]}}`, string(b))
	})
}

func TestRDFaValue_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("literal serializes as a bare string", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(pagemeta.RDFaLiteral("Jane"))

		require.NoError(t, err)
		assert.JSONEq(t, `"Jane"`, string(b))
	})

	t.Run("resource serializes as an id object", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(pagemeta.RDFaResource("https://example.com/jane"))

		require.NoError(t, err)
		assert.JSONEq(t, `{"@id":"https://example.com/jane"}`, string(b))
	})

	t.Run("typed literal serializes as a value object", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(pagemeta.RDFaTypedLiteral("1990-01-01", "http://www.w3.org/2001/XMLSchema#date"))

		require.NoError(t, err)
		assert.JSONEq(t, `{"@value":"1990-01-01","@type":"http://www.w3.org/2001/XMLSchema#date"}`, string(b))
	})
}

func TestMicroformatItem_Property(t *testing.T) {
	t.Parallel()

	item := &pagemeta.MicroformatItem{
		Types: []string{"h-card"},
		Properties: map[string][]pagemeta.MicroformatValue{
			"name": {pagemeta.MicroformatText("Jane Doe")},
			"url":  {pagemeta.MicroformatURL("https://example.com/jane")},
		},
	}

	assert.Equal(t, "Jane Doe", item.Property("name"))
	assert.Equal(t, "https://example.com/jane", item.Property("url"))
	assert.Empty(t, item.Property("photo"))
}
