package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/goquery"
	"github.com/fwojciec/pagemeta/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts from stdin and prints JSON", func(t *testing.T) {
		t.Parallel()

		stdin := strings.NewReader(`<html><head><title>Hello</title><meta property="og:title" content="OG Hello"></head></html>`)
		var stdout, stderr bytes.Buffer

		err := Run(context.Background(), []string{"extract"}, stdin, &stdout, &stderr)

		require.NoError(t, err)

		var res pagemeta.ExtractionResult
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &res))
		require.NotNil(t, res.Meta)
		assert.Equal(t, "Hello", res.Meta.Title)
		require.NotNil(t, res.OpenGraph)
		assert.Equal(t, "OG Hello", res.OpenGraph.Title)
	})

	t.Run("resolves relative URLs against the base flag", func(t *testing.T) {
		t.Parallel()

		stdin := strings.NewReader(`<html><head><link rel="canonical" href="/page"></head></html>`)
		var stdout, stderr bytes.Buffer

		err := Run(context.Background(), []string{"extract", "--base-url", "https://example.com"}, stdin, &stdout, &stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), `"canonical":"https://example.com/page"`)
	})

	t.Run("no command prints help and errors", func(t *testing.T) {
		t.Parallel()

		var stdout, stderr bytes.Buffer

		err := Run(context.Background(), nil, strings.NewReader(""), &stdout, &stderr)

		require.Error(t, err)
	})
}

func TestFetchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("emits one envelope per URL with a source hash", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer
		deps := &Dependencies{
			Ctx:       context.Background(),
			Stdout:    &stdout,
			Extractor: goquery.NewExtractor(),
			NewFetcher: func(rps float64) pagemeta.Fetcher {
				return &mock.Fetcher{
					FetchFn: func(ctx context.Context, url string) (string, error) {
						return `<html><head><title>Fetched</title></head></html>`, nil
					},
				}
			},
		}

		cmd := &FetchCmd{URLs: []string{"https://example.com/a", "https://example.com/b"}, Rate: 2}
		require.NoError(t, cmd.Run(deps))

		dec := json.NewDecoder(&stdout)
		var envelopes []FetchResult
		for dec.More() {
			var fr FetchResult
			require.NoError(t, dec.Decode(&fr))
			envelopes = append(envelopes, fr)
		}
		require.Len(t, envelopes, 2)
		assert.Equal(t, "https://example.com/a", envelopes[0].URL)
		assert.NotEmpty(t, envelopes[0].SourceHash)
		require.NotNil(t, envelopes[0].Result)
		assert.Equal(t, "Fetched", envelopes[0].Result.Meta.Title)
	})

	t.Run("a fetch failure is reported in the envelope, not fatally", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer
		deps := &Dependencies{
			Ctx:       context.Background(),
			Stdout:    &stdout,
			Extractor: goquery.NewExtractor(),
			NewFetcher: func(rps float64) pagemeta.Fetcher {
				return &mock.Fetcher{
					FetchFn: func(ctx context.Context, url string) (string, error) {
						return "", pagemeta.Errorf(pagemeta.ENOTFOUND, "HTTP 404 for %s", url)
					},
				}
			},
		}

		cmd := &FetchCmd{URLs: []string{"https://example.com/missing"}, Rate: 2}
		require.NoError(t, cmd.Run(deps))

		var fr FetchResult
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &fr))
		assert.Contains(t, fr.Error, "HTTP 404")
		assert.Nil(t, fr.Result)
	})
}
