package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/mock"
	pagemetaslog "github.com/fwojciec/pagemeta/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor(t *testing.T) {
	t.Parallel()

	t.Run("delegates and logs the found sections", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.Extractor{
			ExtractAllFn: func(html string, baseURL string) (*pagemeta.ExtractionResult, error) {
				return &pagemeta.ExtractionResult{
					Meta: &pagemeta.Meta{Title: "Title"},
				}, nil
			},
		}

		res, err := pagemetaslog.NewLoggingExtractor(next, logger).ExtractAll("<html></html>", "")

		require.NoError(t, err)
		require.NotNil(t, res)
		assert.Equal(t, "Title", res.Meta.Title)
		assert.Contains(t, buf.String(), "extraction complete")
		assert.Contains(t, buf.String(), "meta")
	})

	t.Run("logs failures with the error code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.Extractor{
			ExtractAllFn: func(html string, baseURL string) (*pagemeta.ExtractionResult, error) {
				return nil, pagemeta.Errorf(pagemeta.EINVALID, "input is not valid UTF-8")
			},
		}

		res, err := pagemetaslog.NewLoggingExtractor(next, logger).ExtractAll("\xff", "")

		require.Error(t, err)
		assert.Nil(t, res)
		assert.Equal(t, pagemeta.EINVALID, pagemeta.ErrorCode(err))
		assert.Contains(t, buf.String(), "extraction failed")
		assert.Contains(t, buf.String(), pagemeta.EINVALID)
	})
}
