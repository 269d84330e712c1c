package crawler_test

import (
	"testing"

	"gemflush/pkg/crawler"

	"github.com/stretchr/testify/require"
)

func TestExtractMeta(t *testing.T) {
	doc := `<html><head>
		<title>  Example Cafe  </title>
		<meta name="description" content="Fresh roasted coffee">
	</head><body><title>ignored</title></body></html>`

	meta := crawler.ExtractMeta(doc)
	require.Equal(t, "Example Cafe", meta.Title)
	require.Equal(t, "Fresh roasted coffee", meta.Description)
}

func TestExtractMeta_openGraphFallback(t *testing.T) {
	doc := `<html><head>
		<meta property="og:title" content="OG Cafe">
		<meta property="og:description" content="og description">
	</head></html>`

	meta := crawler.ExtractMeta(doc)
	require.Equal(t, "OG Cafe", meta.Title)
	require.Equal(t, "og description", meta.Description)
}

func TestExtractMeta_malformed(t *testing.T) {
	// the tokenizer recovers from unclosed tags
	meta := crawler.ExtractMeta(`<head><title>Still Works`)
	require.Equal(t, "Still Works", meta.Title)
	require.Empty(t, meta.Description)

	require.Equal(t, crawler.PageMeta{}, crawler.ExtractMeta(""))
}
