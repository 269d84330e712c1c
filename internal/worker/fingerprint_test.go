package worker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"gemflush/pkg/domain"
)

func TestVisibilityScore(t *testing.T) {
	tests := []struct {
		name    string
		results []domain.ModelResult
		want    int
	}{
		{
			name: "unknown everywhere scores zero",
			results: []domain.ModelResult{
				{Model: "m1"},
				{Model: "m2"},
			},
			want: 0,
		},
		{
			name: "perfect answers score 100",
			results: []domain.ModelResult{
				{Model: "m1", Known: true, Sentiment: 10, Detail: 10},
				{Model: "m2", Known: true, Sentiment: 10, Detail: 10},
			},
			want: 100,
		},
		{
			name: "known without detail scores the base",
			results: []domain.ModelResult{
				{Model: "m1", Known: true},
			},
			want: 50,
		},
		{
			name: "failed models are excluded from the average",
			results: []domain.ModelResult{
				{Model: "m1", Known: true, Sentiment: 10, Detail: 10},
				{Model: "m2", Err: "gateway down"},
			},
			want: 100,
		},
		{
			name: "mixed answers average out",
			results: []domain.ModelResult{
				{Model: "m1", Known: true, Sentiment: 8, Detail: 6},
				{Model: "m2"},
			},
			want: 43,
		},
		{
			name:    "no results scores zero",
			results: nil,
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, visibilityScore(tt.results))
		})
	}
}

func TestFingerprintSummary(t *testing.T) {
	results := []domain.ModelResult{
		{Model: "m1", Known: true, Detail: 3, Summary: "short take"},
		{Model: "m2", Known: true, Detail: 8, Summary: "detailed take"},
		{Model: "m3", Known: false, Detail: 10, Summary: "hallucinated"},
		{Model: "m4", Err: "down", Summary: "broken"},
	}

	require.Equal(t, "detailed take", fingerprintSummary(results))
	require.Empty(t, fingerprintSummary(nil))
}

func TestAggregateCompetitors(t *testing.T) {
	b := &domain.Business{Name: "Example Cafe"}
	results := []domain.ModelResult{
		{Model: "m1", Competitors: []string{"Rival Roasters", "Beans & Co", "Example Cafe"}},
		{Model: "m2", Competitors: []string{"rival roasters", "Third Wave"}},
		// duplicate mention within one model counts once
		{Model: "m3", Competitors: []string{"Beans & Co", "beans & co"}},
	}

	competitors := aggregateCompetitors(b, results)
	require.Len(t, competitors, 3)

	// sorted by mentions, ties by name
	require.Equal(t, "Beans & Co", competitors[0].Name)
	require.Equal(t, 2, competitors[0].Mentions)
	require.Equal(t, "Rival Roasters", competitors[1].Name)
	require.Equal(t, 2, competitors[1].Mentions)
	require.Equal(t, "Third Wave", competitors[2].Name)
	require.Equal(t, 1, competitors[2].Mentions)
}

func TestClampScore(t *testing.T) {
	require.Equal(t, 0, clampScore(-3))
	require.Equal(t, 0, clampScore(0))
	require.Equal(t, 7, clampScore(7))
	require.Equal(t, 10, clampScore(15))
}

func TestFingerprintPrompt(t *testing.T) {
	b := &domain.Business{
		Name:     "Example Cafe",
		URL:      "https://example.com/",
		Category: "coffee shop",
		City:     "Berlin",
		Country:  "Germany",
	}
	crawl := &domain.CrawlResult{Content: strings.Repeat("x", maxContentChars+100)}

	prompt := fingerprintPrompt(b, crawl)
	require.Contains(t, prompt, "Business: Example Cafe")
	require.Contains(t, prompt, "Category: coffee shop")
	require.Contains(t, prompt, "Location: Berlin Germany")
	// the crawl excerpt is truncated
	require.Less(t, len(prompt), maxContentChars+1000)

	// without a crawl the prompt still identifies the business
	prompt = fingerprintPrompt(b, nil)
	require.Contains(t, prompt, "Website: https://example.com/")
	require.NotContains(t, prompt, "Website excerpt")
}
