package postgres_test

import (
	"context"
	"testing"
	"time"

	"gemflush/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_CrawlResults(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	teamID := storeTestTeam(t, pgSQL)
	b := storeTestBusiness(t, pgSQL, teamID, "https://crawl.example/")

	// no crawl yet
	got, err := pgSQL.LatestCrawlResult(ctx, b.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	older := domain.CrawlResult{
		BusinessID: b.ID,
		URL:        b.URL,
		Title:      "Old Title",
		Content:    "old content",
		FetchedAt:  time.Now().UTC().Add(-time.Hour),
	}
	newer := domain.CrawlResult{
		BusinessID:  b.ID,
		URL:         b.URL,
		Title:       "Example Cafe",
		Description: "Fresh roasted coffee",
		Content:     "# Example Cafe",
		Metadata:    map[string]string{"language": "en"},
		FetchedAt:   time.Now().UTC(),
	}
	require.NoError(t, pgSQL.StoreCrawlResult(ctx, older))
	require.NoError(t, pgSQL.StoreCrawlResult(ctx, newer))

	got, err = pgSQL.LatestCrawlResult(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Example Cafe", got.Title)
	require.Equal(t, "Fresh roasted coffee", got.Description)
	require.Equal(t, "en", got.Metadata["language"])
}

func TestPgSQL_Fingerprints(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	teamID := storeTestTeam(t, pgSQL)
	b := storeTestBusiness(t, pgSQL, teamID, "https://fp.example/")

	// no fingerprint yet
	got, err := pgSQL.LatestFingerprint(ctx, b.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	fp := domain.Fingerprint{
		BusinessID:      b.ID,
		VisibilityScore: 73,
		ModelResults: []domain.ModelResult{
			{Model: "openai/gpt-4o", Known: true, Sentiment: 8, Detail: 6, Summary: "a cafe"},
			{Model: "anthropic/claude-sonnet-4", Err: "rate limited"},
		},
		Summary: "a cafe",
	}
	stored, err := pgSQL.StoreFingerprint(ctx, fp)
	require.NoError(t, err)
	require.NotEqual(t, domain.FingerprintID(uuid.Nil), stored.ID)
	require.Equal(t, 73, stored.VisibilityScore)
	require.False(t, stored.CreatedAt.IsZero())

	got, err = pgSQL.LatestFingerprint(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, stored.ID, got.ID)
	require.Len(t, got.ModelResults, 2)
	require.Equal(t, "openai/gpt-4o", got.ModelResults[0].Model)
	require.True(t, got.ModelResults[0].Known)
	require.Equal(t, "rate limited", got.ModelResults[1].Err)
}

func TestPgSQL_BusinessFingerprints_Pagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	teamID := storeTestTeam(t, pgSQL)
	b := storeTestBusiness(t, pgSQL, teamID, "https://history.example/")

	stored := make([]*domain.Fingerprint, 0, 5)
	for i := range 5 {
		fp, err := pgSQL.StoreFingerprint(ctx, domain.Fingerprint{
			BusinessID:      b.ID,
			VisibilityScore: i * 10,
			ModelResults:    []domain.ModelResult{{Model: "openai/gpt-4o", Known: true}},
		})
		require.NoError(t, err)
		stored = append(stored, fp)
	}

	// adjust created_at to be deterministic descending: now, now-1m, ...
	now := time.Now().UTC()
	for i, fp := range stored {
		created := now.Add(-time.Duration(4-i) * time.Minute)
		_, err := pgSQL.DB.ExecContext(ctx,
			"UPDATE fingerprints SET created_at = $1 WHERE id = $2", created, uuid.UUID(fp.ID))
		require.NoError(t, err)
	}

	// first page, limit 2, newest first
	p1, err := pgSQL.BusinessFingerprints(ctx, b.ID, time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, p1.Fingerprints, 2)
	require.Equal(t, stored[4].ID, p1.Fingerprints[0].ID)
	require.NotNil(t, p1.NextCursor)

	// second page
	p2, err := pgSQL.BusinessFingerprints(ctx, b.ID, *p1.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, p2.Fingerprints, 2)
	require.NotNil(t, p2.NextCursor)

	// third (last) page, should have 1 left and no next cursor
	p3, err := pgSQL.BusinessFingerprints(ctx, b.ID, *p2.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, p3.Fingerprints, 1)
	require.Nil(t, p3.NextCursor)
}

func TestPgSQL_ReplaceCompetitors(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	teamID := storeTestTeam(t, pgSQL)
	b := storeTestBusiness(t, pgSQL, teamID, "https://rivals.example/")

	require.NoError(t, pgSQL.ReplaceCompetitors(ctx, b.ID, []domain.Competitor{
		{Name: "Rival Roasters", Mentions: 2},
		{Name: "Beans & Co", Mentions: 2},
		{Name: "Third Wave", Mentions: 1},
	}))

	// ordered by mentions desc, then name asc
	got, err := pgSQL.BusinessCompetitors(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)
	require.Equal(t, "Beans & Co", got[0].Name)
	require.Equal(t, "Rival Roasters", got[1].Name)
	require.Equal(t, "Third Wave", got[2].Name)

	// replacing swaps the whole set
	require.NoError(t, pgSQL.ReplaceCompetitors(ctx, b.ID, []domain.Competitor{
		{Name: "New Rival", Mentions: 3},
	}))
	got, err = pgSQL.BusinessCompetitors(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "New Rival", got[0].Name)

	// replacing with an empty set clears it
	require.NoError(t, pgSQL.ReplaceCompetitors(ctx, b.ID, nil))
	got, err = pgSQL.BusinessCompetitors(ctx, b.ID)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestPgSQL_WikidataEntities(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	teamID := storeTestTeam(t, pgSQL)
	b := storeTestBusiness(t, pgSQL, teamID, "https://wd.example/")

	// no entity yet
	got, err := pgSQL.WikidataEntityByBusiness(ctx, b.ID)
	require.NoError(t, err)
	require.Nil(t, got)

	// initial insert records a failed attempt
	require.NoError(t, pgSQL.UpsertWikidataEntity(ctx, domain.WikidataEntity{
		BusinessID: b.ID,
		Labels:     map[string]string{"en": "Example Cafe"},
		Status:     domain.WikidataStatusFailed,
	}))

	got, err = pgSQL.WikidataEntityByBusiness(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, domain.WikidataStatusFailed, got.Status)
	require.Empty(t, got.QID)

	// upserting again updates the single row kept per business
	publishedAt := time.Now().UTC()
	require.NoError(t, pgSQL.UpsertWikidataEntity(ctx, domain.WikidataEntity{
		BusinessID:   b.ID,
		QID:          "Q4242",
		Labels:       map[string]string{"en": "Example Cafe"},
		Descriptions: map[string]string{"en": "coffee shop in Berlin"},
		Status:       domain.WikidataStatusPublished,
		PublishedAt:  publishedAt,
	}))

	got, err = pgSQL.WikidataEntityByBusiness(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Q4242", got.QID)
	require.Equal(t, domain.WikidataStatusPublished, got.Status)
	require.Equal(t, "coffee shop in Berlin", got.Descriptions["en"])
	require.False(t, got.PublishedAt.IsZero())
}
