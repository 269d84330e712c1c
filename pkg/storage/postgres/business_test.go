package postgres_test

import (
	"context"
	"testing"
	"time"

	"gemflush/pkg/domain"
	"gemflush/pkg/storage"
	"gemflush/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// storeTestTeam inserts a team to satisfy the businesses foreign key.
func storeTestTeam(t *testing.T, pgSQL *postgres.PgSQL) domain.TeamID {
	t.Helper()
	team, err := pgSQL.StoreTeam(context.Background(), domain.Team{
		Name: "test team " + uuid.NewString(),
		Plan: domain.PlanFree,
	})
	require.NoError(t, err)

	return team.ID
}

func storeTestBusiness(t *testing.T, pgSQL *postgres.PgSQL, teamID domain.TeamID, url string) *domain.Business {
	t.Helper()
	b, err := pgSQL.StoreBusiness(context.Background(), domain.Business{
		TeamID: teamID,
		Name:   "Example Cafe",
		URL:    url,
		Status: domain.BusinessStatusPending,
	})
	require.NoError(t, err)

	return b
}

func TestPgSQL_StoreBusiness(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	teamID := storeTestTeam(t, pgSQL)

	b, err := pgSQL.StoreBusiness(ctx, domain.Business{
		TeamID:   teamID,
		Name:     "Example Cafe",
		URL:      "https://example.com/",
		Category: "cafe",
		City:     "Berlin",
		Country:  "DE",
		Status:   domain.BusinessStatusPending,
	})
	require.NoError(t, err)
	require.NotEqual(t, domain.BusinessID(uuid.Nil), b.ID)
	require.Equal(t, teamID, b.TeamID)
	require.Equal(t, "cafe", b.Category)
	require.False(t, b.CreatedAt.IsZero())

	count, err := pgSQL.CountTeamBusinesses(ctx, teamID)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestPgSQL_BusinessByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	teamA := storeTestTeam(t, pgSQL)
	teamB := storeTestTeam(t, pgSQL)
	b := storeTestBusiness(t, pgSQL, teamA, "https://byid.test/")

	// correct team & id
	got, err := pgSQL.BusinessByID(ctx, teamA, b.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, b.ID, got.ID)

	// another team should not see it
	got2, err := pgSQL.BusinessByID(ctx, teamB, b.ID)
	require.NoError(t, err)
	require.Nil(t, got2)

	// soft delete and ensure not returned
	_, err = pgSQL.DeleteBusiness(ctx, teamA, b.ID)
	require.NoError(t, err)
	got3, err := pgSQL.BusinessByID(ctx, teamA, b.ID)
	require.NoError(t, err)
	require.Nil(t, got3)
}

func TestPgSQL_DeleteBusiness(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	teamID := storeTestTeam(t, pgSQL)
	b := storeTestBusiness(t, pgSQL, teamID, "https://delete.me/")

	deleted, err := pgSQL.DeleteBusiness(ctx, teamID, b.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, b.ID, deleted.ID)

	// listing should not include it
	page, err := pgSQL.TeamBusinesses(ctx, teamID, "", time.Time{}, 10)
	require.NoError(t, err)
	require.Empty(t, page.Businesses)

	// count excludes soft-deleted rows
	count, err := pgSQL.CountTeamBusinesses(ctx, teamID)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)

	// deleting again should not error
	deleted2, err := pgSQL.DeleteBusiness(ctx, teamID, b.ID)
	require.NoError(t, err)
	require.Nil(t, deleted2)
}

func TestPgSQL_TeamBusinesses_FilterAndPagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	teamID := storeTestTeam(t, pgSQL)

	stored := make([]*domain.Business, 0, 5)
	for range 5 {
		stored = append(stored, storeTestBusiness(t, pgSQL, teamID, "https://page.example/"+uuid.NewString()))
	}

	// adjust created_at to be deterministic descending: now, now-1m, ...
	now := time.Now().UTC()
	for i, b := range stored {
		created := now.Add(-time.Duration(4-i) * time.Minute)
		_, err := pgSQL.DB.ExecContext(ctx,
			"UPDATE businesses SET created_at = $1 WHERE id = $2", created, uuid.UUID(b.ID))
		require.NoError(t, err)
	}

	// mark one business completed and filter on it
	_, err := pgSQL.UpdateBusinessByID(ctx, stored[0].ID, storage.BusinessUpdates{
		Status: domain.BusinessStatusCompleted,
	})
	require.NoError(t, err)

	completed, err := pgSQL.TeamBusinesses(ctx, teamID, domain.BusinessStatusCompleted, time.Time{}, 10)
	require.NoError(t, err)
	require.Len(t, completed.Businesses, 1)
	require.Equal(t, stored[0].ID, completed.Businesses[0].ID)

	// first page, limit 2
	p1, err := pgSQL.TeamBusinesses(ctx, teamID, "", time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, p1.Businesses, 2)
	require.NotNil(t, p1.NextCursor)

	// second page
	p2, err := pgSQL.TeamBusinesses(ctx, teamID, "", *p1.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, p2.Businesses, 2)
	require.NotNil(t, p2.NextCursor)

	// third (last) page, should have 1 left and no next cursor
	p3, err := pgSQL.TeamBusinesses(ctx, teamID, "", *p2.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, p3.Businesses, 1)
	require.Nil(t, p3.NextCursor)
}

func TestPgSQL_UpdateBusinessesByURL(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	teamA := storeTestTeam(t, pgSQL)
	teamB := storeTestTeam(t, pgSQL)
	url := "https://shared.example/"

	// two teams track the same URL, a third business has a different URL
	b1 := storeTestBusiness(t, pgSQL, teamA, url)
	b2 := storeTestBusiness(t, pgSQL, teamB, url)
	other := storeTestBusiness(t, pgSQL, teamA, "https://other.example/")

	desc := "filled from crawl"
	empty := ""
	err := pgSQL.UpdateBusinessesByURL(ctx, url, storage.BusinessUpdates{
		Status:      domain.BusinessStatusCompleted,
		Stages:      &domain.StageFlags{CrawlDone: true, FingerprintDone: true, PublishDone: true},
		Description: &desc,
		LastError:   &empty, // clear last_error to NULL
		IncAttempts: true,
	})
	require.NoError(t, err)

	for _, id := range []domain.BusinessID{b1.ID, b2.ID} {
		live, err := pgSQL.LiveBusinessesByURL(ctx, url)
		require.NoError(t, err)
		require.Len(t, live, 2)
		var got *domain.Business
		for i := range live {
			if live[i].ID == id {
				got = &live[i]
			}
		}
		require.NotNil(t, got)
		require.Equal(t, domain.BusinessStatusCompleted, got.Status)
		require.True(t, got.Stages.CrawlDone)
		require.True(t, got.Stages.PublishDone)
		require.Equal(t, desc, got.Description)
		require.EqualValues(t, 1, got.Attempts)
		require.Empty(t, got.LastError)
	}

	// the unrelated business stays untouched
	untouched, err := pgSQL.BusinessByID(ctx, teamA, other.ID)
	require.NoError(t, err)
	require.Equal(t, domain.BusinessStatusPending, untouched.Status)
	require.EqualValues(t, 0, untouched.Attempts)
}

func TestPgSQL_UpdateBusinessesByURL_OnlyIncomplete(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	teamA := storeTestTeam(t, pgSQL)
	teamB := storeTestTeam(t, pgSQL)
	url := "https://scoped.example/"

	// team A finished a run for the URL, team B just added the same URL
	finished := storeTestBusiness(t, pgSQL, teamA, url)
	fresh := storeTestBusiness(t, pgSQL, teamB, url)
	_, err := pgSQL.UpdateBusinessByID(ctx, finished.ID, storage.BusinessUpdates{
		Status: domain.BusinessStatusCompleted,
		Stages: &domain.StageFlags{CrawlDone: true, FingerprintDone: true, PublishDone: true},
	})
	require.NoError(t, err)

	boom := "crawl: boom"
	err = pgSQL.UpdateBusinessesByURL(ctx, url, storage.BusinessUpdates{
		Status:         domain.BusinessStatusFailed,
		LastError:      &boom,
		IncAttempts:    true,
		OnlyIncomplete: true,
	})
	require.NoError(t, err)

	// the finished run keeps its state
	got, err := pgSQL.BusinessByID(ctx, teamA, finished.ID)
	require.NoError(t, err)
	require.Equal(t, domain.BusinessStatusCompleted, got.Status)
	require.EqualValues(t, 0, got.Attempts)
	require.Empty(t, got.LastError)

	// the in-progress run takes the update
	got, err = pgSQL.BusinessByID(ctx, teamB, fresh.ID)
	require.NoError(t, err)
	require.Equal(t, domain.BusinessStatusFailed, got.Status)
	require.EqualValues(t, 1, got.Attempts)
	require.Equal(t, boom, got.LastError)
}

func TestPgSQL_UpdateBusinessesByURL_FailedGuardedByMaxAttempts(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	teamID := storeTestTeam(t, pgSQL)
	url := "https://flaky.example/"
	b := storeTestBusiness(t, pgSQL, teamID, url)

	boom := "crawl: boom"
	fail := storage.BusinessUpdates{
		Status:      domain.BusinessStatusFailed,
		LastError:   &boom,
		IncAttempts: true,
		MaxAttempts: 2,
	}

	// first failure: attempts 0 -> 1, below the threshold, status unchanged
	require.NoError(t, pgSQL.UpdateBusinessesByURL(ctx, url, fail))
	got, err := pgSQL.BusinessByID(ctx, teamID, b.ID)
	require.NoError(t, err)
	require.Equal(t, domain.BusinessStatusPending, got.Status)
	require.EqualValues(t, 1, got.Attempts)
	require.Equal(t, boom, got.LastError)

	// second failure exhausts retries and flips the status
	require.NoError(t, pgSQL.UpdateBusinessesByURL(ctx, url, fail))
	got, err = pgSQL.BusinessByID(ctx, teamID, b.ID)
	require.NoError(t, err)
	require.Equal(t, domain.BusinessStatusFailed, got.Status)
	require.EqualValues(t, 2, got.Attempts)
}

func TestPgSQL_UpdateBusinessByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	teamID := storeTestTeam(t, pgSQL)
	b := storeTestBusiness(t, pgSQL, teamID, "https://single.example/")

	qid := "Q4242"
	updated, err := pgSQL.UpdateBusinessByID(ctx, b.ID, storage.BusinessUpdates{
		Status:      domain.BusinessStatusCompleted,
		Stages:      &domain.StageFlags{CrawlDone: true, FingerprintDone: true},
		WikidataQID: &qid,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, domain.BusinessStatusCompleted, updated.Status)
	require.True(t, updated.Stages.FingerprintDone)
	require.False(t, updated.Stages.PublishDone)
	require.Equal(t, qid, updated.WikidataQID)
	require.False(t, updated.UpdatedAt.IsZero())

	// unknown id yields nil
	missing, err := pgSQL.UpdateBusinessByID(ctx, domain.BusinessID(uuid.New()), storage.BusinessUpdates{
		Status: domain.BusinessStatusFailed,
	})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_LastCompletedBusinessByURL(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	teamA := storeTestTeam(t, pgSQL)
	teamB := storeTestTeam(t, pgSQL)
	url := "https://completed.example/"

	// no completed run yet
	got, err := pgSQL.LastCompletedBusinessByURL(ctx, url)
	require.NoError(t, err)
	require.Nil(t, got)

	b1 := storeTestBusiness(t, pgSQL, teamA, url)
	b2 := storeTestBusiness(t, pgSQL, teamB, url)

	_, err = pgSQL.UpdateBusinessByID(ctx, b1.ID, storage.BusinessUpdates{Status: domain.BusinessStatusCompleted})
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	_, err = pgSQL.UpdateBusinessByID(ctx, b2.ID, storage.BusinessUpdates{Status: domain.BusinessStatusCompleted})
	require.NoError(t, err)

	// the most recently updated completed run wins, across teams
	got, err = pgSQL.LastCompletedBusinessByURL(ctx, url)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, b2.ID, got.ID)
}
