package pipeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"gemflush/internal/pipeline"

	mockstorage "gemflush/pkg/storage/mock"

	"go.uber.org/mock/gomock"

	"gemflush/pkg/domain"
	"gemflush/pkg/serrors"
	"gemflush/pkg/storage"
)

const (
	url = "https://example.com/"
)

func newTestPipeline(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, pipeline.Pipeline) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	p := pipeline.New(st, pipeline.Options{MaxAttempts: 3, ResultCacheTTL: time.Hour})

	return ctrl, st, p
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			// provide a tx mock that implements AllStorage
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func proTeam() *domain.Team {
	return &domain.Team{
		Plan:               domain.PlanPro,
		SubscriptionStatus: domain.SubscriptionActive,
	}
}

func createInput() pipeline.CreateBusinessInput {
	return pipeline.CreateBusinessInput{
		Name: "Example Cafe",
		URL:  "https://example.com",
	}
}

func TestPipeline_Create_JobAdded(t *testing.T) {
	ctrl, st, p := newTestPipeline(t)

	team := proTeam()

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CountTeamBusinesses(gomock.Any(), team.ID).Return(int64(0), nil)
		// Expect storing the business
		tx.EXPECT().StoreBusiness(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, business domain.Business) (*domain.Business, error) {
				ret := business
				if ret.URL != url {
					t.Fatalf("expected normalized url %q got %q", url, ret.URL)
				}

				return &ret, nil
			},
		)
		// Expect adding a job and report it was added
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	business, err := p.Create(context.Background(), team, createInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if business == nil {
		t.Fatalf("expected business, got nil")
	}
	if business.Status != domain.BusinessStatusPending {
		t.Fatalf("expected status PENDING, got %s", business.Status)
	}
}

func TestPipeline_Create_UsesLastCompletedRun(t *testing.T) {
	ctrl, st, p := newTestPipeline(t)

	team := proTeam()
	source := domain.Business{
		Status:      domain.BusinessStatusCompleted,
		Description: "Fresh roasted coffee",
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CountTeamBusinesses(gomock.Any(), team.ID).Return(int64(0), nil)
		tx.EXPECT().StoreBusiness(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, business domain.Business) (*domain.Business, error) {
				ret := business

				return &ret, nil
			},
		)
		// Job not added (already exists)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		// There is a completed run for the URL
		tx.EXPECT().LastCompletedBusinessByURL(gomock.Any(), url).Return(&source, nil)
		// Its artifacts get cloned onto the new business
		tx.EXPECT().LatestCrawlResult(gomock.Any(), source.ID).Return(&domain.CrawlResult{Content: "# Example"}, nil)
		tx.EXPECT().StoreCrawlResult(gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().LatestFingerprint(gomock.Any(), source.ID).Return(&domain.Fingerprint{VisibilityScore: 62}, nil)
		tx.EXPECT().StoreFingerprint(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, fp domain.Fingerprint) (*domain.Fingerprint, error) {
				if fp.ID != (domain.FingerprintID{}) {
					t.Fatalf("expected cloned fingerprint with zero ID")
				}
				ret := fp

				return &ret, nil
			},
		)
		tx.EXPECT().BusinessCompetitors(gomock.Any(), source.ID).Return([]domain.Competitor{{Name: "Rival"}}, nil)
		tx.EXPECT().ReplaceCompetitors(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		tx.EXPECT().UpdateBusinessByID(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.BusinessID, updates storage.BusinessUpdates) (*domain.Business, error) {
				if updates.Status != domain.BusinessStatusCompleted {
					t.Fatalf("expected completed update, got %s", updates.Status)
				}
				if updates.Stages == nil || !updates.Stages.CrawlDone || !updates.Stages.FingerprintDone {
					t.Fatalf("expected crawl and fingerprint stages done: %+v", updates.Stages)
				}
				if updates.Description == nil || *updates.Description != source.Description {
					t.Fatalf("expected description copied from source")
				}
				res := domain.Business{Status: domain.BusinessStatusCompleted}

				return &res, nil
			},
		)
	})

	business, err := p.Create(context.Background(), team, createInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if business.Status != domain.BusinessStatusCompleted {
		t.Fatalf("expected status COMPLETED, got %s", business.Status)
	}
}

func TestPipeline_Create_PendingWhenJobExistsWithoutResult(t *testing.T) {
	ctrl, st, p := newTestPipeline(t)
	team := proTeam()

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CountTeamBusinesses(gomock.Any(), team.ID).Return(int64(0), nil)
		tx.EXPECT().StoreBusiness(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, business domain.Business) (*domain.Business, error) {
				ret := business

				return &ret, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastCompletedBusinessByURL(gomock.Any(), url).Return(nil, nil)
	})

	business, err := p.Create(context.Background(), team, createInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if business.Status != domain.BusinessStatusPending {
		t.Fatalf("expected status PENDING, got %s", business.Status)
	}
}

func TestPipeline_Create_PlanLimitReached(t *testing.T) {
	ctrl, st, p := newTestPipeline(t)
	// zero team falls back to the free plan with a single business
	team := &domain.Team{}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CountTeamBusinesses(gomock.Any(), team.ID).Return(int64(1), nil)
	})

	_, err := p.Create(context.Background(), team, createInput())
	if err == nil || !errors.Is(err, serrors.ErrPaymentRequired) {
		t.Fatalf("expected ErrPaymentRequired, got %v", err)
	}
}

func TestPipeline_Create_InvalidInput(t *testing.T) {
	_, st, p := newTestPipeline(t)
	// No storage calls expected

	_, err := p.Create(context.Background(), proTeam(), pipeline.CreateBusinessInput{Name: "x", URL: "http://[::1"})
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}

	_, err = p.Create(context.Background(), proTeam(), pipeline.CreateBusinessInput{URL: "https://example.com"})
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for missing name, got %v", err)
	}
	// ensure no calls were made on storage
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)
}

func TestPipeline_Create_PropagatesErrors(t *testing.T) {
	ctrl, st, p := newTestPipeline(t)
	team := proTeam()

	// error from StoreBusiness
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CountTeamBusinesses(gomock.Any(), team.ID).Return(int64(0), nil)
		tx.EXPECT().StoreBusiness(gomock.Any(), gomock.Any()).Return(nil, errors.New("store err"))
	})
	if _, err := p.Create(context.Background(), team, createInput()); err == nil {
		t.Fatalf("expected error from StoreBusiness")
	}

	// error from AddJob
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CountTeamBusinesses(gomock.Any(), team.ID).Return(int64(0), nil)
		tx.EXPECT().StoreBusiness(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, business domain.Business) (*domain.Business, error) { return &business, nil },
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("add err"))
	})
	if _, err := p.Create(context.Background(), team, createInput()); err == nil {
		t.Fatalf("expected error from AddJob")
	}

	// error from LastCompletedBusinessByURL
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().CountTeamBusinesses(gomock.Any(), team.ID).Return(int64(0), nil)
		tx.EXPECT().StoreBusiness(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, business domain.Business) (*domain.Business, error) { return &business, nil },
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastCompletedBusinessByURL(gomock.Any(), url).Return(nil, errors.New("last err"))
	})
	if _, err := p.Create(context.Background(), team, createInput()); err == nil {
		t.Fatalf("expected error from LastCompletedBusinessByURL")
	}
}

func TestPipeline_TeamBusinesses_SuccessAndPagination(t *testing.T) {
	_, st, p := newTestPipeline(t)
	teamID := domain.TeamID{}
	status := domain.BusinessStatusPending
	cursorTime := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
	cursor := cursorTime.Format(time.RFC3339)

	page := storage.BusinessPage{
		Businesses: []domain.Business{{URL: "https://a"}},
		NextCursor: func() *time.Time {
			t := cursorTime.Add(-time.Minute)

			return &t
		}(),
	}

	st.EXPECT().TeamBusinesses(gomock.Any(), teamID, status, cursorTime, uint(10)).Return(page, nil)

	businesses, next, err := p.TeamBusinesses(context.Background(), teamID, status, cursor, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(businesses) != 1 || businesses[0].URL != "https://a" {
		t.Fatalf("unexpected businesses: %+v", businesses)
	}
	if next == "" {
		t.Fatalf("expected next cursor, got empty")
	}
}

func TestPipeline_TeamBusinesses_InvalidCursor(t *testing.T) {
	_, _, p := newTestPipeline(t)
	_, _, err := p.TeamBusinesses(context.Background(), domain.TeamID{}, "", "not-a-time", 5)
	if err == nil || !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest, got %v", err)
	}
}

func TestPipeline_Business(t *testing.T) {
	_, st, p := newTestPipeline(t)
	teamID := domain.TeamID{}
	id := domain.BusinessID{}

	// found
	st.EXPECT().BusinessByID(gomock.Any(), teamID, id).Return(&domain.Business{URL: "https://x"}, nil)
	business, err := p.Business(context.Background(), teamID, id)
	if err != nil || business == nil || business.URL != "https://x" {
		t.Fatalf("unexpected: business=%+v err=%v", business, err)
	}

	// not found
	st.EXPECT().BusinessByID(gomock.Any(), teamID, id).Return(nil, nil)
	_, err = p.Business(context.Background(), teamID, id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// storage error
	st.EXPECT().BusinessByID(gomock.Any(), teamID, id).Return(nil, errors.New("boom"))
	_, err = p.Business(context.Background(), teamID, id)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestPipeline_Delete(t *testing.T) {
	_, st, p := newTestPipeline(t)
	teamID := domain.TeamID{}
	id := domain.BusinessID{}

	// success
	st.EXPECT().DeleteBusiness(gomock.Any(), teamID, id).Return(&domain.Business{}, nil)
	if err := p.Delete(context.Background(), teamID, id); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// not found
	st.EXPECT().DeleteBusiness(gomock.Any(), teamID, id).Return(nil, nil)
	err := p.Delete(context.Background(), teamID, id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	// storage error
	st.EXPECT().DeleteBusiness(gomock.Any(), teamID, id).Return(nil, errors.New("boom"))
	if err := p.Delete(context.Background(), teamID, id); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestPipeline_Refresh_EnqueuesNewRun(t *testing.T) {
	ctrl, st, p := newTestPipeline(t)
	team := proTeam()
	id := domain.BusinessID{}

	st.EXPECT().BusinessByID(gomock.Any(), team.ID, id).Return(&domain.Business{URL: url}, nil)
	// latest fingerprint is older than the pro refresh interval
	old := domain.Fingerprint{CreatedAt: time.Now().Add(-8 * 24 * time.Hour)}
	st.EXPECT().LatestFingerprint(gomock.Any(), id).Return(&old, nil)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().UpdateBusinessByID(gomock.Any(), id, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.BusinessID, updates storage.BusinessUpdates) (*domain.Business, error) {
				if updates.Status != domain.BusinessStatusPending {
					t.Fatalf("expected reset to PENDING, got %s", updates.Status)
				}
				if updates.Stages == nil || *updates.Stages != (domain.StageFlags{}) {
					t.Fatalf("expected stage flags cleared: %+v", updates.Stages)
				}
				res := domain.Business{Status: domain.BusinessStatusPending, URL: url}

				return &res, nil
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(true, nil)
	})

	business, err := p.Refresh(context.Background(), team, id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if business.Status != domain.BusinessStatusPending {
		t.Fatalf("expected status PENDING, got %s", business.Status)
	}
}

func TestPipeline_Refresh_TooSoonForPlan(t *testing.T) {
	_, st, p := newTestPipeline(t)
	team := proTeam()
	id := domain.BusinessID{}

	st.EXPECT().BusinessByID(gomock.Any(), team.ID, id).Return(&domain.Business{URL: url}, nil)
	// fingerprint is fresher than the pro refresh interval
	fresh := domain.Fingerprint{CreatedAt: time.Now().Add(-time.Hour)}
	st.EXPECT().LatestFingerprint(gomock.Any(), id).Return(&fresh, nil)

	_, err := p.Refresh(context.Background(), team, id)
	if err == nil || !errors.Is(err, serrors.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestPipeline_Refresh_NotFound(t *testing.T) {
	_, st, p := newTestPipeline(t)
	team := proTeam()
	id := domain.BusinessID{}

	st.EXPECT().BusinessByID(gomock.Any(), team.ID, id).Return(nil, nil)

	_, err := p.Refresh(context.Background(), team, id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPipeline_LatestFingerprint(t *testing.T) {
	_, st, p := newTestPipeline(t)
	teamID := domain.TeamID{}
	id := domain.BusinessID{}

	// found
	st.EXPECT().BusinessByID(gomock.Any(), teamID, id).Return(&domain.Business{}, nil)
	st.EXPECT().LatestFingerprint(gomock.Any(), id).Return(&domain.Fingerprint{VisibilityScore: 42}, nil)
	fp, err := p.LatestFingerprint(context.Background(), teamID, id)
	if err != nil || fp == nil || fp.VisibilityScore != 42 {
		t.Fatalf("unexpected: fp=%+v err=%v", fp, err)
	}

	// business exists but has no fingerprint yet
	st.EXPECT().BusinessByID(gomock.Any(), teamID, id).Return(&domain.Business{}, nil)
	st.EXPECT().LatestFingerprint(gomock.Any(), id).Return(nil, nil)
	_, err = p.LatestFingerprint(context.Background(), teamID, id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// unknown business
	st.EXPECT().BusinessByID(gomock.Any(), teamID, id).Return(nil, nil)
	_, err = p.LatestFingerprint(context.Background(), teamID, id)
	if err == nil || !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPipeline_TeamUsage(t *testing.T) {
	_, st, p := newTestPipeline(t)
	team := proTeam()

	st.EXPECT().CountTeamBusinesses(gomock.Any(), team.ID).Return(int64(4), nil)

	usage, err := p.TeamUsage(context.Background(), team)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if usage.Plan.Name != domain.PlanPro || usage.Businesses != 4 {
		t.Fatalf("unexpected usage: %+v", usage)
	}
}
