// Package pipeline coordinates the crawl, fingerprint and publish lifecycle of
// businesses. It owns business CRUD on behalf of the API, enforces plan
// limits, and enqueues background jobs keyed by normalized URL so that teams
// tracking the same website share a single run.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"gemflush/internal/billing"
	"gemflush/internal/config"
	"gemflush/pkg/domain"
	"gemflush/pkg/serrors"
	"gemflush/pkg/storage"
)

// Options configure how pipeline jobs are enqueued and how results are cached.
// These settings are typically derived from application configuration.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when processing a run before marking the businesses failed.
	MaxAttempts int
	// ResultCacheTTL is the duration during which a completed run makes new
	// businesses for the same URL reuse its artifacts instead of enqueueing
	// a duplicate job.
	ResultCacheTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:    cfg.Pipeline.MaxAttempts,
		ResultCacheTTL: cfg.Pipeline.ResultCacheTTL,
	}
}

// pipeline is the concrete implementation of the Pipeline interface.
// It coordinates persistence with the storage layer and job enqueueing.
type pipeline struct {
	// options holds runtime configuration that affects enqueueing and caching.
	options Options
	// storage is the persistence layer used to store businesses and manage jobs.
	storage storage.Storage
}

// Create stores a new business for the team and attempts to enqueue a
// background run for its URL. Plan limits are enforced inside the same
// transaction as the insert. If a recent completed run exists for the same URL
// (within ResultCacheTTL), its artifacts are copied onto the new business and
// it is immediately marked completed.
func (p pipeline) Create(ctx context.Context, team *domain.Team, input CreateBusinessInput) (*domain.Business, error) {
	if input.Name == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "business name is required")
	}

	url, err := NormalizeURL(input.URL)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid URL")
	}

	plan := billing.PlanFor(team.EffectivePlan())

	var business *domain.Business
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		count, err := tx.CountTeamBusinesses(ctx, team.ID)
		if err != nil {
			return fmt.Errorf("could not count team businesses: %w", err)
		}
		if count >= int64(plan.MaxBusinesses) {
			return serrors.With(serrors.ErrPaymentRequired,
				"plan %q allows at most %d businesses", plan.Name, plan.MaxBusinesses)
		}

		business, err = tx.StoreBusiness(ctx, domain.Business{
			TeamID:      team.ID,
			Name:        input.Name,
			URL:         url,
			Description: input.Description,
			Category:    input.Category,
			City:        input.City,
			Country:     input.Country,
			Status:      domain.BusinessStatusPending,
		})
		if err != nil {
			return fmt.Errorf("could not store business: %w", err)
		}

		jobAdded, err := tx.AddJob(ctx, JobArgs{
			URL:             url,
			maxAttempts:     p.options.MaxAttempts,
			uniqueJobPeriod: p.options.ResultCacheTTL,
			reuseCompleted:  true,
		}, nil)
		if err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		// if a job was not added, another job already exists for this URL.
		// river unique jobs prevent duplicate runs for the same URL.
		if !jobAdded {
			// if the existing job already completed, copy its artifacts onto the
			// new business instead of waiting for a run that will never happen.
			source, err := tx.LastCompletedBusinessByURL(ctx, url)
			if err != nil {
				return fmt.Errorf("could not get last completed run: %w", err)
			}

			if source != nil {
				business, err = copyCompletedRun(ctx, tx, source, business)
				if err != nil {
					return err
				}
			} // else: the job is in the queue and will be processed soon.
			// The worker updates all pending businesses by URL upon completion.
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not create business: %w", err)
	}

	return business, nil
}

// copyCompletedRun clones the crawl result, fingerprint and competitors of a
// completed business onto a freshly created one and marks it completed. The
// publish stage is not cloned, the entity belongs to the source run; it is
// flagged done so the business does not stay pending, a later refresh
// publishes under this team's plan.
func copyCompletedRun(ctx context.Context,
	tx storage.AllStorage,
	source *domain.Business,
	target *domain.Business) (*domain.Business, error) {
	crawl, err := tx.LatestCrawlResult(ctx, source.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get source crawl result: %w", err)
	}
	if crawl != nil {
		clone := *crawl
		clone.BusinessID = target.ID
		if err := tx.StoreCrawlResult(ctx, clone); err != nil {
			return nil, fmt.Errorf("could not copy crawl result: %w", err)
		}
	}

	fp, err := tx.LatestFingerprint(ctx, source.ID)
	if err != nil {
		return nil, fmt.Errorf("could not get source fingerprint: %w", err)
	}
	if fp != nil {
		clone := *fp
		clone.ID = domain.FingerprintID{}
		clone.BusinessID = target.ID
		if _, err := tx.StoreFingerprint(ctx, clone); err != nil {
			return nil, fmt.Errorf("could not copy fingerprint: %w", err)
		}

		competitors, err := tx.BusinessCompetitors(ctx, source.ID)
		if err != nil {
			return nil, fmt.Errorf("could not get source competitors: %w", err)
		}
		if err := tx.ReplaceCompetitors(ctx, target.ID, competitors); err != nil {
			return nil, fmt.Errorf("could not copy competitors: %w", err)
		}
	}

	var description *string
	if target.Description == "" && source.Description != "" {
		description = &source.Description
	}

	updated, err := tx.UpdateBusinessByID(ctx, target.ID, storage.BusinessUpdates{
		Status: domain.BusinessStatusCompleted,
		Stages: &domain.StageFlags{
			CrawlDone:       crawl != nil,
			FingerprintDone: fp != nil,
			PublishDone:     true,
		},
		Description: description,
	})
	if err != nil {
		return nil, fmt.Errorf("could not complete business from cached run: %w", err)
	}

	return updated, nil
}

// TeamBusinesses returns a page of businesses for the given team filtered by
// status. It supports cursor-based pagination using an RFC3339 timestamp
// string and returns the next cursor when more results are available.
func (p pipeline) TeamBusinesses(ctx context.Context,
	teamID domain.TeamID,
	status domain.BusinessStatus,
	cursor string,
	limit uint) ([]domain.Business, string, error) {
	cursorTime, err := parseCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	page, err := p.storage.TeamBusinesses(ctx, teamID, status, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get team businesses: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Businesses, next, nil
}

// Business fetches a single business by ID for the given team. It returns a
// not-found error when no matching business exists.
func (p pipeline) Business(ctx context.Context, teamID domain.TeamID, id domain.BusinessID) (*domain.Business, error) {
	business, err := p.storage.BusinessByID(ctx, teamID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get business: %w", err)
	}
	if business == nil {
		return nil, serrors.With(serrors.ErrNotFound, "business not found")
	}

	return business, nil
}

// Delete removes a business belonging to the given team. If the business does
// not exist, a not-found error is returned. Jobs are not cancelled here
// because other teams may still track the same URL.
func (p pipeline) Delete(ctx context.Context, teamID domain.TeamID, id domain.BusinessID) error {
	business, err := p.storage.DeleteBusiness(ctx, teamID, id)
	if err != nil {
		return fmt.Errorf("could not delete business: %w", err)
	}
	if business == nil {
		return serrors.With(serrors.ErrNotFound, "business not found")
	}

	// we don't delete jobs from the queue here because other businesses might
	// depend on the same URL job. The worker checks there are still live
	// businesses for the URL before processing.

	return nil
}

// Refresh resets a business to pending and enqueues a fresh run. The plan's
// refresh interval is enforced against the age of the latest fingerprint.
func (p pipeline) Refresh(ctx context.Context, team *domain.Team, id domain.BusinessID) (*domain.Business, error) {
	business, err := p.storage.BusinessByID(ctx, team.ID, id)
	if err != nil {
		return nil, fmt.Errorf("could not get business: %w", err)
	}
	if business == nil {
		return nil, serrors.With(serrors.ErrNotFound, "business not found")
	}

	plan := billing.PlanFor(team.EffectivePlan())

	fp, err := p.storage.LatestFingerprint(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get latest fingerprint: %w", err)
	}
	if fp != nil {
		if nextAt := fp.CreatedAt.Add(plan.RefreshInterval); time.Now().Before(nextAt) {
			return nil, serrors.With(serrors.ErrRateLimited,
				"plan %q allows the next refresh at %s", plan.Name, nextAt.UTC().Format(time.RFC3339))
		}
	}

	var updated *domain.Business
	if err := p.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		cleared := ""
		updated, err = tx.UpdateBusinessByID(ctx, id, storage.BusinessUpdates{
			Status:    domain.BusinessStatusPending,
			Stages:    &domain.StageFlags{},
			LastError: &cleared,
		})
		if err != nil {
			return fmt.Errorf("could not reset business: %w", err)
		}

		// refresh jobs dedup only against in-flight jobs, a previously completed
		// run within the cache window must not swallow an explicit refresh.
		if _, err := tx.AddJob(ctx, JobArgs{
			URL:             business.URL,
			maxAttempts:     p.options.MaxAttempts,
			uniqueJobPeriod: p.options.ResultCacheTTL,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not refresh business: %w", err)
	}

	return updated, nil
}

// LatestFingerprint returns the most recent fingerprint of a business owned by
// the team.
func (p pipeline) LatestFingerprint(ctx context.Context,
	teamID domain.TeamID,
	id domain.BusinessID) (*domain.Fingerprint, error) {
	if _, err := p.Business(ctx, teamID, id); err != nil {
		return nil, err
	}

	fp, err := p.storage.LatestFingerprint(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get latest fingerprint: %w", err)
	}
	if fp == nil {
		return nil, serrors.With(serrors.ErrNotFound, "business has no fingerprint yet")
	}

	return fp, nil
}

// Fingerprints returns a page of fingerprint history for a business owned by
// the team, newest first.
func (p pipeline) Fingerprints(ctx context.Context,
	teamID domain.TeamID,
	id domain.BusinessID,
	cursor string,
	limit uint) ([]domain.Fingerprint, string, error) {
	if _, err := p.Business(ctx, teamID, id); err != nil {
		return nil, "", err
	}

	cursorTime, err := parseCursor(cursor)
	if err != nil {
		return nil, "", err
	}

	page, err := p.storage.BusinessFingerprints(ctx, id, cursorTime, limit)
	if err != nil {
		return nil, "", fmt.Errorf("could not get fingerprints: %w", err)
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339)
	}

	return page.Fingerprints, next, nil
}

// Competitors returns the competitors recorded for a business owned by the
// team, most mentioned first.
func (p pipeline) Competitors(ctx context.Context,
	teamID domain.TeamID,
	id domain.BusinessID) ([]domain.Competitor, error) {
	if _, err := p.Business(ctx, teamID, id); err != nil {
		return nil, err
	}

	competitors, err := p.storage.BusinessCompetitors(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get competitors: %w", err)
	}

	return competitors, nil
}

// TeamUsage reports the team's effective plan limits and current consumption.
func (p pipeline) TeamUsage(ctx context.Context, team *domain.Team) (*Usage, error) {
	count, err := p.storage.CountTeamBusinesses(ctx, team.ID)
	if err != nil {
		return nil, fmt.Errorf("could not count team businesses: %w", err)
	}

	return &Usage{
		Plan:       billing.PlanFor(team.EffectivePlan()),
		Businesses: count,
	}, nil
}

func parseCursor(cursor string) (time.Time, error) {
	if cursor == "" {
		return time.Time{}, nil
	}

	t, err := time.Parse(time.RFC3339, cursor)
	if err != nil {
		return time.Time{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
	}

	return t, nil
}

// New creates a new Pipeline instance backed by the provided storage and
// configured with the given options.
func New(storage storage.Storage, options Options) Pipeline {
	return &pipeline{
		options: options,
		storage: storage,
	}
}
