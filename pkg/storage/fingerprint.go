package storage

import (
	"context"
	"time"

	"gemflush/pkg/domain"
)

// FingerprintPage groups a page of fingerprints with an optional NextCursor
// used for pagination.
type FingerprintPage struct {
	// Fingerprints contains the current page of records, newest first.
	Fingerprints []domain.Fingerprint
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// FingerprintStorage persists pipeline artifacts: crawl results, visibility
// fingerprints, extracted competitors and Wikidata entities.
type FingerprintStorage interface {
	// StoreCrawlResult inserts a crawl result for a business.
	StoreCrawlResult(ctx context.Context, result domain.CrawlResult) error
	// LatestCrawlResult returns the most recent crawl result for a business, or
	// nil when the business has never been crawled.
	LatestCrawlResult(ctx context.Context, businessID domain.BusinessID) (*domain.CrawlResult, error)

	// StoreFingerprint inserts a fingerprint and returns the stored row.
	StoreFingerprint(ctx context.Context, fp domain.Fingerprint) (*domain.Fingerprint, error)
	// LatestFingerprint returns the most recent fingerprint for a business, or
	// nil when none exists.
	LatestFingerprint(ctx context.Context, businessID domain.BusinessID) (*domain.Fingerprint, error)
	// BusinessFingerprints returns a page of fingerprint history for a business
	// created before the optional cursor time, newest first.
	BusinessFingerprints(ctx context.Context,
		businessID domain.BusinessID,
		cursor time.Time,
		limit uint) (FingerprintPage, error)

	// ReplaceCompetitors replaces the stored competitor set for a business with
	// the provided one.
	ReplaceCompetitors(ctx context.Context, businessID domain.BusinessID, competitors []domain.Competitor) error
	// BusinessCompetitors returns the competitors recorded for a business,
	// ordered by mention count descending.
	BusinessCompetitors(ctx context.Context, businessID domain.BusinessID) ([]domain.Competitor, error)

	// UpsertWikidataEntity inserts or updates the Wikidata entity row for a
	// business (one entity per business).
	UpsertWikidataEntity(ctx context.Context, entity domain.WikidataEntity) error
	// WikidataEntityByBusiness returns the Wikidata entity for a business, or
	// nil when none exists.
	WikidataEntityByBusiness(ctx context.Context, businessID domain.BusinessID) (*domain.WikidataEntity, error)
}
