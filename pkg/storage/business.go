package storage

import (
	"context"
	"time"

	"gemflush/pkg/domain"
)

// BusinessUpdates describes a set of optional fields that can be applied to
// businesses during an update. Only non-nil fields will be updated.
type BusinessUpdates struct {
	// Status is the new pipeline status to set.
	Status domain.BusinessStatus
	// Stages, when provided, replaces the stored stage completion flags.
	Stages *domain.StageFlags
	// WikidataQID, when provided, sets the published Wikidata item identifier.
	WikidataQID *string
	// Description, when provided, fills the business description (typically from a crawl).
	Description *string
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
	// IncAttempts increments the attempts counter by 1 when true.
	IncAttempts bool
	// OnlyIncomplete restricts a by-URL update to businesses that still have an
	// incomplete pipeline stage, leaving finished runs for the same URL alone.
	OnlyIncomplete bool
	// MaxAttempts, when provided alongside a Failed status, ensures that status
	// is only updated to Failed if the current attempts after increment would
	// exceed this threshold. A value <= 0 disables this guard.
	MaxAttempts int
}

// BusinessPage groups a page of businesses returned for a team together with
// an optional NextCursor used for pagination.
type BusinessPage struct {
	// Businesses contains the current page of records.
	Businesses []domain.Business
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// BusinessStorage defines CRUD and query operations related to businesses.
// Implementations should handle soft-deletes: deleted rows are invisible to
// every query here except where noted.
type BusinessStorage interface {
	// StoreBusiness inserts a business and returns the stored row as it exists
	// in the database (including generated fields).
	StoreBusiness(ctx context.Context, business domain.Business) (*domain.Business, error)
	// BusinessByID fetches a business by its ID for the given team. Returns nil
	// when not found.
	BusinessByID(ctx context.Context, teamID domain.TeamID, id domain.BusinessID) (*domain.Business, error)
	// TeamBusinesses returns a page of businesses for a team created before the
	// optional cursor time, limited by the given limit. If status is non-empty,
	// results are filtered to records with the given status.
	TeamBusinesses(ctx context.Context,
		teamID domain.TeamID,
		status domain.BusinessStatus,
		cursor time.Time,
		limit uint) (BusinessPage, error)
	// CountTeamBusinesses returns the number of live businesses owned by the
	// team. Used for plan limit enforcement.
	CountTeamBusinesses(ctx context.Context, teamID domain.TeamID) (int64, error)
	// DeleteBusiness performs a soft delete for the given business and team and
	// returns the deleted business, or nil if it was not found.
	DeleteBusiness(ctx context.Context, teamID domain.TeamID, id domain.BusinessID) (*domain.Business, error)
	// LiveBusinessesByURL returns all non-deleted businesses registered for the
	// given normalized URL across all teams. The pipeline worker uses this to
	// fan results out to every team tracking the same website.
	LiveBusinessesByURL(ctx context.Context, url string) ([]domain.Business, error)
	// UpdateBusinessesByURL updates all live businesses for the given normalized
	// URL using the provided field set.
	// Notes:
	// - updated_at is set automatically; attempts is incremented when IncAttempts is set.
	// - OnlyIncomplete skips businesses whose stage flags are all done, so a run
	//   for a newcomer never touches already-completed businesses of the URL.
	// - If Status is Failed and MaxAttempts > 0, status is only set to Failed
	//   when the attempts after increment would exceed MaxAttempts; otherwise
	//   status remains unchanged.
	UpdateBusinessesByURL(ctx context.Context, url string, updates BusinessUpdates) error
	// UpdateBusinessByID updates a single business identified by its ID and
	// returns the updated row. The update ignores soft-deleted rows and sets
	// updated_at automatically. Only provided fields are changed.
	UpdateBusinessByID(ctx context.Context, id domain.BusinessID, updates BusinessUpdates) (*domain.Business, error)
	// LastCompletedBusinessByURL returns the most recently completed business
	// for a given normalized URL across all teams. Returns nil when no completed
	// run exists for the URL. Used to reuse fresh fingerprints instead of
	// re-running the pipeline.
	LastCompletedBusinessByURL(ctx context.Context, url string) (*domain.Business, error)
}
