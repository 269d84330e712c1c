package pipeline

import (
	"context"

	"gemflush/internal/billing"
	"gemflush/pkg/domain"
)

// CreateBusinessInput carries the user-provided fields of a new business.
// The URL is normalized before it is stored.
type CreateBusinessInput struct {
	Name        string
	URL         string
	Description string
	Category    string
	City        string
	Country     string
}

// Usage summarizes a team's plan consumption.
type Usage struct {
	// Plan holds the limits of the team's effective plan.
	Plan billing.Plan
	// Businesses is the number of live businesses the team currently tracks.
	Businesses int64
}

//go:generate mockgen -package mockpipeline -source=interface.go -destination=mock/mockpipeline.go *
type Pipeline interface {
	Create(ctx context.Context, team *domain.Team, input CreateBusinessInput) (*domain.Business, error)
	TeamBusinesses(ctx context.Context,
		teamID domain.TeamID,
		status domain.BusinessStatus,
		cursor string,
		limit uint) ([]domain.Business, string, error)
	Business(ctx context.Context, teamID domain.TeamID, id domain.BusinessID) (*domain.Business, error)
	Delete(ctx context.Context, teamID domain.TeamID, id domain.BusinessID) error
	Refresh(ctx context.Context, team *domain.Team, id domain.BusinessID) (*domain.Business, error)

	LatestFingerprint(ctx context.Context, teamID domain.TeamID, id domain.BusinessID) (*domain.Fingerprint, error)
	Fingerprints(ctx context.Context,
		teamID domain.TeamID,
		id domain.BusinessID,
		cursor string,
		limit uint) ([]domain.Fingerprint, string, error)
	Competitors(ctx context.Context, teamID domain.TeamID, id domain.BusinessID) ([]domain.Competitor, error)

	TeamUsage(ctx context.Context, team *domain.Team) (*Usage, error)
}
