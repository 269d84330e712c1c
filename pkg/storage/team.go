package storage

import (
	"context"

	"gemflush/pkg/domain"
)

// TeamUpdates describes optional fields applied to a team during an update.
// Only non-nil fields are changed.
type TeamUpdates struct {
	// Name, when provided, renames the team.
	Name *string
	// StripeCustomerID, when provided, attaches a Stripe customer to the team.
	StripeCustomerID *string
	// StripeSubscriptionID, when provided, records the active subscription. An
	// empty string clears it.
	StripeSubscriptionID *string
	// StripeProductID, when provided, records the subscribed product. An empty
	// string clears it.
	StripeProductID *string
	// Plan, when provided, sets the normalized plan name.
	Plan *domain.PlanName
	// SubscriptionStatus, when provided, records the Stripe subscription status.
	SubscriptionStatus *domain.SubscriptionStatus
}

// TeamStorage defines operations on teams and their users.
type TeamStorage interface {
	// StoreTeam inserts a team and returns the stored row.
	StoreTeam(ctx context.Context, team domain.Team) (*domain.Team, error)
	// TeamByID fetches a team by ID, excluding soft-deleted rows. Returns nil
	// when not found.
	TeamByID(ctx context.Context, id domain.TeamID) (*domain.Team, error)
	// TeamByStripeCustomer fetches the team attached to the given Stripe
	// customer. Returns nil when not found. Used by the webhook handler.
	TeamByStripeCustomer(ctx context.Context, customerID string) (*domain.Team, error)
	// UpdateTeamByID applies updates to a team and returns the updated row, or
	// nil when the team does not exist.
	UpdateTeamByID(ctx context.Context, id domain.TeamID, updates TeamUpdates) (*domain.Team, error)

	// StoreUser inserts a user and returns the stored row.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserByID fetches a user by ID, excluding soft-deleted rows. Returns nil
	// when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// TeamMembers returns the live users of a team ordered by creation time.
	TeamMembers(ctx context.Context, teamID domain.TeamID) ([]domain.User, error)
}
