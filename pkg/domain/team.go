package domain

import (
	"time"

	"github.com/google/uuid"
)

// TeamID uniquely identifies a team within the system.
type TeamID uuid.UUID

// PlanName identifies a subscription plan. Stripe product names are normalized
// into one of these values.
type PlanName string

const (
	// PlanFree is the default plan for teams without a paid subscription.
	PlanFree PlanName = "free"
	// PlanPro is the standard paid plan.
	PlanPro PlanName = "pro"
	// PlanAgency is the high-volume paid plan.
	PlanAgency PlanName = "agency"
)

// SubscriptionStatus mirrors the Stripe subscription status values the
// application cares about. Unknown values are stored verbatim.
type SubscriptionStatus string

const (
	// SubscriptionActive means the subscription is paid up.
	SubscriptionActive SubscriptionStatus = "active"
	// SubscriptionTrialing means the subscription is in a trial period.
	SubscriptionTrialing SubscriptionStatus = "trialing"
	// SubscriptionPastDue means the latest payment failed.
	SubscriptionPastDue SubscriptionStatus = "past_due"
	// SubscriptionCanceled means the subscription was canceled.
	SubscriptionCanceled SubscriptionStatus = "canceled"
	// SubscriptionUnpaid means the subscription is delinquent.
	SubscriptionUnpaid SubscriptionStatus = "unpaid"
)

// Paid reports whether the status entitles the team to its paid plan limits.
func (s SubscriptionStatus) Paid() bool {
	return s == SubscriptionActive || s == SubscriptionTrialing
}

// Team represents a group of users sharing businesses and a subscription.
type Team struct {
	// ID is the unique identifier of the team.
	ID TeamID `json:"id"`

	// Name is the display name of the team.
	Name string `json:"name"`

	// StripeCustomerID is the Stripe customer attached to this team, if any.
	StripeCustomerID string `json:"-"`
	// StripeSubscriptionID is the active Stripe subscription, if any.
	StripeSubscriptionID string `json:"-"`
	// StripeProductID is the product of the active subscription, if any.
	StripeProductID string `json:"-"`
	// Plan is the normalized plan derived from the Stripe product name.
	Plan PlanName `json:"plan"`
	// SubscriptionStatus is the last known Stripe subscription status.
	SubscriptionStatus SubscriptionStatus `json:"subscriptionStatus,omitempty"`

	// CreatedAt is the time when the team was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the team was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the team was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// EffectivePlan returns the plan the team is entitled to right now: the paid
// plan while the subscription is active or trialing, otherwise free.
func (t *Team) EffectivePlan() PlanName {
	if t.Plan != PlanFree && t.SubscriptionStatus.Paid() {
		return t.Plan
	}

	return PlanFree
}
