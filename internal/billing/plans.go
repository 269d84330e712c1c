package billing

import (
	"strings"
	"time"

	"gemflush/pkg/domain"
)

// Plan describes the limits attached to a subscription plan.
type Plan struct {
	// Name is the normalized plan identifier.
	Name domain.PlanName
	// MaxBusinesses is the maximum number of live businesses a team may track.
	MaxBusinesses int
	// RefreshInterval is the minimum time between fingerprint refreshes for a
	// single business.
	RefreshInterval time.Duration
	// CanPublish reports whether the plan allows publishing entities to
	// Wikidata.
	CanPublish bool
}

var plans = map[domain.PlanName]Plan{
	domain.PlanFree: {
		Name:            domain.PlanFree,
		MaxBusinesses:   1,
		RefreshInterval: 30 * 24 * time.Hour,
		CanPublish:      false,
	},
	domain.PlanPro: {
		Name:            domain.PlanPro,
		MaxBusinesses:   10,
		RefreshInterval: 7 * 24 * time.Hour,
		CanPublish:      true,
	},
	domain.PlanAgency: {
		Name:            domain.PlanAgency,
		MaxBusinesses:   50,
		RefreshInterval: 24 * time.Hour,
		CanPublish:      true,
	},
}

// PlanFor returns the plan limits for the given plan name. Unknown names fall
// back to the free plan.
func PlanFor(name domain.PlanName) Plan {
	if plan, ok := plans[name]; ok {
		return plan
	}

	return plans[domain.PlanFree]
}

// NormalizePlanName maps a Stripe product name to a plan. Matching is case and
// whitespace insensitive, anything unrecognized falls back to the free plan so
// a renamed product never grants unintended limits.
func NormalizePlanName(productName string) domain.PlanName {
	switch domain.PlanName(strings.ToLower(strings.TrimSpace(productName))) {
	case domain.PlanPro:
		return domain.PlanPro
	case domain.PlanAgency:
		return domain.PlanAgency
	default:
		return domain.PlanFree
	}
}
