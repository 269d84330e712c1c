package billing_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gemflush/internal/billing"
	"gemflush/pkg/domain"
)

func TestPlanFor(t *testing.T) {
	free := billing.PlanFor(domain.PlanFree)
	require.Equal(t, domain.PlanFree, free.Name)
	require.Equal(t, 1, free.MaxBusinesses)
	require.False(t, free.CanPublish)

	pro := billing.PlanFor(domain.PlanPro)
	require.Equal(t, 10, pro.MaxBusinesses)
	require.True(t, pro.CanPublish)

	agency := billing.PlanFor(domain.PlanAgency)
	require.Equal(t, 50, agency.MaxBusinesses)
	require.Less(t, agency.RefreshInterval, pro.RefreshInterval)

	// unknown names fall back to free
	require.Equal(t, free, billing.PlanFor("enterprise"))
	require.Equal(t, free, billing.PlanFor(""))
}

func TestNormalizePlanName(t *testing.T) {
	require.Equal(t, domain.PlanPro, billing.NormalizePlanName("Pro"))
	require.Equal(t, domain.PlanPro, billing.NormalizePlanName("  pro "))
	require.Equal(t, domain.PlanAgency, billing.NormalizePlanName("AGENCY"))
	require.Equal(t, domain.PlanFree, billing.NormalizePlanName("Enterprise"))
	require.Equal(t, domain.PlanFree, billing.NormalizePlanName(""))
}
