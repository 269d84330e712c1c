package postgres_test

import (
	"context"
	"testing"

	"gemflush/pkg/domain"
	"gemflush/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreTeamAndTeamByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	team, err := pgSQL.StoreTeam(ctx, domain.Team{
		Name: "Acme",
		Plan: domain.PlanFree,
	})
	require.NoError(t, err)
	require.NotEqual(t, domain.TeamID(uuid.Nil), team.ID)
	require.Equal(t, "Acme", team.Name)
	require.Equal(t, domain.PlanFree, team.Plan)

	got, err := pgSQL.TeamByID(ctx, team.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, team.ID, got.ID)

	// unknown id yields nil
	missing, err := pgSQL.TeamByID(ctx, domain.TeamID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_UpdateTeamByID_SubscriptionLifecycle(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	team, err := pgSQL.StoreTeam(ctx, domain.Team{Name: "Acme", Plan: domain.PlanFree})
	require.NoError(t, err)

	// checkout completed: attach customer and subscription
	customer := "cus_" + uuid.NewString()
	sub := "sub_1"
	updated, err := pgSQL.UpdateTeamByID(ctx, team.ID, storage.TeamUpdates{
		StripeCustomerID:     &customer,
		StripeSubscriptionID: &sub,
	})
	require.NoError(t, err)
	require.Equal(t, customer, updated.StripeCustomerID)
	require.Equal(t, sub, updated.StripeSubscriptionID)

	// subscription updated: plan and status synced from the webhook
	plan := domain.PlanPro
	status := domain.SubscriptionActive
	product := "prod_1"
	updated, err = pgSQL.UpdateTeamByID(ctx, team.ID, storage.TeamUpdates{
		Plan:               &plan,
		SubscriptionStatus: &status,
		StripeProductID:    &product,
	})
	require.NoError(t, err)
	require.Equal(t, domain.PlanPro, updated.Plan)
	require.Equal(t, domain.SubscriptionActive, updated.SubscriptionStatus)
	require.Equal(t, domain.PlanPro, updated.EffectivePlan())

	// lookup by stripe customer
	got, err := pgSQL.TeamByStripeCustomer(ctx, customer)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, team.ID, got.ID)

	// subscription deleted: downgrade and clear the subscription id
	freePlan := domain.PlanFree
	canceled := domain.SubscriptionCanceled
	empty := ""
	updated, err = pgSQL.UpdateTeamByID(ctx, team.ID, storage.TeamUpdates{
		Plan:                 &freePlan,
		SubscriptionStatus:   &canceled,
		StripeSubscriptionID: &empty, // clear to NULL
		StripeProductID:      &empty,
	})
	require.NoError(t, err)
	require.Equal(t, domain.PlanFree, updated.Plan)
	require.Empty(t, updated.StripeSubscriptionID)
	require.Empty(t, updated.StripeProductID)

	// unknown team yields nil
	missing, err := pgSQL.UpdateTeamByID(ctx, domain.TeamID(uuid.New()), storage.TeamUpdates{Plan: &plan})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_TeamByStripeCustomer_NotFound(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	got, err := pgSQL.TeamByStripeCustomer(context.Background(), "cus_missing")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_StoreUserAndTeamMembers(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	team, err := pgSQL.StoreTeam(ctx, domain.Team{Name: "Acme", Plan: domain.PlanFree})
	require.NoError(t, err)

	owner, err := pgSQL.StoreUser(ctx, domain.User{
		TeamID: team.ID,
		Email:  uuid.NewString() + "@example.com",
		Name:   "Owner",
		Role:   domain.RoleOwner,
	})
	require.NoError(t, err)
	require.Equal(t, domain.RoleOwner, owner.Role)

	member, err := pgSQL.StoreUser(ctx, domain.User{
		TeamID: team.ID,
		Email:  uuid.NewString() + "@example.com",
		Name:   "Member",
		Role:   domain.RoleMember,
	})
	require.NoError(t, err)

	got, err := pgSQL.UserByID(ctx, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, owner.Email, got.Email)

	// members are ordered by creation time
	members, err := pgSQL.TeamMembers(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	require.Equal(t, owner.ID, members[0].ID)
	require.Equal(t, member.ID, members[1].ID)

	// unknown user yields nil
	missing, err := pgSQL.UserByID(ctx, domain.UserID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}
