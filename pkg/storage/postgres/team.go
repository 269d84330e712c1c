package postgres

import (
	"context"
	"fmt"

	"gemflush/pkg/domain"
	"gemflush/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	teamsTable = "teams"
	usersTable = "users"
)

func (p *PgSQL) StoreTeam(ctx context.Context, team domain.Team) (*domain.Team, error) {
	var row PgTeam
	row.FromDomain(team)

	var result PgTeam
	found, err := p.Builder.Insert(teamsTable).
		Rows(row).
		Returning(&PgTeam{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store team into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert returned no row")
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) TeamByID(ctx context.Context, id domain.TeamID) (*domain.Team, error) {
	var row PgTeam
	found, err := p.Builder.From(teamsTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch team by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) TeamByStripeCustomer(ctx context.Context, customerID string) (*domain.Team, error) {
	var row PgTeam
	found, err := p.Builder.From(teamsTable).
		Where(
			goqu.I("stripe_customer_id").Eq(customerID),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch team by stripe customer: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdateTeamByID(ctx context.Context,
	id domain.TeamID,
	updates storage.TeamUpdates) (*domain.Team, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.StripeCustomerID != nil {
		rec["stripe_customer_id"] = *updates.StripeCustomerID
	}
	if updates.StripeSubscriptionID != nil {
		if *updates.StripeSubscriptionID == "" {
			rec["stripe_subscription_id"] = goqu.L("NULL")
		} else {
			rec["stripe_subscription_id"] = *updates.StripeSubscriptionID
		}
	}
	if updates.StripeProductID != nil {
		if *updates.StripeProductID == "" {
			rec["stripe_product_id"] = goqu.L("NULL")
		} else {
			rec["stripe_product_id"] = *updates.StripeProductID
		}
	}
	if updates.Plan != nil {
		rec["plan_name"] = string(*updates.Plan)
	}
	if updates.SubscriptionStatus != nil {
		rec["subscription_status"] = string(*updates.SubscriptionStatus)
	}

	var row PgTeam
	found, err := p.Builder.Update(teamsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgTeam{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update team in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var row PgUser
	row.FromDomain(user)

	var result PgUser
	found, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store user into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert returned no row")
	}

	return result.ToDomain(), nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) TeamMembers(ctx context.Context, teamID domain.TeamID) ([]domain.User, error) {
	var rows []PgUser
	if err := p.Builder.From(usersTable).
		Where(
			goqu.I("team_id").Eq(uuid.UUID(teamID)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch team members from pg: %w", err)
	}

	out := make([]domain.User, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}
