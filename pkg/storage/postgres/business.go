package postgres

import (
	"context"
	"fmt"
	"time"

	"gemflush/pkg/domain"
	"gemflush/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	businessesTable = "businesses"
)

func (p *PgSQL) StoreBusiness(ctx context.Context, business domain.Business) (*domain.Business, error) {
	var row PgBusiness
	row.FromDomain(business)

	var result PgBusiness
	found, err := p.Builder.Insert(businessesTable).
		Rows(row).
		Returning(&PgBusiness{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store business into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert returned no row")
	}

	return result.ToDomain(), nil
}

// BusinessByID returns a business by its ID, excluding soft-deleted rows.
func (p *PgSQL) BusinessByID(ctx context.Context,
	teamID domain.TeamID,
	id domain.BusinessID) (*domain.Business, error) {
	var row PgBusiness
	found, err := p.Builder.From(businessesTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("team_id").Eq(uuid.UUID(teamID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch business by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// TeamBusinesses returns a page of businesses for a team filtered by optional
// status and cursor, ordered by created_at DESC, id DESC.
func (p *PgSQL) TeamBusinesses(ctx context.Context,
	teamID domain.TeamID,
	status domain.BusinessStatus,
	cursor time.Time,
	limit uint) (storage.BusinessPage, error) {
	w := []goqu.Expression{
		goqu.I("team_id").Eq(uuid.UUID(teamID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(businessesTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgBusiness
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.BusinessPage{}, fmt.Errorf("could not fetch team businesses from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return storage.BusinessPage{
		Businesses: pgBusinessesToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

func (p *PgSQL) CountTeamBusinesses(ctx context.Context, teamID domain.TeamID) (int64, error) {
	var count int64
	if _, err := p.Builder.From(businessesTable).
		Select(goqu.COUNT("*")).
		Where(
			goqu.I("team_id").Eq(uuid.UUID(teamID)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanValContext(ctx, &count); err != nil {
		return 0, fmt.Errorf("could not count team businesses: %w", err)
	}

	return count, nil
}

// DeleteBusiness performs a soft delete by setting deleted_at timestamp
// for a given business id and team, returning the deleted record.
func (p *PgSQL) DeleteBusiness(ctx context.Context,
	teamID domain.TeamID,
	id domain.BusinessID) (*domain.Business, error) {
	var row PgBusiness
	found, err := p.Builder.Update(businessesTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("team_id").Eq(uuid.UUID(teamID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgBusiness{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete business in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) LiveBusinessesByURL(ctx context.Context, url string) ([]domain.Business, error) {
	var rows []PgBusiness
	if err := p.Builder.From(businessesTable).
		Where(
			goqu.I("url").Eq(url),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("created_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch businesses by url: %w", err)
	}

	return pgBusinessesToDomain(rows), nil
}

// businessUpdateRecord builds the goqu record shared by the by-URL and by-ID
// update paths.
func businessUpdateRecord(updates storage.BusinessUpdates) goqu.Record {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Status != "" {
		rec["status"] = string(updates.Status)
	}
	if updates.IncAttempts {
		rec["attempts"] = goqu.L("attempts + 1")
	}
	if updates.Stages != nil {
		rec["crawl_done"] = updates.Stages.CrawlDone
		rec["fingerprint_done"] = updates.Stages.FingerprintDone
		rec["publish_done"] = updates.Stages.PublishDone
	}
	if updates.WikidataQID != nil {
		rec["wikidata_qid"] = *updates.WikidataQID
	}
	if updates.Description != nil {
		rec["description"] = *updates.Description
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	return rec
}

// UpdateBusinessesByURL updates all live businesses for the given URL with
// provided fields. When a Failed status is combined with MaxAttempts, the
// status flip is guarded so that businesses keep their current status until
// retries are exhausted.
func (p *PgSQL) UpdateBusinessesByURL(ctx context.Context, url string, updates storage.BusinessUpdates) error {
	rec := businessUpdateRecord(updates)
	if updates.Status == domain.BusinessStatusFailed && updates.MaxAttempts > 0 {
		rec["status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
			updates.MaxAttempts, string(domain.BusinessStatusFailed))
	}

	w := []goqu.Expression{
		goqu.I("url").Eq(url),
		goqu.I("deleted_at").IsNull(),
	}
	if updates.OnlyIncomplete {
		w = append(w, goqu.L("NOT (crawl_done AND fingerprint_done AND publish_done)"))
	}

	_, err := p.Builder.Update(businessesTable).
		Set(rec).Where(w...).Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update businesses by url in pg: %w", err)
	}

	return nil
}

// UpdateBusinessByID updates a single business and returns the updated row.
func (p *PgSQL) UpdateBusinessByID(ctx context.Context,
	id domain.BusinessID,
	updates storage.BusinessUpdates) (*domain.Business, error) {
	rec := businessUpdateRecord(updates)

	var row PgBusiness
	found, err := p.Builder.Update(businessesTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgBusiness{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update business by id in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// LastCompletedBusinessByURL returns the most recently completed business for
// a URL across all teams, or nil when none exists.
func (p *PgSQL) LastCompletedBusinessByURL(ctx context.Context, url string) (*domain.Business, error) {
	var row PgBusiness
	found, err := p.Builder.From(businessesTable).
		Where(
			goqu.I("url").Eq(url),
			goqu.I("status").Eq(string(domain.BusinessStatusCompleted)),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("updated_at").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch last completed business by url: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
