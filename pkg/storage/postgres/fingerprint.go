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
	crawlResultsTable     = "crawl_results"
	fingerprintsTable     = "fingerprints"
	competitorsTable      = "competitors"
	wikidataEntitiesTable = "wikidata_entities"
)

func (p *PgSQL) StoreCrawlResult(ctx context.Context, result domain.CrawlResult) error {
	var row PgCrawlResult
	if err := row.FromDomain(result); err != nil {
		return err
	}

	if _, err := p.Builder.Insert(crawlResultsTable).
		Rows(row).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store crawl result into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) LatestCrawlResult(ctx context.Context, businessID domain.BusinessID) (*domain.CrawlResult, error) {
	var row PgCrawlResult
	found, err := p.Builder.From(crawlResultsTable).
		Where(goqu.I("business_id").Eq(uuid.UUID(businessID))).
		Order(goqu.I("fetched_at").Desc(), goqu.I("id").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch latest crawl result: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) StoreFingerprint(ctx context.Context, fp domain.Fingerprint) (*domain.Fingerprint, error) {
	var row PgFingerprint
	if err := row.FromDomain(fp); err != nil {
		return nil, err
	}

	var result PgFingerprint
	found, err := p.Builder.Insert(fingerprintsTable).
		Rows(row).
		Returning(&PgFingerprint{}).
		Executor().ScanStructContext(ctx, &result)
	if err != nil {
		return nil, fmt.Errorf("could not store fingerprint into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("insert returned no row")
	}

	return result.ToDomain()
}

func (p *PgSQL) LatestFingerprint(ctx context.Context, businessID domain.BusinessID) (*domain.Fingerprint, error) {
	var row PgFingerprint
	found, err := p.Builder.From(fingerprintsTable).
		Where(goqu.I("business_id").Eq(uuid.UUID(businessID))).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(1).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch latest fingerprint: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// BusinessFingerprints returns fingerprint history for a business, newest
// first, with cursor pagination over created_at.
func (p *PgSQL) BusinessFingerprints(ctx context.Context,
	businessID domain.BusinessID,
	cursor time.Time,
	limit uint) (storage.FingerprintPage, error) {
	w := []goqu.Expression{
		goqu.I("business_id").Eq(uuid.UUID(businessID)),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	var rows []PgFingerprint
	if err := p.Builder.From(fingerprintsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.FingerprintPage{}, fmt.Errorf("could not fetch fingerprints from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	fps, err := pgFingerprintsToDomain(rows)
	if err != nil {
		return storage.FingerprintPage{}, err
	}

	return storage.FingerprintPage{
		Fingerprints: fps,
		NextCursor:   nextCursor,
	}, nil
}

// ReplaceCompetitors swaps the competitor set for a business. Runs as a delete
// plus insert; callers wanting atomicity should invoke it inside WithTx.
func (p *PgSQL) ReplaceCompetitors(ctx context.Context,
	businessID domain.BusinessID,
	competitors []domain.Competitor) error {
	if _, err := p.Builder.Delete(competitorsTable).
		Where(goqu.I("business_id").Eq(uuid.UUID(businessID))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not clear competitors in pg: %w", err)
	}

	if len(competitors) == 0 {
		return nil
	}

	rows := make([]PgCompetitor, 0, len(competitors))
	for _, c := range competitors {
		rows = append(rows, PgCompetitor{
			BusinessID: uuid.UUID(businessID),
			Name:       c.Name,
			Mentions:   c.Mentions,
		})
	}

	if _, err := p.Builder.Insert(competitorsTable).
		Rows(rows).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not store competitors into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) BusinessCompetitors(ctx context.Context,
	businessID domain.BusinessID) ([]domain.Competitor, error) {
	var rows []PgCompetitor
	if err := p.Builder.From(competitorsTable).
		Where(goqu.I("business_id").Eq(uuid.UUID(businessID))).
		Order(goqu.I("mentions").Desc(), goqu.I("name").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch competitors from pg: %w", err)
	}

	out := make([]domain.Competitor, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out, nil
}

// UpsertWikidataEntity inserts or updates the single Wikidata entity row kept
// per business.
func (p *PgSQL) UpsertWikidataEntity(ctx context.Context, entity domain.WikidataEntity) error {
	var row PgWikidataEntity
	if err := row.FromDomain(entity); err != nil {
		return err
	}

	if _, err := p.Builder.Insert(wikidataEntitiesTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("business_id", goqu.Record{
			"qid":          row.QID,
			"labels":       row.Labels,
			"descriptions": row.Descriptions,
			"status":       row.Status,
			"published_at": row.PublishedAt,
		})).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not upsert wikidata entity into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) WikidataEntityByBusiness(ctx context.Context,
	businessID domain.BusinessID) (*domain.WikidataEntity, error) {
	var row PgWikidataEntity
	found, err := p.Builder.From(wikidataEntitiesTable).
		Where(goqu.I("business_id").Eq(uuid.UUID(businessID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch wikidata entity: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
