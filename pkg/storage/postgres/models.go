package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"gemflush/pkg/domain"

	"github.com/google/uuid"
)

type PgBusiness struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	TeamID uuid.UUID `db:"team_id"`

	Name        string         `db:"name"`
	URL         string         `db:"url"`
	Description sql.NullString `db:"description"`
	Category    sql.NullString `db:"category"`
	City        sql.NullString `db:"city"`
	Country     sql.NullString `db:"country"`

	Status          string         `db:"status"`
	CrawlDone       bool           `db:"crawl_done"       goqu:"skipinsert"`
	FingerprintDone bool           `db:"fingerprint_done" goqu:"skipinsert"`
	PublishDone     bool           `db:"publish_done"     goqu:"skipinsert"`
	WikidataQID     sql.NullString `db:"wikidata_qid"     goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgBusiness) ToDomain() *domain.Business {
	return &domain.Business{
		ID:          domain.BusinessID(p.ID),
		TeamID:      domain.TeamID(p.TeamID),
		Name:        p.Name,
		URL:         p.URL,
		Description: p.Description.String,
		Category:    p.Category.String,
		City:        p.City.String,
		Country:     p.Country.String,
		Status:      domain.BusinessStatus(p.Status),
		Stages: domain.StageFlags{
			CrawlDone:       p.CrawlDone,
			FingerprintDone: p.FingerprintDone,
			PublishDone:     p.PublishDone,
		},
		WikidataQID: p.WikidataQID.String,
		Attempts:    p.Attempts,
		LastError:   p.LastError.String,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
		DeletedAt:   p.DeletedAt.Time,
	}
}

func (p *PgBusiness) FromDomain(b domain.Business) {
	*p = PgBusiness{
		ID:              uuid.UUID(b.ID),
		TeamID:          uuid.UUID(b.TeamID),
		Name:            b.Name,
		URL:             b.URL,
		Description:     nullString(b.Description),
		Category:        nullString(b.Category),
		City:            nullString(b.City),
		Country:         nullString(b.Country),
		Status:          string(b.Status),
		CrawlDone:       b.Stages.CrawlDone,
		FingerprintDone: b.Stages.FingerprintDone,
		PublishDone:     b.Stages.PublishDone,
		WikidataQID:     nullString(b.WikidataQID),
		Attempts:        b.Attempts,
		LastError:       nullString(b.LastError),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       nullTime(b.UpdatedAt),
		DeletedAt:       nullTime(b.DeletedAt),
	}
}

func pgBusinessesToDomain(rows []PgBusiness) []domain.Business {
	out := make([]domain.Business, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

type PgCrawlResult struct {
	ID         int64     `db:"id" goqu:"skipinsert"`
	BusinessID uuid.UUID `db:"business_id"`

	URL         string          `db:"url"`
	Title       sql.NullString  `db:"title"`
	Description sql.NullString  `db:"description"`
	Content     sql.NullString  `db:"content"`
	Metadata    json.RawMessage `db:"metadata"`

	FetchedAt time.Time `db:"fetched_at"`
}

func (p *PgCrawlResult) ToDomain() (*domain.CrawlResult, error) {
	var meta map[string]string
	if len(p.Metadata) > 0 {
		if err := json.Unmarshal(p.Metadata, &meta); err != nil {
			return nil, fmt.Errorf("could not unmarshal crawl metadata: %w", err)
		}
	}

	return &domain.CrawlResult{
		BusinessID:  domain.BusinessID(p.BusinessID),
		URL:         p.URL,
		Title:       p.Title.String,
		Description: p.Description.String,
		Content:     p.Content.String,
		Metadata:    meta,
		FetchedAt:   p.FetchedAt,
	}, nil
}

func (p *PgCrawlResult) FromDomain(r domain.CrawlResult) error {
	meta, err := json.Marshal(r.Metadata)
	if err != nil {
		return fmt.Errorf("could not marshal crawl metadata: %w", err)
	}

	*p = PgCrawlResult{
		BusinessID:  uuid.UUID(r.BusinessID),
		URL:         r.URL,
		Title:       nullString(r.Title),
		Description: nullString(r.Description),
		Content:     nullString(r.Content),
		Metadata:    meta,
		FetchedAt:   r.FetchedAt,
	}

	return nil
}

type PgFingerprint struct {
	ID         uuid.UUID `db:"id" goqu:"skipinsert"`
	BusinessID uuid.UUID `db:"business_id"`

	VisibilityScore int             `db:"visibility_score"`
	ModelResults    json.RawMessage `db:"model_results"`
	Summary         sql.NullString  `db:"summary"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgFingerprint) ToDomain() (*domain.Fingerprint, error) {
	var results []domain.ModelResult
	if len(p.ModelResults) > 0 {
		if err := json.Unmarshal(p.ModelResults, &results); err != nil {
			return nil, fmt.Errorf("could not unmarshal model results: %w", err)
		}
	}

	return &domain.Fingerprint{
		ID:              domain.FingerprintID(p.ID),
		BusinessID:      domain.BusinessID(p.BusinessID),
		VisibilityScore: p.VisibilityScore,
		ModelResults:    results,
		Summary:         p.Summary.String,
		CreatedAt:       p.CreatedAt,
	}, nil
}

func (p *PgFingerprint) FromDomain(fp domain.Fingerprint) error {
	results, err := json.Marshal(fp.ModelResults)
	if err != nil {
		return fmt.Errorf("could not marshal model results: %w", err)
	}

	*p = PgFingerprint{
		ID:              uuid.UUID(fp.ID),
		BusinessID:      uuid.UUID(fp.BusinessID),
		VisibilityScore: fp.VisibilityScore,
		ModelResults:    results,
		Summary:         nullString(fp.Summary),
		CreatedAt:       fp.CreatedAt,
	}

	return nil
}

func pgFingerprintsToDomain(rows []PgFingerprint) ([]domain.Fingerprint, error) {
	out := make([]domain.Fingerprint, 0, len(rows))
	for i := range rows {
		d, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

type PgCompetitor struct {
	ID         int64     `db:"id" goqu:"skipinsert"`
	BusinessID uuid.UUID `db:"business_id"`

	Name     string `db:"name"`
	Mentions int    `db:"mentions"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgCompetitor) ToDomain() *domain.Competitor {
	return &domain.Competitor{
		BusinessID: domain.BusinessID(p.BusinessID),
		Name:       p.Name,
		Mentions:   p.Mentions,
		CreatedAt:  p.CreatedAt,
	}
}

type PgWikidataEntity struct {
	ID         int64     `db:"id" goqu:"skipinsert"`
	BusinessID uuid.UUID `db:"business_id"`

	QID          sql.NullString  `db:"qid"`
	Labels       json.RawMessage `db:"labels"`
	Descriptions json.RawMessage `db:"descriptions"`
	Status       string          `db:"status"`

	PublishedAt sql.NullTime `db:"published_at"`
}

func (p *PgWikidataEntity) ToDomain() (*domain.WikidataEntity, error) {
	var labels, descriptions map[string]string
	if len(p.Labels) > 0 {
		if err := json.Unmarshal(p.Labels, &labels); err != nil {
			return nil, fmt.Errorf("could not unmarshal labels: %w", err)
		}
	}
	if len(p.Descriptions) > 0 {
		if err := json.Unmarshal(p.Descriptions, &descriptions); err != nil {
			return nil, fmt.Errorf("could not unmarshal descriptions: %w", err)
		}
	}

	return &domain.WikidataEntity{
		BusinessID:   domain.BusinessID(p.BusinessID),
		QID:          p.QID.String,
		Labels:       labels,
		Descriptions: descriptions,
		Status:       domain.WikidataStatus(p.Status),
		PublishedAt:  p.PublishedAt.Time,
	}, nil
}

func (p *PgWikidataEntity) FromDomain(e domain.WikidataEntity) error {
	labels, err := json.Marshal(e.Labels)
	if err != nil {
		return fmt.Errorf("could not marshal labels: %w", err)
	}
	descriptions, err := json.Marshal(e.Descriptions)
	if err != nil {
		return fmt.Errorf("could not marshal descriptions: %w", err)
	}

	*p = PgWikidataEntity{
		BusinessID:   uuid.UUID(e.BusinessID),
		QID:          nullString(e.QID),
		Labels:       labels,
		Descriptions: descriptions,
		Status:       string(e.Status),
		PublishedAt:  nullTime(e.PublishedAt),
	}

	return nil
}

type PgTeam struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Name string `db:"name"`

	StripeCustomerID     sql.NullString `db:"stripe_customer_id"`
	StripeSubscriptionID sql.NullString `db:"stripe_subscription_id"`
	StripeProductID      sql.NullString `db:"stripe_product_id"`
	PlanName             string         `db:"plan_name"`
	SubscriptionStatus   sql.NullString `db:"subscription_status"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgTeam) ToDomain() *domain.Team {
	return &domain.Team{
		ID:                   domain.TeamID(p.ID),
		Name:                 p.Name,
		StripeCustomerID:     p.StripeCustomerID.String,
		StripeSubscriptionID: p.StripeSubscriptionID.String,
		StripeProductID:      p.StripeProductID.String,
		Plan:                 domain.PlanName(p.PlanName),
		SubscriptionStatus:   domain.SubscriptionStatus(p.SubscriptionStatus.String),
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt.Time,
		DeletedAt:            p.DeletedAt.Time,
	}
}

func (p *PgTeam) FromDomain(t domain.Team) {
	plan := t.Plan
	if plan == "" {
		plan = domain.PlanFree
	}

	*p = PgTeam{
		ID:                   uuid.UUID(t.ID),
		Name:                 t.Name,
		StripeCustomerID:     nullString(t.StripeCustomerID),
		StripeSubscriptionID: nullString(t.StripeSubscriptionID),
		StripeProductID:      nullString(t.StripeProductID),
		PlanName:             string(plan),
		SubscriptionStatus:   nullString(string(t.SubscriptionStatus)),
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            nullTime(t.UpdatedAt),
		DeletedAt:            nullTime(t.DeletedAt),
	}
}

type PgUser struct {
	ID     uuid.UUID `db:"id" goqu:"skipinsert"`
	TeamID uuid.UUID `db:"team_id"`

	Email string         `db:"email"`
	Name  sql.NullString `db:"name"`
	Role  string         `db:"role"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:        domain.UserID(p.ID),
		TeamID:    domain.TeamID(p.TeamID),
		Email:     p.Email,
		Name:      p.Name.String,
		Role:      domain.UserRole(p.Role),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}
}

func (p *PgUser) FromDomain(u domain.User) {
	*p = PgUser{
		ID:        uuid.UUID(u.ID),
		TeamID:    uuid.UUID(u.TeamID),
		Email:     u.Email,
		Name:      nullString(u.Name),
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: nullTime(u.UpdatedAt),
		DeletedAt: nullTime(u.DeletedAt),
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
