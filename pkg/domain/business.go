package domain

import (
	"time"

	"github.com/google/uuid"
)

// BusinessID uniquely identifies a business.
// It wraps uuid.UUID to provide type safety at the domain layer.
type BusinessID uuid.UUID

// BusinessStatus represents the lifecycle state of a business inside the
// crawl/fingerprint/publish pipeline.
type BusinessStatus string

const (
	// BusinessStatusPending indicates the business has been created but no
	// pipeline run has started yet.
	BusinessStatusPending BusinessStatus = "PENDING"
	// BusinessStatusCrawling indicates the crawl stage is in progress.
	BusinessStatusCrawling BusinessStatus = "CRAWLING"
	// BusinessStatusFingerprinting indicates the LLM fingerprint stage is in progress.
	BusinessStatusFingerprinting BusinessStatus = "FINGERPRINTING"
	// BusinessStatusPublishing indicates the Wikidata publish stage is in progress.
	BusinessStatusPublishing BusinessStatus = "PUBLISHING"
	// BusinessStatusCompleted indicates all applicable pipeline stages finished.
	BusinessStatusCompleted BusinessStatus = "COMPLETED"
	// BusinessStatusFailed indicates the pipeline gave up; see LastError and Attempts.
	BusinessStatusFailed BusinessStatus = "FAILED"
)

// StageFlags records which pipeline stages have completed for a business.
// The flags survive retries so that a failed run resumes at the first
// incomplete stage instead of redoing finished work.
type StageFlags struct {
	// CrawlDone is set once the website crawl succeeded and a crawl result was stored.
	CrawlDone bool `json:"crawlDone"`
	// FingerprintDone is set once a visibility fingerprint was computed and stored.
	FingerprintDone bool `json:"fingerprintDone"`
	// PublishDone is set once the Wikidata entity was published (or publishing
	// is not applicable for the team's plan).
	PublishDone bool `json:"publishDone"`
}

// Business represents a business profile tracked by a team. The URL is stored
// in normalized form and drives pipeline job dedup across teams.
type Business struct {
	// ID is the unique identifier of the business.
	ID BusinessID `json:"id"`
	// TeamID is the identifier of the team that owns this business.
	TeamID TeamID `json:"teamId"`

	// Name is the display name of the business.
	Name string `json:"name"`
	// URL is the normalized website address of the business.
	URL string `json:"url"`
	// Description is an optional free-form description, usually filled from the crawl.
	Description string `json:"description,omitempty"`
	// Category is an optional business category (e.g. "restaurant").
	Category string `json:"category,omitempty"`
	// City is the optional city of the business.
	City string `json:"city,omitempty"`
	// Country is the optional ISO country of the business.
	Country string `json:"country,omitempty"`

	// Status is the current pipeline lifecycle state.
	Status BusinessStatus `json:"status"`
	// Stages records which pipeline stages have completed.
	Stages StageFlags `json:"stages"`
	// WikidataQID is the Wikidata item identifier once published (e.g. "Q42").
	WikidataQID string `json:"wikidataQid,omitempty"`

	// Attempts is the number of pipeline run attempts made for this business.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent pipeline error message, if any.
	LastError string `json:"-"`

	// CreatedAt is the time when the business was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the business was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the business was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}

// Live reports whether the business is not soft-deleted.
func (b *Business) Live() bool { return b.DeletedAt.IsZero() }
