package domain

import "time"

// WikidataStatus represents the publish state of a Wikidata entity.
type WikidataStatus string

const (
	// WikidataStatusPending indicates the entity has not been published yet.
	WikidataStatusPending WikidataStatus = "PENDING"
	// WikidataStatusPublished indicates the entity exists on Wikidata; see QID.
	WikidataStatusPublished WikidataStatus = "PUBLISHED"
	// WikidataStatusFailed indicates the last publish attempt failed.
	WikidataStatusFailed WikidataStatus = "FAILED"
)

// WikidataEntity is the structured record published to Wikidata for a business.
type WikidataEntity struct {
	// BusinessID is the business this entity represents.
	BusinessID BusinessID `json:"businessId"`

	// QID is the Wikidata item identifier (e.g. "Q42"); empty until published.
	QID string `json:"qid,omitempty"`
	// Labels maps language codes to the item label.
	Labels map[string]string `json:"labels,omitempty"`
	// Descriptions maps language codes to the item description.
	Descriptions map[string]string `json:"descriptions,omitempty"`
	// Status is the current publish state.
	Status WikidataStatus `json:"status"`

	// PublishedAt is when the entity was successfully published; zero until then.
	PublishedAt time.Time `json:"publishedAt,omitempty"`
}
