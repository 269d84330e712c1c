package v1handler

import (
	"net/http"

	"gemflush/pkg/domain"
)

// fingerprintList is the paginated response for GET /v1/businesses/{id}/fingerprints.
type fingerprintList struct {
	Items      []domain.Fingerprint `json:"items"`
	NextCursor string               `json:"nextCursor,omitempty"`
}

// competitorList is the response for GET /v1/businesses/{id}/competitors.
type competitorList struct {
	Items []domain.Competitor `json:"items"`
}

// GetFingerprint returns the latest visibility fingerprint of a business.
func (h *Handler) GetFingerprint(w http.ResponseWriter, r *http.Request) {
	id, err := businessIDParam(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	fp, err := h.deps.Pipeline.LatestFingerprint(r.Context(), GetTeamFromContext(r.Context()).ID, id)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, fp)
}

// ListFingerprints returns the fingerprint history of a business, newest first.
func (h *Handler) ListFingerprints(w http.ResponseWriter, r *http.Request) {
	id, err := businessIDParam(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	fingerprints, nextCursor, err := h.deps.Pipeline.Fingerprints(r.Context(),
		GetTeamFromContext(r.Context()).ID,
		id,
		r.URL.Query().Get("cursor"),
		DefaultLimit)
	if err != nil {
		respondError(w, r, err)

		return
	}

	if fingerprints == nil {
		fingerprints = []domain.Fingerprint{}
	}

	respondJSON(w, http.StatusOK, fingerprintList{Items: fingerprints, NextCursor: nextCursor})
}

// ListCompetitors returns the competitors surfaced for a business, most
// mentioned first.
func (h *Handler) ListCompetitors(w http.ResponseWriter, r *http.Request) {
	id, err := businessIDParam(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	competitors, err := h.deps.Pipeline.Competitors(r.Context(), GetTeamFromContext(r.Context()).ID, id)
	if err != nil {
		respondError(w, r, err)

		return
	}

	if competitors == nil {
		competitors = []domain.Competitor{}
	}

	respondJSON(w, http.StatusOK, competitorList{Items: competitors})
}
