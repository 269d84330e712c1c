package v1handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gemflush/internal/pipeline"
	"gemflush/pkg/domain"
	"gemflush/pkg/serrors"
)

// createBusinessRequest is the payload for POST /v1/businesses.
type createBusinessRequest struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Category    string `json:"category"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

// businessList is the paginated response for GET /v1/businesses.
type businessList struct {
	Items      []domain.Business `json:"items"`
	NextCursor string            `json:"nextCursor,omitempty"`
}

// CreateBusiness registers a new business and schedules its first pipeline run.
func (h *Handler) CreateBusiness(w http.ResponseWriter, r *http.Request) {
	var req createBusinessRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)

		return
	}

	business, err := h.deps.Pipeline.Create(r.Context(), GetTeamFromContext(r.Context()), pipeline.CreateBusinessInput{
		Name:        req.Name,
		URL:         req.URL,
		Description: req.Description,
		Category:    req.Category,
		City:        req.City,
		Country:     req.Country,
	})
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusCreated, business)
}

// ListBusinesses returns a paginated list of the team's businesses.
func (h *Handler) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	team := GetTeamFromContext(r.Context())

	limit := uint(DefaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			respondError(w, r, serrors.With(serrors.ErrBadRequest, "invalid limit"))

			return
		}
		limit = uint(parsed)
	}

	businesses, nextCursor, err := h.deps.Pipeline.TeamBusinesses(r.Context(),
		team.ID,
		domain.BusinessStatus(r.URL.Query().Get("status")),
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		respondError(w, r, err)

		return
	}

	if businesses == nil {
		businesses = []domain.Business{}
	}

	respondJSON(w, http.StatusOK, businessList{Items: businesses, NextCursor: nextCursor})
}

// GetBusiness returns a single business by ID.
func (h *Handler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := businessIDParam(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	business, err := h.deps.Pipeline.Business(r.Context(), GetTeamFromContext(r.Context()).ID, id)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, business)
}

// DeleteBusiness removes a business by ID.
func (h *Handler) DeleteBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := businessIDParam(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	if err := h.deps.Pipeline.Delete(r.Context(), GetTeamFromContext(r.Context()).ID, id); err != nil {
		respondError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RefreshBusiness schedules a fresh pipeline run for a business, subject to
// the plan's refresh interval.
func (h *Handler) RefreshBusiness(w http.ResponseWriter, r *http.Request) {
	id, err := businessIDParam(r)
	if err != nil {
		respondError(w, r, err)

		return
	}

	business, err := h.deps.Pipeline.Refresh(r.Context(), GetTeamFromContext(r.Context()), id)
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusAccepted, business)
}

func businessIDParam(r *http.Request) (domain.BusinessID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return domain.BusinessID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid business ID")
	}

	return domain.BusinessID(id), nil
}
