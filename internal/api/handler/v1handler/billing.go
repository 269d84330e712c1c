package v1handler

import (
	"io"
	"net/http"

	"gemflush/pkg/domain"
	"gemflush/pkg/serrors"
)

// maxWebhookBody bounds the size of accepted Stripe webhook payloads.
const maxWebhookBody = 1 << 20

// checkoutRequest is the payload for POST /v1/billing/checkout.
type checkoutRequest struct {
	Plan string `json:"plan"`
}

// sessionResponse carries the URL of a created Stripe session.
type sessionResponse struct {
	URL string `json:"url"`
}

// CreateCheckout starts a subscription checkout for a paid plan. Only team
// owners can manage billing.
func (h *Handler) CreateCheckout(w http.ResponseWriter, r *http.Request) {
	if err := h.requireOwner(r); err != nil {
		respondError(w, r, err)

		return
	}

	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)

		return
	}

	url, err := h.deps.Billing.CreateCheckoutSession(r.Context(),
		GetTeamFromContext(r.Context()),
		domain.PlanName(req.Plan))
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, sessionResponse{URL: url})
}

// CreatePortal opens the Stripe customer portal for the team.
func (h *Handler) CreatePortal(w http.ResponseWriter, r *http.Request) {
	if err := h.requireOwner(r); err != nil {
		respondError(w, r, err)

		return
	}

	url, err := h.deps.Billing.CreatePortalSession(r.Context(), GetTeamFromContext(r.Context()))
	if err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, sessionResponse{URL: url})
}

// StripeWebhook processes Stripe events. The route is unauthenticated, the
// payload is verified against the webhook signing secret instead.
func (h *Handler) StripeWebhook(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		respondError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read payload"))

		return
	}

	if err := h.deps.Billing.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature")); err != nil {
		respondError(w, r, err)

		return
	}

	respondJSON(w, http.StatusOK, struct{}{})
}

// requireOwner ensures the authenticated user has the owner role.
func (h *Handler) requireOwner(r *http.Request) error {
	user, err := h.deps.Storage.UserByID(r.Context(), GetUserIDFromContext(r.Context()))
	if err != nil {
		return err
	}
	if user == nil || user.Role != domain.RoleOwner {
		return serrors.With(serrors.ErrForbidden, "only team owners can manage billing")
	}

	return nil
}
