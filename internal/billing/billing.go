// Package billing integrates Stripe subscriptions with team plans. Checkout
// and portal sessions are created on demand, webhook events keep the locally
// stored plan in sync with the Stripe subscription state.
package billing

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"github.com/stripe/stripe-go/v78/webhook"
	"go.uber.org/zap"

	"gemflush/internal/config"
	"gemflush/pkg/domain"
	"gemflush/pkg/logger"
	"gemflush/pkg/serrors"
	"gemflush/pkg/storage"
)

// Service creates Stripe sessions and applies webhook events to teams.
type Service struct {
	cfg     config.Stripe
	stripe  *client.API
	storage storage.TeamStorage
}

// New creates a billing service. The Stripe client must already be initialized
// with the secret key.
func New(cfg config.Stripe, stripeClient *client.API, teamStorage storage.TeamStorage) *Service {
	return &Service{
		cfg:     cfg,
		stripe:  stripeClient,
		storage: teamStorage,
	}
}

// priceID returns the Stripe price for a paid plan, or empty for anything
// else.
func (s *Service) priceID(plan domain.PlanName) string {
	switch plan {
	case domain.PlanPro:
		return s.cfg.ProPriceID
	case domain.PlanAgency:
		return s.cfg.AgencyPriceID
	default:
		return ""
	}
}

// CreateCheckoutSession starts a subscription checkout for the given paid plan
// and returns the URL the user should be redirected to. The team ID travels
// as the client reference so the webhook can attach the resulting customer.
func (s *Service) CreateCheckoutSession(ctx context.Context, team *domain.Team, plan domain.PlanName) (string, error) {
	priceID := s.priceID(plan)
	if priceID == "" {
		return "", serrors.With(serrors.ErrBadRequest, "plan %q cannot be purchased", plan)
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(priceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(s.cfg.SuccessURL),
		CancelURL:         stripe.String(s.cfg.CancelURL),
		ClientReferenceID: stripe.String(uuid.UUID(team.ID).String()),
	}
	params.Context = ctx

	if team.StripeCustomerID != "" {
		params.Customer = stripe.String(team.StripeCustomerID)
	}

	session, err := s.stripe.CheckoutSessions.New(params)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnavailable, err, "cannot create checkout session")
	}

	return session.URL, nil
}

// CreatePortalSession opens the Stripe customer portal for a team that already
// has a Stripe customer attached.
func (s *Service) CreatePortalSession(ctx context.Context, team *domain.Team) (string, error) {
	if team.StripeCustomerID == "" {
		return "", serrors.With(serrors.ErrBadRequest, "team has no billing account")
	}

	params := &stripe.BillingPortalSessionParams{
		Customer:  stripe.String(team.StripeCustomerID),
		ReturnURL: stripe.String(s.cfg.ReturnURL),
	}
	params.Context = ctx

	session, err := s.stripe.BillingPortalSessions.New(params)
	if err != nil {
		return "", serrors.Wrap(serrors.ErrUnavailable, err, "cannot create portal session")
	}

	return session.URL, nil
}

// HandleWebhook verifies the Stripe signature and applies the event. Unknown
// event types are ignored.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := webhook.ConstructEvent(payload, signature, s.cfg.WebhookSecret)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid webhook signature")
	}

	return s.HandleEvent(ctx, event)
}

// HandleEvent applies a verified Stripe event to the owning team.
func (s *Service) HandleEvent(ctx context.Context, event stripe.Event) error {
	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
			return serrors.Wrap(serrors.ErrBadRequest, err, "cannot parse checkout session")
		}

		return s.applyCheckoutCompleted(ctx, &session)
	case "customer.subscription.updated":
		var subscription stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			return serrors.Wrap(serrors.ErrBadRequest, err, "cannot parse subscription")
		}

		return s.applySubscriptionUpdated(ctx, &subscription)
	case "customer.subscription.deleted":
		var subscription stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			return serrors.Wrap(serrors.ErrBadRequest, err, "cannot parse subscription")
		}

		return s.applySubscriptionDeleted(ctx, &subscription)
	default:
		logger.Debug(ctx, "ignoring stripe event", zap.String("type", string(event.Type)))

		return nil
	}
}

// applyCheckoutCompleted attaches the freshly created Stripe customer to the
// team referenced by the checkout session.
func (s *Service) applyCheckoutCompleted(ctx context.Context, session *stripe.CheckoutSession) error {
	if session.Customer == nil || session.ClientReferenceID == "" {
		return serrors.With(serrors.ErrBadRequest, "checkout session is missing customer or reference")
	}

	teamUUID, err := uuid.Parse(session.ClientReferenceID)
	if err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid team reference %q", session.ClientReferenceID)
	}

	updates := storage.TeamUpdates{
		StripeCustomerID: stripe.String(session.Customer.ID),
	}
	if session.Subscription != nil {
		updates.StripeSubscriptionID = stripe.String(session.Subscription.ID)
	}

	team, err := s.storage.UpdateTeamByID(ctx, domain.TeamID(teamUUID), updates)
	if err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "cannot attach customer to team")
	}

	if team == nil {
		return serrors.With(serrors.ErrNotFound, "team %s not found", session.ClientReferenceID)
	}

	logger.Info(ctx, "attached stripe customer to team",
		zap.String("teamID", session.ClientReferenceID),
		zap.String("customerID", session.Customer.ID))

	return nil
}

// applySubscriptionUpdated syncs the plan and subscription status from the
// subscription's first item.
func (s *Service) applySubscriptionUpdated(ctx context.Context, subscription *stripe.Subscription) error {
	team, err := s.teamForSubscription(ctx, subscription)
	if err != nil {
		return err
	}

	plan := s.planForSubscription(subscription)
	status := domain.SubscriptionStatus(subscription.Status)
	updates := storage.TeamUpdates{
		StripeSubscriptionID: stripe.String(subscription.ID),
		Plan:                 &plan,
		SubscriptionStatus:   &status,
	}
	if productID := subscriptionProductID(subscription); productID != "" {
		updates.StripeProductID = stripe.String(productID)
	}

	if _, err := s.storage.UpdateTeamByID(ctx, team.ID, updates); err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "cannot update team subscription")
	}

	logger.Info(ctx, "updated team subscription",
		zap.String("customerID", subscription.Customer.ID),
		zap.String("plan", string(plan)),
		zap.String("status", string(status)))

	return nil
}

// applySubscriptionDeleted drops the team back to the free plan.
func (s *Service) applySubscriptionDeleted(ctx context.Context, subscription *stripe.Subscription) error {
	team, err := s.teamForSubscription(ctx, subscription)
	if err != nil {
		return err
	}

	plan := domain.PlanFree
	status := domain.SubscriptionCanceled
	updates := storage.TeamUpdates{
		StripeSubscriptionID: stripe.String(""),
		StripeProductID:      stripe.String(""),
		Plan:                 &plan,
		SubscriptionStatus:   &status,
	}

	if _, err := s.storage.UpdateTeamByID(ctx, team.ID, updates); err != nil {
		return serrors.Wrap(serrors.ErrInternal, err, "cannot downgrade team")
	}

	logger.Info(ctx, "downgraded team to free plan",
		zap.String("customerID", subscription.Customer.ID))

	return nil
}

func (s *Service) teamForSubscription(ctx context.Context, subscription *stripe.Subscription) (*domain.Team, error) {
	if subscription.Customer == nil {
		return nil, serrors.With(serrors.ErrBadRequest, "subscription has no customer")
	}

	team, err := s.storage.TeamByStripeCustomer(ctx, subscription.Customer.ID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "cannot look up team for customer")
	}

	if team == nil {
		return nil, serrors.With(serrors.ErrNotFound, "no team for customer %s", subscription.Customer.ID)
	}

	return team, nil
}

// planForSubscription derives the plan from the subscription price, falling
// back to the product name when the price is not one of the configured ones.
func (s *Service) planForSubscription(subscription *stripe.Subscription) domain.PlanName {
	if subscription.Items == nil || len(subscription.Items.Data) == 0 {
		return domain.PlanFree
	}

	price := subscription.Items.Data[0].Price
	if price == nil {
		return domain.PlanFree
	}

	switch price.ID {
	case s.cfg.ProPriceID:
		return domain.PlanPro
	case s.cfg.AgencyPriceID:
		return domain.PlanAgency
	}

	if price.Product != nil {
		return NormalizePlanName(price.Product.Name)
	}

	return domain.PlanFree
}

func subscriptionProductID(subscription *stripe.Subscription) string {
	if subscription.Items == nil || len(subscription.Items.Data) == 0 {
		return ""
	}

	price := subscription.Items.Data[0].Price
	if price == nil || price.Product == nil {
		return ""
	}

	return price.Product.ID
}
