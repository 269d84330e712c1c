package v1handler

import (
	"context"
	"crypto/rsa"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"gemflush/internal/config"
	"gemflush/pkg/domain"
	"gemflush/pkg/logger"
	"gemflush/pkg/serrors"
	"gemflush/pkg/storage"
)

type contextKey string

const (
	// UserIDKey is the context key under which the authenticated user ID is stored.
	UserIDKey contextKey = "userID"
	// TeamKey is the context key under which the authenticated user's team is stored.
	TeamKey contextKey = "team"
)

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key used to verify token signatures.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler verifies RS256 bearer tokens and resolves the authenticated user.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not parse RSA public key")
	}

	return &SecHandler{publicKey: key}, nil
}

// HandleBearerAuth validates the token signature and claims and returns a
// context carrying the authenticated user ID.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid subject")
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid subject")
	}

	return context.WithValue(ctx, UserIDKey, domain.UserID(userID)), nil
}

// Middleware authenticates requests with a bearer token, resolves the user's
// team and stores both in the request context.
func (s *SecHandler) Middleware(st storage.Storage) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				respondError(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

				return
			}

			ctx, err := s.HandleBearerAuth(r.Context(), token)
			if err != nil {
				respondError(w, r, err)

				return
			}

			userID := GetUserIDFromContext(ctx)
			user, err := st.UserByID(ctx, userID)
			if err != nil {
				respondError(w, r, err)

				return
			}
			if user == nil {
				respondError(w, r, serrors.With(serrors.ErrUnauthorized, "unknown user"))

				return
			}

			team, err := st.TeamByID(ctx, user.TeamID)
			if err != nil {
				respondError(w, r, err)

				return
			}
			if team == nil {
				respondError(w, r, serrors.With(serrors.ErrUnauthorized, "user has no team"))

				return
			}

			ctx = context.WithValue(ctx, TeamKey, team)
			ctx = logger.WithFields(ctx,
				zap.String("userID", uuid.UUID(userID).String()),
				zap.String("teamID", uuid.UUID(team.ID).String()))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(auth) <= len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return "", false
	}

	return auth[len(prefix):], true
}

// GetUserIDFromContext returns the authenticated user ID stored by the
// security middleware. The zero value is returned for unauthenticated contexts.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	if userID, ok := ctx.Value(UserIDKey).(domain.UserID); ok {
		return userID
	}

	return domain.UserID{}
}

// GetTeamFromContext returns the authenticated user's team stored by the
// security middleware, or nil for unauthenticated contexts.
func GetTeamFromContext(ctx context.Context) *domain.Team {
	if team, ok := ctx.Value(TeamKey).(*domain.Team); ok {
		return team
	}

	return nil
}
