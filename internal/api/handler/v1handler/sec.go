package v1handler

import (
	"context"
	"crypto/rsa"
	"net/http"
	"strings"

	"emailfinder/internal/config"
	"emailfinder/pkg/domain"
	"emailfinder/pkg/logger"
	"emailfinder/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ctxKey string

// UserIDKey is the context key of the authenticated domain.UserID.
const UserIDKey ctxKey = "userID"

// SecHandlerOptions configure bearer token authentication.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key verifying RS256 tokens. When empty
	// authentication is disabled and every request acts as the nil user.
	PublicKey string
}

func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

type SecHandler struct {
	key *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not parse JWT public key")
	}

	return &SecHandler{key: key}, nil
}

// Enabled reports whether tokens are verified.
func (s *SecHandler) Enabled() bool {
	return s.key != nil
}

// HandleBearerAuth verifies an RS256 token and stores its subject, a user
// UUID, in the returned context.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	ctx = logger.WithFields(ctx, zap.String("userID", userID.String()))

	return context.WithValue(ctx, UserIDKey, domain.UserID(userID)), nil
}

// Middleware authenticates requests from the Authorization header.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.Enabled() {
			next.ServeHTTP(w, r)

			return
		}

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || token == "" {
			writeUnauthorized(w, r, serrors.With(serrors.ErrUnauthorized, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), strings.TrimSpace(token))
		if err != nil {
			writeUnauthorized(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	(&Handler{}).writeError(w, r, err)
}

// GetUserIDFromContext returns the authenticated user, or the nil user when
// authentication is disabled.
func GetUserIDFromContext(ctx context.Context) domain.UserID {
	if id, ok := ctx.Value(UserIDKey).(domain.UserID); ok {
		return id
	}

	return domain.UserID(uuid.Nil)
}
