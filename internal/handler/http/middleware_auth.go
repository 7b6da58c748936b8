package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the decoded identity in the request context with [utils.WithIdentity]
// before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrNoToken]).
//   - The header value is not a bearer token ([ErrMalformedAuthorization]).
//   - The token has expired ([service.ErrTokenIsExpired]).
//   - The token is otherwise invalid ([service.ErrTokenIsExpiredOrInvalid]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := h.identityFromRequest(r)
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("request rejected by auth middleware")
			writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), identity)))
	})
}

// optionalAuth decodes the bearer token like auth does, but a missing or
// invalid token lets the request through as anonymous.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, err := h.identityFromRequest(r)
		if err != nil {
			if !errors.Is(err, ErrNoToken) {
				logger.FromRequest(r).Debug().Err(err).Msg("ignoring invalid token on public route")
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(r.Context(), identity)))
	})
}

func (h *Handler) identityFromRequest(r *http.Request) (models.Identity, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return models.Identity{}, ErrNoToken
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return models.Identity{}, fmt.Errorf("%w: %w", ErrMalformedAuthorization, err)
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
	if err != nil {
		return models.Identity{}, err
	}

	return token.Identity(), nil
}
