package http

import (
	"net/http"

	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/service"
	"github.com/MKhiriev/go-estate/internal/utils"
	"github.com/MKhiriev/go-estate/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, verifies it
// via [service.AuthService.ParseToken] and stores the resulting
// [models.AuthenticatedUser] in the request context. Requests without a
// valid token are rejected with 401. Caller identity is never taken from any
// other header.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := h.authenticate(r)
		if err != nil {
			writeError(w, r, "*Handler.auth", err)
			return
		}

		next.ServeHTTP(w, withCaller(r, user))
	})
}

// optionalAuth attaches the caller identity when a valid token is present.
// A missing or bad token leaves the request anonymous.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.authenticate(r)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.optionalAuth").Msg("continuing anonymously")
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, withCaller(r, user))
	})
}

// requireRole rejects authenticated callers whose role differs from role.
// It must run after auth.
func requireRole(role models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetAuthenticatedUserFromContext(r.Context())
			if !ok {
				writeError(w, r, "requireRole", service.ErrUnauthorized)
				return
			}
			if !user.HasRole(role) {
				writeError(w, r, "requireRole", service.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (h *Handler) authenticate(r *http.Request) (models.AuthenticatedUser, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return models.AuthenticatedUser{}, ErrEmptyAuthorizationHeader
	}

	tokenString, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return models.AuthenticatedUser{}, ErrInvalidAuthorizationHeader
	}

	return h.services.AuthService.ParseToken(r.Context(), tokenString)
}

// withCaller stores user in the request context together with a logger
// tagged with the user's id and role.
func withCaller(r *http.Request, user models.AuthenticatedUser) *http.Request {
	ctx := utils.WithAuthenticatedUser(r.Context(), user)
	ctx = logger.FromRequest(r).WithUser(user.UserID, string(user.Role)).WithContext(ctx)
	return r.WithContext(ctx)
}

// callerFromRequest returns the authenticated caller or nil for anonymous
// requests.
func callerFromRequest(r *http.Request) *models.AuthenticatedUser {
	user, ok := utils.GetAuthenticatedUserFromContext(r.Context())
	if !ok {
		return nil
	}
	return &user
}
