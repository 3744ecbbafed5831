package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mvdcruz/invitation-rsvp/internal/service"
)

// Verifier validates a bearer token and returns the identity it carries.
// *service.AuthService implements it; tests inject a fake.
type Verifier interface {
	Verify(token string) (service.Identity, error)
}

type contextKey struct{ name string }

// identityKey stores the verified service.Identity on the request context.
var identityKey = &contextKey{"identity"}

// IdentityFromContext returns the verified identity set by RequireRole,
// or false when the request never passed through the auth middleware.
func IdentityFromContext(ctx context.Context) (service.Identity, bool) {
	id, ok := ctx.Value(identityKey).(service.Identity)
	return id, ok
}

// RequireRole returns a middleware that rejects requests lacking a valid
// bearer token for one of the allowed roles. An admin token satisfies a
// guest requirement; the reverse does not hold.
//
// Browsers cannot set headers on EventSource requests, so the stream
// endpoint's token may arrive as an access_token query parameter instead.
func RequireRole(verify Verifier, roles ...service.Role) func(http.Handler) http.Handler {
	allowed := make(map[service.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			id, err := verify.Verify(token)
			if err != nil {
				unauthorized(w, "invalid or expired token")
				return
			}
			if !allowed[id.Role] && !(id.Role == service.RoleAdmin && allowed[service.RoleGuest]) {
				unauthorized(w, "insufficient role")
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from the Authorization header, falling back
// to the access_token query parameter for EventSource connections.
func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return r.URL.Query().Get("access_token")
}

// unauthorized writes the same JSON error envelope the handlers use.
// Duplicated here rather than imported to keep middleware free of a
// dependency on the handler package.
func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	//nolint:errcheck — nothing useful to do with a failed error write.
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{"code": "unauthorized", "message": message},
	})
}
