package middleware

import (
	"net/http"
	"strings"

	"github.com/eshabeddings/catalog-service/internal/session"
)

// AdminSession middleware protects the admin surface. It expects the
// session token issued at login as a Bearer token in the Authorization
// header and rejects missing, invalid, expired or revoked tokens.
func AdminSession(sessions *session.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")

			if header == "" {
				http.Error(w, "Unauthorized: session token required", http.StatusUnauthorized)
				return
			}

			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				http.Error(w, "Unauthorized: malformed Authorization header", http.StatusUnauthorized)
				return
			}

			if _, err := sessions.Verify(token); err != nil {
				http.Error(w, "Unauthorized: "+err.Error(), http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
