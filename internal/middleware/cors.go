package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/cors"
)

var allMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodConnect,
	http.MethodTrace,
}

func normalizeOrigin(origin string) string {
	return strings.TrimRight(strings.TrimSpace(origin), "/")
}

// CORS allows the single frontend origin with any method and header, and
// credentials.
func CORS(frontendURL string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{normalizeOrigin(frontendURL)},
		AllowedMethods:   allMethods,
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
}

// RestrictOrigin rejects any request whose Origin header is not the
// frontend origin. Requests without an Origin header pass through.
func RestrictOrigin(frontendURL string) func(http.Handler) http.Handler {
	allowed := normalizeOrigin(frontendURL)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && (allowed == "" || !strings.EqualFold(normalizeOrigin(origin), allowed)) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
