package middleware

import (
	"net/http"
	"slices"

	"go.uber.org/zap"
)

// CORS creates a middleware that handles CORS headers for the given origins.
// Outside production any origin is echoed back.
func CORS(allowedOrigins []string, production bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			switch {
			case isAllowedOrigin(origin, allowedOrigins):
				w.Header().Set("Access-Control-Allow-Origin", origin)
			case origin != "" && !production:
				zap.L().Debug("Development mode: allowing origin", zap.String("origin", origin))
				w.Header().Set("Access-Control-Allow-Origin", origin)
			case len(allowedOrigins) > 0:
				w.Header().Set("Access-Control-Allow-Origin", allowedOrigins[0])
			}
			w.Header().Add("Vary", "Origin")

			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
			w.Header().Set("Access-Control-Allow-Headers",
				"Content-Type, Authorization, X-Requested-With, Accept, Origin, Access-Control-Request-Method, Access-Control-Request-Headers")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Max-Age", "3600") // Cache preflight request results

			// Handle preflight requests
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// isAllowedOrigin checks if the provided origin is in the allowed list
func isAllowedOrigin(origin string, allowedOrigins []string) bool {
	return origin != "" && slices.Contains(allowedOrigins, origin)
}
