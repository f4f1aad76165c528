package middleware

import (
	"net/http"

	"github.com/tobbylie/blog/internal/config"
	"github.com/tobbylie/blog/internal/ctxkeys"
)

// Config middleware adds the sanitized app configuration to the request context.
// S3 credentials and the Sentry DSN are excluded.
func Config(cfg *config.Config) func(http.Handler) http.Handler {
	safe := cfg.Sanitized()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxkeys.WithConfig(r.Context(), safe)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
