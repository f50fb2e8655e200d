package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/phonics-backend/internal/auth"
	"github.com/heartmarshall/phonics-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (auth.Principal, error)
}

// Auth attaches the bearer token's subject and role to the context. Requests
// without a bearer token pass through anonymously; a token that fails
// validation is rejected with 401.
func Auth(validator tokenValidator, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}

			p, err := validator.ValidateAccessToken(token)
			if err != nil {
				logger.DebugContext(r.Context(), "token rejected",
					slog.String("error", err.Error()),
					slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
				)
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), p.Subject)
			ctx = ctxutil.WithRole(ctx, p.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < len("Bearer ") || !strings.EqualFold(h[:len("Bearer ")], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[len("Bearer "):])
}
