package rest

import (
	"log/slog"
	"net/http"

	"github.com/heartmarshall/phonics-backend/internal/config"
	"github.com/heartmarshall/phonics-backend/internal/transport/middleware"
)

// RouterDeps carries everything NewRouter mounts. Auth and Limiter are
// optional.
type RouterDeps struct {
	Phonemes *PhonemeHandler
	Health   *HealthHandler
	Admin    *AdminHandler

	Auth    middleware.Middleware
	Limiter *middleware.RateLimiter
	// RequestsPerMinute applies to /api routes when Limiter is set.
	RequestsPerMinute int

	CORS   config.CORSConfig
	Logger *slog.Logger
}

// NewRouter builds the HTTP handler. Probes sit outside rate limiting and
// authentication; every route shares request ids, access logs, panic recovery
// and CORS.
func NewRouter(d RouterDeps) http.Handler {
	var limit middleware.Middleware
	if d.Limiter != nil && d.RequestsPerMinute > 0 {
		limit = d.Limiter.Limit(d.RequestsPerMinute)
	}
	api := middleware.Chain(limit, d.Auth)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", d.Health.Live)
	mux.HandleFunc("GET /ready", d.Health.Ready)
	mux.HandleFunc("GET /health", d.Health.Health)

	mux.Handle("POST /api/phonemes/resolve", api(http.HandlerFunc(d.Phonemes.Resolve)))
	mux.Handle("GET /api/phonemes", api(http.HandlerFunc(d.Phonemes.Browse)))

	if d.Admin != nil {
		mux.Handle("GET /admin/usage/top", api(http.HandlerFunc(d.Admin.TopPhonemes)))
	}

	return middleware.Chain(
		middleware.RequestID,
		middleware.Logger(d.Logger),
		middleware.Recovery(d.Logger),
		middleware.CORS(d.CORS),
	)(mux)
}
