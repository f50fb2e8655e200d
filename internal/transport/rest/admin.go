package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/phonics-backend/internal/domain"
	"github.com/heartmarshall/phonics-backend/internal/transport/middleware"
)

const (
	defaultTopLimit = 10
	maxTopLimit     = 100
)

type usageReporter interface {
	TopPhonemes(ctx context.Context, limit int) ([]domain.PhonemeUsage, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	usage usageReporter
	log   *slog.Logger
}

// NewAdminHandler creates an AdminHandler. A nil reporter makes the usage
// endpoints answer 503.
func NewAdminHandler(usage usageReporter, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		usage: usage,
		log:   logger.With("handler", "admin"),
	}
}

type topPhonemeItem struct {
	PhonemeID string    `json:"phoneme_id"`
	Views     int64     `json:"views"`
	LastSeen  time.Time `json:"last_seen"`
}

type topPhonemesResponse struct {
	Phonemes []topPhonemeItem `json:"phonemes"`
}

// TopPhonemes returns the most viewed phonemes.
// GET /admin/usage/top?limit=10
func (h *AdminHandler) TopPhonemes(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, "", err)
		return
	}

	if h.usage == nil {
		writeError(w, http.StatusServiceUnavailable, "usage storage is not configured")
		return
	}

	limit := defaultTopLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxTopLimit)
	}

	rows, err := h.usage.TopPhonemes(r.Context(), limit)
	if err != nil {
		h.log.ErrorContext(r.Context(), "top phonemes", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	items := make([]topPhonemeItem, 0, len(rows))
	for _, u := range rows {
		items = append(items, topPhonemeItem{PhonemeID: u.PhonemeID, Views: u.Views, LastSeen: u.LastSeen})
	}

	writeJSON(w, http.StatusOK, topPhonemesResponse{Phonemes: items})
}
