package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/phonics-backend/internal/domain"
	"github.com/heartmarshall/phonics-backend/internal/service/phonics"
	"github.com/heartmarshall/phonics-backend/pkg/ctxutil"
)

// Suggestions are example queries returned with every resolution miss.
var Suggestions = []string{"sh", "/ch/", "short a", "long e", "m spelled mm", "th"}

type phonicsService interface {
	Resolve(ctx context.Context, input phonics.ResolveInput) (*phonics.ResolveResult, error)
	Browse(ctx context.Context, input phonics.BrowseInput) (*phonics.BrowseResult, error)
}

// PhonemeHandler serves the resolve and browse endpoints.
type PhonemeHandler struct {
	svc     phonicsService
	log     *slog.Logger
	maxBody int64
	now     func() time.Time
}

// NewPhonemeHandler creates a PhonemeHandler. Request bodies larger than
// maxBody bytes are rejected as invalid.
func NewPhonemeHandler(svc phonicsService, logger *slog.Logger, maxBody int64) *PhonemeHandler {
	return &PhonemeHandler{
		svc:     svc,
		log:     logger.With("handler", "phonemes"),
		maxBody: maxBody,
		now:     time.Now,
	}
}

type resolveRequest struct {
	PhonemeInput      string   `json:"phoneme_input"`
	SectionsRequested []string `json:"sections_requested"`
	UserID            string   `json:"user_id"`
}

type resolveResponse struct {
	Success           bool            `json:"success"`
	PhonemeData       json.RawMessage `json:"phoneme_data"`
	CorrectionMessage *string         `json:"correction_message"`
	GeneratedAt       string          `json:"generated_at"`
}

type notFoundResponse struct {
	Error       string   `json:"error"`
	Message     string   `json:"message"`
	Suggestions []string `json:"suggestions"`
}

type browseResponse struct {
	Success     bool                 `json:"success"`
	Phonemes    []phonics.BrowseItem `json:"phonemes"`
	Total       int                  `json:"total"`
	GeneratedAt string               `json:"generated_at"`
}

// Resolve resolves a free-form phoneme query and returns its teaching bundle.
// POST /api/phonemes/resolve
func (h *PhonemeHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req resolveRequest
	// An empty body is a request without phoneme_input.
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBody)).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := req.UserID
	if userID == "" {
		userID, _ = ctxutil.UserIDFromCtx(r.Context())
	}

	result, err := h.svc.Resolve(r.Context(), phonics.ResolveInput{
		PhonemeInput:      req.PhonemeInput,
		SectionsRequested: req.SectionsRequested,
		UserID:            userID,
	})
	if errors.Is(err, domain.ErrResolutionNotFound) {
		writeJSON(w, http.StatusNotFound, notFoundResponse{
			Error:       "Phoneme not found",
			Message:     fmt.Sprintf("Could not find a phoneme matching %q. Try one of the suggestions.", req.PhonemeInput),
			Suggestions: Suggestions,
		})
		return
	}
	if err != nil {
		handleError(w, r, h.log, h.timestamp(), err)
		return
	}

	h.log.DebugContext(r.Context(), "phoneme resolved",
		slog.String("phoneme_id", result.PhonemeID),
		slog.String("strategy", result.Strategy),
		slog.Bool("cached", result.Cached),
	)

	writeJSON(w, http.StatusOK, resolveResponse{
		Success:           true,
		PhonemeData:       result.PhonemeData,
		CorrectionMessage: result.CorrectionMessage,
		GeneratedAt:       h.timestamp(),
	})
}

// Browse lists phonemes by stage in frequency-rank order.
// GET /api/phonemes?stage=1&limit=20&offset=0
func (h *PhonemeHandler) Browse(w http.ResponseWriter, r *http.Request) {
	input := phonics.BrowseInput{Limit: phonics.DefaultBrowseLimit}

	q := r.URL.Query()
	if v := q.Get("stage"); v != "" {
		stage, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "stage must be an integer")
			return
		}
		input.Stage = &stage
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		input.Limit = limit
	}
	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "offset must be an integer")
			return
		}
		input.Offset = offset
	}

	result, err := h.svc.Browse(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, h.timestamp(), err)
		return
	}

	writeJSON(w, http.StatusOK, browseResponse{
		Success:     true,
		Phonemes:    result.Phonemes,
		Total:       result.Total,
		GeneratedAt: h.timestamp(),
	})
}

func (h *PhonemeHandler) timestamp() string {
	return h.now().UTC().Format(time.RFC3339)
}
