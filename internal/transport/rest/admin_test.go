package rest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/phonics-backend/internal/auth"
	"github.com/heartmarshall/phonics-backend/internal/domain"
	"github.com/heartmarshall/phonics-backend/pkg/ctxutil"
)

type usageReporterMock struct {
	rows   []domain.PhonemeUsage
	err    error
	limits []int
}

func (m *usageReporterMock) TopPhonemes(_ context.Context, limit int) ([]domain.PhonemeUsage, error) {
	m.limits = append(m.limits, limit)
	return m.rows, m.err
}

func adminRequest(target, role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if role == "" {
		return req
	}
	ctx := ctxutil.WithUserID(req.Context(), "u-1")
	ctx = ctxutil.WithRole(ctx, role)
	return req.WithContext(ctx)
}

func TestTopPhonemes_Success(t *testing.T) {
	t.Parallel()

	seen := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	repo := &usageReporterMock{rows: []domain.PhonemeUsage{
		{PhonemeID: "ph_sh", Views: 12, LastSeen: seen},
		{PhonemeID: "ph_m", Views: 4, LastSeen: seen},
	}}
	h := NewAdminHandler(repo, discardLogger())

	rec := httptest.NewRecorder()
	h.TopPhonemes(rec, adminRequest("/admin/usage/top", auth.RoleAdmin))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"phonemes":[
		{"phoneme_id":"ph_sh","views":12,"last_seen":"2026-02-01T09:00:00Z"},
		{"phoneme_id":"ph_m","views":4,"last_seen":"2026-02-01T09:00:00Z"}
	]}`, rec.Body.String())
	assert.Equal(t, []int{defaultTopLimit}, repo.limits)
}

func TestTopPhonemes_LimitClamped(t *testing.T) {
	t.Parallel()

	repo := &usageReporterMock{}
	h := NewAdminHandler(repo, discardLogger())

	rec := httptest.NewRecorder()
	h.TopPhonemes(rec, adminRequest("/admin/usage/top?limit=5000", auth.RoleAdmin))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{maxTopLimit}, repo.limits)
	assert.JSONEq(t, `{"phonemes":[]}`, rec.Body.String())
}

func TestTopPhonemes_BadLimit(t *testing.T) {
	t.Parallel()

	repo := &usageReporterMock{}
	h := NewAdminHandler(repo, discardLogger())

	rec := httptest.NewRecorder()
	h.TopPhonemes(rec, adminRequest("/admin/usage/top?limit=0", auth.RoleAdmin))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.limits)
}

func TestTopPhonemes_AccessControl(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		role string
		want int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"teacher", auth.RoleTeacher, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &usageReporterMock{}
			h := NewAdminHandler(repo, discardLogger())

			rec := httptest.NewRecorder()
			h.TopPhonemes(rec, adminRequest("/admin/usage/top", tt.role))

			assert.Equal(t, tt.want, rec.Code)
			assert.Empty(t, repo.limits)
		})
	}
}

func TestTopPhonemes_NoStorage(t *testing.T) {
	t.Parallel()

	h := NewAdminHandler(nil, discardLogger())

	rec := httptest.NewRecorder()
	h.TopPhonemes(rec, adminRequest("/admin/usage/top", auth.RoleAdmin))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestTopPhonemes_RepoError(t *testing.T) {
	t.Parallel()

	h := NewAdminHandler(&usageReporterMock{err: errors.New("db gone")}, discardLogger())

	rec := httptest.NewRecorder()
	h.TopPhonemes(rec, adminRequest("/admin/usage/top", auth.RoleAdmin))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db gone")
}
