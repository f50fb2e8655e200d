package domain

import (
	"time"

	"github.com/google/uuid"
)

// UsageEvent records that a learner or teacher viewed a phoneme.
type UsageEvent struct {
	ID             uuid.UUID
	PhonemeID      string
	SectionsViewed []string
	UserID         string // empty for anonymous requests
	Query          string
	Strategy       string
	CreatedAt      time.Time
}

// PhonemeUsage is an aggregated view count for one phoneme.
type PhonemeUsage struct {
	PhonemeID string
	Views     int64
	LastSeen  time.Time
}
