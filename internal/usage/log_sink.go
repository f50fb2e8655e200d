package usage

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

// LogSink writes usage events to the structured log. Used when no database
// is configured.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a LogSink.
func NewLogSink(logger *slog.Logger) *LogSink {
	return &LogSink{log: logger.With("sink", "log")}
}

// Save logs one record per event.
func (s *LogSink) Save(ctx context.Context, events []domain.UsageEvent) error {
	for _, ev := range events {
		s.log.InfoContext(ctx, "phoneme usage",
			slog.String("event_id", ev.ID.String()),
			slog.String("phoneme_id", ev.PhonemeID),
			slog.Any("sections_viewed", ev.SectionsViewed),
			slog.String("user_id", ev.UserID),
			slog.String("strategy", ev.Strategy),
			slog.Time("created_at", ev.CreatedAt),
		)
	}
	return nil
}
