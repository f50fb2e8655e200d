// Package usage persists phoneme usage events in PostgreSQL.
// Events are append-only; reads are aggregate reports for admins.
package usage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/phonics-backend/internal/adapter/postgres"
	"github.com/heartmarshall/phonics-backend/internal/domain"
)

const table = "usage_events"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides usage event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	tx   *postgres.TxManager
}

// New creates a new usage repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool, tx: postgres.NewTxManager(pool)}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Save inserts a batch of events in one transaction. Re-delivered events
// (same id) are ignored.
func (r *Repo) Save(ctx context.Context, events []domain.UsageEvent) error {
	if len(events) == 0 {
		return nil
	}

	insert := psql.Insert(table).
		Columns("id", "phoneme_id", "sections_viewed", "user_id", "query", "strategy", "created_at").
		Suffix("ON CONFLICT (id) DO NOTHING")

	for _, ev := range events {
		sections := ev.SectionsViewed
		if sections == nil {
			sections = []string{}
		}
		insert = insert.Values(ev.ID, ev.PhonemeID, sections, ev.UserID, ev.Query, ev.Strategy, ev.CreatedAt)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("save usage events: build: %w", err)
	}

	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...); err != nil {
			return postgres.MapError(err, "save usage events")
		}
		return nil
	})
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// TopPhonemes returns the most viewed phonemes, ties broken by phoneme id.
func (r *Repo) TopPhonemes(ctx context.Context, limit int) ([]domain.PhonemeUsage, error) {
	query, args, err := psql.
		Select("phoneme_id", "count(*) AS views", "max(created_at) AS last_seen").
		From(table).
		GroupBy("phoneme_id").
		OrderBy("views DESC", "phoneme_id ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("top phonemes: build: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "top phonemes")
	}
	defer rows.Close()

	out := make([]domain.PhonemeUsage, 0, limit)
	for rows.Next() {
		var u domain.PhonemeUsage
		if err := rows.Scan(&u.PhonemeID, &u.Views, &u.LastSeen); err != nil {
			return nil, postgres.MapError(err, "top phonemes: scan")
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "top phonemes")
	}

	return out, nil
}

// Ping reports whether the database is reachable.
func (r *Repo) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
