// Package usage records phoneme views without blocking the request path.
//
// Record hands events to a bounded buffer; a single background worker drains
// it in batches into a Sink. A full buffer drops the event with a warning and
// sink failures are logged, never returned to the caller.
package usage

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

// Sink persists a batch of usage events.
type Sink interface {
	Save(ctx context.Context, events []domain.UsageEvent) error
}

// Config controls buffering of the recorder.
type Config struct {
	BufferSize    int
	BatchSize     int
	FlushInterval time.Duration
	SaveTimeout   time.Duration
}

func (c Config) withDefaults() Config {
	if c.BufferSize <= 0 {
		c.BufferSize = 1024
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 50
	}
	if c.FlushInterval <= 0 {
		c.FlushInterval = 2 * time.Second
	}
	if c.SaveTimeout <= 0 {
		c.SaveTimeout = 5 * time.Second
	}
	return c
}

// Recorder is a fire-and-forget usage recorder.
type Recorder struct {
	sink Sink
	log  *slog.Logger
	cfg  Config

	events chan domain.UsageEvent
	done   chan struct{}

	mu     sync.RWMutex
	closed bool

	clock func() time.Time
}

// NewRecorder creates a recorder and starts its worker.
func NewRecorder(logger *slog.Logger, sink Sink, cfg Config) *Recorder {
	cfg = cfg.withDefaults()
	r := &Recorder{
		sink:   sink,
		log:    logger.With("component", "usage_recorder"),
		cfg:    cfg,
		events: make(chan domain.UsageEvent, cfg.BufferSize),
		done:   make(chan struct{}),
		clock:  time.Now,
	}
	go r.run()
	return r
}

// Record enqueues an event. It never blocks: when the buffer is full or the
// recorder is closed the event is dropped.
func (r *Recorder) Record(_ context.Context, ev domain.UsageEvent) {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = r.clock().UTC()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.log.Warn("usage event dropped: recorder closed", slog.String("phoneme_id", ev.PhonemeID))
		return
	}

	select {
	case r.events <- ev:
	default:
		r.log.Warn("usage event dropped: buffer full",
			slog.String("phoneme_id", ev.PhonemeID),
			slog.Int("buffer_size", r.cfg.BufferSize),
		)
	}
}

// Close stops accepting events and waits for the worker to flush what is
// buffered. It returns ctx.Err() if the context ends first.
func (r *Recorder) Close(ctx context.Context) error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.events)
	}
	r.mu.Unlock()

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Recorder) run() {
	defer close(r.done)

	ticker := time.NewTicker(r.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]domain.UsageEvent, 0, r.cfg.BatchSize)
	for {
		select {
		case ev, ok := <-r.events:
			if !ok {
				r.flush(batch)
				return
			}
			batch = append(batch, ev)
			if len(batch) >= r.cfg.BatchSize {
				r.flush(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				r.flush(batch)
				batch = batch[:0]
			}
		}
	}
}

func (r *Recorder) flush(batch []domain.UsageEvent) {
	if len(batch) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.cfg.SaveTimeout)
	defer cancel()

	out := make([]domain.UsageEvent, len(batch))
	copy(out, batch)

	if err := r.sink.Save(ctx, out); err != nil {
		r.log.Error("usage sink save failed",
			slog.Int("events", len(out)),
			slog.String("error", err.Error()),
		)
		return
	}
	r.log.Debug("usage events saved", slog.Int("events", len(out)))
}
