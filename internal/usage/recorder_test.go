package usage

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

type sinkMock struct {
	SaveFunc func(ctx context.Context, events []domain.UsageEvent) error

	mu    sync.Mutex
	saved []domain.UsageEvent
	calls int
}

func (m *sinkMock) Save(ctx context.Context, events []domain.UsageEvent) error {
	m.mu.Lock()
	m.calls++
	m.saved = append(m.saved, events...)
	m.mu.Unlock()
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, events)
	}
	return nil
}

func (m *sinkMock) snapshot() ([]domain.UsageEvent, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.UsageEvent, len(m.saved))
	copy(out, m.saved)
	return out, m.calls
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testLogger(w *syncBuffer) *slog.Logger {
	if w == nil {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func closeRecorder(t *testing.T, r *Recorder) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, r.Close(ctx))
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestRecorder_FlushesOnClose(t *testing.T) {
	t.Parallel()

	sink := &sinkMock{}
	r := NewRecorder(testLogger(nil), sink, Config{BatchSize: 100, FlushInterval: time.Hour})

	r.Record(context.Background(), domain.UsageEvent{PhonemeID: "ph_sh"})
	r.Record(context.Background(), domain.UsageEvent{PhonemeID: "ph_m", UserID: "teacher-1"})

	closeRecorder(t, r)

	saved, _ := sink.snapshot()
	require.Len(t, saved, 2)
	assert.Equal(t, "ph_sh", saved[0].PhonemeID)
	assert.Equal(t, "ph_m", saved[1].PhonemeID)
	assert.Equal(t, "teacher-1", saved[1].UserID)
}

func TestRecorder_FillsIDAndTimestamp(t *testing.T) {
	t.Parallel()

	sink := &sinkMock{}
	r := NewRecorder(testLogger(nil), sink, Config{})
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r.clock = func() time.Time { return fixed }

	presetID := uuid.New()
	r.Record(context.Background(), domain.UsageEvent{PhonemeID: "ph_a_short"})
	r.Record(context.Background(), domain.UsageEvent{ID: presetID, PhonemeID: "ph_t"})

	closeRecorder(t, r)

	saved, _ := sink.snapshot()
	require.Len(t, saved, 2)
	assert.NotEqual(t, uuid.Nil, saved[0].ID)
	assert.Equal(t, fixed, saved[0].CreatedAt)
	assert.Equal(t, presetID, saved[1].ID)
}

func TestRecorder_FlushesFullBatch(t *testing.T) {
	t.Parallel()

	sink := &sinkMock{}
	r := NewRecorder(testLogger(nil), sink, Config{BatchSize: 2, FlushInterval: time.Hour})

	for range 4 {
		r.Record(context.Background(), domain.UsageEvent{PhonemeID: "ph_s"})
	}

	require.Eventually(t, func() bool {
		saved, _ := sink.snapshot()
		return len(saved) == 4
	}, 2*time.Second, 5*time.Millisecond)

	closeRecorder(t, r)

	_, calls := sink.snapshot()
	assert.Equal(t, 2, calls)
}

func TestRecorder_FlushesOnInterval(t *testing.T) {
	t.Parallel()

	sink := &sinkMock{}
	r := NewRecorder(testLogger(nil), sink, Config{BatchSize: 100, FlushInterval: 10 * time.Millisecond})
	defer closeRecorder(t, r)

	r.Record(context.Background(), domain.UsageEvent{PhonemeID: "ph_ch"})

	assert.Eventually(t, func() bool {
		saved, _ := sink.snapshot()
		return len(saved) == 1
	}, 2*time.Second, 5*time.Millisecond)
}

func TestRecorder_DropsWhenBufferFull(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	started := make(chan struct{}, 1)
	sink := &sinkMock{
		SaveFunc: func(ctx context.Context, _ []domain.UsageEvent) error {
			select {
			case started <- struct{}{}:
			default:
			}
			<-release
			return nil
		},
	}

	logs := &syncBuffer{}
	r := NewRecorder(testLogger(logs), sink, Config{BufferSize: 1, BatchSize: 1, FlushInterval: time.Hour})

	// First event occupies the worker.
	r.Record(context.Background(), domain.UsageEvent{PhonemeID: "first"})
	<-started

	// Second fills the buffer, third is dropped.
	r.Record(context.Background(), domain.UsageEvent{PhonemeID: "second"})
	r.Record(context.Background(), domain.UsageEvent{PhonemeID: "third"})

	close(release)
	closeRecorder(t, r)

	saved, _ := sink.snapshot()
	ids := make([]string, 0, len(saved))
	for _, ev := range saved {
		ids = append(ids, ev.PhonemeID)
	}
	assert.Equal(t, []string{"first", "second"}, ids)
	assert.Contains(t, logs.String(), "buffer full")
}

func TestRecorder_SinkErrorIsLoggedNotReturned(t *testing.T) {
	t.Parallel()

	sink := &sinkMock{
		SaveFunc: func(context.Context, []domain.UsageEvent) error {
			return errors.New("connection refused")
		},
	}
	logs := &syncBuffer{}
	r := NewRecorder(testLogger(logs), sink, Config{})

	r.Record(context.Background(), domain.UsageEvent{PhonemeID: "ph_sh"})
	closeRecorder(t, r)

	assert.Contains(t, logs.String(), "usage sink save failed")
	assert.Contains(t, logs.String(), "connection refused")
}

func TestRecorder_RecordAfterCloseIsDropped(t *testing.T) {
	t.Parallel()

	sink := &sinkMock{}
	logs := &syncBuffer{}
	r := NewRecorder(testLogger(logs), sink, Config{})
	closeRecorder(t, r)

	assert.NotPanics(t, func() {
		r.Record(context.Background(), domain.UsageEvent{PhonemeID: "late"})
	})
	saved, _ := sink.snapshot()
	assert.Empty(t, saved)
	assert.Contains(t, logs.String(), "recorder closed")

	// Closing twice is harmless.
	closeRecorder(t, r)
}

func TestRecorder_CloseHonoursContext(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	sink := &sinkMock{
		SaveFunc: func(context.Context, []domain.UsageEvent) error {
			<-release
			return nil
		},
	}
	r := NewRecorder(testLogger(nil), sink, Config{})
	r.Record(context.Background(), domain.UsageEvent{PhonemeID: "ph_sh"})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := r.Close(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(release)
	closeRecorder(t, r)
}

func TestLogSink_Save(t *testing.T) {
	t.Parallel()

	logs := &syncBuffer{}
	sink := NewLogSink(testLogger(logs))

	err := sink.Save(context.Background(), []domain.UsageEvent{
		{ID: uuid.New(), PhonemeID: "ph_sh", SectionsViewed: []string{"rules"}},
	})
	require.NoError(t, err)
	assert.Contains(t, logs.String(), "phoneme usage")
	assert.Contains(t, logs.String(), "phoneme_id=ph_sh")
}
