// Package phonics resolves free-form phoneme queries against the corpus and
// synthesizes teaching content for the match.
package phonics

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/heartmarshall/phonics-backend/internal/content"
	"github.com/heartmarshall/phonics-backend/internal/domain"
	"github.com/heartmarshall/phonics-backend/internal/frequency"
)

const tracerName = "github.com/heartmarshall/phonics-backend/internal/service/phonics"

type corpusRepo interface {
	All() []*domain.PhonemeRecord
	Len() int
}

type frequencyResolver interface {
	Resolve(rec *domain.PhonemeRecord) frequency.Result
}

type bundleCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

type usageRecorder interface {
	Record(ctx context.Context, ev domain.UsageEvent)
}

// Options tunes optional behaviour.
type Options struct {
	// Hooks run after resolution; the first non-nil message is returned.
	Hooks []Hook
	// ResearchSources replaces the default citation list when non-empty.
	ResearchSources []string
}

// Service implements phoneme resolution and browsing.
type Service struct {
	log      *slog.Logger
	corpus   corpusRepo
	freq     frequencyResolver
	cache    bundleCache
	usage    usageRecorder
	tracer   trace.Tracer
	hooks    []Hook
	research []string
	now      func() time.Time
}

// NewService creates a phonics service. cache and usage may be nil.
func NewService(
	logger *slog.Logger,
	corpus corpusRepo,
	freq frequencyResolver,
	cache bundleCache,
	usage usageRecorder,
	opts Options,
) *Service {
	research := opts.ResearchSources
	if len(research) == 0 {
		research = content.DefaultResearchSources
	}
	return &Service{
		log:      logger.With("service", "phonics"),
		corpus:   corpus,
		freq:     freq,
		cache:    cache,
		usage:    usage,
		tracer:   otel.Tracer(tracerName),
		hooks:    opts.Hooks,
		research: research,
		now:      time.Now,
	}
}

// Ready reports whether the corpus has records to resolve against.
func (s *Service) Ready() bool {
	return s.corpus.Len() > 0
}

// cachedBundle is what the bundle cache stores for one cache key.
type cachedBundle struct {
	PhonemeID string          `json:"phoneme_id"`
	Strategy  string          `json:"strategy"`
	Data      json.RawMessage `json:"data"`
}

// Resolve parses the query, resolves it, and returns the synthesized phoneme
// data. Returns a *domain.ValidationError for a blank query and
// domain.ErrResolutionNotFound when nothing matches.
func (s *Service) Resolve(ctx context.Context, input ResolveInput) (*ResolveResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "phonics.Resolve")
	defer span.End()

	q := ParseQuery(input.PhonemeInput)
	span.SetAttributes(
		attribute.String("phonics.query", q.Cleaned),
		attribute.String("phonics.query_kind", q.Kind.String()),
	)

	if cached, ok := s.cacheGet(ctx, q.CacheKey()); ok {
		span.SetAttributes(attribute.Bool("phonics.cache_hit", true), attribute.String("phonics.strategy", cached.Strategy))
		s.recordUsage(ctx, input, q, cached.PhonemeID, cached.Strategy)
		return &ResolveResult{
			PhonemeData:       cached.Data,
			PhonemeID:         cached.PhonemeID,
			Strategy:          cached.Strategy,
			CorrectionMessage: runHooks(s.hooks, input.PhonemeInput),
			Cached:            true,
		}, nil
	}

	rq, err := Resolve(q, s.corpus.All())
	if err != nil {
		span.SetAttributes(attribute.Bool("phonics.matched", false))
		s.log.DebugContext(ctx, "phoneme not resolved", slog.String("query", q.Cleaned))
		return nil, err
	}

	freq := s.freq.Resolve(rq.MatchedRecord)
	if !freq.HasData() {
		s.log.WarnContext(ctx, "phoneme has no spelling data", slog.String("phoneme_id", rq.MatchedRecord.ID))
	}
	span.SetAttributes(
		attribute.Bool("phonics.matched", true),
		attribute.String("phonics.phoneme_id", rq.MatchedRecord.ID),
		attribute.String("phonics.strategy", rq.Strategy),
		attribute.String("phonics.frequency_source", freq.Source.String()),
	)

	data, err := json.Marshal(assemble(rq, freq, s.research))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "encode phoneme data")
		return nil, fmt.Errorf("encode phoneme data: %w", err)
	}

	s.log.DebugContext(ctx, "phoneme resolved",
		slog.String("query", q.Cleaned),
		slog.String("phoneme_id", rq.MatchedRecord.ID),
		slog.String("strategy", rq.Strategy),
		slog.String("frequency_source", freq.Source.String()),
	)

	s.cacheSet(ctx, q.CacheKey(), cachedBundle{PhonemeID: rq.MatchedRecord.ID, Strategy: rq.Strategy, Data: data})
	s.recordUsage(ctx, input, q, rq.MatchedRecord.ID, rq.Strategy)

	return &ResolveResult{
		PhonemeData:       data,
		PhonemeID:         rq.MatchedRecord.ID,
		Strategy:          rq.Strategy,
		CorrectionMessage: runHooks(s.hooks, input.PhonemeInput),
	}, nil
}

// cacheGet treats every cache failure as a miss.
func (s *Service) cacheGet(ctx context.Context, key string) (cachedBundle, bool) {
	if s.cache == nil {
		return cachedBundle{}, false
	}
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "bundle cache get failed", slog.String("key", key), slog.String("error", err.Error()))
		return cachedBundle{}, false
	}
	if !ok {
		return cachedBundle{}, false
	}
	var b cachedBundle
	if err := json.Unmarshal(raw, &b); err != nil || len(b.Data) == 0 {
		s.log.WarnContext(ctx, "bundle cache entry unreadable", slog.String("key", key))
		return cachedBundle{}, false
	}
	return b, true
}

func (s *Service) cacheSet(ctx context.Context, key string, b cachedBundle) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(b)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw); err != nil {
		s.log.WarnContext(ctx, "bundle cache set failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (s *Service) recordUsage(ctx context.Context, input ResolveInput, q Query, phonemeID, strategy string) {
	if s.usage == nil {
		return
	}
	s.usage.Record(ctx, domain.UsageEvent{
		ID:             uuid.New(),
		PhonemeID:      phonemeID,
		SectionsViewed: input.SectionsRequested,
		UserID:         input.UserID,
		Query:          q.Cleaned,
		Strategy:       strategy,
		CreatedAt:      s.now().UTC(),
	})
}
