package app

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/phonics-backend/internal/config"
	"github.com/heartmarshall/phonics-backend/internal/corpus"
	"github.com/heartmarshall/phonics-backend/internal/domain"
	"github.com/heartmarshall/phonics-backend/internal/frequency"
	"github.com/heartmarshall/phonics-backend/internal/service/phonics"
)

// Collaborators are the optional pieces of the phonics service. Leave a field
// nil to run without it.
type Collaborators struct {
	Cache interface {
		Get(ctx context.Context, key string) ([]byte, bool, error)
		Set(ctx context.Context, key string, value []byte) error
	}
	Usage interface {
		Record(ctx context.Context, ev domain.UsageEvent)
	}
}

// NewPhonicsService loads the corpus and frequency tables concurrently and
// builds the phonics service on top of them.
func NewPhonicsService(ctx context.Context, cfg *config.Config, logger *slog.Logger, c Collaborators) (*phonics.Service, error) {
	var (
		repo   *corpus.Repository
		tables *frequency.Tables
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		repo, err = corpus.Load(gctx, corpus.Paths{
			Comprehensive: cfg.Corpus.ComprehensivePath,
			Sample:        cfg.Corpus.SamplePath,
		})
		return err
	})
	g.Go(func() error {
		var err error
		tables, err = frequency.Load(gctx, frequency.Paths{
			Comprehensive: cfg.Frequency.ComprehensivePath,
			Legacy:        cfg.Frequency.LegacyPath,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := repo.Stats()
	compFreq, legacyFreq := tables.Sizes()
	logger.Info("phoneme data loaded",
		slog.Int("comprehensive", stats.Comprehensive),
		slog.Int("sample", stats.Sample),
		slog.Int("skipped", stats.Skipped),
		slog.Int("frequency_comprehensive", compFreq),
		slog.Int("frequency_legacy", legacyFreq),
	)

	var hooks []phonics.Hook
	if cfg.Phonics.DigraphHint {
		hooks = append(hooks, phonics.DigraphHint)
	}

	svc := phonics.NewService(logger, repo, tables, c.Cache, c.Usage, phonics.Options{
		Hooks:           hooks,
		ResearchSources: cfg.Phonics.ResearchSources,
	})
	return svc, nil
}
