package phonics

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel/attribute"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

// Browse lists phonemes, optionally filtered by stage, ordered by frequency
// rank (missing ranks sort last) and paged by limit/offset. A phoneme id that
// appears in both collections is listed once, from the first collection.
func (s *Service) Browse(ctx context.Context, input BrowseInput) (*BrowseResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	_, span := s.tracer.Start(ctx, "phonics.Browse")
	defer span.End()

	records := browseRecords(s.corpus.All(), input.Stage)
	total := len(records)

	start := min(input.Offset, total)
	end := min(start+input.Limit, total)
	page := records[start:end]

	items := make([]BrowseItem, 0, len(page))
	for _, rec := range page {
		items = append(items, BrowseItem{
			ID:            rec.ID,
			IPASymbol:     rec.Symbol,
			CommonName:    rec.CommonName,
			PhonemeType:   rec.PhonemeType,
			FrequencyRank: rec.FrequencyRank,
			StageID:       rec.Stage,
			Graphemes:     listOrEmpty(rec.Graphemes),
		})
	}

	span.SetAttributes(attribute.Int("phonics.browse.total", total), attribute.Int("phonics.browse.returned", len(items)))
	return &BrowseResult{Phonemes: items, Total: total}, nil
}

func browseRecords(all []*domain.PhonemeRecord, stage *int) []*domain.PhonemeRecord {
	seen := make(map[string]struct{}, len(all))
	out := make([]*domain.PhonemeRecord, 0, len(all))
	for _, rec := range all {
		if _, dup := seen[rec.ID]; dup {
			continue
		}
		seen[rec.ID] = struct{}{}
		if stage != nil && rec.Stage != *stage {
			continue
		}
		out = append(out, rec)
	}

	slices.SortStableFunc(out, func(a, b *domain.PhonemeRecord) int {
		return a.RankOrDefault() - b.RankOrDefault()
	})
	return out
}

func listOrEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
