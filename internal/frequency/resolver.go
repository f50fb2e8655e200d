package frequency

import (
	"slices"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

// Result is the spelling statistics for one phoneme and where they came from.
type Result struct {
	Entries []domain.GraphemeFrequencyEntry
	Source  domain.FrequencySource
}

// HasData reports whether any lookup produced rows.
func (r Result) HasData() bool { return len(r.Entries) > 0 }

// Graphemes returns the graphemes that carry frequency rows, in result order.
func (r Result) Graphemes() []string {
	out := make([]string, 0, len(r.Entries))
	for _, e := range r.Entries {
		out = append(out, e.Grapheme)
	}
	return out
}

// lookup is one step of the provenance chain.
type lookup struct {
	source domain.FrequencySource
	find   func(t *Tables, rec *domain.PhonemeRecord) []domain.GraphemeFrequencyEntry
}

var lookupOrder = []lookup{
	{source: domain.FrequencySourceComprehensive, find: func(t *Tables, rec *domain.PhonemeRecord) []domain.GraphemeFrequencyEntry {
		return t.comprehensive.find(rec)
	}},
	{source: domain.FrequencySourceLegacy, find: func(t *Tables, rec *domain.PhonemeRecord) []domain.GraphemeFrequencyEntry {
		return t.legacy.find(rec)
	}},
	{source: domain.FrequencySourceRecord, find: func(_ *Tables, rec *domain.PhonemeRecord) []domain.GraphemeFrequencyEntry {
		return fromRecord(rec)
	}},
}

// Resolve returns spelling statistics for rec. The first lookup that yields
// rows wins. Rows are sorted by weighted percentage, highest first; ties keep
// authored order. The returned slice is owned by the caller.
func (t *Tables) Resolve(rec *domain.PhonemeRecord) Result {
	if rec == nil {
		return Result{Source: domain.FrequencySourceNone}
	}

	for _, l := range lookupOrder {
		rows := l.find(t, rec)
		if len(rows) == 0 {
			continue
		}
		entries := slices.Clone(rows)
		slices.SortStableFunc(entries, func(a, b domain.GraphemeFrequencyEntry) int {
			switch {
			case a.WeightedPercentage > b.WeightedPercentage:
				return -1
			case a.WeightedPercentage < b.WeightedPercentage:
				return 1
			}
			return 0
		})
		return Result{Entries: entries, Source: l.source}
	}

	return Result{Entries: []domain.GraphemeFrequencyEntry{}, Source: domain.FrequencySourceNone}
}

// find looks the record up by symbol, then by common name.
func (tbl Table) find(rec *domain.PhonemeRecord) []domain.GraphemeFrequencyEntry {
	if rows := tbl[CanonicalKey(rec.Symbol)]; len(rows) > 0 {
		return rows
	}
	if rec.CommonName == "" {
		return nil
	}
	return tbl[CanonicalKey(rec.CommonName)]
}

// fromRecord is the placeholder distribution used when neither table knows
// the phoneme: the first grapheme is Primary, the rest Secondary.
func fromRecord(rec *domain.PhonemeRecord) []domain.GraphemeFrequencyEntry {
	if len(rec.Graphemes) == 0 {
		return nil
	}
	rows := make([]domain.GraphemeFrequencyEntry, 0, len(rec.Graphemes))
	for i, g := range rec.Graphemes {
		e := domain.GraphemeFrequencyEntry{
			Grapheme:           g,
			Percentage:         50,
			WeightedPercentage: 50,
			UsageLabel:         domain.UsageSecondary,
		}
		if i == 0 {
			e.Percentage, e.WeightedPercentage, e.UsageLabel = 100, 100, domain.UsagePrimary
		}
		rows = append(rows, e)
	}
	return rows
}
