package phonics

import (
	"strings"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

// Strategy names reported with every match.
const (
	StrategyVowelLength   = "vowel_length"
	StrategyExactSymbol   = "exact_symbol"
	StrategyExactID       = "exact_id"
	StrategyExactGrapheme = "exact_grapheme"
	StrategyPartialSymbol = "partial_symbol"
)

// strategy is one step of the resolution cascade. match is only consulted
// when applies returns true.
type strategy struct {
	name    string
	applies func(q Query) bool
	match   func(q Query, records []*domain.PhonemeRecord) *domain.PhonemeRecord
}

func always(Query) bool { return true }

// cascade is evaluated in order; the first strategy that finds a record wins.
// Every strategy scans the whole corpus in corpus order before the next one
// runs, so a later record can never shadow an earlier strategy.
var cascade = []strategy{
	{name: StrategyVowelLength, applies: func(q Query) bool { return q.Kind == QueryVowelLength }, match: matchVowelLength},
	{name: StrategyExactSymbol, applies: always, match: scan(func(q string, r *domain.PhonemeRecord) bool {
		return q == r.Symbol || q == r.BareSymbol()
	})},
	{name: StrategyExactID, applies: always, match: scan(func(q string, r *domain.PhonemeRecord) bool {
		return q == strings.ToLower(r.ID)
	})},
	{name: StrategyExactGrapheme, applies: always, match: scan(func(q string, r *domain.PhonemeRecord) bool {
		return r.HasGrapheme(q)
	})},
	{name: StrategyPartialSymbol, applies: always, match: scan(func(q string, r *domain.PhonemeRecord) bool {
		return strings.Contains(r.Symbol, q) || r.Symbol == "/"+q+"/"
	})},
}

func scan(pred func(q string, r *domain.PhonemeRecord) bool) func(Query, []*domain.PhonemeRecord) *domain.PhonemeRecord {
	return func(q Query, records []*domain.PhonemeRecord) *domain.PhonemeRecord {
		for _, r := range records {
			if pred(q.Cleaned, r) {
				return r
			}
		}
		return nil
	}
}

// matchVowelLength handles "short X" and "long X". Short vowels must be the
// stage-1 record /X/ spelled X. Long vowels prefer the stage-4 record that
// owns the silent-e spelling X_e and otherwise take the first stage-4 record
// with any spelling containing X.
func matchVowelLength(q Query, records []*domain.PhonemeRecord) *domain.PhonemeRecord {
	switch q.Length {
	case VowelShort:
		for _, r := range records {
			if r.Stage == 1 && r.BareSymbol() == q.Vowel && r.HasGrapheme(q.Vowel) {
				return r
			}
		}
	case VowelLong:
		silentE := q.Vowel + "_e"
		for _, r := range records {
			if r.Stage == 4 && r.HasGrapheme(silentE) {
				return r
			}
		}
		for _, r := range records {
			if r.Stage != 4 {
				continue
			}
			for _, g := range r.Graphemes {
				if strings.Contains(g, q.Vowel) {
					return r
				}
			}
		}
	}
	return nil
}

// resolveQuery runs the cascade for a non-spelled query.
func resolveQuery(q Query, records []*domain.PhonemeRecord) (*domain.PhonemeRecord, string) {
	if q.Cleaned == "" {
		return nil, ""
	}
	for _, s := range cascade {
		if !s.applies(q) {
			continue
		}
		if rec := s.match(q, records); rec != nil {
			return rec, s.name
		}
	}
	return nil, ""
}

// Resolve maps a parsed query onto at most one record. Spelled queries
// resolve their left-hand side and report whether the requested grapheme is
// one of the record's spellings; an unknown grapheme is a soft flag, never
// an error.
func Resolve(q Query, records []*domain.PhonemeRecord) (domain.ResolvedQuery, error) {
	out := domain.ResolvedQuery{RawInput: q.Raw, NormalizedInput: q.Cleaned}

	target := q
	if q.Kind == QuerySpelled {
		target = *q.Phoneme
		requested := q.RequestedGrapheme
		out.RequestedGrapheme = &requested
	}

	rec, name := resolveQuery(target, records)
	if rec == nil {
		return out, domain.ErrResolutionNotFound
	}

	out.MatchedRecord = rec
	out.Strategy = name
	if out.RequestedGrapheme != nil {
		out.GraphemeIsValid = rec.HasGrapheme(*out.RequestedGrapheme)
	}
	return out, nil
}
