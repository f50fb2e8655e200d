package corpus

import (
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

var errMissingSymbol = errors.New("missing phoneme symbol")

// Adapt converts a raw source record into the canonical record shape.
func Adapt(src SourceRecord) (domain.PhonemeRecord, error) {
	switch r := src.(type) {
	case *ComprehensiveRecord:
		return adaptComprehensive(r)
	case *SampleRecord:
		return adaptSample(r)
	default:
		return domain.PhonemeRecord{}, fmt.Errorf("adapt: unsupported source record %T", src)
	}
}

func adaptComprehensive(r *ComprehensiveRecord) (domain.PhonemeRecord, error) {
	symbol := normalizeSymbol(r.IPASymbol)
	if symbol == "" {
		return domain.PhonemeRecord{}, fmt.Errorf("comprehensive %q: %w", r.PhonemeID, errMissingSymbol)
	}

	id := strings.TrimSpace(r.PhonemeID)
	if id == "" {
		id = "comprehensive:" + domain.StripSlashes(symbol)
	}

	return domain.PhonemeRecord{
		ID:            id,
		Stage:         r.Stage,
		Symbol:        symbol,
		CommonName:    strings.TrimSpace(r.CommonName),
		PhonemeType:   strings.TrimSpace(r.PhonemeType),
		Graphemes:     uniqueGraphemes(r.Graphemes),
		FrequencyRank: r.FrequencyRank,
		WordExamples:  nonEmpty(r.WordExamples),
		Sentences:     nonEmpty(r.Sentences),
		Articulation:  adaptArticulation(r.Articulation),
		Metadata:      r.Extra,
		Source:        domain.CorpusSourceComprehensive,
	}, nil
}

func adaptSample(r *SampleRecord) (domain.PhonemeRecord, error) {
	symbol := normalizeSymbol(r.Phoneme)
	if symbol == "" {
		return domain.PhonemeRecord{}, fmt.Errorf("sample %q: %w", r.ID, errMissingSymbol)
	}

	id := strings.TrimSpace(r.ID)
	if id == "" {
		id = "sample:" + domain.StripSlashes(symbol)
	}

	return domain.PhonemeRecord{
		ID:            id,
		Stage:         r.StageID,
		Symbol:        symbol,
		CommonName:    strings.TrimSpace(r.Name),
		PhonemeType:   strings.TrimSpace(r.Type),
		Graphemes:     uniqueGraphemes(r.Spellings),
		FrequencyRank: r.Rank,
		WordExamples:  nonEmpty(r.Examples),
		Sentences:     nonEmpty(r.Sentences),
		Source:        domain.CorpusSourceSample,
	}, nil
}

// normalizeSymbol folds case, composes diacritics and guarantees enclosing slashes.
func normalizeSymbol(raw string) string {
	bare := domain.NormalizeText(domain.StripSlashes(raw))
	if bare == "" {
		return ""
	}
	return "/" + bare + "/"
}

// uniqueGraphemes lowercases spellings and drops duplicates, keeping first occurrence order.
func uniqueGraphemes(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, g := range in {
		g = strings.ToLower(strings.TrimSpace(g))
		if g == "" {
			continue
		}
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		out = append(out, g)
	}
	return out
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// adaptArticulation maps the loosely-typed articulation object into
// ArticulationData. Returns nil when the source carries no usable key.
func adaptArticulation(raw map[string]any) *domain.ArticulationData {
	if len(raw) == 0 {
		return nil
	}

	a := &domain.ArticulationData{
		Place:               stringField(raw, "place_of_articulation", "place"),
		Manner:              stringField(raw, "manner_of_articulation", "manner"),
		Voicing:             stringField(raw, "voicing"),
		Cue:                 stringField(raw, "articulation_cue", "cue"),
		Tips:                stringField(raw, "teaching_tips", "tips"),
		CommonSubstitutions: coerceList(raw["common_substitutions"]),
		LipPosition:         stringField(raw, "lip_position"),
		Airflow:             stringField(raw, "airflow"),
		TonguePosition:      stringField(raw, "tongue_position"),
		LipRounding:         stringField(raw, "lip_rounding"),
		VowelAirflow:        stringField(raw, "vowel_airflow"),
	}

	if isEmptyArticulation(a) {
		return nil
	}
	return a
}

func isEmptyArticulation(a *domain.ArticulationData) bool {
	if len(a.CommonSubstitutions) > 0 {
		return false
	}
	for _, s := range []string{
		a.Place, a.Manner, a.Voicing, a.Cue, a.Tips,
		a.LipPosition, a.Airflow, a.TonguePosition, a.LipRounding, a.VowelAirflow,
	} {
		if s != "" {
			return false
		}
	}
	return true
}

// stringField returns the first key holding a non-empty scalar. Lists are
// joined with "; ". Other shapes yield "".
func stringField(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case []any:
			if parts := coerceList(v); len(parts) > 0 {
				return strings.Join(parts, "; ")
			}
		case int, float64, bool:
			return fmt.Sprint(v)
		}
	}
	return ""
}
