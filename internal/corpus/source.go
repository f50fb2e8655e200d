// Package corpus loads the two phoneme collections (comprehensive and sample)
// and adapts them into canonical domain.PhonemeRecord values.
//
// The collections are authored independently and do not share a schema.
// Each raw shape is its own type; the adapter is the only place that knows
// about both. Nothing downstream of Repository sees a raw record.
package corpus

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// SourceRecord is a raw record from one of the phoneme collections.
// Implementations: *ComprehensiveRecord, *SampleRecord.
type SourceRecord interface {
	isSourceRecord()
}

// ComprehensiveRecord is the rich YAML shape. Unknown keys (stories, word
// ladders, research sources, ...) are kept in Extra.
type ComprehensiveRecord struct {
	PhonemeID     string         `yaml:"phoneme_id"`
	Stage         int            `yaml:"stage"`
	IPASymbol     string         `yaml:"ipa_symbol"`
	CommonName    string         `yaml:"common_name"`
	PhonemeType   string         `yaml:"phoneme_type"`
	Graphemes     stringList     `yaml:"graphemes"`
	FrequencyRank *int           `yaml:"frequency_rank"`
	WordExamples  stringList     `yaml:"word_examples"`
	Sentences     stringList     `yaml:"sentences"`
	Articulation  map[string]any `yaml:"articulation"`
	Extra         map[string]any `yaml:",inline"`
}

func (*ComprehensiveRecord) isSourceRecord() {}

// SampleRecord is the compact JSON shape used by the starter collection.
type SampleRecord struct {
	ID        string     `json:"id"`
	StageID   int        `json:"stage_id"`
	Phoneme   string     `json:"phoneme"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	Spellings stringList `json:"spellings"`
	Rank      *int       `json:"rank"`
	Examples  stringList `json:"examples"`
	Sentences stringList `json:"sentences"`
}

func (*SampleRecord) isSourceRecord() {}

type comprehensiveFile struct {
	Version  int                   `yaml:"version"`
	Phonemes []ComprehensiveRecord `yaml:"phonemes"`
}

type sampleFile struct {
	Phonemes []SampleRecord `json:"phonemes"`
}

// stringList decodes from a scalar, a sequence of scalars, or a sequence of
// objects carrying a "grapheme", "word", or "text" key. Anything else is skipped.
type stringList []string

func (l *stringList) UnmarshalYAML(value *yaml.Node) error {
	var raw any
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("decode string list: %w", err)
	}
	*l = coerceList(raw)
	return nil
}

func (l *stringList) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode string list: %w", err)
	}
	*l = coerceList(raw)
	return nil
}

func coerceList(raw any) []string {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return []string{s}
		}
		return nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s := coerceItem(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		if s := coerceItem(v); s != "" {
			return []string{s}
		}
		return nil
	}
}

func coerceItem(item any) string {
	switch v := item.(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		for _, key := range []string{"grapheme", "word", "text"} {
			if s, ok := v[key].(string); ok {
				return strings.TrimSpace(s)
			}
		}
	case int, int64, float64, bool:
		return strings.TrimSpace(fmt.Sprint(v))
	}
	return ""
}
