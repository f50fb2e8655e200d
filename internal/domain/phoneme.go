package domain

import (
	"slices"
	"strings"
)

// CorpusSource identifies which phoneme collection a record was loaded from.
type CorpusSource string

const (
	CorpusSourceComprehensive CorpusSource = "comprehensive"
	CorpusSourceSample        CorpusSource = "sample"
)

func (s CorpusSource) String() string { return string(s) }

// Stage bounds of the developmental sequence.
const (
	MinStage = 1
	MaxStage = 8
)

// PhonemeRecord is the canonical, immutable shape of a phoneme regardless of
// which corpus it was loaded from.
type PhonemeRecord struct {
	ID            string
	Stage         int
	Symbol        string // e.g. "/sh/"
	CommonName    string
	PhonemeType   string
	Graphemes     []string // unique spellings in source order
	FrequencyRank *int
	WordExamples  []string
	Sentences     []string
	Articulation  *ArticulationData
	Metadata      map[string]any
	Source        CorpusSource
}

// BareSymbol returns the lowercased symbol without enclosing slashes.
func (r *PhonemeRecord) BareSymbol() string {
	return strings.ToLower(StripSlashes(r.Symbol))
}

// PrimaryGrapheme returns the first listed grapheme, or the bare symbol when
// the record has no graphemes.
func (r *PhonemeRecord) PrimaryGrapheme() string {
	if len(r.Graphemes) > 0 {
		return r.Graphemes[0]
	}
	return r.BareSymbol()
}

// HasGrapheme reports whether g (case-insensitive) is one of the record's spellings.
func (r *PhonemeRecord) HasGrapheme(g string) bool {
	g = strings.ToLower(strings.TrimSpace(g))
	if g == "" {
		return false
	}
	return slices.ContainsFunc(r.Graphemes, func(x string) bool {
		return strings.ToLower(x) == g
	})
}

// RankOrDefault returns the frequency rank, treating a missing rank as 999.
func (r *PhonemeRecord) RankOrDefault() int {
	if r.FrequencyRank == nil {
		return 999
	}
	return *r.FrequencyRank
}

// IsVowel reports whether the record describes a vowel sound.
func (r *PhonemeRecord) IsVowel() bool {
	t := strings.ToLower(r.PhonemeType)
	if strings.Contains(t, "vowel") {
		return true
	}
	if strings.Contains(t, "consonant") || strings.Contains(t, "digraph") {
		return false
	}
	if r.Stage == 4 {
		return true
	}
	bare := r.BareSymbol()
	return len(bare) == 1 && strings.ContainsAny(bare, "aeiou")
}

// IsShortVowel reports whether the record is a stage-1 single-letter vowel like /a/.
func (r *PhonemeRecord) IsShortVowel() bool {
	bare := r.BareSymbol()
	return r.Stage == 1 && len(bare) == 1 && strings.ContainsAny(bare, "aeiou")
}

// ArticulationData holds production guidance as authored in the corpus.
// Consonant and vowel records populate different keys.
type ArticulationData struct {
	Place               string
	Manner              string
	Voicing             string
	Cue                 string
	Tips                string
	CommonSubstitutions []string

	// Consonant keys.
	LipPosition string
	Airflow     string

	// Vowel keys.
	TonguePosition string // "height, backness", e.g. "low, front"
	LipRounding    string
	VowelAirflow   string
}

// UsageLabel is a qualitative frequency tier for a grapheme.
type UsageLabel string

const (
	UsagePrimary   UsageLabel = "Primary"
	UsageSecondary UsageLabel = "Secondary"
	UsageRare      UsageLabel = "Rare"
	UsageException UsageLabel = "Exception"
)

func (l UsageLabel) String() string { return string(l) }

// GraphemeFrequencyEntry is one spelling statistic for a phoneme.
type GraphemeFrequencyEntry struct {
	Grapheme           string
	Percentage         float64
	WeightedPercentage float64
	UsageLabel         UsageLabel
}

// FrequencySource tags which lookup answered a frequency request.
type FrequencySource string

const (
	FrequencySourceComprehensive FrequencySource = "comprehensive"
	FrequencySourceLegacy        FrequencySource = "legacy"
	FrequencySourceRecord        FrequencySource = "record"
	FrequencySourceNone          FrequencySource = "none"
)

func (s FrequencySource) String() string { return string(s) }

// ResolvedQuery is the outcome of running a raw query through the cascade.
type ResolvedQuery struct {
	RawInput          string
	NormalizedInput   string
	MatchedRecord     *PhonemeRecord
	Strategy          string
	RequestedGrapheme *string
	GraphemeIsValid   bool
}

// WordPositions holds example words classified by where the spelling occurs.
type WordPositions struct {
	Beginning []string `json:"beginning"`
	Medial    []string `json:"medial"`
	Ending    []string `json:"ending"`
}

// WordPositionMap maps a grapheme to its classified example words.
type WordPositionMap map[string]WordPositions
