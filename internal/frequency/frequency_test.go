package frequency

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

func record(symbol string, graphemes ...string) *domain.PhonemeRecord {
	return &domain.PhonemeRecord{ID: "ph_" + symbol, Symbol: symbol, Graphemes: graphemes}
}

func loadEmbedded(t *testing.T) *Tables {
	t.Helper()
	tables, err := Load(context.Background(), Paths{})
	require.NoError(t, err)
	return tables
}

// ---------------------------------------------------------------------------
// CanonicalKey
// ---------------------------------------------------------------------------

func TestCanonicalKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "/sh/", want: "sh"},
		{in: "SH", want: "sh"},
		{in: "/a/", want: "short_a"},
		{in: "a", want: "short_a"},
		{in: "/ă/", want: "short_a"},
		{in: "/ă/", want: "short_a"},
		{in: "/ā/", want: "long_a"},
		{in: "/ē/", want: "long_e"},
		{in: "/Ē/", want: "long_e"},
		{in: "voiced th", want: "th_voiced"},
		{in: "/ð/", want: "th_voiced"},
		{in: "unvoiced th", want: "th"},
		{in: "/θ/", want: "th"},
		{in: "long  u", want: "long_u"},
		{in: "r controlled", want: "r_controlled"},
		{in: "//", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CanonicalKey(tt.in))
		})
	}
}

// ---------------------------------------------------------------------------
// Labels
// ---------------------------------------------------------------------------

func TestLabelFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.UsagePrimary, LabelFor(50))
	assert.Equal(t, domain.UsagePrimary, LabelFor(97.4))
	assert.Equal(t, domain.UsageSecondary, LabelFor(49.99))
	assert.Equal(t, domain.UsageSecondary, LabelFor(10))
	assert.Equal(t, domain.UsageRare, LabelFor(9.9))
	assert.Equal(t, domain.UsageRare, LabelFor(1))
	assert.Equal(t, domain.UsageException, LabelFor(0.99))
	assert.Equal(t, domain.UsageException, LabelFor(0))
}

// ---------------------------------------------------------------------------
// Resolve
// ---------------------------------------------------------------------------

func TestResolve_ComprehensiveSortedDescending(t *testing.T) {
	t.Parallel()
	tables := loadEmbedded(t)

	res := tables.Resolve(record("/sh/", "sh", "ti", "ci", "si", "ssi", "ch"))

	assert.Equal(t, domain.FrequencySourceComprehensive, res.Source)
	assert.Equal(t, []string{"sh", "ti", "ci", "si", "ssi", "ch"}, res.Graphemes())
	for i := 1; i < len(res.Entries); i++ {
		assert.GreaterOrEqual(t, res.Entries[i-1].WeightedPercentage, res.Entries[i].WeightedPercentage)
	}
	assert.Equal(t, domain.UsagePrimary, res.Entries[0].UsageLabel)
	assert.Equal(t, domain.UsageSecondary, res.Entries[1].UsageLabel)
	assert.Equal(t, domain.UsageRare, res.Entries[2].UsageLabel)
}

func TestResolve_ComprehensiveWinsOverLegacy(t *testing.T) {
	t.Parallel()
	tables := loadEmbedded(t)

	res := tables.Resolve(record("/m/", "m", "mm"))

	assert.Equal(t, domain.FrequencySourceComprehensive, res.Source)
	require.Len(t, res.Entries, 2)
	assert.InDelta(t, 96.0, res.Entries[0].WeightedPercentage, 0.001)
}

func TestResolve_Legacy(t *testing.T) {
	t.Parallel()
	tables := loadEmbedded(t)

	res := tables.Resolve(record("/j/", "j", "g", "ge", "dge"))

	assert.Equal(t, domain.FrequencySourceLegacy, res.Source)
	assert.Equal(t, []string{"g", "j", "dge", "ge"}, res.Graphemes())
	for _, e := range res.Entries {
		assert.Equal(t, e.Percentage, e.WeightedPercentage)
	}
}

func TestResolve_AliasedKeys(t *testing.T) {
	t.Parallel()
	tables := loadEmbedded(t)

	tests := []struct {
		name   string
		rec    *domain.PhonemeRecord
		source domain.FrequencySource
		first  string
	}{
		{name: "bare vowel", rec: record("/a/", "a"), source: domain.FrequencySourceComprehensive, first: "a"},
		{name: "composed macron", rec: record("/ā/", "a_e"), source: domain.FrequencySourceComprehensive, first: "a_e"},
		{name: "decomposed key", rec: record("/ē/", "e_e"), source: domain.FrequencySourceComprehensive, first: "e"},
		{name: "stage name key", rec: record("/ū/", "u_e"), source: domain.FrequencySourceComprehensive, first: "u"},
		{name: "voiced th", rec: record("/ð/", "th"), source: domain.FrequencySourceComprehensive, first: "th"},
		{name: "slashed legacy key", rec: record("/kw/", "qu"), source: domain.FrequencySourceLegacy, first: "qu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := tables.Resolve(tt.rec)
			assert.Equal(t, tt.source, res.Source)
			require.NotEmpty(t, res.Entries)
			assert.Equal(t, tt.first, res.Entries[0].Grapheme)
		})
	}
}

func TestResolve_CommonNameFallback(t *testing.T) {
	t.Parallel()

	tables := NewTables(Table{"voiced th": {{Grapheme: "th", Percentage: 100, WeightedPercentage: 100, UsageLabel: domain.UsagePrimary}}}, nil)
	rec := &domain.PhonemeRecord{Symbol: "/dh-variant/", CommonName: "Voiced TH", Graphemes: []string{"th"}}

	res := tables.Resolve(rec)
	assert.Equal(t, domain.FrequencySourceComprehensive, res.Source)
}

func TestResolve_RecordFallback(t *testing.T) {
	t.Parallel()
	tables := loadEmbedded(t)

	res := tables.Resolve(record("/zh/", "s", "si", "ge"))

	assert.Equal(t, domain.FrequencySourceRecord, res.Source)
	assert.Equal(t, []domain.GraphemeFrequencyEntry{
		{Grapheme: "s", Percentage: 100, WeightedPercentage: 100, UsageLabel: domain.UsagePrimary},
		{Grapheme: "si", Percentage: 50, WeightedPercentage: 50, UsageLabel: domain.UsageSecondary},
		{Grapheme: "ge", Percentage: 50, WeightedPercentage: 50, UsageLabel: domain.UsageSecondary},
	}, res.Entries)
}

func TestResolve_NoData(t *testing.T) {
	t.Parallel()
	tables := NewTables(nil, nil)

	res := tables.Resolve(record("/q/"))
	assert.Equal(t, domain.FrequencySourceNone, res.Source)
	assert.False(t, res.HasData())
	assert.NotNil(t, res.Entries)

	assert.Equal(t, domain.FrequencySourceNone, tables.Resolve(nil).Source)
}

func TestResolve_StableTies(t *testing.T) {
	t.Parallel()

	tables := NewTables(Table{"/x/": {
		{Grapheme: "b", WeightedPercentage: 20},
		{Grapheme: "a", WeightedPercentage: 40},
		{Grapheme: "c", WeightedPercentage: 20},
	}}, nil)

	res := tables.Resolve(record("/x/"))
	assert.Equal(t, []string{"a", "b", "c"}, res.Graphemes())
}

func TestNewTables_MergesAliasedKeysDeterministically(t *testing.T) {
	t.Parallel()

	build := func() Table {
		return Table{
			"a":       {{Grapheme: "a", WeightedPercentage: 30}, {Grapheme: "ah", WeightedPercentage: 20}},
			"/ă/":     {{Grapheme: "a", WeightedPercentage: 10}, {Grapheme: "y", WeightedPercentage: 20}},
			"short_a": {{Grapheme: "a", WeightedPercentage: 40}, {Grapheme: "x", WeightedPercentage: 20}},
		}
	}

	for range 50 {
		res := NewTables(build(), nil).Resolve(record("/a/"))
		require.Equal(t, []string{"a", "x", "y", "ah"}, res.Graphemes())
		assert.InDelta(t, 40, res.Entries[0].WeightedPercentage, 0.001)
	}
}

func TestResolve_DoesNotMutateTable(t *testing.T) {
	t.Parallel()
	tables := loadEmbedded(t)

	res := tables.Resolve(record("/sh/"))
	res.Entries[0].Grapheme = "mutated"

	again := tables.Resolve(record("/sh/"))
	assert.Equal(t, "sh", again.Entries[0].Grapheme)
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

func TestLoad_Embedded(t *testing.T) {
	t.Parallel()
	tables := loadEmbedded(t)

	comprehensive, legacy := tables.Sizes()
	assert.Equal(t, 32, comprehensive)
	assert.Equal(t, 10, legacy)
}

func TestLoadComprehensive_MissingWeightedUsesPercentage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
phonemes:
  /x/:
    spellings:
      - {grapheme: X, percentage: 7}
      - {grapheme: "", percentage: 93}
`), 0o600))

	table, err := LoadComprehensive(path)
	require.NoError(t, err)
	require.Len(t, table["/x/"], 1)
	assert.Equal(t, domain.GraphemeFrequencyEntry{
		Grapheme: "x", Percentage: 7, WeightedPercentage: 7, UsageLabel: domain.UsageRare,
	}, table["/x/"][0])
}

func TestLoadLegacy_BadFile(t *testing.T) {
	t.Parallel()

	_, err := LoadLegacy(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frequency: legacy")
}
