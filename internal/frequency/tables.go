// Package frequency answers "how is this phoneme usually spelled" from two
// independently authored frequency tables, falling back to the record's own
// grapheme list.
package frequency

import (
	"context"
	"embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

//go:embed data/comprehensive_frequency.yaml data/legacy_frequency.yaml
var embedded embed.FS

const (
	embeddedComprehensive = "data/comprehensive_frequency.yaml"
	embeddedLegacy        = "data/legacy_frequency.yaml"
)

// Paths overrides the embedded tables. Empty fields use the embedded data.
type Paths struct {
	Comprehensive string
	Legacy        string
}

type comprehensiveFile struct {
	Version  int                           `yaml:"version"`
	Phonemes map[string]comprehensiveEntry `yaml:"phonemes"`
}

type comprehensiveEntry struct {
	SampleSize int                  `yaml:"sample_size"`
	Spellings  []comprehensiveSpell `yaml:"spellings"`
}

type comprehensiveSpell struct {
	Grapheme           string   `yaml:"grapheme"`
	Percentage         float64  `yaml:"percentage"`
	WeightedPercentage *float64 `yaml:"weighted_percentage"`
}

type legacySpell struct {
	Grapheme   string  `yaml:"grapheme"`
	Percentage float64 `yaml:"percentage"`
}

// Table maps a canonical key to its spelling rows in authored order.
type Table map[string][]domain.GraphemeFrequencyEntry

// Tables holds both frequency tables. It is immutable after construction.
type Tables struct {
	comprehensive Table
	legacy        Table
}

// NewTables builds Tables from already-decoded tables. Keys are
// canonicalized; rows under keys that collapse together are merged (see
// canonicalize).
func NewTables(comprehensive, legacy Table) *Tables {
	return &Tables{
		comprehensive: canonicalize(comprehensive),
		legacy:        canonicalize(legacy),
	}
}

// Sizes reports how many phonemes each table covers.
func (t *Tables) Sizes() (comprehensive, legacy int) {
	return len(t.comprehensive), len(t.legacy)
}

// Load reads both tables concurrently.
func Load(ctx context.Context, paths Paths) (*Tables, error) {
	var comprehensive, legacy Table

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		comprehensive, err = LoadComprehensive(paths.Comprehensive)
		return err
	})
	g.Go(func() error {
		var err error
		legacy, err = LoadLegacy(paths.Legacy)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewTables(comprehensive, legacy), nil
}

// LoadComprehensive decodes the weighted table.
func LoadComprehensive(path string) (Table, error) {
	data, err := readSource(path, embeddedComprehensive)
	if err != nil {
		return nil, fmt.Errorf("frequency: comprehensive: %w", err)
	}

	var f comprehensiveFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("frequency: comprehensive: decode: %w", err)
	}

	table := make(Table, len(f.Phonemes))
	for key, entry := range f.Phonemes {
		rows := make([]domain.GraphemeFrequencyEntry, 0, len(entry.Spellings))
		for _, s := range entry.Spellings {
			g := strings.ToLower(strings.TrimSpace(s.Grapheme))
			if g == "" {
				continue
			}
			weighted := s.Percentage
			if s.WeightedPercentage != nil {
				weighted = *s.WeightedPercentage
			}
			rows = append(rows, domain.GraphemeFrequencyEntry{
				Grapheme:           g,
				Percentage:         s.Percentage,
				WeightedPercentage: weighted,
				UsageLabel:         LabelFor(weighted),
			})
		}
		table[key] = rows
	}
	return table, nil
}

// LoadLegacy decodes the unweighted table. Weighted percentage is set to the
// raw percentage.
func LoadLegacy(path string) (Table, error) {
	data, err := readSource(path, embeddedLegacy)
	if err != nil {
		return nil, fmt.Errorf("frequency: legacy: %w", err)
	}

	var raw map[string][]legacySpell
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("frequency: legacy: decode: %w", err)
	}

	table := make(Table, len(raw))
	for key, spells := range raw {
		rows := make([]domain.GraphemeFrequencyEntry, 0, len(spells))
		for _, s := range spells {
			g := strings.ToLower(strings.TrimSpace(s.Grapheme))
			if g == "" {
				continue
			}
			rows = append(rows, domain.GraphemeFrequencyEntry{
				Grapheme:           g,
				Percentage:         s.Percentage,
				WeightedPercentage: s.Percentage,
				UsageLabel:         LabelFor(s.Percentage),
			})
		}
		table[key] = rows
	}
	return table, nil
}

// canonicalize merges source keys that collapse to the same canonical key.
// A key already in canonical form contributes first, remaining aliases follow
// in lexical order. A grapheme appearing under several aliases keeps its
// first row only.
func canonicalize(in Table) Table {
	keys := make([]string, 0, len(in))
	for key := range in {
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(a, b string) int {
		ca, cb := CanonicalKey(a) == a, CanonicalKey(b) == b
		switch {
		case ca && !cb:
			return -1
		case cb && !ca:
			return 1
		default:
			return strings.Compare(a, b)
		}
	})

	out := make(Table, len(in))
	seen := make(map[string]map[string]struct{}, len(in))
	for _, key := range keys {
		k := CanonicalKey(key)
		if k == "" {
			continue
		}
		if seen[k] == nil {
			seen[k] = make(map[string]struct{})
		}
		for _, row := range in[key] {
			if _, dup := seen[k][row.Grapheme]; dup {
				continue
			}
			seen[k][row.Grapheme] = struct{}{}
			out[k] = append(out[k], row)
		}
	}
	return out
}

func readSource(path, fallback string) ([]byte, error) {
	if path == "" {
		return embedded.ReadFile(fallback)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
