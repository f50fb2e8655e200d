package corpus

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

//go:embed data/comprehensive.yaml data/sample.json data/sample.schema.json
var embedded embed.FS

const (
	embeddedComprehensive = "data/comprehensive.yaml"
	embeddedSample        = "data/sample.json"
	embeddedSampleSchema  = "data/sample.schema.json"
)

// Paths overrides the embedded collections. Empty fields use the embedded data.
type Paths struct {
	Comprehensive string
	Sample        string
}

// Load reads both collections concurrently and returns the canonical corpus.
func Load(ctx context.Context, paths Paths) (*Repository, error) {
	var (
		comprehensive []ComprehensiveRecord
		sample        []SampleRecord
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		comprehensive, err = LoadComprehensive(paths.Comprehensive)
		return err
	})
	g.Go(func() error {
		var err error
		sample, err = LoadSample(paths.Sample)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewRepository(comprehensive, sample), nil
}

// LoadComprehensive decodes the comprehensive YAML collection.
func LoadComprehensive(path string) ([]ComprehensiveRecord, error) {
	data, err := readSource(path, embeddedComprehensive)
	if err != nil {
		return nil, fmt.Errorf("corpus: comprehensive: %w", err)
	}

	var f comprehensiveFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("corpus: comprehensive: decode: %w", err)
	}
	return f.Phonemes, nil
}

// LoadSample validates the sample JSON collection against its schema and decodes it.
func LoadSample(path string) ([]SampleRecord, error) {
	data, err := readSource(path, embeddedSample)
	if err != nil {
		return nil, fmt.Errorf("corpus: sample: %w", err)
	}

	if err := validateSample(data); err != nil {
		return nil, fmt.Errorf("corpus: sample: %w", err)
	}

	var f sampleFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("corpus: sample: decode: %w", err)
	}
	return f.Phonemes, nil
}

func validateSample(data []byte) error {
	schema, err := embedded.ReadFile(embeddedSampleSchema)
	if err != nil {
		return fmt.Errorf("read schema: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return fmt.Errorf("schema violations: %s", strings.Join(msgs, "; "))
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
