package corpus

import (
	"github.com/heartmarshall/phonics-backend/internal/domain"
)

// Repository is the load-once, read-only canonical corpus. Records are kept in
// scan order: every comprehensive record first, then every sample record, each
// in declaration order. It is safe for concurrent use because nothing mutates
// it after construction.
type Repository struct {
	records []*domain.PhonemeRecord
	stats   Stats
}

// Stats summarizes a corpus build for startup logs and health output.
type Stats struct {
	Comprehensive int
	Sample        int
	Skipped       int
}

// NewRepository adapts the raw collections and returns the canonical corpus.
// Records that cannot be adapted (no symbol) are skipped and counted.
func NewRepository(comprehensive []ComprehensiveRecord, sample []SampleRecord) *Repository {
	repo := &Repository{
		records: make([]*domain.PhonemeRecord, 0, len(comprehensive)+len(sample)),
	}

	for i := range comprehensive {
		rec, err := Adapt(&comprehensive[i])
		if err != nil {
			repo.stats.Skipped++
			continue
		}
		repo.records = append(repo.records, &rec)
		repo.stats.Comprehensive++
	}

	for i := range sample {
		rec, err := Adapt(&sample[i])
		if err != nil {
			repo.stats.Skipped++
			continue
		}
		repo.records = append(repo.records, &rec)
		repo.stats.Sample++
	}

	return repo
}

// NewRepositoryFromRecords builds a corpus from already-canonical records,
// keeping the given order. Intended for tests and tooling.
func NewRepositoryFromRecords(records ...domain.PhonemeRecord) *Repository {
	repo := &Repository{records: make([]*domain.PhonemeRecord, 0, len(records))}
	for i := range records {
		rec := records[i]
		repo.records = append(repo.records, &rec)
		switch rec.Source {
		case domain.CorpusSourceSample:
			repo.stats.Sample++
		default:
			repo.stats.Comprehensive++
		}
	}
	return repo
}

// All returns every record in scan order. The slice and the records it points
// to are shared and must not be modified.
func (r *Repository) All() []*domain.PhonemeRecord {
	return r.records
}

// Len returns the number of canonical records.
func (r *Repository) Len() int {
	return len(r.records)
}

// Stats returns load statistics.
func (r *Repository) Stats() Stats {
	return r.stats
}
