package content

import (
	"fmt"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

// DefaultResearchSources are cited when a record names none of its own.
var DefaultResearchSources = []string{
	"National Reading Panel (2000). Teaching Children to Read",
	"Ehri, L. C. (2014). Orthographic mapping in the acquisition of sight word reading",
	"Castles, A., Rastle, K., & Nation, K. (2018). Ending the reading wars",
}

// Research builds citations for the record. Sources listed under the
// record's "research_sources" metadata replace defaults.
func Research(rec *domain.PhonemeRecord, defaults []string) []domain.Citation {
	sources := defaults
	if own := sourceNames(rec.Metadata["research_sources"]); len(own) > 0 {
		sources = own
	}

	display := DisplaySymbol(rec)
	out := make([]domain.Citation, 0, len(sources))
	for _, s := range sources {
		out = append(out, domain.Citation{
			Source: s,
			Note:   fmt.Sprintf("Supports explicit, systematic instruction of %s and its spelling %s.", display, rec.PrimaryGrapheme()),
		})
	}
	return out
}

func sourceNames(raw any) []string {
	var out []string
	for _, v := range asList(raw) {
		switch s := v.(type) {
		case map[string]any:
			if name := scalar(s["source"]); name != "" {
				out = append(out, name)
			} else if name := scalar(s["name"]); name != "" {
				out = append(out, name)
			}
		default:
			if name := scalar(s); name != "" {
				out = append(out, name)
			}
		}
	}
	return out
}
