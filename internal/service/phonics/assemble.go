package phonics

import (
	"github.com/heartmarshall/phonics-backend/internal/content"
	"github.com/heartmarshall/phonics-backend/internal/domain"
	"github.com/heartmarshall/phonics-backend/internal/frequency"
)

// assemble composes the phoneme payload for a resolved query.
func assemble(rq domain.ResolvedQuery, freq frequency.Result, research []string) PhonemeData {
	rec := rq.MatchedRecord

	data := PhonemeData{
		Phoneme: PhonemeIdentity{
			ID:            rec.ID,
			Symbol:        rec.Symbol,
			DisplaySymbol: content.DisplaySymbol(rec),
			IPA:           content.IPA(rec),
			CommonName:    rec.CommonName,
			PhonemeType:   rec.PhonemeType,
			Stage:         rec.Stage,
			FrequencyRank: rec.FrequencyRank,
		},
		Graphemes:       graphemeViews(rec, freq),
		FrequencySource: freq.Source,
		Articulation:    content.Articulation(rec),
		Content:         content.Bundle(rec),
		WordLists:       content.WordLists(rec, freq.Graphemes()),
		Practice:        content.Practice(rec),
		Research:        content.Research(rec, research),
	}

	if rq.RequestedGrapheme != nil {
		requested := *rq.RequestedGrapheme
		invalid := !rq.GraphemeIsValid
		data.ShowSpecificGrapheme = true
		data.RequestedSpecificGrapheme = &requested
		data.InvalidGrapheme = &invalid
	}
	return data
}

// graphemeViews lists spellings with statistics first, in frequency order,
// then any record spellings the frequency data does not cover.
func graphemeViews(rec *domain.PhonemeRecord, freq frequency.Result) []GraphemeView {
	views := make([]GraphemeView, 0, len(rec.Graphemes)+len(freq.Entries))
	seen := make(map[string]struct{}, cap(views))

	for _, e := range freq.Entries {
		pct, weighted := e.Percentage, e.WeightedPercentage
		views = append(views, GraphemeView{
			Grapheme:           e.Grapheme,
			Percentage:         &pct,
			WeightedPercentage: &weighted,
			UsageLabel:         e.UsageLabel.String(),
		})
		seen[e.Grapheme] = struct{}{}
	}
	for _, g := range rec.Graphemes {
		if _, ok := seen[g]; ok {
			continue
		}
		seen[g] = struct{}{}
		views = append(views, GraphemeView{Grapheme: g})
	}
	return views
}
