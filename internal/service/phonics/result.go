package phonics

import (
	"encoding/json"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

// PhonemeData is the synthesized payload for one resolved query. Its JSON
// encoding is deterministic: struct fields keep declaration order and map
// keys are sorted by encoding/json.
type PhonemeData struct {
	Phoneme         PhonemeIdentity              `json:"phoneme"`
	Graphemes       []GraphemeView               `json:"graphemes"`
	FrequencySource domain.FrequencySource       `json:"frequency_source"`
	Articulation    *domain.ArticulationBlock    `json:"articulation"`
	Content         domain.TeachingContentBundle `json:"content"`
	WordLists       domain.WordPositionMap       `json:"word_lists"`
	Practice        domain.PracticeTexts         `json:"practice"`
	Research        []domain.Citation            `json:"research"`

	// Spelled queries only.
	ShowSpecificGrapheme      bool    `json:"show_specific_grapheme,omitempty"`
	RequestedSpecificGrapheme *string `json:"requested_specific_grapheme,omitempty"`
	InvalidGrapheme           *bool   `json:"invalid_grapheme,omitempty"`
}

// PhonemeIdentity describes which phoneme was resolved.
type PhonemeIdentity struct {
	ID            string `json:"id"`
	Symbol        string `json:"symbol"`
	DisplaySymbol string `json:"display_symbol"`
	IPA           string `json:"ipa"`
	CommonName    string `json:"common_name"`
	PhonemeType   string `json:"phoneme_type"`
	Stage         int    `json:"stage"`
	FrequencyRank *int   `json:"frequency_rank"`
}

// GraphemeView is one spelling of the phoneme. Statistics are present only
// when frequency data exists for the spelling.
type GraphemeView struct {
	Grapheme           string   `json:"grapheme"`
	Percentage         *float64 `json:"percentage,omitempty"`
	WeightedPercentage *float64 `json:"weighted_percentage,omitempty"`
	UsageLabel         string   `json:"usage_label,omitempty"`
}

// ResolveResult is returned by Service.Resolve.
type ResolveResult struct {
	PhonemeData       json.RawMessage
	PhonemeID         string
	Strategy          string
	CorrectionMessage *string
	Cached            bool
}

// BrowseItem is one row of the stage browser.
type BrowseItem struct {
	ID            string   `json:"id"`
	IPASymbol     string   `json:"ipa_symbol"`
	CommonName    string   `json:"common_name"`
	PhonemeType   string   `json:"phoneme_type"`
	FrequencyRank *int     `json:"frequency_rank"`
	StageID       int      `json:"stage_id"`
	Graphemes     []string `json:"graphemes"`
}

// BrowseResult is a page of phonemes plus the total before paging.
type BrowseResult struct {
	Phonemes []BrowseItem
	Total    int
}
