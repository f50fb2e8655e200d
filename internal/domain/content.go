package domain

// ContentItem is a single teaching statement with a display icon.
type ContentItem struct {
	Content string `json:"content"`
	Icon    string `json:"icon"`
}

// TeachingContentBundle groups the pedagogical content for one phoneme.
type TeachingContentBundle struct {
	Explanations []ContentItem `json:"explanations"`
	Rules        []ContentItem `json:"rules"`
	Tips         []ContentItem `json:"tips"`
	CommonErrors []string      `json:"common_errors"`
}

// ArticulationBlock is the production guidance rendered for a phoneme.
// Vowel-only fields are omitted for consonants.
type ArticulationBlock struct {
	Place               string   `json:"place"`
	Manner              string   `json:"manner"`
	Voicing             string   `json:"voicing"`
	Cue                 string   `json:"cue"`
	Tips                string   `json:"tips"`
	LipShape            string   `json:"lip_shape"`
	Airflow             string   `json:"airflow"`
	TongueHeight        string   `json:"tongue_height,omitempty"`
	TongueBackness      string   `json:"tongue_backness,omitempty"`
	CommonSubstitutions []string `json:"common_substitutions"`
}

// Story is a short decodable text attached to a phoneme.
type Story struct {
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
}

// PracticeTexts groups connected-text practice material.
type PracticeTexts struct {
	Sentences   []string `json:"sentences"`
	Stories     []Story  `json:"stories"`
	WordLadders []string `json:"word_ladders"`
}

// Citation is a research reference rendered for a phoneme.
type Citation struct {
	Source string `json:"source"`
	Note   string `json:"note"`
}
