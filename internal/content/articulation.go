package content

import (
	"strings"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

type consonantProfile struct {
	place   string
	manner  string
	voicing string
	lips    string
	airflow string
}

const (
	placeBilabial     = "bilabial (both lips)"
	placeLabiodental  = "labiodental (top teeth on bottom lip)"
	placeDental       = "dental (tongue between teeth)"
	placeAlveolar     = "alveolar (tongue behind top teeth)"
	placePostalveolar = "postalveolar (just behind the tooth ridge)"
	placePalatal      = "palatal (middle of tongue to roof of mouth)"
	placeVelar        = "velar (back of tongue on soft palate)"
	placeGlottal      = "glottal (throat)"
	placeLabiovelar   = "labiovelar (rounded lips, back of tongue raised)"

	voiced    = "voiced"
	voiceless = "voiceless"
)

// consonantProfiles is searched in order: first an exact match on the bare
// symbol, then the first key the symbol contains. Multi-letter keys come
// before the single letters they contain.
var consonantProfiles = []struct {
	keys    []string
	profile consonantProfile
}{
	{[]string{"ð", "th_voiced"}, consonantProfile{placeDental, "fricative", voiced, "relaxed, tongue tip visible", "continuous, with voice"}},
	{[]string{"th", "θ"}, consonantProfile{placeDental, "fricative", voiceless, "relaxed, tongue tip visible", "continuous, no voice"}},
	{[]string{"sh", "ʃ"}, consonantProfile{placePostalveolar, "fricative", voiceless, "rounded and pushed forward", "wide, soft stream"}},
	{[]string{"zh", "ʒ"}, consonantProfile{placePostalveolar, "fricative", voiced, "rounded and pushed forward", "wide stream, with voice"}},
	{[]string{"ch", "tʃ"}, consonantProfile{placePostalveolar, "affricate", voiceless, "rounded", "stopped, then released as friction"}},
	{[]string{"ng", "ŋ"}, consonantProfile{placeVelar, "nasal", voiced, "open", "through the nose"}},
	{[]string{"kw", "qu"}, consonantProfile{placeVelar, "stop + glide", voiceless, "rounding into /w/", "short burst, then a glide"}},
	{[]string{"ks", "x"}, consonantProfile{placeVelar, "stop + fricative", voiceless, "neutral", "short burst, then a hiss"}},
	{[]string{"m"}, consonantProfile{placeBilabial, "nasal", voiced, "lips pressed together", "through the nose"}},
	{[]string{"p"}, consonantProfile{placeBilabial, "stop", voiceless, "lips pressed, then popped open", "short puff"}},
	{[]string{"b"}, consonantProfile{placeBilabial, "stop", voiced, "lips pressed, then popped open", "short burst, with voice"}},
	{[]string{"f"}, consonantProfile{placeLabiodental, "fricative", voiceless, "top teeth resting on bottom lip", "continuous, no voice"}},
	{[]string{"v"}, consonantProfile{placeLabiodental, "fricative", voiced, "top teeth resting on bottom lip", "continuous, with voice"}},
	{[]string{"t"}, consonantProfile{placeAlveolar, "stop", voiceless, "neutral", "short puff"}},
	{[]string{"d"}, consonantProfile{placeAlveolar, "stop", voiced, "neutral", "short burst, with voice"}},
	{[]string{"n"}, consonantProfile{placeAlveolar, "nasal", voiced, "slightly open", "through the nose"}},
	{[]string{"s"}, consonantProfile{placeAlveolar, "fricative", voiceless, "slight smile, teeth close", "steady hiss over the tongue tip"}},
	{[]string{"z"}, consonantProfile{placeAlveolar, "fricative", voiced, "slight smile, teeth close", "steady buzz over the tongue tip"}},
	{[]string{"l"}, consonantProfile{placeAlveolar, "lateral approximant", voiced, "slightly open", "around the sides of the tongue"}},
	{[]string{"r"}, consonantProfile{placeAlveolar, "approximant", voiced, "slightly rounded", "continuous, tongue not touching"}},
	{[]string{"j"}, consonantProfile{placePostalveolar, "affricate", voiced, "rounded", "stopped, then released with voice"}},
	{[]string{"y"}, consonantProfile{placePalatal, "glide", voiced, "spread", "gliding into the next vowel"}},
	{[]string{"k", "c"}, consonantProfile{placeVelar, "stop", voiceless, "neutral", "short puff from the back"}},
	{[]string{"g"}, consonantProfile{placeVelar, "stop", voiced, "neutral", "short burst from the back, with voice"}},
	{[]string{"h"}, consonantProfile{placeGlottal, "fricative", voiceless, "open, shaped by the next vowel", "a breath from the throat"}},
	{[]string{"w"}, consonantProfile{placeLabiovelar, "glide", voiced, "tightly rounded", "gliding into the next vowel"}},
}

// stageMannerDefaults fills manner and voicing when neither the record nor
// the symbol profile knows them.
var stageMannerDefaults = map[int][2]string{
	1: {"single consonant", "feel your throat: buzz means voiced"},
	2: {"digraph (two letters, one sound)", "feel your throat: buzz means voiced"},
	3: {"consonant cluster", "mixed: each sound keeps its own voicing"},
	7: {"less common consonant", "feel your throat: buzz means voiced"},
}

var defaultMannerVoicing = [2]string{"consonant", "feel your throat: buzz means voiced"}

func profileFor(bare string) (consonantProfile, bool) {
	for _, p := range consonantProfiles {
		for _, k := range p.keys {
			if bare == k {
				return p.profile, true
			}
		}
	}
	for _, p := range consonantProfiles {
		for _, k := range p.keys {
			if strings.Contains(bare, k) {
				return p.profile, true
			}
		}
	}
	return consonantProfile{}, false
}

// Articulation renders production guidance. Records without articulation
// data yield nil. Authored fields always win; the rest come from the
// symbol and stage heuristics.
func Articulation(rec *domain.PhonemeRecord) *domain.ArticulationBlock {
	a := rec.Articulation
	if a == nil {
		return nil
	}
	if rec.IsVowel() {
		return vowelArticulation(rec, a)
	}
	return consonantArticulation(rec, a)
}

func consonantArticulation(rec *domain.PhonemeRecord, a *domain.ArticulationData) *domain.ArticulationBlock {
	profile, known := profileFor(rec.BareSymbol())
	fallback, ok := stageMannerDefaults[rec.Stage]
	if !ok {
		fallback = defaultMannerVoicing
	}
	if !known {
		profile = consonantProfile{
			place:   "varies; watch the mouth in a mirror",
			manner:  fallback[0],
			voicing: fallback[1],
			lips:    "watch the mouth in a mirror",
			airflow: "steady",
		}
	}

	display := DisplaySymbol(rec)
	return &domain.ArticulationBlock{
		Place:               firstNonEmpty(a.Place, profile.place),
		Manner:              firstNonEmpty(a.Manner, profile.manner),
		Voicing:             firstNonEmpty(a.Voicing, profile.voicing),
		Cue:                 firstNonEmpty(a.Cue, "Watch my mouth and copy the shape as we say "+display+" together."),
		Tips:                firstNonEmpty(a.Tips, "Use a mirror so the learner can see and feel "+display+"."),
		LipShape:            firstNonEmpty(a.LipPosition, profile.lips),
		Airflow:             firstNonEmpty(a.Airflow, profile.airflow),
		CommonSubstitutions: listOrEmpty(a.CommonSubstitutions),
	}
}

func vowelArticulation(rec *domain.PhonemeRecord, a *domain.ArticulationData) *domain.ArticulationBlock {
	height, backness := splitTonguePosition(a.TonguePosition)
	display := DisplaySymbol(rec)

	place := "open vocal tract"
	if height != "" {
		place = "tongue " + height
		if backness != "" {
			place += " and " + backness
		}
	}

	manner := "vowel"
	if rec.Stage == 4 {
		manner = "long vowel (says its name)"
	} else if rec.IsShortVowel() {
		manner = "short vowel"
	}

	return &domain.ArticulationBlock{
		Place:               firstNonEmpty(a.Place, place),
		Manner:              firstNonEmpty(a.Manner, manner),
		Voicing:             firstNonEmpty(a.Voicing, voiced),
		Cue:                 firstNonEmpty(a.Cue, "Open your mouth and hold "+display+" steady."),
		Tips:                firstNonEmpty(a.Tips, "Contrast "+display+" with a neighbouring vowel so the learner hears the difference."),
		LipShape:            firstNonEmpty(a.LipRounding, a.LipPosition, "relaxed"),
		Airflow:             firstNonEmpty(a.VowelAirflow, a.Airflow, "open and unobstructed"),
		TongueHeight:        height,
		TongueBackness:      backness,
		CommonSubstitutions: listOrEmpty(a.CommonSubstitutions),
	}
}

// splitTonguePosition splits "low, front" into its height and backness parts.
func splitTonguePosition(pos string) (height, backness string) {
	h, b, _ := strings.Cut(pos, ",")
	return strings.TrimSpace(h), strings.TrimSpace(b)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func listOrEmpty(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
