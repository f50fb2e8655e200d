package content

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

// confusables are curated error lists for sounds whose errors are well known.
var confusables = map[string][]string{
	"sh": {
		"Substitutes /s/ for /sh/ (says 'sip' for 'ship'); check lip rounding.",
		"Confuses /sh/ with /ch/ (says 'chip' for 'ship'); /sh/ is continuous, /ch/ is a short burst.",
		"Spells /sh/ with 'ch' or 's' when writing; practise the 'sh' card.",
		"Misreads 'ti' and 'ci' in -tion and -cian as /t/ or /s/.",
	},
	"ch": {
		"Confuses /ch/ with /sh/ (says 'shop' for 'chop'); /ch/ starts with the tongue stuck up.",
		"Substitutes /t/ for /ch/, dropping the friction.",
		"Spells final /ch/ as 'ch' after a short vowel where 'tch' is expected.",
	},
	"th": {
		"Substitutes /f/ for /th/ (says 'fink' for 'think'); tongue must show between the teeth.",
		"Substitutes /t/ or /d/ for /th/ (says 'dis' for 'this').",
		"Does not distinguish voiced and unvoiced th; feel the throat buzz in 'this' versus 'thin'.",
	},
}

// substitutionTemplates turn a substitution code into an error sentence.
// %[1]s is the display symbol of the target phoneme.
var substitutionTemplates = map[string]string{
	"omission": "Leaves %[1]s out entirely, especially at the end of words; stretch the word slowly.",
	"/s/":      "Substitutes /s/ for %[1]s; compare the two in a mirror.",
	"/f/":      "Substitutes /f/ for %[1]s; check where the tongue and teeth are.",
	"/t/":      "Substitutes /t/ for %[1]s; the sound is clipped too short.",
	"/d/":      "Substitutes /d/ for %[1]s; feel the difference in the throat.",
	"/b/":      "Substitutes /b/ for %[1]s; check that the lips and voice are doing the right job.",
	"/p/":      "Substitutes /p/ for %[1]s; watch for a puff of air on the hand.",
	"/w/":      "Substitutes /w/ for %[1]s; common in younger learners and often developmental.",
	"/th/":     "Substitutes /th/ for %[1]s (a lisp); keep the tongue behind the teeth.",
	"/ch/":     "Substitutes /ch/ for %[1]s; the sound should be smooth, not a burst.",
	"/sh/":     "Substitutes /sh/ for %[1]s; check lip shape.",
	"/n/":      "Substitutes /n/ for %[1]s; check where the tongue touches.",
	"/m/":      "Substitutes /m/ for %[1]s; check whether the lips should close.",
	"/a/":      "Reads %[1]s as short a; point to the vowel spelling.",
	"/e/":      "Reads %[1]s as short e; practise with minimal pairs like bed and bid.",
	"/i/":      "Reads %[1]s as short i; practise with minimal pairs.",
	"/o/":      "Reads %[1]s as short o; practise with minimal pairs.",
	"/u/":      "Reads %[1]s as short u; point to the vowel spelling.",
}

const (
	genericSubstitution = "Substitutes %[2]s for %[1]s; model both sounds and have the learner say which is which."
	genericMonitoring   = "Listen for %[1]s when the learner reads aloud and note any sound used in its place."
)

// CommonErrors lists typical learner errors for the record's sound.
func CommonErrors(rec *domain.PhonemeRecord) []string {
	if list, ok := confusables[rec.BareSymbol()]; ok {
		return append([]string(nil), list...)
	}

	display := DisplaySymbol(rec)
	var subs []string
	if rec.Articulation != nil {
		subs = rec.Articulation.CommonSubstitutions
	}
	if len(subs) == 0 {
		return []string{fmt.Sprintf(genericMonitoring, display)}
	}

	out := make([]string, 0, len(subs))
	for _, code := range subs {
		code = strings.ToLower(strings.TrimSpace(code))
		if code == "" {
			continue
		}
		tmpl, ok := substitutionTemplates[code]
		if !ok {
			tmpl = genericSubstitution
		}
		out = append(out, fmt.Sprintf(tmpl, display, code))
	}
	if len(out) == 0 {
		return []string{fmt.Sprintf(genericMonitoring, display)}
	}
	return out
}
