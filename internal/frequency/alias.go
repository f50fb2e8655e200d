package frequency

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

const (
	combiningBreve  = '\u0306'
	combiningMacron = '\u0304'
)

// aliases maps stage names and IPA spellings onto table keys.
var aliases = map[string]string{
	"voiced th":    "th_voiced",
	"ð":            "th_voiced",
	"dh":           "th_voiced",
	"unvoiced th":  "th",
	"voiceless th": "th",
	"θ":            "th",
	"ʃ":            "sh",
	"tʃ":           "ch",
	"ŋ":            "ng",
	"ʒ":            "zh",
	"short a":      "short_a",
	"short e":      "short_e",
	"short i":      "short_i",
	"short o":      "short_o",
	"short u":      "short_u",
	"long a":       "long_a",
	"long e":       "long_e",
	"long i":       "long_i",
	"long o":       "long_o",
	"long u":       "long_u",
}

// CanonicalKey maps a phoneme symbol or table key onto the key space shared
// by both frequency tables. Slashes are stripped, case is folded, and vowel
// spellings collapse onto short_X / long_X: a bare vowel letter or a breve
// means short, a macron means long. Composed and decomposed diacritics are
// treated the same.
func CanonicalKey(symbol string) string {
	key := norm.NFC.String(domain.NormalizeText(domain.StripSlashes(symbol)))
	if key == "" {
		return ""
	}
	if alias, ok := aliases[key]; ok {
		return alias
	}

	if len(key) == 1 && isVowelLetter(rune(key[0])) {
		return "short_" + key
	}

	decomposed := []rune(norm.NFD.String(key))
	if len(decomposed) == 2 && isVowelLetter(decomposed[0]) {
		switch decomposed[1] {
		case combiningBreve:
			return "short_" + string(decomposed[0])
		case combiningMacron:
			return "long_" + string(decomposed[0])
		}
	}

	return strings.ReplaceAll(key, " ", "_")
}

func isVowelLetter(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
