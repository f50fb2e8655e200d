// Package content synthesizes teaching material for a resolved phoneme:
// articulation guidance, explanations, rules, tips, common errors,
// position-classified word lists, practice texts and research citations.
//
// Every helper is total. Missing or oddly shaped corpus fields degrade to
// generic content, never to an error.
package content

import (
	"golang.org/x/text/unicode/norm"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

const combiningBreve = "\u0306"

// DisplaySymbol returns the symbol shown to learners. Short vowels carry a
// breve (/a/ becomes /ă/); everything else is the record symbol.
func DisplaySymbol(rec *domain.PhonemeRecord) string {
	if rec.IsShortVowel() {
		return "/" + norm.NFC.String(rec.BareSymbol()+combiningBreve) + "/"
	}
	return rec.Symbol
}
