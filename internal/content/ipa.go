package content

import (
	"strings"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

// arpabetMap maps ARPAbet phonemes to IPA. AX is the unstressed schwa.
var arpabetMap = map[string]string{
	"AA": "ɑ",
	"AE": "æ",
	"AH": "ʌ",
	"AO": "ɔ",
	"AW": "aʊ",
	"AX": "ə",
	"AY": "aɪ",
	"B":  "b",
	"CH": "tʃ",
	"D":  "d",
	"DH": "ð",
	"EH": "ɛ",
	"ER": "ɝ",
	"EY": "eɪ",
	"F":  "f",
	"G":  "ɡ",
	"HH": "h",
	"IH": "ɪ",
	"IY": "i",
	"JH": "dʒ",
	"K":  "k",
	"L":  "l",
	"M":  "m",
	"N":  "n",
	"NG": "ŋ",
	"OW": "oʊ",
	"OY": "ɔɪ",
	"P":  "p",
	"R":  "ɹ",
	"S":  "s",
	"SH": "ʃ",
	"T":  "t",
	"TH": "θ",
	"UH": "ʊ",
	"UW": "u",
	"V":  "v",
	"W":  "w",
	"Y":  "j",
	"Z":  "z",
	"ZH": "ʒ",
}

// phonicsToArpabet spells classroom phonics symbols as ARPAbet sequences.
var phonicsToArpabet = map[string][]string{
	"a": {"AE"}, "e": {"EH"}, "i": {"IH"}, "o": {"AA"}, "u": {"AH"},
	"ă": {"AE"}, "ĕ": {"EH"}, "ĭ": {"IH"}, "ŏ": {"AA"}, "ŭ": {"AH"},
	"ā": {"EY"}, "ē": {"IY"}, "ī": {"AY"}, "ō": {"OW"}, "ū": {"Y", "UW"},
	"b": {"B"}, "d": {"D"}, "f": {"F"}, "g": {"G"}, "h": {"HH"},
	"j": {"JH"}, "k": {"K"}, "c": {"K"}, "l": {"L"}, "m": {"M"},
	"n": {"N"}, "p": {"P"}, "r": {"R"}, "s": {"S"}, "t": {"T"},
	"v": {"V"}, "w": {"W"}, "y": {"Y"}, "z": {"Z"},
	"sh": {"SH"}, "ch": {"CH"}, "th": {"TH"}, "ð": {"DH"}, "zh": {"ZH"},
	"ng": {"NG"}, "ks": {"K", "S"}, "x": {"K", "S"}, "kw": {"K", "W"}, "qu": {"K", "W"},
	"oi": {"OY"}, "ou": {"AW"}, "oo": {"UW"}, "ŏŏ": {"UH"}, "aw": {"AO"},
	"ar": {"AA", "R"}, "or": {"AO", "R"}, "er": {"ER"},
	"ə": {"AX"}, "shun": {"SH", "AX", "N"},
}

// IPA renders the record symbol in IPA, wrapped in slashes. Symbols with no
// known spelling are returned as authored.
func IPA(rec *domain.PhonemeRecord) string {
	bare := domain.NormalizeText(rec.BareSymbol())
	seq, ok := phonicsToArpabet[bare]
	if !ok {
		return rec.Symbol
	}

	var b strings.Builder
	b.WriteByte('/')
	for _, p := range seq {
		b.WriteString(arpabetMap[p])
	}
	b.WriteByte('/')
	return b.String()
}
