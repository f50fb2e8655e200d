package content

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

// MaxWordsPerPosition caps every word-list bucket.
const MaxWordsPerPosition = 5

type position int

const (
	posNone position = iota
	posBeginning
	posMedial
	posEnding
)

// vcePatterns match a silent-e spelling such as "a_e" inside a word: the
// vowel, one consonant, then e.
var vcePatterns = map[string]*regexp.Regexp{
	"a_e": regexp.MustCompile(`a[bcdfghjklmnpqrstvwxz]e`),
	"e_e": regexp.MustCompile(`e[bcdfghjklmnpqrstvwxz]e`),
	"i_e": regexp.MustCompile(`i[bcdfghjklmnpqrstvwxz]e`),
	"o_e": regexp.MustCompile(`o[bcdfghjklmnpqrstvwxz]e`),
	"u_e": regexp.MustCompile(`u[bcdfghjklmnpqrstvwxz]e`),
}

// matcher finds a spelling inside a lowercased word and returns the match
// offset and length, or -1.
type matcher func(word string) (offset, length int)

func matcherFor(grapheme string) matcher {
	if re, ok := vcePatterns[grapheme]; ok {
		return func(word string) (int, int) {
			loc := re.FindStringIndex(word)
			if loc == nil {
				return -1, 0
			}
			return loc[0], loc[1] - loc[0]
		}
	}
	return func(word string) (int, int) {
		return strings.Index(word, grapheme), len(grapheme)
	}
}

// classifier decides a word's bucket given where the spelling matched.
type classifier func(word, grapheme string, offset, length int) position

func classifyVowel(word, _ string, offset, length int) position {
	switch offset {
	case 0:
		return posBeginning
	case len(word) - length:
		return posEnding
	default:
		return posMedial
	}
}

func classifyConsonant(word, grapheme string, _, _ int) position {
	switch {
	case strings.HasPrefix(word, grapheme):
		return posBeginning
	case strings.HasSuffix(word, grapheme):
		return posEnding
	default:
		return posMedial
	}
}

// classifySh handles the /sh/ spellings: suffix spellings like -tion and
// -cian are word endings wherever they sit, and 'ch' is only initial or medial.
func classifySh(word, grapheme string, offset, length int) position {
	switch grapheme {
	case "ti", "ci", "si", "ssi":
		return posEnding
	case "ch":
		if strings.HasPrefix(word, "ch") {
			return posBeginning
		}
		return posMedial
	default:
		return classifyConsonant(word, grapheme, offset, length)
	}
}

func classifierFor(rec *domain.PhonemeRecord) classifier {
	switch {
	case rec.BareSymbol() == "sh":
		return classifySh
	case rec.IsVowel():
		return classifyVowel
	default:
		return classifyConsonant
	}
}

// WordLists classifies the record's example words by where each spelling
// occurs. Only the given graphemes (those with frequency data) get a key.
// Buckets are deduplicated case-insensitively, keep the first casing seen and
// hold at most MaxWordsPerPosition words.
func WordLists(rec *domain.PhonemeRecord, graphemes []string) domain.WordPositionMap {
	out := make(domain.WordPositionMap, len(graphemes))
	classify := classifierFor(rec)

	for _, g := range graphemes {
		g = strings.ToLower(strings.TrimSpace(g))
		if g == "" {
			continue
		}
		match := matcherFor(g)
		buckets := newPositionBuckets()

		for _, word := range rec.WordExamples {
			lower := strings.ToLower(word)
			offset, length := match(lower)
			if offset < 0 {
				continue
			}
			buckets.add(classify(lower, g, offset, length), word)
		}
		out[g] = buckets.result()
	}
	return out
}

type positionBuckets struct {
	words map[position][]string
	seen  map[position]map[string]struct{}
}

func newPositionBuckets() *positionBuckets {
	return &positionBuckets{
		words: map[position][]string{},
		seen: map[position]map[string]struct{}{
			posBeginning: {},
			posMedial:    {},
			posEnding:    {},
		},
	}
}

func (b *positionBuckets) add(pos position, word string) {
	seen, ok := b.seen[pos]
	if !ok {
		return
	}
	key := strings.ToLower(word)
	if _, dup := seen[key]; dup {
		return
	}
	if len(b.words[pos]) >= MaxWordsPerPosition {
		return
	}
	seen[key] = struct{}{}
	b.words[pos] = append(b.words[pos], word)
}

func (b *positionBuckets) result() domain.WordPositions {
	return domain.WordPositions{
		Beginning: listOrEmpty(b.words[posBeginning]),
		Medial:    listOrEmpty(b.words[posMedial]),
		Ending:    listOrEmpty(b.words[posEnding]),
	}
}
