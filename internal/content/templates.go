package content

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

const (
	iconBook   = "📖"
	iconMouth  = "👄"
	iconLetter = "🔤"
	iconRule   = "📏"
	iconBulb   = "💡"
	iconHand   = "✋"
	iconTarget = "🎯"
	iconEar    = "👂"
)

// templateVars is what every template may interpolate.
type templateVars struct {
	Grapheme  string // primary spelling
	Display   string // learner-facing symbol
	Spellings string // all spellings, comma separated
	Vowel     bool
}

func varsFor(rec *domain.PhonemeRecord) templateVars {
	spellings := make([]string, 0, len(rec.Graphemes))
	for _, g := range rec.Graphemes {
		spellings = append(spellings, "'"+g+"'")
	}
	if len(spellings) == 0 {
		spellings = append(spellings, "'"+rec.PrimaryGrapheme()+"'")
	}
	return templateVars{
		Grapheme:  rec.PrimaryGrapheme(),
		Display:   DisplaySymbol(rec),
		Spellings: strings.Join(spellings, ", "),
		Vowel:     rec.IsVowel(),
	}
}

type templateFunc func(v templateVars) []domain.ContentItem

// defaultBucket is the mandatory fallback entry of every template table.
const defaultBucket = 0

// stageBucket maps a stage onto a table key: 1..7 map to themselves,
// anything from 8 up shares bucket 8, and unknown stages use the default.
func stageBucket(stage int) int {
	switch {
	case stage >= 8:
		return 8
	case stage >= domain.MinStage:
		return stage
	default:
		return defaultBucket
	}
}

func lookup(table map[int]templateFunc, stage int) templateFunc {
	if fn, ok := table[stageBucket(stage)]; ok {
		return fn
	}
	return table[defaultBucket]
}

func item(icon, format string, args ...any) domain.ContentItem {
	return domain.ContentItem{Content: fmt.Sprintf(format, args...), Icon: icon}
}

// ---------------------------------------------------------------------------
// Explanations
// ---------------------------------------------------------------------------

var explanationTable = map[int]templateFunc{
	defaultBucket: func(v templateVars) []domain.ContentItem {
		return []domain.ContentItem{
			item(iconBook, "The sound %s is most often spelled %s.", v.Display, v.Grapheme),
			item(iconLetter, "Other spellings you may meet: %s.", v.Spellings),
		}
	},
	1: func(v templateVars) []domain.ContentItem {
		if v.Vowel {
			return []domain.ContentItem{
				item(iconBook, "%s is a short vowel sound. It is quick and the mouth stays relaxed.", v.Display),
				item(iconLetter, "The letter %s usually makes %s in short, closed words like CVC words.", v.Grapheme, v.Display),
			}
		}
		return []domain.ContentItem{
			item(iconBook, "%s is one of the first consonant sounds learners map to a letter.", v.Display),
			item(iconLetter, "The letter %s makes %s. Spellings: %s.", v.Grapheme, v.Display, v.Spellings),
		}
	},
	2: func(v templateVars) []domain.ContentItem {
		return []domain.ContentItem{
			item(iconBook, "%s is a digraph sound: two letters work together to make one new sound.", v.Display),
			item(iconLetter, "The letters %s make %s, which is different from either letter alone.", v.Grapheme, v.Display),
		}
	},
	3: func(v templateVars) []domain.ContentItem {
		return []domain.ContentItem{
			item(iconBook, "%s blends two sounds that are usually written together.", v.Display),
			item(iconLetter, "Spell it with %s.", v.Spellings),
		}
	},
	4: func(v templateVars) []domain.ContentItem {
		return []domain.ContentItem{
			item(iconBook, "%s is a long vowel: the vowel says its own name.", v.Display),
			item(iconLetter, "Common spellings include %s, including the silent-e pattern.", v.Spellings),
		}
	},
	5: func(v templateVars) []domain.ContentItem {
		return []domain.ContentItem{
			item(iconBook, "%s is a vowel team sound. The mouth glides or holds a new vowel shape.", v.Display),
			item(iconLetter, "Look for the teams %s inside words.", v.Spellings),
		}
	},
	6: func(v templateVars) []domain.ContentItem {
		return []domain.ContentItem{
			item(iconBook, "%s is an r-controlled vowel: the r changes the vowel sound before it.", v.Display),
			item(iconLetter, "Spelled %s. The vowel is neither short nor long.", v.Spellings),
		}
	},
	7: func(v templateVars) []domain.ContentItem {
		return []domain.ContentItem{
			item(iconBook, "%s is a less common sound with several spellings.", v.Display),
			item(iconLetter, "Spellings to know: %s.", v.Spellings),
		}
	},
	8: func(v templateVars) []domain.ContentItem {
		return []domain.ContentItem{
			item(iconBook, "%s shows up in longer, multisyllable words.", v.Display),
			item(iconLetter, "It is often spelled %s and is usually found in unstressed syllables or word parts.", v.Spellings),
		}
	},
}

// ---------------------------------------------------------------------------
// Rules (how to teach)
// ---------------------------------------------------------------------------

var ruleTable = map[int]templateFunc{
	defaultBucket: func(v templateVars) []domain.ContentItem {
		return []domain.ContentItem{
			item(iconRule, "Introduce %s with its most common spelling, %s, before the alternatives.", v.Display, v.Grapheme),
			item(iconRule, "Practise reading and spelling %s words in the same lesson.", v.Grapheme),
		}
	},
	1: func(v templateVars) []domain.ContentItem {
		if v.Vowel {
			return []domain.ContentItem{
				item(iconRule, "Teach %s in closed syllables first (consonant-vowel-consonant).", v.Display),
				item(iconRule, "Contrast %s with other short vowels using minimal pairs.", v.Display),
			}
		}
		return []domain.ContentItem{
			item(iconRule, "Teach the letter-sound link for %s explicitly and review it daily.", v.Grapheme),
			item(iconRule, "Move from isolated sound to CVC blending as soon as %s is secure.", v.Display),
		}
	},
	2: func(v templateVars) []domain.ContentItem {
		return []domain.ContentItem{
			item(iconRule, "Teach %s as one unit: have learners underline both letters together.", v.Grapheme),
			item(iconRule, "Sort words by where %s appears (beginning, middle, end).", v.Grapheme),
		}
	},
	3: func(v templateVars) []domain.ContentItem {
		return []domain.ContentItem{
			item(iconRule, "Have learners tap each sound in %s, then blend them together.", v.Display),
		}
	},
	4: func(v templateVars) []domain.ContentItem {
		return []domain.ContentItem{
			item(iconRule, "Teach the silent-e pattern: the e makes the vowel say its name."),
			item(iconRule, "Introduce vowel teams (%s) after the silent-e pattern is secure.", v.Spellings),
		}
	},
	5: func(v templateVars) []domain.ContentItem {
		return []domain.ContentItem{
			item(iconRule, "Teach position patterns: some teams appear mid-word, others at the end."),
			item(iconRule, "Use word sorts to compare %s spellings.", v.Spellings),
		}
	},
	6: func(v templateVars) []domain.ContentItem {
		return []domain.ContentItem{
			item(iconRule, "Teach %s as a single chunk so learners do not sound out the vowel and r separately.", v.Grapheme),
		}
	},
	8: func(v templateVars) []domain.ContentItem {
		return []domain.ContentItem{
			item(iconRule, "Teach syllable division first, then identify where %s falls.", v.Display),
		}
	},
}

// ---------------------------------------------------------------------------
// Tips (classroom practice)
// ---------------------------------------------------------------------------

var tipTable = map[int]templateFunc{
	defaultBucket: func(v templateVars) []domain.ContentItem {
		return []domain.ContentItem{
			item(iconBulb, "Build a word wall for %s and add new words as learners find them.", v.Display),
			item(iconTarget, "Keep practice short and frequent: five minutes a day beats one long session."),
		}
	},
	1: func(v templateVars) []domain.ContentItem {
		return []domain.ContentItem{
			item(iconHand, "Pair %s with a gesture or picture cue and use it every time.", v.Display),
			item(iconBulb, "Use letter tiles: learners swap %s in and out of CVC words.", v.Grapheme),
		}
	},
	2: func(v templateVars) []domain.ContentItem {
		return []domain.ContentItem{
			item(iconHand, "Give learners a two-letter card for %s so they see it as one piece.", v.Grapheme),
			item(iconEar, "Play listen-and-sort: is %s at the start or the end?", v.Display),
		}
	},
	4: func(v templateVars) []domain.ContentItem {
		return []domain.ContentItem{
			item(iconBulb, "Turn short-vowel words into long-vowel words by adding a magic e."),
			item(iconTarget, "Highlight the vowel spelling in colour when reading %s words.", v.Display),
		}
	},
	6: func(v templateVars) []domain.ContentItem {
		return []domain.ContentItem{
			item(iconBulb, "Call %s a 'bossy r' chunk and have learners circle it.", v.Grapheme),
		}
	},
}

func render(table map[int]templateFunc, rec *domain.PhonemeRecord) []domain.ContentItem {
	return lookup(table, rec.Stage)(varsFor(rec))
}

// Explanations describes what the sound is and how it is spelled.
func Explanations(rec *domain.PhonemeRecord) []domain.ContentItem {
	return render(explanationTable, rec)
}

// Rules are teaching rules for the sound.
func Rules(rec *domain.PhonemeRecord) []domain.ContentItem {
	return render(ruleTable, rec)
}

// Tips are classroom activities for the sound.
func Tips(rec *domain.PhonemeRecord) []domain.ContentItem {
	return render(tipTable, rec)
}
