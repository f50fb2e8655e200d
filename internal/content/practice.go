package content

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

// Practice gathers connected-text practice: the record's sentences plus any
// stories and word ladders found in its metadata, either at the top level or
// nested under a "practice" object.
func Practice(rec *domain.PhonemeRecord) domain.PracticeTexts {
	return domain.PracticeTexts{
		Sentences:   listOrEmpty(append([]string(nil), rec.Sentences...)),
		Stories:     stories(metadataValue(rec.Metadata, "stories")),
		WordLadders: wordLadders(metadataValue(rec.Metadata, "word_ladders")),
	}
}

func metadataValue(meta map[string]any, key string) any {
	if v, ok := meta[key]; ok && v != nil {
		return v
	}
	if nested, ok := meta["practice"].(map[string]any); ok {
		return nested[key]
	}
	return nil
}

// stories accepts a string, a {title, text} or {text} object, or a list of
// any of those.
func stories(raw any) []domain.Story {
	out := []domain.Story{}
	for _, v := range asList(raw) {
		switch s := v.(type) {
		case string:
			if t := strings.TrimSpace(s); t != "" {
				out = append(out, domain.Story{Text: t})
			}
		case map[string]any:
			text := scalar(s["text"])
			if text == "" {
				continue
			}
			out = append(out, domain.Story{Title: scalar(s["title"]), Text: text})
		}
	}
	return out
}

// wordLadders accepts strings, {words: [...]} objects, or plain lists of
// words. Word lists are rendered as "a → b → c".
func wordLadders(raw any) []string {
	out := []string{}
	for _, v := range asList(raw) {
		switch l := v.(type) {
		case string:
			if t := strings.TrimSpace(l); t != "" {
				out = append(out, t)
			}
		case map[string]any:
			if ladder := joinLadder(l["words"]); ladder != "" {
				out = append(out, ladder)
			}
		case []any:
			if ladder := joinLadder(l); ladder != "" {
				out = append(out, ladder)
			}
		}
	}
	return out
}

func joinLadder(raw any) string {
	items, ok := raw.([]any)
	if !ok {
		return ""
	}
	words := make([]string, 0, len(items))
	for _, w := range items {
		if s := scalar(w); s != "" {
			words = append(words, s)
		}
	}
	return strings.Join(words, " → ")
}

// asList wraps a single value so callers can always range.
func asList(raw any) []any {
	switch v := raw.(type) {
	case nil:
		return nil
	case []any:
		return v
	default:
		return []any{v}
	}
}

// scalar coerces a scalar to a trimmed string; anything else is "".
func scalar(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case int, int64, float64, bool:
		return fmt.Sprint(s)
	}
	return ""
}
