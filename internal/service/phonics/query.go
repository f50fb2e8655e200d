package phonics

import (
	"regexp"
	"strings"

	"github.com/heartmarshall/phonics-backend/internal/domain"
)

// QueryKind tells the cascade which strategies a query is eligible for.
type QueryKind int

const (
	QueryGeneral QueryKind = iota
	QueryVowelLength
	QuerySpelled
)

func (k QueryKind) String() string {
	switch k {
	case QueryVowelLength:
		return "vowel_length"
	case QuerySpelled:
		return "spelled"
	default:
		return "general"
	}
}

// VowelLength is "short" or "long".
type VowelLength string

const (
	VowelShort VowelLength = "short"
	VowelLong  VowelLength = "long"
)

// Query is a parsed user query.
type Query struct {
	Raw     string
	Cleaned string
	Kind    QueryKind

	// Set for QueryVowelLength.
	Length VowelLength
	Vowel  string

	// Set for QuerySpelled. Phoneme is the parsed left-hand side.
	Phoneme           *Query
	RequestedGrapheme string
}

var (
	trailingSound = regexp.MustCompile(`\s+sound$`)
	spelledRe     = regexp.MustCompile(`^(.+?)\s+spelled\s+(.+)$`)
	vowelLengthRe = regexp.MustCompile(`^(short|long)\s+([aeiou])$`)
)

// ParseQuery normalizes a raw query and classifies it. It never fails; an
// empty result has Cleaned == "".
func ParseQuery(raw string) Query {
	cleaned := domain.NormalizeText(raw)
	cleaned = trailingSound.ReplaceAllString(cleaned, "")

	q := Query{Raw: raw, Cleaned: cleaned, Kind: QueryGeneral}

	if m := spelledRe.FindStringSubmatch(cleaned); m != nil {
		left := ParseQuery(m[1])
		q.Kind = QuerySpelled
		q.Phoneme = &left
		q.RequestedGrapheme = strings.TrimSpace(m[2])
		return q
	}

	if m := vowelLengthRe.FindStringSubmatch(cleaned); m != nil {
		q.Kind = QueryVowelLength
		q.Length = VowelLength(m[1])
		q.Vowel = m[2]
	}
	return q
}

// CacheKey identifies queries that produce the same phoneme data.
func (q Query) CacheKey() string {
	return q.Cleaned
}
