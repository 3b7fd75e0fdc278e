package qa

import "strings"

// stopWords are ignored when extracting keywords from a question.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"do": {}, "does": {}, "did": {}, "can": {}, "could": {}, "should": {},
	"would": {}, "will": {}, "what": {}, "which": {}, "who": {}, "how": {},
	"when": {}, "where": {}, "why": {}, "i": {}, "my": {}, "me": {}, "you": {},
	"your": {}, "it": {}, "of": {}, "in": {}, "on": {}, "for": {}, "to": {},
	"and": {}, "or": {}, "about": {}, "with": {}, "be": {}, "there": {},
	"that": {}, "this": {}, "get": {}, "have": {}, "has": {},
}

// Normalize lowercases a question and strips punctuation so that exact
// matching is insensitive to casing and trailing question marks.
func Normalize(question string) string {
	var b strings.Builder
	b.Grow(len(question))
	for _, r := range strings.ToLower(strings.TrimSpace(question)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// Keywords returns the normalized content words of a question.
func Keywords(question string) []string {
	words := strings.Fields(Normalize(question))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, skip := stopWords[w]; skip {
			continue
		}
		out = append(out, w)
	}
	return out
}

// Overlap scores how similar a stored question is to the query: the share
// of the query's keywords that also appear in the candidate, in [0,1]. A
// query with no keywords scores 0 against everything.
func Overlap(query, candidate string) float64 {
	queryWords := Keywords(query)
	if len(queryWords) == 0 {
		return 0
	}

	candidateSet := make(map[string]struct{})
	for _, w := range Keywords(candidate) {
		candidateSet[w] = struct{}{}
	}

	matched := 0
	for _, w := range queryWords {
		if _, ok := candidateSet[w]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(queryWords))
}
