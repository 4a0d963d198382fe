package agent

import (
	"strings"
	"unicode"
)

// JaccardDuplicateThreshold is the normalized token overlap at which
// two gap descriptions count as duplicates.
const JaccardDuplicateThreshold = 0.7

var stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "in": {}, "is": {}, "it": {}, "of": {},
	"on": {}, "or": {}, "that": {}, "the": {}, "this": {}, "to": {},
	"with": {},
}

// Tokenize lowercases, splits on non-alphanumeric runes, and drops
// stopwords. The result is the unit of all text similarity in the
// engine, so every comparison normalizes the same way.
func Tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, skip := stopwords[f]; skip {
			continue
		}
		tokens = append(tokens, f)
	}
	return tokens
}

// NormalizeText returns the canonical form used for cross-iteration
// gap matching: tokens rejoined with single spaces.
func NormalizeText(s string) string {
	return strings.Join(Tokenize(s), " ")
}

// Jaccard computes token-set overlap between two texts in [0,1].
// Two empty texts are identical by convention.
func Jaccard(a, b string) float64 {
	sa := tokenSet(Tokenize(a))
	sb := tokenSet(Tokenize(b))
	if len(sa) == 0 && len(sb) == 0 {
		return 1.0
	}
	if len(sa) == 0 || len(sb) == 0 {
		return 0.0
	}
	inter := 0
	for t := range sa {
		if _, ok := sb[t]; ok {
			inter++
		}
	}
	union := len(sa) + len(sb) - inter
	return float64(inter) / float64(union)
}

func tokenSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// Cohesion is the mean pairwise Jaccard similarity of a set of texts.
// Fewer than two texts have no pairs; see clusterCohesion for how
// one-gap clusters are scored.
func Cohesion(texts []string) float64 {
	if len(texts) < 2 {
		return 0.0
	}
	sum := 0.0
	pairs := 0
	for i := 0; i < len(texts); i++ {
		for j := i + 1; j < len(texts); j++ {
			sum += Jaccard(texts[i], texts[j])
			pairs++
		}
	}
	return sum / float64(pairs)
}
