package intent

import (
	"slices"
	"strings"
	"unicode"
)

const (
	// wordScoreFactor scales the quadratic base score of a satisfied pattern.
	wordScoreFactor = 10
	// phraseBonus is added when pattern words form a consecutive run.
	phraseBonus = 20
)

// Recognizer classifies text against an immutable pattern catalog.
// It is stateless and safe for concurrent use.
type Recognizer struct {
	catalog []catalogEntry
}

// NewRecognizer creates a recognizer with the built-in catalog.
func NewRecognizer() *Recognizer {
	return &Recognizer{catalog: defaultCatalog()}
}

// Classify returns the best-scoring intent for text, or IntentUnknown when
// no pattern is fully satisfied. Ties resolve to the intent declared first
// in the catalog. Classify is total: every input maps to exactly one intent.
func (r *Recognizer) Classify(text string) Intent {
	tokens := tokenize(text)

	best := IntentUnknown
	bestScore := 0
	for _, entry := range r.catalog {
		score := r.intentScore(tokens, entry)
		if score > bestScore {
			bestScore = score
			best = entry.Intent
		}
	}

	if bestScore == 0 {
		return IntentUnknown
	}
	return best
}

// intentScore returns the maximum score across the entry's patterns.
func (r *Recognizer) intentScore(tokens []string, entry catalogEntry) int {
	score := 0
	for _, pattern := range entry.Patterns {
		if s := patternScore(tokens, pattern); s > score {
			score = s
		}
	}
	return score
}

// patternScore scores a single pattern against the token list. A pattern
// scores only when every word is present; the base score is the squared word
// count times wordScoreFactor, plus phraseBonus when the words also appear
// consecutively in the original token order.
func patternScore(tokens, pattern []string) int {
	if len(pattern) == 0 {
		return 0
	}

	for _, word := range pattern {
		if !slices.Contains(tokens, word) {
			return 0
		}
	}

	score := len(pattern) * len(pattern) * wordScoreFactor
	if hasConsecutiveRun(tokens, pattern) {
		score += phraseBonus
	}
	return score
}

// hasConsecutiveRun reports whether pattern appears as an uninterrupted run
// within tokens.
func hasConsecutiveRun(tokens, pattern []string) bool {
	for i := 0; i+len(pattern) <= len(tokens); i++ {
		if slices.Equal(tokens[i:i+len(pattern)], pattern) {
			return true
		}
	}
	return false
}

// tokenize lowercases text, splits it on whitespace, and trims any
// non-alphanumeric runes from token edges. Tokens that collapse to the
// empty string are dropped.
func tokenize(text string) []string {
	fields := strings.Fields(strings.ToLower(text))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		w := strings.TrimFunc(f, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if w != "" {
			tokens = append(tokens, w)
		}
	}
	return tokens
}
