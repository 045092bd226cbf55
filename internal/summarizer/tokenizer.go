// Package summarizer implements the extractive summarization engine:
// sentence splitting, TF-IDF term-importance modeling, sentence scoring
// and summary selection. Everything in this package is a pure function of
// its inputs; the engine performs no I/O and holds no global state.
package summarizer

import (
	"regexp"
	"strings"
)

// reToken matches a single normalized token: a run of letters with optional
// internal apostrophes, or a run of digits. Everything else (punctuation,
// symbols, whitespace) is excluded from the term stream.
var reToken = regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*|\p{N}+`)

// Tokenize splits text into normalized terms: case-folded, punctuation
// stripped. Unrecognized characters are silently dropped; an input with no
// recognizable tokens yields an empty slice, never an error.
func Tokenize(text string) []string {
	raw := reToken.FindAllString(text, -1)
	if len(raw) == 0 {
		return nil
	}
	tokens := make([]string, len(raw))
	for i, tok := range raw {
		tokens[i] = strings.ToLower(tok)
	}
	return tokens
}
