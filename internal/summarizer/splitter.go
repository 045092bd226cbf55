package summarizer

import (
	"strings"

	"tldr/internal/domain/entity"
	"tldr/internal/utils/text"
)

// isTerminal reports whether r ends a sentence.
func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// Split segments raw text into an ordered document of sentences.
//
// A sentence boundary is a run of terminal punctuation (. ! ?) followed by
// whitespace or end-of-text; a delimiter followed by a non-space character
// (as in "3.14") does not split. Consecutive delimiters collapse into the
// preceding sentence, leading/trailing whitespace is trimmed per sentence
// and no empty sentences are emitted. Text without any terminal
// punctuation is a single sentence.
//
// Each sentence keeps its terminal punctuation run in Text; Length counts
// the Unicode characters of the trimmed text excluding that trailing run.
func Split(raw string) entity.Document {
	var (
		sentences []entity.Sentence
		current   strings.Builder
	)

	flush := func() {
		s := strings.TrimSpace(current.String())
		current.Reset()
		if s == "" {
			return
		}
		sentences = append(sentences, entity.Sentence{
			Text:   s,
			Index:  len(sentences),
			Length: text.CountRunes(strings.TrimRight(s, ".!?")),
		})
	}

	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		current.WriteRune(runes[i])
		if !isTerminal(runes[i]) {
			continue
		}
		// Consume the rest of the delimiter run.
		for i+1 < len(runes) && isTerminal(runes[i+1]) {
			i++
			current.WriteRune(runes[i])
		}
		// Boundary only when followed by whitespace or end-of-text.
		if i+1 == len(runes) || isSpace(runes[i+1]) {
			flush()
		}
	}
	flush()

	return entity.Document{Sentences: sentences}
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
