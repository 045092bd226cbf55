// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Sentence, Document and Selection,
// along with their domain-specific errors.
package entity

// Sentence represents a single sentence of a document under summarization.
// It is created once by the sentence splitter; the Value field is populated
// later by the sentence scorer and never mutated again afterwards.
type Sentence struct {
	// Text is the sentence text including its terminal punctuation run.
	Text string
	// Index is the zero-based position of the sentence in the document.
	Index int
	// Length is the number of Unicode characters in the text, not counting
	// the trailing delimiter run.
	Length int
	// Value is the importance score assigned by the sentence scorer.
	Value float64
}

// Document is an ordered sequence of sentences. It is immutable once split:
// rejoining the sentence texts in order reconstructs the original text
// modulo whitespace normalization.
type Document struct {
	Sentences []Sentence
}

// Len returns the number of sentences in the document.
func (d Document) Len() int {
	return len(d.Sentences)
}

// TotalLength returns the sum of all sentence lengths in characters.
func (d Document) TotalLength() int {
	total := 0
	for _, s := range d.Sentences {
		total += s.Length
	}
	return total
}

// TotalValue returns the sum of all sentence values.
func (d Document) TotalValue() float64 {
	total := 0.0
	for _, s := range d.Sentences {
		total += s.Value
	}
	return total
}

// Selection is the result of running a selection policy over a scored
// document. Sentences appear in original document order. AchievedRatio is
// the realized fraction of the document represented by the selection, in
// the units of the active mode: character-length fraction for length mode,
// value fraction for value mode, count fraction for best mode.
type Selection struct {
	Sentences     []Sentence
	AchievedRatio float64
}
