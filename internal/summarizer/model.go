package summarizer

import "math"

// Model is an immutable term-importance model: a mapping from normalized
// term to a non-negative TF-IDF weight, plus the corpus size it was fitted
// on. A Model is read-only after Fit and safe to share across concurrent
// scoring calls.
type Model struct {
	weights    map[string]float64
	corpusSize int
}

// Fit builds a term-importance model from a vocabulary corpus, one entry
// per reference document. Fitting is deterministic: the model is a pure
// function of the corpus.
//
// For every term the model weight is the sum over corpus documents of
// tf(term, doc) × idf(term), where tf is the term's occurrence count
// divided by the document's token count and idf is the smoothed inverse
// document frequency log((1+N)/(1+df)) + 1. The smoothing keeps every
// observed term at a finite, strictly positive weight even when it occurs
// in every document.
func Fit(corpus []string) *Model {
	docs := make([][]string, 0, len(corpus))
	for _, entry := range corpus {
		if tokens := Tokenize(entry); len(tokens) > 0 {
			docs = append(docs, tokens)
		}
	}

	// Document frequencies.
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool, len(doc))
		for _, w := range doc {
			if !seen[w] {
				df[w]++
				seen[w] = true
			}
		}
	}

	// Smoothed inverse document frequencies.
	n := float64(len(docs))
	idf := make(map[string]float64, len(df))
	for w, f := range df {
		idf[w] = math.Log((1+n)/(1+float64(f))) + 1
	}

	// Aggregate per-document TF-IDF into the model weights.
	weights := make(map[string]float64, len(df))
	for _, doc := range docs {
		tf := make(map[string]int, len(doc))
		for _, w := range doc {
			tf[w]++
		}
		for w, cnt := range tf {
			weights[w] += float64(cnt) / float64(len(doc)) * idf[w]
		}
	}

	return &Model{weights: weights, corpusSize: len(docs)}
}

// Weight returns the model weight for a normalized term.
// Terms absent from the corpus weigh 0.
func (m *Model) Weight(term string) float64 {
	return m.weights[term]
}

// CorpusSize returns the number of non-empty corpus documents the model
// was fitted on.
func (m *Model) CorpusSize() int {
	return m.corpusSize
}

// TermCount returns the number of distinct terms the model knows.
func (m *Model) TermCount() int {
	return len(m.weights)
}
