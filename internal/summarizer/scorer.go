package summarizer

import (
	"context"

	"golang.org/x/sync/errgroup"

	"tldr/internal/domain/entity"
)

// Score maps a sentence text to a scalar importance value: the mean model
// weight over its tokens, each occurrence counted. Normalizing by token
// count keeps long sentences from winning on volume alone. A sentence with
// zero recognized tokens scores 0.
func Score(sentenceText string, model *Model) float64 {
	tokens := Tokenize(sentenceText)
	if len(tokens) == 0 {
		return 0
	}
	sum := 0.0
	for _, tok := range tokens {
		sum += model.Weight(tok)
	}
	return sum / float64(len(tokens))
}

// ScoreAll assigns a Value to every sentence of the document. Scoring is
// independent across sentences, so with parallelism > 1 sentences are
// scored on a bounded worker pool; each worker writes only its own index,
// and the result is identical regardless of scheduling. The model is
// read-only and shared across workers.
func ScoreAll(ctx context.Context, doc entity.Document, model *Model, parallelism int) error {
	if parallelism <= 1 || len(doc.Sentences) < 2 {
		for i := range doc.Sentences {
			doc.Sentences[i].Value = Score(doc.Sentences[i].Text, model)
		}
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i := range doc.Sentences {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc.Sentences[i].Value = Score(doc.Sentences[i].Text, model)
			return nil
		})
	}
	return g.Wait()
}
