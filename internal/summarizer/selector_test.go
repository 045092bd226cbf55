package summarizer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tldr/internal/domain/entity"
	"tldr/internal/summarizer"
)

// scoredCatDocument builds the worked example document, fitted on its own
// sentences (no external vocabulary).
func scoredCatDocument(t *testing.T) entity.Document {
	t.Helper()
	doc := summarizer.Split("A cat sat. A cat ran far away fast. A dog slept.")
	require.Equal(t, 3, doc.Len())

	corpus := make([]string, doc.Len())
	for i, s := range doc.Sentences {
		corpus[i] = s.Text
	}
	model := summarizer.Fit(corpus)
	require.NoError(t, summarizer.ScoreAll(context.Background(), doc, model, 1))
	return doc
}

func sentenceTexts(sel entity.Selection) []string {
	texts := make([]string, len(sel.Sentences))
	for i, s := range sel.Sentences {
		texts[i] = s.Text
	}
	return texts
}

func TestSelectInvalidParameters(t *testing.T) {
	doc := scoredCatDocument(t)

	tests := []struct {
		name       string
		percentage int
		mode       summarizer.Mode
	}{
		{name: "percentage zero", percentage: 0, mode: summarizer.ModeLength},
		{name: "percentage above range", percentage: 101, mode: summarizer.ModeLength},
		{name: "negative percentage", percentage: -5, mode: summarizer.ModeBest},
		{name: "unrecognized mode", percentage: 30, mode: summarizer.Mode("fastest")},
		{name: "empty mode", percentage: 30, mode: summarizer.Mode("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := summarizer.Select(doc, tt.percentage, tt.mode)
			require.ErrorIs(t, err, entity.ErrInvalidParameter)
		})
	}
}

func TestSelectEmptyDocument(t *testing.T) {
	for _, mode := range []summarizer.Mode{summarizer.ModeValue, summarizer.ModeLength, summarizer.ModeBest} {
		sel, err := summarizer.Select(entity.Document{}, 30, mode)
		require.NoError(t, err, "mode %s", mode)
		assert.Empty(t, sel.Sentences, "mode %s", mode)
		assert.Zero(t, sel.AchievedRatio, "mode %s", mode)
	}
}

func TestSelectLengthModeWorkedExample(t *testing.T) {
	doc := scoredCatDocument(t)
	require.Equal(t, 43, doc.TotalLength())

	// Target is 30% of 43 characters; only the short high-value opening
	// sentence lands closer to the target than stopping before it.
	sel, err := summarizer.Select(doc, 30, summarizer.ModeLength)
	require.NoError(t, err)

	assert.Equal(t, []string{"A cat sat."}, sentenceTexts(sel))
	assert.InDelta(t, 9.0/43.0, sel.AchievedRatio, 1e-12)
}

func TestSelectLengthModeClosestApproximationBound(t *testing.T) {
	doc := scoredCatDocument(t)
	total := float64(doc.TotalLength())

	longest := 0
	for _, s := range doc.Sentences {
		if s.Length > longest {
			longest = s.Length
		}
	}

	for percentage := 1; percentage <= 100; percentage++ {
		sel, err := summarizer.Select(doc, percentage, summarizer.ModeLength)
		require.NoError(t, err)

		achieved := sel.AchievedRatio * total
		target := float64(percentage) / 100 * total
		assert.LessOrEqual(t, mathAbs(achieved-target), float64(longest),
			"percentage %d: achieved %f not within one sentence of target %f", percentage, achieved, target)
	}
}

func TestSelectBestModeIgnoresPercentage(t *testing.T) {
	doc := scoredCatDocument(t)

	// Independently compute the mean sentence value.
	average := doc.TotalValue() / float64(doc.Len())
	var expected []string
	for _, s := range doc.Sentences {
		if s.Value > average {
			expected = append(expected, s.Text)
		}
	}
	require.Equal(t, []string{"A cat sat.", "A dog slept."}, expected)

	reference, err := summarizer.Select(doc, 50, summarizer.ModeBest)
	require.NoError(t, err)
	assert.Equal(t, expected, sentenceTexts(reference))
	assert.InDelta(t, 2.0/3.0, reference.AchievedRatio, 1e-12)

	for _, percentage := range []int{1, 10, 30, 77, 100} {
		sel, err := summarizer.Select(doc, percentage, summarizer.ModeBest)
		require.NoError(t, err)
		assert.Equal(t, reference, sel, "percentage %d", percentage)
	}
}

func TestSelectValueMode(t *testing.T) {
	doc := scoredCatDocument(t)

	sel, err := summarizer.Select(doc, 50, summarizer.ModeValue)
	require.NoError(t, err)

	// The top-ranked sentence covers ~38% of total value; adding the next
	// one would overshoot the 50% target further than stopping short.
	assert.Equal(t, []string{"A cat sat."}, sentenceTexts(sel))
	assert.InDelta(t, doc.Sentences[0].Value/doc.TotalValue(), sel.AchievedRatio, 1e-12)

	full, err := summarizer.Select(doc, 100, summarizer.ModeValue)
	require.NoError(t, err)
	assert.Len(t, full.Sentences, 3)
	assert.InDelta(t, 1.0, full.AchievedRatio, 1e-12)
}

func TestSelectMonotonicInPercentage(t *testing.T) {
	doc := scoredCatDocument(t)

	for _, mode := range []summarizer.Mode{summarizer.ModeLength, summarizer.ModeValue} {
		previous := 0
		for percentage := 1; percentage <= 100; percentage++ {
			sel, err := summarizer.Select(doc, percentage, mode)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, len(sel.Sentences), previous,
				"mode %s: raising percentage to %d shrank the selection", mode, percentage)
			previous = len(sel.Sentences)
		}
	}
}

func TestSelectPreservesDocumentOrder(t *testing.T) {
	doc := scoredCatDocument(t)

	for _, mode := range []summarizer.Mode{summarizer.ModeLength, summarizer.ModeValue, summarizer.ModeBest} {
		for _, percentage := range []int{1, 30, 60, 100} {
			sel, err := summarizer.Select(doc, percentage, mode)
			require.NoError(t, err)
			for i := 1; i < len(sel.Sentences); i++ {
				assert.Less(t, sel.Sentences[i-1].Index, sel.Sentences[i].Index,
					"mode %s percentage %d: selection out of document order", mode, percentage)
			}
		}
	}
}

func TestSelectSingleSentenceDocument(t *testing.T) {
	doc := summarizer.Split("The only sentence there is.")
	model := summarizer.Fit([]string{doc.Sentences[0].Text})
	require.NoError(t, summarizer.ScoreAll(context.Background(), doc, model, 1))

	for _, mode := range []summarizer.Mode{summarizer.ModeLength, summarizer.ModeValue, summarizer.ModeBest} {
		for _, percentage := range []int{1, 30, 100} {
			sel, err := summarizer.Select(doc, percentage, mode)
			require.NoError(t, err)
			require.Len(t, sel.Sentences, 1, "mode %s percentage %d", mode, percentage)
			assert.InDelta(t, 1.0, sel.AchievedRatio, 1e-12, "mode %s percentage %d", mode, percentage)
		}
	}
}

func TestSelectTieBreakPrefersEarlierSentence(t *testing.T) {
	// Two sentences with identical values; the earlier one must win the
	// single slot a small target allows.
	doc := entity.Document{Sentences: []entity.Sentence{
		{Text: "Twin one.", Index: 0, Length: 8, Value: 0.5},
		{Text: "Twin two.", Index: 1, Length: 8, Value: 0.5},
	}}

	sel, err := summarizer.Select(doc, 50, summarizer.ModeLength)
	require.NoError(t, err)
	require.Len(t, sel.Sentences, 1)
	assert.Equal(t, 0, sel.Sentences[0].Index)
}

func TestSelectIdempotent(t *testing.T) {
	first := scoredCatDocument(t)
	second := scoredCatDocument(t)

	for _, mode := range []summarizer.Mode{summarizer.ModeLength, summarizer.ModeValue, summarizer.ModeBest} {
		a, err := summarizer.Select(first, 30, mode)
		require.NoError(t, err)
		b, err := summarizer.Select(second, 30, mode)
		require.NoError(t, err)
		assert.Equal(t, a, b, "mode %s", mode)
	}
}

func TestParseMode(t *testing.T) {
	for _, valid := range []string{"value", "length", "best"} {
		mode, err := summarizer.ParseMode(valid)
		require.NoError(t, err)
		assert.Equal(t, summarizer.Mode(valid), mode)
	}

	_, err := summarizer.ParseMode("BEST")
	require.ErrorIs(t, err, entity.ErrInvalidParameter)
}

func mathAbs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
