package summarizer

import (
	"fmt"
	"math"
	"sort"

	"tldr/internal/domain/entity"
)

// Mode identifies a summary selection policy.
type Mode string

// Selection policies.
const (
	// ModeValue targets a fraction of the document's total sentence value.
	ModeValue Mode = "value"
	// ModeLength targets a fraction of the document's total character length.
	ModeLength Mode = "length"
	// ModeBest ignores the percentage and keeps every sentence scoring
	// strictly above the document's mean value.
	ModeBest Mode = "best"
)

// ParseMode converts a mode string into a Mode, failing with an
// ErrInvalidParameter-wrapping error for unrecognized values.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeValue, ModeLength, ModeBest:
		return Mode(s), nil
	}
	return "", &entity.ValidationError{
		Field:   "mode",
		Message: fmt.Sprintf("unrecognized mode '%s' (must be 'value', 'length' or 'best')", s),
	}
}

// ValidatePercentage checks that a size target lies in [1,100], failing
// with an ErrInvalidParameter-wrapping error otherwise.
func ValidatePercentage(percentage int) error {
	if percentage < 1 || percentage > 100 {
		return &entity.ValidationError{
			Field:   "percentage",
			Message: fmt.Sprintf("percentage %d is outside the valid range [1,100]", percentage),
		}
	}
	return nil
}

// Select chooses an ordered subset of the document's sentences under the
// given policy so that the result approximates percentage% of the
// document's size. Sentences must already be scored.
//
// The percentage must lie in [1,100] and the mode must be recognized;
// violations fail with ErrInvalidParameter before any selection work. An
// empty document returns an empty selection with ratio 0 for all modes,
// without error. A non-empty document always selects at least one
// sentence: if a policy's own rule would select nothing, the top-ranked
// sentence is taken.
func Select(doc entity.Document, percentage int, mode Mode) (entity.Selection, error) {
	if err := ValidatePercentage(percentage); err != nil {
		return entity.Selection{}, err
	}
	if _, err := ParseMode(string(mode)); err != nil {
		return entity.Selection{}, err
	}

	if doc.Len() == 0 {
		return entity.Selection{}, nil
	}

	switch mode {
	case ModeLength:
		return selectGreedy(doc, percentage, func(s entity.Sentence) float64 {
			return float64(s.Length)
		}), nil
	case ModeValue:
		return selectGreedy(doc, percentage, func(s entity.Sentence) float64 {
			return s.Value
		}), nil
	default:
		return selectBest(doc), nil
	}
}

// rank returns the document's sentence indices ordered by descending value,
// ties broken by ascending original index so that earlier sentences win.
// The deterministic tie-break is what makes runs reproducible.
func rank(doc entity.Document) []int {
	order := make([]int, doc.Len())
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		sa, sb := doc.Sentences[order[a]], doc.Sentences[order[b]]
		if sa.Value != sb.Value {
			return sa.Value > sb.Value
		}
		return sa.Index < sb.Index
	})
	return order
}

// selectGreedy implements the closest-approximation policy shared by the
// length and value modes. Sentences are taken in rank order while each
// inclusion strictly reduces the distance to the target; the first
// candidate that fails this test stops the scan and is excluded.
func selectGreedy(doc entity.Document, percentage int, measure func(entity.Sentence) float64) entity.Selection {
	total := 0.0
	for _, s := range doc.Sentences {
		total += measure(s)
	}
	target := float64(percentage) / 100 * total

	order := rank(doc)
	var picked []int
	accumulated := 0.0
	for _, idx := range order {
		m := measure(doc.Sentences[idx])
		if math.Abs(accumulated+m-target) >= math.Abs(accumulated-target) {
			break
		}
		picked = append(picked, idx)
		accumulated += m
	}

	// A non-empty document never yields an empty summary: fall back to the
	// top-ranked sentence when the target is smaller than every candidate.
	if len(picked) == 0 {
		picked = append(picked, order[0])
		accumulated = measure(doc.Sentences[order[0]])
	}

	sort.Ints(picked)
	selected := make([]entity.Sentence, len(picked))
	for i, idx := range picked {
		selected[i] = doc.Sentences[idx]
	}

	ratio := 0.0
	if total > 0 {
		ratio = accumulated / total
	}
	return entity.Selection{Sentences: selected, AchievedRatio: ratio}
}

// selectBest keeps every sentence whose value is strictly greater than the
// document's mean value, in original order. The requested percentage plays
// no part. The achieved ratio is count-based: selected / total sentences.
func selectBest(doc entity.Document) entity.Selection {
	average := doc.TotalValue() / float64(doc.Len())

	var selected []entity.Sentence
	for _, s := range doc.Sentences {
		if s.Value > average {
			selected = append(selected, s)
		}
	}

	// Uniform values (single-sentence documents included) clear nothing
	// above the mean; keep the top-ranked sentence instead.
	if len(selected) == 0 {
		selected = append(selected, doc.Sentences[rank(doc)[0]])
	}

	return entity.Selection{
		Sentences:     selected,
		AchievedRatio: float64(len(selected)) / float64(doc.Len()),
	}
}
