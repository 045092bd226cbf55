package summarizer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"tldr/internal/domain/entity"
	"tldr/internal/summarizer"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []entity.Sentence
	}{
		{
			name:  "three sentences",
			input: "A cat sat. A cat ran far away fast. A dog slept.",
			expected: []entity.Sentence{
				{Text: "A cat sat.", Index: 0, Length: 9},
				{Text: "A cat ran far away fast.", Index: 1, Length: 23},
				{Text: "A dog slept.", Index: 2, Length: 11},
			},
		},
		{
			name:  "mixed delimiters",
			input: "Stop! Why? Because.",
			expected: []entity.Sentence{
				{Text: "Stop!", Index: 0, Length: 4},
				{Text: "Why?", Index: 1, Length: 3},
				{Text: "Because.", Index: 2, Length: 7},
			},
		},
		{
			name:  "consecutive delimiters collapse",
			input: "Wait... What?! Fine.",
			expected: []entity.Sentence{
				{Text: "Wait...", Index: 0, Length: 4},
				{Text: "What?!", Index: 1, Length: 4},
				{Text: "Fine.", Index: 2, Length: 4},
			},
		},
		{
			name:  "no terminal punctuation is one sentence",
			input: "a text with no terminator",
			expected: []entity.Sentence{
				{Text: "a text with no terminator", Index: 0, Length: 25},
			},
		},
		{
			name:  "delimiter inside a number does not split",
			input: "Pi is 3.14 roughly. True.",
			expected: []entity.Sentence{
				{Text: "Pi is 3.14 roughly.", Index: 0, Length: 18},
				{Text: "True.", Index: 1, Length: 4},
			},
		},
		{
			name:  "whitespace trimmed per sentence",
			input: "  First one.   \n Second one.  ",
			expected: []entity.Sentence{
				{Text: "First one.", Index: 0, Length: 9},
				{Text: "Second one.", Index: 1, Length: 10},
			},
		},
		{
			name:     "empty text",
			input:    "",
			expected: nil,
		},
		{
			name:     "whitespace only",
			input:    " \t\n ",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := summarizer.Split(tt.input)
			if diff := cmp.Diff(tt.expected, doc.Sentences); diff != "" {
				t.Errorf("Split(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestSplitIsPure(t *testing.T) {
	input := "One sentence. Another sentence! A third?"
	first := summarizer.Split(input)
	second := summarizer.Split(input)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Split is not deterministic (-first +second):\n%s", diff)
	}
}
