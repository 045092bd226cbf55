// Package text provides small text measurement utilities shared by the
// summarization engine and its entry points.
package text

// CountRunes counts the number of Unicode characters (runes) in the given
// text. Sentence lengths and size targets are expressed in runes rather
// than bytes so that multi-byte scripts and emoji are measured correctly.
//
// Examples:
//
//	CountRunes("hello")     // 5
//	CountRunes("こんにちは")  // 5
//	CountRunes("")          // 0
func CountRunes(s string) int {
	return len([]rune(s))
}
