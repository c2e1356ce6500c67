package abuse

import "unicode/utf8"

const (
	// spamMinLength is the shortest text the repeated-character heuristic
	// applies to; greetings like "Olá" must never trip it.
	spamMinLength = 12

	// spamRepeatRatio is the fraction of the text the most frequent rune may
	// occupy before the message is classified as spam.
	spamRepeatRatio = 0.8
)

// IsSpamText applies the deterministic content heuristics. The set is
// intentionally small: a single repeated-character ratio over a minimum
// length.
func IsSpamText(text string) bool {
	length := utf8.RuneCountInString(text)
	if length < spamMinLength {
		return false
	}

	counts := make(map[rune]int)
	max := 0
	for _, r := range text {
		counts[r]++
		if counts[r] > max {
			max = counts[r]
		}
	}
	return float64(max)/float64(length) > spamRepeatRatio
}
