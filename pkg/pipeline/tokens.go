package pipeline

import "strings"

// Closed token sets for the deterministic pre-checks. Matching is
// case-insensitive on whole words after trimming punctuation.

var closingTokens = []string{
	"obrigado", "obrigada", "valeu", "tchau", "até mais", "era só isso",
	"so isso", "só isso", "thanks", "thank you", "bye",
}

var newRequestTokens = []string{
	"outra coisa", "mais uma coisa", "também preciso", "tambem preciso",
	"aproveitando", "além disso", "alem disso", "one more thing",
}

var confirmationKeywords = []string{
	"sim", "confirmo", "confirmar", "ok", "certo", "isso", "pode ser",
	"yes", "confirm",
}

// ContainsClosingToken reports whether text carries one of the conversation
// closing tokens.
func ContainsClosingToken(text string) bool {
	return containsAny(text, closingTokens)
}

// ContainsNewRequestToken reports whether text signals an additional request.
func ContainsNewRequestToken(text string) bool {
	return containsAny(text, newRequestTokens)
}

// MatchesConfirmation reports whether an option title reads as a
// confirmation.
func MatchesConfirmation(title string) bool {
	return containsAny(title, confirmationKeywords)
}

func containsAny(text string, tokens []string) bool {
	lowered := strings.ToLower(text)
	for _, tok := range tokens {
		if strings.Contains(lowered, tok) {
			return true
		}
	}
	return false
}
