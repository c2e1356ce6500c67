package abuse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsSpamText_ShortTextNeverTrips(t *testing.T) {
	assert.False(t, IsSpamText("Olá"))
	assert.False(t, IsSpamText("aaaaaaaaaaa"), "11 runes is below the minimum length")
	assert.False(t, IsSpamText(""))
}

func TestIsSpamText_RepeatedCharacter(t *testing.T) {
	assert.True(t, IsSpamText(strings.Repeat("a", 12)))
	assert.True(t, IsSpamText("kkkkkkkkkkkkkkkkkkkk"))
}

func TestIsSpamText_RatioBoundary(t *testing.T) {
	// 16 of 20 runes is exactly 0.8: not spam, the ratio must be exceeded
	assert.False(t, IsSpamText(strings.Repeat("a", 16)+"bcde"))
	// 17 of 20 crosses it
	assert.True(t, IsSpamText(strings.Repeat("a", 17)+"bcd"))
}

func TestIsSpamText_NormalSentences(t *testing.T) {
	assert.False(t, IsSpamText("Preciso de ajuda com meu pedido de ontem"))
	assert.False(t, IsSpamText("Bom dia, tudo bem com vocês?"))
}

func TestIsSpamText_MultibyteRunes(t *testing.T) {
	assert.True(t, IsSpamText(strings.Repeat("é", 15)))
	assert.False(t, IsSpamText("ééé não é spam, é ênfase"))
}
