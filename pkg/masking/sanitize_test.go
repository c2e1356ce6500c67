package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeForLog_PhoneKeepsLastFour(t *testing.T) {
	out := SanitizeForLog("sending to +5511988887777 now")
	assert.Equal(t, "sending to ***7777 now", out)
	assert.NotContains(t, out, "5511988887777")
}

func TestSanitizeForLog_Documents(t *testing.T) {
	out := SanitizeForLog("cpf 123.456.789-09 cnpj 12.345.678/0001-95")
	assert.Equal(t, "cpf [CPF] cnpj [CNPJ]", out)
}

func TestSanitizeForLog_Email(t *testing.T) {
	out := SanitizeForLog("contato: maria@example.com")
	assert.Equal(t, "contato: [EMAIL]", out)
}

func TestSanitizeForLog_BrazilianFormatPhone(t *testing.T) {
	out := SanitizeForLog("tel (11) 99999-8888")
	assert.Equal(t, "tel [PHONE]", out)
}

func TestSanitizeForLog_Empty(t *testing.T) {
	assert.Empty(t, SanitizeForLog(""))
}

func TestSanitizePayload_NestedStrings(t *testing.T) {
	in := map[string]any{
		"from": "+5511988887777",
		"meta": map[string]any{"email": "a@b.com"},
		"tags": []any{"clean", "cpf 123.456.789-09"},
		"n":    float64(7),
	}
	out := SanitizePayload(in).(map[string]any)

	assert.Equal(t, "***7777", out["from"])
	assert.Equal(t, "[EMAIL]", out["meta"].(map[string]any)["email"])
	assert.Equal(t, "cpf [CPF]", out["tags"].([]any)[1])
	assert.Equal(t, float64(7), out["n"])

	// original payload untouched
	assert.Equal(t, "+5511988887777", in["from"])
}

func TestUserKey_Deterministic(t *testing.T) {
	a := UserKey("pepper", "tenant-a", "+5511988887777")
	b := UserKey("pepper", "tenant-a", "+5511988887777")
	assert.Equal(t, a, b)
}

func TestUserKey_TenantScoped(t *testing.T) {
	a := UserKey("pepper", "tenant-a", "+5511988887777")
	b := UserKey("pepper", "tenant-b", "+5511988887777")
	assert.NotEqual(t, a, b)
	assert.Contains(t, a, "tenant-a:")
	assert.Contains(t, b, "tenant-b:")
}

func TestUserKey_PepperChangesDigest(t *testing.T) {
	a := UserKey("pepper-1", "", "+5511988887777")
	b := UserKey("pepper-2", "", "+5511988887777")
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 64)
}

func TestUserKey_DoesNotLeakPhone(t *testing.T) {
	k := UserKey("pepper", "tenant-a", "+5511988887777")
	assert.NotContains(t, k, "5511988887777")
}
