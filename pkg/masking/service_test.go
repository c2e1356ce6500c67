package masking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask_CPF(t *testing.T) {
	svc := NewService()

	assert.Equal(t, "meu cpf é [CPF]", svc.Mask("meu cpf é 123.456.789-09"))
	assert.Equal(t, "cpf [CPF] ok", svc.Mask("cpf 12345678909 ok"))
}

func TestMask_CNPJ(t *testing.T) {
	svc := NewService()

	assert.Equal(t, "cnpj [CNPJ]", svc.Mask("cnpj 12.345.678/0001-95"))
	assert.Equal(t, "cnpj [CNPJ]", svc.Mask("cnpj 12345678000195"))
}

func TestMask_Email(t *testing.T) {
	svc := NewService()

	assert.Equal(t, "fale com [EMAIL] hoje", svc.Mask("fale com ana.souza@example.com.br hoje"))
}

func TestMask_Phones(t *testing.T) {
	svc := NewService()

	assert.Equal(t, "ligue [PHONE]", svc.Mask("ligue +5511999999999"))
	assert.Equal(t, "ligue [PHONE]", svc.Mask("ligue (11) 99999-9999"))
	assert.Equal(t, "fone [PHONE]", svc.Mask("fone (21) 3333-4444"),
		"the opening parenthesis is part of the match")
}

func TestMask_MixedText(t *testing.T) {
	svc := NewService()

	in := "Sou João, cpf 123.456.789-09, email joao@example.com, tel +5511988887777"
	out := svc.Mask(in)
	assert.NotContains(t, out, "123.456.789-09")
	assert.NotContains(t, out, "joao@example.com")
	assert.NotContains(t, out, "5511988887777")
	assert.Contains(t, out, "[CPF]")
	assert.Contains(t, out, "[EMAIL]")
	assert.Contains(t, out, "[PHONE]")
}

func TestMask_CleanTextUnchanged(t *testing.T) {
	svc := NewService()

	in := "Olá, preciso de ajuda com meu pedido"
	assert.Equal(t, in, svc.Mask(in))
}

func TestMask_Empty(t *testing.T) {
	svc := NewService()
	assert.Empty(t, svc.Mask(""))
}

func TestMaskAll(t *testing.T) {
	svc := NewService()

	out := svc.MaskAll([]string{"cpf 123.456.789-09", "sem pii"})
	assert.Equal(t, []string{"cpf [CPF]", "sem pii"}, out)

	assert.Nil(t, svc.MaskAll(nil))
}
