package wire

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalPayload(t *testing.T, req Request) string {
	t.Helper()
	p, err := Build(req)
	require.NoError(t, err)
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	return string(raw)
}

func TestBuild_Text(t *testing.T) {
	got := marshalPayload(t, Request{
		To:   "+5511988887777",
		Kind: KindText,
		Text: "Olá!",
	})
	assert.JSONEq(t, `{
		"messaging_product": "whatsapp",
		"recipient_type": "individual",
		"to": "5511988887777",
		"type": "text",
		"text": {"body": "Olá!"}
	}`, got)
}

func TestBuild_StripsPlusFromRecipient(t *testing.T) {
	p, err := Build(Request{To: "+5511988887777", Kind: KindText, Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, "5511988887777", p.To)
}

func TestBuild_ReplyButtons(t *testing.T) {
	got := marshalPayload(t, Request{
		To:   "5511988887777",
		Kind: KindInteractive,
		Interactive: &InteractiveSpec{
			Kind:     InteractiveButton,
			BodyText: "Confirma?",
			Buttons:  []Button{{ID: "opt_confirm", Title: "Sim, é isso"}},
		},
	})
	assert.JSONEq(t, `{
		"messaging_product": "whatsapp",
		"recipient_type": "individual",
		"to": "5511988887777",
		"type": "interactive",
		"interactive": {
			"type": "button",
			"body": {"text": "Confirma?"},
			"action": {
				"buttons": [
					{"type": "reply", "reply": {"id": "opt_confirm", "title": "Sim, é isso"}}
				]
			}
		}
	}`, got)
}

func TestBuild_List(t *testing.T) {
	got := marshalPayload(t, Request{
		To:   "5511988887777",
		Kind: KindInteractive,
		Interactive: &InteractiveSpec{
			Kind:        InteractiveList,
			HeaderText:  "Pedidos",
			BodyText:    "Escolha uma opção",
			ButtonLabel: "Escolher",
			Rows:        []Row{{ID: "r1", Title: "Primeira", Description: "detalhe"}},
		},
	})
	assert.JSONEq(t, `{
		"messaging_product": "whatsapp",
		"recipient_type": "individual",
		"to": "5511988887777",
		"type": "interactive",
		"interactive": {
			"type": "list",
			"header": {"type": "text", "text": "Pedidos"},
			"body": {"text": "Escolha uma opção"},
			"action": {
				"button": "Escolher",
				"sections": [
					{"rows": [{"id": "r1", "title": "Primeira", "description": "detalhe"}]}
				]
			}
		}
	}`, got)
}

func TestBuild_LocationRequest(t *testing.T) {
	got := marshalPayload(t, Request{
		To:   "5511988887777",
		Kind: KindInteractive,
		Interactive: &InteractiveSpec{
			Kind:     InteractiveLocationRequest,
			BodyText: "Compartilhe sua localização",
		},
	})
	assert.JSONEq(t, `{
		"messaging_product": "whatsapp",
		"recipient_type": "individual",
		"to": "5511988887777",
		"type": "interactive",
		"interactive": {
			"type": "location_request_message",
			"body": {"text": "Compartilhe sua localização"},
			"action": {"name": "send_location"}
		}
	}`, got)
}

func TestBuild_Flow(t *testing.T) {
	got := marshalPayload(t, Request{
		To:   "5511988887777",
		Kind: KindInteractive,
		Interactive: &InteractiveSpec{
			Kind:      InteractiveFlow,
			BodyText:  "Preencha o formulário",
			FlowID:    "flow-1",
			FlowToken: "tok",
			FlowCTA:   "Abrir",
		},
	})
	assert.JSONEq(t, `{
		"messaging_product": "whatsapp",
		"recipient_type": "individual",
		"to": "5511988887777",
		"type": "interactive",
		"interactive": {
			"type": "flow",
			"body": {"text": "Preencha o formulário"},
			"action": {
				"name": "flow",
				"parameters": {
					"flow_message_version": "3",
					"flow_token": "tok",
					"flow_id": "flow-1",
					"flow_cta": "Abrir",
					"flow_action": ""
				}
			}
		}
	}`, got)
}

func TestBuild_Reaction(t *testing.T) {
	got := marshalPayload(t, Request{
		To:                "5511988887777",
		Kind:              KindReaction,
		ReactionMessageID: "wamid.target",
		ReactionEmoji:     "👍",
	})
	assert.JSONEq(t, `{
		"messaging_product": "whatsapp",
		"recipient_type": "individual",
		"to": "5511988887777",
		"type": "reaction",
		"reaction": {"message_id": "wamid.target", "emoji": "👍"}
	}`, got)
}

func TestBuild_Template(t *testing.T) {
	got := marshalPayload(t, Request{
		To:   "5511988887777",
		Kind: KindTemplate,
		Template: &TemplateSpec{
			Name:         "order_update",
			LanguageCode: "pt_BR",
			BodyParams:   []string{"1234"},
		},
	})
	assert.JSONEq(t, `{
		"messaging_product": "whatsapp",
		"recipient_type": "individual",
		"to": "5511988887777",
		"type": "template",
		"template": {
			"name": "order_update",
			"language": {"code": "pt_BR"},
			"components": [
				{"type": "body", "parameters": [{"type": "text", "text": "1234"}]}
			]
		}
	}`, got)
}

func TestBuild_UnknownKind(t *testing.T) {
	_, err := Build(Request{To: "5511988887777", Kind: Kind("bogus")})
	assert.Error(t, err)
}
