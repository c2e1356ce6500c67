package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func webhookBody(messages string) []byte {
	return []byte(`{
		"object": "whatsapp_business_account",
		"entry": [{
			"id": "entry-1",
			"changes": [{
				"field": "messages",
				"value": {
					"messaging_product": "whatsapp",
					"metadata": {"display_phone_number": "5511988880000", "phone_number_id": "1234567890"},
					"messages": [` + messages + `]
				}
			}]
		}]
	}`)
}

func TestParseWebhookPayload_Invalid(t *testing.T) {
	_, err := ParseWebhookPayload([]byte(`{not json`))
	assert.Error(t, err)
}

func TestNormalize_Text(t *testing.T) {
	payload, err := ParseWebhookPayload(webhookBody(`{
		"id": "wamid.1", "from": "5511988887777", "timestamp": "1757500000",
		"type": "text", "text": {"body": "Olá, preciso de ajuda"}
	}`))
	require.NoError(t, err)

	msgs := payload.Normalize()
	require.Len(t, msgs, 1)
	m := msgs[0]
	assert.Equal(t, "wamid.1", m.MessageID)
	assert.Equal(t, "5511988887777", m.ChatID)
	assert.Equal(t, int64(1757500000), m.Timestamp)
	assert.Equal(t, MessageTypeText, m.Type)
	assert.Equal(t, "Olá, preciso de ajuda", m.TextContent())
}

func TestNormalize_InteractiveListReply(t *testing.T) {
	payload, err := ParseWebhookPayload(webhookBody(`{
		"id": "wamid.2", "from": "5511988887777", "timestamp": "1757500000",
		"type": "interactive",
		"interactive": {"type": "list_reply", "list_reply": {"id": "r1", "title": "Segunda via", "description": "boleto"}}
	}`))
	require.NoError(t, err)

	msgs := payload.Normalize()
	require.Len(t, msgs, 1)
	require.NotNil(t, msgs[0].Body.Interactive)
	assert.Equal(t, "list_reply", msgs[0].Body.Interactive.ReplyType)
	assert.Equal(t, "Segunda via", msgs[0].TextContent(), "reply title surfaces as text")
}

func TestNormalize_MediaCaptionAsText(t *testing.T) {
	payload, err := ParseWebhookPayload(webhookBody(`{
		"id": "wamid.3", "from": "5511988887777", "timestamp": "1757500000",
		"type": "image",
		"image": {"id": "media-1", "mime_type": "image/jpeg", "caption": "segue o comprovante"}
	}`))
	require.NoError(t, err)

	msgs := payload.Normalize()
	require.Len(t, msgs, 1)
	require.NotNil(t, msgs[0].Body.Media)
	assert.Equal(t, "media-1", msgs[0].Body.Media.MediaID)
	assert.Equal(t, "segue o comprovante", msgs[0].TextContent())
}

func TestNormalize_UnknownTypeIsKept(t *testing.T) {
	payload, err := ParseWebhookPayload(webhookBody(`{
		"id": "wamid.4", "from": "5511988887777", "timestamp": "1757500000",
		"type": "ephemeral"
	}`))
	require.NoError(t, err)

	msgs := payload.Normalize()
	require.Len(t, msgs, 1)
	assert.Equal(t, MessageTypeUnknown, msgs[0].Type)
	assert.Empty(t, msgs[0].TextContent())
}

func TestNormalize_BadTimestampIsZero(t *testing.T) {
	payload, err := ParseWebhookPayload(webhookBody(`{
		"id": "wamid.5", "from": "5511988887777", "timestamp": "not-a-number",
		"type": "text", "text": {"body": "oi"}
	}`))
	require.NoError(t, err)
	assert.Zero(t, payload.Normalize()[0].Timestamp)
}

func TestNormalize_StatusOnlyPayloadHasNoMessages(t *testing.T) {
	payload, err := ParseWebhookPayload([]byte(`{
		"object": "whatsapp_business_account",
		"entry": [{"id": "entry-1", "changes": [{"field": "messages", "value": {"messaging_product": "whatsapp"}}]}]
	}`))
	require.NoError(t, err)
	assert.Empty(t, payload.Normalize())
	assert.Empty(t, payload.FirstMessageID())
}

func TestFirstMessageID(t *testing.T) {
	payload, err := ParseWebhookPayload(webhookBody(`{
		"id": "wamid.7", "from": "5511988887777", "timestamp": "1", "type": "text", "text": {"body": "a"}
	}, {
		"id": "wamid.8", "from": "5511988887777", "timestamp": "2", "type": "text", "text": {"body": "b"}
	}`))
	require.NoError(t, err)
	assert.Equal(t, "wamid.7", payload.FirstMessageID())
}
