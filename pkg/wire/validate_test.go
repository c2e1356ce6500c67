package wire

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validText(t *testing.T) Request {
	t.Helper()
	return Request{
		To:             "+5511988887777",
		Kind:           KindText,
		IdempotencyKey: "wamid.in.1",
		Text:           "Olá! Como posso ajudar?",
	}
}

func validButtons(t *testing.T) Request {
	t.Helper()
	return Request{
		To:   "+5511988887777",
		Kind: KindInteractive,
		Interactive: &InteractiveSpec{
			Kind:     InteractiveButton,
			BodyText: "Confirma o pedido?",
			Buttons: []Button{
				{ID: "opt_confirm", Title: "Sim, é isso"},
				{ID: "opt_reject", Title: "Não, outra coisa"},
			},
		},
	}
}

func TestValidate_Text(t *testing.T) {
	ok, msg := Validate(validText(t))
	assert.True(t, ok)
	assert.Empty(t, msg)
}

func TestValidate_UnknownKind(t *testing.T) {
	req := validText(t)
	req.Kind = Kind("carrier_pigeon")
	ok, msg := Validate(req)
	assert.False(t, ok)
	assert.Contains(t, msg, "unknown message kind")
}

func TestValidate_Recipient(t *testing.T) {
	tests := []struct {
		name string
		to   string
		ok   bool
	}{
		{"with plus", "+5511988887777", true},
		{"without plus", "5511988887777", true},
		{"leading zero", "+0511988887777", false},
		{"too short", "+55119", false},
		{"letters", "+55abc1234567", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validText(t)
			req.To = tt.to
			ok, _ := Validate(req)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestValidate_TextBounds(t *testing.T) {
	req := validText(t)
	req.Text = ""
	ok, msg := Validate(req)
	assert.False(t, ok)
	assert.Contains(t, msg, "empty")

	req.Text = strings.Repeat("a", maxTextLength)
	ok, _ = Validate(req)
	assert.True(t, ok)

	req.Text = strings.Repeat("a", maxTextLength+1)
	ok, msg = Validate(req)
	assert.False(t, ok)
	assert.Contains(t, msg, "exceeds")

	// multibyte text is bounded by bytes as well as runes
	req.Text = strings.Repeat("ç", maxTextLength)
	ok, _ = Validate(req)
	assert.False(t, ok)
}

func TestValidate_IdempotencyKeyBound(t *testing.T) {
	req := validText(t)
	req.IdempotencyKey = strings.Repeat("k", maxIdempotencyKey+1)
	ok, msg := Validate(req)
	assert.False(t, ok)
	assert.Contains(t, msg, "idempotency key")
}

func TestValidate_Media(t *testing.T) {
	base := Request{To: "+5511988887777", Kind: KindImage}

	ok, msg := Validate(base)
	assert.False(t, ok)
	assert.Contains(t, msg, "media spec")

	req := base
	req.Media = &MediaSpec{}
	ok, msg = Validate(req)
	assert.False(t, ok)
	assert.Contains(t, msg, "exactly one")

	req.Media = &MediaSpec{ID: "media-1", Link: "https://cdn.example/pic.jpg"}
	ok, _ = Validate(req)
	assert.False(t, ok, "id and link are mutually exclusive")

	req.Media = &MediaSpec{Link: "https://cdn.example/pic.jpg", MIMEType: "image/jpeg"}
	ok, _ = Validate(req)
	assert.True(t, ok)

	req.Media.MIMEType = "image/gif"
	ok, msg = Validate(req)
	assert.False(t, ok)
	assert.Contains(t, msg, "not allowed")
}

func TestValidate_StickerRejectsCaption(t *testing.T) {
	req := Request{
		To:    "+5511988887777",
		Kind:  KindSticker,
		Media: &MediaSpec{ID: "media-1", Caption: "hi"},
	}
	ok, msg := Validate(req)
	assert.False(t, ok)
	assert.Contains(t, msg, "caption")
}

func TestValidate_FilenameOnlyForDocuments(t *testing.T) {
	req := Request{
		To:    "+5511988887777",
		Kind:  KindImage,
		Media: &MediaSpec{ID: "media-1", Filename: "x.jpg"},
	}
	ok, msg := Validate(req)
	assert.False(t, ok)
	assert.Contains(t, msg, "filename")

	req.Kind = KindDocument
	req.Media.Filename = "invoice.pdf"
	ok, _ = Validate(req)
	assert.True(t, ok)
}

func TestValidate_Location(t *testing.T) {
	req := Request{
		To:       "+5511988887777",
		Kind:     KindLocation,
		Location: &LocationSpec{Latitude: -23.55, Longitude: -46.63},
	}
	ok, _ := Validate(req)
	assert.True(t, ok)

	req.Location.Latitude = 91
	ok, msg := Validate(req)
	assert.False(t, ok)
	assert.Contains(t, msg, "latitude")

	req.Location.Latitude = 0
	req.Location.Longitude = -181
	ok, msg = Validate(req)
	assert.False(t, ok)
	assert.Contains(t, msg, "longitude")
}

func TestValidate_Buttons(t *testing.T) {
	ok, msg := Validate(validButtons(t))
	assert.True(t, ok, msg)

	req := validButtons(t)
	req.Interactive.Buttons = append(req.Interactive.Buttons,
		Button{ID: "b3", Title: "Três"}, Button{ID: "b4", Title: "Quatro"})
	ok, msg = Validate(req)
	assert.False(t, ok)
	assert.Contains(t, msg, "exceeds 3 buttons")

	req = validButtons(t)
	req.Interactive.Buttons[1].ID = req.Interactive.Buttons[0].ID
	ok, msg = Validate(req)
	assert.False(t, ok)
	assert.Contains(t, msg, "duplicate button id")

	req = validButtons(t)
	req.Interactive.Buttons[0].Title = strings.Repeat("x", maxButtonTitle+1)
	ok, msg = Validate(req)
	assert.False(t, ok)
	assert.Contains(t, msg, "button title")
}

func TestValidate_InteractiveDisjointFields(t *testing.T) {
	// a button message must not also carry list rows
	req := validButtons(t)
	req.Interactive.Rows = []Row{{ID: "r1", Title: "Linha"}}
	ok, msg := Validate(req)
	assert.False(t, ok)
	assert.Contains(t, msg, "another sub-type")

	// nor flow fields
	req = validButtons(t)
	req.Interactive.FlowID = "flow-1"
	ok, _ = Validate(req)
	assert.False(t, ok)

	// a list message must not carry buttons
	req = Request{
		To:   "+5511988887777",
		Kind: KindInteractive,
		Interactive: &InteractiveSpec{
			Kind:        InteractiveList,
			BodyText:    "Escolha uma opção",
			ButtonLabel: "Escolher",
			Rows:        []Row{{ID: "r1", Title: "Linha"}},
			Buttons:     []Button{{ID: "b1", Title: "Um"}},
		},
	}
	ok, _ = Validate(req)
	assert.False(t, ok)
}

func TestValidate_List(t *testing.T) {
	req := Request{
		To:   "+5511988887777",
		Kind: KindInteractive,
		Interactive: &InteractiveSpec{
			Kind:        InteractiveList,
			BodyText:    "Escolha uma opção",
			ButtonLabel: "Escolher",
			Rows: []Row{
				{ID: "r1", Title: "Primeira"},
				{ID: "r2", Title: "Segunda", Description: "detalhe"},
			},
		},
	}
	ok, msg := Validate(req)
	assert.True(t, ok, msg)

	req.Interactive.ButtonLabel = ""
	ok, msg = Validate(req)
	assert.False(t, ok)
	assert.Contains(t, msg, "button label")

	req.Interactive.ButtonLabel = "Escolher"
	req.Interactive.Rows = make([]Row, maxListRows+1)
	for i := range req.Interactive.Rows {
		req.Interactive.Rows[i] = Row{ID: "r" + strings.Repeat("x", i+1), Title: "t"}
	}
	ok, msg = Validate(req)
	assert.False(t, ok)
	assert.Contains(t, msg, "exceeds 10 rows")
}

func TestValidate_Flow(t *testing.T) {
	req := Request{
		To:   "+5511988887777",
		Kind: KindInteractive,
		Interactive: &InteractiveSpec{
			Kind:     InteractiveFlow,
			BodyText: "Preencha o formulário",
			FlowID:   "flow-1",
			FlowCTA:  "Abrir",
		},
	}
	ok, msg := Validate(req)
	assert.True(t, ok, msg)

	req.Interactive.FlowCTA = ""
	ok, _ = Validate(req)
	assert.False(t, ok)
}

func TestValidate_LocationRequest(t *testing.T) {
	req := Request{
		To:   "+5511988887777",
		Kind: KindInteractive,
		Interactive: &InteractiveSpec{
			Kind:     InteractiveLocationRequest,
			BodyText: "Compartilhe sua localização",
		},
	}
	ok, msg := Validate(req)
	assert.True(t, ok, msg)

	req.Interactive.Buttons = []Button{{ID: "b1", Title: "Um"}}
	ok, _ = Validate(req)
	assert.False(t, ok)
}

func TestValidate_Address(t *testing.T) {
	req := Request{
		To:   "+5511988887777",
		Kind: KindInteractive,
		Interactive: &InteractiveSpec{
			Kind:       InteractiveAddress,
			BodyText:   "Informe o endereço de entrega",
			CountryISO: "BR",
		},
	}
	ok, msg := Validate(req)
	assert.True(t, ok, msg)

	req.Interactive.CountryISO = ""
	ok, msg = Validate(req)
	assert.False(t, ok)
	assert.Contains(t, msg, "country")
}

func TestValidate_Reaction(t *testing.T) {
	req := Request{
		To:                "+5511988887777",
		Kind:              KindReaction,
		ReactionMessageID: "wamid.target",
		ReactionEmoji:     "👍",
	}
	ok, _ := Validate(req)
	assert.True(t, ok)

	req.ReactionEmoji = ""
	ok, _ = Validate(req)
	assert.False(t, ok)
}

func TestValidate_Contacts(t *testing.T) {
	req := Request{
		To:       "+5511988887777",
		Kind:     KindContacts,
		Contacts: []ContactPayload{{Name: ContactName{FormattedName: "Ana Souza"}}},
	}
	ok, _ := Validate(req)
	assert.True(t, ok)

	req.Contacts[0].Name.FormattedName = ""
	ok, msg := Validate(req)
	assert.False(t, ok)
	assert.Contains(t, msg, "formatted name")
}

func TestValidate_Template(t *testing.T) {
	req := Request{
		To:       "+5511988887777",
		Kind:     KindTemplate,
		Template: &TemplateSpec{Name: "order_update", LanguageCode: "pt_BR"},
	}
	ok, _ := Validate(req)
	assert.True(t, ok)

	req.Template.LanguageCode = ""
	ok, _ = Validate(req)
	assert.False(t, ok)
}
