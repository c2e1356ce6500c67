package models

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
)

// WebhookPayload mirrors the provider's webhook envelope. Only the fields the
// gateway consumes are mapped; everything else is ignored on decode.
type WebhookPayload struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

// WebhookEntry is one entry in the webhook envelope.
type WebhookEntry struct {
	ID      string          `json:"id"`
	Changes []WebhookChange `json:"changes"`
}

// WebhookChange is one change notification inside an entry.
type WebhookChange struct {
	Field string       `json:"field"`
	Value WebhookValue `json:"value"`
}

// WebhookValue carries the messages (and metadata) of a change.
type WebhookValue struct {
	MessagingProduct string `json:"messaging_product"`
	Metadata         struct {
		DisplayPhoneNumber string `json:"display_phone_number"`
		PhoneNumberID      string `json:"phone_number_id"`
	} `json:"metadata"`
	Contacts []struct {
		WaID    string `json:"wa_id"`
		Profile struct {
			Name string `json:"name"`
		} `json:"profile"`
	} `json:"contacts,omitempty"`
	Messages []WebhookMessage `json:"messages,omitempty"`
}

// WebhookMessage is a raw inbound message as delivered by the provider.
type WebhookMessage struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`

	Text *struct {
		Body string `json:"body"`
	} `json:"text,omitempty"`
	Image    *rawMedia `json:"image,omitempty"`
	Video    *rawMedia `json:"video,omitempty"`
	Audio    *rawMedia `json:"audio,omitempty"`
	Document *rawMedia `json:"document,omitempty"`
	Sticker  *rawMedia `json:"sticker,omitempty"`
	Location *struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Name      string  `json:"name,omitempty"`
		Address   string  `json:"address,omitempty"`
	} `json:"location,omitempty"`
	Contacts []struct {
		Name struct {
			FormattedName string `json:"formatted_name"`
		} `json:"name"`
		Phones []struct {
			Phone string `json:"phone"`
		} `json:"phones,omitempty"`
		Emails []struct {
			Email string `json:"email"`
		} `json:"emails,omitempty"`
	} `json:"contacts,omitempty"`
	Interactive *struct {
		Type        string `json:"type"`
		ButtonReply *struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"button_reply,omitempty"`
		ListReply *struct {
			ID          string `json:"id"`
			Title       string `json:"title"`
			Description string `json:"description,omitempty"`
		} `json:"list_reply,omitempty"`
	} `json:"interactive,omitempty"`
	Reaction *struct {
		MessageID string `json:"message_id"`
		Emoji     string `json:"emoji"`
	} `json:"reaction,omitempty"`
	Button *struct {
		Payload string `json:"payload"`
		Text    string `json:"text"`
	} `json:"button,omitempty"`
	Order *struct {
		CatalogID    string `json:"catalog_id"`
		Text         string `json:"text,omitempty"`
		ProductItems []struct {
			ProductRetailerID string `json:"product_retailer_id"`
			Quantity          string `json:"quantity"`
			ItemPrice         string `json:"item_price"`
			Currency          string `json:"currency"`
		} `json:"product_items"`
	} `json:"order,omitempty"`
	System *struct {
		Body    string `json:"body"`
		NewWaID string `json:"new_wa_id,omitempty"`
		WaID    string `json:"wa_id,omitempty"`
		Type    string `json:"type,omitempty"`
	} `json:"system,omitempty"`
}

type rawMedia struct {
	ID       string `json:"id"`
	MimeType string `json:"mime_type,omitempty"`
	SHA256   string `json:"sha256,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// ParseWebhookPayload decodes the raw webhook body.
func ParseWebhookPayload(body []byte) (*WebhookPayload, error) {
	var payload WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decoding webhook payload: %w", err)
	}
	return &payload, nil
}

// FirstMessageID returns the first messages[].id in the payload, or "".
func (p *WebhookPayload) FirstMessageID() string {
	for _, entry := range p.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				if msg.ID != "" {
					return msg.ID
				}
			}
		}
	}
	return ""
}

// Normalize flattens the payload into immutable Messages. Unrecognized
// message types are kept with MessageTypeUnknown and logged, so downstream
// policy can classify them as UNSUPPORTED instead of dropping them silently.
func (p *WebhookPayload) Normalize() []Message {
	var out []Message
	for _, entry := range p.Entry {
		for _, change := range entry.Changes {
			for i := range change.Value.Messages {
				out = append(out, normalizeMessage(&change.Value.Messages[i]))
			}
		}
	}
	return out
}

func normalizeMessage(raw *WebhookMessage) Message {
	msg := Message{
		MessageID:  raw.ID,
		ChatID:     raw.From,
		FromNumber: raw.From,
		Timestamp:  parseEpoch(raw.Timestamp),
		Type:       MessageType(raw.Type),
	}
	if !msg.Type.IsValid() {
		slog.Warn("unknown_message_type",
			"message_id", raw.ID,
			"provider_type", raw.Type)
		msg.Type = MessageTypeUnknown
		return msg
	}

	switch msg.Type {
	case MessageTypeText:
		if raw.Text != nil {
			msg.Body.Text = &TextBody{Body: raw.Text.Body}
		}
	case MessageTypeImage:
		msg.Body.Media = mediaBody(raw.Image)
	case MessageTypeVideo:
		msg.Body.Media = mediaBody(raw.Video)
	case MessageTypeAudio:
		msg.Body.Media = mediaBody(raw.Audio)
	case MessageTypeDocument:
		msg.Body.Media = mediaBody(raw.Document)
	case MessageTypeSticker:
		msg.Body.Media = mediaBody(raw.Sticker)
	case MessageTypeLocation, MessageTypeAddress:
		if raw.Location != nil {
			msg.Body.Location = &LocationBody{
				Latitude:  raw.Location.Latitude,
				Longitude: raw.Location.Longitude,
				Name:      raw.Location.Name,
				Address:   raw.Location.Address,
			}
		}
	case MessageTypeContacts:
		for _, c := range raw.Contacts {
			contact := ContactBody{Name: c.Name.FormattedName}
			for _, ph := range c.Phones {
				contact.Phones = append(contact.Phones, ph.Phone)
			}
			for _, em := range c.Emails {
				contact.Emails = append(contact.Emails, em.Email)
			}
			msg.Body.Contacts = append(msg.Body.Contacts, contact)
		}
	case MessageTypeInteractive:
		if raw.Interactive != nil {
			switch {
			case raw.Interactive.ButtonReply != nil:
				msg.Body.Interactive = &InteractiveReplyBody{
					ReplyType: "button_reply",
					ID:        raw.Interactive.ButtonReply.ID,
					Title:     raw.Interactive.ButtonReply.Title,
				}
			case raw.Interactive.ListReply != nil:
				msg.Body.Interactive = &InteractiveReplyBody{
					ReplyType:   "list_reply",
					ID:          raw.Interactive.ListReply.ID,
					Title:       raw.Interactive.ListReply.Title,
					Description: raw.Interactive.ListReply.Description,
				}
			}
		}
	case MessageTypeReaction:
		if raw.Reaction != nil {
			msg.Body.Reaction = &ReactionBody{
				MessageID: raw.Reaction.MessageID,
				Emoji:     raw.Reaction.Emoji,
			}
		}
	case MessageTypeButton:
		if raw.Button != nil {
			msg.Body.Button = &ButtonBody{Payload: raw.Button.Payload, Text: raw.Button.Text}
		}
	case MessageTypeOrder:
		if raw.Order != nil {
			order := &OrderBody{CatalogID: raw.Order.CatalogID, Text: raw.Order.Text}
			for _, item := range raw.Order.ProductItems {
				order.Items = append(order.Items, OrderItem{
					ProductRetailerID: item.ProductRetailerID,
					Quantity:          item.Quantity,
					ItemPrice:         item.ItemPrice,
					Currency:          item.Currency,
				})
			}
			msg.Body.Order = order
		}
	case MessageTypeSystem:
		if raw.System != nil {
			newID := raw.System.NewWaID
			if newID == "" {
				newID = raw.System.WaID
			}
			msg.Body.System = &SystemBody{Body: raw.System.Body, NewWaID: newID, Type: raw.System.Type}
		}
	}
	return msg
}

func mediaBody(m *rawMedia) *MediaBody {
	if m == nil {
		return nil
	}
	return &MediaBody{
		MediaID:  m.ID,
		MimeType: m.MimeType,
		SHA256:   m.SHA256,
		Caption:  m.Caption,
		Filename: m.Filename,
	}
}

func parseEpoch(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
