// Package models holds the domain types shared across the gateway: the
// normalized inbound message, the message plan produced by the decision
// pipeline, and the terminal outcome classifiers.
package models

// MessageType classifies a normalized inbound message.
type MessageType string

// Inbound message types, mirroring the provider's message.type field.
const (
	MessageTypeText        MessageType = "text"
	MessageTypeImage       MessageType = "image"
	MessageTypeVideo       MessageType = "video"
	MessageTypeAudio       MessageType = "audio"
	MessageTypeDocument    MessageType = "document"
	MessageTypeSticker     MessageType = "sticker"
	MessageTypeLocation    MessageType = "location"
	MessageTypeAddress     MessageType = "address"
	MessageTypeContacts    MessageType = "contacts"
	MessageTypeInteractive MessageType = "interactive"
	MessageTypeReaction    MessageType = "reaction"
	MessageTypeButton      MessageType = "button"
	MessageTypeOrder       MessageType = "order"
	MessageTypeSystem      MessageType = "system"
	MessageTypeUnknown     MessageType = "unknown"
)

// IsValid checks if the message type is one of the known values.
func (t MessageType) IsValid() bool {
	switch t {
	case MessageTypeText, MessageTypeImage, MessageTypeVideo, MessageTypeAudio,
		MessageTypeDocument, MessageTypeSticker, MessageTypeLocation,
		MessageTypeAddress, MessageTypeContacts, MessageTypeInteractive,
		MessageTypeReaction, MessageTypeButton, MessageTypeOrder,
		MessageTypeSystem, MessageTypeUnknown:
		return true
	default:
		return false
	}
}

// TextBody is the body of a text message.
type TextBody struct {
	Body string `json:"body"`
}

// MediaBody is shared by image, video, audio, document and sticker messages.
type MediaBody struct {
	MediaID  string `json:"media_id"`
	MimeType string `json:"mime_type,omitempty"`
	SHA256   string `json:"sha256,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// LocationBody is the body of a location message.
type LocationBody struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
}

// ContactBody is a single shared contact.
type ContactBody struct {
	Name   string   `json:"name"`
	Phones []string `json:"phones,omitempty"`
	Emails []string `json:"emails,omitempty"`
}

// InteractiveReplyBody carries a button or list reply from the user.
type InteractiveReplyBody struct {
	// ReplyType is "button_reply" or "list_reply".
	ReplyType   string `json:"reply_type"`
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ReactionBody is the body of a reaction message.
type ReactionBody struct {
	MessageID string `json:"message_id"`
	Emoji     string `json:"emoji"`
}

// ButtonBody carries a quick-reply template button click.
type ButtonBody struct {
	Payload string `json:"payload"`
	Text    string `json:"text"`
}

// OrderItem is a single product in an order message.
type OrderItem struct {
	ProductRetailerID string `json:"product_retailer_id"`
	Quantity          string `json:"quantity"`
	ItemPrice         string `json:"item_price"`
	Currency          string `json:"currency"`
}

// OrderBody is the body of an order message.
type OrderBody struct {
	CatalogID string      `json:"catalog_id"`
	Text      string      `json:"text,omitempty"`
	Items     []OrderItem `json:"items"`
}

// SystemBody describes a customer identity or number change.
type SystemBody struct {
	Body    string `json:"body"`
	NewWaID string `json:"new_wa_id,omitempty"`
	Type    string `json:"type,omitempty"`
}

// MessageBody is a tagged union: only the field matching the message type is
// set. Unknown types carry none.
type MessageBody struct {
	Text        *TextBody             `json:"text,omitempty"`
	Media       *MediaBody            `json:"media,omitempty"`
	Location    *LocationBody         `json:"location,omitempty"`
	Contacts    []ContactBody         `json:"contacts,omitempty"`
	Interactive *InteractiveReplyBody `json:"interactive,omitempty"`
	Reaction    *ReactionBody         `json:"reaction,omitempty"`
	Button      *ButtonBody           `json:"button,omitempty"`
	Order       *OrderBody            `json:"order,omitempty"`
	System      *SystemBody           `json:"system,omitempty"`
}

// Message is the normalized, immutable form of a provider webhook message.
// Created once during webhook normalization and read-only afterwards.
type Message struct {
	MessageID  string      `json:"message_id"`
	ChatID     string      `json:"chat_id"`
	FromNumber string      `json:"from_number"`
	Timestamp  int64       `json:"timestamp"`
	Type       MessageType `json:"type"`
	Body       MessageBody `json:"body"`
}

// TextContent returns the user-visible text carried by the message, if any.
// Interactive replies and button clicks surface their titles so downstream
// stages can treat them as text.
func (m *Message) TextContent() string {
	switch {
	case m.Body.Text != nil:
		return m.Body.Text.Body
	case m.Body.Interactive != nil:
		return m.Body.Interactive.Title
	case m.Body.Button != nil:
		return m.Body.Button.Text
	case m.Body.Media != nil:
		return m.Body.Media.Caption
	}
	return ""
}
