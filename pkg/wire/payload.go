// Package wire builds and validates provider payloads. Build emits the Graph
// API's exact JSON shapes; Validate is a pure function over the request and
// is always run before construction, so Build only fails on validator bugs.
package wire

// Payload is the top-level Graph API message envelope.
type Payload struct {
	MessagingProduct string `json:"messaging_product"`
	RecipientType    string `json:"recipient_type,omitempty"`
	To               string `json:"to"`
	Type             string `json:"type"`

	Text        *TextPayload        `json:"text,omitempty"`
	Image       *MediaPayload       `json:"image,omitempty"`
	Video       *MediaPayload       `json:"video,omitempty"`
	Audio       *MediaPayload       `json:"audio,omitempty"`
	Document    *MediaPayload       `json:"document,omitempty"`
	Sticker     *MediaPayload       `json:"sticker,omitempty"`
	Location    *LocationPayload    `json:"location,omitempty"`
	Contacts    []ContactPayload    `json:"contacts,omitempty"`
	Interactive *InteractivePayload `json:"interactive,omitempty"`
	Reaction    *ReactionPayload    `json:"reaction,omitempty"`
	Template    *TemplatePayload    `json:"template,omitempty"`
}

// TextPayload is the text message body.
type TextPayload struct {
	Body       string `json:"body"`
	PreviewURL bool   `json:"preview_url,omitempty"`
}

// MediaPayload references media by id or link.
type MediaPayload struct {
	ID       string `json:"id,omitempty"`
	Link     string `json:"link,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// LocationPayload is a shared location.
type LocationPayload struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
}

// ContactPayload is one shared contact card.
type ContactPayload struct {
	Name   ContactName    `json:"name"`
	Phones []ContactPhone `json:"phones,omitempty"`
	Emails []ContactEmail `json:"emails,omitempty"`
}

// ContactName is the structured name of a contact card.
type ContactName struct {
	FormattedName string `json:"formatted_name"`
	FirstName     string `json:"first_name,omitempty"`
	LastName      string `json:"last_name,omitempty"`
}

// ContactPhone is one phone entry on a contact card.
type ContactPhone struct {
	Phone string `json:"phone"`
	Type  string `json:"type,omitempty"`
	WaID  string `json:"wa_id,omitempty"`
}

// ContactEmail is one email entry on a contact card.
type ContactEmail struct {
	Email string `json:"email"`
	Type  string `json:"type,omitempty"`
}

// InteractivePayload is the interactive message envelope. The action shape
// depends on the sub-type.
type InteractivePayload struct {
	Type   string             `json:"type"`
	Header *InteractiveHeader `json:"header,omitempty"`
	Body   *InteractiveText   `json:"body,omitempty"`
	Footer *InteractiveText   `json:"footer,omitempty"`
	Action *InteractiveAction `json:"action"`
}

// InteractiveHeader is the optional header block.
type InteractiveHeader struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// InteractiveText is a plain text block.
type InteractiveText struct {
	Text string `json:"text"`
}

// InteractiveAction covers every sub-type: reply buttons, list sections,
// named actions (send_location, address_message) and flow/cta parameters.
type InteractiveAction struct {
	Buttons    []InteractiveReplyButton `json:"buttons,omitempty"`
	Button     string                   `json:"button,omitempty"`
	Sections   []InteractiveSection     `json:"sections,omitempty"`
	Name       string                   `json:"name,omitempty"`
	Parameters map[string]interface{}   `json:"parameters,omitempty"`
}

// InteractiveReplyButton is one reply button.
type InteractiveReplyButton struct {
	Type  string                 `json:"type"`
	Reply InteractiveButtonReply `json:"reply"`
}

// InteractiveButtonReply is the id/title pair of a reply button.
type InteractiveButtonReply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// InteractiveSection is one list section.
type InteractiveSection struct {
	Title string           `json:"title,omitempty"`
	Rows  []InteractiveRow `json:"rows"`
}

// InteractiveRow is one list row.
type InteractiveRow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// ReactionPayload reacts to a prior message.
type ReactionPayload struct {
	MessageID string `json:"message_id"`
	Emoji     string `json:"emoji"`
}

// TemplatePayload is a pre-approved template send.
type TemplatePayload struct {
	Name       string              `json:"name"`
	Language   TemplateLanguage    `json:"language"`
	Components []TemplateComponent `json:"components,omitempty"`
}

// TemplateLanguage selects the approved template translation.
type TemplateLanguage struct {
	Code string `json:"code"`
}

// TemplateComponent is one header/body/button parameter block.
type TemplateComponent struct {
	Type       string              `json:"type"`
	SubType    string              `json:"sub_type,omitempty"`
	Index      string              `json:"index,omitempty"`
	Parameters []TemplateParameter `json:"parameters,omitempty"`
}

// TemplateParameter is one positional template parameter.
type TemplateParameter struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}
