package wire

// Kind is the outbound message type.
type Kind string

// Outbound message kinds, mirroring the provider's type field.
const (
	KindText        Kind = "text"
	KindImage       Kind = "image"
	KindVideo       Kind = "video"
	KindAudio       Kind = "audio"
	KindDocument    Kind = "document"
	KindSticker     Kind = "sticker"
	KindLocation    Kind = "location"
	KindContacts    Kind = "contacts"
	KindInteractive Kind = "interactive"
	KindReaction    Kind = "reaction"
	KindTemplate    Kind = "template"
)

// IsValid checks if the kind is one of the known values.
func (k Kind) IsValid() bool {
	switch k {
	case KindText, KindImage, KindVideo, KindAudio, KindDocument, KindSticker,
		KindLocation, KindContacts, KindInteractive, KindReaction, KindTemplate:
		return true
	default:
		return false
	}
}

// InteractiveKind is the interactive sub-type. Each sub-type has a disjoint
// required-field set on InteractiveSpec.
type InteractiveKind string

// Interactive sub-types.
const (
	InteractiveButton          InteractiveKind = "button"
	InteractiveList            InteractiveKind = "list"
	InteractiveFlow            InteractiveKind = "flow"
	InteractiveCTAURL          InteractiveKind = "cta_url"
	InteractiveLocationRequest InteractiveKind = "location_request_message"
	InteractiveAddress         InteractiveKind = "address_message"
)

// IsValid checks if the interactive kind is one of the known values.
func (k InteractiveKind) IsValid() bool {
	switch k {
	case InteractiveButton, InteractiveList, InteractiveFlow, InteractiveCTAURL,
		InteractiveLocationRequest, InteractiveAddress:
		return true
	default:
		return false
	}
}

// Button is one reply button.
type Button struct {
	ID    string
	Title string
}

// Row is one list row.
type Row struct {
	ID          string
	Title       string
	Description string
}

// InteractiveSpec carries the sub-type specific fields of an interactive
// request.
type InteractiveSpec struct {
	Kind       InteractiveKind
	HeaderText string
	BodyText   string
	FooterText string

	// button
	Buttons []Button

	// list
	ButtonLabel string
	Rows        []Row

	// flow
	FlowID     string
	FlowToken  string
	FlowCTA    string
	FlowAction string

	// cta_url
	CTADisplayText string
	CTAURL         string

	// address_message
	CountryISO string
}

// MediaSpec references media for the media kinds.
type MediaSpec struct {
	ID       string
	Link     string
	Caption  string
	Filename string
	MIMEType string
}

// LocationSpec is a shared location.
type LocationSpec struct {
	Latitude  float64
	Longitude float64
	Name      string
	Address   string
}

// TemplateSpec is a pre-approved template send.
type TemplateSpec struct {
	Name         string
	LanguageCode string
	BodyParams   []string
}

// Request is the provider-agnostic outbound message request the dispatcher
// accepts. Exactly the fields of the selected Kind may be set.
type Request struct {
	To             string
	Kind           Kind
	IdempotencyKey string

	Text       string
	PreviewURL bool

	Media       *MediaSpec
	Location    *LocationSpec
	Contacts    []ContactPayload
	Interactive *InteractiveSpec
	Template    *TemplateSpec

	ReactionMessageID string
	ReactionEmoji     string
}
