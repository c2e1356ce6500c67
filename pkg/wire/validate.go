package wire

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Wire-format bounds published by the provider.
const (
	maxTextLength       = 4096
	maxCaptionLength    = 1024
	maxButtonTitle      = 20
	maxButtons          = 3
	maxListRows         = 10
	maxHeaderFooter     = 60
	maxIdempotencyKey   = 255
	maxContactCards     = 20
	maxTemplateBodyArgs = 10
)

var e164Pattern = regexp.MustCompile(`^\+?[1-9]\d{6,14}$`)

// MIME allow-lists per media kind.
var allowedMIME = map[Kind]map[string]bool{
	KindImage: {
		"image/jpeg": true,
		"image/png":  true,
	},
	KindVideo: {
		"video/mp4":  true,
		"video/3gpp": true,
	},
	KindAudio: {
		"audio/aac":  true,
		"audio/mp4":  true,
		"audio/mpeg": true,
		"audio/amr":  true,
		"audio/ogg":  true,
	},
	KindDocument: {
		"text/plain":         true,
		"application/pdf":    true,
		"application/msword": true,
		"application/vnd.ms-excel":      true,
		"application/vnd.ms-powerpoint": true,
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   true,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         true,
		"application/vnd.openxmlformats-officedocument.presentationml.presentation": true,
	},
	KindSticker: {
		"image/webp": true,
	},
}

// Validate checks req against the provider's wire constraints. It is pure:
// no I/O, no mutation. The returned message is empty exactly when ok.
func Validate(req Request) (bool, string) {
	if !req.Kind.IsValid() {
		return false, fmt.Sprintf("unknown message kind %q", req.Kind)
	}
	if !e164Pattern.MatchString(req.To) {
		return false, "recipient is not E.164"
	}
	if len(req.IdempotencyKey) > maxIdempotencyKey {
		return false, fmt.Sprintf("idempotency key exceeds %d bytes", maxIdempotencyKey)
	}

	switch req.Kind {
	case KindText:
		return validateText(req)
	case KindImage, KindVideo, KindAudio, KindDocument, KindSticker:
		return validateMedia(req)
	case KindLocation:
		return validateLocation(req)
	case KindContacts:
		return validateContacts(req)
	case KindInteractive:
		return validateInteractive(req)
	case KindReaction:
		return validateReaction(req)
	case KindTemplate:
		return validateTemplate(req)
	}
	return false, fmt.Sprintf("unhandled message kind %q", req.Kind)
}

func validateText(req Request) (bool, string) {
	if req.Text == "" {
		return false, "text body is empty"
	}
	if utf8.RuneCountInString(req.Text) > maxTextLength || len(req.Text) > maxTextLength {
		return false, fmt.Sprintf("text body exceeds %d characters", maxTextLength)
	}
	return true, ""
}

func validateMedia(req Request) (bool, string) {
	m := req.Media
	if m == nil {
		return false, "media spec is required"
	}
	if (m.ID == "") == (m.Link == "") {
		return false, "exactly one of media id or link is required"
	}
	if m.MIMEType != "" && !allowedMIME[req.Kind][m.MIMEType] {
		return false, fmt.Sprintf("mime type %q is not allowed for %s", m.MIMEType, req.Kind)
	}
	if utf8.RuneCountInString(m.Caption) > maxCaptionLength {
		return false, fmt.Sprintf("caption exceeds %d characters", maxCaptionLength)
	}
	if req.Kind == KindSticker && m.Caption != "" {
		return false, "stickers do not carry captions"
	}
	if req.Kind != KindDocument && m.Filename != "" {
		return false, "filename is only valid for documents"
	}
	return true, ""
}

func validateLocation(req Request) (bool, string) {
	l := req.Location
	if l == nil {
		return false, "location spec is required"
	}
	if l.Latitude < -90 || l.Latitude > 90 {
		return false, "latitude out of range"
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return false, "longitude out of range"
	}
	return true, ""
}

func validateContacts(req Request) (bool, string) {
	if len(req.Contacts) == 0 {
		return false, "contacts list is empty"
	}
	if len(req.Contacts) > maxContactCards {
		return false, fmt.Sprintf("contacts list exceeds %d cards", maxContactCards)
	}
	for i, c := range req.Contacts {
		if c.Name.FormattedName == "" {
			return false, fmt.Sprintf("contact %d missing formatted name", i)
		}
	}
	return true, ""
}

// validateInteractive enforces disjoint required-field sets per sub-type.
// Fields belonging to another sub-type are rejected outright.
func validateInteractive(req Request) (bool, string) {
	s := req.Interactive
	if s == nil {
		return false, "interactive spec is required"
	}
	if !s.Kind.IsValid() {
		return false, fmt.Sprintf("unknown interactive sub-type %q", s.Kind)
	}
	if s.BodyText == "" {
		return false, "interactive body text is empty"
	}
	if utf8.RuneCountInString(s.BodyText) > maxTextLength {
		return false, fmt.Sprintf("interactive body exceeds %d characters", maxTextLength)
	}
	if utf8.RuneCountInString(s.HeaderText) > maxHeaderFooter {
		return false, fmt.Sprintf("header exceeds %d characters", maxHeaderFooter)
	}
	if utf8.RuneCountInString(s.FooterText) > maxHeaderFooter {
		return false, fmt.Sprintf("footer exceeds %d characters", maxHeaderFooter)
	}

	hasButtons := len(s.Buttons) > 0
	hasRows := len(s.Rows) > 0 || s.ButtonLabel != ""
	hasFlow := s.FlowID != "" || s.FlowToken != "" || s.FlowCTA != "" || s.FlowAction != ""
	hasCTA := s.CTADisplayText != "" || s.CTAURL != ""

	switch s.Kind {
	case InteractiveButton:
		if hasRows || hasFlow || hasCTA {
			return false, "button message carries fields of another sub-type"
		}
		if !hasButtons {
			return false, "button message requires buttons"
		}
		if len(s.Buttons) > maxButtons {
			return false, fmt.Sprintf("button message exceeds %d buttons", maxButtons)
		}
		seen := make(map[string]bool, len(s.Buttons))
		for i, b := range s.Buttons {
			if b.ID == "" || b.Title == "" {
				return false, fmt.Sprintf("button %d missing id or title", i)
			}
			if utf8.RuneCountInString(b.Title) > maxButtonTitle {
				return false, fmt.Sprintf("button title exceeds %d characters", maxButtonTitle)
			}
			if seen[b.ID] {
				return false, fmt.Sprintf("duplicate button id %q", b.ID)
			}
			seen[b.ID] = true
		}
	case InteractiveList:
		if hasButtons || hasFlow || hasCTA {
			return false, "list message carries fields of another sub-type"
		}
		if len(s.Rows) == 0 {
			return false, "list message requires rows"
		}
		if len(s.Rows) > maxListRows {
			return false, fmt.Sprintf("list message exceeds %d rows", maxListRows)
		}
		if s.ButtonLabel == "" {
			return false, "list message requires a button label"
		}
		if utf8.RuneCountInString(s.ButtonLabel) > maxButtonTitle {
			return false, fmt.Sprintf("list button label exceeds %d characters", maxButtonTitle)
		}
		seen := make(map[string]bool, len(s.Rows))
		for i, row := range s.Rows {
			if row.ID == "" || row.Title == "" {
				return false, fmt.Sprintf("list row %d missing id or title", i)
			}
			if seen[row.ID] {
				return false, fmt.Sprintf("duplicate list row id %q", row.ID)
			}
			seen[row.ID] = true
		}
	case InteractiveFlow:
		if hasButtons || hasRows || hasCTA {
			return false, "flow message carries fields of another sub-type"
		}
		if s.FlowID == "" || s.FlowCTA == "" {
			return false, "flow message requires flow id and cta"
		}
	case InteractiveCTAURL:
		if hasButtons || hasRows || hasFlow {
			return false, "cta_url message carries fields of another sub-type"
		}
		if s.CTADisplayText == "" || s.CTAURL == "" {
			return false, "cta_url message requires display text and url"
		}
	case InteractiveLocationRequest:
		if hasButtons || hasRows || hasFlow || hasCTA {
			return false, "location request carries fields of another sub-type"
		}
	case InteractiveAddress:
		if hasButtons || hasRows || hasFlow || hasCTA {
			return false, "address message carries fields of another sub-type"
		}
		if s.CountryISO == "" {
			return false, "address message requires a country code"
		}
	}
	return true, ""
}

func validateReaction(req Request) (bool, string) {
	if req.ReactionMessageID == "" {
		return false, "reaction requires the target message id"
	}
	if req.ReactionEmoji == "" {
		return false, "reaction requires an emoji"
	}
	return true, ""
}

func validateTemplate(req Request) (bool, string) {
	t := req.Template
	if t == nil {
		return false, "template spec is required"
	}
	if t.Name == "" || t.LanguageCode == "" {
		return false, "template requires name and language code"
	}
	if len(t.BodyParams) > maxTemplateBodyArgs {
		return false, fmt.Sprintf("template exceeds %d body parameters", maxTemplateBodyArgs)
	}
	return true, ""
}
