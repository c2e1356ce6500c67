package wire

import (
	"fmt"
	"strings"
)

// Build constructs the provider payload for a validated request. Callers run
// Validate first; an error here indicates a gap between the two, not bad
// input.
func Build(req Request) (*Payload, error) {
	p := &Payload{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               strings.TrimPrefix(req.To, "+"),
		Type:             string(req.Kind),
	}

	switch req.Kind {
	case KindText:
		p.Text = &TextPayload{Body: req.Text, PreviewURL: req.PreviewURL}
	case KindImage:
		p.Image = mediaPayload(req)
	case KindVideo:
		p.Video = mediaPayload(req)
	case KindAudio:
		p.Audio = mediaPayload(req)
	case KindDocument:
		p.Document = mediaPayload(req)
	case KindSticker:
		p.Sticker = mediaPayload(req)
	case KindLocation:
		p.Location = &LocationPayload{
			Latitude:  req.Location.Latitude,
			Longitude: req.Location.Longitude,
			Name:      req.Location.Name,
			Address:   req.Location.Address,
		}
	case KindContacts:
		p.Contacts = req.Contacts
	case KindInteractive:
		interactive, err := buildInteractive(req.Interactive)
		if err != nil {
			return nil, err
		}
		p.Interactive = interactive
	case KindReaction:
		p.Reaction = &ReactionPayload{
			MessageID: req.ReactionMessageID,
			Emoji:     req.ReactionEmoji,
		}
	case KindTemplate:
		p.Template = buildTemplate(req.Template)
	default:
		return nil, fmt.Errorf("no builder for kind %q", req.Kind)
	}
	return p, nil
}

func mediaPayload(req Request) *MediaPayload {
	return &MediaPayload{
		ID:       req.Media.ID,
		Link:     req.Media.Link,
		Caption:  req.Media.Caption,
		Filename: req.Media.Filename,
	}
}

func buildInteractive(s *InteractiveSpec) (*InteractivePayload, error) {
	p := &InteractivePayload{
		Type: string(s.Kind),
		Body: &InteractiveText{Text: s.BodyText},
	}
	if s.HeaderText != "" {
		p.Header = &InteractiveHeader{Type: "text", Text: s.HeaderText}
	}
	if s.FooterText != "" {
		p.Footer = &InteractiveText{Text: s.FooterText}
	}

	switch s.Kind {
	case InteractiveButton:
		buttons := make([]InteractiveReplyButton, len(s.Buttons))
		for i, b := range s.Buttons {
			buttons[i] = InteractiveReplyButton{
				Type:  "reply",
				Reply: InteractiveButtonReply{ID: b.ID, Title: b.Title},
			}
		}
		p.Action = &InteractiveAction{Buttons: buttons}
	case InteractiveList:
		rows := make([]InteractiveRow, len(s.Rows))
		for i, r := range s.Rows {
			rows[i] = InteractiveRow{ID: r.ID, Title: r.Title, Description: r.Description}
		}
		p.Action = &InteractiveAction{
			Button:   s.ButtonLabel,
			Sections: []InteractiveSection{{Rows: rows}},
		}
	case InteractiveFlow:
		p.Action = &InteractiveAction{
			Name: "flow",
			Parameters: map[string]interface{}{
				"flow_message_version": "3",
				"flow_token":           s.FlowToken,
				"flow_id":              s.FlowID,
				"flow_cta":             s.FlowCTA,
				"flow_action":          s.FlowAction,
			},
		}
	case InteractiveCTAURL:
		p.Action = &InteractiveAction{
			Name: "cta_url",
			Parameters: map[string]interface{}{
				"display_text": s.CTADisplayText,
				"url":          s.CTAURL,
			},
		}
	case InteractiveLocationRequest:
		// The action carries only the name; a buttons field here is a
		// provider-side error.
		p.Action = &InteractiveAction{Name: "send_location"}
	case InteractiveAddress:
		p.Action = &InteractiveAction{
			Name: "address_message",
			Parameters: map[string]interface{}{
				"country": s.CountryISO,
			},
		}
	default:
		return nil, fmt.Errorf("no builder for interactive sub-type %q", s.Kind)
	}
	return p, nil
}

func buildTemplate(t *TemplateSpec) *TemplatePayload {
	p := &TemplatePayload{
		Name:     t.Name,
		Language: TemplateLanguage{Code: t.LanguageCode},
	}
	if len(t.BodyParams) > 0 {
		params := make([]TemplateParameter, len(t.BodyParams))
		for i, v := range t.BodyParams {
			params[i] = TemplateParameter{Type: "text", Text: v}
		}
		p.Components = []TemplateComponent{{Type: "body", Parameters: params}}
	}
	return p
}
