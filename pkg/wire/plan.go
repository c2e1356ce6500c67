package wire

import (
	"fmt"

	"github.com/zapgate/zapgate/pkg/models"
)

// FromPlan maps a pipeline MessagePlan onto an outbound Request. The plan's
// option list is truncated to the provider bounds of the chosen shape.
func FromPlan(plan models.MessagePlan, to, idempotencyKey, reactionTargetID string) (Request, error) {
	req := Request{To: to, IdempotencyKey: idempotencyKey}

	switch plan.Kind {
	case models.PlanKindText:
		req.Kind = KindText
		req.Text = plan.Text
	case models.PlanKindInteractiveButton:
		req.Kind = KindInteractive
		options := plan.Options
		if len(options) > maxButtons {
			options = options[:maxButtons]
		}
		buttons := make([]Button, len(options))
		for i, o := range options {
			buttons[i] = Button{ID: o.ID, Title: truncate(o.Title, maxButtonTitle)}
		}
		req.Interactive = &InteractiveSpec{
			Kind:     InteractiveButton,
			BodyText: plan.Text,
			Buttons:  buttons,
		}
	case models.PlanKindInteractiveList:
		req.Kind = KindInteractive
		options := plan.Options
		if len(options) > maxListRows {
			options = options[:maxListRows]
		}
		rows := make([]Row, len(options))
		for i, o := range options {
			rows[i] = Row{ID: o.ID, Title: truncate(o.Title, maxButtonTitle), Description: o.Description}
		}
		req.Interactive = &InteractiveSpec{
			Kind:        InteractiveList,
			BodyText:    plan.Text,
			ButtonLabel: "Escolher",
			Rows:        rows,
		}
	case models.PlanKindReaction:
		req.Kind = KindReaction
		req.ReactionMessageID = reactionTargetID
		req.ReactionEmoji = plan.ReactionEmoji
	case models.PlanKindSticker:
		req.Kind = KindSticker
		req.Media = &MediaSpec{ID: plan.StickerID}
	default:
		return Request{}, fmt.Errorf("plan kind %q has no wire mapping", plan.Kind)
	}
	return req, nil
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
