package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/zapgate/zapgate/pkg/config"
	"github.com/zapgate/zapgate/pkg/llm"
	"github.com/zapgate/zapgate/pkg/models"
)

type selectorWire struct {
	Kind          string  `json:"kind"`
	ReactionEmoji string  `json:"reaction_emoji"`
	StickerID     string  `json:"sticker_id"`
	PIIRisk       string  `json:"pii_risk"`
	Confidence    float64 `json:"confidence"`
	Reason        string  `json:"reason"`
}

type selector struct {
	caller  llm.Caller
	enabled bool
	cfg     config.StageConfig
	logger  *slog.Logger
}

// run turns the responder output into a MessagePlan. TEXT is the universal
// fallback shape; interactive kinds are only kept when the response actually
// carries options.
func (s *selector) run(ctx context.Context, in Input, resp GeneratedResponse) models.MessagePlan {
	// Pre-check: nothing to choose between without options.
	if len(resp.Options) == 0 {
		return s.textPlan(resp, "no interactive options available")
	}

	if !s.enabled {
		return s.fallbackPlan(resp)
	}

	raw, err := s.caller.Complete(ctx, llm.Request{
		Model:        s.cfg.Model,
		Timeout:      s.cfg.Timeout,
		SystemPrompt: selectorSystemPrompt,
		UserPrompt:   s.userPrompt(in, resp),
	})
	if err != nil {
		s.logger.Warn("selector stage degraded to fallback", slog.String("error", err.Error()))
		return s.fallbackPlan(resp)
	}

	var wire selectorWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		s.logger.Warn("selector returned unparseable JSON", slog.String("error", err.Error()))
		return s.fallbackPlan(resp)
	}

	kind := models.PlanKind(wire.Kind)
	if !kind.IsValid() {
		return s.fallbackPlan(resp)
	}

	plan := models.MessagePlan{
		Kind:       kind,
		Text:       resp.TextContent,
		Confidence: clamp01(wire.Confidence),
		Reason:     wire.Reason,
		Safety: models.Safety{
			PIIRisk:        piiRisk(wire.PIIRisk),
			RequireHandoff: resp.RequiresHumanReview,
		},
	}

	switch kind {
	case models.PlanKindInteractiveButton:
		// Button messages carry at most three choices.
		plan.Options = resp.Options
		if len(plan.Options) > 3 {
			plan.Kind = models.PlanKindInteractiveList
		}
	case models.PlanKindInteractiveList:
		plan.Options = resp.Options
	case models.PlanKindReaction:
		if wire.ReactionEmoji == "" {
			return s.fallbackPlan(resp)
		}
		plan.ReactionEmoji = wire.ReactionEmoji
		plan.Text = ""
	case models.PlanKindSticker:
		if wire.StickerID == "" {
			return s.fallbackPlan(resp)
		}
		plan.StickerID = wire.StickerID
		plan.Text = ""
	}
	return plan
}

// fallbackPlan picks a deterministic shape from the response alone: buttons
// when the option count fits, a list when it does not.
func (s *selector) fallbackPlan(resp GeneratedResponse) models.MessagePlan {
	plan := models.MessagePlan{
		Kind:       models.PlanKindInteractiveButton,
		Text:       resp.TextContent,
		Options:    resp.Options,
		Confidence: resp.Confidence,
		Reason:     "selector fallback",
		Safety: models.Safety{
			PIIRisk:        models.PIIRiskLow,
			RequireHandoff: resp.RequiresHumanReview,
		},
	}
	if len(resp.Options) == 0 {
		return s.textPlan(resp, "selector fallback")
	}
	if len(resp.Options) > 3 {
		plan.Kind = models.PlanKindInteractiveList
	}
	return plan
}

func (s *selector) textPlan(resp GeneratedResponse, reason string) models.MessagePlan {
	return models.MessagePlan{
		Kind:       models.PlanKindText,
		Text:       resp.TextContent,
		Confidence: resp.Confidence,
		Reason:     reason,
		Safety: models.Safety{
			PIIRisk:        models.PIIRiskLow,
			RequireHandoff: resp.RequiresHumanReview,
		},
	}
}

func piiRisk(s string) models.PIIRisk {
	switch models.PIIRisk(s) {
	case models.PIIRiskLow, models.PIIRiskMedium, models.PIIRiskHigh:
		return models.PIIRisk(s)
	default:
		return models.PIIRiskLow
	}
}

const selectorSystemPrompt = `Você escolhe o formato de uma mensagem de WhatsApp.
Responda somente com um objeto JSON com as chaves: kind
(TEXT | INTERACTIVE_BUTTON | INTERACTIVE_LIST | REACTION | STICKER),
reaction_emoji, sticker_id, pii_risk (low | medium | high), confidence, reason.`

func (s *selector) userPrompt(in Input, resp GeneratedResponse) string {
	var b strings.Builder
	if in.DetectedIntent != "" {
		fmt.Fprintf(&b, "Intenção detectada: %s\n", in.DetectedIntent)
	}
	fmt.Fprintf(&b, "Texto da resposta: %s\n", resp.TextContent)
	if len(resp.Options) > 0 {
		b.WriteString("Opções:\n")
		for _, o := range resp.Options {
			fmt.Fprintf(&b, "- %s: %s\n", o.ID, o.Title)
		}
	}
	return b.String()
}
