package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/zapgate/zapgate/pkg/config"
	"github.com/zapgate/zapgate/pkg/fsm"
	"github.com/zapgate/zapgate/pkg/llm"
	"github.com/zapgate/zapgate/pkg/models"
)

// GeneratedResponse is the responder stage result.
type GeneratedResponse struct {
	TextContent         string
	Options             []models.Option
	SuggestedNextState  fsm.State
	RequiresHumanReview bool
	Confidence          float64
	Rationale           string
}

type responderWire struct {
	TextContent         string          `json:"text_content"`
	Options             []models.Option `json:"options"`
	SuggestedNextState  string          `json:"suggested_next_state"`
	RequiresHumanReview bool            `json:"requires_human_review"`
	Confidence          float64         `json:"confidence"`
	Rationale           string          `json:"rationale"`
}

type responder struct {
	caller       llm.Caller
	enabled      bool
	cfg          config.StageConfig
	minResponses int
	logger       *slog.Logger
}

// run produces a GeneratedResponse on every path. The option list is padded
// to the contractual minimum so interactive rendering downstream never
// starves.
func (r *responder) run(ctx context.Context, in Input) GeneratedResponse {
	if !r.enabled {
		return r.fallback(in)
	}

	raw, err := r.caller.Complete(ctx, llm.Request{
		Model:        r.cfg.Model,
		Timeout:      r.cfg.Timeout,
		SystemPrompt: responderSystemPrompt,
		UserPrompt:   r.userPrompt(in),
	})
	if err != nil {
		r.logger.Warn("responder stage degraded to fallback", slog.String("error", err.Error()))
		return r.fallback(in)
	}

	var wire responderWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		r.logger.Warn("responder returned unparseable JSON", slog.String("error", err.Error()))
		return r.fallback(in)
	}
	if strings.TrimSpace(wire.TextContent) == "" {
		return r.fallback(in)
	}

	out := GeneratedResponse{
		TextContent:         wire.TextContent,
		Options:             wire.Options,
		SuggestedNextState:  fsm.State(wire.SuggestedNextState),
		RequiresHumanReview: wire.RequiresHumanReview,
		Confidence:          clamp01(wire.Confidence),
		Rationale:           wire.Rationale,
	}
	out.Options = r.padOptions(out.Options)
	return out
}

func (r *responder) fallback(in Input) GeneratedResponse {
	text := clarificationHint
	if in.FirstOfDay {
		text = "Olá! " + text
	}
	return GeneratedResponse{
		TextContent: text,
		Options:     r.padOptions(nil),
		Confidence:  0,
		Rationale:   "fallback",
	}
}

// padOptions tops the list up to minResponses with generic choices, assigning
// ids to any option that arrived without one.
func (r *responder) padOptions(opts []models.Option) []models.Option {
	generic := []models.Option{
		{ID: "opt_confirm", Title: "Sim, é isso"},
		{ID: "opt_reject", Title: "Não, outra coisa"},
		{ID: "opt_human", Title: "Falar com atendente"},
	}
	for _, g := range generic {
		if len(opts) >= r.minResponses {
			break
		}
		opts = append(opts, g)
	}
	for i := range opts {
		if opts[i].ID == "" {
			opts[i].ID = fmt.Sprintf("opt_%d", i+1)
		}
	}
	return opts
}

const responderSystemPrompt = `Você redige respostas curtas e cordiais para um atendimento via WhatsApp em português.
Responda somente com um objeto JSON com as chaves: text_content, options
(lista de {id, title}), suggested_next_state, requires_human_review,
confidence, rationale. Nunca inclua dados pessoais na resposta.`

func (r *responder) userPrompt(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Estado atual: %s\n", in.CurrentState)
	if in.DetectedIntent != "" {
		fmt.Fprintf(&b, "Intenção detectada: %s\n", in.DetectedIntent)
	}
	if in.FirstOfDay {
		b.WriteString("Esta é a primeira mensagem do usuário hoje; cumprimente.\n")
	}
	if len(in.History) > 0 {
		b.WriteString("Histórico recente:\n")
		for _, h := range in.History {
			fmt.Fprintf(&b, "- %s\n", h)
		}
	}
	fmt.Fprintf(&b, "Gere no mínimo %d opções.\n", r.minResponses)
	fmt.Fprintf(&b, "Mensagem do usuário: %s", in.UserText)
	return b.String()
}
