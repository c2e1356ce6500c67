package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/zapgate/zapgate/pkg/config"
	"github.com/zapgate/zapgate/pkg/llm"
)

// Arbitration is the master decider's verdict: which generated option to
// lead with and whether the detector's state advance is applied.
type Arbitration struct {
	ChosenIndex int
	ApplyState  bool
	Confidence  float64
	Reason      string
}

type deciderWire struct {
	ChosenIndex int     `json:"chosen_index"`
	ApplyState  bool    `json:"apply_state"`
	Confidence  float64 `json:"confidence"`
	Reason      string  `json:"reason"`
}

type decider struct {
	caller  llm.Caller
	enabled bool
	cfg     config.StageConfig
	logger  *slog.Logger
}

// run arbitrates between the detector and responder outputs. Deterministic
// rules fire first; the LLM is only consulted when no rule applies, and its
// answer is clamped before use.
func (d *decider) run(ctx context.Context, in Input, det StateSelectorOutput, resp GeneratedResponse) Arbitration {
	// Rule (a): detector refused the advance and asked for clarification.
	// Lead with a confirmation-shaped option when one exists.
	if !det.Accepted && det.ResponseHint != "" {
		for i, opt := range resp.Options {
			if MatchesConfirmation(opt.Title) {
				return Arbitration{
					ChosenIndex: i,
					ApplyState:  false,
					Confidence:  det.Confidence,
					Reason:      "clarification requested",
				}
			}
		}
	}

	// Rule (b): the user is closing the conversation.
	if ContainsClosingToken(in.UserText) {
		return Arbitration{
			ChosenIndex: 0,
			ApplyState:  det.Accepted,
			Confidence:  det.Confidence,
			Reason:      "closing token",
		}
	}

	if !d.enabled {
		return d.fallback(det)
	}

	raw, err := d.caller.Complete(ctx, llm.Request{
		Model:        d.cfg.Model,
		Timeout:      d.cfg.Timeout,
		SystemPrompt: deciderSystemPrompt,
		UserPrompt:   d.userPrompt(in, det, resp),
	})
	if err != nil {
		d.logger.Warn("decider stage degraded to fallback", slog.String("error", err.Error()))
		return d.fallback(det)
	}

	var wire deciderWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		d.logger.Warn("decider returned unparseable JSON", slog.String("error", err.Error()))
		return d.fallback(det)
	}

	idx := wire.ChosenIndex
	if idx < 0 || idx >= len(resp.Options) {
		idx = 0
	}
	return Arbitration{
		ChosenIndex: idx,
		ApplyState:  wire.ApplyState && det.Accepted,
		Confidence:  clamp01(wire.Confidence),
		Reason:      wire.Reason,
	}
}

func (d *decider) fallback(det StateSelectorOutput) Arbitration {
	return Arbitration{
		ChosenIndex: 0,
		ApplyState:  det.Accepted,
		Confidence:  det.Confidence,
		Reason:      "decider fallback",
	}
}

const deciderSystemPrompt = `Você arbitra a resposta final de um atendimento via WhatsApp.
Responda somente com um objeto JSON com as chaves: chosen_index (inteiro,
índice da opção escolhida), apply_state (booleano), confidence, reason.`

func (d *decider) userPrompt(in Input, det StateSelectorOutput, resp GeneratedResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Estado atual: %s; próximo estado proposto: %s (aceito: %t, confiança: %.2f)\n",
		in.CurrentState, det.NextState, det.Accepted, det.Confidence)
	fmt.Fprintf(&b, "Texto da resposta: %s\n", resp.TextContent)
	b.WriteString("Opções (índice: título):\n")
	for i, o := range resp.Options {
		fmt.Fprintf(&b, "%d: %s\n", i, o.Title)
	}
	fmt.Fprintf(&b, "Mensagem do usuário: %s", in.UserText)
	return b.String()
}
