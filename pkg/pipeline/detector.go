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
)

// DetectionStatus is the detector's classification of where the conversation
// stands.
type DetectionStatus string

// Detection statuses. Only in_progress and done are acceptable for state
// advancement.
const (
	StatusInProgress         DetectionStatus = "in_progress"
	StatusDone               DetectionStatus = "done"
	StatusNeedsClarification DetectionStatus = "needs_clarification"
	StatusNewRequestDetected DetectionStatus = "new_request_detected"
)

// StateSelectorOutput is the detector stage result.
type StateSelectorOutput struct {
	SelectedState    fsm.State
	Confidence       float64
	Accepted         bool
	NextState        fsm.State
	Status           DetectionStatus
	OpenItems        []string
	FulfilledItems   []string
	DetectedRequests []string
	ResponseHint     string
}

const clarificationHint = "Por favor, confirme se é isso que você precisa."

// detectorWire mirrors the JSON object the detector prompt demands.
type detectorWire struct {
	SelectedState    string   `json:"selected_state"`
	Confidence       float64  `json:"confidence"`
	Status           string   `json:"status"`
	OpenItems        []string `json:"open_items"`
	FulfilledItems   []string `json:"fulfilled_items"`
	DetectedRequests []string `json:"detected_requests"`
	ResponseHint     string   `json:"response_hint"`
}

type detector struct {
	caller  llm.Caller
	enabled bool
	cfg     config.StageConfig
	logger  *slog.Logger
}

// run produces a StateSelectorOutput on every path. Pre-check hits and any
// call or parse failure resolve deterministically without raising.
func (d *detector) run(ctx context.Context, in Input) StateSelectorOutput {
	// Pre-check: closing tokens while items remain open, or a new request in
	// the same message, both mean the detector must not advance the state on
	// its own authority.
	if (ContainsClosingToken(in.UserText) && len(in.OpenItems) > 0) ||
		ContainsNewRequestToken(in.UserText) {
		return d.fallback(in, StatusNeedsClarification)
	}

	if !d.enabled {
		return d.fallback(in, StatusInProgress)
	}

	raw, err := d.caller.Complete(ctx, llm.Request{
		Model:        d.cfg.Model,
		Timeout:      d.cfg.Timeout,
		SystemPrompt: detectorSystemPrompt,
		UserPrompt:   d.userPrompt(in),
	})
	if err != nil {
		d.logger.Warn("detector stage degraded to fallback", slog.String("error", err.Error()))
		return d.fallback(in, StatusNeedsClarification)
	}

	var wire detectorWire
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		d.logger.Warn("detector returned unparseable JSON", slog.String("error", err.Error()))
		return d.fallback(in, StatusNeedsClarification)
	}

	out := StateSelectorOutput{
		SelectedState:    fsm.State(wire.SelectedState),
		Confidence:       clamp01(wire.Confidence),
		Status:           DetectionStatus(wire.Status),
		OpenItems:        wire.OpenItems,
		FulfilledItems:   wire.FulfilledItems,
		DetectedRequests: wire.DetectedRequests,
		ResponseHint:     wire.ResponseHint,
	}
	if !out.SelectedState.IsValid() {
		out.SelectedState = in.CurrentState
	}

	out.Accepted = out.Confidence >= d.cfg.ConfidenceThreshold &&
		(out.Status == StatusInProgress || out.Status == StatusDone)
	if out.Accepted {
		out.NextState = out.SelectedState
	} else {
		out.NextState = in.CurrentState
		if out.ResponseHint == "" {
			out.ResponseHint = clarificationHint
		}
	}
	return out
}

func (d *detector) fallback(in Input, status DetectionStatus) StateSelectorOutput {
	return StateSelectorOutput{
		SelectedState: in.CurrentState,
		NextState:     in.CurrentState,
		Status:        status,
		OpenItems:     in.OpenItems,
		ResponseHint:  clarificationHint,
	}
}

const detectorSystemPrompt = `Você classifica mensagens de usuários de um atendimento via WhatsApp.
Responda somente com um objeto JSON com as chaves: selected_state, confidence,
status (in_progress | done | needs_clarification | new_request_detected),
open_items, fulfilled_items, detected_requests, response_hint.
selected_state deve ser um dos estados listados na mensagem do usuário.`

func (d *detector) userPrompt(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Estado atual: %s\n", in.CurrentState)
	fmt.Fprintf(&b, "Estados válidos: %s\n", strings.Join(selectableStates(), ", "))
	if len(in.History) > 0 {
		b.WriteString("Histórico recente:\n")
		for _, h := range in.History {
			fmt.Fprintf(&b, "- %s\n", h)
		}
	}
	if len(in.OpenItems) > 0 {
		fmt.Fprintf(&b, "Itens em aberto: %s\n", strings.Join(in.OpenItems, "; "))
	}
	fmt.Fprintf(&b, "Mensagem do usuário: %s", in.UserText)
	return b.String()
}

func selectableStates() []string {
	return []string{
		string(fsm.StateTriage),
		string(fsm.StateCollectingInfo),
		string(fsm.StateGeneratingResponse),
		string(fsm.StateAwaitingUser),
		string(fsm.StateEscalating),
		string(fsm.StateCompleted),
	}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
