package pipeline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapgate/zapgate/pkg/config"
	"github.com/zapgate/zapgate/pkg/fsm"
	"github.com/zapgate/zapgate/pkg/llm"
	"github.com/zapgate/zapgate/pkg/models"
)

// fakeCaller routes completions by system prompt so each stage can be scripted
// independently. A missing entry yields an error, driving that stage to its
// fallback.
type fakeCaller struct {
	mu      sync.Mutex
	answers map[string]string
	calls   []string
}

func (f *fakeCaller) Complete(_ context.Context, req llm.Request) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, req.SystemPrompt)
	if raw, ok := f.answers[req.SystemPrompt]; ok {
		return raw, nil
	}
	return "", errors.New("no scripted answer")
}

func (f *fakeCaller) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func testLLMConfig(enabled bool) config.LLMConfig {
	stage := config.StageConfig{Model: "test-model", Timeout: time.Second, ConfidenceThreshold: 0.7}
	return config.LLMConfig{
		Enabled:        enabled,
		Detector:       stage,
		Responder:      stage,
		Selector:       stage,
		DeciderEnabled: enabled,
		Decider:        stage,
		MinResponses:   3,
	}
}

func newPipeline(t *testing.T, caller llm.Caller, enabled bool) *Pipeline {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(caller, testLLMConfig(enabled), logger)
}

func TestDecide_DisabledProducesValidPlan(t *testing.T) {
	p := newPipeline(t, nil, false)

	d := p.Decide(context.Background(), Input{
		UserText:     "preciso de ajuda com meu pedido",
		CurrentState: fsm.StateInitial,
	})

	assert.True(t, d.Plan.Kind.IsValid())
	assert.NotEmpty(t, d.Plan.Text)
	assert.Len(t, d.Response.Options, 3, "fallback pads to the minimum option count")
	assert.False(t, d.Detection.Accepted)
	assert.Equal(t, fsm.StateInitial, d.Detection.NextState)
}

func TestDecide_DisabledFirstOfDayGreets(t *testing.T) {
	p := newPipeline(t, nil, false)

	d := p.Decide(context.Background(), Input{
		UserText:     "preciso de ajuda",
		CurrentState: fsm.StateInitial,
		FirstOfDay:   true,
	})
	assert.Contains(t, d.Response.TextContent, "Olá!")
}

func TestDecide_ClosingTokenWithOpenItemsSkipsDetectorCall(t *testing.T) {
	caller := &fakeCaller{answers: map[string]string{}}
	p := newPipeline(t, caller, true)

	d := p.Decide(context.Background(), Input{
		UserText:     "era só isso, obrigado",
		CurrentState: fsm.StateAwaitingUser,
		OpenItems:    []string{"confirmar endereço"},
	})

	assert.Equal(t, StatusNeedsClarification, d.Detection.Status)
	assert.False(t, d.Detection.Accepted)
	assert.Equal(t, fsm.StateAwaitingUser, d.Detection.NextState)
	for _, sys := range caller.calls {
		assert.NotEqual(t, detectorSystemPrompt, sys, "pre-check hit must not consult the LLM")
	}
	// the refused advance leads with a confirmation-shaped option
	assert.Equal(t, "clarification requested", d.Arbitration.Reason)
	assert.False(t, d.Arbitration.ApplyState)
}

func TestDecide_NewRequestTokenForcesClarification(t *testing.T) {
	p := newPipeline(t, &fakeCaller{}, true)

	d := p.Decide(context.Background(), Input{
		UserText:     "aproveitando, também preciso de uma segunda via",
		CurrentState: fsm.StateAwaitingUser,
	})
	assert.Equal(t, StatusNeedsClarification, d.Detection.Status)
	assert.False(t, d.Detection.Accepted)
}

func TestDecide_AcceptedAdvance(t *testing.T) {
	caller := &fakeCaller{answers: map[string]string{
		detectorSystemPrompt: `{"selected_state":"TRIAGE","confidence":0.9,"status":"in_progress",
			"detected_requests":["segunda via de boleto"],"response_hint":""}`,
		responderSystemPrompt: `{"text_content":"Claro! Vou te ajudar com a segunda via.",
			"options":[{"id":"opt_boleto","title":"Segunda via de boleto"}],"confidence":0.8}`,
		selectorSystemPrompt: `{"kind":"INTERACTIVE_BUTTON","pii_risk":"low","confidence":0.85,"reason":"poucas opções"}`,
		deciderSystemPrompt:  `{"chosen_index":0,"apply_state":true,"confidence":0.9,"reason":"direto"}`,
	}}
	p := newPipeline(t, caller, true)

	d := p.Decide(context.Background(), Input{
		UserText:     "preciso da segunda via do boleto",
		CurrentState: fsm.StateInitial,
	})

	assert.True(t, d.Detection.Accepted)
	assert.Equal(t, fsm.StateTriage, d.Detection.NextState)
	assert.True(t, d.Arbitration.ApplyState)
	assert.Equal(t, models.PlanKindInteractiveButton, d.Plan.Kind)
	assert.Equal(t, "Claro! Vou te ajudar com a segunda via.", d.Plan.Text)
}

func TestDecide_LowConfidenceHoldsState(t *testing.T) {
	caller := &fakeCaller{answers: map[string]string{
		detectorSystemPrompt: `{"selected_state":"TRIAGE","confidence":0.3,"status":"in_progress"}`,
	}}
	p := newPipeline(t, caller, true)

	d := p.Decide(context.Background(), Input{
		UserText:     "hmm",
		CurrentState: fsm.StateAwaitingUser,
	})

	assert.False(t, d.Detection.Accepted)
	assert.Equal(t, fsm.StateAwaitingUser, d.Detection.NextState)
	assert.Equal(t, clarificationHint, d.Detection.ResponseHint)
	assert.LessOrEqual(t, d.Plan.Confidence, d.Detection.Confidence,
		"plan confidence is capped by an unaccepted detection")
}

func TestDecide_InvalidSelectedStateHeldToCurrent(t *testing.T) {
	caller := &fakeCaller{answers: map[string]string{
		detectorSystemPrompt: `{"selected_state":"WARP_DRIVE","confidence":0.95,"status":"done"}`,
	}}
	p := newPipeline(t, caller, true)

	d := p.Decide(context.Background(), Input{
		UserText:     "pronto",
		CurrentState: fsm.StateAwaitingUser,
	})
	assert.Equal(t, fsm.StateAwaitingUser, d.Detection.SelectedState)
}

func TestDecide_CallerFailureFallsBackEverywhere(t *testing.T) {
	caller := &fakeCaller{} // every call errors
	p := newPipeline(t, caller, true)

	d := p.Decide(context.Background(), Input{
		UserText:     "preciso de ajuda com meu pedido",
		CurrentState: fsm.StateInitial,
	})

	assert.True(t, d.Plan.Kind.IsValid())
	assert.NotEmpty(t, d.Plan.Text)
	assert.False(t, d.Detection.Accepted)
	assert.False(t, d.Arbitration.ApplyState)
	assert.Positive(t, caller.callCount())
}

func TestDecide_UnparseableJSONFallsBack(t *testing.T) {
	caller := &fakeCaller{answers: map[string]string{
		detectorSystemPrompt:  `not json at all`,
		responderSystemPrompt: `{"text_content": 42}`,
	}}
	p := newPipeline(t, caller, true)

	d := p.Decide(context.Background(), Input{
		UserText:     "oi, tudo bem?",
		CurrentState: fsm.StateInitial,
	})
	assert.True(t, d.Plan.Kind.IsValid())
	assert.False(t, d.Detection.Accepted)
}

func TestDecide_ArbitrationReordersOptions(t *testing.T) {
	caller := &fakeCaller{answers: map[string]string{
		detectorSystemPrompt: `{"selected_state":"TRIAGE","confidence":0.9,"status":"in_progress"}`,
		responderSystemPrompt: `{"text_content":"Escolha:","options":[
			{"id":"o1","title":"Primeira"},{"id":"o2","title":"Segunda"},{"id":"o3","title":"Terceira"}],
			"confidence":0.8}`,
		selectorSystemPrompt: `{"kind":"INTERACTIVE_BUTTON","pii_risk":"low","confidence":0.8}`,
		deciderSystemPrompt:  `{"chosen_index":2,"apply_state":true,"confidence":0.9,"reason":"melhor"}`,
	}}
	p := newPipeline(t, caller, true)

	d := p.Decide(context.Background(), Input{
		UserText:     "quero ver as opções",
		CurrentState: fsm.StateInitial,
	})
	require.Len(t, d.Plan.Options, 3)
	assert.Equal(t, "o3", d.Plan.Options[0].ID, "chosen option leads")
	assert.Equal(t, "o1", d.Plan.Options[2].ID)
}

func TestDecide_HumanReviewForcesHandoffFlag(t *testing.T) {
	caller := &fakeCaller{answers: map[string]string{
		detectorSystemPrompt: `{"selected_state":"TRIAGE","confidence":0.9,"status":"in_progress"}`,
		responderSystemPrompt: `{"text_content":"Melhor falar com um atendente.",
			"requires_human_review":true,"confidence":0.6}`,
	}}
	p := newPipeline(t, caller, true)

	d := p.Decide(context.Background(), Input{
		UserText:     "quero cancelar tudo e processar a empresa",
		CurrentState: fsm.StateTriage,
	})
	assert.True(t, d.Plan.Safety.RequireHandoff)
}

func TestSelector_NoOptionsYieldsText(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := selector{enabled: true, logger: logger}

	plan := s.run(context.Background(), Input{}, GeneratedResponse{TextContent: "só texto"})
	assert.Equal(t, models.PlanKindText, plan.Kind)
	assert.Equal(t, "só texto", plan.Text)
}

func TestSelector_FallbackPicksListOverFourOptions(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s := selector{enabled: false, logger: logger}

	opts := []models.Option{{ID: "1"}, {ID: "2"}, {ID: "3"}, {ID: "4"}}
	plan := s.run(context.Background(), Input{}, GeneratedResponse{TextContent: "x", Options: opts})
	assert.Equal(t, models.PlanKindInteractiveList, plan.Kind)
}

func TestResponder_PadOptionsAssignsMissingIDs(t *testing.T) {
	r := responder{minResponses: 3}

	opts := r.padOptions([]models.Option{{Title: "Sem id"}})
	require.Len(t, opts, 3)
	assert.Equal(t, "opt_1", opts[0].ID)
	assert.Equal(t, "opt_confirm", opts[1].ID)
	assert.Equal(t, "opt_reject", opts[2].ID)
}

func TestDecider_ClarificationLeadsWithConfirmation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := decider{enabled: true, logger: logger}

	det := StateSelectorOutput{Accepted: false, ResponseHint: clarificationHint, Confidence: 0.4}
	resp := GeneratedResponse{Options: []models.Option{
		{ID: "o1", Title: "Outra coisa"},
		{ID: "o2", Title: "Sim, confirmo"},
	}}
	arb := d.run(context.Background(), Input{UserText: "acho que sim?"}, det, resp)
	assert.Equal(t, 1, arb.ChosenIndex)
	assert.False(t, arb.ApplyState)
}

func TestDecider_ClosingTokenLeadsFirstOption(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d := decider{enabled: true, logger: logger}

	det := StateSelectorOutput{Accepted: true, Confidence: 0.9}
	resp := GeneratedResponse{Options: []models.Option{{ID: "o1", Title: "Encerrar"}}}
	arb := d.run(context.Background(), Input{UserText: "era só isso, valeu"}, det, resp)
	assert.Equal(t, "closing token", arb.Reason)
	assert.Equal(t, 0, arb.ChosenIndex)
	assert.True(t, arb.ApplyState, "closing with an accepted detection applies the advance")
}

func TestTokens(t *testing.T) {
	assert.True(t, ContainsClosingToken("Era só isso, obrigado!"))
	assert.True(t, ContainsClosingToken("valeu"))
	assert.False(t, ContainsClosingToken("quero fazer um pedido"))

	assert.True(t, ContainsNewRequestToken("aproveitando, mais uma coisa"))
	assert.False(t, ContainsNewRequestToken("só confirmando o horário"))

	assert.True(t, MatchesConfirmation("Sim, é isso"))
	assert.False(t, MatchesConfirmation("Falar com atendente"))
}
