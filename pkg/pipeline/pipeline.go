// Package pipeline is the three-stage reply decision engine: event/intent
// detection, response generation, message-type selection, with an optional
// master decider arbitrating the final plan.
//
// The pipeline never returns an error across its boundary. Every stage has a
// deterministic pre-check that may answer without the LLM and a deterministic
// fallback for timeouts and parse failures, so Decide always yields a valid
// MessagePlan. All text handed to the LLM must already be masked by the
// caller; the pipeline additionally truncates history to the last five
// entries.
package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/zapgate/zapgate/pkg/config"
	"github.com/zapgate/zapgate/pkg/fsm"
	"github.com/zapgate/zapgate/pkg/llm"
	"github.com/zapgate/zapgate/pkg/models"
)

// historyWindow is the number of trailing history entries forwarded to the
// LLM stages.
const historyWindow = 5

// Input is the per-message decision request. UserText and History must be
// masked before construction.
type Input struct {
	UserText     string
	History      []string
	CurrentState fsm.State
	OpenItems    []string
	// DetectedIntent is filled by the pipeline between stages; callers leave
	// it empty.
	DetectedIntent string
	FirstOfDay     bool
}

// Decision is the full pipeline output: the executable plan plus the stage
// results the processor needs for state transitions and intent tracking.
type Decision struct {
	Plan        models.MessagePlan
	Detection   StateSelectorOutput
	Response    GeneratedResponse
	Arbitration Arbitration
}

// Pipeline wires the stages to a shared LLM caller.
type Pipeline struct {
	detector  detector
	responder responder
	selector  selector
	decider   decider
}

// New builds a Pipeline from configuration. With cfg.Enabled false every
// stage resolves through its deterministic path; caller may then be nil.
func New(caller llm.Caller, cfg config.LLMConfig, logger *slog.Logger) *Pipeline {
	return &Pipeline{
		detector:  detector{caller: caller, enabled: cfg.Enabled, cfg: cfg.Detector, logger: logger},
		responder: responder{caller: caller, enabled: cfg.Enabled, cfg: cfg.Responder, minResponses: cfg.MinResponses, logger: logger},
		selector:  selector{caller: caller, enabled: cfg.Enabled, cfg: cfg.Selector, logger: logger},
		decider:   decider{caller: caller, enabled: cfg.Enabled && cfg.DeciderEnabled, cfg: cfg.Decider, logger: logger},
	}
}

// Decide runs the stages and returns a complete Decision. Stages 1 and 2 run
// in parallel; their inputs are independent by construction. Stage 3 and the
// decider observe both results.
func (p *Pipeline) Decide(ctx context.Context, in Input) Decision {
	if len(in.History) > historyWindow {
		in.History = in.History[len(in.History)-historyWindow:]
	}

	var (
		det  StateSelectorOutput
		resp GeneratedResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		det = p.detector.run(gctx, in)
		return nil
	})
	g.Go(func() error {
		resp = p.responder.run(gctx, in)
		return nil
	})
	// Stages never return errors; Wait only orders the joins.
	_ = g.Wait()

	in.DetectedIntent = detectedIntent(det)
	plan := p.selector.run(ctx, in, resp)
	arb := p.decider.run(ctx, in, det, resp)

	// The arbitration reorders the plan's leading option; a TEXT plan has
	// nothing to reorder.
	if arb.ChosenIndex > 0 && arb.ChosenIndex < len(plan.Options) {
		opts := append([]models.Option(nil), plan.Options...)
		opts[0], opts[arb.ChosenIndex] = opts[arb.ChosenIndex], opts[0]
		plan.Options = opts
	}
	if plan.Confidence > det.Confidence && !det.Accepted {
		plan.Confidence = det.Confidence
	}
	if resp.RequiresHumanReview {
		plan.Safety.RequireHandoff = true
	}

	return Decision{Plan: plan, Detection: det, Response: resp, Arbitration: arb}
}

func detectedIntent(det StateSelectorOutput) string {
	if len(det.DetectedRequests) > 0 {
		return strings.Join(det.DetectedRequests, "; ")
	}
	return ""
}
