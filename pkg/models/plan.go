package models

// PlanKind selects the outbound message shape chosen by the pipeline.
type PlanKind string

// Plan kinds the message-type selector may produce.
const (
	PlanKindText              PlanKind = "TEXT"
	PlanKindInteractiveButton PlanKind = "INTERACTIVE_BUTTON"
	PlanKindInteractiveList   PlanKind = "INTERACTIVE_LIST"
	PlanKindReaction          PlanKind = "REACTION"
	PlanKindSticker           PlanKind = "STICKER"
)

// IsValid checks if the plan kind is one of the known values.
func (k PlanKind) IsValid() bool {
	switch k {
	case PlanKindText, PlanKindInteractiveButton, PlanKindInteractiveList,
		PlanKindReaction, PlanKindSticker:
		return true
	default:
		return false
	}
}

// PIIRisk grades how sensitive the planned reply content is.
type PIIRisk string

// PII risk levels.
const (
	PIIRiskLow    PIIRisk = "low"
	PIIRiskMedium PIIRisk = "medium"
	PIIRiskHigh   PIIRisk = "high"
)

// Option is one interactive choice (button or list row).
type Option struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

// Safety carries the pipeline's safety assessment of the plan.
type Safety struct {
	PIIRisk        PIIRisk `json:"pii_risk"`
	RequireHandoff bool    `json:"require_handoff"`
}

// MessagePlan is the executable reply decision produced by the pipeline and
// consumed by the payload builder. The pipeline guarantees a valid plan on
// every path, including fallbacks.
type MessagePlan struct {
	Kind          PlanKind `json:"kind"`
	Text          string   `json:"text,omitempty"`
	Options       []Option `json:"options,omitempty"`
	ReactionEmoji string   `json:"reaction_emoji,omitempty"`
	StickerID     string   `json:"sticker_id,omitempty"`
	Safety        Safety   `json:"safety"`
	Confidence    float64  `json:"confidence"`
	Reason        string   `json:"reason"`
}

// Outcome is the terminal classification of how a session ended.
type Outcome string

// Session outcomes.
const (
	OutcomeHandoffHuman      Outcome = "HANDOFF_HUMAN"
	OutcomeSelfServeInfo     Outcome = "SELF_SERVE_INFO"
	OutcomeRouteExternal     Outcome = "ROUTE_EXTERNAL"
	OutcomeScheduledFollowup Outcome = "SCHEDULED_FOLLOWUP"
	OutcomeAwaitingUser      Outcome = "AWAITING_USER"
	OutcomeDuplicateOrSpam   Outcome = "DUPLICATE_OR_SPAM"
	OutcomeUnsupported       Outcome = "UNSUPPORTED"
	OutcomeFailedInternal    Outcome = "FAILED_INTERNAL"
)

// IsValid checks if the outcome is one of the known values.
func (o Outcome) IsValid() bool {
	switch o {
	case OutcomeHandoffHuman, OutcomeSelfServeInfo, OutcomeRouteExternal,
		OutcomeScheduledFollowup, OutcomeAwaitingUser, OutcomeDuplicateOrSpam,
		OutcomeUnsupported, OutcomeFailedInternal:
		return true
	default:
		return false
	}
}
