// Package fsm is the conversation state machine. Dispatch is a pure function
// over a fixed transition table: no I/O, no global state, no panics. The same
// (state, event) pair always yields the same result.
package fsm

// State is a conversation state.
type State string

// Conversation states. The terminal set has no outgoing transitions.
const (
	StateInitial              State = "INITIAL"
	StateTriage               State = "TRIAGE"
	StateCollectingInfo       State = "COLLECTING_INFO"
	StateGeneratingResponse   State = "GENERATING_RESPONSE"
	StateSelectingMessageType State = "SELECTING_MESSAGE_TYPE"
	StateAwaitingUser         State = "AWAITING_USER"
	StateEscalating           State = "ESCALATING"
	StateHandoffHuman         State = "HANDOFF_HUMAN"
	StateCompleted            State = "COMPLETED"
	StateFailed               State = "FAILED"
	StateSpam                 State = "SPAM"
)

// IsValid checks if the state is one of the known values.
func (s State) IsValid() bool {
	switch s {
	case StateInitial, StateTriage, StateCollectingInfo, StateGeneratingResponse,
		StateSelectingMessageType, StateAwaitingUser, StateEscalating,
		StateHandoffHuman, StateCompleted, StateFailed, StateSpam:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the state absorbs all events.
func (s State) IsTerminal() bool {
	switch s {
	case StateHandoffHuman, StateCompleted, StateFailed, StateSpam:
		return true
	default:
		return false
	}
}

// Event is a conversation event.
type Event string

// Conversation events.
const (
	EventUserSentText        Event = "USER_SENT_TEXT"
	EventDetected            Event = "EVENT_DETECTED"
	EventResponseGenerated   Event = "RESPONSE_GENERATED"
	EventMessageTypeSelected Event = "MESSAGE_TYPE_SELECTED"
	EventInternalError       Event = "INTERNAL_ERROR"
	EventAbuseDetected       Event = "ABUSE_DETECTED"
	EventHandoffRequested    Event = "HANDOFF_REQUESTED"
	EventSessionTimeout      Event = "SESSION_TIMEOUT"
)

// Action is a side-effect tag emitted by a transition. The engine only names
// the actions; the processor executes them.
type Action string

// Transition actions.
const (
	ActionDetectEvent       Action = "DETECT_EVENT"
	ActionValidateInput     Action = "VALIDATE_INPUT"
	ActionGenerateResponse  Action = "GENERATE_RESPONSE"
	ActionSelectMessageType Action = "SELECT_MESSAGE_TYPE"
	ActionPersistSession    Action = "PERSIST_SESSION"
	ActionEmitOutcome       Action = "EMIT_OUTCOME"
)

// Result is the outcome of a dispatch. When Valid is false, NextState is the
// zero value, Actions is nil and Err names the rejection.
type Result struct {
	Valid     bool
	NextState State
	Actions   []Action
	Err       string
}

type transition struct {
	next    State
	actions []Action
}

// table maps (state, event) to a transition. Rows absent from the table are
// invalid dispatches. Terminal states have no rows at all.
var table = map[State]map[Event]transition{
	StateInitial: {
		EventUserSentText: {StateTriage, []Action{ActionValidateInput, ActionDetectEvent}},
	},
	StateTriage: {
		EventDetected:         {StateGeneratingResponse, []Action{ActionGenerateResponse}},
		EventUserSentText:     {StateCollectingInfo, []Action{ActionValidateInput, ActionDetectEvent}},
		EventHandoffRequested: {StateEscalating, []Action{ActionPersistSession}},
	},
	StateCollectingInfo: {
		EventDetected:         {StateGeneratingResponse, []Action{ActionGenerateResponse}},
		EventUserSentText:     {StateCollectingInfo, []Action{ActionValidateInput, ActionDetectEvent}},
		EventSessionTimeout:   {StateCompleted, []Action{ActionPersistSession, ActionEmitOutcome}},
		EventHandoffRequested: {StateEscalating, []Action{ActionPersistSession}},
	},
	StateGeneratingResponse: {
		EventResponseGenerated: {StateSelectingMessageType, []Action{ActionSelectMessageType}},
		EventHandoffRequested:  {StateEscalating, []Action{ActionPersistSession}},
	},
	StateSelectingMessageType: {
		EventMessageTypeSelected: {StateAwaitingUser, []Action{ActionPersistSession}},
	},
	StateAwaitingUser: {
		EventUserSentText:   {StateTriage, []Action{ActionValidateInput, ActionDetectEvent}},
		EventSessionTimeout: {StateCompleted, []Action{ActionPersistSession, ActionEmitOutcome}},
	},
	StateEscalating: {
		EventHandoffRequested:  {StateHandoffHuman, []Action{ActionPersistSession, ActionEmitOutcome}},
		EventResponseGenerated: {StateHandoffHuman, []Action{ActionPersistSession, ActionEmitOutcome}},
	},
}

// Dispatch resolves (state, event) against the transition table.
//
// Invariants:
//   - pure and deterministic: identical inputs yield identical results;
//   - terminal states reject every event;
//   - any event on a non-terminal state may additionally resolve through the
//     global rows: ABUSE_DETECTED always terminates in SPAM and
//     INTERNAL_ERROR in FAILED, both persisting and emitting the outcome.
func Dispatch(state State, event Event) Result {
	if !state.IsValid() {
		return Result{Err: "unknown state: " + string(state)}
	}
	if state.IsTerminal() {
		return Result{Err: "state " + string(state) + " is terminal and accepts no events"}
	}

	// Global rows valid from every non-terminal state.
	switch event {
	case EventAbuseDetected:
		return Result{Valid: true, NextState: StateSpam,
			Actions: []Action{ActionPersistSession, ActionEmitOutcome}}
	case EventInternalError:
		return Result{Valid: true, NextState: StateFailed,
			Actions: []Action{ActionPersistSession, ActionEmitOutcome}}
	}

	row, ok := table[state]
	if !ok {
		return Result{Err: "no transitions from state " + string(state)}
	}
	tr, ok := row[event]
	if !ok {
		return Result{Err: "event " + string(event) + " is not valid in state " + string(state)}
	}

	// Copy the action slice so callers cannot mutate the table.
	actions := make([]Action, len(tr.actions))
	copy(actions, tr.actions)
	return Result{Valid: true, NextState: tr.next, Actions: actions}
}
