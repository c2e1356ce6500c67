package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStates() []State {
	return []State{
		StateInitial, StateTriage, StateCollectingInfo, StateGeneratingResponse,
		StateSelectingMessageType, StateAwaitingUser, StateEscalating,
		StateHandoffHuman, StateCompleted, StateFailed, StateSpam,
	}
}

func allEvents() []Event {
	return []Event{
		EventUserSentText, EventDetected, EventResponseGenerated,
		EventMessageTypeSelected, EventInternalError, EventAbuseDetected,
		EventHandoffRequested, EventSessionTimeout,
	}
}

func TestDispatch_Deterministic(t *testing.T) {
	for _, state := range allStates() {
		for _, event := range allEvents() {
			first := Dispatch(state, event)
			second := Dispatch(state, event)
			assert.Equal(t, first, second, "dispatch(%s, %s) must be deterministic", state, event)
		}
	}
}

func TestDispatch_TerminalAbsorption(t *testing.T) {
	for _, state := range []State{StateHandoffHuman, StateCompleted, StateFailed, StateSpam} {
		for _, event := range allEvents() {
			r := Dispatch(state, event)
			assert.False(t, r.Valid, "terminal state %s must reject %s", state, event)
			assert.NotEmpty(t, r.Err)
			assert.Empty(t, r.Actions)
		}
	}
}

func TestDispatch_UnknownState(t *testing.T) {
	r := Dispatch(State("LIMBO"), EventUserSentText)
	assert.False(t, r.Valid)
	assert.NotEmpty(t, r.Err)
}

func TestDispatch_UnknownEventForState(t *testing.T) {
	r := Dispatch(StateInitial, EventMessageTypeSelected)
	assert.False(t, r.Valid)
	assert.NotEmpty(t, r.Err)
}

func TestDispatch_GlobalAbuseRow(t *testing.T) {
	for _, state := range allStates() {
		if state.IsTerminal() {
			continue
		}
		r := Dispatch(state, EventAbuseDetected)
		require.True(t, r.Valid, "abuse must be valid from %s", state)
		assert.Equal(t, StateSpam, r.NextState)
		assert.Equal(t, []Action{ActionPersistSession, ActionEmitOutcome}, r.Actions)
	}
}

func TestDispatch_GlobalErrorRow(t *testing.T) {
	for _, state := range allStates() {
		if state.IsTerminal() {
			continue
		}
		r := Dispatch(state, EventInternalError)
		require.True(t, r.Valid)
		assert.Equal(t, StateFailed, r.NextState)
		assert.Equal(t, []Action{ActionPersistSession, ActionEmitOutcome}, r.Actions)
	}
}

func TestDispatch_TerminalTransitionsPersistAndEmit(t *testing.T) {
	for _, state := range allStates() {
		if !state.IsValid() || state.IsTerminal() {
			continue
		}
		for _, event := range allEvents() {
			r := Dispatch(state, event)
			if !r.Valid || !r.NextState.IsTerminal() {
				continue
			}
			assert.Contains(t, r.Actions, ActionPersistSession,
				"%s --%s--> %s must persist", state, event, r.NextState)
			assert.Contains(t, r.Actions, ActionEmitOutcome,
				"%s --%s--> %s must emit outcome", state, event, r.NextState)
		}
	}
}

func TestDispatch_HappyPathWalk(t *testing.T) {
	state := StateInitial
	for _, step := range []struct {
		event Event
		next  State
	}{
		{EventUserSentText, StateTriage},
		{EventDetected, StateGeneratingResponse},
		{EventResponseGenerated, StateSelectingMessageType},
		{EventMessageTypeSelected, StateAwaitingUser},
	} {
		r := Dispatch(state, step.event)
		require.True(t, r.Valid, "event %s from %s", step.event, state)
		assert.Equal(t, step.next, r.NextState)
		state = r.NextState
	}
}

func TestDispatch_ActionsCopyIsolated(t *testing.T) {
	r1 := Dispatch(StateInitial, EventUserSentText)
	require.True(t, r1.Valid)
	r1.Actions[0] = Action("MUTATED")

	r2 := Dispatch(StateInitial, EventUserSentText)
	assert.Equal(t, ActionValidateInput, r2.Actions[0], "callers must not mutate the table")
}
