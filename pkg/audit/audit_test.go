package audit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvent(id, prevHash string) Event {
	e := Event{
		EventID:       id,
		UserKey:       "tenant-a:deadbeef",
		TenantID:      "tenant-a",
		Timestamp:     time.Date(2026, 3, 10, 12, 0, 0, 123456789, time.UTC),
		Actor:         ActorSystem,
		Action:        "OUTBOUND_SENT",
		Reason:        "reply dispatched",
		CorrelationID: "corr-1",
		PrevHash:      prevHash,
	}
	e.Hash = ComputeHash(e, prevHash)
	return e
}

func TestCanonical_Stable(t *testing.T) {
	e := sampleEvent("ev-1", "")
	first := Canonical(e)
	second := Canonical(e)
	assert.Equal(t, first, second)

	assert.Equal(t,
		"event_id=ev-1\n"+
			"user_key=tenant-a:deadbeef\n"+
			"tenant_id=tenant-a\n"+
			"timestamp=2026-03-10T12:00:00.123456789Z\n"+
			"actor=SYSTEM\n"+
			"action=OUTBOUND_SENT\n"+
			"reason=reply dispatched\n"+
			"correlation_id=corr-1\n",
		first)
}

func TestCanonical_NormalizesTimestampToUTC(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	e := sampleEvent("ev-1", "")
	shifted := e
	shifted.Timestamp = e.Timestamp.In(loc)
	assert.Equal(t, Canonical(e), Canonical(shifted))
}

func TestComputeHash_CoversPrevHash(t *testing.T) {
	e := sampleEvent("ev-1", "")
	assert.NotEqual(t, ComputeHash(e, ""), ComputeHash(e, "abc"))
	assert.Len(t, ComputeHash(e, ""), 64)
}

func TestVerifyChain_Valid(t *testing.T) {
	e1 := sampleEvent("ev-1", "")
	e2 := sampleEvent("ev-2", e1.Hash)
	e3 := sampleEvent("ev-3", e2.Hash)
	assert.NoError(t, VerifyChain([]Event{e1, e2, e3}))
	assert.NoError(t, VerifyChain(nil))
}

func TestVerifyChain_DetectsTamperedField(t *testing.T) {
	e1 := sampleEvent("ev-1", "")
	e2 := sampleEvent("ev-2", e1.Hash)

	e1.Reason = "rewritten after the fact"
	err := VerifyChain([]Event{e1, e2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ev-1")
	assert.Contains(t, err.Error(), "hash mismatch")
}

func TestVerifyChain_DetectsBrokenLink(t *testing.T) {
	e1 := sampleEvent("ev-1", "")
	e2 := sampleEvent("ev-2", "not-the-head")

	err := VerifyChain([]Event{e1, e2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prev_hash mismatch")
}

func TestVerifyChain_DetectsDeletedEvent(t *testing.T) {
	e1 := sampleEvent("ev-1", "")
	e2 := sampleEvent("ev-2", e1.Hash)
	e3 := sampleEvent("ev-3", e2.Hash)

	// dropping the middle event breaks the link into ev-3
	err := VerifyChain([]Event{e1, e3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ev-3")
}
