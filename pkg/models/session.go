package models

import "time"

// IntentEntry is one queued intent on a session. The queue is bounded; the
// session manager enforces the cap on append.
type IntentEntry struct {
	Intent     string    `json:"intent"`
	Confidence float64   `json:"confidence"`
	ArrivedAt  time.Time `json:"arrived_at"`
}

// HistoryEntry is one message reference in the session's bounded history
// ring. Only identifiers are stored; message content lives in the inbound
// processing log.
type HistoryEntry struct {
	MessageID     string    `json:"message_id"`
	ReceivedAt    time.Time `json:"received_at"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	// Text is the masked text snapshot used as LLM context. Already PII-masked
	// at append time; never the raw user text.
	Text string `json:"text,omitempty"`
}
