// Package events is a small fan-out hub for server-sent events. Handlers
// publish envelopes, the SSE endpoint subscribes a channel per client.
package events

import (
	"encoding/json"
	"time"
)

// Event names published by the engine.
const (
	TypePing           = "ping"
	TypeRefreshStarted = "refresh_started"
	TypeJobsRefreshed  = "jobs_refreshed"
	TypeResumeAnalyzed = "resume_analyzed"
	TypeConfigUpdated  = "config_updated"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Envelope serializes an event for the wire. Marshal failures on Data are
// swallowed; the event goes out without a payload.
func Envelope(reqID, typ string, data any) string {
	var raw json.RawMessage
	if data != nil {
		if b, err := json.Marshal(data); err == nil {
			raw = b
		}
	}
	e := Event{
		Type:      typ,
		Version:   1,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
