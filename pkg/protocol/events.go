package protocol

import (
	"encoding/json"
	"fmt"
	"time"
)

type EventType string

const (
	EventPlayerJoined         EventType = "PlayerJoined"
	EventPlayerFoundSet       EventType = "PlayerFoundSet"
	EventPlayerRequestedCards EventType = "PlayerRequestedCards"
)

// Timestamp mirrors the server's epoch pair encoding.
type Timestamp struct {
	Secs  int64 `json:"secs_since_epoch"`
	Nanos int64 `json:"nanos_since_epoch"`
}

func (t Timestamp) Time() time.Time {
	return time.Unix(t.Secs, t.Nanos)
}

// Event is an entry of the append-only log embedded in each snapshot.
type Event struct {
	Type      EventType       `json:"event_type"`
	Data      json.RawMessage `json:"data"`
	Timestamp Timestamp       `json:"timestamp"`
}

// Key identifies an event for deduplication. Two events with the same type
// but different timestamps are distinct.
func (e Event) Key() string {
	return fmt.Sprintf("%s/%d.%d", e.Type, e.Timestamp.Secs, e.Timestamp.Nanos)
}

// DataString returns the event payload as plain text. String payloads are
// unquoted, anything else is returned as raw JSON.
func (e Event) DataString() string {
	var s string
	if err := json.Unmarshal(e.Data, &s); err == nil {
		return s
	}
	return string(e.Data)
}
