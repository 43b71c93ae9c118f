package session

import (
	"fmt"

	"github.com/triplematch/setcli/pkg/protocol"
)

// diffEvents returns the events of next that are not present in prev.
// Events are identified by (type, timestamp), so two events of the same
// type at different times are both kept. Order of next is preserved.
func diffEvents(prev []protocol.Event, next []protocol.Event) []protocol.Event {
	if len(next) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(prev))
	for _, event := range prev {
		seen[event.Key()] = struct{}{}
	}

	fresh := make([]protocol.Event, 0, len(next))
	for _, event := range next {
		if _, ok := seen[event.Key()]; ok {
			continue
		}
		fresh = append(fresh, event)
	}

	return fresh
}

// notificationFromEvent renders an event as user-facing text.
// Unknown event types produce nothing.
func notificationFromEvent(event protocol.Event) (string, bool) {
	switch event.Type {
	case protocol.EventPlayerJoined:
		return fmt.Sprintf("Player %s joined the game", event.DataString()), true
	case protocol.EventPlayerFoundSet:
		return event.DataString(), true
	case protocol.EventPlayerRequestedCards:
		return fmt.Sprintf("%s requested cards", event.DataString()), true
	}
	return "", false
}
