package matchers

import (
	"encoding/json"
	"testing"

	"github.com/triplematch/setcli/pkg/protocol"
)

type JoinMatcher struct {
	*MessageMatcher
	room     protocol.RoomCode
	username string
}

func NewJoinMatcher(t *testing.T, room protocol.RoomCode, username string) *JoinMatcher {
	return &JoinMatcher{
		MessageMatcher: NewMessageMatcher(t, protocol.MessageTypeJoin),
		room:           room,
		username:       username,
	}
}

func (m *JoinMatcher) Matches(x interface{}) bool {
	if !m.MessageMatcher.Matches(x) {
		return false
	}

	join := protocol.JoinMessage{}
	if err := json.Unmarshal(m.payload, &join); err != nil {
		return false
	}

	if join.Payload.RoomCode != m.room {
		return false
	}
	if m.username != "" && join.Payload.PlayerUsername != m.username {
		return false
	}

	m.Trigger(join)
	return true
}

func (m *JoinMatcher) String() string {
	return "is a join message for room " + m.room.String()
}
