package matchers

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/triplematch/setcli/pkg/protocol"
)

type MoveMatcher struct {
	*MessageMatcher
	move      protocol.MoveMessage
	triggered chan protocol.MoveMessage
}

func NewMoveMatcher(t *testing.T) *MoveMatcher {
	return &MoveMatcher{
		MessageMatcher: NewMessageMatcher(t, protocol.MessageTypeMove),
		triggered:      make(chan protocol.MoveMessage, 1),
	}
}

func (m *MoveMatcher) Matches(x interface{}) bool {
	if !m.MessageMatcher.Matches(x) {
		return false
	}

	move := protocol.MoveMessage{}
	if err := json.Unmarshal(m.payload, &move); err != nil {
		return false
	}

	m.move = move
	m.triggered <- move
	return true
}

func (m *MoveMatcher) String() string {
	return "is a move message"
}

func (m *MoveMatcher) Wait(t *testing.T) protocol.MoveMessage {
	select {
	case <-time.After(1 * time.Second):
		require.Fail(t, "timeout waiting for move message")
	case move := <-m.triggered:
		return move
	}
	return protocol.MoveMessage{}
}
