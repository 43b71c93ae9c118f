package matchers

import (
	"encoding/json"
	"testing"

	"github.com/triplematch/setcli/pkg/protocol"
)

// MessageMatcher matches a raw transport payload against the outbound
// message envelope and keeps the payload for embedding matchers.
type MessageMatcher struct {
	*Matcher
	messageType protocol.MessageType
	payload     []byte
}

func NewMessageMatcher(t *testing.T, messageType protocol.MessageType) *MessageMatcher {
	return &MessageMatcher{
		Matcher:     NewMatcher(t),
		messageType: messageType,
	}
}

func (m *MessageMatcher) Matches(x interface{}) bool {
	payload, ok := x.([]byte)
	if !ok {
		return false
	}

	message := protocol.Message{}
	if err := json.Unmarshal(payload, &message); err != nil {
		return false
	}

	if m.messageType != "" && message.Type != m.messageType {
		return false
	}

	m.payload = payload
	return true
}

func (m *MessageMatcher) String() string {
	return "is a " + string(m.messageType) + " message"
}
