package notificationview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/triplematch/setcli/internal/testcommon"
	"github.com/triplematch/setcli/internal/view/messages"
	"github.com/triplematch/setcli/pkg/session"
)

func TestNotificationView(t *testing.T) {
	suite.Run(t, new(Suite))
}

type Suite struct {
	testcommon.Suite
}

func (s *Suite) TestRendersNotifications() {
	model := New()
	s.Empty(model.View())

	model = model.Update(messages.NotificationsMessage{
		Notifications: []session.Notification{
			{ID: "1", Content: "Alice found a set!"},
			{ID: "2", Content: "Player Bob joined the game"},
		},
	})

	view := model.View()
	s.True(strings.Contains(view, "Alice found a set!"))
	s.True(strings.Contains(view, "Player Bob joined the game"))
}

func (s *Suite) TestClearedOnRoomLeave() {
	model := New()
	model = model.Update(messages.NotificationsMessage{
		Notifications: []session.Notification{{ID: "1", Content: "x"}},
	})
	s.NotEmpty(model.View())

	model = model.Update(messages.RoomLeave{})
	s.Empty(model.View())
}
