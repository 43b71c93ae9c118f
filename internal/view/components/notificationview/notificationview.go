package notificationview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/triplematch/setcli/internal/view/messages"
	"github.com/triplematch/setcli/pkg/session"
)

var style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEA00")).Italic(true)

// Model shows the currently active notifications. Expiry is driven by the
// session's notification buffer, the view only renders what it is told.
type Model struct {
	notifications []session.Notification
}

func New() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.NotificationsMessage:
		m.notifications = msg.Notifications
	case messages.RoomLeave:
		m.notifications = nil
	}
	return m
}

func (m Model) View() string {
	if len(m.notifications) == 0 {
		return ""
	}

	lines := make([]string, 0, len(m.notifications))
	for _, notification := range m.notifications {
		lines = append(lines, style.Render("🔔 "+notification.Content))
	}

	return lipgloss.JoinVertical(lipgloss.Top, lines...)
}
