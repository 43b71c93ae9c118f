package statusview

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/triplematch/setcli/internal/transport"
	"github.com/triplematch/setcli/internal/view/messages"
)

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#00E676"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEA00"))
	dangerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5722"))
)

type Model struct {
	status transport.Status
}

func New() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.ConnectionStatus:
		m.status = msg.Status
	}
	return m
}

func (m Model) View() string {
	marker := "●"
	switch m.status {
	case transport.StatusOpen:
		marker = okStyle.Render(marker)
	case transport.StatusConnecting:
		marker = warnStyle.Render(marker)
	default:
		marker = dangerStyle.Render(marker)
	}

	return lipgloss.JoinHorizontal(lipgloss.Left, marker, " Server: "+m.status.String())
}
