package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/triplematch/setcli/internal/config"
	"github.com/triplematch/setcli/internal/view/states"
)

var (
	foregroundShadeStyle = lipgloss.NewStyle().Foreground(config.ForegroundShadeColor)
	winnerStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("#00E676")).Bold(true)
)

func (m model) renderAppState() string {
	switch m.state {
	case states.Idle:
		return "nothing is happening. boring life."
	case states.Initializing:
		return m.spinner.View() + " Connecting to server..."
	case states.InputPlayerName:
		return m.renderPlayerNameInput()
	case states.InLobby:
		return m.renderLobby()
	case states.Playing:
		return m.renderGame()
	}

	return "unknown app state"
}

func (m model) renderPlayerNameInput() string {
	return lipgloss.JoinVertical(
		lipgloss.Top,
		m.input.View(),
		m.errorView.View(),
	)
}

func (m model) renderLobby() string {
	return lipgloss.JoinVertical(lipgloss.Top,
		m.statusView.View(),
		"  Join a game or create a new one ...",
		m.renderGamesList(),
		m.renderActionInput(),
		m.errorView.View())
}

func (m model) renderGamesList() string {
	if len(m.games) == 0 {
		return ""
	}

	rows := make([]string, 0, len(m.games)+1)
	rows = append(rows, "\n  Open games:")
	for _, code := range m.games {
		rows = append(rows, "   • "+code.String())
	}
	return lipgloss.JoinVertical(lipgloss.Top, rows...)
}

func (m model) renderGame() string {
	return lipgloss.JoinVertical(lipgloss.Top,
		m.statusView.View(),
		m.renderRoomCode(),
		m.notificationView.View(),
		"\n"+m.renderBoard(),
		m.renderActionInput(),
		m.errorView.View())
}

func (m model) renderRoomCode() string {
	mode := ""
	if m.snapshot != nil && m.snapshot.Mode != "" {
		mode = foregroundShadeStyle.Render(fmt.Sprintf(" (%s)", m.snapshot.Mode))
	}
	return "  Game: " + m.roomCode.String() + mode
}

func (m model) renderBoard() string {
	if m.snapshot == nil {
		return fmt.Sprintf("\n%s Waiting for game state ...\n", m.spinner.View())
	}

	if m.snapshot.GameOver {
		return m.renderGameOver()
	}

	deck := foregroundShadeStyle.Render(
		fmt.Sprintf("Cards left in deck: %d", m.snapshot.Remaining))

	return lipgloss.JoinVertical(lipgloss.Top,
		m.boardView.View(),
		deck,
		"",
		m.playersView.View(),
	)
}

func (m model) renderGameOver() string {
	winners := m.snapshot.Winners()
	names := make([]string, 0, len(winners))
	for _, winner := range winners {
		names = append(names, winner.Name)
	}

	var headline string
	if len(names) == 1 {
		headline = fmt.Sprintf("🏆 %s wins!", names[0])
	} else {
		headline = fmt.Sprintf("🏆 It's a tie: %s", strings.Join(names, ", "))
	}

	return lipgloss.JoinVertical(lipgloss.Top,
		winnerStyle.Render(headline),
		"",
		m.playersView.View(),
	)
}

func (m model) renderActionInput() string {
	if m.commandMode {
		return m.input.View()
	}
	return m.shortcutsView.View()
}

func renderLogPath() string {
	path := strings.Replace(config.LogFilePath, " ", "%20", -1)
	return fmt.Sprintf("Log: file:///%s", path)
}
