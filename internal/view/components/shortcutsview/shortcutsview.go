package shortcutsview

import (
	"fmt"

	bubblekey "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/triplematch/setcli/internal/view/commands"
	"github.com/triplematch/setcli/internal/view/messages"
)

const (
	smallSeparator = " "
	bigSeparator   = "  "
)

var (
	keyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	textStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

type Model struct {
	commandMode bool
	inRoom      bool
	gameOver    bool
}

func New() Model {
	return Model{
		commandMode: false,
		inRoom:      false,
		gameOver:    false,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.CommandModeChange:
		m.commandMode = msg.CommandMode
	case messages.RoomJoin:
		m.inRoom = true
		m.gameOver = false
	case messages.RoomLeave:
		m.inRoom = false
		m.gameOver = false
	case messages.SnapshotMessage:
		m.gameOver = msg.Snapshot != nil && msg.Snapshot.GameOver
	}
	return m
}

func (m Model) View() string {
	keys := commands.DefaultKeyMap

	var rows []string

	switch {
	case !m.inRoom:
		rows = append(rows,
			keyHelp(keys.NewRoom)+bigSeparator+
				keyHelp(keys.BestOf3)+bigSeparator+
				keyHelp(keys.JoinRoom)+bigSeparator+
				keyHelp(keys.Rejoin)+bigSeparator+
				keyHelp(keys.ListGames))

	case m.gameOver:
		rows = append(rows,
			keyHelp(keys.NewGame)+bigSeparator+keyHelp(keys.LeaveRoom))

	default:
		rows = append(rows,
			text("Use ")+key(keys.CursorLeft)+key(keys.CursorUp)+
				key(keys.CursorDown)+key(keys.CursorRight)+
				text(" to move and press ")+key(keys.ToggleCard)+
				text(" to select a card"))
		rows = append(rows,
			keyHelp(keys.RequestCards)+bigSeparator+keyHelp(keys.LeaveRoom))
	}

	{
		row := key(keys.CommandMode)
		if m.commandMode {
			row += text(" Switch to shortcuts mode")
		} else {
			row += text(" Switch to commands mode")
		}
		rows = append(rows, row)
	}

	return lipgloss.JoinVertical(lipgloss.Top, rows...)
}

func key(key bubblekey.Binding) string {
	s := fmt.Sprintf("[%s]", key.Help().Key)
	return keyStyle.Render(s)
}

func text(text string) string {
	return textStyle.Render(text)
}

func keyHelp(k bubblekey.Binding) string {
	return key(k) + smallSeparator + text(k.Help().Desc)
}
