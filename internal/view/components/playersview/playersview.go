package playersview

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/triplematch/setcli/internal/view/messages"
	"github.com/triplematch/setcli/pkg/protocol"
)

const textColor = lipgloss.Color("#FAFAFA")
const borderColor = lipgloss.Color("#555555")

var (
	playerNameStyle = lipgloss.NewStyle().
			Foreground(textColor).
			PaddingLeft(1).
			PaddingRight(1).
			Align(lipgloss.Center)
	myNameStyle = playerNameStyle.Copy().Bold(true)
	scoreStyle  = lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1).
			Align(lipgloss.Center)
	requestStyle = scoreStyle.Copy().Foreground(lipgloss.Color("#FFEA00"))
	borderStyle  = lipgloss.NewStyle().Foreground(borderColor)
)

type Model struct {
	players  protocol.PlayersList
	playerID protocol.PlayerID
}

func New() Model {
	return Model{
		playerID: "",
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) Model {
	switch msg := msg.(type) {
	case messages.PlayerIDMessage:
		m.playerID = msg.PlayerID
	case messages.SnapshotMessage:
		if msg.Snapshot == nil {
			m.players = nil
		} else {
			m.players = msg.Snapshot.Players
		}
	}
	return m
}

func (m Model) View() string {
	if len(m.players) == 0 {
		return ""
	}

	names := make([]string, 0, len(m.players))
	scores := make([]string, 0, len(m.players))
	myColumn := -1

	for i, player := range m.players {
		if player.ID == m.playerID {
			myColumn = i
		}
		names = append(names, player.Name)
		score := strconv.Itoa(player.Score)
		if player.Request {
			score += " ✋"
		}
		scores = append(scores, score)
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				if col == myColumn {
					return myNameStyle
				}
				return playerNameStyle
			}
			if m.players[col].Request {
				return requestStyle
			}
			return scoreStyle
		}).
		Headers(names...).
		Row(scores...)

	return t.Render()
}
