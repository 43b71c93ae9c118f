package boardview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/exp/slices"

	"github.com/triplematch/setcli/internal/view/commands"
	"github.com/triplematch/setcli/internal/view/messages"
	"github.com/triplematch/setcli/pkg/protocol"
)

const rowLength = 3

var (
	colorStyles = map[protocol.CardColor]lipgloss.Style{
		protocol.ColorRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5722")),
		protocol.ColorGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("#00E676")),
		protocol.ColorPurple: lipgloss.NewStyle().Foreground(lipgloss.Color("#AA00FF")),
	}
	glyphs = map[protocol.CardShape][3]string{
		protocol.ShapeDiamond:  {"◆", "◈", "◇"},
		protocol.ShapeOval:     {"●", "◍", "○"},
		protocol.ShapeSquiggle: {"▰", "▨", "▱"},
	}

	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#555555")).
			Padding(0, 1)
	cursorCellStyle = cellStyle.Copy().
			BorderForeground(lipgloss.Color("#FAFAFA"))
	selectedCellStyle = cellStyle.Copy().
				Border(lipgloss.DoubleBorder()).
				BorderForeground(lipgloss.Color("#FFEA00"))
)

type Model struct {
	cards     []protocol.Card
	selection []int
	cursor    int
	focused   bool
}

func New() Model {
	return Model{}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg, selection []int) Model {
	m.selection = selection

	switch msg := msg.(type) {
	case messages.SnapshotMessage:
		if msg.Snapshot == nil {
			m.cards = nil
			m.cursor = 0
			break
		}
		m.cards = msg.Snapshot.InPlay.Cards()
		if m.cursor >= len(m.cards) {
			m.cursor = max(len(m.cards)-1, 0)
		}

	case tea.KeyMsg:
		if !m.focused || len(m.cards) == 0 {
			break
		}
		keys := commands.DefaultKeyMap
		switch {
		case key.Matches(msg, keys.CursorLeft):
			m.moveCursor(-1)
		case key.Matches(msg, keys.CursorRight):
			m.moveCursor(1)
		case key.Matches(msg, keys.CursorUp):
			m.moveCursor(-rowLength)
		case key.Matches(msg, keys.CursorDown):
			m.moveCursor(rowLength)
		}
	}

	return m
}

func (m *Model) moveCursor(delta int) {
	next := m.cursor + delta
	if next >= 0 && next < len(m.cards) {
		m.cursor = next
	}
}

func (m Model) View() string {
	if len(m.cards) == 0 {
		return ""
	}

	rows := make([]string, 0, (len(m.cards)+rowLength-1)/rowLength)
	for start := 0; start < len(m.cards); start += rowLength {
		end := min(start+rowLength, len(m.cards))
		cells := make([]string, 0, rowLength)
		for i := start; i < end; i++ {
			cells = append(cells, m.renderCard(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCard(index int) string {
	card := m.cards[index]

	// clamp out-of-range values so a misbehaving server cannot
	// crash the render loop
	count := min(max(card.Number, 1), rowLength)
	shading := card.Shading
	if shading < protocol.ShadingSolid || shading > protocol.ShadingOpen {
		shading = protocol.ShadingSolid
	}

	glyph := glyphs[card.Shape][shading]
	face := colorStyles[card.Color].Render(strings.Repeat(glyph, count))
	// pad to constant width so rows stay aligned
	face += strings.Repeat(" ", rowLength-count)

	style := cellStyle
	if slices.Contains(m.selection, index) {
		style = selectedCellStyle
	} else if m.focused && index == m.cursor {
		style = cursorCellStyle
	}

	return style.Render(face)
}

func (m *Model) Focus() {
	m.focused = true
}

func (m *Model) Blur() {
	m.focused = false
}

func (m Model) CursorIndex() int {
	return m.cursor
}
