package boardview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/suite"

	"github.com/triplematch/setcli/internal/testcommon"
	"github.com/triplematch/setcli/internal/view/messages"
	"github.com/triplematch/setcli/pkg/protocol"
)

func TestBoardView(t *testing.T) {
	suite.Run(t, new(Suite))
}

type Suite struct {
	testcommon.Suite
}

func snapshot(count int) *protocol.GameSnapshot {
	cards := make([]protocol.Card, 0, count)
	for i := 0; i < count; i++ {
		cards = append(cards, protocol.Card{
			Color:   protocol.CardColor(i % 3),
			Shape:   protocol.CardShape(i % 3),
			Number:  i%3 + 1,
			Shading: protocol.CardShading(i % 3),
		})
	}
	grid := make(protocol.CardGrid, 0)
	for len(cards) > 0 {
		n := rowLength
		if len(cards) < n {
			n = len(cards)
		}
		grid = append(grid, cards[:n])
		cards = cards[n:]
	}
	return &protocol.GameSnapshot{InPlay: grid}
}

func (s *Suite) TestInit() {
	model := New()
	s.Require().Empty(model.cards)
	s.Require().Zero(model.cursor)
	s.Require().False(model.focused)
	s.Require().Nil(model.Init())
}

func (s *Suite) TestCursorMovement() {
	model := New()
	model.Focus()
	model = model.Update(messages.SnapshotMessage{Snapshot: snapshot(12)}, nil)

	right := tea.KeyMsg{Type: tea.KeyRight}
	down := tea.KeyMsg{Type: tea.KeyDown}
	left := tea.KeyMsg{Type: tea.KeyLeft}
	up := tea.KeyMsg{Type: tea.KeyUp}

	model = model.Update(right, nil)
	s.Equal(1, model.CursorIndex())

	model = model.Update(down, nil)
	s.Equal(4, model.CursorIndex())

	model = model.Update(left, nil)
	s.Equal(3, model.CursorIndex())

	model = model.Update(up, nil)
	s.Equal(0, model.CursorIndex())

	// Cursor stays on the board
	model = model.Update(up, nil)
	s.Equal(0, model.CursorIndex())
	model = model.Update(left, nil)
	s.Equal(0, model.CursorIndex())
}

func (s *Suite) TestCursorClampedOnShrink() {
	model := New()
	model.Focus()
	model = model.Update(messages.SnapshotMessage{Snapshot: snapshot(12)}, nil)

	for i := 0; i < 11; i++ {
		model = model.Update(tea.KeyMsg{Type: tea.KeyRight}, nil)
	}
	s.Equal(11, model.CursorIndex())

	model = model.Update(messages.SnapshotMessage{Snapshot: snapshot(9)}, nil)
	s.Equal(8, model.CursorIndex())
}

func (s *Suite) TestIgnoresKeysWhenBlurred() {
	model := New()
	model = model.Update(messages.SnapshotMessage{Snapshot: snapshot(6)}, nil)

	model = model.Update(tea.KeyMsg{Type: tea.KeyRight}, nil)
	s.Equal(0, model.CursorIndex())
}

func (s *Suite) TestViewSurvivesMalformedCards() {
	model := New()
	model = model.Update(messages.SnapshotMessage{Snapshot: &protocol.GameSnapshot{
		InPlay: protocol.CardGrid{
			{
				{Color: protocol.ColorRed, Shape: protocol.ShapeOval, Number: 9, Shading: protocol.ShadingSolid},
				{Color: protocol.CardColor(7), Shape: protocol.CardShape(7), Number: -1, Shading: protocol.CardShading(7)},
				{Number: 0},
			},
		},
	}}, nil)

	s.Require().NotPanics(func() {
		s.NotEmpty(model.View())
	})
}

func (s *Suite) TestViewRendersAllCards() {
	model := New()
	model.Focus()
	model = model.Update(messages.SnapshotMessage{Snapshot: snapshot(6)}, []int{1})

	view := model.View()
	s.NotEmpty(view)

	// nil board renders nothing
	empty := New()
	s.Empty(empty.View())
}
