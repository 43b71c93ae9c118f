package commands

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	// Common
	CommandMode key.Binding
	LeaveRoom   key.Binding
	// Lobby
	NewRoom   key.Binding
	BestOf3   key.Binding
	JoinRoom  key.Binding
	Rejoin    key.Binding
	ListGames key.Binding
	// Board
	CursorUp     key.Binding
	CursorDown   key.Binding
	CursorLeft   key.Binding
	CursorRight  key.Binding
	ToggleCard   key.Binding
	RequestCards key.Binding
	NewGame      key.Binding
}

var DefaultKeyMap = KeyMap{
	// Common
	CommandMode: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("Shift+Tab", "Switch to command mode"),
	),
	LeaveRoom: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("Q", "Leave room"),
	),
	// Lobby
	NewRoom: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("N", "New game"),
	),
	BestOf3: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("B", "New best-of-3 game"),
	),
	JoinRoom: key.NewBinding(
		key.WithKeys("j"),
		key.WithHelp("J", "Join game"),
	),
	Rejoin: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("R", "Rejoin last game"),
	),
	ListGames: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("L", "List open games"),
	),
	// Board
	CursorUp: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "Move up"),
	),
	CursorDown: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "Move down"),
	),
	CursorLeft: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "Move left"),
	),
	CursorRight: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "Move right"),
	),
	ToggleCard: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("Enter/Space", "Select card"),
	),
	RequestCards: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("D", "Request more cards"),
	),
	NewGame: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("N", "Play again"),
	),
}
