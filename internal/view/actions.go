package view

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/triplematch/setcli/internal/view/commands"
	"github.com/triplematch/setcli/internal/view/messages"
	"github.com/triplematch/setcli/internal/view/states"
	"github.com/triplematch/setcli/pkg/protocol"
)

type Action string

const (
	Rename Action = "rename"
	New    Action = "new"
	Join   Action = "join"
	Rejoin Action = "rejoin"
	List   Action = "list"
	Deal   Action = "deal"
	Exit   Action = "exit"
)

type actionFunc func(m *model, args []string) tea.Cmd

var actions = map[Action]actionFunc{
	Rename: runRenameAction,
	New:    runNewAction,
	Join:   runJoinAction,
	Rejoin: runRejoinAction,
	List:   runListAction,
	Deal:   runDealAction,
	Exit:   runExitAction,
}

func processPlayerNameInput(m *model, playerName string) tea.Cmd {
	return func() tea.Msg {
		err := m.session.RenamePlayer(playerName)
		if err != nil {
			return messages.NewErrorMessage(err)
		}
		return messages.AppStateFinishedMessage{
			State: states.InputPlayerName,
		}
	}
}

func runRenameAction(m *model, args []string) tea.Cmd {
	return func() tea.Msg {
		if len(args) == 0 {
			err := errors.New("empty user")
			return messages.NewErrorMessage(err)
		}
		err := m.session.RenamePlayer(args[0])
		return messages.NewErrorMessage(err)
	}
}

func runNewAction(m *model, args []string) tea.Cmd {
	mode := protocol.ModeClassic
	if len(args) > 0 && args[0] == "bestof3" {
		mode = protocol.ModeBestOf3
	}
	return commands.CreateNewRoom(m.session, m.api, mode)
}

func runJoinAction(m *model, args []string) tea.Cmd {
	if len(args) == 0 {
		return func() tea.Msg {
			return messages.NewErrorMessage(errors.New("no room code given"))
		}
	}

	code, err := protocol.ParseRoomCode(args[0])
	if err != nil {
		return func() tea.Msg {
			return messages.NewErrorMessage(err)
		}
	}

	return commands.JoinRoom(m.session, m.api, code)
}

func runRejoinAction(m *model, args []string) tea.Cmd {
	code := m.session.LastRoom()
	if code.Empty() {
		return func() tea.Msg {
			return messages.NewErrorMessage(errors.New("no previous game to rejoin"))
		}
	}
	return commands.JoinRoom(m.session, m.api, code)
}

func runListAction(m *model, args []string) tea.Cmd {
	return commands.ListGames(m.api)
}

func runDealAction(m *model, args []string) tea.Cmd {
	return commands.RequestCards(m.session)
}

func runExitAction(m *model, args []string) tea.Cmd {
	if m.roomCode.Empty() {
		return commands.QuitApp(m.session)
	}
	return commands.LeaveRoom(m.session)
}
