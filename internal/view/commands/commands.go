package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/triplematch/setcli/internal/api"
	"github.com/triplematch/setcli/internal/transport"
	"github.com/triplematch/setcli/internal/view/messages"
	"github.com/triplematch/setcli/internal/view/states"
	"github.com/triplematch/setcli/pkg/protocol"
	"github.com/triplematch/setcli/pkg/session"
)

func InitializeApp(s *session.Session, t transport.Service, client *api.Client) tea.Cmd {
	return func() tea.Msg {
		err := client.Authenticate(context.Background())
		if err != nil {
			return messages.FatalErrorMessage{
				Err: errors.Wrap(err, "failed to authenticate"),
			}
		}

		err = s.Initialize()
		if err != nil {
			return messages.FatalErrorMessage{
				Err: errors.Wrap(err, "failed to initialize session"),
			}
		}

		t.Connect()
		s.Start()

		return messages.AppStateFinishedMessage{State: states.Initializing}
	}
}

func CreateNewRoom(s *session.Session, client *api.Client, mode protocol.GameMode) tea.Cmd {
	return func() tea.Msg {
		code, err := client.CreateRoom(context.Background(), mode)
		if err != nil {
			return messages.NewErrorMessage(err)
		}

		err = s.JoinRoom(code)
		if err != nil {
			return messages.NewErrorMessage(err)
		}

		return messages.RoomJoin{RoomCode: code}
	}
}

func JoinRoom(s *session.Session, client *api.Client, code protocol.RoomCode) tea.Cmd {
	return func() tea.Msg {
		exists, err := client.RoomExists(context.Background(), code)
		if err != nil {
			return messages.NewErrorMessage(err)
		}
		if !exists {
			return messages.NewErrorMessage(errors.Errorf("room %s not found", code))
		}

		err = s.JoinRoom(code)
		if err != nil {
			return messages.NewErrorMessage(err)
		}

		return messages.RoomJoin{RoomCode: code}
	}
}

func LeaveRoom(s *session.Session) tea.Cmd {
	return func() tea.Msg {
		s.LeaveRoom()
		return messages.RoomLeave{}
	}
}

func ListGames(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		rooms, err := client.ListGames(context.Background())
		if err != nil {
			return messages.NewErrorMessage(err)
		}
		return messages.GamesListMessage{Rooms: rooms}
	}
}

func ToggleCard(s *session.Session, index int) tea.Cmd {
	return func() tea.Msg {
		err := s.ToggleCard(index)
		return messages.NewErrorMessage(err)
	}
}

func RequestCards(s *session.Session) tea.Cmd {
	return func() tea.Msg {
		err := s.RequestCards()
		return messages.NewErrorMessage(err)
	}
}

func StartNewGame(s *session.Session) tea.Cmd {
	return func() tea.Msg {
		err := s.StartNewGame()
		return messages.NewErrorMessage(err)
	}
}

func QuitApp(s *session.Session) tea.Cmd {
	return func() tea.Msg {
		if s != nil {
			s.LeaveRoom()
		}
		return tea.Quit()
	}
}

func DelayMessage(timeout time.Duration, msg tea.Msg, restart chan struct{}) tea.Cmd {
	return func() tea.Msg {
		for {
			select {
			case <-time.After(timeout):
				return msg
			case <-restart:
			}
		}
	}
}
