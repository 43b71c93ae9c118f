package messages

import (
	"github.com/triplematch/setcli/internal/transport"
	"github.com/triplematch/setcli/internal/view/states"
	"github.com/triplematch/setcli/pkg/protocol"
	"github.com/triplematch/setcli/pkg/session"
)

type FatalErrorMessage struct {
	Err error
}

type AppStateFinishedMessage struct {
	State states.AppState
}

type AppStateMessage struct {
	State states.AppState
}

type SnapshotMessage struct {
	Snapshot *protocol.GameSnapshot
}

type ErrorMessage struct {
	Err error
}

func NewErrorMessage(err error) ErrorMessage {
	return ErrorMessage{Err: err}
}

// ClearErrorMessage hides the currently displayed error.
type ClearErrorMessage struct {
}

type PlayerIDMessage struct {
	PlayerID protocol.PlayerID
}

type ConnectionStatus struct {
	Status transport.Status
}

type CommandModeChange struct {
	CommandMode bool
}

type RoomJoin struct {
	RoomCode protocol.RoomCode
}

type RoomLeave struct {
}

type NotificationsMessage struct {
	Notifications []session.Notification
}

type GamesListMessage struct {
	Rooms []protocol.RoomCode
}
