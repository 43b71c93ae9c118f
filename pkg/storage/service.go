package storage

import (
	"github.com/triplematch/setcli/pkg/protocol"
)

//go:generate mockgen -source=service.go -destination=mock/service.go

type Service interface {
	Initialize() error
	PlayerID() protocol.PlayerID
	PlayerName() string
	SetPlayerID(id protocol.PlayerID) error
	SetPlayerName(name string) error
	LastRoom() protocol.RoomCode
	SetLastRoom(code protocol.RoomCode) error
}
