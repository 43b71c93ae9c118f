package session

import (
	"github.com/google/uuid"

	"github.com/triplematch/setcli/pkg/protocol"
)

func GeneratePlayerID() (protocol.PlayerID, error) {
	playerUUID := uuid.New()
	return protocol.PlayerID(playerUUID.String()), nil
}

func generateNotificationID() string {
	return uuid.New().String()
}
