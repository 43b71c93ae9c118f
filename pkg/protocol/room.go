package protocol

import (
	"encoding/json"
	"strings"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// RoomCode is a short server-issued identifier of a game room.
// Codes use the base58 alphabet, which lets the client reject
// obvious typos (0/O, I/l) before asking the server.
type RoomCode struct {
	string
}

func NewRoomCode(code string) RoomCode {
	return RoomCode{code}
}

func (c RoomCode) String() string {
	return c.string
}

func (c RoomCode) Empty() bool {
	return c.string == ""
}

func (c RoomCode) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.string)
}

func (c *RoomCode) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &c.string)
}

func ParseRoomCode(input string) (RoomCode, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return RoomCode{}, errors.New("empty room code")
	}
	if _, err := base58.Decode(input); err != nil {
		return RoomCode{}, errors.Wrap(err, "invalid room code")
	}
	return NewRoomCode(input), nil
}
