package protocol

type MessageType string

const (
	MessageTypeJoin    MessageType = "join"
	MessageTypeMove    MessageType = "move"
	MessageTypeRequest MessageType = "request"
	MessageTypeNew     MessageType = "new"
)

type Message struct {
	Type MessageType `json:"type"`
}

type JoinPayload struct {
	RoomCode       RoomCode `json:"room_code"`
	PlayerUsername string   `json:"player_username"`
}

type JoinMessage struct {
	Message
	Payload JoinPayload `json:"payload"`
}

type MovePayload struct {
	RoomCode RoomCode `json:"room_code"`
	Cards    []Card   `json:"cards"`
}

type MoveMessage struct {
	Message
	Payload MovePayload `json:"payload"`
}

type RequestPayload struct {
	RoomCode RoomCode `json:"room_code"`
}

type RequestMessage struct {
	Message
	Payload RequestPayload `json:"payload"`
}

type NewGameMessage struct {
	Message
}

func NewJoinMessage(room RoomCode, username string) JoinMessage {
	return JoinMessage{
		Message: Message{Type: MessageTypeJoin},
		Payload: JoinPayload{
			RoomCode:       room,
			PlayerUsername: username,
		},
	}
}

func NewMoveMessage(room RoomCode, cards []Card) MoveMessage {
	return MoveMessage{
		Message: Message{Type: MessageTypeMove},
		Payload: MovePayload{
			RoomCode: room,
			Cards:    cards,
		},
	}
}

func NewRequestMessage(room RoomCode) RequestMessage {
	return RequestMessage{
		Message: Message{Type: MessageTypeRequest},
		Payload: RequestPayload{RoomCode: room},
	}
}
