package transport

//go:generate mockgen -source=service.go -destination=mock/service.go

type Status int

const (
	StatusIdle Status = iota
	StatusConnecting
	StatusOpen
	StatusClosed
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusConnecting:
		return "connecting"
	case StatusOpen:
		return "open"
	case StatusClosed:
		return "closed"
	}
	return "unknown"
}

type Service interface {
	Connect()
	Stop()

	// Send delivers a single text frame. Payloads sent while the
	// connection is not open are dropped, not queued.
	Send(payload []byte) error

	Status() Status
	SubscribeToMessages() *MessagesSubscription
	SubscribeToStatus() StatusSubscription
}

type MessagesSubscription struct {
	Ch          chan []byte
	Unsubscribe func()
}

type StatusSubscription chan Status
