package transport

import (
	"context"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrNotConnected = errors.New("connection is not open")
)

// Connection is the subset of *websocket.Conn the node depends on.
// Tests substitute it together with the dial function.
type Connection interface {
	Read(ctx context.Context) (websocket.MessageType, []byte, error)
	Write(ctx context.Context, typ websocket.MessageType, payload []byte) error
	Close(code websocket.StatusCode, reason string) error
}

type DialFunc func(ctx context.Context, url string) (Connection, error)

func defaultDial(ctx context.Context, url string) (Connection, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(dialCtx, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to dial websocket")
	}
	// Snapshots can outgrow the default 32K limit on a full board
	conn.SetReadLimit(1024 * 1024)
	return conn, nil
}

// Node owns the single persistent connection to the game server.
// A lost connection is redialed after a fixed delay, indefinitely.
type Node struct {
	ctx    context.Context
	logger *zap.Logger
	clock  clockwork.Clock

	url            string
	dial           DialFunc
	reconnectDelay time.Duration

	mutex             sync.Mutex
	conn              Connection
	status            Status
	stopped           bool
	reconnectTimer    clockwork.Timer
	msgSubscribers    []chan []byte
	statusSubscribers []StatusSubscription
}

type Option func(*Node)

func WithClock(clock clockwork.Clock) Option {
	return func(n *Node) {
		n.clock = clock
	}
}

func WithDial(dial DialFunc) Option {
	return func(n *Node) {
		n.dial = dial
	}
}

func WithReconnectDelay(delay time.Duration) Option {
	return func(n *Node) {
		n.reconnectDelay = delay
	}
}

func NewNode(ctx context.Context, logger *zap.Logger, url string, opts ...Option) *Node {
	node := &Node{
		ctx:            ctx,
		logger:         logger.Named("websocket"),
		clock:          clockwork.NewRealClock(),
		url:            url,
		dial:           defaultDial,
		reconnectDelay: 5 * time.Second,
		status:         StatusIdle,
	}

	for _, opt := range opts {
		opt(node)
	}

	return node
}

// Connect starts a connection attempt unless one is already pending or open.
func (n *Node) Connect() {
	n.mutex.Lock()
	if n.stopped || n.status == StatusConnecting || n.status == StatusOpen {
		n.mutex.Unlock()
		return
	}
	n.setStatusLocked(StatusConnecting)
	n.mutex.Unlock()

	go n.connect()
}

func (n *Node) connect() {
	conn, err := n.dial(n.ctx, n.url)
	if err != nil {
		n.logger.Warn("connection failed", zap.Error(err))
		n.onClose()
		return
	}

	n.mutex.Lock()
	if n.stopped {
		n.mutex.Unlock()
		_ = conn.Close(websocket.StatusNormalClosure, "stopped")
		return
	}
	n.conn = conn
	n.setStatusLocked(StatusOpen)
	n.mutex.Unlock()

	n.logger.Info("connected", zap.String("url", n.url))
	go n.readLoop(conn)
}

func (n *Node) readLoop(conn Connection) {
	for {
		_, payload, err := conn.Read(n.ctx)
		if err != nil {
			n.logger.Info("connection closed", zap.Error(err))
			n.onClose()
			return
		}

		n.mutex.Lock()
		subscribers := make([]chan []byte, len(n.msgSubscribers))
		copy(subscribers, n.msgSubscribers)
		n.mutex.Unlock()

		for _, subscriber := range subscribers {
			select {
			case subscriber <- payload:
			default:
				n.logger.Warn("subscriber channel full, dropping message")
			}
		}
	}
}

// onClose marks the connection closed and schedules a single reconnect.
// A pending reconnect timer is replaced, never stacked.
func (n *Node) onClose() {
	n.mutex.Lock()
	defer n.mutex.Unlock()

	n.conn = nil
	if n.stopped {
		return
	}

	n.setStatusLocked(StatusClosed)

	if n.reconnectTimer != nil {
		n.reconnectTimer.Stop()
	}
	n.reconnectTimer = n.clock.AfterFunc(n.reconnectDelay, n.Connect)
}

func (n *Node) Stop() {
	n.mutex.Lock()
	n.stopped = true
	if n.reconnectTimer != nil {
		n.reconnectTimer.Stop()
		n.reconnectTimer = nil
	}
	conn := n.conn
	n.conn = nil
	n.setStatusLocked(StatusClosed)
	for _, subscriber := range n.msgSubscribers {
		close(subscriber)
	}
	n.msgSubscribers = nil
	for _, subscriber := range n.statusSubscribers {
		close(subscriber)
	}
	n.statusSubscribers = nil
	n.mutex.Unlock()

	if conn != nil {
		_ = conn.Close(websocket.StatusNormalClosure, "client stopped")
	}
}

func (n *Node) Send(payload []byte) error {
	n.mutex.Lock()
	conn := n.conn
	status := n.status
	n.mutex.Unlock()

	if status != StatusOpen || conn == nil {
		return ErrNotConnected
	}

	err := conn.Write(n.ctx, websocket.MessageText, payload)
	return errors.Wrap(err, "failed to write message")
}

func (n *Node) Status() Status {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	return n.status
}

func (n *Node) SubscribeToMessages() *MessagesSubscription {
	channel := make(chan []byte, 42)

	n.mutex.Lock()
	n.msgSubscribers = append(n.msgSubscribers, channel)
	n.mutex.Unlock()

	return &MessagesSubscription{
		Ch:          channel,
		Unsubscribe: func() { n.unsubscribeFromMessages(channel) },
	}
}

func (n *Node) unsubscribeFromMessages(channel chan []byte) {
	n.mutex.Lock()
	defer n.mutex.Unlock()
	for i, subscriber := range n.msgSubscribers {
		if subscriber == channel {
			n.msgSubscribers = append(n.msgSubscribers[:i], n.msgSubscribers[i+1:]...)
			return
		}
	}
}

func (n *Node) SubscribeToStatus() StatusSubscription {
	channel := make(StatusSubscription, 10)

	n.mutex.Lock()
	n.statusSubscribers = append(n.statusSubscribers, channel)
	n.mutex.Unlock()

	return channel
}

func (n *Node) setStatusLocked(status Status) {
	if n.status == status {
		return
	}
	n.status = status
	for _, subscriber := range n.statusSubscribers {
		select {
		case subscriber <- status:
		default:
		}
	}
}

var _ Service = (*Node)(nil)
