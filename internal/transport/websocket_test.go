package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testTimeout = 5 * time.Second

type fakeConn struct {
	incoming chan []byte
	written  chan []byte
	closed   chan struct{}
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		incoming: make(chan []byte, 10),
		written:  make(chan []byte, 10),
		closed:   make(chan struct{}),
	}
}

func (c *fakeConn) Read(ctx context.Context) (websocket.MessageType, []byte, error) {
	select {
	case payload := <-c.incoming:
		return websocket.MessageText, payload, nil
	case <-c.closed:
		return 0, nil, errors.New("connection lost")
	case <-ctx.Done():
		return 0, nil, ctx.Err()
	}
}

func (c *fakeConn) Write(_ context.Context, _ websocket.MessageType, payload []byte) error {
	c.written <- payload
	return nil
}

func (c *fakeConn) Close(_ websocket.StatusCode, _ string) error {
	select {
	case <-c.closed:
	default:
		close(c.closed)
	}
	return nil
}

func fakeDialer(dials chan *fakeConn) DialFunc {
	return func(ctx context.Context, url string) (Connection, error) {
		conn := newFakeConn()
		dials <- conn
		return conn, nil
	}
}

func waitStatus(t *testing.T, sub StatusSubscription, expected Status) {
	t.Helper()
	for {
		select {
		case status := <-sub:
			if status == expected {
				return
			}
		case <-time.After(testTimeout):
			t.Fatalf("timeout waiting for status %s", expected)
		}
	}
}

func waitDial(t *testing.T, dials chan *fakeConn) *fakeConn {
	t.Helper()
	select {
	case conn := <-dials:
		return conn
	case <-time.After(testTimeout):
		t.Fatal("timeout waiting for dial")
	}
	return nil
}

func TestConnectIsIdempotent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dials := make(chan *fakeConn, 10)
	node := NewNode(ctx, zap.NewNop(), "ws://test", WithDial(fakeDialer(dials)))
	defer node.Stop()

	sub := node.SubscribeToStatus()

	node.Connect()
	node.Connect()
	node.Connect()

	conn := waitDial(t, dials)
	require.NotNil(t, conn)
	waitStatus(t, sub, StatusOpen)

	// Connect while open is a no-op as well
	node.Connect()

	select {
	case <-dials:
		t.Fatal("unexpected second dial")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestReconnectAfterClose(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	const reconnectDelay = 5 * time.Second

	clock := clockwork.NewFakeClock()
	dials := make(chan *fakeConn, 10)
	node := NewNode(ctx, zap.NewNop(), "ws://test",
		WithDial(fakeDialer(dials)),
		WithClock(clock),
		WithReconnectDelay(reconnectDelay),
	)
	defer node.Stop()

	sub := node.SubscribeToStatus()
	node.Connect()

	conn := waitDial(t, dials)
	waitStatus(t, sub, StatusOpen)

	// Drop the connection
	_ = conn.Close(websocket.StatusAbnormalClosure, "")
	waitStatus(t, sub, StatusClosed)

	// Exactly one reconnect attempt is made, and only after the delay
	clock.BlockUntil(1)
	select {
	case <-dials:
		t.Fatal("reconnect attempted before the delay")
	case <-time.After(100 * time.Millisecond):
	}

	clock.Advance(reconnectDelay)
	waitDial(t, dials)
	waitStatus(t, sub, StatusOpen)

	select {
	case <-dials:
		t.Fatal("more than one reconnect attempt")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSendWhileNotOpen(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dials := make(chan *fakeConn, 1)
	node := NewNode(ctx, zap.NewNop(), "ws://test", WithDial(fakeDialer(dials)))
	defer node.Stop()

	err := node.Send([]byte("dropped"))
	require.ErrorIs(t, err, ErrNotConnected)
}

func TestMessagesDeliveredInOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dials := make(chan *fakeConn, 1)
	node := NewNode(ctx, zap.NewNop(), "ws://test", WithDial(fakeDialer(dials)))
	defer node.Stop()

	statusSub := node.SubscribeToStatus()
	messagesSub := node.SubscribeToMessages()
	defer messagesSub.Unsubscribe()

	node.Connect()
	conn := waitDial(t, dials)
	waitStatus(t, statusSub, StatusOpen)

	conn.incoming <- []byte("first")
	conn.incoming <- []byte("second")

	require.Equal(t, []byte("first"), <-messagesSub.Ch)
	require.Equal(t, []byte("second"), <-messagesSub.Ch)
}

func TestNodeAgainstRealServer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan []byte, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "")

		err = conn.Write(r.Context(), websocket.MessageText, []byte(`{"remaining":70}`))
		if err != nil {
			return
		}

		_, payload, err := conn.Read(r.Context())
		if err != nil {
			return
		}
		received <- payload

		<-r.Context().Done()
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	node := NewNode(ctx, zap.NewNop(), url)
	defer node.Stop()

	statusSub := node.SubscribeToStatus()
	messagesSub := node.SubscribeToMessages()

	node.Connect()
	waitStatus(t, statusSub, StatusOpen)

	select {
	case payload := <-messagesSub.Ch:
		require.JSONEq(t, `{"remaining":70}`, string(payload))
	case <-time.After(testTimeout):
		t.Fatal("timeout waiting for server push")
	}

	err := node.Send([]byte(`{"type":"new"}`))
	require.NoError(t, err)

	select {
	case payload := <-received:
		require.JSONEq(t, `{"type":"new"}`, string(payload))
	case <-time.After(testTimeout):
		t.Fatal("timeout waiting for server to receive message")
	}
}
