package session

import (
	"context"
	"encoding/json"
	"reflect"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/triplematch/setcli/internal/transport"
	"github.com/triplematch/setcli/pkg/protocol"
	"github.com/triplematch/setcli/pkg/storage"
)

var (
	ErrNoRoom = errors.New("no room")
)

const maxSelection = 3

type SnapshotSubscription chan *protocol.GameSnapshot
type NotificationsSubscription chan []Notification

// Session owns the client side of a game: the last snapshot pushed by the
// server, the local card selection and the notification buffer. All inbound
// snapshots replace the previous one wholesale.
type Session struct {
	logger    *zap.Logger
	ctx       context.Context
	transport transport.Service
	storage   storage.Service
	clock     clockwork.Clock
	config    configuration

	mutex         sync.Mutex
	player        *protocol.Player
	roomCode      protocol.RoomCode
	snapshot      *protocol.GameSnapshot
	selection     []int
	bootstrapped  bool
	notifications *NotificationBuffer

	snapshotSubscribers      []SnapshotSubscription
	notificationsSubscribers []NotificationsSubscription
}

func NewSession(opts []Option) *Session {
	session := &Session{
		player:    nil,
		selection: make([]int, 0, maxSelection),
		config:    defaultConfig,
	}

	for _, opt := range opts {
		opt(session)
	}

	if session.ctx == nil {
		session.ctx = context.Background()
	}

	if session.logger == nil {
		session.logger = zap.NewNop()
	}

	if session.transport == nil {
		session.logger.Error("transport is required")
		return nil
	}

	if session.clock == nil {
		session.logger.Error("clock is required")
		return nil
	}

	session.notifications = NewNotificationBuffer(
		session.clock,
		session.config.NotificationCapacity,
		session.config.NotificationTimeout,
	)
	session.notifications.onChange = session.notifyNotificationsChanged

	return session
}

func (s *Session) Initialize() error {
	if s.HasStorage() {
		err := s.storage.Initialize()
		if err != nil {
			return errors.Wrap(err, "failed to create storage")
		}
	}

	player, err := s.loadPlayer(s.storage)
	if err != nil {
		return err
	}

	s.player = player
	return nil
}

// Start begins consuming snapshots from the transport. The subscription
// lives until the transport is stopped or the context is cancelled.
func (s *Session) Start() {
	sub := s.transport.SubscribeToMessages()
	go s.processIncomingMessages(sub)
}

func (s *Session) Stop() {
	s.mutex.Lock()
	for _, subscriber := range s.snapshotSubscribers {
		close(subscriber)
	}
	s.snapshotSubscribers = nil
	for _, subscriber := range s.notificationsSubscribers {
		close(subscriber)
	}
	s.notificationsSubscribers = nil
	s.mutex.Unlock()

	s.notifications.Stop()
}

func (s *Session) processIncomingMessages(sub *transport.MessagesSubscription) {
	if sub.Unsubscribe != nil {
		defer sub.Unsubscribe()
	}
	for {
		select {
		case payload, more := <-sub.Ch:
			if !more {
				return
			}
			s.handleMessage(payload)
		case <-s.ctx.Done():
			return
		}
	}
}

// handleMessage parses an inbound payload as a full game snapshot.
// Malformed payloads are dropped and the previous snapshot stays in place.
func (s *Session) handleMessage(payload []byte) {
	s.logger.Debug("handling message", zap.Int("size", len(payload)))

	snapshot, err := protocol.UnmarshalSnapshot(payload)
	if err != nil {
		s.logger.Error("failed to unmarshal snapshot", zap.Error(err))
		return
	}

	s.ApplySnapshot(snapshot)
}

// ApplySnapshot replaces the current snapshot with the given one, clears
// the selection if the board changed and turns fresh events into
// notifications. Events carried by the very first snapshot describe the
// past and are not announced unless configured otherwise.
func (s *Session) ApplySnapshot(snapshot *protocol.GameSnapshot) {
	s.mutex.Lock()

	var prevEvents []protocol.Event
	if s.snapshot != nil {
		prevEvents = s.snapshot.Events
	}
	fresh := diffEvents(prevEvents, snapshot.Events)

	announce := s.bootstrapped || s.config.BootstrapNotifications

	boardChanged := s.snapshot == nil ||
		!slices.Equal(s.snapshot.InPlay.Cards(), snapshot.InPlay.Cards())
	if boardChanged && len(s.selection) > 0 {
		s.logger.Debug("board changed, clearing selection")
		s.selection = s.selection[:0]
	}

	s.snapshot = snapshot
	s.bootstrapped = true
	s.mutex.Unlock()

	if announce {
		for _, event := range fresh {
			content, ok := notificationFromEvent(event)
			if !ok {
				s.logger.Debug("ignoring event", zap.String("type", string(event.Type)))
				continue
			}
			s.notifications.Add(content)
		}
	}

	s.notifySnapshotChanged(snapshot)
}

// ToggleCard adds the card at the given board index to the selection, or
// removes it if already selected. Selecting a third card submits the
// selection as a move and clears it.
func (s *Session) ToggleCard(index int) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.snapshot == nil {
		return ErrNoRoom
	}

	cards := s.snapshot.InPlay.Cards()
	if index < 0 || index >= len(cards) {
		return errors.New("card index out of range")
	}

	position := slices.Index(s.selection, index)
	if position >= 0 {
		s.selection = slices.Delete(s.selection, position, position+1)
		return nil
	}

	s.selection = append(s.selection, index)
	if len(s.selection) < maxSelection {
		return nil
	}

	s.submitMove(cards)
	s.selection = s.selection[:0]
	return nil
}

// submitMove sends the selected cards by value. Caller holds the mutex.
// A selection made outside a room is dropped without an outbound message.
func (s *Session) submitMove(cards []protocol.Card) {
	if s.roomCode.Empty() {
		s.logger.Warn("move skipped: not in a room")
		return
	}

	move := make([]protocol.Card, 0, maxSelection)
	for _, index := range s.selection {
		move = append(move, cards[index])
	}

	err := s.send(protocol.NewMoveMessage(s.roomCode, move))
	if err != nil {
		s.logger.Error("failed to send move", zap.Error(err))
	}
}

func (s *Session) JoinRoom(code protocol.RoomCode) error {
	if code.Empty() {
		return errors.New("empty room code")
	}

	s.mutex.Lock()
	s.roomCode = code
	s.snapshot = nil
	s.selection = s.selection[:0]
	s.bootstrapped = false
	name := s.playerName()
	s.mutex.Unlock()

	err := s.send(protocol.NewJoinMessage(code, name))
	if err != nil {
		return errors.Wrap(err, "failed to send join message")
	}

	if s.HasStorage() {
		err = s.storage.SetLastRoom(code)
		if err != nil {
			s.logger.Warn("failed to save last room", zap.Error(err))
		}
	}

	s.logger.Info("joined room", zap.String("room", code.String()))
	return nil
}

func (s *Session) LeaveRoom() {
	s.mutex.Lock()
	s.roomCode = protocol.RoomCode{}
	s.snapshot = nil
	s.selection = s.selection[:0]
	s.bootstrapped = false
	s.mutex.Unlock()

	s.logger.Info("left room")
	s.notifySnapshotChanged(nil)
}

// RequestCards asks the server to deal additional cards.
func (s *Session) RequestCards() error {
	s.mutex.Lock()
	code := s.roomCode
	s.mutex.Unlock()

	if code.Empty() {
		return ErrNoRoom
	}
	return s.send(protocol.NewRequestMessage(code))
}

// StartNewGame asks the server for a rematch in the current room.
func (s *Session) StartNewGame() error {
	s.mutex.Lock()
	code := s.roomCode
	s.mutex.Unlock()

	if code.Empty() {
		return ErrNoRoom
	}
	return s.send(protocol.NewGameMessage{
		Message: protocol.Message{Type: protocol.MessageTypeNew},
	})
}

func (s *Session) RenamePlayer(name string) error {
	if s.HasStorage() {
		err := s.storage.SetPlayerName(name)
		if err != nil {
			return errors.Wrap(err, "failed to save player name")
		}
	}

	s.mutex.Lock()
	s.player.Name = name
	code := s.roomCode
	s.mutex.Unlock()

	if !code.Empty() {
		return s.send(protocol.NewJoinMessage(code, name))
	}
	return nil
}

// LastRoom returns the code of the most recently joined room, if any
// was persisted.
func (s *Session) LastRoom() protocol.RoomCode {
	if !s.HasStorage() {
		return protocol.RoomCode{}
	}
	return s.storage.LastRoom()
}

func (s *Session) SubscribeToSnapshot() SnapshotSubscription {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	channel := make(SnapshotSubscription, 10)
	s.snapshotSubscribers = append(s.snapshotSubscribers, channel)
	return channel
}

func (s *Session) SubscribeToNotifications() NotificationsSubscription {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	channel := make(NotificationsSubscription, 10)
	s.notificationsSubscribers = append(s.notificationsSubscribers, channel)
	return channel
}

func (s *Session) Player() protocol.Player {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.player == nil {
		return protocol.Player{}
	}
	return *s.player
}

func (s *Session) RoomCode() protocol.RoomCode {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.roomCode
}

func (s *Session) Snapshot() *protocol.GameSnapshot {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.snapshot
}

func (s *Session) Selection() []int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return slices.Clone(s.selection)
}

func (s *Session) Notifications() *NotificationBuffer {
	return s.notifications
}

func (s *Session) send(message any) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}
	return s.transport.Send(payload)
}

func (s *Session) notifySnapshotChanged(snapshot *protocol.GameSnapshot) {
	s.mutex.Lock()
	subscribers := slices.Clone(s.snapshotSubscribers)
	s.mutex.Unlock()

	for _, subscriber := range subscribers {
		subscriber <- snapshot
	}
}

func (s *Session) notifyNotificationsChanged() {
	s.mutex.Lock()
	subscribers := slices.Clone(s.notificationsSubscribers)
	s.mutex.Unlock()

	list := s.notifications.Active()
	for _, subscriber := range subscribers {
		select {
		case subscriber <- list:
		default:
		}
	}
}

func (s *Session) playerName() string {
	if s.player == nil {
		return ""
	}
	return s.player.Name
}

func (s *Session) loadPlayer(st storage.Service) (*protocol.Player, error) {
	var err error
	var player protocol.Player

	if !nilStorage(st) {
		player.ID = st.PlayerID()
	}

	if player.ID == "" {
		player.ID, err = GeneratePlayerID()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate player ID")
		}

		if !nilStorage(st) {
			err = st.SetPlayerID(player.ID)
			if err != nil {
				return nil, errors.Wrap(err, "failed to save player ID")
			}
		}
	}

	if s.config.PlayerName != "" {
		player.Name = s.config.PlayerName
	} else if !nilStorage(st) {
		player.Name = st.PlayerName()
	}

	return &player, nil
}

func nilStorage(s storage.Service) bool {
	return s == nil || reflect.ValueOf(s).IsNil()
}

func (s *Session) HasStorage() bool {
	return !nilStorage(s.storage)
}
