package session

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/triplematch/setcli/internal/testcommon"
	"github.com/triplematch/setcli/internal/testcommon/matchers"
	"github.com/triplematch/setcli/internal/transport"
	mocktransport "github.com/triplematch/setcli/internal/transport/mock"
	"github.com/triplematch/setcli/pkg/protocol"
	mockstorage "github.com/triplematch/setcli/pkg/storage/mock"
)

func TestSession(t *testing.T) {
	suite.Run(t, new(Suite))
}

type Suite struct {
	testcommon.Suite

	ctx       context.Context
	cancel    context.CancelFunc
	transport *mocktransport.MockService
	clock     clockwork.FakeClock
}

func (s *Suite) SetupTest() {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	ctrl := gomock.NewController(s.T())
	s.transport = mocktransport.NewMockService(ctrl)
	s.clock = clockwork.NewFakeClock()
}

func (s *Suite) TearDownTest() {
	s.cancel()
}

func (s *Suite) newSession(extraOptions []Option) *Session {
	options := []Option{
		WithContext(s.ctx),
		WithTransport(s.transport),
		WithClock(s.clock),
		WithLogger(s.Logger),
		WithPlayerName(gofakeit.Username()),
	}
	options = append(options, extraOptions...)

	session := NewSession(options)
	s.Require().NotNil(session)

	err := session.Initialize()
	s.Require().NoError(err)

	return session
}

func (s *Suite) joinRoom(session *Session, code string) protocol.RoomCode {
	room, err := protocol.ParseRoomCode(code)
	s.Require().NoError(err)

	joinMatcher := matchers.NewJoinMatcher(s.T(), room, session.Player().Name)
	s.transport.EXPECT().Send(joinMatcher).Return(nil).Times(1)

	err = session.JoinRoom(room)
	s.Require().NoError(err)

	return room
}

func board(cards ...protocol.Card) protocol.CardGrid {
	grid := make(protocol.CardGrid, 0, 1)
	for len(cards) > 0 {
		n := 3
		if len(cards) < n {
			n = len(cards)
		}
		grid = append(grid, cards[:n])
		cards = cards[n:]
	}
	return grid
}

func cardFixture(n int) protocol.Card {
	return protocol.Card{
		Color:   protocol.CardColor(n % 3),
		Shape:   protocol.CardShape(n % 3),
		Number:  n%3 + 1,
		Shading: protocol.CardShading(n % 3),
	}
}

func (s *Suite) TestThirdCardSubmitsMove() {
	session := s.newSession(nil)
	room := s.joinRoom(session, "2xKz9")

	c1 := cardFixture(1)
	c2 := cardFixture(2)
	c3 := cardFixture(3)
	c4 := cardFixture(4)
	session.ApplySnapshot(&protocol.GameSnapshot{
		InPlay: board(c1, c2, c3, c4),
	})

	moveMatcher := matchers.NewMoveMatcher(s.T())
	s.transport.EXPECT().Send(moveMatcher).Return(nil).Times(1)

	s.Require().NoError(session.ToggleCard(0))
	s.Require().NoError(session.ToggleCard(2))
	s.Require().Equal([]int{0, 2}, session.Selection())

	s.Require().NoError(session.ToggleCard(3))

	move := moveMatcher.Wait(s.T())
	s.Require().Equal(room, move.Payload.RoomCode)
	s.Require().Equal([]protocol.Card{c1, c3, c4}, move.Payload.Cards)

	s.Require().Empty(session.Selection())
}

func (s *Suite) TestToggleRemovesSelectedCard() {
	session := s.newSession(nil)
	s.joinRoom(session, "2xKz9")

	session.ApplySnapshot(&protocol.GameSnapshot{
		InPlay: board(cardFixture(1), cardFixture(2), cardFixture(3)),
	})

	s.Require().NoError(session.ToggleCard(1))
	s.Require().NoError(session.ToggleCard(0))
	s.Require().NoError(session.ToggleCard(1))
	s.Require().Equal([]int{0}, session.Selection())

	s.Require().Error(session.ToggleCard(5))
}

func (s *Suite) TestSelectionClearedOnBoardChange() {
	session := s.newSession(nil)
	s.joinRoom(session, "2xKz9")

	c1 := cardFixture(1)
	c2 := cardFixture(2)
	c3 := cardFixture(3)
	c4 := cardFixture(4)
	session.ApplySnapshot(&protocol.GameSnapshot{InPlay: board(c1, c2, c3, c4)})

	s.Require().NoError(session.ToggleCard(0))
	s.Require().NoError(session.ToggleCard(1))

	// Same cards by value: selection survives, even with a fresh grid
	session.ApplySnapshot(&protocol.GameSnapshot{InPlay: board(c1, c2, c3, c4)})
	s.Require().Equal([]int{0, 1}, session.Selection())

	session.ApplySnapshot(&protocol.GameSnapshot{InPlay: board(c1, c2, c4)})
	s.Require().Empty(session.Selection())
}

func (s *Suite) TestMoveWithoutRoomIsDropped() {
	session := s.newSession(nil)

	// No Send expected: the move never leaves the client
	session.ApplySnapshot(&protocol.GameSnapshot{
		InPlay: board(cardFixture(1), cardFixture(2), cardFixture(3)),
	})

	s.Require().NoError(session.ToggleCard(0))
	s.Require().NoError(session.ToggleCard(1))
	s.Require().NoError(session.ToggleCard(2))

	s.Require().Empty(session.Selection())
}

func (s *Suite) TestBootstrapEventsAreSilent() {
	session := s.newSession(nil)
	s.joinRoom(session, "2xKz9")

	joined := event(protocol.EventPlayerJoined, "Alice", 100, 0)
	session.ApplySnapshot(&protocol.GameSnapshot{
		InPlay: board(cardFixture(1)),
		Events: []protocol.Event{joined},
	})
	s.Require().Empty(session.Notifications().List())

	found := event(protocol.EventPlayerFoundSet, "Alice found a set!", 101, 0)
	session.ApplySnapshot(&protocol.GameSnapshot{
		InPlay: board(cardFixture(1)),
		Events: []protocol.Event{joined, found},
	})

	list := session.Notifications().List()
	s.Require().Len(list, 1)
	s.Require().Equal("Alice found a set!", list[0].Content)
}

func (s *Suite) TestBootstrapEventsAnnouncedWhenEnabled() {
	session := s.newSession([]Option{
		WithBootstrapNotifications(true),
		WithNotificationCapacity(2),
	})
	s.joinRoom(session, "2xKz9")

	session.ApplySnapshot(&protocol.GameSnapshot{
		InPlay: board(cardFixture(1)),
		Events: []protocol.Event{
			event(protocol.EventPlayerJoined, "Alice", 100, 0),
			event(protocol.EventPlayerRequestedCards, "Bob", 101, 0),
		},
	})

	list := session.Notifications().List()
	s.Require().Len(list, 2)
	s.Require().Equal("Bob requested cards", list[0].Content)
	s.Require().Equal("Player Alice joined the game", list[1].Content)
}

func (s *Suite) TestMalformedPayloadKeepsSnapshot() {
	session := s.newSession(nil)
	s.joinRoom(session, "2xKz9")

	snapshot := &protocol.GameSnapshot{InPlay: board(cardFixture(1)), Remaining: 69}
	session.ApplySnapshot(snapshot)

	session.handleMessage([]byte(`{"in_play": `))
	s.Require().Equal(snapshot, session.Snapshot())

	session.handleMessage([]byte(`not json at all`))
	s.Require().Equal(snapshot, session.Snapshot())
}

func (s *Suite) TestSnapshotSubscription() {
	session := s.newSession(nil)
	s.joinRoom(session, "2xKz9")

	sub := session.SubscribeToSnapshot()

	payload, err := json.Marshal(&protocol.GameSnapshot{
		InPlay:    board(cardFixture(1), cardFixture(2), cardFixture(3)),
		Remaining: 66,
	})
	s.Require().NoError(err)

	messages := &transport.MessagesSubscription{
		Ch:          make(chan []byte, 1),
		Unsubscribe: func() {},
	}
	s.transport.EXPECT().SubscribeToMessages().Return(messages).Times(1)
	session.Start()

	messages.Ch <- payload

	snapshot := <-sub
	s.Require().NotNil(snapshot)
	s.Require().Equal(66, snapshot.Remaining)
	s.Require().Len(snapshot.InPlay.Cards(), 3)
}

func (s *Suite) TestGeneratedPlayerSavedToStorage() {
	storageMock := mockstorage.NewMockService(gomock.NewController(s.T()))
	storageMock.EXPECT().Initialize().Return(nil).Times(1)
	storageMock.EXPECT().PlayerID().Return(protocol.PlayerID("")).Times(1)

	var savedID protocol.PlayerID
	storageMock.EXPECT().SetPlayerID(gomock.Any()).
		DoAndReturn(func(id protocol.PlayerID) error {
			savedID = id
			return nil
		}).
		Times(1)

	session := s.newSession([]Option{WithStorage(storageMock)})

	s.Require().NotEmpty(savedID)
	s.Require().Equal(savedID, session.Player().ID)
}

func (s *Suite) TestStoredPlayerReused() {
	storageMock := mockstorage.NewMockService(gomock.NewController(s.T()))

	id := protocol.PlayerID(gofakeit.UUID())
	storageMock.EXPECT().Initialize().Return(nil).Times(1)
	storageMock.EXPECT().PlayerID().Return(id).Times(1)

	session := s.newSession([]Option{WithStorage(storageMock)})
	s.Require().Equal(id, session.Player().ID)
}

func (s *Suite) TestLastRoomSavedOnJoin() {
	storageMock := mockstorage.NewMockService(gomock.NewController(s.T()))
	storageMock.EXPECT().Initialize().Return(nil).Times(1)
	storageMock.EXPECT().PlayerID().Return(protocol.PlayerID(gofakeit.UUID())).Times(1)

	session := s.newSession([]Option{WithStorage(storageMock)})

	room, err := protocol.ParseRoomCode("2xKz9")
	s.Require().NoError(err)

	joinMatcher := matchers.NewJoinMatcher(s.T(), room, session.Player().Name)
	s.transport.EXPECT().Send(joinMatcher).Return(nil).Times(1)
	storageMock.EXPECT().SetLastRoom(room).Return(nil).Times(1)

	s.Require().NoError(session.JoinRoom(room))

	storageMock.EXPECT().LastRoom().Return(room).Times(1)
	s.Require().Equal(room, session.LastRoom())
}

func (s *Suite) TestLeaveRoomResetsState() {
	session := s.newSession(nil)
	s.joinRoom(session, "2xKz9")

	session.ApplySnapshot(&protocol.GameSnapshot{
		InPlay: board(cardFixture(1), cardFixture(2)),
	})
	s.Require().NoError(session.ToggleCard(0))

	session.LeaveRoom()
	s.Require().True(session.RoomCode().Empty())
	s.Require().Nil(session.Snapshot())
	s.Require().Empty(session.Selection())
}
