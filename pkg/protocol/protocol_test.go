package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCardGridFlat(t *testing.T) {
	payload := []byte(`[
		{"color":0,"shape":1,"number":2,"shading":0},
		{"color":1,"shape":0,"number":1,"shading":2},
		{"color":2,"shape":2,"number":3,"shading":1},
		{"color":0,"shape":0,"number":1,"shading":0}
	]`)

	var grid CardGrid
	err := json.Unmarshal(payload, &grid)
	require.NoError(t, err)

	cards := grid.Cards()
	require.Len(t, cards, 4)
	require.Equal(t, Card{Color: ColorRed, Shape: ShapeOval, Number: 2, Shading: ShadingSolid}, cards[0])
	require.Equal(t, Card{Color: ColorRed, Shape: ShapeDiamond, Number: 1, Shading: ShadingSolid}, cards[3])

	// Flat input is regrouped into rows of three
	require.Len(t, grid, 2)
	require.Len(t, grid[0], 3)
	require.Len(t, grid[1], 1)
}

func TestCardGridRows(t *testing.T) {
	payload := []byte(`[
		[{"color":0,"shape":0,"number":1,"shading":0}],
		[{"color":1,"shape":1,"number":2,"shading":1}]
	]`)

	var grid CardGrid
	err := json.Unmarshal(payload, &grid)
	require.NoError(t, err)
	require.Len(t, grid, 2)
	require.Len(t, grid.Cards(), 2)
}

func TestEventKey(t *testing.T) {
	e1 := Event{Type: EventPlayerJoined, Timestamp: Timestamp{Secs: 100, Nanos: 5}}
	e2 := Event{Type: EventPlayerJoined, Timestamp: Timestamp{Secs: 100, Nanos: 6}}
	e3 := Event{Type: EventPlayerFoundSet, Timestamp: Timestamp{Secs: 100, Nanos: 5}}

	require.NotEqual(t, e1.Key(), e2.Key())
	require.NotEqual(t, e1.Key(), e3.Key())
	require.Equal(t, e1.Key(), Event{Type: EventPlayerJoined, Timestamp: Timestamp{Secs: 100, Nanos: 5}}.Key())
}

func TestEventDataString(t *testing.T) {
	e := Event{Data: json.RawMessage(`"alice"`)}
	require.Equal(t, "alice", e.DataString())

	e = Event{Data: json.RawMessage(`{"player":"bob"}`)}
	require.Equal(t, `{"player":"bob"}`, e.DataString())
}

func TestParseRoomCode(t *testing.T) {
	code, err := ParseRoomCode("  2xKz9 ")
	require.NoError(t, err)
	require.Equal(t, "2xKz9", code.String())

	_, err = ParseRoomCode("")
	require.Error(t, err)

	// 0, O, I and l are not part of the base58 alphabet
	_, err = ParseRoomCode("r00m")
	require.Error(t, err)
}

func TestUnmarshalSnapshot(t *testing.T) {
	payload := []byte(`{
		"in_play": [{"color":0,"shape":0,"number":1,"shading":0}],
		"players": [{"id":"p1","name":"alice","score":3,"request":false}],
		"last_player": "alice",
		"remaining": 69,
		"mode": "Classic",
		"events": [{"event_type":"PlayerJoined","data":"alice","timestamp":{"secs_since_epoch":1,"nanos_since_epoch":2}}]
	}`)

	snapshot, err := UnmarshalSnapshot(payload)
	require.NoError(t, err)
	require.Len(t, snapshot.InPlay.Cards(), 1)
	require.Equal(t, 69, snapshot.Remaining)
	require.Equal(t, ModeClassic, snapshot.Mode)
	require.Len(t, snapshot.Events, 1)
	require.Equal(t, EventPlayerJoined, snapshot.Events[0].Type)

	_, err = UnmarshalSnapshot([]byte("{invalid"))
	require.Error(t, err)
}

func TestWinners(t *testing.T) {
	snapshot := GameSnapshot{
		Players: PlayersList{
			{ID: "p1", Name: "alice", Score: 3},
			{ID: "p2", Name: "bob", Score: 5},
			{ID: "p3", Name: "carol", Score: 5},
		},
	}
	winners := snapshot.Winners()
	require.Len(t, winners, 2)

	_, ok := winners.Get("p2")
	require.True(t, ok)
	_, ok = winners.Get("p1")
	require.False(t, ok)
}
