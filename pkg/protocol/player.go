package protocol

type PlayerID string

// Player is a read-only projection owned by the server.
// Request is set when the player asked for more cards to be dealt.
type Player struct {
	ID      PlayerID `json:"id"`
	Name    string   `json:"name"`
	Score   int      `json:"score"`
	Request bool     `json:"request"`
}

type PlayersList []Player

func (l PlayersList) Get(id PlayerID) (Player, bool) {
	for _, player := range l {
		if player.ID == id {
			return player, true
		}
	}
	return Player{}, false
}
