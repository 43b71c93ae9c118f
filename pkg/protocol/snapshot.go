package protocol

type GameMode string

const (
	ModeClassic GameMode = "Classic"
	ModeBestOf3 GameMode = "BestOf3"
)

// GameSnapshot is the full authoritative game state pushed by the server.
// Every inbound snapshot replaces the previous one wholesale, there is no
// partial patching.
type GameSnapshot struct {
	InPlay     CardGrid    `json:"in_play"`
	Players    PlayersList `json:"players"`
	LastPlayer string      `json:"last_player"`
	LastSet    []Card      `json:"last_set,omitempty"`
	Remaining  int         `json:"remaining"`
	GameOver   bool        `json:"game_over,omitempty"`
	Mode       GameMode    `json:"mode,omitempty"`
	Events     []Event     `json:"events"`
}

// Winners returns the players with the highest score.
func (s *GameSnapshot) Winners() PlayersList {
	best := 0
	for _, player := range s.Players {
		if player.Score > best {
			best = player.Score
		}
	}
	winners := make(PlayersList, 0, 1)
	for _, player := range s.Players {
		if player.Score == best {
			winners = append(winners, player)
		}
	}
	return winners
}
