package protocol

import (
	"encoding/json"

	"github.com/pkg/errors"
)

type CardColor int
type CardShape int
type CardShading int

const (
	ColorRed CardColor = iota
	ColorGreen
	ColorPurple
)

const (
	ShapeDiamond CardShape = iota
	ShapeOval
	ShapeSquiggle
)

const (
	ShadingSolid CardShading = iota
	ShadingStriped
	ShadingOpen
)

// Card is an immutable value. Two cards with equal fields are the same card.
type Card struct {
	Color   CardColor   `json:"color"`
	Shape   CardShape   `json:"shape"`
	Number  int         `json:"number"`
	Shading CardShading `json:"shading"`
}

// CardGrid is the in-play board. The server sends it either as a flat list
// of cards or as a list of rows, depending on version.
type CardGrid [][]Card

const boardRowLength = 3

func (g CardGrid) Cards() []Card {
	cards := make([]Card, 0, len(g)*boardRowLength)
	for _, row := range g {
		cards = append(cards, row...)
	}
	return cards
}

func (g CardGrid) Empty() bool {
	return len(g.Cards()) == 0
}

func (g *CardGrid) UnmarshalJSON(data []byte) error {
	var rows [][]Card
	if err := json.Unmarshal(data, &rows); err == nil {
		*g = rows
		return nil
	}

	var flat []Card
	if err := json.Unmarshal(data, &flat); err != nil {
		return errors.Wrap(err, "failed to unmarshal card grid")
	}

	*g = gridFromCards(flat)
	return nil
}

func gridFromCards(cards []Card) CardGrid {
	grid := make(CardGrid, 0, (len(cards)+boardRowLength-1)/boardRowLength)
	for len(cards) > 0 {
		n := boardRowLength
		if len(cards) < n {
			n = len(cards)
		}
		grid = append(grid, cards[:n])
		cards = cards[n:]
	}
	return grid
}
