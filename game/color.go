package game

import "golang.org/x/exp/rand"

// Color identifies a player and the pieces they own. NoColor marks an
// unowned slot.
type Color int

const (
	NoColor Color = iota
	Blue
	Orange
	Red
	White
)

const PlayerCount = 4

var Colors = [PlayerCount]Color{Blue, Orange, Red, White}

func (c Color) String() string {
	switch c {
	case Blue:
		return "Blue"
	case Orange:
		return "Orange"
	case Red:
		return "Red"
	case White:
		return "White"
	}
	return "None"
}

// Players is the turn order, fixed once at game start.
type Players [PlayerCount]Color

// NewPlayers shuffles the four colors into a turn order.
func NewPlayers(rng *rand.Rand) Players {
	p := Players(Colors)
	rng.Shuffle(len(p), func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	return p
}
