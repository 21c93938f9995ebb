package gamemaster

import (
	"errors"
	"fmt"

	"cotton/game"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

// IntentKind is what the presentation layer asks for.
type IntentKind int

const (
	SelectBuilding IntentKind = iota // click on a vertex marked legal
	SelectRoad                       // click on an edge marked legal
	EnterSettlementMode
	EnterCityMode
	EnterRoadMode
	LeaveMode
	AdvanceTurn
)

var intentNames = map[IntentKind]string{
	SelectBuilding:      "select-building",
	SelectRoad:          "select-road",
	EnterSettlementMode: "enter-settlement-mode",
	EnterCityMode:       "enter-city-mode",
	EnterRoadMode:       "enter-road-mode",
	LeaveMode:           "leave-mode",
	AdvanceTurn:         "advance-turn",
}

func (k IntentKind) String() string {
	if s, ok := intentNames[k]; ok {
		return s
	}
	return "unknown"
}

// Intent is one validated request. Index is only read by selections.
type Intent struct {
	Kind  IntentKind
	Index int
}

func (in Intent) String() string {
	if in.Kind == SelectBuilding || in.Kind == SelectRoad {
		return fmt.Sprintf("%s(%d)", in.Kind, in.Index)
	}
	return in.Kind.String()
}

// Mode is the build mode chosen during a build phase.
type Mode int

const (
	NoMode Mode = iota
	SettlementMode
	CityMode
	RoadMode
)

// Legality is the set of slots the presentation layer may offer, recomputed
// after every accepted intent.
type Legality struct {
	Mode      Mode
	Buildings [game.BuildingCount]bool
	Roads     [game.RoadCount]bool
}

type UpdateGetter func() (Intent, *game.GameState)

// Engine processes intents one at a time and exposes read-only views.
type Engine interface {
	Init() (*game.GameState, UpdateGetter, error)
	Play(Intent) error
	State() *game.GameState
	Legal() Legality
}
