package gamemaster

import (
	"errors"
	"fmt"

	"cotton/game"

	"github.com/rs/zerolog/log"
	uuid "github.com/satori/go.uuid"
	"golang.org/x/exp/rand"
)

type update struct {
	intent Intent
	state  *game.GameState
}

type localEngine struct {
	id       string
	rules    game.Rules
	seed     uint64
	state    *game.GameState
	mode     Mode
	legal    Legality
	updateCh chan update
	gameOver bool
}

func NewLocalEngine(rules game.Rules, seed uint64) *localEngine {
	return &localEngine{
		id:    uuid.NewV4().String(),
		rules: rules,
		seed:  seed,
	}
}

func (e *localEngine) ID() string {
	return e.id
}

// Init generates the board and returns a snapshot of the first turn plus a
// getter for the latest accepted intent and the state it produced.
func (e *localEngine) Init() (*game.GameState, UpdateGetter, error) {
	gs, err := game.NewGameState(e.rules, rand.New(rand.NewSource(e.seed)))
	if err != nil {
		return nil, nil, fmt.Errorf("init game %s: %w", e.id, err)
	}
	e.state = gs
	e.mode = NoMode
	e.gameOver = false
	e.updateCh = make(chan update, 1)
	e.refresh()

	log.Info().Str("game", e.id).Msgf("players %v, %s", gs.Players, gs.Status())

	return gs.Copy(), func() (Intent, *game.GameState) {
		select {
		case u, ok := <-e.updateCh:
			if !ok { // Game over
				return Intent{}, nil
			}
			return u.intent, u.state
		default:
			return Intent{}, nil
		}
	}, nil
}

// Play runs one intent to completion. Intents the current phase does not
// accept are ignored; rule violations are returned with nothing changed.
func (e *localEngine) Play(in Intent) error {
	if e.gameOver {
		return ErrGameOver
	}
	if e.state == nil {
		return fmt.Errorf("game %s is not initialised", e.id)
	}

	before := e.state.Turn
	err := e.apply(in)
	switch {
	case errors.Is(err, game.ErrInvalidTurnAction):
		log.Debug().Str("game", e.id).Msgf("ignoring %s during %s", in, before)
		return nil
	case err != nil:
		log.Debug().Str("game", e.id).Err(err).Msgf("rejected %s during %s", in, before)
		return err
	}

	if in.Kind == SelectBuilding || in.Kind == SelectRoad {
		e.mode = NoMode
	}
	if e.state.Turn != before {
		e.mode = NoMode
		if rolled(before, e.state.Turn) {
			log.Debug().Str("game", e.id).Msgf("%s rolled %d", e.state.CurrentColor(), e.state.LastRoll)
		}
		log.Debug().Str("game", e.id).Msg(e.state.Status())
	}
	e.refresh()
	e.publish(in)

	if e.state.Turn.Phase == game.DonePhase {
		e.gameOver = true
		close(e.updateCh)
		log.Info().Str("game", e.id).Msg("setup complete, game over")
	}
	return nil
}

func (e *localEngine) apply(in Intent) error {
	gs := e.state
	building := gs.Turn.Phase == game.BuildPhase

	switch in.Kind {
	case EnterSettlementMode:
		return e.enter(SettlementMode, game.SettlementCost)
	case EnterCityMode:
		return e.enter(CityMode, game.CityCost)
	case EnterRoadMode:
		return e.enter(RoadMode, game.RoadCost)
	case LeaveMode:
		if !building || e.mode == NoMode {
			return game.ErrInvalidTurnAction
		}
		e.mode = NoMode
		return nil
	case AdvanceTurn:
		return gs.AdvanceTurn()
	case SelectBuilding:
		if in.Index < 0 || in.Index >= game.BuildingCount || !e.legal.Buildings[in.Index] {
			return e.rejectSelection(false)
		}
		if e.mode == CityMode {
			if err := gs.AttemptCity(in.Index); err != nil {
				return err
			}
			return gs.ConfirmCity(in.Index)
		}
		if err := gs.AttemptBuilding(in.Index); err != nil {
			return err
		}
		if gs.Turn.Phase == game.BuildSettlementPhase {
			return gs.ConfirmBuilding(in.Index)
		}
		return nil
	case SelectRoad:
		if in.Index < 0 || in.Index >= game.RoadCount || !e.legal.Roads[in.Index] {
			return e.rejectSelection(true)
		}
		if err := gs.AttemptRoad(in.Index); err != nil {
			return err
		}
		if gs.Turn.Phase == game.BuildRoadPhase {
			return gs.ConfirmRoad(in.Index)
		}
		return nil
	}
	return game.ErrInvalidTurnAction
}

// rejectSelection classifies a click on a slot that was not offered. Only a
// click on the kind of slot the turn is waiting for is an illegal placement.
func (e *localEngine) rejectSelection(road bool) error {
	switch e.state.Turn.Phase {
	case game.SetupPhase:
		if e.state.Turn.Road == road {
			return game.ErrIllegalPlacement
		}
	case game.BuildPhase:
		if e.mode != NoMode && (e.mode == RoadMode) == road {
			return game.ErrIllegalPlacement
		}
	}
	return game.ErrInvalidTurnAction
}

func (e *localEngine) enter(mode Mode, cost game.Hand) error {
	gs := e.state
	if gs.Turn.Phase != game.BuildPhase {
		return game.ErrInvalidTurnAction
	}
	if !gs.Hands.Of(gs.CurrentColor()).Covers(cost) {
		return game.ErrInsufficientResources
	}
	e.mode = mode
	return nil
}

// refresh recomputes which slots are interactable.
func (e *localEngine) refresh() {
	gs := e.state
	legal := Legality{Mode: e.mode}
	switch gs.Turn.Phase {
	case game.SetupPhase:
		if gs.Turn.Road {
			legal.Roads = gs.LegalRoads()
		} else {
			legal.Buildings = gs.LegalBuildings()
		}
	case game.BuildPhase:
		switch e.mode {
		case SettlementMode:
			legal.Buildings = gs.LegalBuildings()
		case CityMode:
			legal.Buildings = gs.LegalCities()
		case RoadMode:
			legal.Roads = gs.LegalRoads()
		}
	}
	e.legal = legal
}

// publish replaces any unread update with the newest one.
func (e *localEngine) publish(in Intent) {
	select {
	case <-e.updateCh:
	default:
	}
	e.updateCh <- update{intent: in, state: e.state.Copy()}
}

// State returns a snapshot of the current game.
func (e *localEngine) State() *game.GameState {
	return e.state.Copy()
}

func (e *localEngine) Legal() Legality {
	return e.legal
}

func (e *localEngine) Mode() Mode {
	return e.mode
}

func (e *localEngine) GameOver() bool {
	return e.gameOver
}

// rolled reports whether moving from before to after ran a production.
func rolled(before, after game.Turn) bool {
	if after.Phase != game.BuildPhase {
		return false
	}
	return before.Phase == game.BuildPhase || before.Phase == game.SetupPhase
}
