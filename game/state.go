package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingSettlement
	pendingCity
	pendingRoad
)

// pending is the slot an accepted out-of-setup build will write on confirm.
type pending struct {
	kind  pendingKind
	index int
}

// GameState is the whole mutable game, threaded through every operation.
// Only the Map behind the Board is shared between copies.
type GameState struct {
	Board    *Board
	Players  Players
	Turn     Turn
	Hands    Hands
	Rules    Rules
	LastRoll int // dice total of the latest production, 0 before the first
	pending  pending
	rng      *rand.Rand
}

// NewGameState generates a board, shuffles the turn order and starts the
// first setup round. A sampling configuration error is fatal.
func NewGameState(rules Rules, rng *rand.Rand) (*GameState, error) {
	board, err := GenerateBoard(CreateMap(), rules.Sampling, rng)
	if err != nil {
		return nil, fmt.Errorf("generate board: %w", err)
	}
	return &GameState{
		Board:   board,
		Players: NewPlayers(rng),
		Turn:    InitialTurn(),
		Rules:   rules,
		rng:     rng,
	}, nil
}

// Copy returns a read-only snapshot that shares nothing mutable with gs.
// It has no dice, so every mutator returns ErrSnapshot on it.
func (gs *GameState) Copy() *GameState {
	board := *gs.Board
	cp := *gs
	cp.Board = &board
	cp.rng = nil
	return &cp
}

func (gs *GameState) mutable() error {
	if gs.rng == nil {
		return ErrSnapshot
	}
	return nil
}

// CurrentColor is the color of the acting player.
func (gs *GameState) CurrentColor() Color {
	return gs.Players[gs.Turn.Player]
}

// Status is the human readable line for the current turn.
func (gs *GameState) Status() string {
	return Status(gs.Turn, gs.Players)
}

// AdvanceTurn ends the acting player's build phase.
func (gs *GameState) AdvanceTurn() error {
	if err := gs.mutable(); err != nil {
		return err
	}
	if gs.Turn.Phase != BuildPhase {
		return ErrInvalidTurnAction
	}
	gs.advance()
	return nil
}

// advance applies Next and runs production when a production phase starts.
// Production needs no input, so it immediately hands over to the build phase.
func (gs *GameState) advance() {
	gs.Turn = Next(gs.Turn, gs.Rules.Terminal)
	if gs.Turn.Phase == ProductionPhase {
		gs.LastRoll = gs.rollDice()
		gs.Produce(gs.LastRoll)
		gs.Turn = Next(gs.Turn, gs.Rules.Terminal)
	}
}
