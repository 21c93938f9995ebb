package engine

import (
	"errors"
	"fmt"

	"cotton/experiments/metrics"
	"cotton/game"
	"cotton/gamemaster"
	"cotton/meta"

	"github.com/rs/zerolog/log"
)

// Intents a single turn may take before the runner gives up on the agent.
const maxIntentsPerTurn = 64

type Engine struct {
	Config    meta.Config
	Agents    []Agent
	Collector metrics.Collector
	gm        gamemaster.Engine
	id        string
}

// LocalEngine wires one agent per seat in turn order to a fresh game master.
func LocalEngine(cfg meta.Config, agents []Agent) (*Engine, error) {
	if len(agents) != game.PlayerCount {
		panic(fmt.Sprintf("need %d agents, got %d", game.PlayerCount, len(agents)))
	}
	rules, err := cfg.Rules()
	if err != nil {
		return nil, err
	}
	gm := gamemaster.NewLocalEngine(rules, cfg.Seed)
	return &Engine{
		Config:    cfg,
		Agents:    agents,
		Collector: metrics.NewCollector(),
		gm:        gm,
		id:        gm.ID(),
	}, nil
}

// Run drives the game until it is over or MaxTurns build turns have passed.
func (e *Engine) Run() (metrics.GameMetric, []metrics.TurnMetric, error) {
	state, _, err := e.gm.Init()
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	e.Collector.Start(e.id, e.Config.Seed, state.CurrentColor())
	log.Info().Str("game", e.id).Msgf("player %s is starting", state.CurrentColor())

	var turnMetrics []metrics.TurnMetric
	current := metrics.TurnMetric{}
	turns, intents := 0, 0
	for turns < e.Config.MaxTurns {
		gs := e.gm.State()
		if gs.Turn.Phase == game.DonePhase {
			break
		}
		if gs.Turn.Phase == game.BuildPhase && current.Player == "" {
			current = metrics.TurnMetric{Step: turns + 1, Player: gs.CurrentColor().String(), Roll: gs.LastRoll}
		}

		in := e.Agents[gs.Turn.Player].Choose(gs, e.gm.Legal())
		e.Collector.AddIntent()
		intents++
		err := e.gm.Play(in)
		switch {
		case errors.Is(err, gamemaster.ErrGameOver):
			return metrics.GameMetric{}, nil, err
		case err != nil:
			e.Collector.AddRejection()
			log.Debug().Str("game", e.id).Err(err).Msgf("%s rejected", in)
		}

		after := e.gm.State()
		if intents > maxIntentsPerTurn {
			return metrics.GameMetric{}, nil, fmt.Errorf("game %s: no progress after %d intents in %s", e.id, intents, after.Turn)
		}
		if after.Turn != gs.Turn || placed(gs, after) {
			intents = 0
		}
		if gs.Turn.Phase == game.BuildPhase && placed(gs, after) {
			current.Built++
		}
		if in.Kind == gamemaster.AdvanceTurn && gs.Turn.Phase == game.BuildPhase {
			current.HandSize = gs.Hands.Of(gs.CurrentColor()).Total()
			turnMetrics = append(turnMetrics, current)
			current = metrics.TurnMetric{}
			turns++
		}
	}

	final := e.gm.State()
	result := e.Collector.Complete(final, turns)
	log.Info().Str("game", e.id).Msgf("stopped after %d turns in %s: %d settlements, %d cities, %d roads",
		turns, final.Turn.Phase, result.Settlements, result.Cities, result.Roads)
	return result, turnMetrics, nil
}

// placed reports whether a piece was written between two snapshots.
func placed(before, after *game.GameState) bool {
	return before.Board.Roads != after.Board.Roads || before.Board.Buildings != after.Board.Buildings
}
