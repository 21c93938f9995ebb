package engine

import (
	"testing"

	"cotton/game"
	"cotton/gamemaster"
	"cotton/meta"

	"github.com/stretchr/testify/require"
)

func randomAgents() []Agent {
	agents := make([]Agent, game.PlayerCount)
	for i := range agents {
		agents[i] = NewRandomAgent(uint64(i + 1))
	}
	return agents
}

func TestRunStopsAfterSetup(t *testing.T) {
	cfg := meta.Default()
	cfg.Terminal = game.EndAfterSetup.String()
	e, err := LocalEngine(cfg, randomAgents())
	require.NoError(t, err)

	result, turns, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, "Done", result.FinalPhase)
	require.Equal(t, 2*game.PlayerCount, result.Settlements)
	require.Equal(t, 2*game.PlayerCount, result.Roads)
	require.Equal(t, 4*game.PlayerCount, result.Intents)
	require.Zero(t, result.Rejected)
	require.Zero(t, result.Turns)
	require.Empty(t, turns)
}

func TestRunHonoursTurnCap(t *testing.T) {
	cfg := meta.Default()
	cfg.MaxTurns = 12
	e, err := LocalEngine(cfg, randomAgents())
	require.NoError(t, err)

	result, turns, err := e.Run()
	require.NoError(t, err)
	require.Equal(t, "Build", result.FinalPhase)
	require.Equal(t, 12, result.Turns)
	require.Len(t, turns, 12)
	require.GreaterOrEqual(t, result.Settlements+result.Cities, 2*game.PlayerCount)
	for i, turn := range turns {
		require.Equal(t, i+1, turn.Step)
		require.GreaterOrEqual(t, turn.Roll, 2)
		require.LessOrEqual(t, turn.Roll, 12)
	}
}

func TestLocalEngineRejectsBadConfig(t *testing.T) {
	cfg := meta.Default()
	cfg.Sampling = "bag"
	_, err := LocalEngine(cfg, randomAgents())
	require.Error(t, err)
	require.Panics(t, func() { _, _ = LocalEngine(meta.Default(), randomAgents()[:2]) })
}

func TestRandomAgentPicksOfferedSlots(t *testing.T) {
	gs := setupState(t)
	var legal gamemaster.Legality
	legal.Buildings[5] = true

	a := NewRandomAgent(1)
	require.Equal(t, gamemaster.Intent{Kind: gamemaster.SelectBuilding, Index: 5}, a.Choose(gs, legal))

	gs.Turn = game.Setup(false, 0, true)
	require.Equal(t, gamemaster.Intent{Kind: gamemaster.LeaveMode}, a.Choose(gs, legal))

	legal.Roads[3] = true
	require.Equal(t, gamemaster.Intent{Kind: gamemaster.SelectRoad, Index: 3}, a.Choose(gs, legal))
}

func TestRandomAgentAdvancesWhenBroke(t *testing.T) {
	gs := setupState(t)
	gs.Turn = game.Build(0)

	a := NewRandomAgent(1)
	for i := 0; i < 20; i++ {
		require.Equal(t, gamemaster.AdvanceTurn, a.Choose(gs, gamemaster.Legality{}).Kind)
	}
}

func setupState(t *testing.T) *game.GameState {
	t.Helper()
	rules, err := meta.Default().Rules()
	require.NoError(t, err)
	e := gamemaster.NewLocalEngine(rules, 1)
	gs, _, err := e.Init()
	require.NoError(t, err)
	return gs
}
