package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func step(turn Turn, n int, terminal TerminalPolicy) Turn {
	for i := 0; i < n; i++ {
		turn = Next(turn, terminal)
	}
	return turn
}

func TestNextSetup(t *testing.T) {
	t.Run("settlement is followed by its road", func(t *testing.T) {
		require.Equal(t, Setup(false, 0, true), Next(InitialTurn(), ContinueToProduction))
		require.Equal(t, Setup(true, 2, true), Next(Setup(true, 2, false), ContinueToProduction))
	})

	t.Run("first round runs forward", func(t *testing.T) {
		require.Equal(t, Setup(false, 1, false), step(InitialTurn(), 2, ContinueToProduction))
		require.Equal(t, Setup(true, 3, false), step(InitialTurn(), 8, ContinueToProduction))
	})

	t.Run("second round runs backward", func(t *testing.T) {
		require.Equal(t, Setup(true, 2, false), step(Setup(true, 3, false), 2, ContinueToProduction))
		require.Equal(t, Setup(true, 0, false), step(Setup(true, 3, false), 6, ContinueToProduction))
	})

	t.Run("setup ends in production", func(t *testing.T) {
		require.Equal(t, Production(0), step(InitialTurn(), 16, ContinueToProduction))
	})

	t.Run("setup ends the game", func(t *testing.T) {
		require.Equal(t, Done(), step(InitialTurn(), 16, EndAfterSetup))
	})
}

func TestNextMainGame(t *testing.T) {
	tests := []struct {
		name string
		from Turn
		want Turn
	}{
		{"production to build", Production(2), Build(2)},
		{"build to next production", Build(1), Production(2)},
		{"last build wraps", Build(3), Production(0)},
		{"road build returns", BuildRoad(1), Build(1)},
		{"settlement build returns", BuildSettlement(3), Build(3)},
		{"done is absorbing", Done(), Done()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Next(tt.from, ContinueToProduction))
			require.Equal(t, tt.want, Next(tt.from, EndAfterSetup))
		})
	}
}

func TestStatus(t *testing.T) {
	players := Players{Red, Blue, White, Orange}

	require.Equal(t, "Setup round 1: Red: build a settlement", Status(InitialTurn(), players))
	require.Equal(t, "Setup round 2: White: build a road", Status(Setup(true, 2, true), players))
	require.Equal(t, "Blue: build and trade", Status(Build(1), players))
	require.Equal(t, "Orange: build a road", Status(BuildRoad(3), players))
	require.Equal(t, "Orange: build a settlement", Status(BuildSettlement(3), players))
	require.Equal(t, "Game over", Status(Done(), players))
}
