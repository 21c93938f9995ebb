package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestHand(t *testing.T) {
	t.Run("debit within means", func(t *testing.T) {
		h := Hand{Brick: 2, Wool: 1, Grain: 1, Lumber: 1}
		require.NoError(t, h.Debit(SettlementCost))
		require.Equal(t, Hand{Brick: 1}, h)
	})

	t.Run("debit beyond means", func(t *testing.T) {
		h := Hand{Ore: 2, Grain: 5}
		require.ErrorIs(t, h.Debit(CityCost), ErrInsufficientResources)
		require.Equal(t, Hand{Ore: 2, Grain: 5}, h, "Should not apply a partial debit")
	})

	t.Run("credit and total", func(t *testing.T) {
		var h Hand
		h.Credit(Wool, 2)
		h.Credit(Ore, 1)
		require.Equal(t, 3, h.Total())
		require.Equal(t, "brick=0 wool=2 ore=1 grain=0 lumber=0", h.String())
	})

	t.Run("hands are per color", func(t *testing.T) {
		var hs Hands
		hs.Of(Orange).Credit(Lumber, 1)
		require.Equal(t, Hand{Lumber: 1}, hs[1])
		require.Equal(t, Hand{}, *hs.Of(Blue))
	})
}

func TestNewPlayers(t *testing.T) {
	p := NewPlayers(rand.New(rand.NewSource(5)))

	require.ElementsMatch(t, Colors[:], p[:])
}

func TestTerrainResource(t *testing.T) {
	tests := []struct {
		terrain Terrain
		want    Resource
		ok      bool
	}{
		{Hills, Brick, true},
		{Pasture, Wool, true},
		{Mountains, Ore, true},
		{Fields, Grain, true},
		{Forest, Lumber, true},
		{Desert, 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.terrain.Resource()
		require.Equal(t, tt.ok, ok, tt.terrain.String())
		require.Equal(t, tt.want, got, tt.terrain.String())
		require.Equal(t, !tt.ok, tt.terrain.RobberHome())
	}
}
