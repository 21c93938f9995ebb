package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func requireWellFormed(t *testing.T, b *Board) {
	t.Helper()
	require.Len(t, b.Tiles, TileCount)
	require.Len(t, b.Harbors, HarborCount)
	require.Len(t, b.Roads, RoadCount)
	require.Len(t, b.Buildings, BuildingCount)

	for i, terrain := range b.Tiles {
		require.Equal(t, terrain.RobberHome(), b.Robbers[i], "robber on tile %d", i)
		if terrain.RobberHome() {
			require.Equal(t, NoChit, b.Chits[i], "desert tile %d has a chit", i)
			continue
		}
		require.GreaterOrEqual(t, int(b.Chits[i]), 2)
		require.LessOrEqual(t, int(b.Chits[i]), 12)
		require.NotEqual(t, Chit(7), b.Chits[i])
	}
	for _, r := range b.Roads {
		require.True(t, r.Empty())
	}
	for _, building := range b.Buildings {
		require.True(t, building.Empty())
	}
}

func TestGenerateBoard(t *testing.T) {
	t.Run("sampling with replacement", func(t *testing.T) {
		for seed := uint64(0); seed < 50; seed++ {
			b, err := GenerateBoard(CreateMap(), WithReplacement, rand.New(rand.NewSource(seed)))
			require.NoError(t, err)
			requireWellFormed(t, b)
		}
	})

	t.Run("fixed multiset", func(t *testing.T) {
		for seed := uint64(0); seed < 50; seed++ {
			b, err := GenerateBoard(CreateMap(), FixedMultiset, rand.New(rand.NewSource(seed)))
			require.NoError(t, err)
			requireWellFormed(t, b)

			deserts, harbors := 0, 0
			chits := map[Chit]int{}
			for i, terrain := range b.Tiles {
				if terrain == Desert {
					deserts++
					continue
				}
				chits[b.Chits[i]]++
			}
			for _, h := range b.Harbors {
				if h != NoHarbor {
					harbors++
				}
			}
			require.Equal(t, 1, deserts)
			require.Equal(t, 9, harbors)
			for _, w := range ChitPool {
				require.Equal(t, w.Weight, chits[w.Value], "chit %d", w.Value)
			}
		}
	})

	t.Run("same seed same board", func(t *testing.T) {
		b1, err := GenerateBoard(CreateMap(), WithReplacement, rand.New(rand.NewSource(11)))
		require.NoError(t, err)
		b2, err := GenerateBoard(CreateMap(), WithReplacement, rand.New(rand.NewSource(11)))
		require.NoError(t, err)
		require.Equal(t, b1, b2)
	})
}

func TestSlotTags(t *testing.T) {
	require.Equal(t, "empty", Building{}.Tag())
	require.Equal(t, "settlement:Blue", Building{Kind: Settlement, Color: Blue}.Tag())
	require.Equal(t, "city:Red", Building{Kind: City, Color: Red}.Tag())
	require.Equal(t, "empty", Road{}.Tag())
	require.Equal(t, "road:White", Road{Color: White}.Tag())
	require.Equal(t, "harbor:any", AnyHarbor.Tag())
	require.Equal(t, "empty", NoHarbor.Tag())
}
