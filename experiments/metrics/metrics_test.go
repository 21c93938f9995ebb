package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"cotton/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestCollectorCountsPieces(t *testing.T) {
	gs, err := game.NewGameState(game.NewStandardRules(), rand.New(rand.NewSource(3)))
	require.NoError(t, err)
	gs.Board.Buildings[0] = game.Building{Kind: game.Settlement, Color: game.Blue}
	gs.Board.Buildings[9] = game.Building{Kind: game.City, Color: game.Red}
	gs.Board.Roads[0] = game.Road{Color: game.Blue}

	c := NewCollector()
	c.Start("g1", 3, game.Blue)
	c.AddIntent()
	c.AddIntent()
	c.AddRejection()
	gm := c.Complete(gs, 4)

	require.Equal(t, "g1", gm.ID)
	require.Equal(t, "Blue", gm.StartingColor)
	require.Equal(t, "Setup", gm.FinalPhase)
	require.Equal(t, 4, gm.Turns)
	require.Equal(t, 2, gm.Intents)
	require.Equal(t, 1, gm.Rejected)
	require.Equal(t, 1, gm.Settlements)
	require.Equal(t, 1, gm.Cities)
	require.Equal(t, 1, gm.Roads)
}

func TestWriterWritesCSV(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.WriteGameRecords([]GameMetric{{ID: "g1", Seed: 9, Turns: 12}}))
	require.NoError(t, w.WriteTurnRecords([]TurnRecord{
		{Game: "g1", TurnMetric: TurnMetric{Step: 1, Player: "Blue", Roll: 8}},
		{Game: "g1", TurnMetric: TurnMetric{Step: 2, Player: "Red", Roll: 5, Built: 1}},
	}))

	rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, "id", rows[0][0])
	require.Equal(t, "g1", rows[1][0])
	require.Equal(t, "9", rows[1][1])
	require.Equal(t, "12", rows[1][7])

	rows = readCSV(t, filepath.Join(w.Dir(), "turn_records.csv"))
	require.Equal(t, [][]string{
		{"game", "step", "player", "roll", "built", "hand_size"},
		{"g1", "1", "Blue", "8", "0", "0"},
		{"g1", "2", "Red", "5", "1", "0"},
	}, rows)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
