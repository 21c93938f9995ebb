package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"cotton/meta"

	"github.com/stretchr/testify/require"
)

func TestRunSeriesWritesRecords(t *testing.T) {
	cfg := meta.Default()
	cfg.MaxTurns = 8
	cfg.Records = t.TempDir()

	records, err := RunSeries(cfg, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i, r := range records {
		require.Equal(t, cfg.Seed+uint64(i), r.Seed)
		require.Equal(t, 8, r.Turns)
	}
	require.NotEqual(t, records[0].ID, records[1].ID)

	dirs, err := os.ReadDir(cfg.Records)
	require.NoError(t, err)
	require.Len(t, dirs, 1)
	for _, name := range []string{"game_records.csv", "turn_records.csv"} {
		_, err := os.Stat(filepath.Join(cfg.Records, dirs[0].Name(), name))
		require.NoError(t, err)
	}
}

func TestRunSeriesWithoutRecords(t *testing.T) {
	cfg := meta.Default()
	cfg.Terminal = "done"

	records, err := RunSeries(cfg, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "Done", records[1].FinalPhase)
}
