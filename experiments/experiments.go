package experiments

import (
	"fmt"

	"cotton/engine"
	"cotton/experiments/metrics"
	"cotton/game"
	"cotton/meta"

	"github.com/rs/zerolog/log"
)

// RunSeries plays games automated games with random agents, seeding game i
// with cfg.Seed+i. Records are written under cfg.Records unless it is empty.
func RunSeries(cfg meta.Config, games int) ([]metrics.GameMetric, error) {
	gameRecords := []metrics.GameMetric{}
	turnRecords := []metrics.TurnRecord{}

	log.Info().Msgf("starting series of %d games...", games)

	for i := 0; i < games; i++ {
		gameCfg := cfg
		gameCfg.Seed = cfg.Seed + uint64(i)

		gameMetric, turnMetrics, err := runGame(gameCfg)
		if err != nil {
			return nil, fmt.Errorf("game %d of %d: %w", i+1, games, err)
		}
		gameRecords = append(gameRecords, gameMetric)
		for _, tm := range turnMetrics {
			turnRecords = append(turnRecords, metrics.TurnRecord{
				Game:       gameMetric.ID,
				TurnMetric: tm,
			})
		}

		log.Info().Msgf("completed game %d of %d after %d turns", i+1, games, gameMetric.Turns)
	}

	if cfg.Records == "" {
		return gameRecords, nil
	}

	writer, err := metrics.NewWriter(cfg.Records)
	if err != nil {
		return nil, err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, err
	}
	if err := writer.WriteTurnRecords(turnRecords); err != nil {
		return nil, err
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return gameRecords, nil
}

func runGame(cfg meta.Config) (metrics.GameMetric, []metrics.TurnMetric, error) {
	agents := make([]engine.Agent, game.PlayerCount)
	for i := range agents {
		agents[i] = engine.NewRandomAgent(cfg.Seed*uint64(game.PlayerCount) + uint64(i))
	}
	e, err := engine.LocalEngine(cfg, agents)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	return e.Run()
}
