package main

import (
	"os"
	"time"

	"cotton/experiments"
	"cotton/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to a YAML config file")
	games := pflag.IntP("games", "n", 1, "number of automated games to play")
	pflag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	cfg, err := meta.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msgf("unknown log level %q", cfg.LogLevel)
	}
	zerolog.SetGlobalLevel(level)

	log.Info().Msgf("config %+v", cfg)
	records, err := experiments.RunSeries(cfg, *games)
	if err != nil {
		log.Fatal().Err(err).Msg("series failed")
	}
	for _, r := range records {
		log.Info().Str("game", r.ID).Msgf("%d turns, %d settlements, %d cities, %d roads in %s",
			r.Turns, r.Settlements, r.Cities, r.Roads, r.Duration)
	}
}
