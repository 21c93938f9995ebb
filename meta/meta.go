// Package meta holds the run configuration: defaults, an optional YAML file
// and COTTON_* environment overrides.
package meta

import (
	"errors"
	"fmt"
	"os"

	"cotton/game"

	"github.com/joeshaw/envdecode"
	"gopkg.in/yaml.v3"
)

// MAX_TURNS caps the number of build turns, one per player per round, an
// automated game may run.
const MAX_TURNS = 300

type Config struct {
	Seed     uint64 `yaml:"seed" env:"COTTON_SEED"`
	Terminal string `yaml:"terminal" env:"COTTON_TERMINAL"` // "production" or "done"
	Sampling string `yaml:"sampling" env:"COTTON_SAMPLING"` // "replacement" or "permutation"
	MaxTurns int    `yaml:"max_turns" env:"COTTON_MAX_TURNS"`
	LogLevel string `yaml:"log_level" env:"COTTON_LOG_LEVEL"`
	Records  string `yaml:"records" env:"COTTON_RECORDS"` // directory for CSV game records, empty to skip
}

func Default() Config {
	return Config{
		Seed:     1,
		Terminal: game.ContinueToProduction.String(),
		Sampling: game.WithReplacement.String(),
		MaxTurns: MAX_TURNS,
		LogLevel: "info",
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("failed to decode environment: %w", err)
	}
	if _, err := cfg.Rules(); err != nil {
		return Config{}, err
	}
	if cfg.MaxTurns <= 0 {
		return Config{}, fmt.Errorf("max_turns must be positive, got %d", cfg.MaxTurns)
	}
	return cfg, nil
}

// Rules converts the policy names into game rules.
func (c Config) Rules() (game.Rules, error) {
	rules := game.NewStandardRules()
	switch c.Terminal {
	case game.ContinueToProduction.String():
		rules.Terminal = game.ContinueToProduction
	case game.EndAfterSetup.String():
		rules.Terminal = game.EndAfterSetup
	default:
		return game.Rules{}, fmt.Errorf("unknown terminal policy %q", c.Terminal)
	}
	switch c.Sampling {
	case game.WithReplacement.String():
		rules.Sampling = game.WithReplacement
	case game.FixedMultiset.String():
		rules.Sampling = game.FixedMultiset
	default:
		return game.Rules{}, fmt.Errorf("unknown sampling policy %q", c.Sampling)
	}
	return rules, nil
}
