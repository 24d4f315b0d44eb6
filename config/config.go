package config

import (
	"fmt"
	"strings"

	"smarthorses/game"
	"smarthorses/meta"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Mode           string  `mapstructure:"mode"`
	Difficulty     int     `mapstructure:"difficulty"`
	Human          string  `mapstructure:"human"`
	Seed           uint64  `mapstructure:"seed"`
	LogLevel       string  `mapstructure:"log_level"`
	MaxTurns       int     `mapstructure:"max_turns"`
	Goroutines     int     `mapstructure:"goroutines"`
	MobilityWeight float64 `mapstructure:"mobility_weight"`
	NoMovePenalty  int     `mapstructure:"no_move_penalty"`
	Games          int     `mapstructure:"games"`
	OutputDir      string  `mapstructure:"output_dir"`
}

// Flags declares a flag for every configuration key.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("smarthorses", pflag.ContinueOnError)
	fs.String("config", "", "Path to a config file (yaml, json, toml or env)")
	fs.String("mode", "play", "play, selfplay or experiment")
	fs.Int("difficulty", meta.DIFFICULTY, "Minimax depth of the AI")
	fs.String("human", "black", "Horse controlled by the human in play mode")
	fs.Uint64("seed", 0, "Seed for the board setup, 0 picks one from the clock")
	fs.String("log_level", "info", "zerolog level")
	fs.Int("max_turns", meta.MAX_TURNS, "Turn limit of a single game")
	fs.Int("goroutines", meta.GO_ROUTINES, "Goroutines at the root of the search")
	fs.Float64("mobility_weight", game.DefaultMobilityWeight, "Weight of the mobility differential")
	fs.Int("no_move_penalty", game.DefaultNoMovePenalty, "Points charged once to a stalled horse")
	fs.Int("games", meta.GAMES, "Games per experiment match-up")
	fs.String("output_dir", meta.OUTPUT_DIR, "Directory for experiment records")
	return fs
}

// Load resolves the configuration from, in increasing priority, defaults, the
// config file named by --config, SMARTHORSES_* environment variables and flags
// set on the command line.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(meta.ENV_PREFIX)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Mode {
	case "play", "selfplay", "experiment":
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Difficulty < 1 {
		return fmt.Errorf("difficulty must be positive, got %d", c.Difficulty)
	}
	if _, err := c.HumanColor(); err != nil {
		return err
	}
	if c.Goroutines < 1 {
		return fmt.Errorf("goroutines must be positive, got %d", c.Goroutines)
	}
	return nil
}

func (c *Config) HumanColor() (game.Color, error) {
	switch strings.ToLower(c.Human) {
	case "white":
		return game.White, nil
	case "black":
		return game.Black, nil
	default:
		return game.Black, fmt.Errorf("human must be white or black, got %q", c.Human)
	}
}

func (c *Config) Rules() *game.Rules {
	rules := game.NewStandardRules()
	rules.MobilityWeight = c.MobilityWeight
	rules.NoMovePenalty = c.NoMovePenalty
	return rules
}

// GameOptions returns the setup options for new games.
func (c *Config) GameOptions() []game.Option {
	options := []game.Option{game.WithRules(c.Rules())}
	if c.Seed != 0 {
		options = append(options, game.WithSeed(c.Seed))
	}
	return options
}
