package config

import (
	"fmt"

	"hex/game"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the game's tunables. Both board size and search depth are
// fixed for the duration of a game.
type Config struct {
	LogLevel    string `yaml:"log-level" env:"HEX_LOG_LEVEL" env-default:"info"`
	BoardSize   int    `yaml:"board-size" env:"HEX_BOARD_SIZE" env-default:"5"`
	SearchDepth int    `yaml:"search-depth" env:"HEX_SEARCH_DEPTH" env-default:"4"`
	AIStarts    bool   `yaml:"ai-starts" env:"HEX_AI_STARTS" env-default:"false"`
}

// Load reads configuration from the given yaml file, or from the
// environment alone when path is empty.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cfg.BoardSize < 1 || cfg.BoardSize > game.MaxSize {
		return nil, fmt.Errorf("board size %d out of range [1, %d]", cfg.BoardSize, game.MaxSize)
	}
	if cfg.SearchDepth < 1 {
		return nil, fmt.Errorf("search depth %d must be positive", cfg.SearchDepth)
	}
	return cfg, nil
}
