package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"blackjack/internal/util"
)

const defaultConfigFile = "blackjack.yaml"

// Config provides configuration for the game
type Config struct {
	loaded     bool
	Seed       int64  `yaml:"seed" envconfig:"seed"`
	Title      string `yaml:"title" envconfig:"title"`
	PlayerName string `yaml:"playerName" envconfig:"player_name"`
	DealerName string `yaml:"dealerName" envconfig:"dealer_name"`
	Color      bool   `yaml:"color" envconfig:"color"`
	Log        struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
		File   string `yaml:"file" envconfig:"file"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		Title:      "BLACKJACK v0.1.0",
		PlayerName: "You",
		DealerName: "Dealer",
		Color:      true,
	}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The file named by BLACKJACK_CONFIG_FILE is read first, then environment variables prefixed with BLACKJACK_ are applied.
// If BLACKJACK_CONFIG_FILE is not set and blackjack.yaml does not exist, the defaults are used.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("BLACKJACK_CONFIG_FILE", "")
	explicit := configFile != ""
	if !explicit {
		configFile = defaultConfigFile
	}

	if err := decodeFile(configFile, &cfg); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	if err := envconfig.Process("blackjack", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

func decodeFile(filename string, cfg *Config) error {
	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("could not decode %s: %w", filename, err)
	}

	return nil
}
