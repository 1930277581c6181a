package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/cZR2911/jilaoda-poker/internal/util"
)

// Config provides configuration for the poker server
type Config struct {
	loaded bool

	PGDSN          string `yaml:"pgDsn" envconfig:"pg_dsn"`
	MigrationsPath string `yaml:"migrationsPath" envconfig:"migrations_path"`

	JWT struct {
		PublicKey  string `yaml:"publicKey" envconfig:"public_key"`
		PrivateKey string `yaml:"privateKey" envconfig:"private_key"`
	}

	// AdminKey guards the password-reset endpoint
	AdminKey string `yaml:"adminKey" envconfig:"admin_key"`

	// StartingChips is the balance granted to a newly registered player
	StartingChips int `yaml:"startingChips" envconfig:"starting_chips"`

	SmallBlind int `yaml:"smallBlind" envconfig:"small_blind"`
	BigBlind   int `yaml:"bigBlind" envconfig:"big_blind"`

	// OpponentActDelayMS is the pause before the scripted opponent acts.
	// Purely presentational; zero is fine for tests.
	OpponentActDelayMS int `yaml:"opponentActDelayMs" envconfig:"opponent_act_delay_ms"`

	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	}
}

// DefaultConfig returns the configuration defaults
func DefaultConfig() Config {
	cfg := Config{
		PGDSN:              "postgres://postgres@localhost:5432/postgres?sslmode=disable",
		MigrationsPath:     "./sql",
		StartingChips:      1000,
		SmallBlind:         10,
		BigBlind:           20,
		OpponentActDelayMS: 800,
	}

	cfg.JWT.PublicKey = "jwt-public.pem"
	cfg.JWT.PrivateKey = "jwt-private.pem"

	return cfg
}

var config Config

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
// A missing config file is not an error; defaults plus environment overrides
// still apply.
func Load() error {
	config = DefaultConfig()

	configFile := util.Getenv("JLD_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	if err := envconfig.Process("jld", &config); err != nil {
		return err
	}

	config.loaded = true
	return nil
}
