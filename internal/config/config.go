package config

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"   // Local database file (default)
	DriverPostgres Driver = "postgres" // Remote server, requires DATABASE_DSN
)

type (
	Config struct {
		Database
		Log
		Shell
	}

	Database struct {
		Driver Driver
		Path   string // sqlite file
		DSN    string // postgres connection string
		Seed   bool   // Seed the demo catalog into an empty store
	}
	Log struct {
		Level  string
		Format string // "console" or "json"
	}
	Shell struct {
		Prompt string
	}
)

// NewConfig reads configuration from the environment and an optional .env file.
func NewConfig() *Config {
	return Load(viper.New())
}

// Load builds a Config from v. Values already bound to v (e.g. command line
// flags) take precedence over the environment.
func Load(v *viper.Viper) *Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded environment from .env")
	}

	v.AutomaticEnv()
	v.SetDefault("database_driver", string(DriverSQLite))
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", "")
	v.SetDefault("database_seed", false)
	v.SetDefault("log_level", "warn")
	v.SetDefault("log_format", "console")
	v.SetDefault("bookshelf_prompt", DefaultPrompt)

	return &Config{
		Database: Database{
			Driver: Driver(v.GetString("DATABASE_DRIVER")),
			Path:   v.GetString("DATABASE_PATH"),
			DSN:    v.GetString("DATABASE_DSN"),
			Seed:   v.GetBool("DATABASE_SEED"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Shell: Shell{
			Prompt: v.GetString("BOOKSHELF_PROMPT"),
		},
	}
}
