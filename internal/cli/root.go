// Package cli defines the process command line: global flags, the interactive
// shell started by default and the exec command for single invocations.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/entrypoint"
	"github.com/mrlokans/bookshelf/internal/logging"
)

// flagKeys maps command line flags to the configuration keys they override.
var flagKeys = map[string]string{
	"driver":    "DATABASE_DRIVER",
	"db":        "DATABASE_PATH",
	"dsn":       "DATABASE_DSN",
	"seed":      "DATABASE_SEED",
	"log-level": "LOG_LEVEL",
}

// NewRootCommand creates the bookshelf command. Without a subcommand it runs
// the interactive shell.
func NewRootCommand(version string) *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "bookshelf",
		Short:         "Interactive catalog of authors, genres, books and comments",
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(v)
			return entrypoint.Run(cmd.Context(), cfg, version, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.String("driver", string(config.DriverSQLite), "database driver (sqlite or postgres)")
	flags.String("db", config.DefaultDatabasePath, "path to the sqlite database file")
	flags.String("dsn", "", "postgres connection string")
	flags.Bool("seed", false, "insert the demo catalog into an empty database")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")

	for flag, key := range flagKeys {
		// only fails for an unknown flag
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	root.AddCommand(newExecCommand(v))

	return root
}

func loadConfig(v *viper.Viper) *config.Config {
	cfg := config.Load(v)
	logging.Init(cfg.Log)
	return cfg
}
