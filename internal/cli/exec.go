package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mrlokans/bookshelf/internal/entrypoint"
)

func newExecCommand(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <command> [args...]",
		Short: "Run a single shell command and exit",
		Example: `  bookshelf exec aInsert James,Joyce
  bookshelf --seed exec bookByTitle Ulysses`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(v)
			return entrypoint.Exec(cmd.Context(), cfg, args, cmd.OutOrStdout())
		},
	}
	// everything after the shell command name belongs to that command
	cmd.Flags().SetInterspersed(false)

	return cmd
}
