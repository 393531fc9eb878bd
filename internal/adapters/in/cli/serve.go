package cli

import (
	"github.com/spf13/cobra"

	"github.com/bnema/walrus-registry/internal/app"
)

// newServeCmd creates the serve command.
func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the registry server",
		Long:  `Start the registry HTTP server and block until SIGINT or SIGTERM.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunRegistry(cmd.Context(), *configPath)
		},
	}
}
