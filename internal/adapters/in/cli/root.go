// Package cli implements the CLI adapter for walreg.
// Commands delegate to the app layer.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// NewRootCmd creates the root command for the walreg CLI.
func NewRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "walreg",
		Short: "walreg - A content-addressable artifact registry",
		Long: `walreg stores artifacts by their sha256 digest and serves them through
the container registry /v2/ API.

Blob bytes are kept inline in the SQLite metadata store or delegated to the
Walrus storage network through its command line client.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(newServeCmd(&configPath))
	rootCmd.AddCommand(newConfigCmd(&configPath))
	rootCmd.AddCommand(newDigestCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}
