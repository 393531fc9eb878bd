package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/walrus-registry/pkg/digest"
)

// newDigestCmd prints the content address a file would be stored under.
func newDigestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest <file|->",
		Short: "Compute the sha256 digest of a file",
		Long:  `Compute the digest the registry assigns to a blob. Use "-" to read from stdin.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader
			if args[0] == "-" {
				r = cmd.InOrStdin()
			} else {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			d, err := digest.FromReader(r)
			if err != nil {
				return fmt.Errorf("failed to digest %s: %w", args[0], err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), d)
			return err
		},
	}
}
