// Package version prints build metadata.
package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbnu/subscribe-service/internal/shared/version"
)

func NewCommand() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Fprintln(cmd.OutOrStdout(), version.Current())
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
			if !version.IsRelease(version.Version) {
				fmt.Fprintln(cmd.OutOrStdout(), "development build")
			}
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version")
	return cmd
}
