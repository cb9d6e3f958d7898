// Package seed loads demo wallets and subscriptions from a YAML fixture.
package seed

import (
	"github.com/spf13/cobra"

	"github.com/cbnu/subscribe-service/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/cbnu/subscribe-service/internal/interfaces/http"
)

var (
	opts bootstrap.Options
	file string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load wallets and subscriptions from a YAML file",
		Long: `Apply a fixture of demo data. Wallets are registered first and
recharged, then subscriptions are purchased from those balances.
Existing wallets are reused and existing subscriptions are skipped.`,
		RunE: runSeed,
	}

	opts.Bind(cmd)
	cmd.Flags().StringVarP(&file, "file", "f", "./configs/seed.yaml", "Path to the seed file")

	return cmd
}

func runSeed(cmd *cobra.Command, args []string) error {
	fixture, err := LoadFixture(file)
	if err != nil {
		return err
	}

	rt, err := bootstrap.LoadWithDB(opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	container, err := httpRouter.NewContainer(rt.DB, rt.Config, rt.Log)
	if err != nil {
		return err
	}
	defer container.Shutdown()

	return Apply(cmd.Context(), cmd.OutOrStdout(), container.Ledger(), container.Subscriptions(), fixture)
}

