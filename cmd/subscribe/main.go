package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/cbnu/subscribe-service/internal/interfaces/cli/events"
	"github.com/cbnu/subscribe-service/internal/interfaces/cli/migrate"
	"github.com/cbnu/subscribe-service/internal/interfaces/cli/seed"
	"github.com/cbnu/subscribe-service/internal/interfaces/cli/server"
	"github.com/cbnu/subscribe-service/internal/interfaces/cli/version"
	"github.com/cbnu/subscribe-service/internal/interfaces/cli/wallet"
)

// @title Subscribe Service API
// @version 1.0
// @description Point wallets and tiered subscriptions paid from them.
// @BasePath /api/subscribe
func main() {
	rootCmd := &cobra.Command{
		Use:          "subscribe",
		Short:        "Subscribe - point wallet and subscription service",
		Long:         `Subscribe runs the point wallet and subscription HTTP service, and ships migration, seeding and operator commands.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		wallet.NewCommand(),
		seed.NewCommand(),
		events.NewCommand(),
		version.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
