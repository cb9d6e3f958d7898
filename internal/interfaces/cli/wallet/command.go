// Package wallet provides operator commands over the point ledger.
package wallet

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cbnu/subscribe-service/internal/application/ledger"
	"github.com/cbnu/subscribe-service/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/cbnu/subscribe-service/internal/interfaces/http"
	"github.com/cbnu/subscribe-service/internal/shared/constants"
)

var (
	opts     bootstrap.Options
	reason   string
	page     int
	pageSize int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Inspect and adjust point wallets",
	}

	opts.Bind(cmd)

	useCmd := &cobra.Command{
		Use:   "use <user-id> <amount>",
		Short: "Debit points from a wallet",
		Args:  cobra.ExactArgs(2),
		RunE: withLedger(func(ctx context.Context, cmd *cobra.Command, svc *ledger.Service, args []int64) error {
			change, err := svc.Use(ctx, args[0], args[1], reason)
			if err != nil {
				return err
			}
			printChange(cmd.OutOrStdout(), change)
			return nil
		}),
	}
	useCmd.Flags().StringVar(&reason, "reason", "operator adjustment", "Reason stored in the ledger entry")

	historyCmd := &cobra.Command{
		Use:   "history <user-id>",
		Short: "List ledger entries, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: withLedger(func(ctx context.Context, cmd *cobra.Command, svc *ledger.Service, args []int64) error {
			list, err := svc.ListHistory(ctx, args[0], page, pageSize)
			if err != nil {
				return err
			}
			printHistory(cmd.OutOrStdout(), list)
			return nil
		}),
	}
	historyCmd.Flags().IntVar(&page, "page", constants.DefaultPage, "Page number")
	historyCmd.Flags().IntVar(&pageSize, "page-size", constants.DefaultPageSize, "Entries per page")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show <user-id>",
			Short: "Show a wallet balance",
			Args:  cobra.ExactArgs(1),
			RunE: withLedger(func(ctx context.Context, cmd *cobra.Command, svc *ledger.Service, args []int64) error {
				w, err := svc.LoadWallet(ctx, args[0])
				if err != nil {
					return err
				}
				printWallet(cmd.OutOrStdout(), w)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "register <user-id>",
			Short: "Create an empty wallet",
			Args:  cobra.ExactArgs(1),
			RunE: withLedger(func(ctx context.Context, cmd *cobra.Command, svc *ledger.Service, args []int64) error {
				w, err := svc.RegisterWallet(ctx, args[0])
				if err != nil {
					return err
				}
				printWallet(cmd.OutOrStdout(), w)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "recharge <user-id> <amount>",
			Short: "Credit points to a wallet",
			Args:  cobra.ExactArgs(2),
			RunE: withLedger(func(ctx context.Context, cmd *cobra.Command, svc *ledger.Service, args []int64) error {
				change, err := svc.Recharge(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				printChange(cmd.OutOrStdout(), change)
				return nil
			}),
		},
		useCmd,
		&cobra.Command{
			Use:   "present <from-user-id> <to-user-id> <amount>",
			Short: "Transfer points between wallets",
			Args:  cobra.ExactArgs(3),
			RunE: withLedger(func(ctx context.Context, cmd *cobra.Command, svc *ledger.Service, args []int64) error {
				res, err := svc.Present(ctx, args[0], args[1], args[2])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Presented %s from %d (now %s) to %d (now %s)\n",
					formatPoints(res.Amount),
					res.FromUserID, formatPoints(res.SenderBalance),
					res.ToUserID, formatPoints(res.ReceiverBalance))
				return nil
			}),
		},
		historyCmd,
	)

	return cmd
}

type ledgerFunc func(ctx context.Context, cmd *cobra.Command, svc *ledger.Service, args []int64) error

// withLedger parses integer arguments, wires the application and runs fn.
func withLedger(fn ledgerFunc) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		nums, err := parseInts(args)
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

		return fn(cmd.Context(), cmd, container.Ledger(), nums)
	}
}

func parseInts(args []string) ([]int64, error) {
	nums := make([]int64, len(args))
	for i, a := range args {
		n, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %q is not an integer", i+1, a)
		}
		nums[i] = n
	}
	return nums, nil
}
