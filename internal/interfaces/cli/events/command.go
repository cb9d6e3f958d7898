// Package events streams domain events forwarded over Redis Pub/Sub.
package events

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cbnu/subscribe-service/internal/infrastructure/pubsub"
	"github.com/cbnu/subscribe-service/internal/interfaces/cli/bootstrap"
	httpRouter "github.com/cbnu/subscribe-service/internal/interfaces/http"
	"github.com/cbnu/subscribe-service/internal/shared/biztime"
)

var (
	opts      bootstrap.Options
	eventType string
	raw       bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Follow ledger and subscription events",
	}

	opts.Bind(cmd)

	tailCmd := &cobra.Command{
		Use:   "tail",
		Short: "Print events as they are published until interrupted",
		RunE:  runTail,
	}
	tailCmd.Flags().StringVar(&eventType, "type", "", "Only print events of this type")
	tailCmd.Flags().BoolVar(&raw, "raw", false, "Print the JSON payload of each event")

	cmd.AddCommand(tailCmd)
	return cmd
}

func runTail(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap.LoadWithDB(opts)
	if err != nil {
		return err
	}
	defer rt.Close()

	if !rt.Config.Redis.Enabled {
		return fmt.Errorf("event forwarding requires redis; set redis.enabled")
	}

	container, err := httpRouter.NewContainer(rt.DB, rt.Config, rt.Log)
	if err != nil {
		return err
	}
	defer container.Shutdown()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	err = container.EventBus().Subscribe(ctx, func(_ context.Context, msg pubsub.EventMessage) {
		if eventType != "" && msg.EventType != eventType {
			return
		}
		printEvent(out, msg, raw)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func printEvent(w io.Writer, msg pubsub.EventMessage, withPayload bool) {
	fmt.Fprintf(w, "%s  %-28s user=%s\n",
		biztime.FormatInBizTimezone(msg.OccurredAt, "2006-01-02 15:04:05"),
		msg.EventType,
		msg.AggregateID,
	)
	if withPayload {
		fmt.Fprintf(w, "    %s\n", msg.Payload)
	}
}
