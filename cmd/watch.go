package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var watchReference string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Poll for the result of an already-initiated payment",
	Long: "Poll the callback receiver for the payment result tied to a correlation " +
		"reference, for example after re-running a payment attempt's result page.",
	Run: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchReference, "reference", "", "correlation reference of the payment attempt")
	_ = watchCmd.MarkFlagRequired("reference")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	watchReferenceWithConfig(ctx, cfg, watchReference)
}
