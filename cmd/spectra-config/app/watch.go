package app

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spectra-lab/spectra/pkg/config"
)

var watchCmd = &cobra.Command{
	Use:   "watch <config-file>",
	Short: "Watch a configuration file and validate it on every change",
	Long: `Watch loads the configuration file and then observes it for external
changes, reloading and revalidating on every rewrite. Invalid updates
are reported and the last valid configuration stays active, mirroring
how the services consume configuration updates.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strict, err := cmd.Flags().GetBool("strict")
		if err != nil {
			return fmt.Errorf("failed to get strict flag: %w", err)
		}

		manager, err := config.NewManager(args[0],
			config.WithLoadOptions(loadOptions("", strict)...))
		if err != nil {
			return err
		}
		defer manager.Close()

		slog.Info("configuration loaded", "path", args[0])

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := manager.Watch(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		return nil
	},
}

func init() {
	watchCmd.Flags().Bool("strict", false, "Treat unknown configuration keys as errors")
}
