package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/grovetools/wikigen/pkg/generator"
	"github.com/grovetools/wikigen/pkg/watcher"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	var debounceMs int

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate pages when item records change",
		Long: `Watches the items directory recursively and regenerates the page of every
record that is written or created. Each page goes to its default path.

Example:
  wikigen watch --debounce 200

Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.runWatch(ctx, time.Duration(debounceMs)*time.Millisecond)
		},
	}

	cmd.Flags().IntVar(&debounceMs, "debounce", 100, "Debounce interval in milliseconds")
	return cmd
}

func (a *app) runWatch(ctx context.Context, debounce time.Duration) error {
	w, err := watcher.New()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Close()

	if err := w.AddRecursive(a.paths.ItemsDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", a.paths.ItemsDir, err)
	}

	gen := generator.New(a.logger, a.paths)
	a.logger.WithField("dir", a.paths.ItemsDir).Info("Watching for item record changes")

	return watcher.Run(ctx, w, a.logger, debounce, func(path string) {
		a.logger.WithField("record", path).Info("Regenerating")
		if _, err := gen.Generate(path, ""); err != nil {
			a.logger.WithField("record", path).WithError(err).Error("Regeneration failed")
		}
	})
}
