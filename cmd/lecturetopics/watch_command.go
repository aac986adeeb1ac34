package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/lecture-topics/internal/watcher"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [folder] [output]",
		Short: "Rewrite the report whenever transcripts in <folder> change",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, output, err := ctx.target(args)
			if err != nil {
				return err
			}
			rep, log, err := ctx.newReporter(cmd)
			if err != nil {
				return err
			}
			status := newStatusPrinter(cmd.OutOrStdout())

			run := func(runCtx context.Context, _ string) error {
				summary, err := rep.Run(runCtx, dir, output)
				if !reportOutcome(status, dir, summary, err) {
					return err
				}
				return nil
			}

			if err := run(cmd.Context(), ""); errors.Is(err, context.Canceled) {
				return nil
			}

			w, err := watcher.New(dir, run, log, ctx.cfg.DebounceInterval())
			if err != nil {
				status.print(statusError, "Cannot watch '%s': %v", dir, err)
				return fmt.Errorf("%w: %w", errReported, err)
			}
			defer w.Stop()

			status.print(statusInfo, "Watching %s (Ctrl+C to stop)", dir)
			if err := w.Start(cmd.Context()); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
			return nil
		},
	}
}
