package main

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/lecture-topics/internal/reporter"
	"github.com/nguyentantai21042004/lecture-topics/internal/transcript"
)

func runReport(cmd *cobra.Command, ctx *commandContext, args []string) error {
	dir, output, err := ctx.target(args)
	if err != nil {
		return err
	}
	rep, _, err := ctx.newReporter(cmd)
	if err != nil {
		return err
	}

	status := newStatusPrinter(cmd.OutOrStdout())
	summary, err := rep.Run(cmd.Context(), dir, output)
	if !reportOutcome(status, dir, summary, err) {
		return fmt.Errorf("%w: %w", errReported, err)
	}
	return nil
}

// reportOutcome prints the final status of a batch and reports whether the
// run counts as a success. An empty folder is a no-op, not a failure.
func reportOutcome(status statusPrinter, dir string, summary reporter.Summary, err error) bool {
	switch {
	case err == nil:
		status.print(statusOK, "Report written: %s", summary.OutputPath)
		if summary.Failed > 0 {
			status.print(statusWarn, "Processed %d lectures, %d could not be read", summary.Processed, summary.Failed)
		} else {
			status.print(statusInfo, "Processed %d lectures", summary.Processed)
		}
		if len(summary.Topics) > 0 {
			status.print(statusInfo, "Topics: %s", formatTopics(summary.Topics))
		}
		return true
	case errors.Is(err, transcript.ErrNoTranscripts):
		status.print(statusWarn, "No JSON transcript files found in '%s'", dir)
		return true
	case errors.Is(err, transcript.ErrInputMissing):
		status.print(statusError, "Folder '%s' does not exist or is not a directory", dir)
	case errors.Is(err, reporter.ErrOutputLocked):
		status.print(statusError, "Another run is writing the report: %v", err)
	case errors.Is(err, reporter.ErrOutputWrite):
		status.print(statusError, "Could not write the report: %v", err)
	case errors.Is(err, context.Canceled):
		status.print(statusWarn, "Interrupted, no report written")
	default:
		status.print(statusError, "%v", err)
	}
	return false
}

// formatTopics lists categories by descending win count, then by name
func formatTopics(topics map[string]int) string {
	names := make([]string, 0, len(topics))
	for name := range topics {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if topics[names[i]] != topics[names[j]] {
			return topics[names[i]] > topics[names[j]]
		}
		return names[i] < names[j]
	})

	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s %d", name, topics[name])
	}
	return strings.Join(parts, ", ")
}
