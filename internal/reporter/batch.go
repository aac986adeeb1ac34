package reporter

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/lecture-topics/internal/logger"
	"github.com/nguyentantai21042004/lecture-topics/internal/transcript"
)

// Run processes every transcript in dir and writes the report to output.
// An empty output uses the configured default. Nothing is written unless
// every file has been processed.
func (r *implReporter) Run(ctx context.Context, dir, output string) (Summary, error) {
	startTime := time.Now()
	log := r.logger.With("run_id", uuid.NewString())

	files, err := transcript.Discover(dir)
	if err != nil {
		return Summary{}, err
	}

	log.Info(ctx, "Found %d transcript files to process in %s", len(files), dir)

	entries, err := r.processAll(ctx, log, files)
	if err != nil {
		return Summary{}, err
	}

	if output == "" {
		output = r.cfg.Paths.Output
	}
	outputPath, err := filepath.Abs(output)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: resolve %s: %w", ErrOutputWrite, output, err)
	}

	if err := writeReport(outputPath, Render(entries)); err != nil {
		return Summary{}, err
	}

	summary := summarize(entries, outputPath)
	for _, e := range entries {
		r.metrics.RecordTranscript(e.Category, e.Failed())
	}
	r.metrics.RecordBatch(startTime)
	r.writeExtras(ctx, log, summary)

	log.Info(ctx, "Report written: %s (%d processed, %d failed, %s)",
		outputPath, summary.Processed, summary.Failed, time.Since(startTime))
	return summary, nil
}

// processAll classifies files concurrently. Each result owns its index slot,
// so entries keep the sorted file order regardless of completion order.
func (r *implReporter) processAll(ctx context.Context, log logger.Logger, files []string) ([]Entry, error) {
	entries := make([]Entry, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Performance.MaxConcurrent)

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			log.Info(gctx, "[%d/%d] Analyzing: %s", i+1, len(files), filepath.Base(path))
			entries[i] = r.processFile(gctx, log, path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("process transcripts: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("process transcripts: %w", err)
	}
	return entries, nil
}

func (r *implReporter) processFile(ctx context.Context, log logger.Logger, path string) Entry {
	stem := transcript.Stem(path)

	doc, err := transcript.Read(path)
	if err != nil {
		log.Warn(ctx, "Failed to process %s: %v", filepath.Base(path), err)
		return Entry{Stem: stem, Label: ErrorLabel, Err: err}
	}

	res := r.classifier.Classify(doc.Text)
	log.Debug(ctx, "%s: %d concepts, category %q", stem, len(res.Hits), res.Category)

	return Entry{Stem: stem, Label: res.Label, Category: res.Category}
}
