package reporter

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/lecture-topics/internal/logger"
)

// writeExtras produces the optional outputs configured next to the report.
// Failures are logged and never undo the report itself.
func (r *implReporter) writeExtras(ctx context.Context, log logger.Logger, summary Summary) {
	if path := r.cfg.Report.Docx; path != "" {
		if err := reportToDocx(summary, path); err != nil {
			log.Warn(ctx, "Failed to write DOCX report %s: %v", path, err)
		} else {
			log.Info(ctx, "DOCX report written: %s", path)
		}
	}

	if path := r.cfg.Metrics.Textfile; path != "" {
		if err := r.metrics.WriteTextfile(path); err != nil {
			log.Warn(ctx, "Failed to write metrics textfile %s: %v", path, err)
		}
	}

	if len(r.cfg.Hooks.AfterReport) > 0 {
		r.runAfterReport(ctx, log, summary.OutputPath)
	}
}

// runAfterReport runs the configured hook in the report's directory with the
// report path as last argument
func (r *implReporter) runAfterReport(ctx context.Context, log logger.Logger, outputPath string) {
	hook := r.cfg.Hooks.AfterReport
	args := append(append([]string{}, hook[1:]...), outputPath)

	out, err := r.executor.ExecuteInDir(ctx, filepath.Dir(outputPath), hook[0], args...)
	if err != nil {
		log.Warn(ctx, "After-report hook failed: %v", err)
		return
	}
	if out = strings.TrimSpace(out); out != "" {
		log.Debug(ctx, "After-report hook output: %s", out)
	}
}
