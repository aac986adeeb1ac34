package reporter

import (
	"github.com/nguyentantai21042004/lecture-topics/internal/config"
	"github.com/nguyentantai21042004/lecture-topics/internal/logger"
	"github.com/nguyentantai21042004/lecture-topics/internal/metrics"
	"github.com/nguyentantai21042004/lecture-topics/internal/topic"
	"github.com/nguyentantai21042004/lecture-topics/pkg/executor"
)

type implReporter struct {
	cfg        *config.Config
	classifier topic.Classifier
	executor   executor.Executor
	logger     logger.Logger
	metrics    *metrics.Metrics
}

// New creates a new Reporter instance. Metrics accumulate across runs.
func New(cfg *config.Config, cls topic.Classifier, exec executor.Executor, log logger.Logger) Reporter {
	return &implReporter{
		cfg:        cfg,
		classifier: cls,
		executor:   exec,
		logger:     log,
		metrics:    metrics.New(),
	}
}
