package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/lecture-topics/internal/config"
	"github.com/nguyentantai21042004/lecture-topics/internal/logger"
	"github.com/nguyentantai21042004/lecture-topics/internal/reporter"
	"github.com/nguyentantai21042004/lecture-topics/internal/topic"
	"github.com/nguyentantai21042004/lecture-topics/internal/vocabulary"
	"github.com/nguyentantai21042004/lecture-topics/pkg/executor"
)

// commandContext carries global flags and lazily loaded state shared by commands
type commandContext struct {
	configFlag      string
	vocabularyFlag  string
	logLevelFlag    string
	concurrencyFlag int
	docxFlag        string

	cfg   *config.Config
	vocab *vocabulary.Vocabulary
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	if c.cfg != nil {
		return c.cfg, nil
	}

	cfg, err := config.Load(c.configFlag)
	if err != nil {
		return nil, err
	}

	if c.vocabularyFlag != "" {
		cfg.Vocabulary.Path = c.vocabularyFlag
	}
	if c.logLevelFlag != "" {
		cfg.Logging.Level = c.logLevelFlag
	}
	if c.concurrencyFlag != 0 {
		cfg.Performance.MaxConcurrent = c.concurrencyFlag
	}
	if c.docxFlag != "" {
		cfg.Report.Docx = c.docxFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	c.cfg = cfg
	return cfg, nil
}

func (c *commandContext) ensureVocabulary() (*vocabulary.Vocabulary, error) {
	if c.vocab != nil {
		return c.vocab, nil
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	if cfg.Vocabulary.Path == "" {
		c.vocab = vocabulary.Default()
		return c.vocab, nil
	}

	vocab, err := vocabulary.Load(cfg.Vocabulary.Path)
	if err != nil {
		return nil, err
	}
	c.vocab = vocab
	return vocab, nil
}

// target resolves the transcript folder and report path from args, falling
// back to paths.input. An empty output lets the reporter apply its default.
func (c *commandContext) target(args []string) (string, string, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", "", err
	}

	dir := cfg.Paths.Input
	output := ""
	if len(args) > 0 {
		dir = args[0]
	}
	if len(args) > 1 {
		output = args[1]
	}
	if dir == "" {
		return "", "", errNoFolder
	}
	return dir, output, nil
}

func (c *commandContext) newLogger(cmd *cobra.Command) (logger.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format), nil
}

func (c *commandContext) newReporter(cmd *cobra.Command) (reporter.Reporter, logger.Logger, error) {
	log, err := c.newLogger(cmd)
	if err != nil {
		return nil, nil, err
	}
	vocab, err := c.ensureVocabulary()
	if err != nil {
		return nil, nil, err
	}
	return reporter.New(c.cfg, topic.New(vocab), executor.New(), log), log, nil
}
