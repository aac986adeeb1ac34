package config

import (
	"fmt"
	"strings"
	"time"
)

const (
	DefaultOutput        = "argomenti_lezioni.txt"
	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultMaxConcurrent = 2
	defaultDebounce      = "2s"
)

type Config struct {
	Paths       PathsConfig       `yaml:"paths"`
	Vocabulary  VocabularyConfig  `yaml:"vocabulary"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Watch       WatchConfig       `yaml:"watch"`
	Report      ReportConfig      `yaml:"report"`
	Metrics     MetricsConfig     `yaml:"metrics"`
	Hooks       HooksConfig       `yaml:"hooks"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// VocabularyConfig points at an external vocabulary file. Empty means the compiled-in one.
type VocabularyConfig struct {
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type WatchConfig struct {
	Debounce string `yaml:"debounce"`
}

type ReportConfig struct {
	Docx string `yaml:"docx"`
}

type MetricsConfig struct {
	Textfile string `yaml:"textfile"`
}

// HooksConfig holds commands run after a report is written.
// The absolute report path is appended to the arguments.
type HooksConfig struct {
	AfterReport []string `yaml:"after_report"`
}

// Default returns a Config populated with repository defaults
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			Output: DefaultOutput,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Performance: PerformanceConfig{
			MaxConcurrent: defaultMaxConcurrent,
		},
		Watch: WatchConfig{
			Debounce: defaultDebounce,
		},
	}
}

func (c *Config) Validate() error {
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}

	if c.Paths.Output == "" {
		c.Paths.Output = DefaultOutput
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = defaultMaxConcurrent
	}
	if c.Watch.Debounce == "" {
		c.Watch.Debounce = defaultDebounce
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not one of debug, info, warn, error", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not one of console, json", c.Logging.Format)
	}
	if d, err := time.ParseDuration(c.Watch.Debounce); err != nil || d <= 0 {
		return fmt.Errorf("watch.debounce %q is not a positive duration", c.Watch.Debounce)
	}
	if len(c.Hooks.AfterReport) > 0 && strings.TrimSpace(c.Hooks.AfterReport[0]) == "" {
		return fmt.Errorf("hooks.after_report command is empty")
	}

	return nil
}

// DebounceInterval returns the parsed watch debounce. Call after Validate.
func (c *Config) DebounceInterval() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(defaultDebounce)
	}
	return d
}
