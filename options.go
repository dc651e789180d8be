package paramcheck

import (
	"io"
	"log/slog"
	"os"
)

// Option configures a Runner.
type Option func(*config) error

// config holds all pipeline configuration.
type config struct {
	immediateExit bool
	backfill      bool
	autoNumber    bool

	// out receives the validation report. Reports are part of the tool's
	// contract (CI logs are parsed by humans), so they are not routed
	// through the logger.
	out io.Writer

	// logger is the structured logger for debug output. If nil, logging is
	// disabled (silent mode). *slog.Logger rather than a custom interface:
	// slog's handler model already gives callers backend choice.
	logger *slog.Logger
}

func defaultConfig() config {
	return config{out: os.Stdout}
}

// WithImmediateExit makes the pipeline stop at the first failing pass
// (schema or custom) instead of accumulating a consolidated report.
func WithImmediateExit() Option {
	return func(c *config) error {
		c.immediateExit = true
		return nil
	}
}

// WithDefaultAccessBackfill repairs records that carry no access matrix by
// assigning read-only access on both interfaces. Without it, a missing
// access field is a test failure.
func WithDefaultAccessBackfill() Option {
	return func(c *config) error {
		c.backfill = true
		return nil
	}
}

// WithAutoNumbering replaces sentinel-valued IDs with newly minted unique
// ones, numbering upward from the highest ID already in use.
func WithAutoNumbering() Option {
	return func(c *config) error {
		c.autoNumber = true
		return nil
	}
}

// WithOutput redirects the validation report. Default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *config) error {
		c.out = w
		return nil
	}
}

// WithLogger enables debug logging through the given slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}
