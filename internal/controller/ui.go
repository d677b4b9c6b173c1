// Package controller provides output adapters for displaying framing analysis results.
package controller

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "framecheck.dev/pkg/framecheck/internal/model"
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	detailed bool
}

// WithDetail adds per-browser results and bucket diffs to site output.
func WithDetail(detailed bool) StartOption {
	return func(c *StartConfig) {
		c.detailed = detailed
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying analysis output.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayAnalysis(ctx context.Context, results []m.SiteResult) error
	DisplayTranslation(ctx context.Context, result m.SiteResult) error
	DisplayUserAgents(ctx context.Context, rules []m.UserAgentRule) error
	DisplayReports(ctx context.Context, reports []m.RunReport) error
	DisplaySavedReport(ctx context.Context, path m.Path)
}

// NewUI returns the interactive UI when output goes to a terminal and the
// plain one otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
