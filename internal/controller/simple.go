package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "framecheck.dev/pkg/framecheck/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd    *cobra.Command
	config StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.config = newStartConfig(options)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayAnalysis prints the per-site verdict table.
func (s *SimpleUI) DisplayAnalysis(ctx context.Context, results []m.SiteResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.printf("%s", renderAnalysis(results, s.config.detailed))
}

// DisplayTranslation prints what every browser enforces for one header set.
func (s *SimpleUI) DisplayTranslation(ctx context.Context, result m.SiteResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.printf("%s", renderTranslation(result))
}

// DisplayUserAgents prints the User-Agent lookup table.
func (s *SimpleUI) DisplayUserAgents(ctx context.Context, rules []m.UserAgentRule) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.printf("%s", renderUserAgents(rules))
}

// DisplayReports prints a summary of stored runs and the latest run in detail.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.printf("%s", renderReports(reports))
}

// DisplaySavedReport shows where a run report was written.
func (s *SimpleUI) DisplaySavedReport(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	_ = s.printf("Report saved to %s\n", path)
}

func (s *SimpleUI) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}
