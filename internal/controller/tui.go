package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	m "framecheck.dev/pkg/framecheck/internal/model"
)

const (
	// defaultPageHeight is used when the terminal size is unknown.
	defaultPageHeight = 30
	footerHeight      = 2
)

// TUI implements UI using Bubble Tea for interactive display.
// Output is collected while the command runs and shown on Wait, in a
// scrollable pager when it does not fit on one screen.
type TUI struct {
	output io.Writer
	config StartConfig
	buffer strings.Builder
	width  int
	height int
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.config = newStartConfig(options)
	p.buffer.Reset()

	// Get initial terminal size
	if f, ok := p.output.(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			p.width = width
			p.height = height
		}
	}

	return nil
}

// Close finalizes the UI.
func (p *TUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait shows the collected output and blocks until the pager is closed.
func (p *TUI) Wait(ctx context.Context) {
	content := p.buffer.String()
	p.buffer.Reset()

	if content == "" {
		return
	}

	if !p.needsPagination(content) {
		_, _ = fmt.Fprint(p.output, content)
		return
	}

	model := newPagerModel(content, p.width, p.height)

	program := tea.NewProgram(model, tea.WithOutput(p.output), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		// Fall back to plain output so results are never lost.
		_, _ = fmt.Fprint(p.output, content)
	}
}

// DisplayAnalysis queues the per-site verdict table.
func (p *TUI) DisplayAnalysis(ctx context.Context, results []m.SiteResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.buffer.WriteString(renderAnalysis(results, p.config.detailed))

	return nil
}

// DisplayTranslation queues the per-browser enforcement table.
func (p *TUI) DisplayTranslation(ctx context.Context, result m.SiteResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.buffer.WriteString(renderTranslation(result))

	return nil
}

// DisplayUserAgents queues the User-Agent lookup table.
func (p *TUI) DisplayUserAgents(ctx context.Context, rules []m.UserAgentRule) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.buffer.WriteString(renderUserAgents(rules))

	return nil
}

// DisplayReports queues the stored run summary.
func (p *TUI) DisplayReports(ctx context.Context, reports []m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.buffer.WriteString(renderReports(reports))

	return nil
}

// DisplaySavedReport queues where a run report was written.
func (p *TUI) DisplaySavedReport(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	fmt.Fprintf(&p.buffer, "\n%s %s\n", faintStyle.Render("Report saved to"), path)
}

func (p *TUI) needsPagination(content string) bool {
	if p.height == 0 {
		return false
	}

	return strings.Count(content, "\n") > p.height-footerHeight
}

// pagerModel is a read-only Bubble Tea viewport over rendered output.
type pagerModel struct {
	content  string
	viewport viewport.Model
	ready    bool
}

func newPagerModel(content string, width, height int) pagerModel {
	model := pagerModel{content: content}

	if height == 0 {
		height = defaultPageHeight
	}

	model.viewport = viewport.New(width, max(height-footerHeight, 1))
	model.viewport.SetContent(content)
	model.ready = width > 0

	return model
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-footerHeight, 1)
		pm.viewport.SetContent(pm.content)
		pm.ready = true

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		case "g", "home":
			pm.viewport.GotoTop()
			return pm, nil
		case "G", "end":
			pm.viewport.GotoBottom()
			return pm, nil
		}
	}

	var cmd tea.Cmd

	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if !pm.ready {
		return "Loading...\n"
	}

	footer := fmt.Sprintf("%3.f%% | ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit",
		pm.viewport.ScrollPercent()*100)

	return pm.viewport.View() + "\n\n" + faintStyle.Render(footer)
}
