package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"framecheck.dev/pkg/framecheck/internal/adapter"
	"framecheck.dev/pkg/framecheck/internal/controller"
	m "framecheck.dev/pkg/framecheck/internal/model"
)

// ErrUnidentifiedBrowser is returned for a recorded response that names
// neither a browser nor a User-Agent.
var ErrUnidentifiedBrowser = errors.New("response names no browser or user agent")

// AnalyzeArgs contains the arguments for analyzing datasets.
type AnalyzeArgs struct {
	Datasets []m.Path
	Reports  m.Path
	Threads  uint
	Detailed bool
	Save     bool
}

// TranslateArgs contains the arguments for translating one header set.
type TranslateArgs struct {
	Origin   string
	XFO      []string
	CSP      []string
	Policies []string
	// Browsers limits the archetypes evaluated; empty means all of them.
	Browsers []m.Archetype
}

// ViewArgs contains the arguments for showing stored run reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow defines the interface for the framing analysis commands.
type Workflow interface {
	Analyze(ctx context.Context, args AnalyzeArgs) error
	Watch(ctx context.Context, args AnalyzeArgs) error
	Translate(ctx context.Context, args TranslateArgs) error
	View(ctx context.Context, args ViewArgs) error
	ListBrowsers(ctx context.Context) error
}

type workflow struct {
	adapter.DatasetStore
	adapter.ReportStore
	adapter.UserAgentResolver
	adapter.DatasetWatcher
	controller.UI
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	datasetStore adapter.DatasetStore,
	reportStore adapter.ReportStore,
	resolver adapter.UserAgentResolver,
	watcher adapter.DatasetWatcher,
	ui controller.UI,
) Workflow {
	return &workflow{
		DatasetStore:      datasetStore,
		ReportStore:       reportStore,
		UserAgentResolver: resolver,
		DatasetWatcher:    watcher,
		UI:                ui,
	}
}

// Analyze evaluates every site of the given datasets and displays the verdicts.
func (w *workflow) Analyze(ctx context.Context, args AnalyzeArgs) error {
	if err := w.Start(ctx, controller.WithDetail(args.Detailed)); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	if err := w.analyze(ctx, args); err != nil {
		return err
	}

	w.Wait(ctx)

	return nil
}

// Watch runs Analyze once and again after every change to the datasets,
// until ctx is cancelled. Failed re-runs are logged and do not stop watching.
func (w *workflow) Watch(ctx context.Context, args AnalyzeArgs) error {
	if err := w.Analyze(ctx, args); err != nil {
		return err
	}

	slog.Info("watching datasets", "paths", args.Datasets)

	err := w.DatasetWatcher.Watch(ctx, args.Datasets, func() {
		if err := w.Analyze(ctx, args); err != nil {
			slog.Error("re-analysis failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("watch datasets: %w", err)
	}

	return nil
}

func (w *workflow) analyze(ctx context.Context, args AnalyzeArgs) error {
	sites, err := w.LoadSites(ctx, args.Datasets)
	if err != nil {
		return fmt.Errorf("load sites: %w", err)
	}

	results, err := w.EvaluateSites(ctx, sites, args.Threads)
	if err != nil {
		return fmt.Errorf("evaluate sites: %w", err)
	}

	if err := w.DisplayAnalysis(ctx, results); err != nil {
		return fmt.Errorf("display analysis: %w", err)
	}

	if !args.Save {
		return nil
	}

	report := m.RunReport{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Datasets:  args.Datasets,
		Sites:     results,
	}

	path, err := w.SaveReport(ctx, args.Reports, report)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	w.DisplaySavedReport(ctx, path)

	return nil
}

// EvaluateSites evaluates sites with at most threads workers; zero means no
// limit. Results keep the input order.
func (w *workflow) EvaluateSites(ctx context.Context, sites []m.Site, threads uint) ([]m.SiteResult, error) {
	results := make([]m.SiteResult, len(sites))

	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(int(threads))
	}

	for i, site := range sites {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			results[i] = EvaluateSite(site, w.UserAgentResolver)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Translate shows what every requested archetype enforces for one header set.
func (w *workflow) Translate(ctx context.Context, args TranslateArgs) error {
	browsers := args.Browsers
	if len(browsers) == 0 {
		browsers = m.Archetypes()
	}

	modern := make([]m.RawHeader, 0, len(args.CSP)+len(args.Policies))
	for _, value := range args.CSP {
		modern = append(modern, m.RawHeaderFrom(value))
	}

	for _, policy := range args.Policies {
		modern = append(modern, ExtractFrameAncestors(m.RawHeaderFrom(policy)))
	}

	legacy := make([]m.RawHeader, 0, len(args.XFO))
	for _, value := range args.XFO {
		legacy = append(legacy, m.RawHeaderFrom(value))
	}

	bundle := m.BrowserBundle{Legacy: legacy, Modern: modern}

	observations := make([]m.Observation, 0, len(browsers))
	for _, archetype := range browsers {
		observations = append(observations, m.Observation{
			Label:     archetype.DisplayName(),
			Archetype: archetype,
			Bundle:    bundle,
		})
	}

	result := evaluate(args.Origin, args.Origin, observations)
	if result.Error != "" {
		return errors.New(result.Error)
	}

	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	if err := w.DisplayTranslation(ctx, result); err != nil {
		return fmt.Errorf("display translation: %w", err)
	}

	w.Wait(ctx)

	return nil
}

// View displays the run reports stored under args.Reports.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.LoadReports(ctx, args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	if err := w.Start(ctx, controller.WithDetail(true)); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	if err := w.DisplayReports(ctx, reports); err != nil {
		return fmt.Errorf("display reports: %w", err)
	}

	w.Wait(ctx)

	return nil
}

// ListBrowsers displays the User-Agent rules in match order.
func (w *workflow) ListBrowsers(ctx context.Context) error {
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("start ui: %w", err)
	}
	defer w.Close(ctx)

	if err := w.DisplayUserAgents(ctx, w.Rules()); err != nil {
		return fmt.Errorf("display user agents: %w", err)
	}

	w.Wait(ctx)

	return nil
}

// EvaluateSite analyzes the recorded responses of one site. It never fails:
// a site that cannot be evaluated gets VerdictFailed and the error message.
func EvaluateSite(site m.Site, resolver adapter.UserAgentResolver) m.SiteResult {
	observations, err := Observe(site.Responses, resolver)
	if err != nil {
		slog.Warn("site evaluation failed", "site", site.DisplayName(), "error", err)

		return m.SiteResult{
			Site:    site.DisplayName(),
			Origin:  site.Origin,
			Verdict: m.VerdictFailed,
			Error:   err.Error(),
		}
	}

	return evaluate(site.DisplayName(), site.Origin, observations)
}

// Observe maps recorded responses to observations. A response's browser name
// takes precedence over its User-Agent; full CSP headers contribute their
// frame-ancestors directive after the bare csp values.
func Observe(responses []m.RecordedResponse, resolver adapter.UserAgentResolver) ([]m.Observation, error) {
	observations := make([]m.Observation, 0, len(responses))

	for i, response := range responses {
		archetype, label, err := identify(response, resolver)
		if err != nil {
			return nil, fmt.Errorf("response %d: %w", i+1, err)
		}

		modern := make([]m.RawHeader, 0, len(response.CSP)+len(response.Policies))
		modern = append(modern, response.CSP...)

		for _, policy := range response.Policies {
			modern = append(modern, ExtractFrameAncestors(policy))
		}

		observations = append(observations, m.Observation{
			Label:     label,
			Archetype: archetype,
			Bundle: m.BrowserBundle{
				Legacy: append([]m.RawHeader(nil), response.XFO...),
				Modern: modern,
			},
		})
	}

	return observations, nil
}

func identify(response m.RecordedResponse, resolver adapter.UserAgentResolver) (m.Archetype, string, error) {
	if response.Browser != "" {
		archetype, err := m.ParseArchetype(response.Browser)
		if err != nil {
			return 0, "", err
		}

		return archetype, response.Browser, nil
	}

	if response.UserAgent == "" {
		return 0, "", ErrUnidentifiedBrowser
	}

	archetype, err := resolver.Resolve(response.UserAgent)
	if err != nil {
		return 0, "", err
	}

	return archetype, response.UserAgent, nil
}

func evaluate(name, origin string, observations []m.Observation) m.SiteResult {
	result := m.SiteResult{Site: name, Origin: origin}

	pageOrigin := origin
	if parsed, err := m.ParsePageOrigin(origin); err != nil {
		result.Warnings = append(result.Warnings, err.Error())
	} else {
		pageOrigin = parsed.String()
	}

	report, browsers, err := FindObservedSemantics(observations, pageOrigin)
	if err != nil {
		result.Verdict = m.VerdictFailed
		result.Error = err.Error()

		return result
	}

	result.Report = report
	result.Browsers = browsers
	result.Verdict = Classify(report)

	return result
}
