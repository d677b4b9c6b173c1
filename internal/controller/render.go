package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"

	m "framecheck.dev/pkg/framecheck/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)

	verdictStyles = map[m.Verdict]lipgloss.Style{
		m.VerdictConsistent:            lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		m.VerdictSecurityOriented:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		m.VerdictCompatibilityOriented: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		m.VerdictInconsistent:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		m.VerdictFailed:                lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	}
)

const emptyBucketLabel = "-"

func styleVerdict(v m.Verdict) string {
	style, ok := verdictStyles[v]
	if !ok {
		return string(v)
	}

	return style.Render(string(v))
}

func newTable(buf *bytes.Buffer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)

	return table
}

func formatBucket(bucket []m.Semantics) string {
	if len(bucket) == 0 {
		return emptyBucketLabel
	}

	parts := make([]string, len(bucket))
	for i, semantics := range bucket {
		parts[i] = "[" + semantics.String() + "]"
	}

	return strings.Join(parts, " | ")
}

func renderAnalysis(results []m.SiteResult, detailed bool) string {
	var b strings.Builder

	if len(results) == 0 {
		b.WriteString("No sites analyzed\n")
		return b.String()
	}

	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Site", "Verdict", "Legacy (XFO)", "Modern (CSP)"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
	})

	tally := map[m.Verdict]int{}

	for _, result := range results {
		tally[result.Verdict]++
		table.Append([]string{
			result.Site,
			styleVerdict(result.Verdict),
			formatBucket(result.Report.Legacy),
			formatBucket(result.Report.Modern),
		})
	}

	table.Render()
	b.WriteString(tableBuffer.String())
	b.WriteString("\n")
	b.WriteString(renderTally(tally, len(results)))

	for _, result := range results {
		if result.Error != "" {
			fmt.Fprintf(&b, "\n%s %s: %s\n", styleVerdict(m.VerdictFailed), result.Site, result.Error)
			continue
		}

		for _, warning := range result.Warnings {
			fmt.Fprintf(&b, "\n%s %s: %s\n", faintStyle.Render("warning"), result.Site, warning)
		}

		if detailed && result.Verdict != m.VerdictConsistent {
			b.WriteString("\n")
			b.WriteString(renderSiteDetail(result))
		}
	}

	return b.String()
}

func renderTally(tally map[m.Verdict]int, total int) string {
	parts := make([]string, 0, len(tally))

	for _, verdict := range m.Verdicts() {
		if count := tally[verdict]; count > 0 {
			parts = append(parts, fmt.Sprintf("%s %d", verdict.Label(), count))
		}
	}

	return fmt.Sprintf("Sites: %d | %s\n", total, strings.Join(parts, " | "))
}

func renderSiteDetail(result m.SiteResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render("~~ Investigating:"), result.Origin)
	fmt.Fprintf(&b, "Status: %s\n", result.Verdict.Label())
	b.WriteString(renderBrowsers(result.Browsers))

	if diff := renderBucketDiff(result.Report); diff != "" {
		b.WriteString(diff)
	}

	return b.String()
}

func renderBrowsers(browsers []m.BrowserSemantics) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"Browser", "Archetype", "Enforced"})

	for _, browser := range browsers {
		bucket := "modern"
		if browser.Archetype.LegacyOnly() {
			bucket = "legacy"
		}

		table.Append([]string{
			browser.Label,
			browser.Archetype.DisplayName() + " (" + bucket + ")",
			browser.Enforced.String(),
		})
	}

	table.Render()

	return tableBuffer.String()
}

// renderBucketDiff shows how the legacy bucket differs from the modern one.
func renderBucketDiff(report m.InconsistencyReport) string {
	diff := difflib.UnifiedDiff{
		A:        bucketLines(report.Legacy),
		B:        bucketLines(report.Modern),
		FromFile: "legacy",
		ToFile:   "modern",
		Context:  1,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return ""
	}

	return text
}

func bucketLines(bucket []m.Semantics) []string {
	lines := make([]string, len(bucket))
	for i, semantics := range bucket {
		lines[i] = semantics.String() + "\n"
	}

	return lines
}

func renderTranslation(result m.SiteResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", titleStyle.Render("Page origin:"), result.Origin)
	b.WriteString(renderBrowsers(result.Browsers))
	fmt.Fprintf(&b, "\nLegacy bucket: %s\n", formatBucket(result.Report.Legacy))
	fmt.Fprintf(&b, "Modern bucket: %s\n", formatBucket(result.Report.Modern))
	fmt.Fprintf(&b, "Status: %s\n", styleVerdict(result.Verdict))

	for _, warning := range result.Warnings {
		fmt.Fprintf(&b, "%s %s\n", faintStyle.Render("warning"), warning)
	}

	return b.String()
}

func renderUserAgents(rules []m.UserAgentRule) string {
	var tableBuffer bytes.Buffer

	table := newTable(&tableBuffer, []string{"#", "Archetype", "Pattern"})

	for i, rule := range rules {
		table.Append([]string{fmt.Sprintf("%d", i+1), rule.Archetype.String(), rule.Pattern})
	}

	table.SetFooter([]string{"", "Rules", fmt.Sprintf("%d", len(rules))})
	table.Render()

	return tableBuffer.String()
}

func renderReports(reports []m.RunReport) string {
	if len(reports) == 0 {
		return "No reports found\n"
	}

	var tableBuffer bytes.Buffer

	header := []string{"Run", "Created", "Sites"}
	for _, verdict := range m.Verdicts() {
		header = append(header, verdict.Label())
	}

	table := newTable(&tableBuffer, header)

	for _, report := range reports {
		tally := report.Tally()
		row := []string{
			shortID(report.ID),
			report.CreatedAt.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%d", len(report.Sites)),
		}

		for _, verdict := range m.Verdicts() {
			row = append(row, fmt.Sprintf("%d", tally[verdict]))
		}

		table.Append(row)
	}

	table.Render()

	var b strings.Builder

	b.WriteString(tableBuffer.String())

	latest := reports[len(reports)-1]
	fmt.Fprintf(&b, "\n%s %s\n\n", titleStyle.Render("Latest run:"), latest.ID)
	b.WriteString(renderAnalysis(latest.Sites, true))

	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}
