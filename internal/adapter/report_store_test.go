package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "framecheck.dev/pkg/framecheck/internal/model"
)

func TestLocalReportStore_RoundTrip(t *testing.T) {
	dir := m.Path(filepath.Join(t.TempDir(), "reports"))
	store := NewReportStore()
	ctx := context.Background()

	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	newer := m.RunReport{
		ID:        "run-b",
		CreatedAt: created.Add(time.Hour),
		Datasets:  []m.Path{"data.yaml"},
		Sites: []m.SiteResult{{
			Site:    "https://a.com",
			Origin:  "https://a.com",
			Verdict: m.VerdictSecurityOriented,
			Report: m.InconsistencyReport{
				Legacy: []m.Semantics{{m.None()}},
				Modern: []m.Semantics{{m.OriginMatch("https", "a.com")}},
			},
			Browsers: []m.BrowserSemantics{{Label: "ie", Archetype: m.InternetExplorer, Enforced: m.Semantics{m.None()}}},
		}},
	}
	older := m.RunReport{ID: "run-a", CreatedAt: created}

	path, err := store.SaveReport(ctx, dir, newer)
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(string(dir), "run-b.yaml")), path)

	_, err = store.SaveReport(ctx, dir, older)
	require.NoError(t, err)

	reports, err := store.LoadReports(ctx, dir)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "run-a", reports[0].ID)
	assert.Equal(t, newer, reports[1])
}

func TestLocalReportStore_MissingID(t *testing.T) {
	_, err := NewReportStore().SaveReport(context.Background(), m.Path(t.TempDir()), m.RunReport{})
	require.Error(t, err)
}

func TestLocalReportStore_LoadReports(t *testing.T) {
	store := NewReportStore()

	reports, err := store.LoadReports(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing")))
	require.NoError(t, err)
	assert.Empty(t, reports)

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.yaml"), "id: [unterminated\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "ignored\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.yaml"), 0o750))

	reports, err = store.LoadReports(context.Background(), m.Path(dir))
	require.NoError(t, err)
	assert.Empty(t, reports)
}
