package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "framecheck.dev/pkg/framecheck/internal/model"
)

const reportExtension = ".yaml"

// ReportStore persists analysis runs.
type ReportStore interface {
	SaveReport(ctx context.Context, dir m.Path, report m.RunReport) (m.Path, error)
	LoadReports(ctx context.Context, dir m.Path) ([]m.RunReport, error)
}

// LocalReportStore keeps one YAML file per run in a reports directory.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveReport writes report to dir/<report id>.yaml and returns the file path.
func (s *LocalReportStore) SaveReport(ctx context.Context, dir m.Path, report m.RunReport) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if report.ID == "" {
		return "", errors.New("save report: missing report id")
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		slog.Error("failed to create reports dir", "path", dir, "error", err)
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(report)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(string(dir), report.ID+reportExtension)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		slog.Error("failed to write report", "path", path, "error", err)
		return "", fmt.Errorf("write report: %w", err)
	}

	slog.Debug("saved report", "path", path, "sites", len(report.Sites))

	return m.Path(path), nil
}

// LoadReports decodes every report in dir, oldest first. A missing directory
// holds no reports.
func (s *LocalReportStore) LoadReports(ctx context.Context, dir m.Path) ([]m.RunReport, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	reports := make([]m.RunReport, 0, len(entries))

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportExtension) {
			continue
		}

		path := filepath.Join(string(dir), entry.Name())

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", path, err)
		}

		var report m.RunReport
		if err := yaml.Unmarshal(data, &report); err != nil {
			slog.Warn("skipping unreadable report", "path", path, "error", err)
			continue
		}

		reports = append(reports, report)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].CreatedAt.Before(reports[j].CreatedAt)
	})

	return reports, nil
}
