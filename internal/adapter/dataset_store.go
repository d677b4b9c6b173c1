// Package adapter contains storage and lookup adapters for the framecheck CLI.
package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "framecheck.dev/pkg/framecheck/internal/model"
)

// ErrNoDatasets is returned when the given paths contain no dataset file.
var ErrNoDatasets = errors.New("no dataset files found")

var datasetExtensions = map[string]bool{
	".yaml": true,
	".yml":  true,
	".json": true,
}

// DatasetStore loads recorded header observations. It hides direct file
// access so the workflow can be tested without touching the disk.
type DatasetStore interface {
	// ResolvePaths expands directories into the dataset files they contain.
	ResolvePaths(ctx context.Context, paths []m.Path) ([]m.Path, error)

	// LoadSites decodes every site of the given dataset files, in file order.
	LoadSites(ctx context.Context, paths []m.Path) ([]m.Site, error)
}

// LocalDatasetStore reads YAML and JSON dataset files from the local disk.
type LocalDatasetStore struct{}

// NewLocalDatasetStore constructs a LocalDatasetStore.
func NewLocalDatasetStore() *LocalDatasetStore {
	return &LocalDatasetStore{}
}

// ResolvePaths expands directories (non-recursively) into their dataset files.
func (s *LocalDatasetStore) ResolvePaths(ctx context.Context, paths []m.Path) ([]m.Path, error) {
	var files []m.Path

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(string(p))
		if err != nil {
			return nil, fmt.Errorf("stat dataset %s: %w", p, err)
		}

		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		entries, err := os.ReadDir(string(p))
		if err != nil {
			return nil, fmt.Errorf("read dataset dir %s: %w", p, err)
		}

		var found []m.Path

		for _, entry := range entries {
			if entry.IsDir() || !datasetExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
				continue
			}

			found = append(found, m.Path(filepath.Join(string(p), entry.Name())))
		}

		sort.Slice(found, func(i, j int) bool { return found[i] < found[j] })
		files = append(files, found...)
	}

	if len(files) == 0 {
		return nil, ErrNoDatasets
	}

	return files, nil
}

// LoadSites decodes the sites of every dataset under paths.
func (s *LocalDatasetStore) LoadSites(ctx context.Context, paths []m.Path) ([]m.Site, error) {
	files, err := s.ResolvePaths(ctx, paths)
	if err != nil {
		return nil, err
	}

	var sites []m.Site

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		dataset, err := s.loadFile(file)
		if err != nil {
			return nil, err
		}

		slog.Debug("loaded dataset", "path", file, "sites", len(dataset.Sites))
		sites = append(sites, dataset.Sites...)
	}

	return sites, nil
}

func (s *LocalDatasetStore) loadFile(path m.Path) (m.Dataset, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return m.Dataset{}, fmt.Errorf("open dataset %s: %w", path, err)
	}

	defer func() {
		if err := f.Close(); err != nil {
			slog.Error("failed to close dataset", "path", path, "error", err)
		}
	}()

	dataset, err := DecodeDataset(f)
	if err != nil {
		return m.Dataset{}, fmt.Errorf("decode dataset %s: %w", path, err)
	}

	return dataset, nil
}

// DecodeDataset decodes a YAML or JSON dataset document.
func DecodeDataset(r io.Reader) (m.Dataset, error) {
	var dataset m.Dataset

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&dataset); err != nil {
		if errors.Is(err, io.EOF) {
			return m.Dataset{}, nil
		}

		return m.Dataset{}, err
	}

	for i, site := range dataset.Sites {
		if strings.TrimSpace(site.Origin) == "" {
			return m.Dataset{}, fmt.Errorf("site %d (%s): missing origin", i, site.Name)
		}
	}

	return dataset, nil
}
