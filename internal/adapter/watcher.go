package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	m "framecheck.dev/pkg/framecheck/internal/model"
)

// debounceDefault is the quiet period after the last file event before a
// change is reported. Editors often write a file in several steps.
const debounceDefault = 200 * time.Millisecond

// DatasetWatcher reports changes to dataset files.
type DatasetWatcher interface {
	// Watch calls onChange after dataset files under paths change. It blocks
	// until ctx is cancelled.
	Watch(ctx context.Context, paths []m.Path, onChange func()) error
}

// FSDatasetWatcher watches dataset files and directories with fsnotify.
type FSDatasetWatcher struct {
	debounce time.Duration
}

// NewFSDatasetWatcher constructs a watcher with the default debounce.
func NewFSDatasetWatcher() *FSDatasetWatcher {
	return &FSDatasetWatcher{debounce: debounceDefault}
}

// Watch blocks until ctx is cancelled, calling onChange once per burst of
// write, create, rename or remove events on a dataset file.
func (w *FSDatasetWatcher) Watch(ctx context.Context, paths []m.Path, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Files are watched through their directory so atomic renames are seen.
	watched := map[string]bool{}
	files := map[string]bool{}
	dirs := map[string]bool{}

	for _, p := range paths {
		dir := filepath.Clean(string(p))

		info, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}

		if info.IsDir() {
			dirs[dir] = true
		} else {
			files[dir] = true
			dir = filepath.Dir(dir)
		}

		if watched[dir] {
			continue
		}

		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}

		watched[dir] = true
	}

	relevant := func(name string) bool {
		name = filepath.Clean(name)
		if files[name] {
			return true
		}

		return dirs[filepath.Dir(name)] && datasetExtensions[strings.ToLower(filepath.Ext(name))]
	}

	// Stopped until the first relevant event; a stopped timer never delivers.
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Op == fsnotify.Chmod || !relevant(event.Name) {
				continue
			}

			slog.Debug("dataset changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Warn("dataset watcher error", "error", err)

		case <-timer.C:
			onChange()
		}
	}
}
