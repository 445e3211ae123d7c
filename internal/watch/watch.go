package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/thrive-belize/deckbuild/internal/pipeline"
)

// debounce collapses a burst of filesystem events into one rebuild.
const debounce = 500 * time.Millisecond

// Rebuild blocks, re-running the pipeline whenever the project's audio
// inputs or the summary override data change. Only input directories are
// watched; the pipeline's own outputs (transcripts, summaries, deck data)
// would otherwise retrigger it. Returns when ctx is cancelled.
func Rebuild(ctx context.Context, cfg pipeline.Config) error {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	dirs := []string{filepath.Join(pipeline.GeneratedDir(cfg.ProjectRoot), "audio")}
	if cfg.SummaryDir != "" {
		dirs = append(dirs, cfg.SummaryDir)
	}
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		logf("watching: %s", dir)
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return errors.New("watcher events channel closed")
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logf("change detected: %s", ev.Name)
			pending = time.After(debounce)

		case err, ok := <-w.Errors:
			if !ok {
				return errors.New("watcher errors channel closed")
			}
			logf("watch error: %v", err)

		case <-pending:
			pending = nil
			if err := pipeline.Run(ctx, cfg); err != nil {
				logf("rebuild failed: %v", err)
			}
		}
	}
}
