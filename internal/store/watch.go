package store

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch invalidates the store whenever a reference file changes on disk,
// so long-running processes pick up roster or timetable edits without a
// restart. It blocks until ctx is cancelled.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watching the directories rather than the files survives the
	// rename-and-replace pattern spreadsheet editors use on save.
	for _, path := range s.watchTargets() {
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			s.logger.Debug("reference file changed",
				zap.String("file", event.Name),
				zap.String("op", event.Op.String()))
			s.Invalidate()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watcher error", zap.Error(err))
		}
	}
}

func (s *Store) watchTargets() []string {
	targets := []string{s.opts.RosterDir}
	seen := map[string]bool{s.opts.RosterDir: true}
	for _, file := range []string{s.opts.MasterFile, s.opts.TimetableFile} {
		dir := filepath.Dir(file)
		if !seen[dir] {
			seen[dir] = true
			targets = append(targets, dir)
		}
	}
	return targets
}
