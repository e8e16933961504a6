// Package store caches the three reference datasets in memory, keyed by
// their source paths. Loads are read-through: each access revalidates
// cheaply against file modification times and reloads only when a source
// changed. Invalidate drops everything and is also wired to filesystem
// notifications by Watch.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/acadtools/timetable-viewer/internal/csvio"
	"github.com/acadtools/timetable-viewer/internal/roster"
	"github.com/acadtools/timetable-viewer/pkg/model"
)

// Options locate the reference datasets.
type Options struct {
	RosterDir     string
	MasterFile    string
	TimetableFile string
	RollHeader    string
	Delimiter     rune
}

// Store is safe for concurrent readers; reloads are serialized.
type Store struct {
	opts   Options
	logger *zap.Logger

	mu        sync.RWMutex
	index     *roster.Index
	master    []*model.CourseMasterEntry
	timetable []model.TimetableRow
	loaded    bool
	stamps    map[string]time.Time
}

// New creates a store. Nothing is loaded until first access.
func New(opts Options, logger *zap.Logger) *Store {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{opts: opts, logger: logger, stamps: map[string]time.Time{}}
}

// Datasets returns the roster index, master course table and weekly
// timetable, loading or reloading them as needed.
func (s *Store) Datasets() (*roster.Index, []*model.CourseMasterEntry, []model.TimetableRow, error) {
	s.mu.RLock()
	if s.loaded && !s.stale() {
		idx, master, timetable := s.index, s.master, s.timetable
		s.mu.RUnlock()
		return idx, master, timetable, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded && !s.stale() {
		return s.index, s.master, s.timetable, nil
	}
	if err := s.reload(); err != nil {
		return nil, nil, nil, err
	}
	return s.index, s.master, s.timetable, nil
}

// Invalidate drops the cached datasets; the next access reloads.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = false
	s.logger.Debug("dataset cache invalidated")
}

// reload is called with the write lock held.
func (s *Store) reload() error {
	entries, err := csvio.LoadRosterDir(s.opts.RosterDir, s.opts.RollHeader, s.opts.Delimiter, s.logger)
	if err != nil {
		return fmt.Errorf("loading rosters: %w", err)
	}
	master, err := csvio.LoadMasterCourses(s.opts.MasterFile, s.opts.Delimiter, s.logger)
	if err != nil {
		return fmt.Errorf("loading master courses: %w", err)
	}
	timetable, err := csvio.LoadTimetable(s.opts.TimetableFile, s.opts.Delimiter, s.logger)
	if err != nil {
		return fmt.Errorf("loading timetable: %w", err)
	}

	s.index = roster.BuildIndex(entries)
	s.master = master
	s.timetable = timetable
	s.loaded = true
	s.stamps = map[string]time.Time{
		s.opts.RosterDir:     mtime(s.opts.RosterDir),
		s.opts.MasterFile:    mtime(s.opts.MasterFile),
		s.opts.TimetableFile: mtime(s.opts.TimetableFile),
	}
	// Track individual roster files too; editing one in place does not
	// bump the directory mtime.
	if files, err := os.ReadDir(s.opts.RosterDir); err == nil {
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			path := filepath.Join(s.opts.RosterDir, f.Name())
			s.stamps[path] = mtime(path)
		}
	}
	s.logger.Info("reference datasets loaded",
		zap.Int("rosters", len(entries)),
		zap.Int("masterRows", len(master)),
		zap.Int("timetableRows", len(timetable)))
	return nil
}

// stale reports whether any source file changed since the last load.
// Adding or removing a roster file bumps the directory mtime.
func (s *Store) stale() bool {
	for path, stamp := range s.stamps {
		if !mtime(path).Equal(stamp) {
			return true
		}
	}
	return false
}

func mtime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
