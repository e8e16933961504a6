// Package schedule wires the lookup pipeline: resolve enrolled courses
// for a roll number, match them against the weekly timetable grid, and
// assemble the ordered personal schedule.
package schedule

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/acadtools/timetable-viewer/internal/assembler"
	"github.com/acadtools/timetable-viewer/internal/matcher"
	"github.com/acadtools/timetable-viewer/internal/store"
	"github.com/acadtools/timetable-viewer/pkg/model"
)

// ErrEmptyRollNumber is returned for blank lookups.
var ErrEmptyRollNumber = errors.New("empty roll number")

// Result is one complete lookup response. Entries may be empty even when
// Courses is not: the student is enrolled but none of the courses appear
// in the current weekly timetable.
type Result struct {
	Roll    string
	Courses []model.CourseIdentifier
	Entries []*model.ScheduleEntry
}

// Service performs lookups against the cached reference datasets.
type Service struct {
	store  *store.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a lookup service.
func NewService(st *store.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: st, logger: logger, now: time.Now}
}

// Lookup resolves the personal schedule for one roll number. It returns
// roster.ErrNotEnrolled when the roll number appears in no roster.
func (s *Service) Lookup(rollNumber string) (*Result, error) {
	roll := strings.TrimSpace(rollNumber)
	if roll == "" {
		return nil, ErrEmptyRollNumber
	}

	idx, master, timetable, err := s.store.Datasets()
	if err != nil {
		return nil, err
	}

	courses, err := idx.Resolve(roll)
	if err != nil {
		return nil, err
	}

	matches, err := matcher.FindMatches(courses, timetable)
	if err != nil {
		return nil, err
	}

	entries := assembler.Assemble(matches, master, s.now())
	s.logger.Info("lookup complete",
		zap.String("roll", roll),
		zap.Int("courses", len(courses)),
		zap.Int("entries", len(entries)))
	return &Result{Roll: roll, Courses: courses, Entries: entries}, nil
}
