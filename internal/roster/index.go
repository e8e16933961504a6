// Package roster indexes course enrollment lists. Instead of rescanning
// every roster file per lookup, the index is built once from the loaded
// roster entries and answers roll-number queries from a reverse map.
package roster

import (
	"errors"

	"github.com/acadtools/timetable-viewer/pkg/model"
)

// ErrNotEnrolled is returned when a roll number appears in no roster.
var ErrNotEnrolled = errors.New("roll number not found in any roster")

// Index holds the forward (course -> rolls) and reverse (roll -> courses)
// enrollment maps.
type Index struct {
	courses []model.CourseIdentifier
	rolls   map[model.CourseIdentifier]map[string]bool
	byRoll  map[string][]model.CourseIdentifier
}

// BuildIndex constructs the enrollment index. Course order follows the
// input order of the roster entries, which the loader derives from the
// sorted directory listing, so results are deterministic for a fixed
// directory state.
func BuildIndex(entries []*model.RosterEntry) *Index {
	idx := &Index{
		rolls:  make(map[model.CourseIdentifier]map[string]bool, len(entries)),
		byRoll: make(map[string][]model.CourseIdentifier),
	}
	for _, e := range entries {
		if _, ok := idx.rolls[e.Course]; !ok {
			idx.courses = append(idx.courses, e.Course)
			idx.rolls[e.Course] = make(map[string]bool, len(e.Rolls))
		}
		set := idx.rolls[e.Course]
		for _, roll := range e.Rolls {
			if set[roll] {
				continue
			}
			set[roll] = true
			idx.byRoll[roll] = append(idx.byRoll[roll], e.Course)
		}
	}
	return idx
}

// Resolve returns every course the roll number is enrolled in, in roster
// listing order. ErrNotEnrolled is returned for unknown roll numbers.
func (idx *Index) Resolve(rollNumber string) ([]model.CourseIdentifier, error) {
	courses, ok := idx.byRoll[rollNumber]
	if !ok || len(courses) == 0 {
		return nil, ErrNotEnrolled
	}
	out := make([]model.CourseIdentifier, len(courses))
	copy(out, courses)
	return out, nil
}

// Courses lists every indexed course identifier in listing order.
func (idx *Index) Courses() []model.CourseIdentifier {
	out := make([]model.CourseIdentifier, len(idx.courses))
	copy(out, idx.courses)
	return out
}

// Enrolled reports whether the roll number appears in the given course.
func (idx *Index) Enrolled(course model.CourseIdentifier, rollNumber string) bool {
	return idx.rolls[course][rollNumber]
}
