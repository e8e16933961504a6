// Package matcher locates course references inside free-text timetable
// cells. Two rules exist: division-qualified references such as "CS101(A)"
// or "CS101('A)" with a typographic apostrophe, and unqualified references
// such as "CS101" with no trailing parenthesis. Both anchor the subject
// code on a token boundary so "CS1" never matches inside "CS10".
package matcher

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/acadtools/timetable-viewer/pkg/model"
)

// Pattern is a compiled matching rule for one course identifier.
type Pattern struct {
	course    model.CourseIdentifier
	re        *regexp.Regexp
	qualified bool
}

// Compile builds the matching rule for a course identifier.
func Compile(course model.CourseIdentifier) (*Pattern, error) {
	if course.Subject == "" {
		return nil, fmt.Errorf("compile pattern: empty subject code")
	}
	var re *regexp.Regexp
	var err error
	if course.Division != "" {
		// e.g. CS101(A), CS101('A), CS101(’ A)
		re, err = regexp.Compile(`\b` + regexp.QuoteMeta(course.Subject) +
			`\(['’]?\s*` + regexp.QuoteMeta(course.Division) + `\)`)
	} else {
		// Trailing parenthesis and token boundary are checked in Match;
		// RE2 has no lookahead.
		re, err = regexp.Compile(`\b` + regexp.QuoteMeta(course.Subject))
	}
	if err != nil {
		return nil, fmt.Errorf("compile pattern for %s: %w", course, err)
	}
	return &Pattern{course: course, re: re, qualified: course.Division != ""}, nil
}

// Course returns the identifier this pattern was compiled for.
func (p *Pattern) Course() model.CourseIdentifier { return p.course }

// Match reports whether the cell text references the pattern's course.
func (p *Pattern) Match(cell string) bool {
	if p.qualified {
		return p.re.MatchString(cell)
	}
	// Unqualified rule: the subject code must end on a token boundary and
	// must not be immediately followed by "(", which would indicate a
	// division-qualified reference.
	for _, loc := range p.re.FindAllStringIndex(cell, -1) {
		if loc[1] >= len(cell) {
			return true
		}
		next := cell[loc[1]]
		if next == '(' || isWordByte(next) {
			continue
		}
		return true
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

// FindMatches scans every timetable cell against every enrolled course and
// returns one RawMatch per hit, in row, column, course order. A cell
// listing several enrolled courses yields several matches. An empty result
// means no classes were found, not an error.
func FindMatches(enrolled []model.CourseIdentifier, timetable []model.TimetableRow) ([]model.RawMatch, error) {
	patterns := make([]*Pattern, 0, len(enrolled))
	for _, course := range enrolled {
		p, err := Compile(course)
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, p)
	}

	var matches []model.RawMatch
	for _, row := range timetable {
		for _, cell := range row.Cells {
			for _, p := range patterns {
				if !p.Match(cell.Text) {
					continue
				}
				matches = append(matches, model.RawMatch{
					Date:     row.Date,
					Day:      row.Day,
					Session:  cleanLabel(cell.Session),
					Subject:  p.course.Subject,
					Division: p.course.Division,
					CellText: cell.Text,
				})
			}
		}
	}
	return matches, nil
}

// cleanLabel flattens embedded newlines in a session column label.
func cleanLabel(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
}
