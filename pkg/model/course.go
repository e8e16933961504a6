package model

import "strings"

// CourseIdentifier is a course code plus an optional division (parallel
// section) code. It is derived from a roster file name stem such as
// "CS101_A" (subject CS101, division A) or "MGT205" (no division).
type CourseIdentifier struct {
	Subject  string
	Division string
}

// ParseCourseIdentifier decodes a roster file name stem into a
// CourseIdentifier. Everything before the first underscore is the subject
// code, everything after it is the division code.
func ParseCourseIdentifier(stem string) CourseIdentifier {
	subject, division, _ := strings.Cut(stem, "_")
	return CourseIdentifier{Subject: subject, Division: division}
}

// String renders the identifier the way timetable cells reference it,
// e.g. "CS101(A)" or plain "CS101" when no division is known.
func (c CourseIdentifier) String() string {
	if c.Division == "" {
		return c.Subject
	}
	return c.Subject + "(" + c.Division + ")"
}
