package model

// RosterEntry holds the enrollment list loaded from a single roster file.
type RosterEntry struct {
	Course CourseIdentifier
	Rolls  []string
}
