package model

import "time"

// SessionCell is one timetable grid cell: the session column label (a
// free-text time range such as "10:00-11:00 AM") and the cell text, which
// may reference zero or more courses.
type SessionCell struct {
	Session string
	Text    string
}

// TimetableRow is one row of the weekly timetable grid. Cells preserve the
// column order of the source sheet. Date is zero when the source value
// could not be parsed.
type TimetableRow struct {
	Date  time.Time
	Day   string
	Cells []SessionCell
}
