package model

// CourseMasterEntry is one row of the master course table. Abbreviation
// matches the subject code used in roster file names and timetable cells.
// Abbreviations are not guaranteed unique; lookups take the first row.
type CourseMasterEntry struct {
	Abbreviation string `csv:"Abbre."`
	Faculty      string `csv:"Faculty"`
	Venue        string `csv:"Venue"`
}
