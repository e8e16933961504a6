package model

import "time"

// RawMatch is a single (timetable cell, enrolled course) hit produced by
// the matcher. Duplicates are possible and resolved by the assembler.
type RawMatch struct {
	Date     time.Time
	Day      string
	Session  string
	Subject  string
	Division string
	CellText string
}

// ScheduleEntry is one row of the final personalized schedule.
type ScheduleEntry struct {
	Date        time.Time
	DisplayDate string // "02 Jan", empty when Date is unknown
	Day         string // abbreviated to three letters
	Session     string
	Subject     string
	Division    string
	Faculty     string
	Venue       string
	StartTime   *time.Time // derived from Session, nil when unparseable
	Today       bool
}

// ScheduleCSVRow is the exported spreadsheet shape of a ScheduleEntry.
type ScheduleCSVRow struct {
	Date    string `csv:"Date"`
	Day     string `csv:"Day"`
	Session string `csv:"Session"`
	Subject string `csv:"Subject"`
	Div     string `csv:"Div"`
	Faculty string `csv:"Faculty"`
	Venue   string `csv:"Venue"`
}

// ExportDateLayout is the date format used in exported schedules.
const ExportDateLayout = "2006-01-02"

// CSVRow converts a schedule entry into its exported form.
func (e *ScheduleEntry) CSVRow() *ScheduleCSVRow {
	date := ""
	if !e.Date.IsZero() {
		date = e.Date.Format(ExportDateLayout)
	}
	return &ScheduleCSVRow{
		Date:    date,
		Day:     e.Day,
		Session: e.Session,
		Subject: e.Subject,
		Div:     e.Division,
		Faculty: e.Faculty,
		Venue:   e.Venue,
	}
}
