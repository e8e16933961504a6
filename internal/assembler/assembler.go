// Package assembler turns raw timetable matches into the final ordered
// schedule: it joins faculty and venue data from the master course table,
// collapses duplicate matches, derives sortable start times from session
// labels, and sorts chronologically.
package assembler

import (
	"sort"
	"time"

	"github.com/acadtools/timetable-viewer/pkg/model"
)

// DisplayDateLayout is the human-facing date format, e.g. "03 Nov".
const DisplayDateLayout = "02 Jan"

type dedupKey struct {
	date     time.Time
	day      string
	session  string
	subject  string
	division string
}

// Assemble builds the ordered schedule from raw matches. Subject codes
// missing from the master table keep empty faculty and venue fields. The
// now argument fixes the date used for the Today flag so rendering and
// tests are deterministic.
func Assemble(matches []model.RawMatch, master []*model.CourseMasterEntry, now time.Time) []*model.ScheduleEntry {
	// First row wins for duplicate abbreviations.
	byAbbrev := make(map[string]*model.CourseMasterEntry, len(master))
	for _, m := range master {
		if _, ok := byAbbrev[m.Abbreviation]; !ok {
			byAbbrev[m.Abbreviation] = m
		}
	}

	seen := make(map[dedupKey]bool, len(matches))
	entries := make([]*model.ScheduleEntry, 0, len(matches))
	for _, m := range matches {
		key := dedupKey{m.Date, m.Day, m.Session, m.Subject, m.Division}
		if seen[key] {
			continue
		}
		seen[key] = true

		entry := &model.ScheduleEntry{
			Date:     m.Date,
			Day:      abbreviateDay(m.Day),
			Session:  m.Session,
			Subject:  m.Subject,
			Division: m.Division,
		}
		if info, ok := byAbbrev[m.Subject]; ok {
			entry.Faculty = info.Faculty
			entry.Venue = info.Venue
		}
		if start, ok := ExtractStartTime(m.Session); ok {
			entry.StartTime = &start
		}
		if !m.Date.IsZero() {
			entry.DisplayDate = m.Date.Format(DisplayDateLayout)
			entry.Today = m.Date.Year() == now.Year() && m.Date.YearDay() == now.YearDay()
		}
		entries = append(entries, entry)
	}

	// Stable sort by date, then start time. Entries with an unknown date
	// sort after all dated entries, and entries with no extractable start
	// time sort last within their date.
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := entries[i].Date, entries[j].Date
		if !di.Equal(dj) {
			switch {
			case di.IsZero():
				return false
			case dj.IsZero():
				return true
			default:
				return di.Before(dj)
			}
		}
		si, sj := entries[i].StartTime, entries[j].StartTime
		switch {
		case si == nil:
			return false
		case sj == nil:
			return true
		default:
			return si.Before(*sj)
		}
	})
	return entries
}

// abbreviateDay truncates a day name to its first three characters.
func abbreviateDay(day string) string {
	runes := []rune(day)
	if len(runes) <= 3 {
		return day
	}
	return string(runes[:3])
}
