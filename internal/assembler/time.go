package assembler

import (
	"regexp"
	"strings"
	"time"
)

// Session labels come in two shapes: a range such as "10:00-11:00 AM"
// where the meridiem trails the whole range, and a single clock token such
// as "2 PM" or "9.15am". For a range the class starts at the leading
// bound, so that bound is extracted and the trailing meridiem applies to
// it.
var (
	rangeRE = regexp.MustCompile(`(?i)(\d{1,2}[:.]?\d{0,2})\s*(?:-|–|to)\s*\d{1,2}[:.]?\d{0,2}\s*([AP]M)`)
	tokenRE = regexp.MustCompile(`(?i)(\d{1,2}[:.]?\d{0,2}\s*[AP]M)`)
)

// ExtractStartTime derives a time of day from a free-text session label.
// The second return value is false when no clock token is present or the
// token does not parse; such entries sort last within their date.
func ExtractStartTime(session string) (time.Time, bool) {
	session = strings.TrimSpace(strings.ReplaceAll(session, "\n", " "))

	var token string
	if m := rangeRE.FindStringSubmatch(session); m != nil {
		token = m[1] + m[2]
	} else if m := tokenRE.FindString(session); m != "" {
		token = m
	} else {
		return time.Time{}, false
	}

	token = strings.ToUpper(strings.ReplaceAll(token, ".", ":"))
	token = strings.ReplaceAll(token, " ", "")
	if t, err := time.Parse("3:04PM", token); err == nil {
		return t, true
	}
	if t, err := time.Parse("3PM", token); err == nil {
		return t, true
	}
	return time.Time{}, false
}
