package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/acadtools/timetable-viewer/internal/csvio"
	"github.com/acadtools/timetable-viewer/internal/roster"
	"github.com/acadtools/timetable-viewer/internal/schedule"
)

type entryJSON struct {
	Date        string `json:"date,omitempty"`
	DisplayDate string `json:"displayDate,omitempty"`
	Day         string `json:"day"`
	Session     string `json:"session"`
	Subject     string `json:"subject"`
	Div         string `json:"div,omitempty"`
	Faculty     string `json:"faculty,omitempty"`
	Venue       string `json:"venue,omitempty"`
	Today       bool   `json:"today"`
}

func (s *Server) handleGetSchedule(ctx *gin.Context) {
	res, err := s.lookup(ctx)
	if err != nil {
		return
	}

	courses := make([]string, 0, len(res.Courses))
	for _, c := range res.Courses {
		courses = append(courses, c.String())
	}

	entries := make([]entryJSON, 0, len(res.Entries))
	for _, e := range res.Entries {
		out := entryJSON{
			DisplayDate: e.DisplayDate,
			Day:         e.Day,
			Session:     e.Session,
			Subject:     e.Subject,
			Div:         e.Division,
			Faculty:     e.Faculty,
			Venue:       e.Venue,
			Today:       e.Today,
		}
		if !e.Date.IsZero() {
			out.Date = e.Date.Format(time.DateOnly)
		}
		entries = append(entries, out)
	}

	body := gin.H{
		"roll":    res.Roll,
		"courses": courses,
		"entries": entries,
	}
	if len(entries) == 0 {
		body["message"] = "no matching classes found in the current weekly timetable"
	}
	ctx.JSON(http.StatusOK, body)
}

func (s *Server) handleExportSchedule(ctx *gin.Context) {
	res, err := s.lookup(ctx)
	if err != nil {
		return
	}

	data, err := csvio.ExportScheduleString(res.Entries)
	if err != nil {
		s.logger.Error("rendering export", zap.String("roll", res.Roll), zap.Error(err))
		ctx.Status(http.StatusInternalServerError)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="`+csvio.ExportFileName(res.Roll)+`"`)
	ctx.Data(http.StatusOK, "text/csv", []byte(data))
}

// lookup runs the schedule lookup for the :roll parameter and writes the
// error response itself; callers bail out on non-nil error.
func (s *Server) lookup(ctx *gin.Context) (*schedule.Result, error) {
	roll := ctx.Param("roll")
	res, err := s.svc.Lookup(roll)
	switch {
	case err == nil:
		return res, nil
	case errors.Is(err, schedule.ErrEmptyRollNumber):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "roll number is required"})
	case errors.Is(err, roster.ErrNotEnrolled):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no courses found for this roll number"})
	default:
		s.logger.Error("lookup failed", zap.String("roll", roll), zap.Error(err))
		ctx.Status(http.StatusInternalServerError)
	}
	return nil, err
}
