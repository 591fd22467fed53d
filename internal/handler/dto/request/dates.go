package request

import (
	"time"

	"charter-booking/internal/handler/httperr"
)

const DateLayout = "2006-01-02"

const (
	msgStartDatePast  = "Start date must be today or in the future"
	msgEndBeforeStart = "End date must be after or equal to start date"
)

// ParseDate accepts a calendar date or a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

func invalidDate(field string) httperr.FieldError {
	return httperr.FieldError{Field: field, Message: field + " must be a date (YYYY-MM-DD)"}
}

// resolveStay parses a start/end pair, requiring start on or after today
// and end not before start. An empty end stays nil.
func resolveStay(start, end string, today time.Time) (time.Time, *time.Time, []httperr.FieldError) {
	var problems []httperr.FieldError

	s, ok := ParseDate(start)
	if !ok {
		return time.Time{}, nil, append(problems, invalidDate("startDate"))
	}
	if s.Before(today) {
		problems = append(problems, httperr.FieldError{Field: "startDate", Message: msgStartDatePast})
	}

	var e *time.Time
	if end != "" {
		parsed, ok := ParseDate(end)
		switch {
		case !ok:
			problems = append(problems, invalidDate("endDate"))
		case parsed.Before(s):
			problems = append(problems, httperr.FieldError{Field: "endDate", Message: msgEndBeforeStart})
		default:
			e = &parsed
		}
	}
	return s, e, problems
}
