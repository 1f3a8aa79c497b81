package project

import "time"

// DateLayout is the calendar-date format used for task dates at every boundary.
const DateLayout = time.DateOnly

// Task is a named unit of work spanning [Start, Finish] in one stage.
// Color is the stage color at the moment the task was created.
type Task struct {
	Name   string
	Start  time.Time
	Finish time.Time
	Stage  string
	Color  string
}

// Day truncates t to midnight UTC of its calendar date.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string into a UTC date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
