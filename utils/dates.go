package utils

import "time"

const DateLayout = "2006-01-02"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// WeekStart returns the Monday at or before t, in UTC.
func WeekStart(t time.Time) time.Time {
	day := BeginningOfDay(t.UTC())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// WeekStartString formats WeekStart as YYYY-MM-DD.
func WeekStartString(t time.Time) string {
	return WeekStart(t).Format(DateLayout)
}

// WeekEndString returns the Sunday closing a week that starts on weekStart.
// Unparseable input is returned unchanged.
func WeekEndString(weekStart string) string {
	start, err := time.Parse(DateLayout, weekStart)
	if err != nil {
		return weekStart
	}
	return start.AddDate(0, 0, 6).Format(DateLayout)
}

// IsDate reports whether s is a YYYY-MM-DD calendar date.
func IsDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
