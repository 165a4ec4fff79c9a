// utils/dates.go
package utils

import "time"

const (
	DateLayout      = "2006-01-02"
	TimeLayout      = "15:04"
	TimestampLayout = "2006-01-02 15:04:05"
)

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func DaysBetween(start, end time.Time) int {
	start = BeginningOfDay(start)
	end = BeginningOfDay(end)
	return int(end.Sub(start).Hours() / 24)
}

// LastNDates returns the ISO dates of the n days up to and including ref,
// ascending
func LastNDates(ref time.Time, n int) []string {
	dates := make([]string, 0, n)
	day := BeginningOfDay(ref)
	for i := n - 1; i >= 0; i-- {
		dates = append(dates, day.AddDate(0, 0, -i).Format(DateLayout))
	}
	return dates
}
