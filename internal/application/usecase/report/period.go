// Package report contains the financial analytics engine.
package report

import "time"

// MonthBounds returns the first and last instant of a calendar month in UTC.
// The end bound is the last second of the month so that inclusive date
// filters capture every transaction of the month.
func MonthBounds(year, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}
