// utils/dates.go
package utils

import "time"

// MonthStart returns midnight on the first day of t's month.
func MonthStart(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// MonthPrefix returns the YYYY-MM form a month bucket matches records
// against (string-prefix match on the stored ISO dates).
func MonthPrefix(t time.Time) string {
	return t.Format("2006-01")
}
