// Package timeutil renders due dates for the printers. Due dates have no
// time component, so comparisons work on calendar days, not instants.
package timeutil

import "time"

// DueLabel renders a human label for a due date relative to now. The due
// value carries a plain calendar day, so its date fields are read as
// stored; converting it to a local instant first can shift it across
// midnight.
func DueLabel(due, now time.Time) string {
	if due.IsZero() {
		return ""
	}
	dy, dm, dd := due.Date()
	day := time.Date(dy, dm, dd, 0, 0, 0, 0, time.UTC)
	ny, nm, nd := now.Local().Date()
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	switch {
	case day.Before(today):
		return "overdue"
	case day.Equal(today):
		return "due today"
	case day.Equal(today.AddDate(0, 0, 1)):
		return "due tomorrow"
	default:
		return "due " + day.Format("2006-01-02")
	}
}
