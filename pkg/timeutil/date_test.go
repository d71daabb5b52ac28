package timeutil

import (
	"testing"
	"time"
)

// Due dates are stored as plain days and parse to UTC midnight, so the
// label must come out "due today" on that day no matter which zone the
// process runs in.
func TestDueLabelAcrossTimezones(t *testing.T) {
	due := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

	for _, name := range []string{"America/New_York", "UTC", "Asia/Tokyo"} {
		loc, err := time.LoadLocation(name)
		if err != nil {
			t.Fatalf("LoadLocation(%s) failed: %v", name, err)
		}
		restore := time.Local
		time.Local = loc
		now := time.Date(2026, time.August, 30, 12, 0, 0, 0, loc)
		got := DueLabel(due, now)
		time.Local = restore

		if got != "due today" {
			t.Fatalf("in %s: DueLabel = %q, want %q", name, got, "due today")
		}
	}
}

func TestDueLabel(t *testing.T) {
	now := time.Date(2026, time.May, 4, 12, 0, 0, 0, time.Local)
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	cases := []struct {
		due  time.Time
		want string
	}{
		{time.Time{}, ""},
		{day(-1), "overdue"},
		{day(0), "due today"},
		{day(1), "due tomorrow"},
		{day(10), "due 2026-05-14"},
	}
	for _, tc := range cases {
		if got := DueLabel(tc.due, now); got != tc.want {
			t.Fatalf("DueLabel(%v) = %q, want %q", tc.due, got, tc.want)
		}
	}
}
