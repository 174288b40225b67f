package xtime

import (
	"time"
)

// Day truncates t to midnight in its own location. Event dates are compared at
// day granularity; comparing full timestamps misclassifies same-day events.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Today returns the current day truncated to midnight.
func Today() time.Time {
	return Day(time.Now())
}
