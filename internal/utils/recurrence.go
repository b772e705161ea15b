package utils

import (
	"time"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/models"
)

// IsDueOn reports whether a task anchored on anchorDate with the given
// recurrence has an instance on targetDate. Dates are YYYY-MM-DD calendar
// dates compared in UTC. The function never fails: unknown recurrences and
// unparseable dates evaluate to false.
//
// Only biweekly and quarterly are bounded by the anchor; daily, weekly and
// monthly also match dates before it.
func IsDueOn(anchorDate string, recurrence constants.RecurrenceType, targetDate string) bool {
	if recurrence == constants.RecurrenceNone {
		return anchorDate == targetDate
	}

	anchor, err := ParseDate(anchorDate)
	if err != nil {
		return false
	}
	target, err := ParseDate(targetDate)
	if err != nil {
		return false
	}

	switch recurrence {
	case constants.RecurrenceDaily:
		return true
	case constants.RecurrenceWeekly:
		return anchor.Weekday() == target.Weekday()
	case constants.RecurrenceBiweekly:
		if anchor.Weekday() != target.Weekday() {
			return false
		}
		weeks := floorDiv(DaysBetween(anchor, target), 7)
		return weeks >= 0 && weeks%2 == 0
	case constants.RecurrenceMonthly:
		// Months without the anchor's day number are skipped, never clamped
		return anchor.Day() == target.Day()
	case constants.RecurrenceQuarterly:
		if anchor.Day() != target.Day() {
			return false
		}
		months := (target.Year()-anchor.Year())*12 + int(target.Month()-anchor.Month())
		return months >= 0 && months%3 == 0
	default:
		return false
	}
}

// TaskDueOn reports whether task has an instance on date.
func TaskDueOn(task models.Task, date string) bool {
	return IsDueOn(task.DueDate, task.Recurrence, date)
}

// DaysBetween returns the whole number of calendar days from a to b.
// Both values are expected to be UTC midnights as returned by ParseDate.
// Unix seconds are used because time.Duration saturates past ~292 years.
func DaysBetween(a, b time.Time) int {
	return int((b.Unix() - a.Unix()) / 86400)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
