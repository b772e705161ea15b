package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/cadence/internal/constants"
)

// ParseDate parses a date string (YYYY-MM-DD) as midnight UTC.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(constants.DateFormat, dateStr)
}

// FormatDate formats t's calendar date in the standard format.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseTime parses a time string in the standard format (HH:MM).
func ParseTime(timeStr string) (time.Time, error) {
	return time.Parse(constants.TimeFormat, timeStr)
}

// AddDays shifts a YYYY-MM-DD date by n calendar days.
func AddDays(dateStr string, n int) (string, error) {
	d, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return FormatDate(d.AddDate(0, 0, n)), nil
}

// DatesInRange returns every calendar date from start to end inclusive.
// An end before start yields an empty slice.
func DatesInRange(startDate, endDate string) ([]string, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", startDate, err)
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", endDate, err)
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, FormatDate(d))
	}
	return dates, nil
}

// WeekStart returns the Monday of the week containing dateStr.
func WeekStart(dateStr string) (string, error) {
	d, err := ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	offset := (int(d.Weekday()) + 6) % 7 // days since Monday
	return FormatDate(d.AddDate(0, 0, -offset)), nil
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}
