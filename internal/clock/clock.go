// Package clock provides the time source used to resolve "now" and "today".
package clock

import (
	"time"

	"github.com/julianstephens/cadence/internal/constants"
)

// Clock reports the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock in a fixed location.
type System struct {
	Location *time.Location
}

func (s System) Now() time.Time {
	if s.Location == nil {
		return time.Now()
	}
	return time.Now().In(s.Location)
}

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Today returns c's current calendar date (YYYY-MM-DD).
func Today(c Clock) string {
	return c.Now().Format(constants.DateFormat)
}
