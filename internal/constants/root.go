package constants

import "time"

// RecurrenceType is the closed set of repetition rules a task can carry.
type RecurrenceType string

const (
	AppName            = "cadence"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/cadence/config.yaml"
	DefaultDatabase    = "~/.config/cadence/cadence.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// KeyringDatabase is the config value that defers the database DSN to the OS keyring
	KeyringDatabase = "keyring"

	// Recurrence constants
	RecurrenceNone      RecurrenceType = "none"
	RecurrenceDaily     RecurrenceType = "daily"
	RecurrenceWeekly    RecurrenceType = "weekly"
	RecurrenceBiweekly  RecurrenceType = "biweekly"
	RecurrenceMonthly   RecurrenceType = "monthly"
	RecurrenceQuarterly RecurrenceType = "quarterly"

	// Reminder defaults
	DefaultRemindAt = "08:00"
	DefaultTimezone = "Local"

	// MaxRangeDays bounds a single range query.
	MaxRangeDays = 366

	ShutdownTimeout = 5 * time.Second
)

// Recurrences lists every valid recurrence in display order.
var Recurrences = []RecurrenceType{
	RecurrenceNone,
	RecurrenceDaily,
	RecurrenceWeekly,
	RecurrenceBiweekly,
	RecurrenceMonthly,
	RecurrenceQuarterly,
}

// Valid reports whether r belongs to the closed recurrence set.
func (r RecurrenceType) Valid() bool {
	for _, known := range Recurrences {
		if r == known {
			return true
		}
	}
	return false
}

// IsRecurring reports whether completion is tracked per instance date.
func (r RecurrenceType) IsRecurring() bool {
	return r != RecurrenceNone
}
