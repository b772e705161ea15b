package models

import "time"

// Completion records that one instance of a recurring task was completed on
// Date. Absence of a record means the instance is incomplete.
type Completion struct {
	ID          string    `json:"id" yaml:"id"`
	TaskID      string    `json:"task_id" yaml:"task_id"`
	Owner       string    `json:"owner" yaml:"owner"`
	Date        string    `json:"date" yaml:"date"` // YYYY-MM-DD instance date
	CompletedAt time.Time `json:"completed_at" yaml:"completed_at"`
}

// TaskInstance is a task as it appears on one date, with Completed and
// CompletedAt resolved for that date.
type TaskInstance struct {
	Task `yaml:",inline"`
	Date string `json:"date" yaml:"date"`
}
