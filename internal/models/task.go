package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/cadence/internal/constants"
)

type Task struct {
	ID          string                   `json:"id" yaml:"id"`
	Owner       string                   `json:"owner" yaml:"owner"`
	Title       string                   `json:"title" yaml:"title"`
	Emoji       string                   `json:"emoji" yaml:"emoji"`
	CategoryID  *string                  `json:"category_id,omitempty" yaml:"category_id,omitempty"`
	DueDate     string                   `json:"due_date" yaml:"due_date"`                     // YYYY-MM-DD anchor date
	DueTime     *string                  `json:"due_time,omitempty" yaml:"due_time,omitempty"` // HH:MM, nil for all-day
	Recurrence  constants.RecurrenceType `json:"recurrence" yaml:"recurrence"`
	Completed   bool                     `json:"completed" yaml:"completed"` // only authoritative for non-recurring tasks
	CompletedAt *time.Time               `json:"completed_at,omitempty" yaml:"completed_at,omitempty"`
	CreatedAt   time.Time                `json:"created_at" yaml:"created_at"`
}

// IsAllDay reports whether the task has no time-of-day component.
func (t Task) IsAllDay() bool {
	return t.DueTime == nil
}

// HasCategory reports whether the task references exactly the given category.
func (t Task) HasCategory(categoryID string) bool {
	return t.CategoryID != nil && *t.CategoryID == categoryID
}

// TaskInput carries the fields supplied when creating a task.
type TaskInput struct {
	Title      string
	Emoji      string
	CategoryID *string
	DueDate    string
	DueTime    *string
	Recurrence constants.RecurrenceType
}

func (in TaskInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	if err := ValidateDate(in.DueDate); err != nil {
		return err
	}
	if in.DueTime != nil {
		if err := ValidateTime(*in.DueTime); err != nil {
			return err
		}
	}
	if !in.Recurrence.Valid() {
		return fmt.Errorf("invalid recurrence %q", in.Recurrence)
	}
	return nil
}

// TaskPatch is a field-level optional update. CategoryID and DueTime may be
// set to nil to clear them.
type TaskPatch struct {
	Title      Optional[string]
	Emoji      Optional[string]
	CategoryID Optional[*string]
	DueDate    Optional[string]
	DueTime    Optional[*string]
	Recurrence Optional[constants.RecurrenceType]
}

func (p TaskPatch) IsEmpty() bool {
	return !p.Title.Set && !p.Emoji.Set && !p.CategoryID.Set &&
		!p.DueDate.Set && !p.DueTime.Set && !p.Recurrence.Set
}

func (p TaskPatch) Validate() error {
	if p.Title.Set && strings.TrimSpace(p.Title.Value) == "" {
		return fmt.Errorf("title must not be empty")
	}
	if p.DueDate.Set {
		if err := ValidateDate(p.DueDate.Value); err != nil {
			return err
		}
	}
	if p.DueTime.Set && p.DueTime.Value != nil {
		if err := ValidateTime(*p.DueTime.Value); err != nil {
			return err
		}
	}
	if p.Recurrence.Set && !p.Recurrence.Value.Valid() {
		return fmt.Errorf("invalid recurrence %q", p.Recurrence.Value)
	}
	return nil
}

// Apply returns t with every set field of p written over it.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title.Set {
		t.Title = p.Title.Value
	}
	if p.Emoji.Set {
		t.Emoji = p.Emoji.Value
	}
	if p.CategoryID.Set {
		t.CategoryID = p.CategoryID.Value
	}
	if p.DueDate.Set {
		t.DueDate = p.DueDate.Value
	}
	if p.DueTime.Set {
		t.DueTime = p.DueTime.Value
	}
	if p.Recurrence.Set {
		t.Recurrence = p.Recurrence.Value
	}
	return t
}

// ValidateDate checks that s is a calendar date in YYYY-MM-DD form.
func ValidateDate(s string) error {
	if _, err := time.Parse(constants.DateFormat, s); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return nil
}

// ValidateTime checks that s is a zero-padded 24h HH:MM time. Padding matters
// because due times are ordered by plain string comparison.
func ValidateTime(s string) error {
	if len(s) != len(constants.TimeFormat) {
		return fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	if _, err := time.Parse(constants.TimeFormat, s); err != nil {
		return fmt.Errorf("invalid time %q (expected HH:MM)", s)
	}
	return nil
}
