package sqlstore

import (
	"database/sql"
	"time"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/models"
)

var (
	categoryColumns   = []string{"id", "user_id", "name", "emoji", "color"}
	taskColumns       = []string{"id", "user_id", "title", "emoji", "category_id", "due_date", "due_time", "recurrence", "completed", "completed_at", "created_at"}
	completionColumns = []string{"id", "todo_id", "user_id", "completion_date", "completed_at"}
)

type categoryRow struct {
	ID     string `db:"id"`
	UserID string `db:"user_id"`
	Name   string `db:"name"`
	Emoji  string `db:"emoji"`
	Color  string `db:"color"`
}

func (r categoryRow) model() models.Category {
	return models.Category{
		ID:    r.ID,
		Owner: r.UserID,
		Name:  r.Name,
		Emoji: r.Emoji,
		Color: r.Color,
	}
}

type taskRow struct {
	ID          string         `db:"id"`
	UserID      string         `db:"user_id"`
	Title       string         `db:"title"`
	Emoji       string         `db:"emoji"`
	CategoryID  sql.NullString `db:"category_id"`
	DueDate     string         `db:"due_date"`
	DueTime     sql.NullString `db:"due_time"`
	Recurrence  string         `db:"recurrence"`
	Completed   bool           `db:"completed"`
	CompletedAt sql.NullInt64  `db:"completed_at"`
	CreatedAt   int64          `db:"created_at"`
}

func (r taskRow) model() models.Task {
	t := models.Task{
		ID:         r.ID,
		Owner:      r.UserID,
		Title:      r.Title,
		Emoji:      r.Emoji,
		DueDate:    r.DueDate,
		Recurrence: constants.RecurrenceType(r.Recurrence),
		Completed:  r.Completed,
		CreatedAt:  fromMillis(r.CreatedAt),
	}
	if r.CategoryID.Valid {
		t.CategoryID = &r.CategoryID.String
	}
	if r.DueTime.Valid {
		t.DueTime = &r.DueTime.String
	}
	if r.CompletedAt.Valid {
		at := fromMillis(r.CompletedAt.Int64)
		t.CompletedAt = &at
	}
	return t
}

type completionRow struct {
	ID          string `db:"id"`
	TodoID      string `db:"todo_id"`
	UserID      string `db:"user_id"`
	Date        string `db:"completion_date"`
	CompletedAt int64  `db:"completed_at"`
}

func (r completionRow) model() models.Completion {
	return models.Completion{
		ID:          r.ID,
		TaskID:      r.TodoID,
		Owner:       r.UserID,
		Date:        r.Date,
		CompletedAt: fromMillis(r.CompletedAt),
	}
}

// Timestamps are stored as unix milliseconds in both dialects.
func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func nullMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toMillis(*t), Valid: true}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
