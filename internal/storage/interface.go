package storage

import (
	"context"
	"time"

	"github.com/julianstephens/cadence/internal/models"
)

// Provider is the persistent store behind the agenda service. Every lookup is
// scoped by owner; a record owned by someone else is reported as ErrNotFound.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Migrate(logFn func(string)) (int, error)
	Close() error

	// Categories
	AddCategory(ctx context.Context, c models.Category) error
	GetCategory(ctx context.Context, owner, id string) (models.Category, error)
	GetCategoryByName(ctx context.Context, owner, name string) (models.Category, error)
	ListCategories(ctx context.Context, owner string) ([]models.Category, error)
	UpdateCategory(ctx context.Context, owner, id string, patch models.CategoryPatch) error
	DeleteCategory(ctx context.Context, owner, id string) error
	HasTasksWithCategory(ctx context.Context, owner, categoryID string) (bool, error)

	// Tasks
	AddTask(ctx context.Context, t models.Task) error
	GetTask(ctx context.Context, owner, id string) (models.Task, error)
	ListTasks(ctx context.Context, owner string) ([]models.Task, error)
	UpdateTask(ctx context.Context, owner, id string, patch models.TaskPatch) error
	// SetTaskCompletion writes the task-level completion flag used by
	// non-recurring tasks. completedAt must be nil when completed is false.
	SetTaskCompletion(ctx context.Context, owner, id string, completed bool, completedAt *time.Time) error
	// DeleteTask removes the task together with its completion records.
	DeleteTask(ctx context.Context, owner, id string) error

	// Completions
	GetCompletion(ctx context.Context, owner, taskID, date string) (models.Completion, error)
	// ToggleCompletion removes the completion for (c.TaskID, c.Date) if one
	// exists, otherwise inserts c. It runs in one transaction and reports
	// whether the instance is complete afterwards.
	ToggleCompletion(ctx context.Context, c models.Completion) (bool, error)
	ListCompletionsForDate(ctx context.Context, owner, date string) ([]models.Completion, error)
	ListCompletionsInRange(ctx context.Context, owner, start, end string) ([]models.Completion, error)
	ListCompletions(ctx context.Context, owner string) ([]models.Completion, error)

	// Utils
	GetConfigPath() string
}
