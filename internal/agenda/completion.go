package agenda

import (
	"context"

	"github.com/julianstephens/cadence/internal/logger"
	"github.com/julianstephens/cadence/internal/models"
)

// ToggleCompletion flips the completion state of one task instance.
//
// Non-recurring tasks flip their own completed flag and ignore date.
// Recurring tasks add or remove the completion record for (taskID, date).
func (s *Service) ToggleCompletion(ctx context.Context, taskID, date string) (models.TaskInstance, error) {
	owner, err := s.requireOwner(ctx)
	if err != nil {
		return models.TaskInstance{}, err
	}

	task, err := s.store.GetTask(ctx, owner, taskID)
	if err != nil {
		return models.TaskInstance{}, mapStoreErr(err)
	}
	now := s.clock.Now()

	if !task.Recurrence.IsRecurring() {
		task.Completed = !task.Completed
		task.CompletedAt = nil
		if task.Completed {
			task.CompletedAt = &now
		}
		if err := s.store.SetTaskCompletion(ctx, owner, task.ID, task.Completed, task.CompletedAt); err != nil {
			return models.TaskInstance{}, mapStoreErr(err)
		}
		logger.Info("Toggled task", "id", task.ID, "completed", task.Completed)
		return models.TaskInstance{Task: task, Date: task.DueDate}, nil
	}

	if err := models.ValidateDate(date); err != nil {
		return models.TaskInstance{}, invalid(err)
	}

	completed, err := s.store.ToggleCompletion(ctx, models.Completion{
		ID:          s.newID(),
		TaskID:      task.ID,
		Owner:       owner,
		Date:        date,
		CompletedAt: now,
	})
	if err != nil {
		return models.TaskInstance{}, mapStoreErr(err)
	}

	task.Completed = completed
	task.CompletedAt = nil
	if completed {
		task.CompletedAt = &now
	}
	logger.Info("Toggled task instance", "id", task.ID, "date", date, "completed", completed)
	return models.TaskInstance{Task: task, Date: date}, nil
}
