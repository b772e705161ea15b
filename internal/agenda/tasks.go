package agenda

import (
	"context"
	"errors"
	"strings"

	"github.com/julianstephens/cadence/internal/constants"
	apperrors "github.com/julianstephens/cadence/internal/errors"
	"github.com/julianstephens/cadence/internal/logger"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/storage"
)

func (s *Service) CreateTask(ctx context.Context, in models.TaskInput) (models.Task, error) {
	owner, err := s.requireOwner(ctx)
	if err != nil {
		return models.Task{}, err
	}

	if in.Recurrence == "" {
		in.Recurrence = constants.RecurrenceNone
	}
	if err := in.Validate(); err != nil {
		return models.Task{}, invalid(err)
	}
	if err := s.checkCategory(ctx, owner, in.CategoryID); err != nil {
		return models.Task{}, err
	}

	task := models.Task{
		ID:         s.newID(),
		Owner:      owner,
		Title:      strings.TrimSpace(in.Title),
		Emoji:      in.Emoji,
		CategoryID: in.CategoryID,
		DueDate:    in.DueDate,
		DueTime:    in.DueTime,
		Recurrence: in.Recurrence,
		CreatedAt:  s.clock.Now(),
	}
	if err := s.store.AddTask(ctx, task); err != nil {
		return models.Task{}, mapTaskWriteErr(err)
	}

	logger.Info("Created task", "id", task.ID, "recurrence", task.Recurrence)
	return task, nil
}

// GetTask returns one of the caller's tasks with its stored fields.
func (s *Service) GetTask(ctx context.Context, id string) (models.Task, error) {
	owner, ok := s.owner(ctx)
	if !ok {
		return models.Task{}, apperrors.ErrNotFoundOrUnauthorized
	}
	task, err := s.store.GetTask(ctx, owner, id)
	if err != nil {
		return models.Task{}, mapStoreErr(err)
	}
	return task, nil
}

// ListTasks returns every task record of the caller.
func (s *Service) ListTasks(ctx context.Context) ([]models.Task, error) {
	owner, ok := s.owner(ctx)
	if !ok {
		return []models.Task{}, nil
	}
	return s.store.ListTasks(ctx, owner)
}

// UpdateTask applies the fields set in patch. A set CategoryID or DueTime
// holding nil clears that field.
func (s *Service) UpdateTask(ctx context.Context, id string, patch models.TaskPatch) (models.Task, error) {
	owner, err := s.requireOwner(ctx)
	if err != nil {
		return models.Task{}, err
	}
	if err := patch.Validate(); err != nil {
		return models.Task{}, invalid(err)
	}

	task, err := s.store.GetTask(ctx, owner, id)
	if err != nil {
		return models.Task{}, mapStoreErr(err)
	}
	if patch.IsEmpty() {
		return task, nil
	}
	if patch.CategoryID.Set {
		if err := s.checkCategory(ctx, owner, patch.CategoryID.Value); err != nil {
			return models.Task{}, err
		}
	}
	if patch.Title.Set {
		patch.Title.Value = strings.TrimSpace(patch.Title.Value)
	}

	if err := s.store.UpdateTask(ctx, owner, id, patch); err != nil {
		return models.Task{}, mapTaskWriteErr(err)
	}

	logger.Info("Updated task", "id", id)
	return patch.Apply(task), nil
}

// DeleteTask removes a task and all of its completion records.
func (s *Service) DeleteTask(ctx context.Context, id string) error {
	owner, err := s.requireOwner(ctx)
	if err != nil {
		return err
	}
	if err := s.store.DeleteTask(ctx, owner, id); err != nil {
		return mapStoreErr(err)
	}
	logger.Info("Deleted task", "id", id)
	return nil
}

// checkCategory verifies that a referenced category belongs to owner.
func (s *Service) checkCategory(ctx context.Context, owner string, categoryID *string) error {
	if categoryID == nil {
		return nil
	}
	if _, err := s.store.GetCategory(ctx, owner, *categoryID); err != nil {
		return mapStoreErr(err)
	}
	return nil
}

// mapTaskWriteErr treats a foreign key failure on a task write as a missing
// category, which can happen when the category is deleted after checkCategory.
func mapTaskWriteErr(err error) error {
	if errors.Is(err, storage.ErrReferenced) {
		return apperrors.ErrNotFoundOrUnauthorized
	}
	return mapStoreErr(err)
}

// isNotFound reports whether err is the store's missing-record signal.
func isNotFound(err error) bool {
	return errors.Is(mapStoreErr(err), apperrors.ErrNotFoundOrUnauthorized)
}
