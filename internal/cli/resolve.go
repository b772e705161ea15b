package cli

import (
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/julianstephens/cadence/internal/errors"
	"github.com/julianstephens/cadence/internal/models"
)

// FindTask looks a task up by full id, falling back to a unique id prefix
// such as the short ids shown in agendas.
func (c *Context) FindTask(ref string) (models.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Task{}, fmt.Errorf("%w: task id is required", apperrors.ErrInvalidInput)
	}
	task, err := c.Service.GetTask(c.Context(), ref)
	if err == nil || !errors.Is(err, apperrors.ErrNotFoundOrUnauthorized) {
		return task, err
	}

	tasks, listErr := c.Service.ListTasks(c.Context())
	if listErr != nil {
		return models.Task{}, listErr
	}
	var matches []models.Task
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return models.Task{}, fmt.Errorf("task %q: %w", ref, apperrors.ErrNotFoundOrUnauthorized)
	case 1:
		return matches[0], nil
	default:
		return models.Task{}, fmt.Errorf("%w: task id prefix %q matches %d tasks", apperrors.ErrInvalidInput, ref, len(matches))
	}
}
