package agenda

import (
	"context"
	"fmt"
	"sort"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/logger"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/utils"
)

type completionKey struct {
	taskID string
	date   string
}

// ListForDate returns the instances visible on date, all-day tasks first and
// the rest by due time. An unauthenticated caller gets an empty list.
func (s *Service) ListForDate(ctx context.Context, date string, filter Filter) ([]models.TaskInstance, error) {
	owner, ok := s.owner(ctx)
	if !ok {
		return []models.TaskInstance{}, nil
	}
	if err := models.ValidateDate(date); err != nil {
		return nil, invalid(err)
	}

	tasks, err := s.store.ListTasks(ctx, owner)
	if err != nil {
		return nil, err
	}
	completions, err := s.store.ListCompletionsForDate(ctx, owner, date)
	if err != nil {
		return nil, err
	}

	done := indexCompletions(completions)
	instances := visibleOn(tasks, date, filter, done)
	sortInstances(instances)

	logger.Debug("Listed tasks for date", "date", date, "count", len(instances))
	return instances, nil
}

// ListForRange maps every date in [start, end] to the instances visible that
// day. Each day is ordered like ListForDate. An end before start yields an
// empty map.
func (s *Service) ListForRange(ctx context.Context, start, end string, filter Filter) (map[string][]models.TaskInstance, error) {
	owner, ok := s.owner(ctx)
	dates, err := rangeDates(start, end)
	if err != nil {
		if !ok {
			return map[string][]models.TaskInstance{}, nil
		}
		return nil, err
	}

	result := make(map[string][]models.TaskInstance, len(dates))
	if !ok || len(dates) == 0 {
		for _, d := range dates {
			result[d] = []models.TaskInstance{}
		}
		return result, nil
	}

	tasks, err := s.store.ListTasks(ctx, owner)
	if err != nil {
		return nil, err
	}
	completions, err := s.store.ListCompletionsInRange(ctx, owner, start, end)
	if err != nil {
		return nil, err
	}

	done := indexCompletions(completions)
	for _, d := range dates {
		instances := visibleOn(tasks, d, filter, done)
		sortInstances(instances)
		result[d] = instances
	}

	logger.Debug("Listed tasks for range", "start", start, "end", end, "tasks", len(tasks))
	return result, nil
}

// Today lists the instances visible on the clock's current date.
func (s *Service) Today(ctx context.Context, filter Filter) ([]models.TaskInstance, error) {
	return s.ListForDate(ctx, s.CurrentDate(), filter)
}

// Week lists the Monday to Sunday week containing date.
func (s *Service) Week(ctx context.Context, date string, filter Filter) (map[string][]models.TaskInstance, error) {
	start, err := utils.WeekStart(date)
	if err != nil {
		return nil, invalid(err)
	}
	end, err := utils.AddDays(start, 6)
	if err != nil {
		return nil, invalid(err)
	}
	return s.ListForRange(ctx, start, end, filter)
}

func rangeDates(start, end string) ([]string, error) {
	dates, err := utils.DatesInRange(start, end)
	if err != nil {
		return nil, invalid(err)
	}
	if len(dates) > constants.MaxRangeDays {
		return nil, invalid(fmt.Errorf("range spans %d days, at most %d allowed", len(dates), constants.MaxRangeDays))
	}
	return dates, nil
}

func indexCompletions(completions []models.Completion) map[completionKey]models.Completion {
	idx := make(map[completionKey]models.Completion, len(completions))
	for _, c := range completions {
		idx[completionKey{taskID: c.TaskID, date: c.Date}] = c
	}
	return idx
}

func visibleOn(tasks []models.Task, date string, filter Filter, done map[completionKey]models.Completion) []models.TaskInstance {
	instances := []models.TaskInstance{}
	for _, t := range tasks {
		if !utils.TaskDueOn(t, date) || !filter.matches(t.CategoryID) {
			continue
		}
		instances = append(instances, resolve(t, date, done))
	}
	return instances
}

// resolve overlays per-date completion state on recurring tasks. Non-recurring
// tasks keep their own completion fields.
func resolve(t models.Task, date string, done map[completionKey]models.Completion) models.TaskInstance {
	if t.Recurrence.IsRecurring() {
		t.Completed = false
		t.CompletedAt = nil
		if c, ok := done[completionKey{taskID: t.ID, date: date}]; ok {
			at := c.CompletedAt
			t.Completed = true
			t.CompletedAt = &at
		}
	}
	return models.TaskInstance{Task: t, Date: date}
}

// sortInstances puts all-day tasks first, then orders by HH:MM due time.
func sortInstances(instances []models.TaskInstance) {
	sort.SliceStable(instances, func(i, j int) bool {
		a, b := instances[i].DueTime, instances[j].DueTime
		switch {
		case a == nil:
			return b != nil
		case b == nil:
			return false
		default:
			return *a < *b
		}
	})
}
